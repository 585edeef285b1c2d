// Package export persists finished drawings as PNG files and publishes
// them to the clipboard.
package export

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/example/paintbox/internal/clipboard"
	"github.com/example/paintbox/internal/notify"
)

// DefaultFilename is the name drawings are exported under when the caller
// does not pick one.
const DefaultFilename = "canvas.png"

// Sink writes drawings to a directory and raises notifications on completion.
type Sink struct {
	dir      string
	filename string
	notifier *notify.Notifier
	shadow   *ShadowOptions
}

// Option configures a Sink.
type Option func(*Sink)

// WithDir sets the directory exported files are written into.
func WithDir(dir string) Option {
	return func(s *Sink) {
		if dir != "" {
			s.dir = dir
		}
	}
}

// WithFilename overrides the exported filename.
func WithFilename(name string) Option {
	return func(s *Sink) {
		if name != "" {
			s.filename = name
		}
	}
}

// WithNotifier attaches a notifier that announces saves and clipboard copies.
func WithNotifier(n *notify.Notifier) Option {
	return func(s *Sink) { s.notifier = n }
}

// WithShadow frames exported drawings with a drop shadow.
func WithShadow(opts ShadowOptions) Option {
	return func(s *Sink) { s.shadow = &opts }
}

// NewSink creates a Sink writing into the current directory by default.
func NewSink(opts ...Option) *Sink {
	s := &Sink{dir: ".", filename: DefaultFilename}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the full path the next SavePNG call will write to.
func (s *Sink) Path() string {
	return filepath.Join(s.dir, s.filename)
}

// SavePNG writes the image to the sink's path, creating the directory when
// missing, and returns the absolute path written.
func (s *Sink) SavePNG(img image.Image) (string, error) {
	if img == nil {
		return "", fmt.Errorf("export: nil image")
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}
	if s.shadow != nil {
		img = ApplyShadow(asRGBA(img), *s.shadow)
	}
	path := s.Path()
	out, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer func(out *os.File) {
		if err := out.Close(); err != nil {
			log.Printf("error closing %q: %v", out.Name(), err)
		}
	}(out)
	if err := png.Encode(out, img); err != nil {
		return "", err
	}
	saved := path
	if abs, err := filepath.Abs(path); err == nil {
		saved = abs
	}
	if s.notifier != nil {
		s.notifier.Save(saved)
	}
	return saved, nil
}

func asRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	draw.Draw(rgba, bounds, img, bounds.Min, draw.Src)
	return rgba
}

// CopyToClipboard publishes the image to the system clipboard as PNG.
func (s *Sink) CopyToClipboard(img image.Image) error {
	if img == nil {
		return fmt.Errorf("export: nil image")
	}
	if err := clipboard.WriteImage(img); err != nil {
		return fmt.Errorf("copy PNG to clipboard: %w", err)
	}
	if s.notifier != nil {
		s.notifier.Copy(s.filename, img)
	}
	return nil
}
