package main

import (
	"flag"
	"fmt"

	"github.com/example/paintbox/internal/display"
	"github.com/example/paintbox/internal/export"
	"github.com/example/paintbox/internal/paint"
	"github.com/example/paintbox/internal/ui"
)

// paintCmd opens the interactive paint window.
type paintCmd struct {
	*root
	fs     *flag.FlagSet
	width  int
	height int
	fit    bool
	tool   string
	color  string
	output string
	dir    string
	shadow bool
}

func (p *paintCmd) FlagSet() *flag.FlagSet {
	return p.fs
}

func parsePaintCmd(args []string, r *root) (*paintCmd, error) {
	cfg := r.config
	defWidth, defHeight := paint.DefaultWidth, paint.DefaultHeight
	if cfg.Width > 0 {
		defWidth = cfg.Width
	}
	if cfg.Height > 0 {
		defHeight = cfg.Height
	}
	defTool := cfg.Tool
	if defTool == "" {
		defTool = "brush"
	}
	defDir := cfg.SaveDir
	if defDir == "" {
		defDir = "."
	}

	fs := flag.NewFlagSet("paint", flag.ExitOnError)
	p := &paintCmd{root: r, fs: fs}
	fs.IntVar(&p.width, "width", defWidth, "canvas width in pixels")
	fs.IntVar(&p.height, "height", defHeight, "canvas height in pixels")
	fs.BoolVar(&p.fit, "fit", false, "shrink the canvas to fit the primary monitor")
	fs.StringVar(&p.tool, "tool", defTool, "initial tool (brush or rect)")
	fs.StringVar(&p.color, "color", cfg.PrimaryColor, "initial drawing color as #RRGGBB[AA]")
	fs.StringVar(&p.output, "output", export.DefaultFilename, "filename drawings are saved under")
	fs.StringVar(&p.dir, "dir", defDir, "directory drawings are saved into")
	fs.BoolVar(&p.shadow, "shadow", false, "frame saved drawings with a drop shadow")
	fs.Usage = usageFunc(p)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: p}
	}
	if p.width <= 0 || p.height <= 0 {
		return nil, fmt.Errorf("canvas size must be positive, got %dx%d", p.width, p.height)
	}
	return p, nil
}

func toolKind(name string) (paint.ToolKind, error) {
	switch name {
	case "brush":
		return paint.ToolBrush, nil
	case "rect":
		return paint.ToolRect, nil
	default:
		return 0, fmt.Errorf("unknown tool %q (want brush or rect)", name)
	}
}

func (p *paintCmd) Run() error {
	kind, err := toolKind(p.tool)
	if err != nil {
		return err
	}

	width, height := p.width, p.height
	if p.fit {
		width, height = display.FitCanvas(width, height)
	}

	canvas := paint.NewCanvas(
		paint.WithSize(width, height),
		paint.WithTool(kind),
	)
	if p.color != "" {
		if err := canvas.SetPrimaryColorHex(p.color); err != nil {
			fmt.Fprintf(p.fs.Output(), "warning: ignoring invalid color %q: %v\n", p.color, err)
		}
	}

	for _, name := range p.config.PaletteNames() {
		ui.EnsureSwatch(p.config.Palette[name], name)
	}

	sinkOpts := []export.Option{
		export.WithDir(p.dir),
		export.WithFilename(p.output),
		export.WithNotifier(p.notifier),
	}
	if p.shadow {
		sinkOpts = append(sinkOpts, export.WithShadow(export.DefaultShadowOptions()))
	}
	sink := export.NewSink(sinkOpts...)

	app := ui.New(
		ui.WithCanvas(canvas),
		ui.WithSink(sink),
	)
	app.Run()
	return nil
}
