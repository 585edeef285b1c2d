package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/example/paintbox/internal/export"
	"github.com/example/paintbox/internal/paint"
	"github.com/example/paintbox/internal/raster"
)

// renderCmd replays a gesture script headlessly and writes the result as PNG.
type renderCmd struct {
	*root
	fs     *flag.FlagSet
	width  int
	height int
	output string
	script string
	shadow bool
}

func (c *renderCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func parseRenderCmd(args []string, r *root) (*renderCmd, error) {
	cfg := r.config
	defWidth, defHeight := paint.DefaultWidth, paint.DefaultHeight
	if cfg.Width > 0 {
		defWidth = cfg.Width
	}
	if cfg.Height > 0 {
		defHeight = cfg.Height
	}

	fs := flag.NewFlagSet("render", flag.ExitOnError)
	c := &renderCmd{root: r, fs: fs}
	fs.IntVar(&c.width, "width", defWidth, "canvas width in pixels")
	fs.IntVar(&c.height, "height", defHeight, "canvas height in pixels")
	fs.StringVar(&c.output, "output", "canvas.png", "output PNG path")
	fs.BoolVar(&c.shadow, "shadow", false, "frame the rendered drawing with a drop shadow")
	fs.Usage = usageFunc(c)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	switch fs.NArg() {
	case 0:
	case 1:
		c.script = fs.Arg(0)
	default:
		return nil, &UsageError{of: c}
	}
	if c.width <= 0 || c.height <= 0 {
		return nil, fmt.Errorf("canvas size must be positive, got %dx%d", c.width, c.height)
	}
	return c, nil
}

func (c *renderCmd) Run() error {
	var in io.Reader = os.Stdin
	if c.script != "" {
		f, err := os.Open(c.script)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	main := raster.NewContext(c.width, c.height)
	preview := raster.NewContext(c.width, c.height)
	canvas := paint.NewCanvas(
		paint.WithSize(c.width, c.height),
		paint.WithSurfaces(main, preview),
	)

	if err := replayScript(canvas, in); err != nil {
		return err
	}

	sinkOpts := []export.Option{
		export.WithDir(filepath.Dir(c.output)),
		export.WithFilename(filepath.Base(c.output)),
		export.WithNotifier(c.notifier),
	}
	if c.shadow {
		sinkOpts = append(sinkOpts, export.WithShadow(export.DefaultShadowOptions()))
	}
	sink := export.NewSink(sinkOpts...)
	saved, err := sink.SavePNG(main.Image())
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "saved %s\n", saved)
	return nil
}

// replayScript feeds gesture commands from r into the canvas.
func replayScript(canvas *paint.Canvas, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if err := applyScriptCommand(canvas, fields); err != nil {
			return fmt.Errorf("script line %d: %w", lineNo, err)
		}
	}
	return scanner.Err()
}

func applyScriptCommand(canvas *paint.Canvas, fields []string) error {
	cmd := strings.ToLower(fields[0])
	switch cmd {
	case "tool":
		if len(fields) != 2 {
			return fmt.Errorf("tool wants one argument")
		}
		kind, err := toolKind(fields[1])
		if err != nil {
			return err
		}
		canvas.SelectTool(kind)
	case "color":
		if len(fields) != 2 {
			return fmt.Errorf("color wants one argument")
		}
		if err := canvas.SetPrimaryColorHex(fields[1]); err != nil {
			return err
		}
	case "down", "move", "up":
		if len(fields) != 3 {
			return fmt.Errorf("%s wants X and Y", cmd)
		}
		x, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return fmt.Errorf("invalid X %q", fields[1])
		}
		y, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return fmt.Errorf("invalid Y %q", fields[2])
		}
		p := paint.Pt(x, y)
		switch cmd {
		case "down":
			canvas.PointerDown(p)
		case "move":
			canvas.PointerMove(p)
		case "up":
			canvas.PointerUp(p)
		}
	case "undo":
		canvas.Undo()
	case "redo":
		canvas.Redo()
	case "clear":
		canvas.ClearShapes()
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}
