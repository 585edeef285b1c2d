package main

import (
	"strings"
	"testing"

	"github.com/example/paintbox/internal/config"
	"github.com/example/paintbox/internal/paint"
)

func testRoot() *root {
	return &root{program: "paintbox", config: config.New()}
}

func TestParsePaintRejectsZeroSize(t *testing.T) {
	_, err := parsePaintCmd([]string{"-width", "0"}, testRoot())
	if err == nil {
		t.Fatalf("expected error")
	}
	if want := "canvas size must be positive"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error to mention %q, got %v", want, err)
	}
}

func TestPaintRunRejectsUnknownTool(t *testing.T) {
	cmd, err := parsePaintCmd([]string{"-tool", "spray"}, testRoot())
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if err := cmd.Run(); err == nil {
		t.Fatalf("expected error")
	} else if want := "unknown tool"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error to mention %q, got %v", want, err)
	}
}

func TestParseRenderRejectsExtraArgs(t *testing.T) {
	_, err := parseRenderCmd([]string{"a.txt", "b.txt"}, testRoot())
	if err == nil {
		t.Fatalf("expected usage error")
	}
}

func TestPaintDefaultsFromConfig(t *testing.T) {
	r := testRoot()
	r.config.Width = 320
	r.config.Height = 200
	r.config.Tool = "rect"

	cmd, err := parsePaintCmd(nil, r)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if cmd.width != 320 || cmd.height != 200 {
		t.Errorf("size defaults = %dx%d, want 320x200", cmd.width, cmd.height)
	}
	if cmd.tool != "rect" {
		t.Errorf("tool default = %q, want rect", cmd.tool)
	}
}

func TestReplayScriptCommitsGestures(t *testing.T) {
	canvas := paint.NewCanvas(paint.WithSize(100, 100))
	script := `
# brush stroke then a rectangle
tool brush
color #ff0000
down 10 10
move 20 10
up 20 10
tool rect
down 5 5
move 40 40
up 50 50
`
	if err := replayScript(canvas, strings.NewReader(script)); err != nil {
		t.Fatalf("replayScript() error: %v", err)
	}
	shapes := canvas.Shapes()
	if len(shapes) != 3 {
		t.Fatalf("committed shapes = %d, want 2 dabs and 1 rect", len(shapes))
	}
	if shapes[0].Kind != paint.ShapeCircle || shapes[2].Kind != paint.ShapeRect {
		t.Errorf("shape kinds = %v, %v, %v", shapes[0].Kind, shapes[1].Kind, shapes[2].Kind)
	}
	if shapes[0].Color != paint.RGB(255, 0, 0) {
		t.Errorf("dab color = %+v, want red", shapes[0].Color)
	}
}

func TestReplayScriptUndoRedo(t *testing.T) {
	canvas := paint.NewCanvas(paint.WithSize(100, 100))
	script := `
down 10 10
up 10 10
down 20 20
up 20 20
undo
`
	if err := replayScript(canvas, strings.NewReader(script)); err != nil {
		t.Fatalf("replayScript() error: %v", err)
	}
	if got := len(canvas.Shapes()); got != 1 {
		t.Errorf("shapes after undo = %d, want 1", got)
	}
}

func TestReplayScriptReportsLineNumbers(t *testing.T) {
	canvas := paint.NewCanvas(paint.WithSize(100, 100))
	script := "tool brush\ndown 1 1\nwiggle 2 2\n"
	err := replayScript(canvas, strings.NewReader(script))
	if err == nil {
		t.Fatalf("expected error")
	}
	if want := "script line 3"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error to mention %q, got %v", want, err)
	}
}

func TestReplayScriptRejectsBadColor(t *testing.T) {
	canvas := paint.NewCanvas(paint.WithSize(100, 100))
	err := replayScript(canvas, strings.NewReader("color nope\n"))
	if err == nil {
		t.Fatalf("expected error")
	}
}
