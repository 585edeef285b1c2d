package paint

import "testing"

// surfaceOp records one primitive call so tests can assert on the exact
// repaint sequence without a real raster target.
type surfaceOp struct {
	name       string
	x, y, w, h float64
	cx, cy, r  float64
	start, end float64
	color      Color
}

type recordingSurface struct {
	ops []surfaceOp
}

func (s *recordingSurface) ClearRect(x, y, w, h float64) {
	s.ops = append(s.ops, surfaceOp{name: "clear", x: x, y: y, w: w, h: h})
}

func (s *recordingSurface) FillRect(x, y, w, h float64, c Color) {
	s.ops = append(s.ops, surfaceOp{name: "rect", x: x, y: y, w: w, h: h, color: c})
}

func (s *recordingSurface) FillArc(cx, cy, r, start, end float64, c Color) {
	s.ops = append(s.ops, surfaceOp{name: "arc", cx: cx, cy: cy, r: r, start: start, end: end, color: c})
}

func (s *recordingSurface) reset() { s.ops = nil }

func newTestCanvas(kind ToolKind) (*Canvas, *recordingSurface, *recordingSurface) {
	main := &recordingSurface{}
	preview := &recordingSurface{}
	c := NewCanvas(WithTool(kind), WithSurfaces(main, preview))
	return c, main, preview
}

func TestBrushGestureCommitsTwoDabs(t *testing.T) {
	c, _, _ := newTestCanvas(ToolBrush)
	c.PointerDown(Pt(10, 10))
	c.PointerMove(Pt(20, 10))
	c.PointerUp(Pt(20, 10))

	shapes := c.Shapes()
	if len(shapes) != 2 {
		t.Fatalf("committed %d shapes, want 2", len(shapes))
	}
	if shapes[0].P1 != Pt(10, 10) || shapes[1].P1 != Pt(20, 10) {
		t.Fatalf("dabs at %+v and %+v", shapes[0].P1, shapes[1].P1)
	}
	for i, s := range shapes {
		if s.Color != c.PrimaryColor() {
			t.Errorf("dab %d has color %+v, want primary %+v", i, s.Color, c.PrimaryColor())
		}
	}
}

func TestMoveWithoutPressIsIgnored(t *testing.T) {
	c, _, _ := newTestCanvas(ToolBrush)
	c.PointerMove(Pt(5, 5))
	if len(c.Shapes()) != 0 {
		t.Fatal("hover move committed a shape")
	}
}

func TestRectGesturePreviewThenCommit(t *testing.T) {
	c, main, preview := newTestCanvas(ToolRect)
	c.PointerDown(Pt(5, 5))
	if len(c.Shapes()) != 0 {
		t.Fatal("rect pointer-down committed a shape")
	}

	preview.reset()
	c.PointerMove(Pt(50, 50))
	if len(c.Shapes()) != 0 {
		t.Fatal("rect pointer-move committed a shape")
	}
	// Preview repaint: full clear followed by the single candidate.
	if len(preview.ops) != 2 || preview.ops[0].name != "clear" || preview.ops[1].name != "rect" {
		t.Fatalf("preview ops = %+v", preview.ops)
	}
	if got := preview.ops[1]; got.x != 5 || got.y != 5 || got.w != 45 || got.h != 45 {
		t.Fatalf("preview rect = %+v", got)
	}

	preview.reset()
	main.reset()
	c.PointerUp(Pt(50, 50))
	shapes := c.Shapes()
	if len(shapes) != 1 {
		t.Fatalf("committed %d shapes, want 1", len(shapes))
	}
	if shapes[0].Kind != ShapeRect || shapes[0].P1 != Pt(5, 5) || shapes[0].P2 != Pt(50, 50) {
		t.Fatalf("committed shape = %+v", shapes[0])
	}
	// Preview is wiped, committed rect lands on the main surface.
	if len(preview.ops) != 1 || preview.ops[0].name != "clear" {
		t.Fatalf("preview ops after commit = %+v", preview.ops)
	}
	last := main.ops[len(main.ops)-1]
	if last.name != "rect" || last.x != 5 || last.w != 45 {
		t.Fatalf("main surface last op = %+v", last)
	}
}

func TestRepaintPaintsWhiteThenShapesInOrder(t *testing.T) {
	c, main, _ := newTestCanvas(ToolBrush)
	c.PointerDown(Pt(1, 1))
	main.reset()
	c.PointerMove(Pt(2, 2))

	// clear, white fill, then both dabs oldest first.
	if len(main.ops) != 4 {
		t.Fatalf("main ops = %+v", main.ops)
	}
	if main.ops[0].name != "clear" {
		t.Fatalf("first op %q, want clear", main.ops[0].name)
	}
	if main.ops[1].name != "rect" || main.ops[1].color != White {
		t.Fatalf("second op = %+v, want white fill", main.ops[1])
	}
	if main.ops[2].cx != 1 || main.ops[3].cx != 2 {
		t.Fatalf("shapes out of insertion order: %+v", main.ops[2:])
	}
}

func TestSwitchingToolMidGestureAbandonsIt(t *testing.T) {
	c, _, preview := newTestCanvas(ToolRect)
	c.PointerDown(Pt(5, 5))
	c.PointerMove(Pt(30, 30))

	preview.reset()
	c.SelectTool(ToolBrush)
	if len(c.Shapes()) != 0 {
		t.Fatal("abandoned gesture committed a shape")
	}
	if len(preview.ops) == 0 || preview.ops[0].name != "clear" {
		t.Fatalf("preview not cleared on tool switch: %+v", preview.ops)
	}
	// The release that eventually arrives must not commit either.
	c.PointerUp(Pt(40, 40))
	if len(c.Shapes()) != 0 {
		t.Fatal("release after tool switch committed a shape")
	}
}

func TestSelectToolSeedsPrimaryColor(t *testing.T) {
	c, _, _ := newTestCanvas(ToolBrush)
	if err := c.SetPrimaryColorHex("#FF0000"); err != nil {
		t.Fatalf("SetPrimaryColorHex: %v", err)
	}
	c.SelectTool(ToolRect)
	c.PointerDown(Pt(0, 0))
	c.PointerUp(Pt(10, 10))
	if got := c.Shapes()[0].Color; got != RGB(255, 0, 0) {
		t.Fatalf("new tool committed with %+v, want the re-injected primary", got)
	}
}

func TestBadColorChangeIsIgnored(t *testing.T) {
	c, _, _ := newTestCanvas(ToolBrush)
	before := c.PrimaryColor()
	if err := c.SetPrimaryColorHex("#GGGGGG"); err == nil {
		t.Fatal("expected a parse error")
	}
	if c.PrimaryColor() != before {
		t.Fatal("failed parse changed the primary color")
	}
}

func TestUndoRedoRepaint(t *testing.T) {
	c, main, _ := newTestCanvas(ToolBrush)
	c.PointerDown(Pt(1, 1))
	c.PointerUp(Pt(1, 1))

	main.reset()
	c.Undo()
	if len(c.Shapes()) != 0 {
		t.Fatal("undo left the shape committed")
	}
	// Repaint happened: clear + white fill, no shapes.
	if len(main.ops) != 2 {
		t.Fatalf("main ops after undo = %+v", main.ops)
	}

	c.Redo()
	if len(c.Shapes()) != 1 {
		t.Fatal("redo did not restore the shape")
	}
}

func TestClearEmptiesBothStacks(t *testing.T) {
	c, _, _ := newTestCanvas(ToolBrush)
	c.PointerDown(Pt(1, 1))
	c.PointerUp(Pt(1, 1))
	c.Undo()
	c.ClearShapes()
	if c.History().Len() != 0 || c.History().RedoLen() != 0 {
		t.Fatal("Clear left history entries behind")
	}
	c.Undo() // must be a no-op, not a panic
	if c.History().Len() != 0 {
		t.Fatal("undo after clear resurrected a shape")
	}
}

func TestEventsWithoutSurfacesDoNotPanic(t *testing.T) {
	c := NewCanvas()
	c.PointerDown(Pt(1, 1))
	c.PointerMove(Pt(2, 2))
	c.PointerUp(Pt(2, 2))
	c.Undo()
	c.Redo()
	c.ClearShapes()
	if len(c.Shapes()) != 0 {
		t.Fatal("unexpected committed shapes")
	}
}
