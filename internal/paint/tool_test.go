package paint

import "testing"

func TestBrushCommitsPerSample(t *testing.T) {
	blue := RGB(0, 0, 255)
	b := NewTool(ToolBrush, blue)

	g := b.Start(Pt(10, 10))
	if g.Commit == nil {
		t.Fatal("brush Start committed nothing")
	}
	if g.Commit.Kind != ShapeCircle || g.Commit.P1 != Pt(10, 10) || g.Commit.Color != blue {
		t.Fatalf("unexpected dab: %+v", *g.Commit)
	}
	if g.Commit.Radius != DabRadius {
		t.Fatalf("dab radius = %v, want %v", g.Commit.Radius, float64(DabRadius))
	}

	g = b.Move(Pt(20, 10))
	if g.Commit == nil || g.Commit.P1 != Pt(20, 10) {
		t.Fatalf("brush Move did not commit a dab at the sample: %+v", g)
	}
	if g.Preview != nil {
		t.Error("brush published a preview")
	}

	g = b.End(Pt(30, 10))
	if g.Commit != nil || g.Preview != nil || g.ClearPreview {
		t.Fatalf("brush End should be a no-op, got %+v", g)
	}
}

func TestRectToolGesture(t *testing.T) {
	red := RGB(255, 0, 0)
	r := NewTool(ToolRect, red)

	if g := r.Start(Pt(5, 5)); g.Commit != nil || g.Preview != nil {
		t.Fatalf("rect Start must only record the anchor, got %+v", g)
	}

	g := r.Move(Pt(50, 50))
	if g.Commit != nil {
		t.Fatal("rect Move committed a shape")
	}
	if g.Preview == nil {
		t.Fatal("rect Move published no preview")
	}
	if g.Preview.Kind != ShapeRect || g.Preview.P1 != Pt(5, 5) || g.Preview.P2 != Pt(50, 50) {
		t.Fatalf("unexpected preview: %+v", *g.Preview)
	}

	g = r.End(Pt(50, 50))
	if g.Commit == nil {
		t.Fatal("rect End committed nothing")
	}
	if g.Commit.P1 != Pt(5, 5) || g.Commit.P2 != Pt(50, 50) || g.Commit.Color != red {
		t.Fatalf("unexpected commit: %+v", *g.Commit)
	}
	if !g.ClearPreview {
		t.Error("rect End did not clear the preview")
	}
}

func TestSetPrimaryColorAffectsLaterCommits(t *testing.T) {
	b := NewTool(ToolBrush, RGB(0, 0, 255))
	first := b.Start(Pt(0, 0))
	b.SetPrimaryColor(RGB(255, 0, 0))
	second := b.Move(Pt(1, 1))
	if first.Commit.Color != RGB(0, 0, 255) {
		t.Error("earlier commit changed color retroactively")
	}
	if second.Commit.Color != RGB(255, 0, 0) {
		t.Error("later commit ignored the new primary color")
	}
}

func TestSecondaryColorIsReserved(t *testing.T) {
	for _, kind := range []ToolKind{ToolBrush, ToolRect} {
		tool := NewTool(kind, RGB(0, 0, 0))
		tool.SetSecondaryColor(RGB(9, 9, 9))
		g := tool.Start(Pt(0, 0))
		if g.Commit != nil && g.Commit.Color == RGB(9, 9, 9) {
			t.Errorf("%v used the secondary color", kind)
		}
	}
}
