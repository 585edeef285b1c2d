package paint

import "testing"

func shapeAt(x, y float64) Shape {
	return Circle(Pt(x, y), DabRadius, RGB(0, 0, 255))
}

func TestHistoryUndoRedoRoundTrip(t *testing.T) {
	var h History
	pushed := []Shape{shapeAt(1, 1), shapeAt(2, 2), shapeAt(3, 3)}
	for _, s := range pushed {
		h.Push(s)
	}

	// Undoing once per push empties the committed stack.
	for i := len(pushed) - 1; i >= 0; i-- {
		s, ok := h.Undo()
		if !ok {
			t.Fatalf("Undo failed with %d shapes remaining", i+1)
		}
		if s != pushed[i] {
			t.Fatalf("Undo returned %+v, want %+v", s, pushed[i])
		}
	}
	if h.Len() != 0 {
		t.Fatalf("committed not empty after full undo: %d", h.Len())
	}

	// Redo restores in exact reverse-of-undo order.
	for i, want := range pushed {
		s, ok := h.Redo()
		if !ok {
			t.Fatalf("Redo failed at step %d", i)
		}
		if s != want {
			t.Fatalf("Redo returned %+v, want %+v", s, want)
		}
	}
	got := h.Committed()
	if len(got) != len(pushed) {
		t.Fatalf("committed length = %d, want %d", len(got), len(pushed))
	}
	for i := range pushed {
		if got[i] != pushed[i] {
			t.Fatalf("committed[%d] = %+v, want %+v", i, got[i], pushed[i])
		}
	}
}

func TestHistoryEmptyOps(t *testing.T) {
	var h History
	if _, ok := h.Undo(); ok {
		t.Error("Undo on empty history succeeded")
	}
	if _, ok := h.Redo(); ok {
		t.Error("Redo on empty history succeeded")
	}
}

func TestHistoryPushDiscardsRedo(t *testing.T) {
	var h History
	h.Push(shapeAt(1, 1)) // A
	h.Push(shapeAt(2, 2)) // B
	if _, ok := h.Undo(); !ok {
		t.Fatal("Undo failed")
	}
	h.Push(shapeAt(3, 3)) // C invalidates B
	if _, ok := h.Redo(); ok {
		t.Fatal("Redo succeeded after a fresh push; stale entry survived")
	}
	if h.Len() != 2 {
		t.Fatalf("committed length = %d, want 2", h.Len())
	}
}

func TestHistoryClear(t *testing.T) {
	var h History
	h.Push(shapeAt(1, 1))
	h.Push(shapeAt(2, 2))
	h.Undo()
	h.Clear()
	if h.Len() != 0 || h.RedoLen() != 0 {
		t.Fatalf("Clear left %d committed, %d undone", h.Len(), h.RedoLen())
	}
	if _, ok := h.Undo(); ok {
		t.Error("Undo after Clear succeeded")
	}
}
