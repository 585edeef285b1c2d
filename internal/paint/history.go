package paint

// History implements undo/redo over the committed shape list with two
// stacks. The committed stack is the source of truth the renderer walks
// every frame; the undone stack is the redo buffer. The two are always
// disjoint.
type History struct {
	committed []Shape
	undone    []Shape
}

// Push commits a shape. Any pending redo entries are discarded: a fresh
// action after an undo must not leave a divergent timeline behind.
func (h *History) Push(s Shape) {
	h.committed = append(h.committed, s)
	h.undone = h.undone[:0]
}

// Undo moves the most recent committed shape to the redo buffer and
// returns it. It is a no-op on an empty history.
func (h *History) Undo() (Shape, bool) {
	if len(h.committed) == 0 {
		return Shape{}, false
	}
	s := h.committed[len(h.committed)-1]
	h.committed = h.committed[:len(h.committed)-1]
	h.undone = append(h.undone, s)
	return s, true
}

// Redo moves the most recently undone shape back to the committed stack
// and returns it. It is a no-op when there is nothing to redo.
func (h *History) Redo() (Shape, bool) {
	if len(h.undone) == 0 {
		return Shape{}, false
	}
	s := h.undone[len(h.undone)-1]
	h.undone = h.undone[:len(h.undone)-1]
	h.committed = append(h.committed, s)
	return s, true
}

// Clear drops both stacks.
func (h *History) Clear() {
	h.committed = h.committed[:0]
	h.undone = h.undone[:0]
}

// Committed returns the committed shapes in insertion order. The slice is
// read-only to callers; only Push, Undo, Redo and Clear mutate the stacks.
func (h *History) Committed() []Shape {
	return h.committed
}

// Len reports the number of committed shapes.
func (h *History) Len() int { return len(h.committed) }

// RedoLen reports the number of shapes available to Redo.
func (h *History) RedoLen() int { return len(h.undone) }
