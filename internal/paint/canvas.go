package paint

import "log"

const (
	// DefaultWidth and DefaultHeight size the canvas when no option or
	// config overrides them.
	DefaultWidth  = 500
	DefaultHeight = 500
)

// White is the background the main surface is cleared to on every repaint.
var White = RGB(255, 255, 255)

// Canvas owns the drawing state: the active tool, the undo/redo history,
// the selected colors and the two render surfaces (main and preview). All
// mutation happens synchronously inside one event entry point before the
// next can run; the host event loop serializes input, so no locking is
// needed.
type Canvas struct {
	width, height int

	tool      *Tool
	history   History
	primary   Color
	secondary Color

	main    Surface
	preview Surface

	pointerDown bool
}

// Option modifies a Canvas during creation.
type Option func(*Canvas)

// WithSize sets the canvas pixel dimensions.
func WithSize(width, height int) Option {
	return func(c *Canvas) {
		if width > 0 {
			c.width = width
		}
		if height > 0 {
			c.height = height
		}
	}
}

// WithTool selects the initial drawing tool.
func WithTool(kind ToolKind) Option {
	return func(c *Canvas) { c.tool = NewTool(kind, c.primary) }
}

// WithPrimaryColor sets the initial primary color.
func WithPrimaryColor(col Color) Option {
	return func(c *Canvas) {
		c.primary = col
		c.tool.SetPrimaryColor(col)
	}
}

// WithSurfaces attaches the main and preview render targets.
func WithSurfaces(main, preview Surface) Option {
	return func(c *Canvas) {
		c.main = main
		c.preview = preview
	}
}

// NewCanvas creates a canvas with a brush tool and a blue primary color,
// matching the session defaults of the original surface.
func NewCanvas(opts ...Option) *Canvas {
	c := &Canvas{
		width:     DefaultWidth,
		height:    DefaultHeight,
		primary:   RGB(0, 0, 255),
		secondary: RGB(255, 255, 255),
	}
	c.tool = NewTool(ToolBrush, c.primary)
	for _, o := range opts {
		o(c)
	}
	return c
}

// Size returns the canvas pixel dimensions.
func (c *Canvas) Size() (width, height int) { return c.width, c.height }

// AttachSurfaces installs the render targets after construction. Until
// both are attached, events still mutate state but repaints are skipped.
func (c *Canvas) AttachSurfaces(main, preview Surface) {
	c.main = main
	c.preview = preview
	c.repaint()
}

// Tool reports the kind of the active tool.
func (c *Canvas) Tool() ToolKind { return c.tool.Kind }

// Shapes returns the committed shapes in paint order.
func (c *Canvas) Shapes() []Shape { return c.history.Committed() }

// History exposes the undo/redo state for inspection.
func (c *Canvas) History() *History { return &c.history }

// PrimaryColor returns the current primary color.
func (c *Canvas) PrimaryColor() Color { return c.primary }

// PointerDown starts a gesture at p.
func (c *Canvas) PointerDown(p Point) {
	c.pointerDown = true
	c.apply(c.tool.Start(p))
}

// PointerMove forwards a pointer sample to the active tool. Samples
// arriving without a pressed button are ignored.
func (c *Canvas) PointerMove(p Point) {
	if !c.pointerDown {
		return
	}
	c.apply(c.tool.Move(p))
}

// PointerUp ends the gesture at p.
func (c *Canvas) PointerUp(p Point) {
	if !c.pointerDown {
		return
	}
	c.pointerDown = false
	c.apply(c.tool.End(p))
}

// SelectTool replaces the active tool. Any in-progress gesture of the old
// tool is abandoned without committing, and the new tool is seeded with
// the current primary color.
func (c *Canvas) SelectTool(kind ToolKind) {
	c.pointerDown = false
	c.tool = NewTool(kind, c.primary)
	c.clearPreview()
	c.repaint()
}

// SetPrimaryColor updates the color used by subsequent commits.
func (c *Canvas) SetPrimaryColor(col Color) {
	c.primary = col
	c.tool.SetPrimaryColor(col)
}

// SetSecondaryColor stores the secondary color for future tools.
func (c *Canvas) SetSecondaryColor(col Color) {
	c.secondary = col
	c.tool.SetSecondaryColor(col)
}

// SetPrimaryColorHex parses a hex color string and applies it. A failed
// parse leaves the current color untouched and returns the typed error;
// callers at the UI boundary ignore the change rather than abort.
func (c *Canvas) SetPrimaryColorHex(s string) error {
	col, err := ParseHex(s)
	if err != nil {
		return err
	}
	c.SetPrimaryColor(col)
	return nil
}

// Undo removes the most recent committed shape and repaints.
func (c *Canvas) Undo() {
	if _, ok := c.history.Undo(); ok {
		c.repaint()
	}
}

// Redo restores the most recently undone shape and repaints.
func (c *Canvas) Redo() {
	if _, ok := c.history.Redo(); ok {
		c.repaint()
	}
}

// ClearShapes empties both history stacks and repaints the blank canvas.
func (c *Canvas) ClearShapes() {
	c.history.Clear()
	c.repaint()
}

// apply runs the full pipeline for one gesture outcome: history mutation,
// then a main-surface repaint, then the preview update the tool asked for.
func (c *Canvas) apply(g Gesture) {
	if g.Commit != nil {
		c.history.Push(*g.Commit)
	}
	c.repaint()
	if g.ClearPreview || g.Preview != nil {
		c.clearPreview()
	}
	if g.Preview != nil && c.preview != nil {
		g.Preview.Render(c.preview)
	}
}

// repaint redraws the main surface from scratch: opaque white, then every
// committed shape in insertion order. Later shapes draw over earlier ones.
func (c *Canvas) repaint() {
	if c.main == nil {
		log.Printf("paint: main surface not attached, skipping repaint")
		return
	}
	w, h := float64(c.width), float64(c.height)
	c.main.ClearRect(0, 0, w, h)
	c.main.FillRect(0, 0, w, h, White)
	for _, s := range c.history.Committed() {
		s.Render(c.main)
	}
}

func (c *Canvas) clearPreview() {
	if c.preview == nil {
		log.Printf("paint: preview surface not attached, skipping clear")
		return
	}
	c.preview.ClearRect(0, 0, float64(c.width), float64(c.height))
}
