package paint

// DabRadius is the radius of a single brush dab.
const DabRadius = 5

// ToolKind discriminates the closed set of drawing tools.
type ToolKind int

const (
	ToolBrush ToolKind = iota
	ToolRect
)

// String returns the tool name used by the CLI and config.
func (k ToolKind) String() string {
	switch k {
	case ToolBrush:
		return "brush"
	case ToolRect:
		return "rect"
	}
	return "unknown"
}

// Tool turns one pointer-down..pointer-up gesture into zero or more
// committed shapes and an optional transient preview. A Tool instance
// carries its own gesture state (the rectangle anchor); switching tools
// replaces the instance wholesale, so abandoned state never leaks across
// a switch.
type Tool struct {
	Kind      ToolKind
	primary   Color
	secondary Color
	anchor    Point
}

// NewTool creates a tool seeded with the given primary color.
func NewTool(kind ToolKind, primary Color) *Tool {
	return &Tool{Kind: kind, primary: primary}
}

// Gesture is the outcome of feeding one pointer event to a tool. Commit,
// when non-nil, is appended to the history. Preview, when non-nil, replaces
// the preview surface content; ClearPreview wipes the preview surface
// without publishing a replacement.
type Gesture struct {
	Commit       *Shape
	Preview      *Shape
	ClearPreview bool
}

// Start begins a gesture at p. The brush commits its first dab
// immediately; the rectangle tool only records the anchor.
func (t *Tool) Start(p Point) Gesture {
	switch t.Kind {
	case ToolBrush:
		s := Circle(p, DabRadius, t.primary)
		return Gesture{Commit: &s}
	case ToolRect:
		t.anchor = p
		return Gesture{}
	}
	return Gesture{}
}

// Move handles a pointer sample while the gesture is active. The brush
// commits one dab per sample with no interpolation between samples, so a
// fast stroke leaves gaps; that is the defined behavior, not a defect.
// The rectangle tool republishes its candidate to the preview only.
func (t *Tool) Move(p Point) Gesture {
	switch t.Kind {
	case ToolBrush:
		s := Circle(p, DabRadius, t.primary)
		return Gesture{Commit: &s}
	case ToolRect:
		s := Rect(t.anchor, p, t.primary)
		return Gesture{Preview: &s}
	}
	return Gesture{}
}

// End finishes the gesture at p. The brush stroke is already fully
// committed; the rectangle tool commits exactly one shape spanning
// anchor to p and drops its preview.
func (t *Tool) End(p Point) Gesture {
	switch t.Kind {
	case ToolBrush:
		return Gesture{}
	case ToolRect:
		s := Rect(t.anchor, p, t.primary)
		return Gesture{Commit: &s, ClearPreview: true}
	}
	return Gesture{}
}

// SetPrimaryColor changes the color used by subsequent commits. Already
// committed shapes keep the color they were created with.
func (t *Tool) SetPrimaryColor(c Color) { t.primary = c }

// SetSecondaryColor is reserved for future tools; both current kinds
// ignore it.
func (t *Tool) SetSecondaryColor(c Color) { t.secondary = c }

// PrimaryColor returns the color the next commit will use.
func (t *Tool) PrimaryColor() Color { return t.primary }
