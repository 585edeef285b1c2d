package raster

import (
	"image"
	"io"
	"math"

	"github.com/gogpu/gg"

	"github.com/example/paintbox/internal/paint"
)

// Context is a Surface over a gg drawing context. It produces anti-aliased
// output and is what the headless renderer writes PNGs from.
type Context struct {
	dc *gg.Context
}

var _ paint.Surface = (*Context)(nil)

// NewContext creates an anti-aliased surface of the given pixel size.
func NewContext(width, height int) *Context {
	return &Context{dc: gg.NewContext(width, height)}
}

// ClearRect resets the surface to transparent. gg has no partial clear, so
// any region covering the full bounds clears everything; smaller regions
// are painted over with transparent-as-blank white instead. The drawing
// core only issues full-surface clears.
func (s *Context) ClearRect(x, y, w, h float64) {
	if coversBounds(x, y, w, h, s.dc.Width(), s.dc.Height()) {
		s.dc.ClearWithColor(gg.RGBA{})
		return
	}
	s.dc.SetColor(paint.White.NRGBA())
	s.dc.DrawRectangle(normalize(x, y, w, h))
	_ = s.dc.Fill()
}

// FillRect fills the box with c, normalizing negative extents.
func (s *Context) FillRect(x, y, w, h float64, c paint.Color) {
	s.dc.SetColor(c.NRGBA())
	s.dc.DrawRectangle(normalize(x, y, w, h))
	_ = s.dc.Fill()
}

// FillArc fills a circular sector between the start and end angles. A
// sweep of 2π or more fills the whole disc.
func (s *Context) FillArc(cx, cy, r, start, end float64, c paint.Color) {
	if r <= 0 {
		return
	}
	s.dc.SetColor(c.NRGBA())
	if end-start >= 2*math.Pi-1e-9 {
		s.dc.DrawCircle(cx, cy, r)
		_ = s.dc.Fill()
		return
	}
	// Approximate the sector with a polygon fan from the center.
	const step = math.Pi / 64
	s.dc.MoveTo(cx, cy)
	for a := start; a < end; a += step {
		s.dc.LineTo(cx+r*math.Cos(a), cy+r*math.Sin(a))
	}
	s.dc.LineTo(cx+r*math.Cos(end), cy+r*math.Sin(end))
	s.dc.ClosePath()
	_ = s.dc.Fill()
}

// Image returns the rendered pixels.
func (s *Context) Image() image.Image { return s.dc.Image() }

// EncodePNG writes the surface content as PNG.
func (s *Context) EncodePNG(w io.Writer) error { return s.dc.EncodePNG(w) }

func normalize(x, y, w, h float64) (float64, float64, float64, float64) {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	return x, y, w, h
}

func coversBounds(x, y, w, h float64, width, height int) bool {
	x, y, w, h = normalize(x, y, w, h)
	return x <= 0 && y <= 0 && x+w >= float64(width) && y+h >= float64(height)
}
