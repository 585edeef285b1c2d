// Package raster provides Surface implementations the drawing core renders
// onto: a plain image.RGBA backend for the interactive window and tests,
// and an anti-aliased gg backend for headless output.
package raster

import (
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/example/paintbox/internal/paint"
)

// Image is a Surface over an in-memory RGBA buffer. Fills blend with the
// existing content so translucent colors behave like their CSS rendering.
type Image struct {
	rgba *image.RGBA
}

var _ paint.Surface = (*Image)(nil)

// NewImage creates a transparent surface of the given pixel size.
func NewImage(width, height int) *Image {
	return &Image{rgba: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// RGBA exposes the backing buffer for blitting into window buffers.
func (s *Image) RGBA() *image.RGBA { return s.rgba }

// Bounds returns the pixel bounds of the surface.
func (s *Image) Bounds() image.Rectangle { return s.rgba.Bounds() }

// ClearRect resets the given region to fully transparent.
func (s *Image) ClearRect(x, y, w, h float64) {
	r := pixelRect(x, y, w, h).Intersect(s.rgba.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(s.rgba, r, image.Transparent, image.Point{}, draw.Src)
}

// FillRect fills the box with c. Negative extents offset in the opposite
// direction, so corners may arrive in any order.
func (s *Image) FillRect(x, y, w, h float64, c paint.Color) {
	r := pixelRect(x, y, w, h).Intersect(s.rgba.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(s.rgba, r, image.NewUniform(c.NRGBA()), image.Point{}, draw.Over)
}

// FillArc fills the circular sector between the start and end angles
// (radians, clockwise in image coordinates). A sweep of 2π or more fills
// the whole disc.
func (s *Image) FillArc(cx, cy, r, start, end float64, c paint.Color) {
	if r <= 0 {
		return
	}
	src := image.NewUniform(c.NRGBA())
	fullDisc := end-start >= 2*math.Pi-1e-9
	ir := int(math.Ceil(r))
	icx, icy := int(math.Round(cx)), int(math.Round(cy))
	for dy := -ir; dy <= ir; dy++ {
		fy := float64(dy)
		if math.Abs(fy) > r {
			continue
		}
		span := math.Sqrt(r*r - fy*fy)
		if fullDisc {
			row := image.Rect(icx-int(span), icy+dy, icx+int(span)+1, icy+dy+1)
			row = row.Intersect(s.rgba.Bounds())
			if !row.Empty() {
				draw.Draw(s.rgba, row, src, image.Point{}, draw.Over)
			}
			continue
		}
		for dx := -int(span); dx <= int(span); dx++ {
			if !angleWithin(math.Atan2(fy, float64(dx)), start, end) {
				continue
			}
			px := image.Rect(icx+dx, icy+dy, icx+dx+1, icy+dy+1).Intersect(s.rgba.Bounds())
			if !px.Empty() {
				draw.Draw(s.rgba, px, src, image.Point{}, draw.Over)
			}
		}
	}
}

// EncodePNG writes the surface content as PNG.
func (s *Image) EncodePNG(w io.Writer) error {
	return png.Encode(w, s.rgba)
}

// pixelRect converts a possibly-negative-extent box to a normalized
// integer rectangle.
func pixelRect(x, y, w, h float64) image.Rectangle {
	x0, x1 := x, x+w
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	y0, y1 := y, y+h
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return image.Rect(int(math.Floor(x0)), int(math.Floor(y0)), int(math.Ceil(x1)), int(math.Ceil(y1)))
}

// angleWithin reports whether a lies inside the sweep [start, end],
// tolerating sweeps that wrap past 2π.
func angleWithin(a, start, end float64) bool {
	twoPi := 2 * math.Pi
	norm := func(v float64) float64 {
		v = math.Mod(v, twoPi)
		if v < 0 {
			v += twoPi
		}
		return v
	}
	sweep := end - start
	if sweep >= twoPi {
		return true
	}
	a = norm(a - start)
	return a <= sweep
}
