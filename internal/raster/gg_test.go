package raster

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/example/paintbox/internal/paint"
)

func nrgbaAt(t *testing.T, s *Context, x, y int) color.NRGBA {
	t.Helper()
	return color.NRGBAModel.Convert(s.Image().At(x, y)).(color.NRGBA)
}

func TestContextFillRect(t *testing.T) {
	s := NewContext(20, 20)
	s.FillRect(2, 2, 10, 10, paint.RGB(255, 0, 0))

	if got := nrgbaAt(t, s, 6, 6); got.R != 255 || got.A != 255 {
		t.Errorf("inside pixel = %v, want opaque red", got)
	}
	if got := nrgbaAt(t, s, 16, 16); got.A != 0 {
		t.Errorf("outside pixel = %v, want transparent", got)
	}
}

func TestContextFillArcDisc(t *testing.T) {
	s := NewContext(30, 30)
	s.FillArc(15, 15, 6, 0, 6.2832, paint.RGB(0, 0, 255))

	if got := nrgbaAt(t, s, 15, 15); got.B != 255 || got.A != 255 {
		t.Errorf("center pixel = %v, want opaque blue", got)
	}
	if got := nrgbaAt(t, s, 15, 25); got.A != 0 {
		t.Errorf("pixel outside radius = %v, want transparent", got)
	}
}

func TestContextClearRect(t *testing.T) {
	s := NewContext(10, 10)
	s.FillRect(0, 0, 10, 10, paint.RGB(0, 255, 0))
	s.ClearRect(0, 0, 10, 10)

	if got := nrgbaAt(t, s, 5, 5); got.A != 0 {
		t.Errorf("pixel after clear = %v, want transparent", got)
	}
}

func TestContextEncodePNG(t *testing.T) {
	s := NewContext(4, 4)

	var buf bytes.Buffer
	if err := s.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG() error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Errorf("output does not start with PNG signature")
	}
}
