package paint

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Parse failures are reported as wrapped sentinels so UI callers can decide
// to ignore a bad swatch value instead of tearing the session down.
var (
	// ErrInvalidFormat reports a hex string whose length is not 6 or 8 digits.
	ErrInvalidFormat = fmt.Errorf("invalid hex color format")
	// ErrInvalidComponent reports a 2-digit group that is not valid hex.
	ErrInvalidComponent = fmt.Errorf("invalid color component")
)

// Color is an immutable RGB value with an optional normalized alpha.
// The zero value is opaque black without alpha.
type Color struct {
	R, G, B uint8
	// A is the normalized alpha in [0, 1]; only meaningful when HasAlpha is set.
	A        float64
	HasAlpha bool
}

// RGB returns an opaque Color without an alpha component.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// RGBA returns a Color carrying a normalized alpha component.
func RGBA(r, g, b uint8, a float64) Color {
	return Color{R: r, G: g, B: b, A: a, HasAlpha: true}
}

// ParseHex parses "#RRGGBB" or "#RRGGBBAA" (the # is optional). The alpha
// byte of an 8-digit input is normalized by dividing by 255.
func ParseHex(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	parse := func(group, name string) (uint8, error) {
		v, err := strconv.ParseUint(group, 16, 8)
		if err != nil {
			return 0, fmt.Errorf("%w: %s %q", ErrInvalidComponent, name, group)
		}
		return uint8(v), nil
	}
	r, err := parse(hex[0:2], "red")
	if err != nil {
		return Color{}, err
	}
	g, err := parse(hex[2:4], "green")
	if err != nil {
		return Color{}, err
	}
	b, err := parse(hex[4:6], "blue")
	if err != nil {
		return Color{}, err
	}
	c := Color{R: r, G: g, B: b}
	if len(hex) == 8 {
		a, err := parse(hex[6:8], "alpha")
		if err != nil {
			return Color{}, err
		}
		c.A = float64(a) / 255
		c.HasAlpha = true
	}
	return c, nil
}

// CSS renders the color in CSS functional notation: "rgb(r, g, b)" without
// alpha, "rgba(r, g, b, a)" with the normalized alpha.
func (c Color) CSS() string {
	if c.HasAlpha {
		return fmt.Sprintf("rgba(%d, %d, %d, %g)", c.R, c.G, c.B, c.A)
	}
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Hex renders the color as "#RRGGBB" or "#RRGGBBAA". ParseHex(c.Hex())
// round-trips.
func (c Color) Hex() string {
	if c.HasAlpha {
		return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.alphaByte())
	}
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// NRGBA converts to the standard library color type. A color without an
// alpha component is opaque.
func (c Color) NRGBA() color.NRGBA {
	a := uint8(255)
	if c.HasAlpha {
		a = c.alphaByte()
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: a}
}

func (c Color) alphaByte() uint8 {
	a := c.A
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return uint8(a*255 + 0.5)
}
