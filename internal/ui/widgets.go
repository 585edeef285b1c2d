package ui

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/mobile/event/key"

	"github.com/example/paintbox/internal/paint"
)

const (
	titleHeight  = 24
	bottomHeight = 24
)

var toolbarWidth = 64

// Swatch is a named palette entry shown in the toolbar.
type Swatch struct {
	Name  string
	Color paint.Color
}

var (
	paletteMu sync.RWMutex
	swatches  = []Swatch{
		{"Black", paint.RGB(0, 0, 0)},
		{"White", paint.RGB(255, 255, 255)},
		{"Red", paint.RGB(255, 0, 0)},
		{"Lime", paint.RGB(0, 255, 0)},
		{"Blue", paint.RGB(0, 0, 255)},
		{"Yellow", paint.RGB(255, 255, 0)},
		{"Cyan", paint.RGB(0, 255, 255)},
		{"Magenta", paint.RGB(255, 0, 255)},
		{"Maroon", paint.RGB(128, 0, 0)},
		{"Green", paint.RGB(0, 128, 0)},
		{"Navy", paint.RGB(0, 0, 128)},
		{"Olive", paint.RGB(128, 128, 0)},
		{"Teal", paint.RGB(0, 128, 128)},
		{"Purple", paint.RGB(128, 0, 128)},
		{"Silver", paint.RGB(192, 192, 192)},
		{"Gray", paint.RGB(128, 128, 128)},
	}
)

// Swatches returns a copy of the palette entries shown in the toolbar.
func Swatches() []Swatch {
	paletteMu.RLock()
	defer paletteMu.RUnlock()
	out := make([]Swatch, len(swatches))
	copy(out, swatches)
	return out
}

// EnsureSwatch makes sure col is present in the palette and returns its index.
func EnsureSwatch(col paint.Color, name string) int {
	paletteMu.Lock()
	defer paletteMu.Unlock()
	for idx, existing := range swatches {
		if existing.Color == col {
			if name != "" && existing.Name == "" {
				swatches[idx].Name = name
			}
			return idx
		}
	}
	if name == "" {
		name = col.Hex()
	}
	swatches = append(swatches, Swatch{Name: name, Color: col})
	return len(swatches) - 1
}

func paletteLen() int {
	paletteMu.RLock()
	defer paletteMu.RUnlock()
	return len(swatches)
}

func swatchAt(idx int) Swatch {
	paletteMu.RLock()
	defer paletteMu.RUnlock()
	if len(swatches) == 0 {
		return Swatch{}
	}
	if idx < 0 {
		idx = 0
	}
	if idx >= len(swatches) {
		idx = len(swatches) - 1
	}
	return swatches[idx]
}

func clampSwatchIndex(idx int) int {
	paletteMu.RLock()
	defer paletteMu.RUnlock()
	if len(swatches) == 0 {
		return 0
	}
	if idx < 0 {
		return 0
	}
	if idx >= len(swatches) {
		return len(swatches) - 1
	}
	return idx
}

var messageFace font.Face

func init() {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		log.Fatalf("parse font: %v", err)
	}
	messageFace, err = opentype.NewFace(f, &opentype.FaceOptions{Size: 32, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		log.Fatalf("font face: %v", err)
	}
}

// KeyShortcut describes a keyboard combination that triggers an action.
type KeyShortcut struct {
	Rune      rune
	Code      key.Code
	Modifiers key.Modifiers
}

// KeyboardShortcuts returns the shortcuts associated with an action.
type KeyboardShortcuts interface {
	KeyboardShortcuts() []KeyShortcut
}

// shortcutList is a helper to easily satisfy the KeyboardShortcuts interface.
type shortcutList []KeyShortcut

func (s shortcutList) KeyboardShortcuts() []KeyShortcut { return []KeyShortcut(s) }

// ButtonState describes the visual state of a button.
type ButtonState int

const (
	StateDefault ButtonState = iota
	StateHover
	StatePressed
)

// Button represents an interactive UI element.
// Activate performs the button's action when clicked.
type Button interface {
	Draw(dst *image.RGBA, state ButtonState)
	Rect() image.Rectangle
	SetRect(r image.Rectangle)
	Activate()
}

// CacheButton wraps another Button and caches its rendered states.
// It delegates all interface methods to the wrapped Button while
// caching the result of Draw for each state.
type CacheButton struct {
	Button
	cache [3]*image.RGBA
}

var _ Button = (*CacheButton)(nil)

func (cb *CacheButton) Draw(dst *image.RGBA, state ButtonState) {
	if cb.cache[state] == nil {
		rect := cb.Button.Rect()
		img := image.NewRGBA(rect)
		cb.Button.Draw(img, state)
		cb.cache[state] = img
	}
	draw.Draw(dst, cb.Button.Rect(), cb.cache[state], cb.Button.Rect().Min, draw.Src)
}

func (cb *CacheButton) Rect() image.Rectangle { return cb.Button.Rect() }

func (cb *CacheButton) SetRect(r image.Rectangle) {
	if r != cb.Button.Rect() {
		cb.Button.SetRect(r)
		cb.cache = [3]*image.RGBA{}
	}
}

func (cb *CacheButton) Activate() { cb.Button.Activate() }

// ToolButton represents a toolbar button that selects a drawing tool.
type ToolButton struct {
	label string
	kind  paint.ToolKind
	rect  image.Rectangle
	// onSelect is called when the button is activated.
	onSelect func()
}

func (tb *ToolButton) Draw(dst *image.RGBA, state ButtonState) {
	c := color.RGBA{200, 200, 200, 255}
	switch state {
	case StateHover:
		c = color.RGBA{180, 180, 180, 255}
	case StatePressed:
		c = color.RGBA{150, 150, 150, 255}
	}
	draw.Draw(dst, tb.rect, &image.Uniform{c}, image.Point{}, draw.Src)
	d := &font.Drawer{Dst: dst, Src: image.Black, Face: basicfont.Face7x13,
		Dot: fixed.P(tb.rect.Min.X+4, tb.rect.Min.Y+16)}
	d.DrawString(tb.label)
}

func (tb *ToolButton) Rect() image.Rectangle { return tb.rect }

func (tb *ToolButton) SetRect(r image.Rectangle) {
	if r != tb.rect {
		tb.rect = r
	}
}

func (tb *ToolButton) Activate() {
	if tb.onSelect != nil {
		tb.onSelect()
	}
}

// Shortcut draws a labelled action in the bottom bar.
type Shortcut struct {
	label  string
	action func()
	rect   image.Rectangle
}

func (s *Shortcut) Draw(dst *image.RGBA, state ButtonState) {
	col := color.RGBA{200, 200, 200, 255}
	switch state {
	case StateHover:
		col = color.RGBA{180, 180, 180, 255}
	case StatePressed:
		col = color.RGBA{150, 150, 150, 255}
	}
	draw.Draw(dst, s.rect, &image.Uniform{col}, image.Point{}, draw.Src)
	drawBorder(dst, s.rect, color.Black)
	d := &font.Drawer{Dst: dst, Src: image.Black, Face: basicfont.Face7x13,
		Dot: fixed.P(s.rect.Min.X+2, s.rect.Min.Y+14)}
	d.DrawString(s.label)
}

func (s *Shortcut) Rect() image.Rectangle { return s.rect }

func (s *Shortcut) SetRect(r image.Rectangle) {
	if r != s.rect {
		s.rect = r
	}
}

func (s *Shortcut) Activate() {
	if s.action != nil {
		s.action()
	}
}

var shortcutRects []Shortcut
var hoverShortcut = -1

var toolButtons []*CacheButton
var hoverTool = -1
var hoverPalette = -1

// keyboardAction maps a keyboard shortcut to the action name.
var keyboardAction = map[KeyShortcut]string{}

func drawBorder(dst *image.RGBA, r image.Rectangle, col color.Color) {
	for x := r.Min.X; x < r.Max.X; x++ {
		dst.Set(x, r.Min.Y, col)
		dst.Set(x, r.Max.Y-1, col)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		dst.Set(r.Min.X, y, col)
		dst.Set(r.Max.X-1, y, col)
	}
}

func drawTitleBar(dst *image.RGBA, width int) {
	draw.Draw(dst, image.Rect(0, 0, width, titleHeight),
		&image.Uniform{color.RGBA{220, 220, 220, 255}}, image.Point{}, draw.Src)
	title := &font.Drawer{Dst: dst, Src: image.Black, Face: basicfont.Face7x13,
		Dot: fixed.P(4, 16)}
	title.DrawString("Paintbox")
}

func drawToolbar(dst *image.RGBA, height int, current paint.ToolKind, colIdx int) {
	draw.Draw(dst, image.Rect(0, titleHeight, toolbarWidth, height),
		&image.Uniform{color.RGBA{220, 220, 220, 255}}, image.Point{}, draw.Src)

	y := titleHeight
	for i, cb := range toolButtons {
		r := image.Rect(0, y, toolbarWidth, y+24)
		cb.SetRect(r)
		tb := cb.Button.(*ToolButton)
		state := StateDefault
		if tb.kind == current {
			state = StatePressed
		} else if i == hoverTool {
			state = StateHover
		}
		cb.Draw(dst, state)
		y += 24
	}

	// color swatches below tools
	y += 4
	x := 4
	for i, sw := range Swatches() {
		rect := image.Rect(x, y, x+16, y+16)
		draw.Draw(dst, rect, &image.Uniform{sw.Color.NRGBA()}, image.Point{}, draw.Src)
		if i == hoverPalette {
			draw.Draw(dst, rect, &image.Uniform{color.NRGBA{255, 255, 255, 80}}, image.Point{}, draw.Over)
		}
		if i == colIdx {
			drawBorder(dst, rect, color.White)
		}
		x += 18
		if x+16 > toolbarWidth {
			x = 4
			y += 18
		}
	}
}

func drawShortcuts(dst *image.RGBA, width, height int, undoDepth, redoDepth int, trigger func(string)) {
	rect := image.Rect(0, height-bottomHeight, width, height)
	draw.Draw(dst, rect, &image.Uniform{color.RGBA{220, 220, 220, 255}}, image.Point{}, draw.Src)
	shortcutRects = shortcutRects[:0]
	undoStr := fmt.Sprintf("^Z:undo (%d)", undoDepth)
	redoStr := fmt.Sprintf("^Y:redo (%d)", redoDepth)
	shortcuts := []Shortcut{
		{label: undoStr, action: func() { trigger("undo") }},
		{label: redoStr, action: func() { trigger("redo") }},
		{label: "D:clear", action: func() { trigger("clear") }},
		{label: "^C:copy image", action: func() { trigger("copy") }},
		{label: "^S:save", action: func() { trigger("save") }},
		{label: "Q:quit", action: func() { trigger("quit") }},
	}
	x := toolbarWidth + 4
	y := height - bottomHeight + 16
	meas := &font.Drawer{Face: basicfont.Face7x13}
	for i := range shortcuts {
		sc := &shortcuts[i]
		w := meas.MeasureString(sc.label).Ceil()
		sc.SetRect(image.Rect(x-2, y-14, x+w+2, y+4))
		state := StateDefault
		if i == hoverShortcut {
			state = StateHover
		}
		sc.Draw(dst, state)
		shortcutRects = append(shortcutRects, *sc)
		x = sc.rect.Max.X + 8
	}
}
