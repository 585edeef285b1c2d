// Package ui runs the interactive paint window on top of shiny.
package ui

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log"
	"sync"
	"time"
	"unicode"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	mpaint "golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/paintbox/internal/export"
	"github.com/example/paintbox/internal/paint"
	"github.com/example/paintbox/internal/raster"
)

// frameDropThreshold specifies how many consecutive frames can be canceled
// before a draw is allowed to complete to keep the UI responsive.
const frameDropThreshold = 10

// App holds the window state for an interactive paint session.
type App struct {
	Canvas *paint.Canvas
	Sink   *export.Sink

	committed *raster.Image
	preview   *raster.Image

	updateCh chan struct{}

	onClose   func()
	closeOnce sync.Once
}

// Option modifies an App during creation.
type Option func(*App)

// WithCanvas sets the drawing canvas the window operates on.
func WithCanvas(c *paint.Canvas) Option { return func(a *App) { a.Canvas = c } }

// WithSurfaces sets the committed and preview layers blitted into the window.
func WithSurfaces(committed, preview *raster.Image) Option {
	return func(a *App) {
		a.committed = committed
		a.preview = preview
	}
}

// WithSink sets the export destination used by the save and copy actions.
func WithSink(s *export.Sink) Option { return func(a *App) { a.Sink = s } }

// WithOnClose registers a callback invoked when the window closes.
func WithOnClose(fn func()) Option { return func(a *App) { a.onClose = fn } }

// New creates an App with the provided options. A default canvas and
// surfaces are created when the caller supplies none.
func New(opts ...Option) *App {
	a := &App{updateCh: make(chan struct{}, 1)}
	for _, o := range opts {
		o(a)
	}
	if a.Canvas == nil {
		a.Canvas = paint.NewCanvas()
	}
	if a.committed == nil || a.preview == nil {
		w, h := a.Canvas.Size()
		a.committed = raster.NewImage(w, h)
		a.preview = raster.NewImage(w, h)
		a.Canvas.AttachSurfaces(a.committed, a.preview)
	}
	if a.Sink == nil {
		a.Sink = export.NewSink()
	}
	return a
}

// NotifyChanged requests a repaint of the window when the canvas mutates
// outside the event loop.
func (a *App) NotifyChanged() {
	if a.updateCh == nil {
		return
	}
	select {
	case a.updateCh <- struct{}{}:
	default:
	}
}

func (a *App) notifyClose() {
	a.closeOnce.Do(func() {
		if a.onClose != nil {
			a.onClose()
		}
	})
}

// Run executes the UI loop using shiny's driver.
func (a *App) Run() { driver.Main(a.Main) }

// Main is the window loop; exported for drivers that manage their own
// screen lifetime.
func (a *App) Main(s screen.Screen) {
	canvas := a.Canvas
	canvasW, canvasH := canvas.Size()

	// Ensure the toolbar is wide enough to fit the program title and the
	// tool button labels so the UI contents are not clipped on start up.
	d := &font.Drawer{Face: basicfont.Face7x13}
	max := d.MeasureString("Paintbox").Ceil() + 8 // padding
	toolLabels := []string{"B:Brush", "X:Rect"}
	for _, lbl := range toolLabels {
		w := d.MeasureString(lbl).Ceil() + 8
		if w > max {
			max = w
		}
	}
	if max > toolbarWidth {
		toolbarWidth = max
	}

	width := canvasW + toolbarWidth
	height := canvasH + titleHeight + bottomHeight
	w, err := s.NewWindow(&screen.NewWindowOptions{Width: width, Height: height, Title: "Paintbox"})
	if err != nil {
		log.Fatalf("new window: %v", err)
	}
	defer w.Release()

	defer a.notifyClose()

	if a.updateCh != nil {
		done := make(chan struct{})
		go func() {
			for {
				select {
				case <-a.updateCh:
					w.Send(mpaint.Event{})
				case <-done:
					return
				}
			}
		}()
		defer close(done)
	}

	colorIdx := EnsureSwatch(canvas.PrimaryColor(), "")
	var message string
	var messageUntil time.Time
	var confirmClear bool

	var paintMu sync.Mutex
	var paintCancel context.CancelFunc
	var dropCount int
	paintCh := make(chan frameState, 1)
	go func() {
		for st := range paintCh {
			ctx, cancel := context.WithCancel(context.Background())
			paintMu.Lock()
			paintCancel = cancel
			paintMu.Unlock()
			a.drawFrame(ctx, s, w, st)
			paintMu.Lock()
			paintCancel = nil
			if ctx.Err() == nil {
				dropCount = 0
			}
			paintMu.Unlock()
		}
	}()

	say := func(msg string) {
		message = msg
		log.Print(msg)
		messageUntil = time.Now().Add(2 * time.Second)
	}

	keyboardAction = map[KeyShortcut]string{}
	actions := map[string]func(){}
	register := func(name string, keys KeyboardShortcuts, fn func()) {
		actions[name] = fn
		if keys != nil {
			for _, sc := range keys.KeyboardShortcuts() {
				keyboardAction[sc] = name
			}
		}
	}

	register("undo", shortcutList{
		{Rune: 'z', Modifiers: key.ModControl},
		{Code: key.CodeZ, Modifiers: key.ModControl},
	}, func() {
		canvas.Undo()
	})
	register("redo", shortcutList{
		{Rune: 'y', Modifiers: key.ModControl},
		{Code: key.CodeY, Modifiers: key.ModControl},
	}, func() {
		canvas.Redo()
	})
	register("clear", shortcutList{{Rune: 'd'}}, func() {
		canvas.ClearShapes()
	})
	register("save", shortcutList{
		{Rune: 's', Modifiers: key.ModControl},
		{Code: key.CodeS, Modifiers: key.ModControl},
	}, func() {
		path, err := a.Sink.SavePNG(a.Merged())
		if err != nil {
			log.Printf("save: %v", err)
			return
		}
		say(fmt.Sprintf("saved %s", path))
	})
	register("copy", shortcutList{
		{Rune: 'c', Modifiers: key.ModControl},
		{Code: key.CodeC, Modifiers: key.ModControl},
	}, func() {
		if err := a.Sink.CopyToClipboard(a.Merged()); err != nil {
			log.Printf("copy: %v", err)
			return
		}
		say("image copied to clipboard")
	})

	toolButtons = []*CacheButton{
		{Button: &ToolButton{label: "B:Brush", kind: paint.ToolBrush}},
		{Button: &ToolButton{label: "X:Rect", kind: paint.ToolRect}},
	}
	for _, cb := range toolButtons {
		tb := cb.Button.(*ToolButton)
		kind := tb.kind
		tb.onSelect = func() { canvas.SelectTool(kind) }
	}

	handleShortcut := func(action string) {
		switch action {
		case "quit":
			w.Send(lifecycle.Event{To: lifecycle.StageDead})
			return
		case "clear":
			// destructive, ask twice like the keyboard path
			if !confirmClear {
				confirmClear = true
				say("press D again to clear")
				w.Send(mpaint.Event{})
				return
			}
			confirmClear = false
		}
		if fn, ok := actions[action]; ok {
			fn()
		}
		w.Send(mpaint.Event{})
	}

	canvasRect := image.Rect(toolbarWidth, titleHeight, toolbarWidth+canvasW, titleHeight+canvasH)

	for {
		e := w.NextEvent()
		switch e := e.(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				paintMu.Lock()
				if paintCancel != nil {
					paintCancel()
				}
				paintMu.Unlock()
				return
			}
		case size.Event:
			width = e.WidthPx
			height = e.HeightPx
			w.Send(mpaint.Event{})
		case mpaint.Event:
			paintMu.Lock()
			if paintCancel != nil {
				if dropCount < frameDropThreshold {
					paintCancel()
					dropCount++
				}
			}
			paintMu.Unlock()
			st := frameState{
				width:          width,
				height:         height,
				canvasRect:     canvasRect,
				tool:           canvas.Tool(),
				colorIdx:       clampSwatchIndex(colorIdx),
				undoDepth:      canvas.History().Len(),
				redoDepth:      canvas.History().RedoLen(),
				message:        message,
				messageUntil:   messageUntil,
				handleShortcut: handleShortcut,
			}
			select {
			case paintCh <- st:
			default:
				// Replace a stale pending frame. The drain must not
				// block in case the draw goroutine just took it.
				select {
				case <-paintCh:
				default:
				}
				paintCh <- st
			}
		case mouse.Event:
			if message != "" && time.Now().Before(messageUntil) && e.Direction == mouse.DirPress {
				messageUntil = time.Time{}
				w.Send(mpaint.Event{})
				continue
			}
			p := image.Point{int(e.X), int(e.Y)}
			if p.Y >= height-bottomHeight {
				hoverShortcut = -1
				for i := range shortcutRects {
					if p.In(shortcutRects[i].rect) {
						hoverShortcut = i
						if e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress {
							shortcutRects[i].Activate()
						}
						break
					}
				}
				if e.Direction == mouse.DirNone {
					w.Send(mpaint.Event{})
				}
				continue
			}
			if p.X < toolbarWidth && p.Y >= titleHeight {
				pos := p.Y - titleHeight
				idx := pos / 24
				if idx < len(toolButtons) {
					if e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress {
						toolButtons[idx].Activate()
						w.Send(mpaint.Event{})
					}
					hoverTool = idx
					if e.Direction == mouse.DirNone {
						w.Send(mpaint.Event{})
					}
					continue
				}
				pos -= len(toolButtons) * 24
				pos -= 4
				paletteCols := toolbarWidth / 18
				if pos >= 0 {
					colX := (p.X - 4) / 18
					colY := pos / 18
					cidx := colY*paletteCols + colX
					if cidx >= 0 && cidx < paletteLen() {
						if e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress {
							colorIdx = cidx
							canvas.SetPrimaryColor(swatchAt(cidx).Color)
							w.Send(mpaint.Event{})
						}
						hoverPalette = cidx
						if e.Direction == mouse.DirNone {
							w.Send(mpaint.Event{})
						}
						continue
					}
				}
				if e.Direction == mouse.DirNone {
					hoverTool = -1
					hoverPalette = -1
					w.Send(mpaint.Event{})
				}
				continue
			}

			if e.Button == mouse.ButtonLeft || e.Direction == mouse.DirNone {
				pt := paint.Pt(float64(p.X-canvasRect.Min.X), float64(p.Y-canvasRect.Min.Y))
				switch e.Direction {
				case mouse.DirPress:
					if p.In(canvasRect) {
						canvas.PointerDown(pt)
						w.Send(mpaint.Event{})
					}
				case mouse.DirNone:
					canvas.PointerMove(pt)
					w.Send(mpaint.Event{})
				case mouse.DirRelease:
					canvas.PointerUp(pt)
					w.Send(mpaint.Event{})
				}
			}
		case key.Event:
			if e.Direction != key.DirPress {
				continue
			}
			action, ok := keyboardAction[KeyShortcut{Rune: unicode.ToLower(e.Rune), Modifiers: e.Modifiers}]
			if !ok {
				action, ok = keyboardAction[KeyShortcut{Code: e.Code, Modifiers: e.Modifiers}]
			}
			if ok {
				if action == "clear" {
					if !confirmClear {
						confirmClear = true
						say("press D again to clear")
						w.Send(mpaint.Event{})
						continue
					}
					confirmClear = false
				} else {
					confirmClear = false
				}
				if fn, ok := actions[action]; ok {
					fn()
				}
				w.Send(mpaint.Event{})
				continue
			}
			confirmClear = false
			switch e.Rune {
			case 'b', 'B':
				canvas.SelectTool(paint.ToolBrush)
				w.Send(mpaint.Event{})
			case 'x', 'X':
				canvas.SelectTool(paint.ToolRect)
				w.Send(mpaint.Event{})
			case 'q', 'Q':
				paintMu.Lock()
				if paintCancel != nil {
					paintCancel()
				}
				paintMu.Unlock()
				return
			}
		}
	}
}

// Merged flattens the committed and preview layers into a single image for
// export.
func (a *App) Merged() *image.RGBA {
	out := image.NewRGBA(a.committed.Bounds())
	draw.Draw(out, out.Bounds(), a.committed.RGBA(), image.Point{}, draw.Src)
	draw.Draw(out, out.Bounds(), a.preview.RGBA(), image.Point{}, draw.Over)
	return out
}

type frameState struct {
	width, height  int
	canvasRect     image.Rectangle
	tool           paint.ToolKind
	colorIdx       int
	undoDepth      int
	redoDepth      int
	message        string
	messageUntil   time.Time
	handleShortcut func(string)
}

func (a *App) drawFrame(ctx context.Context, s screen.Screen, w screen.Window, st frameState) {
	b, err := s.NewBuffer(image.Point{st.width, st.height})
	if err != nil {
		log.Printf("new buffer: %v", err)
		return
	}
	defer b.Release()

	draw.Draw(b.RGBA(), b.Bounds(), &image.Uniform{color.RGBA{220, 220, 220, 255}}, image.Point{}, draw.Src)
	if ctx.Err() != nil {
		return
	}

	xdraw.NearestNeighbor.Scale(b.RGBA(), st.canvasRect, a.committed.RGBA(), a.committed.Bounds(), draw.Over, nil)
	xdraw.NearestNeighbor.Scale(b.RGBA(), st.canvasRect, a.preview.RGBA(), a.preview.Bounds(), draw.Over, nil)
	if ctx.Err() != nil {
		return
	}

	drawTitleBar(b.RGBA(), st.width)
	drawToolbar(b.RGBA(), st.height, st.tool, st.colorIdx)
	drawShortcuts(b.RGBA(), st.width, st.height, st.undoDepth, st.redoDepth, st.handleShortcut)
	if ctx.Err() != nil {
		return
	}

	if st.message != "" && time.Now().Before(st.messageUntil) {
		d := &font.Drawer{Dst: b.RGBA(), Src: image.Black, Face: messageFace}
		wmsg := d.MeasureString(st.message).Ceil()
		ascent := messageFace.Metrics().Ascent.Ceil()
		descent := messageFace.Metrics().Descent.Ceil()
		px := (st.width - wmsg) / 2
		py := (st.height-ascent-descent)/2 + ascent
		rect := image.Rect(px-8, py-ascent-8, px+wmsg+8, py+descent+8)
		draw.Draw(b.RGBA(), rect, &image.Uniform{color.RGBA{255, 255, 255, 230}}, image.Point{}, draw.Over)
		drawBorder(b.RGBA(), rect, color.Black)
		d.Dot = fixed.P(px, py)
		d.DrawString(st.message)
	}

	if ctx.Err() != nil {
		return
	}

	w.Upload(image.Point{}, b, b.Bounds())
	w.Publish()
}
