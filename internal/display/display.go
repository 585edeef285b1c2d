// Package display queries the X server for monitor geometry so windows can
// be sized to fit the screen.
package display

import (
	"errors"
	"fmt"
	"image"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/randr"
	"github.com/jezek/xgb/xproto"
)

// Monitor describes a physical monitor in the X11 layout.
type Monitor struct {
	Index   int
	Name    string
	Rect    image.Rectangle
	Primary bool
}

var errNoMonitors = errors.New("no monitors available")

// Primary returns the primary monitor, falling back to the first connected
// one when the X server does not mark a primary.
func Primary() (Monitor, error) {
	monitors, err := List()
	if err != nil {
		return Monitor{}, err
	}
	for _, m := range monitors {
		if m.Primary {
			return m, nil
		}
	}
	return monitors[0], nil
}

// List retrieves all connected monitors using the X RandR extension.
func List() ([]Monitor, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("connect X server: %w", err)
	}
	defer conn.Close()

	setup := xproto.Setup(conn)
	if setup == nil {
		return nil, fmt.Errorf("xproto setup unavailable")
	}
	screen := setup.DefaultScreen(conn)
	if screen == nil {
		return nil, fmt.Errorf("xproto screen unavailable")
	}

	monitors, err := fetchMonitors(conn, screen.Root)
	if err != nil {
		return nil, err
	}
	if len(monitors) == 0 {
		return nil, errNoMonitors
	}
	return monitors, nil
}

func fetchMonitors(conn *xgb.Conn, root xproto.Window) ([]Monitor, error) {
	if err := randr.Init(conn); err != nil {
		return nil, fmt.Errorf("init randr: %w", err)
	}
	res, err := randr.GetScreenResources(conn, root).Reply()
	if err != nil {
		return nil, fmt.Errorf("randr screen resources: %w", err)
	}
	primaryOutput := randr.Output(0)
	if primary, err := randr.GetOutputPrimary(conn, root).Reply(); err == nil {
		primaryOutput = primary.Output
	}
	monitors := make([]Monitor, 0, len(res.Outputs))
	idx := 0
	for _, output := range res.Outputs {
		info, err := randr.GetOutputInfo(conn, output, res.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}
		if info.Connection != randr.ConnectionConnected || info.Crtc == 0 {
			continue
		}
		crtc, err := randr.GetCrtcInfo(conn, info.Crtc, res.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}
		monitors = append(monitors, Monitor{
			Index:   idx,
			Name:    string(info.Name),
			Rect:    image.Rect(int(crtc.X), int(crtc.Y), int(crtc.X)+int(crtc.Width), int(crtc.Y)+int(crtc.Height)),
			Primary: output == primaryOutput,
		})
		idx++
	}
	return monitors, nil
}

// FitCanvas shrinks the requested canvas size so it fits within the primary
// monitor, leaving room for window decorations and the toolbar. The size is
// returned unchanged when no display is reachable.
func FitCanvas(width, height int) (int, int) {
	const margin = 96
	mon, err := Primary()
	if err != nil {
		return width, height
	}
	maxW := mon.Rect.Dx() - margin
	maxH := mon.Rect.Dy() - margin
	if maxW > 0 && width > maxW {
		width = maxW
	}
	if maxH > 0 && height > maxH {
		height = maxH
	}
	return width, height
}
