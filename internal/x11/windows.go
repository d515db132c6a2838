package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/xrect"
	"github.com/BurntSushi/xgbutil/xwindow"
)

// GetActiveWindow returns the window named by _NET_ACTIVE_WINDOW
func (c *Connection) GetActiveWindow() (xproto.Window, error) {
	win, err := ewmh.ActiveWindowGet(c.XUtil)
	if err != nil {
		return 0, fmt.Errorf("failed to get active window: %w", err)
	}
	if win == 0 {
		return 0, fmt.Errorf("no active window")
	}
	return win, nil
}

// GetFrameGeometry returns the geometry of the window including the
// decorations the window manager added around it, in root coordinates.
func (c *Connection) GetFrameGeometry(windowID xproto.Window) (xrect.Rect, error) {
	geom, err := xwindow.New(c.XUtil, windowID).DecorGeometry()
	if err != nil {
		return nil, fmt.Errorf("failed to get window geometry: %w", err)
	}
	return geom, nil
}

// MoveResizeWindow places a window. When resize is false only the position is
// sent, leaving the size to the window manager.
func (c *Connection) MoveResizeWindow(windowID xproto.Window, x, y, width, height int, resize bool) error {
	// Window managers refuse to move maximized windows across monitors
	c.unmaximizeWindow(windowID)

	if !resize {
		width, height = 0, 0
	}

	// Use EWMH MoveResize for better WM compatibility
	if err := ewmh.MoveresizeWindow(c.XUtil, windowID, x, y, width, height); err != nil {
		// Fallback to direct window manipulation
		win := xwindow.New(c.XUtil, windowID)
		if resize {
			win.MoveResize(x, y, width, height)
		} else {
			win.Move(x, y)
		}
	}
	return nil
}

// unmaximizeWindow removes maximized state from a window
func (c *Connection) unmaximizeWindow(windowID xproto.Window) {
	states, err := ewmh.WmStateGet(c.XUtil, windowID)
	if err != nil {
		return
	}

	for _, state := range states {
		if state == "_NET_WM_STATE_MAXIMIZED_HORZ" || state == "_NET_WM_STATE_MAXIMIZED_VERT" {
			ewmh.WmStateReq(c.XUtil, windowID, ewmh.StateRemove, state)
		}
	}
}
