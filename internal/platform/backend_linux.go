//go:build linux

package platform

import (
	"fmt"

	"github.com/1broseidon/moncycle/internal/placement"
	"github.com/1broseidon/moncycle/internal/x11"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/xrect"
)

// LinuxBackend wraps an X11 connection behind the platform Backend interface.
type LinuxBackend struct {
	conn *x11.Connection
}

var _ Backend = (*LinuxBackend)(nil)

// NewBackend opens the X11 display. The only supported name on Linux is
// "x11"; "auto" and "" select it too.
func NewBackend(name string) (Backend, error) {
	switch name {
	case "", "auto", "x11":
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, name)
	}
	return NewLinuxBackendFromDisplay()
}

// NewLinuxBackendFromDisplay creates a new Linux backend by opening a fresh X11 connection.
func NewLinuxBackendFromDisplay() (*LinuxBackend, error) {
	conn, err := x11.NewConnection()
	if err != nil {
		return nil, err
	}
	return &LinuxBackend{conn: conn}, nil
}

// Close closes the underlying X11 connection.
func (b *LinuxBackend) Close() error {
	if b != nil && b.conn != nil {
		b.conn.Close()
	}
	return nil
}

// Monitors returns all active monitors in enumeration order.
func (b *LinuxBackend) Monitors() ([]placement.Monitor, error) {
	conn, err := b.connection()
	if err != nil {
		return nil, err
	}

	xmons, err := conn.GetMonitors()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", placement.ErrEnumeration, err)
	}

	monitors := make([]placement.Monitor, 0, len(xmons))
	for _, m := range xmons {
		monitors = append(monitors, placement.Monitor{
			ID:   placement.MonitorID(m.ID),
			Name: m.Name,
			Bounds: placement.Rect{
				X:      m.X,
				Y:      m.Y,
				Width:  m.Width,
				Height: m.Height,
			},
		})
	}
	return monitors, nil
}

// ActiveWindow returns the currently focused window.
func (b *LinuxBackend) ActiveWindow() (WindowID, error) {
	conn, err := b.connection()
	if err != nil {
		return 0, err
	}

	wid, err := conn.GetActiveWindow()
	if err != nil {
		return 0, err
	}
	return WindowID(wid), nil
}

// WindowRect returns the window's frame rectangle in root coordinates.
func (b *LinuxBackend) WindowRect(windowID WindowID) (placement.Rect, error) {
	conn, err := b.connection()
	if err != nil {
		return placement.Rect{}, err
	}

	geom, err := conn.GetFrameGeometry(xproto.Window(windowID))
	if err != nil {
		return placement.Rect{}, err
	}
	x, y, w, h := xrect.RectPieces(geom)
	return placement.Rect{X: x, Y: y, Width: w, Height: h}, nil
}

// MonitorUnder has no X11 primitive, so it applies the nearest-monitor rule
// to the window's frame without another round-trip.
func (b *LinuxBackend) MonitorUnder(windowID WindowID, window placement.Rect, monitors []placement.Monitor) (placement.MonitorID, error) {
	mon, ok := NearestMonitor(window, monitors)
	if !ok {
		return 0, placement.ErrNoMonitors
	}
	return mon.ID, nil
}

// Apply moves and optionally resizes a window.
func (b *LinuxBackend) Apply(windowID WindowID, bounds placement.Rect, hints ApplyHints) error {
	conn, err := b.connection()
	if err != nil {
		return err
	}
	if !hints.Move && !hints.Resize {
		return nil
	}

	return conn.MoveResizeWindow(
		xproto.Window(windowID),
		bounds.X,
		bounds.Y,
		bounds.Width,
		bounds.Height,
		hints.Resize,
	)
}

func (b *LinuxBackend) connection() (*x11.Connection, error) {
	if b == nil || b.conn == nil {
		return nil, fmt.Errorf("x11 backend connection is nil")
	}
	return b.conn, nil
}
