//go:build windows

package platform

import (
	"fmt"
	"unsafe"

	"github.com/1broseidon/moncycle/internal/placement"
	"github.com/lxn/win"
	"golang.org/x/sys/windows"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	procEnumDisplayMonitors           = user32.NewProc("EnumDisplayMonitors")
	procSetProcessDpiAwarenessContext = user32.NewProc("SetProcessDpiAwarenessContext")
)

// DPI_AWARENESS_CONTEXT_PER_MONITOR_AWARE_V2 is (HANDLE)-4.
const dpiAwarenessPerMonitorV2 = ^uintptr(3)

// WindowsBackend talks to user32 directly. It holds no handles of its own.
type WindowsBackend struct{}

var _ Backend = (*WindowsBackend)(nil)

// NewBackend returns the user32 backend. The only supported name on Windows
// is "windows"; "auto" and "" select it too.
func NewBackend(name string) (Backend, error) {
	switch name {
	case "", "auto", "windows":
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, name)
	}

	// Without per-monitor awareness Windows reports scaled coordinates and
	// monitors at different DPI no longer line up. Must run before any
	// window is queried.
	if procSetProcessDpiAwarenessContext.Find() == nil {
		procSetProcessDpiAwarenessContext.Call(dpiAwarenessPerMonitorV2)
	}
	return &WindowsBackend{}, nil
}

// Close is a no-op; user32 needs no teardown.
func (b *WindowsBackend) Close() error {
	return nil
}

// Monitors enumerates displays with EnumDisplayMonitors.
func (b *WindowsBackend) Monitors() ([]placement.Monitor, error) {
	if err := procEnumDisplayMonitors.Find(); err != nil {
		return nil, fmt.Errorf("%w: %w", placement.ErrEnumeration, err)
	}

	var c collector
	callback := windows.NewCallback(c.enumProc)
	ret, _, callErr := procEnumDisplayMonitors.Call(0, 0, callback, 0)
	if ret == 0 {
		return nil, fmt.Errorf("%w: EnumDisplayMonitors: %w", placement.ErrEnumeration, callErr)
	}
	return c.monitors, nil
}

type collector struct {
	monitors []placement.Monitor
}

func (c *collector) enumProc(hMonitor win.HMONITOR, hdc win.HDC, rect *win.RECT, lparam uintptr) uintptr {
	mon := placement.Monitor{
		ID:     placement.MonitorID(hMonitor),
		Name:   fmt.Sprintf("Monitor%d", len(c.monitors)),
		Bounds: rectFromWin(*rect),
	}

	var info win.MONITORINFO
	info.CbSize = uint32(unsafe.Sizeof(info))
	if win.GetMonitorInfo(hMonitor, &info) {
		mon.Bounds = rectFromWin(info.RcMonitor)
		if info.DwFlags&win.MONITORINFOF_PRIMARY != 0 {
			mon.Name += " (primary)"
		}
	}

	c.monitors = append(c.monitors, mon)
	return 1
}

// ActiveWindow returns the foreground window.
func (b *WindowsBackend) ActiveWindow() (WindowID, error) {
	hwnd := win.GetForegroundWindow()
	if hwnd == 0 {
		return 0, fmt.Errorf("no foreground window")
	}
	return WindowID(hwnd), nil
}

// WindowRect returns the window rectangle in virtual-screen coordinates.
func (b *WindowsBackend) WindowRect(windowID WindowID) (placement.Rect, error) {
	var rect win.RECT
	if !win.GetWindowRect(win.HWND(windowID), &rect) {
		return placement.Rect{}, fmt.Errorf("GetWindowRect failed: %w", windows.GetLastError())
	}
	return rectFromWin(rect), nil
}

// MonitorUnder asks Windows for the monitor nearest to the window.
func (b *WindowsBackend) MonitorUnder(windowID WindowID, window placement.Rect, monitors []placement.Monitor) (placement.MonitorID, error) {
	hmon := win.MonitorFromWindow(win.HWND(windowID), win.MONITOR_DEFAULTTONEAREST)
	if hmon == 0 {
		return 0, fmt.Errorf("MonitorFromWindow returned no monitor")
	}
	return placement.MonitorID(hmon), nil
}

// Apply issues SetWindowPos, skipping the parts the hints say are unchanged.
func (b *WindowsBackend) Apply(windowID WindowID, bounds placement.Rect, hints ApplyHints) error {
	flags := uint32(win.SWP_NOZORDER)
	if !hints.Move {
		flags |= win.SWP_NOMOVE
	}
	if !hints.Resize {
		flags |= win.SWP_NOSIZE
	}

	if !win.SetWindowPos(
		win.HWND(windowID),
		win.HWND_TOP,
		int32(bounds.X),
		int32(bounds.Y),
		int32(bounds.Width),
		int32(bounds.Height),
		flags,
	) {
		return fmt.Errorf("SetWindowPos failed: %w", windows.GetLastError())
	}
	return nil
}

func rectFromWin(r win.RECT) placement.Rect {
	return placement.Rect{
		X:      int(r.Left),
		Y:      int(r.Top),
		Width:  int(r.Right - r.Left),
		Height: int(r.Bottom - r.Top),
	}
}
