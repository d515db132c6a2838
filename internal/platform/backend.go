package platform

import (
	"errors"

	"github.com/1broseidon/moncycle/internal/placement"
)

// ErrUnsupported is returned by NewBackend when no window-system backend is
// available for the running platform.
var ErrUnsupported = errors.New("no window-system backend for this platform")

// WindowID is a platform-neutral window identifier.
type WindowID uintptr

// ApplyHints tell the backend which parts of the rectangle actually changed.
type ApplyHints struct {
	Move   bool
	Resize bool
}

// Backend abstracts the window-system calls moncycle needs. Each invocation
// reads host state once and applies at most one placement.
type Backend interface {
	Monitors() ([]placement.Monitor, error)
	ActiveWindow() (WindowID, error)
	WindowRect(windowID WindowID) (placement.Rect, error)
	// MonitorUnder reports the monitor the host considers the window to be
	// on. It may name a monitor the window barely overlaps, or none at all.
	// window is the rectangle already read through WindowRect.
	MonitorUnder(windowID WindowID, window placement.Rect, monitors []placement.Monitor) (placement.MonitorID, error)
	Apply(windowID WindowID, bounds placement.Rect, hints ApplyHints) error
	Close() error
}
