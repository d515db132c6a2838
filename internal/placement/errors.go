package placement

import "errors"

var (
	// ErrNoMonitors is returned when the host reports zero monitors.
	ErrNoMonitors = errors.New("no monitors found")

	// ErrUnknownMonitor is returned when the monitor reported under the window
	// is not part of the enumerated monitor set.
	ErrUnknownMonitor = errors.New("current monitor not found among enumerated monitors")

	// ErrInvalidIndex is returned by Walk for an empty sequence or an
	// out-of-range start index.
	ErrInvalidIndex = errors.New("invalid monitor index")

	// ErrDegenerateMonitor is returned when the window's monitor has no width
	// to express a relative offset against.
	ErrDegenerateMonitor = errors.New("monitor has zero width")

	// ErrEnumeration wraps failures of the host monitor query.
	ErrEnumeration = errors.New("monitor enumeration failed")

	// ErrArgumentParse marks a command-line argument that is not an integer.
	ErrArgumentParse = errors.New("argument must be an int")

	// ErrArgumentRange marks a command-line integer that does not fit.
	ErrArgumentRange = errors.New("int out of range")
)
