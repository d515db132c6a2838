package placement

import (
	"fmt"
	"math"
)

// State is the branch Cycle took for a window.
type State int

const (
	// StateNone marks results that did not come from Cycle, such as Adjust.
	StateNone State = iota
	// StateInside covers windows at least partially over the desktop; they
	// keep their relative horizontal offset on the target monitor.
	StateInside
	// StateOutside covers windows entirely past the leftmost or rightmost
	// monitor; they are recentered on the outermost monitor.
	StateOutside
)

func (s State) String() string {
	switch s {
	case StateNone:
		return "none"
	case StateInside:
		return "inside"
	case StateOutside:
		return "outside"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Result is a computed placement plus the hints the host needs to apply it.
type Result struct {
	Rect   Rect
	State  State
	Target Monitor
	// Move is false when the origin did not change.
	Move bool
	// Resize is false when the size did not change.
	Resize bool
}

// Cycle computes where window lands after walking steps monitors through seq,
// starting from the monitor identified by current. The caller supplies
// current from the host's hit-test; Cycle never re-derives it from geometry,
// so a window mostly off its reported monitor is still addressed relative to
// that monitor.
func Cycle(window Rect, seq Sequence, current MonitorID, steps int) (Result, error) {
	if len(seq) == 0 {
		return Result{}, ErrNoMonitors
	}
	idx := seq.IndexOf(current)
	if idx < 0 {
		return Result{}, fmt.Errorf("%w: id %d", ErrUnknownMonitor, current)
	}

	first := seq.First()
	last := seq.Last()
	mon := seq[idx].Bounds
	if mon.Width == 0 {
		return Result{}, fmt.Errorf("%w: %s", ErrDegenerateMonitor, seq[idx].Bounds)
	}

	relativeCenterX := float64(window.X+window.Width/2-mon.X) / float64(mon.Width)

	offLeft := current == first.ID && window.Right() < first.Bounds.X
	offRight := current == last.ID && window.X >= last.Bounds.Right()
	if offLeft || offRight {
		target := first
		if steps < 0 {
			target = last
		}
		return finish(window, Rect{
			X:      target.Bounds.X + (target.Bounds.Width-window.Width)/2,
			Y:      target.Bounds.Y + (target.Bounds.Height-window.Height)/2,
			Width:  window.Width,
			Height: window.Height,
		}, StateOutside, target), nil
	}

	// More than half past the outer edge while stepping further out: address
	// the window from the far edge so it lands flush on the wrapped monitor.
	relativeX := float64(window.X-mon.X) / float64(mon.Width)
	if current == first.ID && steps < 0 && relativeCenterX < 0.0 {
		relativeX += 1.0
	} else if current == last.ID && steps > 0 && relativeCenterX > 1.0 {
		relativeX -= 1.0
	}

	targetIdx, err := Walk(len(seq), idx, steps)
	if err != nil {
		return Result{}, err
	}
	target := seq[targetIdx]

	return finish(window, Rect{
		X:      int(math.Round(float64(target.Bounds.X) + float64(target.Bounds.Width)*relativeX)),
		Y:      window.Y,
		Width:  window.Width,
		Height: window.Height,
	}, StateInside, target), nil
}

func finish(from, to Rect, state State, target Monitor) Result {
	return Result{
		Rect:   to,
		State:  state,
		Target: target,
		Move:   from.X != to.X || from.Y != to.Y,
		Resize: from.Width != to.Width || from.Height != to.Height,
	}
}
