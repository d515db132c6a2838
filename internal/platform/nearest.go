package platform

import (
	"github.com/1broseidon/moncycle/internal/placement"
	"github.com/BurntSushi/xgbutil/xrect"
)

// NearestMonitor picks the monitor a window belongs to: the one with the
// largest overlap, or when nothing overlaps, the one closest to the window's
// edges. Ties keep the earlier monitor. It returns false only for an empty
// monitor list.
func NearestMonitor(window placement.Rect, monitors []placement.Monitor) (placement.Monitor, bool) {
	if len(monitors) == 0 {
		return placement.Monitor{}, false
	}

	heads := make([]xrect.Rect, len(monitors))
	for i := range monitors {
		heads[i] = toXRect(monitors[i].Bounds)
	}
	if best := xrect.LargestOverlap(toXRect(window), heads); best >= 0 {
		return monitors[best], true
	}

	best := 0
	bestDist := distanceSquared(window, monitors[0].Bounds)
	for i := 1; i < len(monitors); i++ {
		if d := distanceSquared(window, monitors[i].Bounds); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return monitors[best], true
}

func toXRect(r placement.Rect) xrect.Rect {
	return xrect.New(r.X, r.Y, r.Width, r.Height)
}

// distanceSquared is the squared gap between two non-overlapping rectangles.
func distanceSquared(a, b placement.Rect) int {
	dx := gap(a.X, a.X+a.Width, b.X, b.X+b.Width)
	dy := gap(a.Y, a.Y+a.Height, b.Y, b.Y+b.Height)
	return dx*dx + dy*dy
}

func gap(a1, a2, b1, b2 int) int {
	switch {
	case a2 <= b1:
		return b1 - a2
	case b2 <= a1:
		return a1 - b2
	default:
		return 0
	}
}
