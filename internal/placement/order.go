package placement

import "sort"

// Sequence is a list of monitors ordered left to right by their left edge.
type Sequence []Monitor

// Order returns the monitors sorted ascending by Bounds.X. Monitors sharing a
// left edge keep the order the host enumerated them in. The input slice is
// not modified.
func Order(monitors []Monitor) (Sequence, error) {
	if len(monitors) == 0 {
		return nil, ErrNoMonitors
	}

	seq := make(Sequence, len(monitors))
	copy(seq, monitors)
	sort.SliceStable(seq, func(i, j int) bool {
		return seq[i].Bounds.X < seq[j].Bounds.X
	})
	return seq, nil
}

// First returns the leftmost monitor.
func (s Sequence) First() Monitor {
	return s[0]
}

// Last returns the rightmost monitor.
func (s Sequence) Last() Monitor {
	return s[len(s)-1]
}

// IndexOf returns the position of the monitor with the given ID, or -1.
func (s Sequence) IndexOf(id MonitorID) int {
	for i := range s {
		if s[i].ID == id {
			return i
		}
	}
	return -1
}
