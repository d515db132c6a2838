package placement

// DefaultMinWindowSize is the smallest width or height Adjust will produce.
const DefaultMinWindowSize = 50

// Delta is a fixed move/resize offset.
type Delta struct {
	DX, DY, DW, DH int
}

// Adjust offsets window by d, flooring width and height at minSize. A
// non-positive minSize means DefaultMinWindowSize. The hints mirror the
// requested delta rather than the clamped outcome. The result's State is
// StateNone: fixed-delta moves have no monitor context.
func Adjust(window Rect, d Delta, minSize int) Result {
	if minSize <= 0 {
		minSize = DefaultMinWindowSize
	}
	return Result{
		Rect: Rect{
			X:      window.X + d.DX,
			Y:      window.Y + d.DY,
			Width:  max(minSize, window.Width+d.DW),
			Height: max(minSize, window.Height+d.DH),
		},
		Move:   d.DX != 0 || d.DY != 0,
		Resize: d.DW != 0 || d.DH != 0,
	}
}
