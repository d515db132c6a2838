package placement

import "fmt"

// Rect describes a rectangle in virtual-desktop coordinates. The origin may
// be negative on multi-monitor desktops.
type Rect struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Right returns the first x coordinate past the rectangle's right edge.
func (r Rect) Right() int {
	return r.X + r.Width
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d, %d): %d x %d", r.X, r.Y, r.Width, r.Height)
}

// MonitorID is an opaque, host-supplied display handle. It carries no
// ordering of its own.
type MonitorID uintptr

// Monitor is one display surface.
type Monitor struct {
	ID     MonitorID `yaml:"id"`
	Name   string    `yaml:"name,omitempty"`
	Bounds Rect      `yaml:"bounds"`
}
