package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgbutil/xinerama"
)

// Monitor represents a physical display
type Monitor struct {
	ID     uint32
	Name   string
	X      int
	Y      int
	Width  int
	Height int
}

// GetMonitors retrieves all active monitors using XRandR, falling back to
// Xinerama heads when RandR is unavailable or reports no active CRTC.
func (c *Connection) GetMonitors() ([]Monitor, error) {
	monitors, randrErr := c.randrMonitors()
	if randrErr == nil && len(monitors) > 0 {
		return monitors, nil
	}

	monitors, err := c.xineramaMonitors()
	if err != nil {
		if randrErr != nil {
			return nil, fmt.Errorf("%v; xinerama: %w", randrErr, err)
		}
		return nil, err
	}
	return monitors, nil
}

func (c *Connection) randrMonitors() ([]Monitor, error) {
	if err := randr.Init(c.XUtil.Conn()); err != nil {
		return nil, fmt.Errorf("randr init failed: %w", err)
	}

	resources, err := randr.GetScreenResources(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resources: %w", err)
	}

	var monitors []Monitor

	// Query each CRTC for active monitors
	for i, crtc := range resources.Crtcs {
		crtcInfo, err := randr.GetCrtcInfo(c.XUtil.Conn(), crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}

		// Skip disabled CRTCs
		if crtcInfo.Width == 0 || crtcInfo.Height == 0 || len(crtcInfo.Outputs) == 0 {
			continue
		}

		outputName := fmt.Sprintf("Monitor%d", i)
		outputInfo, err := randr.GetOutputInfo(c.XUtil.Conn(), crtcInfo.Outputs[0], resources.ConfigTimestamp).Reply()
		if err == nil {
			outputName = string(outputInfo.Name)
		}

		monitors = append(monitors, Monitor{
			ID:     uint32(crtc),
			Name:   outputName,
			X:      int(crtcInfo.X),
			Y:      int(crtcInfo.Y),
			Width:  int(crtcInfo.Width),
			Height: int(crtcInfo.Height),
		})
	}

	return monitors, nil
}

func (c *Connection) xineramaMonitors() ([]Monitor, error) {
	heads, err := xinerama.PhysicalHeads(c.XUtil)
	if err != nil {
		return nil, fmt.Errorf("failed to query xinerama heads: %w", err)
	}

	monitors := make([]Monitor, 0, len(heads))
	for i, head := range heads {
		x, y, w, h := head.Pieces()
		monitors = append(monitors, Monitor{
			// CRTC ids are never zero, so offset head indexes the same way.
			ID:     uint32(i + 1),
			Name:   fmt.Sprintf("Head%d", i),
			X:      x,
			Y:      y,
			Width:  w,
			Height: h,
		})
	}
	return monitors, nil
}
