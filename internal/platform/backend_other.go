//go:build !linux && !windows

package platform

import (
	"fmt"
	"runtime"
)

// NewBackend always fails on platforms without a window-system backend.
func NewBackend(name string) (Backend, error) {
	return nil, fmt.Errorf("%w: %s", ErrUnsupported, runtime.GOOS)
}
