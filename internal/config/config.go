package config

import (
	"fmt"

	"github.com/1broseidon/moncycle/internal/placement"
)

// Config holds the settings for a single moncycle invocation.
type Config struct {
	// MinWindowSize floors width and height in fixed-delta mode.
	MinWindowSize int `yaml:"min_window_size"`
	// LogLevel controls diagnostic verbosity: debug, info, warning, error
	LogLevel string `yaml:"log_level"`
	// Backend selects the window system: auto, x11, windows
	Backend string `yaml:"backend"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		MinWindowSize: placement.DefaultMinWindowSize,
		LogLevel:      "warning",
		Backend:       "auto",
	}
}

// ValidationError reports which setting is invalid and where it came from.
type ValidationError struct {
	Path   string
	Source Source
	Err    error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Source.Kind == SourceEnv && e.Source.Name != "" {
		return fmt.Sprintf("%s (from $%s): %v", e.Path, e.Source.Name, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Validate performs strict validation of the effective configuration.
func (c *Config) Validate() error {
	if c.MinWindowSize < 1 {
		return &ValidationError{Path: "min_window_size", Err: fmt.Errorf("min_window_size must be >= 1")}
	}
	switch c.LogLevel {
	case "debug", "info", "warning", "error":
	default:
		return &ValidationError{Path: "log_level", Err: fmt.Errorf("log_level must be one of: debug, info, warning, error")}
	}
	switch c.Backend {
	case "auto", "x11", "windows":
	default:
		return &ValidationError{Path: "backend", Err: fmt.Errorf("backend must be one of: auto, x11, windows")}
	}
	return nil
}
