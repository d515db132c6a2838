// Package app runs one moncycle invocation: read host state once, compute
// the placement, apply it once.
package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/1broseidon/moncycle/internal/config"
	"github.com/1broseidon/moncycle/internal/logging"
	"github.com/1broseidon/moncycle/internal/placement"
	"github.com/1broseidon/moncycle/internal/platform"
	"gopkg.in/yaml.v3"
)

// Runner ties a backend to the placement algorithms.
type Runner struct {
	Backend       platform.Backend
	Logger        *slog.Logger
	Out           io.Writer
	MinWindowSize int
	// DryRun prints the computed placement as YAML instead of applying it.
	DryRun bool
	// Config is the loaded configuration reported by Describe. Optional.
	Config *config.LoadResult
}

// Plan is the YAML form of a computed placement.
type Plan struct {
	Mode   string             `yaml:"mode"`
	Window placement.Rect     `yaml:"window"`
	Result placement.Rect     `yaml:"result"`
	State  string             `yaml:"state,omitempty"`
	Target *placement.Monitor `yaml:"target,omitempty"`
	Move   bool               `yaml:"move"`
	Resize bool               `yaml:"resize"`
}

// Description is the YAML form of the foreground window and the desktop.
type Description struct {
	Window   placement.Rect      `yaml:"window"`
	Monitor  placement.MonitorID `yaml:"monitor"`
	Monitors placement.Sequence  `yaml:"monitors"`
	Config   *ConfigDescription  `yaml:"config,omitempty"`
}

// ConfigDescription is the effective configuration and where each setting
// came from, keyed by the same names as the values.
type ConfigDescription struct {
	Values  config.Config     `yaml:"values"`
	Sources map[string]string `yaml:"sources"`
}

// Cycle moves the foreground window steps monitors left (negative) or right.
func (r *Runner) Cycle(steps int) error {
	windowID, window, err := r.foreground()
	if err != nil {
		return err
	}

	monitors, err := r.Backend.Monitors()
	if err != nil {
		return err
	}
	seq, err := placement.Order(monitors)
	if err != nil {
		return err
	}
	current, err := r.Backend.MonitorUnder(windowID, window, monitors)
	if err != nil {
		return fmt.Errorf("failed to find monitor under window: %w", err)
	}

	res, err := placement.Cycle(window, seq, current, steps)
	if err != nil {
		return err
	}
	r.logger().Debug("cycle computed",
		"window", window.String(),
		"monitor", uint64(current),
		"steps", steps,
		"state", res.State.String(),
		"target", res.Target.Name,
		"result", res.Rect.String(),
	)

	target := res.Target
	return r.apply(windowID, Plan{
		Mode:   "cycle",
		Window: window,
		Result: res.Rect,
		State:  res.State.String(),
		Target: &target,
		Move:   res.Move,
		Resize: res.Resize,
	})
}

// Adjust offsets the foreground window by a fixed delta.
func (r *Runner) Adjust(d placement.Delta) error {
	windowID, window, err := r.foreground()
	if err != nil {
		return err
	}

	res := placement.Adjust(window, d, r.MinWindowSize)
	r.logger().Debug("adjust computed",
		"window", window.String(),
		"delta", fmt.Sprintf("%+v", d),
		"result", res.Rect.String(),
	)

	return r.apply(windowID, Plan{
		Mode:   "adjust",
		Window: window,
		Result: res.Rect,
		Move:   res.Move,
		Resize: res.Resize,
	})
}

// Describe prints the foreground window, the monitor the host places it on,
// the ordered monitors, and the effective configuration when Config is set.
func (r *Runner) Describe() error {
	windowID, window, err := r.foreground()
	if err != nil {
		return err
	}

	monitors, err := r.Backend.Monitors()
	if err != nil {
		return err
	}
	seq, err := placement.Order(monitors)
	if err != nil {
		return err
	}
	current, err := r.Backend.MonitorUnder(windowID, window, monitors)
	if err != nil {
		return fmt.Errorf("failed to find monitor under window: %w", err)
	}

	return r.writeYAML(Description{
		Window:   window,
		Monitor:  current,
		Monitors: seq,
		Config:   describeConfig(r.Config),
	})
}

func describeConfig(res *config.LoadResult) *ConfigDescription {
	if res == nil || res.Config == nil {
		return nil
	}
	desc := &ConfigDescription{
		Values:  *res.Config,
		Sources: make(map[string]string, len(res.Sources)),
	}
	for path, src := range res.Sources {
		desc.Sources[path] = src.String()
	}
	return desc
}

func (r *Runner) foreground() (platform.WindowID, placement.Rect, error) {
	windowID, err := r.Backend.ActiveWindow()
	if err != nil {
		return 0, placement.Rect{}, err
	}
	window, err := r.Backend.WindowRect(windowID)
	if err != nil {
		return 0, placement.Rect{}, err
	}
	return windowID, window, nil
}

func (r *Runner) apply(windowID platform.WindowID, plan Plan) error {
	if r.DryRun {
		return r.writeYAML(plan)
	}

	hints := platform.ApplyHints{Move: plan.Move, Resize: plan.Resize}
	if err := r.Backend.Apply(windowID, plan.Result, hints); err != nil {
		return fmt.Errorf("failed to place window: %w", err)
	}
	return nil
}

func (r *Runner) writeYAML(v any) error {
	enc := yaml.NewEncoder(r.Out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return enc.Close()
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger == nil {
		return logging.NewNop()
	}
	return r.Logger
}
