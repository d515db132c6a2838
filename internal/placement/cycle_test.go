package placement

import (
	"errors"
	"math"
	"testing"
)

func twoMonitors() Sequence {
	return Sequence{
		{ID: 1, Name: "A", Bounds: Rect{X: 0, Y: 0, Width: 1920, Height: 1080}},
		{ID: 2, Name: "B", Bounds: Rect{X: 1920, Y: 0, Width: 1920, Height: 1080}},
	}
}

func TestCycle_KeepsRelativeOffsetOnNextMonitor(t *testing.T) {
	window := Rect{X: 100, Y: 50, Width: 800, Height: 600}

	res, err := Cycle(window, twoMonitors(), 1, 1)
	if err != nil {
		t.Fatalf("Cycle() error: %v", err)
	}
	want := Rect{X: 2020, Y: 50, Width: 800, Height: 600}
	if res.Rect != want {
		t.Fatalf("Cycle() = %+v, want %+v", res.Rect, want)
	}
	if res.State != StateInside || res.Target.ID != 2 {
		t.Fatalf("expected inside state targeting monitor 2, got %s on %d", res.State, res.Target.ID)
	}
	if !res.Move || res.Resize {
		t.Fatalf("expected move-only hints, got move=%v resize=%v", res.Move, res.Resize)
	}
}

func TestCycle_WrapsFromLastToFirst(t *testing.T) {
	window := Rect{X: 2020, Y: 50, Width: 800, Height: 600}

	res, err := Cycle(window, twoMonitors(), 2, 1)
	if err != nil {
		t.Fatalf("Cycle() error: %v", err)
	}
	if res.Rect.X != 100 || res.Target.ID != 1 {
		t.Fatalf("expected x=100 on monitor 1, got x=%d on %d", res.Rect.X, res.Target.ID)
	}
}

func TestCycle_NegativeStepWrapsToLast(t *testing.T) {
	window := Rect{X: 100, Y: 50, Width: 800, Height: 600}

	res, err := Cycle(window, twoMonitors(), 1, -1)
	if err != nil {
		t.Fatalf("Cycle() error: %v", err)
	}
	if res.Rect.X != 2020 || res.Target.ID != 2 {
		t.Fatalf("expected x=2020 on monitor 2, got x=%d on %d", res.Rect.X, res.Target.ID)
	}
}

func TestCycle_ZeroStepsLeavesWindowInPlace(t *testing.T) {
	window := Rect{X: 100, Y: 50, Width: 800, Height: 600}

	res, err := Cycle(window, twoMonitors(), 1, 0)
	if err != nil {
		t.Fatalf("Cycle() error: %v", err)
	}
	if res.Rect != window {
		t.Fatalf("Cycle() = %+v, want %+v", res.Rect, window)
	}
	if res.Move || res.Resize {
		t.Fatalf("expected no hints for an unchanged window, got move=%v resize=%v", res.Move, res.Resize)
	}
}

func TestCycle_PreservesRatioAcrossWidths(t *testing.T) {
	seq := Sequence{
		{ID: 1, Bounds: Rect{X: -1280, Y: 0, Width: 1280, Height: 1024}},
		{ID: 2, Bounds: Rect{X: 0, Y: 0, Width: 1920, Height: 1080}},
		{ID: 3, Bounds: Rect{X: 1920, Y: 0, Width: 2560, Height: 1440}},
	}
	window := Rect{X: 480, Y: 10, Width: 640, Height: 480}
	relX := float64(window.X-seq[1].Bounds.X) / float64(seq[1].Bounds.Width)

	for _, steps := range []int{-1, 1, 4} {
		res, err := Cycle(window, seq, 2, steps)
		if err != nil {
			t.Fatalf("Cycle(steps=%d) error: %v", steps, err)
		}
		target := res.Target.Bounds
		got := float64(res.Rect.X-target.X) / float64(target.Width)
		if math.Abs(got-relX) > 1.0/float64(target.Width) {
			t.Fatalf("steps=%d: relative x = %f, want %f", steps, got, relX)
		}
		if res.Rect.Y != window.Y {
			t.Fatalf("steps=%d: y changed to %d", steps, res.Rect.Y)
		}
	}
}

func TestCycle_SnapsLeftOverhangOntoWrappedMonitor(t *testing.T) {
	// Center is left of the first monitor while stepping further left.
	window := Rect{X: -500, Y: 0, Width: 800, Height: 600}

	res, err := Cycle(window, twoMonitors(), 1, -1)
	if err != nil {
		t.Fatalf("Cycle() error: %v", err)
	}
	if res.State != StateInside {
		t.Fatalf("expected inside state, got %s", res.State)
	}
	if res.Rect.X != 3340 || res.Target.ID != 2 {
		t.Fatalf("expected x=3340 on monitor 2, got x=%d on %d", res.Rect.X, res.Target.ID)
	}
}

func TestCycle_LeftOverhangWithoutSnapWhenSteppingRight(t *testing.T) {
	window := Rect{X: -500, Y: 0, Width: 800, Height: 600}

	res, err := Cycle(window, twoMonitors(), 1, 1)
	if err != nil {
		t.Fatalf("Cycle() error: %v", err)
	}
	if res.Rect.X != 1420 {
		t.Fatalf("expected x=1420, got %d", res.Rect.X)
	}
}

func TestCycle_SnapsRightOverhangOntoWrappedMonitor(t *testing.T) {
	window := Rect{X: 3500, Y: 0, Width: 800, Height: 600}

	res, err := Cycle(window, twoMonitors(), 2, 1)
	if err != nil {
		t.Fatalf("Cycle() error: %v", err)
	}
	if res.Rect.X != -340 || res.Target.ID != 1 {
		t.Fatalf("expected x=-340 on monitor 1, got x=%d on %d", res.Rect.X, res.Target.ID)
	}
}

func TestCycle_RecoversWindowLeftOfDesktop(t *testing.T) {
	window := Rect{X: -1000, Y: 0, Width: 800, Height: 600}

	for _, steps := range []int{-1, -2, -7} {
		res, err := Cycle(window, twoMonitors(), 1, steps)
		if err != nil {
			t.Fatalf("Cycle(steps=%d) error: %v", steps, err)
		}
		want := Rect{X: 2480, Y: 240, Width: 800, Height: 600}
		if res.State != StateOutside || res.Rect != want {
			t.Fatalf("steps=%d: got %s %+v, want outside %+v", steps, res.State, res.Rect, want)
		}
	}

	for _, steps := range []int{0, 1, 3} {
		res, err := Cycle(window, twoMonitors(), 1, steps)
		if err != nil {
			t.Fatalf("Cycle(steps=%d) error: %v", steps, err)
		}
		want := Rect{X: 560, Y: 240, Width: 800, Height: 600}
		if res.State != StateOutside || res.Rect != want {
			t.Fatalf("steps=%d: got %s %+v, want outside %+v", steps, res.State, res.Rect, want)
		}
	}
}

func TestCycle_RecoversWindowRightOfDesktop(t *testing.T) {
	window := Rect{X: 3840, Y: 900, Width: 400, Height: 200}

	res, err := Cycle(window, twoMonitors(), 2, 1)
	if err != nil {
		t.Fatalf("Cycle() error: %v", err)
	}
	want := Rect{X: 760, Y: 440, Width: 400, Height: 200}
	if res.State != StateOutside || res.Rect != want {
		t.Fatalf("got %s %+v, want outside %+v", res.State, res.Rect, want)
	}
}

func TestCycle_SingleMonitorKeepsPosition(t *testing.T) {
	seq := Sequence{{ID: 9, Bounds: Rect{X: 0, Y: 0, Width: 1920, Height: 1080}}}
	window := Rect{X: 300, Y: 200, Width: 500, Height: 400}

	res, err := Cycle(window, seq, 9, 3)
	if err != nil {
		t.Fatalf("Cycle() error: %v", err)
	}
	if res.Rect != window {
		t.Fatalf("Cycle() = %+v, want %+v", res.Rect, window)
	}
}

func TestCycle_Errors(t *testing.T) {
	window := Rect{X: 0, Y: 0, Width: 100, Height: 100}

	if _, err := Cycle(window, nil, 1, 1); !errors.Is(err, ErrNoMonitors) {
		t.Fatalf("empty sequence error = %v, want ErrNoMonitors", err)
	}
	if _, err := Cycle(window, twoMonitors(), 42, 1); !errors.Is(err, ErrUnknownMonitor) {
		t.Fatalf("unknown id error = %v, want ErrUnknownMonitor", err)
	}
	degenerate := Sequence{{ID: 1, Bounds: Rect{X: 0, Width: 0, Height: 1080}}}
	if _, err := Cycle(window, degenerate, 1, 1); !errors.Is(err, ErrDegenerateMonitor) {
		t.Fatalf("zero-width error = %v, want ErrDegenerateMonitor", err)
	}
}
