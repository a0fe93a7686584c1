package animation

import (
	"testing"
	"time"
)

func TestCubicBezierEndpoints(t *testing.T) {
	curves := map[string]func(float64) float64{
		"ease":       Ease,
		"ease-in":    EaseIn,
		"ease-out":   EaseOut,
		"ease-inout": EaseInOut,
		"linear":     LinearCurve,
	}
	for name, curve := range curves {
		if got := curve(0); got != 0 {
			t.Errorf("%s(0) = %v, want 0", name, got)
		}
		if got := curve(1); got != 1 {
			t.Errorf("%s(1) = %v, want 1", name, got)
		}
	}
}

func TestCubicBezierMonotonic(t *testing.T) {
	curve := CubicBezier(0.4, 0.0, 0.2, 1.0)
	prev := 0.0
	for i := 1; i <= 100; i++ {
		v := curve(float64(i) / 100)
		if v < prev-1e-9 {
			t.Fatalf("curve not monotonic at t=%v: %v < %v", float64(i)/100, v, prev)
		}
		prev = v
	}
}

func TestAnimationProgressNilReceiver(t *testing.T) {
	var a *Animation
	if got := a.Progress(0.5); got != 0.5 {
		t.Errorf("nil animation progress = %v, want linear 0.5", got)
	}
	if got := a.Progress(2); got != 1 {
		t.Errorf("progress should clamp to 1, got %v", got)
	}
}

// fakeClock advances manually for deterministic ticker tests.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func TestControllerForwardCompletes(t *testing.T) {
	fake := &fakeClock{now: time.Unix(0, 0)}
	prev := SetClock(fake)
	defer SetClock(prev)

	c := NewController(Linear(100 * time.Millisecond))
	ticks := 0
	c.AddListener(func() { ticks++ })

	var statuses []Status
	c.AddStatusListener(func(s Status) { statuses = append(statuses, s) })

	c.Forward()
	if c.Status() != StatusForward {
		t.Fatalf("status after Forward = %v", c.Status())
	}

	fake.advance(50 * time.Millisecond)
	StepTickers()
	if c.Value < 0.49 || c.Value > 0.51 {
		t.Errorf("value at half duration = %v, want ~0.5", c.Value)
	}

	fake.advance(60 * time.Millisecond)
	StepTickers()
	if c.Value != 1 {
		t.Errorf("value after duration = %v, want 1", c.Value)
	}
	if c.Status() != StatusCompleted {
		t.Errorf("status = %v, want completed", c.Status())
	}
	if ticks != 2 {
		t.Errorf("listener fired %d times, want 2", ticks)
	}
	if HasActiveTickers() {
		t.Error("ticker still active after completion")
	}
	if len(statuses) == 0 || statuses[len(statuses)-1] != StatusCompleted {
		t.Errorf("status listener sequence = %v", statuses)
	}
}

func TestControllerReset(t *testing.T) {
	fake := &fakeClock{now: time.Unix(0, 0)}
	prev := SetClock(fake)
	defer SetClock(prev)

	c := NewController(Linear(time.Second))
	c.Forward()
	fake.advance(500 * time.Millisecond)
	StepTickers()

	c.Reset()
	if c.Value != 0 {
		t.Errorf("value after reset = %v", c.Value)
	}
	if c.Status() != StatusDismissed {
		t.Errorf("status after reset = %v", c.Status())
	}
	if HasActiveTickers() {
		t.Error("ticker still active after reset")
	}
}

func TestTweenEvaluate(t *testing.T) {
	tw := TweenFloat64(10, 20)
	if got := tw.Evaluate(0.5); got != 15 {
		t.Errorf("tween midpoint = %v, want 15", got)
	}
	missing := &Tween[float64]{Begin: 1, End: 2}
	if got := missing.Evaluate(0.1); got != 2 {
		t.Errorf("tween without lerp should return End, got %v", got)
	}
}
