package animation

import (
	"fmt"
	"time"
)

// Status represents the current state of a driven animation.
type Status int

const (
	// StatusDismissed means the animation is stopped at the lower bound (0.0).
	StatusDismissed Status = iota
	// StatusForward means the animation is playing toward the upper bound (1.0).
	StatusForward
	// StatusReverse means the animation is playing toward the lower bound (0.0).
	StatusReverse
	// StatusCompleted means the animation is stopped at the upper bound (1.0).
	StatusCompleted
)

// String returns a human-readable representation of the status.
func (s Status) String() string {
	switch s {
	case StatusDismissed:
		return "dismissed"
	case StatusForward:
		return "forward"
	case StatusReverse:
		return "reverse"
	case StatusCompleted:
		return "completed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Controller drives an [Animation] by producing values over time.
//
// The controller progresses Value from 0 to 1 over the animation's duration,
// easing through its curve. Use [Tween] to map the 0-1 value to property
// ranges. Stop the controller when done to release its ticker.
type Controller struct {
	// Value is the current animation value, ranging from 0.0 to 1.0.
	Value float64

	anim            Animation
	status          Status
	ticker          *Ticker
	target          float64
	startValue      float64
	listeners       map[int]func()
	statusListeners map[int]func(Status)
	nextListenerID  int
}

// NewController creates a controller driving the given animation.
func NewController(anim *Animation) *Controller {
	c := &Controller{
		status:          StatusDismissed,
		listeners:       make(map[int]func()),
		statusListeners: make(map[int]func(Status)),
	}
	if anim != nil {
		c.anim = *anim
	}
	if c.anim.Curve == nil {
		c.anim.Curve = LinearCurve
	}
	return c
}

// Forward animates from the current value to 1.
func (c *Controller) Forward() {
	c.animateTo(1, StatusForward)
}

// Reverse animates from the current value to 0.
func (c *Controller) Reverse() {
	c.animateTo(0, StatusReverse)
}

func (c *Controller) animateTo(target float64, direction Status) {
	if c.ticker != nil {
		c.ticker.Stop()
	}
	c.target = target
	c.startValue = c.Value
	c.setStatus(direction)

	c.ticker = NewTicker(func(elapsed time.Duration) {
		c.tick(elapsed)
	})
	c.ticker.Start()
}

func (c *Controller) tick(elapsed time.Duration) {
	if c.anim.Duration <= 0 {
		c.Value = c.target
		c.notifyListeners()
		c.finish()
		return
	}

	progress := float64(elapsed) / float64(c.anim.Duration)
	if progress >= 1.0 {
		progress = 1.0
	}

	eased := c.anim.Progress(progress)
	c.Value = c.startValue + (c.target-c.startValue)*eased
	c.notifyListeners()

	if progress >= 1.0 {
		c.finish()
	}
}

func (c *Controller) finish() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
	if c.Value <= 0 {
		c.setStatus(StatusDismissed)
	} else if c.Value >= 1 {
		c.setStatus(StatusCompleted)
	}
}

// Stop halts the animation at the current value.
func (c *Controller) Stop() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
}

// Reset immediately sets the value back to 0.
func (c *Controller) Reset() {
	c.Stop()
	c.Value = 0
	c.setStatus(StatusDismissed)
	c.notifyListeners()
}

// Status returns the current animation status.
func (c *Controller) Status() Status {
	return c.status
}

// IsAnimating returns true while the animation is running.
func (c *Controller) IsAnimating() bool {
	return c.status == StatusForward || c.status == StatusReverse
}

// AddListener adds a callback that fires whenever the value changes.
// Returns an unsubscribe function.
func (c *Controller) AddListener(fn func()) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = fn
	return func() {
		delete(c.listeners, id)
	}
}

// AddStatusListener adds a callback that fires whenever the status changes.
// Returns an unsubscribe function.
func (c *Controller) AddStatusListener(fn func(Status)) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.statusListeners[id] = fn
	return func() {
		delete(c.statusListeners, id)
	}
}

func (c *Controller) setStatus(s Status) {
	if c.status == s {
		return
	}
	c.status = s
	for _, fn := range c.statusListeners {
		fn(s)
	}
}

func (c *Controller) notifyListeners() {
	for _, fn := range c.listeners {
		fn()
	}
}
