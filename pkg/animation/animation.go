// Package animation provides the animation value carried by update
// transactions and the timing primitives that drive animated values:
// easing curves, a frame-driven controller, and generic tweens.
//
// The reconciliation core only consumes the [Animation] value ("is an
// animation active for this update, and if so its curve and duration");
// actually progressing values over time is the job of [Controller] and
// [Tween], driven by the host's frame loop via [StepTickers].
package animation

import "time"

// Animation describes the timing of one animated update: how long changed
// properties take to reach their new values and the easing applied. It is a
// pure value; a nil *Animation on a transaction means changes apply
// immediately.
type Animation struct {
	// Duration is the length of the animation.
	Duration time.Duration
	// Curve transforms linear progress. Nil means linear.
	Curve func(float64) float64
}

// Linear returns an animation with the given duration and no easing.
func Linear(d time.Duration) *Animation {
	return &Animation{Duration: d, Curve: LinearCurve}
}

// Eased returns an animation with the given duration and ease-in-out easing.
func Eased(d time.Duration) *Animation {
	return &Animation{Duration: d, Curve: EaseInOut}
}

// Progress returns the eased progress for the elapsed fraction t in [0, 1].
func (a *Animation) Progress(t float64) float64 {
	t = clampUnit(t)
	if a == nil || a.Curve == nil {
		return t
	}
	return a.Curve(t)
}
