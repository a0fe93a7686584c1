package animation

import (
	"github.com/go-drift/vista/pkg/graphics"
)

// Tween interpolates between Begin and End values based on animation progress.
//
// Tween maps the 0-1 range of a [Controller] to any value type. Use the
// helper constructors ([TweenFloat64], [TweenColor], [TweenOffset],
// [TweenStroke]) for common types, or create custom tweens with a Lerp
// function.
type Tween[T any] struct {
	// Begin is the starting value (when t = 0).
	Begin T
	// End is the ending value (when t = 1).
	End T
	// Lerp interpolates between Begin and End at progress t in [0, 1].
	Lerp func(a, b T, t float64) T
}

// Evaluate returns the interpolated value at t (0.0 to 1.0).
func (tw *Tween[T]) Evaluate(t float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, t)
}

// Transform returns the interpolated value using the controller's current value.
func (tw *Tween[T]) Transform(controller *Controller) T {
	return tw.Evaluate(controller.Value)
}

// TweenFloat64 creates a float64 tween.
func TweenFloat64(begin, end float64) *Tween[float64] {
	return &Tween[float64]{Begin: begin, End: end, Lerp: graphics.Lerp[float64]}
}

// TweenColor creates a color tween.
func TweenColor(begin, end graphics.Color) *Tween[graphics.Color] {
	return &Tween[graphics.Color]{
		Begin: begin,
		End:   end,
		Lerp: func(a, b graphics.Color, t float64) graphics.Color {
			return a.Lerp(b, t)
		},
	}
}

// TweenOffset creates an offset tween.
func TweenOffset(begin, end graphics.Offset) *Tween[graphics.Offset] {
	return &Tween[graphics.Offset]{
		Begin: begin,
		End:   end,
		Lerp: func(a, b graphics.Offset, t float64) graphics.Offset {
			return graphics.Offset{
				X: graphics.Lerp(a.X, b.X, t),
				Y: graphics.Lerp(a.Y, b.Y, t),
			}
		},
	}
}

// TweenStroke creates a stroke style tween.
func TweenStroke(begin, end graphics.StrokeStyle) *Tween[graphics.StrokeStyle] {
	return &Tween[graphics.StrokeStyle]{
		Begin: begin,
		End:   end,
		Lerp: func(a, b graphics.StrokeStyle, t float64) graphics.StrokeStyle {
			return a.Lerp(b, t)
		},
	}
}
