package graphics

import "fmt"

// StrokeCap describes how stroke endpoints are drawn.
type StrokeCap int

const (
	CapButt   StrokeCap = iota // Flat edge at endpoint (default)
	CapRound                   // Semicircle at endpoint
	CapSquare                  // Square extending past endpoint
)

// String returns a human-readable representation of the stroke cap.
func (c StrokeCap) String() string {
	switch c {
	case CapButt:
		return "butt"
	case CapRound:
		return "round"
	case CapSquare:
		return "square"
	default:
		return fmt.Sprintf("StrokeCap(%d)", int(c))
	}
}

// StrokeJoin describes how stroke corners are drawn.
type StrokeJoin int

const (
	JoinMiter StrokeJoin = iota // Sharp corner (default)
	JoinRound                   // Rounded corner
	JoinBevel                   // Flattened corner
)

// String returns a human-readable representation of the stroke join.
func (j StrokeJoin) String() string {
	switch j {
	case JoinMiter:
		return "miter"
	case JoinRound:
		return "round"
	case JoinBevel:
		return "bevel"
	default:
		return fmt.Sprintf("StrokeJoin(%d)", int(j))
	}
}

// StrokeStyle describes how a shape outline is drawn: line width, cap and
// join treatment, miter limit, and dashing. It is pure data with no identity;
// two styles compare equal field by field (the dash pattern by content).
type StrokeStyle struct {
	// Width is the stroke width in pixels.
	Width float64
	// Cap controls endpoint rendering.
	Cap StrokeCap
	// Join controls corner rendering.
	Join StrokeJoin
	// MiterLimit bounds the length of miter joins before they are beveled.
	MiterLimit float64
	// DashPattern is the ordered on/off segment lengths, empty for solid lines.
	DashPattern []float64
	// DashPhase is the offset into the dash pattern at the stroke start.
	DashPhase float64
}

// DefaultStroke is a 1px solid stroke with miter joins.
var DefaultStroke = StrokeStyle{Width: 1, MiterLimit: 10}

// IsDashed reports whether the style has a dash pattern.
func (s StrokeStyle) IsDashed() bool {
	return len(s.DashPattern) > 0
}

// Equal reports field-wise equality, comparing dash patterns by content.
func (s StrokeStyle) Equal(o StrokeStyle) bool {
	if s.Width != o.Width || s.Cap != o.Cap || s.Join != o.Join ||
		s.MiterLimit != o.MiterLimit || s.DashPhase != o.DashPhase {
		return false
	}
	if len(s.DashPattern) != len(o.DashPattern) {
		return false
	}
	for i, v := range s.DashPattern {
		if o.DashPattern[i] != v {
			return false
		}
	}
	return true
}

// Lerp interpolates width, miter limit, and dash phase toward o. Caps, joins,
// and dash patterns are discrete and snap to the target at t >= 0.5.
func (s StrokeStyle) Lerp(o StrokeStyle, t float64) StrokeStyle {
	out := s
	if t >= 0.5 {
		out = o
	}
	out.Width = Lerp(s.Width, o.Width, t)
	out.MiterLimit = Lerp(s.MiterLimit, o.MiterLimit, t)
	out.DashPhase = Lerp(s.DashPhase, o.DashPhase, t)
	return out
}

func (s StrokeStyle) String() string {
	return fmt.Sprintf("stroke(width=%g cap=%s join=%s)", s.Width, s.Cap, s.Join)
}
