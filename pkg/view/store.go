package view

import (
	"fmt"
	"sync"

	"github.com/go-drift/vista/pkg/graphics"
)

// OptionKey names one style option in a description's store.
type OptionKey string

// Built-in option keys. Inheritable options flow root-to-leaf through the
// update environment; the rest apply only to the node that declares them.
var (
	OptionAxis       = RegisterOption("axis", false)
	OptionSpacing    = RegisterOption("spacing", false)
	OptionAlignment  = RegisterOption("alignment", false)
	OptionBackground = RegisterOption("background", false)
	OptionForeground = RegisterOption("foreground", true)
	OptionOpacity    = RegisterOption("opacity", true)
)

var (
	optionMu       sync.Mutex
	inheritsOption = map[OptionKey]bool{}
)

// RegisterOption declares a style option key. inherits controls whether the
// option's value flows down to descendant create/update contexts.
func RegisterOption(name string, inherits bool) OptionKey {
	key := OptionKey(name)
	optionMu.Lock()
	inheritsOption[key] = inherits
	optionMu.Unlock()
	return key
}

// Inherits reports whether the option flows down the tree.
func (k OptionKey) Inherits() bool {
	optionMu.Lock()
	defer optionMu.Unlock()
	return inheritsOption[k]
}

// Axis is the layout direction of a stack.
type Axis int

const (
	AxisVertical Axis = iota
	AxisHorizontal
)

// String returns a human-readable representation of the axis.
func (a Axis) String() string {
	switch a {
	case AxisVertical:
		return "vertical"
	case AxisHorizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Alignment positions children along a stack's cross axis.
type Alignment int

const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd
	AlignStretch
)

// String returns a human-readable representation of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignStart:
		return "start"
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	case AlignStretch:
		return "stretch"
	default:
		return fmt.Sprintf("Alignment(%d)", int(a))
	}
}

// Store maps style-option keys to values. Stores are value-semantic: setters
// copy, so a description never observes later mutation of a shared store.
type Store map[OptionKey]any

// With returns a copy of the store with key set to value. A nil receiver is
// treated as empty.
func (s Store) With(key OptionKey, value any) Store {
	out := make(Store, len(s)+1)
	for k, v := range s {
		out[k] = v
	}
	out[key] = value
	return out
}

// Get returns the raw value for key.
func (s Store) Get(key OptionKey) (any, bool) {
	v, ok := s[key]
	return v, ok
}

// Axis returns the stacking axis, defaulting to vertical.
func (s Store) Axis() Axis {
	if v, ok := s[OptionAxis].(Axis); ok {
		return v
	}
	return AxisVertical
}

// Spacing returns the inter-child spacing, defaulting to 0.
func (s Store) Spacing() float64 {
	if v, ok := s[OptionSpacing].(float64); ok {
		return v
	}
	return 0
}

// Alignment returns the cross-axis alignment, defaulting to start.
func (s Store) Alignment() Alignment {
	if v, ok := s[OptionAlignment].(Alignment); ok {
		return v
	}
	return AlignStart
}

// Background returns the background color and whether one is set.
func (s Store) Background() (graphics.Color, bool) {
	v, ok := s[OptionBackground].(graphics.Color)
	return v, ok
}

// Foreground returns the foreground color and whether one is set.
func (s Store) Foreground() (graphics.Color, bool) {
	v, ok := s[OptionForeground].(graphics.Color)
	return v, ok
}

// Inherited returns the subset of the store whose options flow down the
// tree, or nil when there are none.
func (s Store) Inherited() Store {
	var out Store
	for k, v := range s {
		if k.Inherits() {
			if out == nil {
				out = make(Store)
			}
			out[k] = v
		}
	}
	return out
}
