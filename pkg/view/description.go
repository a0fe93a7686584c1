package view

import (
	"reflect"

	"github.com/go-drift/vista/pkg/graphics"
	"github.com/go-drift/vista/pkg/layout"
)

// Description is the immutable value describing one UI element and its
// children. It carries no object identity: two descriptions are compared
// structurally, and whether a new description continues the identity of a
// live object is decided purely by Kind at the matched tree position.
type Description struct {
	// Kind tags what this node describes.
	Kind Kind
	// Store holds the node's style options.
	Store Store
	// Children is the ordered child sequence; order is rendering order.
	Children []Description
	// Payload is the opaque per-kind data (grid items, shape geometry, ...).
	Payload any
}

// GridPayload is the per-kind payload of KindGrid nodes.
type GridPayload struct {
	Items []layout.GridItem
}

// ShapePayload is the per-kind payload of KindShape nodes.
type ShapePayload struct {
	Stroke graphics.StrokeStyle
	Fill   graphics.Color
	Rect   graphics.Rect
}

// TextPayload is the per-kind payload of KindText nodes.
type TextPayload struct {
	Content string
}

// SpacerPayload is the per-kind payload of KindSpacer nodes. Spacers are
// matched by role during diffing, so the payload never participates in
// identity decisions.
type SpacerPayload struct {
	MinLength float64
}

// Stack describes a container laying children out along an axis.
func Stack(axis Axis, children ...Description) Description {
	return Description{
		Kind:     KindStack,
		Store:    Store{}.With(OptionAxis, axis),
		Children: children,
	}
}

// Grid describes a container with the given track layout.
func Grid(items []layout.GridItem, children ...Description) Description {
	return Description{
		Kind:     KindGrid,
		Children: children,
		Payload:  GridPayload{Items: items},
	}
}

// Shape describes a stroked/filled shape leaf.
func Shape(payload ShapePayload) Description {
	return Description{Kind: KindShape, Payload: payload}
}

// Text describes a text leaf.
func Text(content string) Description {
	return Description{Kind: KindText, Payload: TextPayload{Content: content}}
}

// Spacer describes a flexible filler that absorbs leftover space. Matched
// spacers in old and new child lists pair by role, not content, and produce
// an equal-size constraint among themselves.
func Spacer() Description {
	return Description{Kind: KindSpacer, Payload: SpacerPayload{}}
}

// Group wraps children without introducing a node of its own: groups are
// flattened into the parent's child sequence before diffing.
func Group(children ...Description) Description {
	return Description{Kind: KindGroup, Children: children}
}

// With returns a copy of the description with one store option changed.
func (d Description) With(key OptionKey, value any) Description {
	d.Store = d.Store.With(key, value)
	return d
}

// IsFiller reports whether the node acts as a flexible filler for diffing.
func (d Description) IsFiller() bool {
	return d.Kind == KindSpacer
}

// ResolvedChildren returns the child sequence with nested groups collapsed
// into one flat list, in order. This is the sequence the differ sees; a
// Group node itself never reaches the live hierarchy.
func (d Description) ResolvedChildren() []Description {
	flat := true
	for _, c := range d.Children {
		if c.Kind == KindGroup {
			flat = false
			break
		}
	}
	if flat {
		return d.Children
	}
	out := make([]Description, 0, len(d.Children))
	for _, c := range d.Children {
		if c.Kind == KindGroup {
			out = append(out, c.ResolvedChildren()...)
		} else {
			out = append(out, c)
		}
	}
	return out
}

// Equal reports deep structural equality of two descriptions. An update pass
// skips subtrees that compare equal; this is the expected common case.
func Equal(a, b Description) bool {
	if a.Kind != b.Kind {
		return false
	}
	return reflect.DeepEqual(a, b)
}
