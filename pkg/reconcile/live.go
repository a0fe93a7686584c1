package reconcile

import (
	"strconv"
	"strings"

	"github.com/go-drift/vista/pkg/layout"
)

// LiveObject is the mutable native counterpart created from a view
// description. A live object is owned exclusively by its parent in the live
// hierarchy; the engine mutates its child list through these primitives in
// edit-script order, so implementations only need plain slice surgery and
// must not reach into siblings.
type LiveObject interface {
	// InsertChild attaches child at the given index in rendering order.
	InsertChild(child LiveObject, index int)
	// RemoveChild detaches the child at the given index.
	RemoveChild(index int)
}

// Disposer is implemented by live objects that hold resources needing
// release when they leave the hierarchy. Children are disposed before their
// parent.
type Disposer interface {
	Dispose()
}

// EqualSizeApplier is implemented by container live objects that can honor
// the equal-size constraint emitted for role-matched flexible fillers.
type EqualSizeApplier interface {
	ApplyEqualSize(group layout.EqualSizeGroup)
}

// Path identifies a tree position as the child-index vector from the root.
// The root is the empty path. Paths are the directory's keys; the engine
// never stores raw back-pointers from live objects to descriptions.
type Path []int

// Child returns the path of the index-th child. The receiver is not aliased.
func (p Path) Child(index int) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = index
	return out
}

// String renders the path as dot-separated indices; the root is "".
func (p Path) String() string {
	if len(p) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, idx := range p {
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(strconv.Itoa(idx))
	}
	return sb.String()
}
