package reconcile

import (
	"fmt"

	"github.com/go-drift/vista/pkg/view"
)

// Decision is the identity resolution for one matched tree position.
type Decision int

const (
	// DecisionNone means neither description is present.
	DecisionNone Decision = iota
	// DecisionReuse means the live object keeps its identity and is updated
	// in place.
	DecisionReuse
	// DecisionReplace means the live object is torn down and a new one is
	// created at the same position in the parent's child order.
	DecisionReplace
	// DecisionInsert means only the new description is present: create fresh.
	DecisionInsert
	// DecisionRemove means only the old description is present: tear down
	// and detach from the parent.
	DecisionRemove
)

// String returns a human-readable representation of the decision.
func (d Decision) String() string {
	switch d {
	case DecisionNone:
		return "none"
	case DecisionReuse:
		return "reuse"
	case DecisionReplace:
		return "replace"
	case DecisionInsert:
		return "insert"
	case DecisionRemove:
		return "remove"
	default:
		return fmt.Sprintf("Decision(%d)", int(d))
	}
}

// Resolve decides whether the new description at a matched position
// continues the identity of the old one. Reuse requires both present with
// the same kind tag; payload and store differences never factor in. Those
// are diffed by the per-kind update function, so an unrelated property
// change cannot trigger destructive replacement.
func Resolve(old, next *view.Description) Decision {
	switch {
	case old == nil && next == nil:
		return DecisionNone
	case old == nil:
		return DecisionInsert
	case next == nil:
		return DecisionRemove
	case old.Kind == next.Kind:
		return DecisionReuse
	default:
		return DecisionReplace
	}
}
