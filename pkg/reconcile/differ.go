package reconcile

import (
	"fmt"

	"github.com/go-drift/vista/pkg/layout"
	"github.com/go-drift/vista/pkg/view"
)

// OpKind discriminates edit-script operations.
type OpKind int

const (
	// OpUpdate pairs an old child with a new child at a matched position.
	// Whether the pair reuses or replaces the live object is resolved by
	// [Resolve] when the script is applied.
	OpUpdate OpKind = iota
	// OpInsert creates a new child at NewIndex.
	OpInsert
	// OpRemove tears down the old child at OldIndex.
	OpRemove
)

// String returns a human-readable representation of the op kind.
func (k OpKind) String() string {
	switch k {
	case OpUpdate:
		return "update"
	case OpInsert:
		return "insert"
	case OpRemove:
		return "remove"
	default:
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
}

// Op is one edit-script operation. The index not used by the op kind is -1.
type Op struct {
	Kind     OpKind
	OldIndex int
	NewIndex int
}

func (o Op) String() string {
	switch o.Kind {
	case OpUpdate:
		return fmt.Sprintf("update(%d,%d)", o.OldIndex, o.NewIndex)
	case OpInsert:
		return fmt.Sprintf("insert(%d)", o.NewIndex)
	default:
		return fmt.Sprintf("remove(%d)", o.OldIndex)
	}
}

// Script is the ordered edit script transforming an old child list into one
// matching the new list. Ops apply left to right: updates in position order,
// then inserts appended in order, then removes from the tail downward.
//
// Fillers lists the new-list positions of flexible fillers when anything in
// the list changed this pass; the parent re-applies the equal-size
// constraint over exactly these positions. An unchanged list emits no ops
// and no group; the previously applied constraint stands.
type Script struct {
	Ops     []Op
	Fillers layout.EqualSizeGroup
}

// Empty reports whether applying the script would mutate nothing: no
// structural ops and no constraint to re-apply. This is the expected result
// of diffing two identical lists.
func (s Script) Empty() bool {
	return len(s.Ops) == 0 && len(s.Fillers.Indices) == 0
}

// Diff computes the edit script between the old and new ordered child
// sequences.
//
// Matching is a stable-order positional walk: children pair left to right by
// index, trailing new children are inserts, trailing old children are
// removes from the tail regardless of content. There is deliberately no
// move detection: reordering without content change reconciles as
// replacement at every shifted position.
//
// Positionally paired fillers are matched by role: their content is never
// diffed, and any change in the list re-emits the equal-size group over all
// filler positions in the new list. Structurally equal non-filler pairs are
// skipped entirely; their subtrees are untouched by the pass.
func Diff(old, new []view.Description) Script {
	var s Script
	shared := min(len(old), len(new))
	fillerChanged := false

	for i := range shared {
		o, n := old[i], new[i]
		if o.IsFiller() && n.IsFiller() {
			if !view.Equal(o, n) {
				fillerChanged = true
			}
			continue
		}
		if view.Equal(o, n) {
			continue
		}
		s.Ops = append(s.Ops, Op{Kind: OpUpdate, OldIndex: i, NewIndex: i})
	}
	for i := shared; i < len(new); i++ {
		s.Ops = append(s.Ops, Op{Kind: OpInsert, OldIndex: -1, NewIndex: i})
		if new[i].IsFiller() {
			fillerChanged = true
		}
	}
	for i := len(old) - 1; i >= shared; i-- {
		s.Ops = append(s.Ops, Op{Kind: OpRemove, OldIndex: i, NewIndex: -1})
		if old[i].IsFiller() {
			fillerChanged = true
		}
	}

	if len(s.Ops) > 0 || fillerChanged {
		for i, d := range new {
			if d.IsFiller() {
				s.Fillers.Indices = append(s.Fillers.Indices, i)
			}
		}
	}
	return s
}
