package testing

import (
	"fmt"

	"github.com/go-drift/vista/pkg/layout"
	"github.com/go-drift/vista/pkg/reconcile"
	"github.com/go-drift/vista/pkg/view"
)

// Event is one recorded live-hierarchy mutation.
type Event struct {
	// Op is the mutation: "create", "insert", "remove", "dispose",
	// "update-prop", or "constrain".
	Op string
	// Kind is the view kind of the object involved.
	Kind view.Kind
	// Index is the child index for insert/remove, -1 otherwise.
	Index int
	// Prop is the property name for update-prop events.
	Prop string
	// Animated reports whether the change was routed through an active
	// animation (update-prop only).
	Animated bool
}

func (e Event) String() string {
	switch e.Op {
	case "insert", "remove":
		return fmt.Sprintf("%s[%d] %s", e.Op, e.Index, e.Kind)
	case "update-prop":
		suffix := ""
		if e.Animated {
			suffix = " animated"
		}
		return fmt.Sprintf("update %s.%s%s", e.Kind, e.Prop, suffix)
	default:
		return fmt.Sprintf("%s %s", e.Op, e.Kind)
	}
}

// MutationLog records every mutation applied to the fake live hierarchy
// during update passes, in application order.
type MutationLog struct {
	Events []Event
}

// Reset clears the log. Call between passes to assert on one pass only.
func (l *MutationLog) Reset() {
	l.Events = nil
}

// ByOp returns the recorded events with the given op.
func (l *MutationLog) ByOp(op string) []Event {
	var out []Event
	for _, e := range l.Events {
		if e.Op == op {
			out = append(out, e)
		}
	}
	return out
}

// Strings renders the log for readable assertion failures.
func (l *MutationLog) Strings() []string {
	out := make([]string, len(l.Events))
	for i, e := range l.Events {
		out[i] = e.String()
	}
	return out
}

func (l *MutationLog) record(e Event) {
	l.Events = append(l.Events, e)
}

// LiveNode is the fake live object the tester instantiates for every view
// kind. It records structural mutations to the shared log and exposes its
// current properties and children for assertions.
type LiveNode struct {
	Kind     view.Kind
	Props    map[string]any
	Children []*LiveNode
	Disposed bool
	// EqualSize is the last equal-size constraint applied to this container.
	EqualSize layout.EqualSizeGroup

	log *MutationLog
}

var _ reconcile.LiveObject = (*LiveNode)(nil)
var _ reconcile.Disposer = (*LiveNode)(nil)
var _ reconcile.EqualSizeApplier = (*LiveNode)(nil)

// InsertChild attaches child at index, recording the mutation.
func (n *LiveNode) InsertChild(child reconcile.LiveObject, index int) {
	node := child.(*LiveNode)
	n.Children = append(n.Children, nil)
	copy(n.Children[index+1:], n.Children[index:])
	n.Children[index] = node
	n.log.record(Event{Op: "insert", Kind: node.Kind, Index: index})
}

// RemoveChild detaches the child at index, recording the mutation.
func (n *LiveNode) RemoveChild(index int) {
	removed := n.Children[index]
	n.Children = append(n.Children[:index], n.Children[index+1:]...)
	n.log.record(Event{Op: "remove", Kind: removed.Kind, Index: index})
}

// Dispose marks the node released.
func (n *LiveNode) Dispose() {
	n.Disposed = true
	n.log.record(Event{Op: "dispose", Kind: n.Kind, Index: -1})
}

// ApplyEqualSize records the equal-size constraint for assertions.
func (n *LiveNode) ApplyEqualSize(group layout.EqualSizeGroup) {
	n.EqualSize = group
	n.log.record(Event{Op: "constrain", Kind: n.Kind, Index: -1})
}
