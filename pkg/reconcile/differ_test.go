package reconcile

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/vista/pkg/view"
)

func kids(names ...string) []view.Description {
	out := make([]view.Description, len(names))
	for i, n := range names {
		if n == "_" {
			out[i] = view.Spacer()
		} else {
			out[i] = view.Text(n)
		}
	}
	return out
}

func opsOf(s Script) []string {
	out := make([]string, len(s.Ops))
	for i, op := range s.Ops {
		out[i] = op.String()
	}
	return out
}

func TestDiffIdenticalListsIsEmpty(t *testing.T) {
	old := kids("a", "b", "c")
	if s := Diff(old, kids("a", "b", "c")); !s.Empty() {
		t.Errorf("diff of identical lists = %v, want empty", opsOf(s))
	}
}

func TestDiffTrailingRemove(t *testing.T) {
	// old=[A,B,C], new=[A,B]: remove index 2, A and B untouched.
	s := Diff(kids("a", "b", "c"), kids("a", "b"))
	want := []string{"remove(2)"}
	if diff := cmp.Diff(want, opsOf(s)); diff != "" {
		t.Errorf("script mismatch (-want +got):\n%s", diff)
	}
}

func TestDiffTrailingInsert(t *testing.T) {
	// old=[A,B], new=[A,B,C]: insert appended at index 2.
	s := Diff(kids("a", "b"), kids("a", "b", "c"))
	want := []string{"insert(2)"}
	if diff := cmp.Diff(want, opsOf(s)); diff != "" {
		t.Errorf("script mismatch (-want +got):\n%s", diff)
	}
}

func TestDiffEmptyToOne(t *testing.T) {
	s := Diff(nil, kids("a"))
	want := []string{"insert(0)"}
	if diff := cmp.Diff(want, opsOf(s)); diff != "" {
		t.Errorf("script mismatch (-want +got):\n%s", diff)
	}
}

func TestDiffAllToEmptyRemovesFromTail(t *testing.T) {
	s := Diff(kids("a", "b", "c"), nil)
	want := []string{"remove(2)", "remove(1)", "remove(0)"}
	if diff := cmp.Diff(want, opsOf(s)); diff != "" {
		t.Errorf("script mismatch (-want +got):\n%s", diff)
	}
}

func TestDiffSwapIsPositionalNotMove(t *testing.T) {
	// old=[A,B], new=[B,A]: matching is positional, so both positions
	// update in place; no move is detected. This pins the deliberate
	// non-goal of LCS-based reordering.
	s := Diff(kids("a", "b"), kids("b", "a"))
	want := []string{"update(0,0)", "update(1,1)"}
	if diff := cmp.Diff(want, opsOf(s)); diff != "" {
		t.Errorf("script mismatch (-want +got):\n%s", diff)
	}
}

func TestDiffScalarChangeUpdatesInPlace(t *testing.T) {
	s := Diff(kids("a", "b"), kids("a", "B"))
	want := []string{"update(1,1)"}
	if diff := cmp.Diff(want, opsOf(s)); diff != "" {
		t.Errorf("script mismatch (-want +got):\n%s", diff)
	}
}

func TestDiffFillersMatchByRole(t *testing.T) {
	// A changed non-filler sibling re-emits the equal-size group over every
	// filler position in the new list, without content-diffing the fillers.
	s := Diff(kids("a", "_", "b", "_"), kids("A", "_", "b", "_"))
	want := []string{"update(0,0)"}
	if diff := cmp.Diff(want, opsOf(s)); diff != "" {
		t.Errorf("script mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1, 3}, s.Fillers.Indices); diff != "" {
		t.Errorf("filler group mismatch (-want +got):\n%s", diff)
	}
}

func TestDiffFillerContentChangeEmitsNoUpdate(t *testing.T) {
	old := []view.Description{view.Text("a"), view.Spacer()}
	new := []view.Description{view.Text("a"), {Kind: view.KindSpacer, Payload: view.SpacerPayload{MinLength: 8}}}
	s := Diff(old, new)
	if len(s.Ops) != 0 {
		t.Errorf("filler content change produced ops: %v", opsOf(s))
	}
	if diff := cmp.Diff([]int{1}, s.Fillers.Indices); diff != "" {
		t.Errorf("filler group mismatch (-want +got):\n%s", diff)
	}
}

func TestDiffUnchangedFillersEmitNoGroup(t *testing.T) {
	// An untouched list stands pat: the constraint applied on the previous
	// pass is still in force, so nothing is re-emitted.
	l := kids("a", "_", "b")
	if s := Diff(l, kids("a", "_", "b")); !s.Empty() {
		t.Errorf("unchanged list with filler = ops %v fillers %v", opsOf(s), s.Fillers.Indices)
	}
}

func TestDiffFillerAgainstNonFillerReplaces(t *testing.T) {
	s := Diff(kids("_"), kids("a"))
	want := []string{"update(0,0)"}
	if diff := cmp.Diff(want, opsOf(s)); diff != "" {
		t.Errorf("script mismatch (-want +got):\n%s", diff)
	}
	// The pair resolves as a replacement when applied.
	o, n := view.Spacer(), view.Text("a")
	if got := Resolve(&o, &n); got != DecisionReplace {
		t.Errorf("spacer->text resolution = %v, want replace", got)
	}
}
