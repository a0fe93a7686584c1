package reconcile_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/vista/pkg/animation"
	verrors "github.com/go-drift/vista/pkg/errors"
	"github.com/go-drift/vista/pkg/graphics"
	"github.com/go-drift/vista/pkg/reconcile"
	vistatest "github.com/go-drift/vista/pkg/testing"
	"github.com/go-drift/vista/pkg/view"
)

// quietHandler keeps fail-fast reports out of test output.
type quietHandler struct{}

func (quietHandler) HandleError(*verrors.VistaError) {}
func (quietHandler) HandlePanic(*verrors.PanicError) {}

func stackOf(children ...view.Description) view.Description {
	return view.Stack(view.AxisVertical, children...)
}

func TestFirstRenderCreatesRecursively(t *testing.T) {
	tester := vistatest.NewTester()
	root := tester.Render(stackOf(
		view.Text("a"),
		stackOf(view.Text("b")),
	), nil)

	require.Len(t, root.Children, 2)
	require.Len(t, root.Children[1].Children, 1)
	assert.Equal(t, "b", root.Children[1].Children[0].Props["content"])
	assert.Len(t, tester.Log.ByOp("create"), 4)
	assert.Equal(t, 4, tester.Host.Directory().Len())
	assert.Same(t, root, tester.Host.Root().(*vistatest.LiveNode))
}

func TestIdempotentRerenderMutatesNothing(t *testing.T) {
	tree := stackOf(view.Text("a"), view.Text("b"))
	tester := vistatest.NewTester()
	first := tester.Render(tree, nil)
	tester.Log.Reset()

	second := tester.Render(stackOf(view.Text("a"), view.Text("b")), nil)

	assert.Same(t, first, second)
	assert.Empty(t, tester.Log.Events, "unchanged tree must apply no mutations, got %v", tester.Log.Strings())
	assert.Equal(t, 3, tester.Host.Directory().Len())
}

func TestScalarChangePreservesIdentity(t *testing.T) {
	tester := vistatest.NewTester()
	root := tester.Render(stackOf(view.Text("a")), nil)
	child := root.Children[0]
	tester.Log.Reset()

	tester.Render(stackOf(view.Text("b")), nil)

	assert.Same(t, child, root.Children[0], "live object must be reused, not recreated")
	assert.Equal(t, "b", child.Props["content"])
	assert.Empty(t, tester.Log.ByOp("create"))
	assert.Empty(t, tester.Log.ByOp("dispose"))
	updates := tester.Log.ByOp("update-prop")
	require.Len(t, updates, 1)
	assert.Equal(t, "content", updates[0].Prop)
}

func TestKindChangeForcesReplacement(t *testing.T) {
	tester := vistatest.NewTester()
	root := tester.Render(stackOf(view.Text("a")), nil)
	old := root.Children[0]
	tester.Log.Reset()

	tester.Render(stackOf(view.Shape(view.ShapePayload{Fill: graphics.ColorRed})), nil)

	require.Len(t, root.Children, 1)
	replacement := root.Children[0]
	assert.NotSame(t, old, replacement)
	assert.True(t, old.Disposed, "replaced live object must be torn down")
	assert.Equal(t, view.KindShape, replacement.Kind)
	// Position in the parent's child order is preserved.
	removes := tester.Log.ByOp("remove")
	inserts := tester.Log.ByOp("insert")
	require.Len(t, removes, 1)
	require.Len(t, inserts, 1)
	assert.Equal(t, 0, removes[0].Index)
	assert.Equal(t, 0, inserts[0].Index)
}

func TestShorterListRemovesFromTail(t *testing.T) {
	tester := vistatest.NewTester()
	root := tester.Render(stackOf(view.Text("a"), view.Text("b"), view.Text("c")), nil)
	keepA, keepB, dropC := root.Children[0], root.Children[1], root.Children[2]
	tester.Log.Reset()

	tester.Render(stackOf(view.Text("a"), view.Text("b")), nil)

	require.Len(t, root.Children, 2)
	assert.Same(t, keepA, root.Children[0])
	assert.Same(t, keepB, root.Children[1])
	assert.True(t, dropC.Disposed)
	removes := tester.Log.ByOp("remove")
	require.Len(t, removes, 1)
	assert.Equal(t, 2, removes[0].Index)
	assert.Empty(t, tester.Log.ByOp("update-prop"))
	assert.Equal(t, 3, tester.Host.Directory().Len())
}

func TestLongerListAppendsInOrder(t *testing.T) {
	tester := vistatest.NewTester()
	root := tester.Render(stackOf(view.Text("a"), view.Text("b")), nil)
	keepA, keepB := root.Children[0], root.Children[1]
	tester.Log.Reset()

	tester.Render(stackOf(view.Text("a"), view.Text("b"), view.Text("c")), nil)

	require.Len(t, root.Children, 3)
	assert.Same(t, keepA, root.Children[0])
	assert.Same(t, keepB, root.Children[1])
	assert.Equal(t, "c", root.Children[2].Props["content"])
	inserts := tester.Log.ByOp("insert")
	require.Len(t, inserts, 1)
	assert.Equal(t, 2, inserts[0].Index)
}

func TestEmptyToOneUsesCreatePath(t *testing.T) {
	tester := vistatest.NewTester()
	root := tester.Render(stackOf(), nil)
	tester.Log.Reset()

	tester.Render(stackOf(view.Text("a")), nil)

	require.Len(t, root.Children, 1)
	assert.Len(t, tester.Log.ByOp("create"), 1)
	inserts := tester.Log.ByOp("insert")
	require.Len(t, inserts, 1)
	assert.Equal(t, 0, inserts[0].Index)
}

func TestSwapIsReplacementNotMove(t *testing.T) {
	// Positional matching: swapping two children of different kinds tears
	// both down and recreates them; no move is detected.
	tester := vistatest.NewTester()
	root := tester.Render(stackOf(
		view.Text("a"),
		view.Shape(view.ShapePayload{Fill: graphics.ColorBlue}),
	), nil)
	oldText, oldShape := root.Children[0], root.Children[1]
	tester.Log.Reset()

	tester.Render(stackOf(
		view.Shape(view.ShapePayload{Fill: graphics.ColorBlue}),
		view.Text("a"),
	), nil)

	assert.True(t, oldText.Disposed)
	assert.True(t, oldShape.Disposed)
	assert.NotSame(t, oldShape, root.Children[0])
	assert.NotSame(t, oldText, root.Children[1])
	assert.Len(t, tester.Log.ByOp("remove"), 2)
	assert.Len(t, tester.Log.ByOp("create"), 2)
}

func TestGroupChildrenFlattenBeforeDiff(t *testing.T) {
	tester := vistatest.NewTester()
	root := tester.Render(stackOf(
		view.Text("a"),
		view.Group(view.Text("b"), view.Text("c")),
	), nil)
	require.Len(t, root.Children, 3)
	keepB := root.Children[1]
	tester.Log.Reset()

	// Regrouping without content change is invisible to the differ.
	tester.Render(stackOf(
		view.Group(view.Text("a"), view.Text("b")),
		view.Text("c"),
	), nil)
	assert.Empty(t, tester.Log.Events, "regrouping alone must not mutate, got %v", tester.Log.Strings())
	assert.Same(t, keepB, root.Children[1])
}

func TestSpacersConstrainEqualSize(t *testing.T) {
	tester := vistatest.NewTester()
	root := tester.Render(stackOf(
		view.Text("a"), view.Spacer(), view.Text("b"), view.Spacer(),
	), nil)
	assert.Equal(t, []int{1, 3}, root.EqualSize.Indices)
	spacer := root.Children[1]
	tester.Log.Reset()

	// A sibling change re-emits the constraint; the spacers themselves are
	// matched by role and never content-updated.
	tester.Render(stackOf(
		view.Text("A"), view.Spacer(), view.Text("b"), view.Spacer(),
	), nil)
	assert.Same(t, spacer, root.Children[1])
	assert.Len(t, tester.Log.ByOp("constrain"), 1)
	for _, e := range tester.Log.ByOp("update-prop") {
		assert.NotEqual(t, view.KindSpacer, e.Kind, "spacer content must not be diffed")
	}

	// An unchanged list leaves the standing constraint alone.
	tester.Log.Reset()
	tester.Render(stackOf(
		view.Text("A"), view.Spacer(), view.Text("b"), view.Spacer(),
	), nil)
	assert.Empty(t, tester.Log.Events)
}

func TestAnimationGating(t *testing.T) {
	tester := vistatest.NewTester()
	tester.Render(stackOf(view.Text("a")), nil)
	tester.Log.Reset()

	// Inactive transaction: immediate application.
	tester.Render(stackOf(view.Text("b")), nil)
	updates := tester.Log.ByOp("update-prop")
	require.Len(t, updates, 1)
	assert.False(t, updates[0].Animated)

	// Active animation: the change routes through it, and the new value is
	// still observable synchronously after the pass.
	tester.Log.Reset()
	tx := &reconcile.Transaction{Animation: animation.Eased(200 * time.Millisecond)}
	root := tester.Render(stackOf(view.Text("c")), tx)
	updates = tester.Log.ByOp("update-prop")
	require.Len(t, updates, 1)
	assert.True(t, updates[0].Animated)
	assert.Equal(t, "c", root.Children[0].Props["content"])
	assert.Equal(t, 1, tx.AnimatedChanges())
}

func TestEnvironmentFlowsToDescendants(t *testing.T) {
	tester := vistatest.NewTester()
	root := tester.Render(
		stackOf(stackOf(view.Text("deep"))).With(view.OptionForeground, graphics.ColorRed),
		nil,
	)
	leaf := root.Children[0].Children[0]
	assert.Equal(t, graphics.ColorRed, leaf.Props["env.foreground"])
	// Non-inheriting options stay local.
	_, hasSpacing := leaf.Props["env.spacing"]
	assert.False(t, hasSpacing)
}

func TestDirectoryIdentityTokens(t *testing.T) {
	tester := vistatest.NewTester()
	tester.Render(stackOf(view.Text("a")), nil)
	dir := tester.Host.Directory()

	id1, ok := dir.Identity(reconcile.Path{0})
	require.True(t, ok)

	// In-place update keeps the token.
	tester.Render(stackOf(view.Text("b")), nil)
	id2, ok := dir.Identity(reconcile.Path{0})
	require.True(t, ok)
	assert.Equal(t, id1, id2)

	last, ok := dir.LastRendered(reconcile.Path{0})
	require.True(t, ok)
	assert.True(t, view.Equal(view.Text("b"), last), "last-rendered reference must advance")

	// Replacement mints a new token.
	tester.Render(stackOf(view.Spacer()), nil)
	id3, ok := dir.Identity(reconcile.Path{0})
	require.True(t, ok)
	assert.NotEqual(t, id1, id3)
}

func TestRootKindChangeReplacesHierarchy(t *testing.T) {
	tester := vistatest.NewTester()
	oldRoot := tester.Render(stackOf(view.Text("a")), nil)
	oldChild := oldRoot.Children[0]

	newRoot := tester.Render(view.Text("solo"), nil)
	assert.NotSame(t, oldRoot, newRoot)
	assert.True(t, oldRoot.Disposed)
	assert.True(t, oldChild.Disposed, "children dispose with their parent")
	assert.Equal(t, 1, tester.Host.Directory().Len())
}

func expectFatal(t *testing.T, kind verrors.ErrorKind, fn func()) {
	t.Helper()
	verrors.SetHandler(quietHandler{})
	defer verrors.SetHandler(nil)
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a fail-fast panic")
		verr, ok := r.(*verrors.VistaError)
		require.True(t, ok, "panic value = %T", r)
		assert.Equal(t, kind, verr.Kind)
	}()
	fn()
}

func TestMissingHandlerFailsFast(t *testing.T) {
	unregistered := view.RegisterKind("unregistered-kind")
	tester := vistatest.NewTester()
	expectFatal(t, verrors.KindMissingHandler, func() {
		tester.Render(stackOf(view.Description{Kind: unregistered}), nil)
	})
}

func TestPayloadMismatchFailsFast(t *testing.T) {
	tester := vistatest.NewTester()
	expectFatal(t, verrors.KindMismatch, func() {
		tester.Render(view.Description{Kind: view.KindGrid, Payload: "not a grid payload"}, nil)
	})
}

func TestGroupRootFailsFast(t *testing.T) {
	tester := vistatest.NewTester()
	expectFatal(t, verrors.KindMismatch, func() {
		tester.Render(view.Group(view.Text("a")), nil)
	})
}

func TestReentrantRenderFailsFast(t *testing.T) {
	tester := vistatest.NewTester()
	reentrant := view.RegisterKind("reentrant-kind")
	tester.Register(reentrant, reconcile.KindFuncs{
		Create: func(ctx *reconcile.Context) reconcile.LiveObject {
			// A per-kind function scheduling a nested pass is a programming
			// error: passes run to completion and never interleave.
			tester.Host.Render(view.Text("nested"), nil)
			return nil
		},
		Update: func(reconcile.LiveObject, *reconcile.Context) {},
	})
	expectFatal(t, verrors.KindReentrant, func() {
		tester.Render(view.Description{Kind: reentrant}, nil)
	})
}
