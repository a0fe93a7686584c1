package testing

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/go-drift/vista/pkg/layout"
	"github.com/go-drift/vista/pkg/reconcile"
	"github.com/go-drift/vista/pkg/view"
)

// Tester drives a real [reconcile.Host] over fake [LiveNode] objects. Every
// built-in view kind is pre-registered with fakes whose update functions
// diff their own properties the way real kinds must: compare against the
// live object's current state and stage only changed values through the
// transaction.
type Tester struct {
	Host *reconcile.Host
	Log  *MutationLog

	// GridExtent and GridSpacing are the logical extent the fake grid
	// resolves its tracks against.
	GridExtent  float64
	GridSpacing float64

	registry *reconcile.Registry
}

// NewTester creates a tester with all built-in kinds registered.
func NewTester() *Tester {
	t := &Tester{
		Log:         &MutationLog{},
		GridExtent:  400,
		GridSpacing: 8,
		registry:    reconcile.NewRegistry(),
	}
	for _, kind := range []view.Kind{
		view.KindStack, view.KindShape, view.KindText, view.KindSpacer,
	} {
		t.RegisterFake(kind)
	}
	t.registry.Register(view.KindGrid, reconcile.KindFuncs{
		Create:  t.fakeCreate,
		Update:  t.fakeUpdate,
		Payload: reconcile.PayloadType[view.GridPayload](),
	})
	t.Host = reconcile.NewHost(t.registry)
	return t
}

// RegisterFake installs the recording fake behavior for an additional kind.
func (t *Tester) RegisterFake(kind view.Kind) {
	t.registry.Register(kind, reconcile.KindFuncs{
		Create: t.fakeCreate,
		Update: t.fakeUpdate,
	})
}

// Register installs custom behavior, for tests that need a kind to do
// something the fakes don't.
func (t *Tester) Register(kind view.Kind, funcs reconcile.KindFuncs) {
	t.registry.Register(kind, funcs)
}

// Render runs one update pass and returns the typed live root.
func (t *Tester) Render(d view.Description, tx *reconcile.Transaction) *LiveNode {
	return t.Host.Render(d, tx).(*LiveNode)
}

// fakeCreate instantiates a LiveNode carrying the description's observable
// properties.
func (t *Tester) fakeCreate(ctx *reconcile.Context) reconcile.LiveObject {
	node := &LiveNode{
		Kind:  ctx.New().Kind,
		Props: t.propsFor(ctx),
		log:   t.Log,
	}
	t.Log.record(Event{Op: "create", Kind: node.Kind, Index: -1})
	return node
}

// fakeUpdate diffs the node's current properties against the new
// description and applies only the changed ones, each staged through the
// transaction so animation routing is observable.
func (t *Tester) fakeUpdate(obj reconcile.LiveObject, ctx *reconcile.Context) {
	node := obj.(*LiveNode)
	next := t.propsFor(ctx)

	keys := make([]string, 0, len(next))
	for k := range next {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := next[k]
		if reflect.DeepEqual(node.Props[k], v) {
			continue
		}
		animated := ctx.Transaction().Apply(func() { node.Props[k] = v })
		t.Log.record(Event{
			Op: "update-prop", Kind: node.Kind, Index: -1, Prop: k, Animated: animated,
		})
	}
	for k := range node.Props {
		if _, ok := next[k]; !ok {
			animated := ctx.Transaction().Apply(func() { delete(node.Props, k) })
			t.Log.record(Event{
				Op: "update-prop", Kind: node.Kind, Index: -1, Prop: k, Animated: animated,
			})
		}
	}
}

// propsFor projects a description and its inherited environment onto the
// flat property map a platform object would expose.
func (t *Tester) propsFor(ctx *reconcile.Context) map[string]any {
	d := ctx.New()
	props := make(map[string]any, len(d.Store)+2)
	for k, v := range d.Store {
		props[string(k)] = v
	}
	for k, v := range ctx.Environment() {
		props["env."+string(k)] = v
	}
	switch payload := d.Payload.(type) {
	case view.TextPayload:
		props["content"] = payload.Content
	case view.ShapePayload:
		props["stroke"] = payload.Stroke
		props["fill"] = payload.Fill
	case view.GridPayload:
		props["tracks"] = fmt.Sprint(layout.ResolveTracks(payload.Items, t.GridExtent, t.GridSpacing))
	case view.SpacerPayload:
		props["minLength"] = payload.MinLength
	}
	return props
}
