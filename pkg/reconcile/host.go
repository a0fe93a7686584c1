package reconcile

import (
	"github.com/oklog/ulid/v2"

	"github.com/go-drift/vista/pkg/errors"
	"github.com/go-drift/vista/pkg/layout"
	"github.com/go-drift/vista/pkg/view"
)

// Host owns one live hierarchy: the update dispatcher, its directory, and
// the registry of per-kind behavior. All methods must be called from the
// designated UI goroutine; see the package documentation for the threading
// model.
type Host struct {
	registry  *Registry
	directory *Directory
	root      LiveObject
	rootDesc  *view.Description
	env       Environment
	rendering bool

	// pass is the staged directory state while a pass runs; it replaces the
	// committed state atomically when the pass completes.
	pass map[string]entry
}

// NewHost creates a host dispatching through the given registry.
func NewHost(registry *Registry) *Host {
	return &Host{
		registry:  registry,
		directory: newDirectory(),
		env:       Environment{},
	}
}

// SetEnvironment replaces the base inherited environment applied at the
// root. Takes effect on the next pass.
func (h *Host) SetEnvironment(env Environment) {
	if env == nil {
		env = Environment{}
	}
	h.env = env
}

// Root returns the live root, nil before the first pass.
func (h *Host) Root() LiveObject {
	return h.root
}

// Directory exposes the live object directory for inspection.
func (h *Host) Directory() *Directory {
	return h.directory
}

// Render runs one synchronous update pass: it reconciles tree against the
// previously applied tree, mutates the live hierarchy to match, and returns
// the live root. The first call creates the hierarchy; later calls update it
// in place. The pass runs to completion, with no mid-pass cancellation, and
// the directory's last-rendered references advance only when it completes.
func (h *Host) Render(tree view.Description, tx *Transaction) LiveObject {
	const op = "reconcile.Host.Render"
	if h.rendering {
		errors.Fatal(errors.Reentrant(op))
	}
	if tree.Kind == view.KindGroup {
		errors.Fatal(errors.Mismatch(op, "", "a group cannot be the root; groups flatten into their parent"))
	}
	h.rendering = true
	defer func() { h.rendering = false }()

	if tx == nil {
		tx = &Transaction{}
	}
	h.pass = make(map[string]entry, h.directory.Len())

	old := h.rootDesc
	var root LiveObject
	switch Resolve(old, &tree) {
	case DecisionInsert:
		root = h.create(Path{}, tree, h.env, tx)
	case DecisionReuse:
		root = h.update(Path{}, old, tree, h.env, tx)
	case DecisionReplace:
		h.disposeSubtree(Path{}, *old)
		root = h.create(Path{}, tree, h.env, tx)
	}

	h.root = root
	h.directory.commit(h.pass)
	h.pass = nil
	saved := tree
	h.rootDesc = &saved
	return root
}

// create instantiates the live counterpart of next and, recursively, its
// children, attaching them in the new tree's order.
func (h *Host) create(path Path, next view.Description, env Environment, tx *Transaction) LiveObject {
	const op = "reconcile.Host.create"
	h.registry.validatePayload(op, path, next)
	funcs := h.registry.funcsFor(op, next.Kind)

	obj := funcs.Create(&Context{path: path, next: next, tx: tx, env: env})
	if obj == nil {
		errors.Fatal(errors.Mismatch(op, path.String(), "create for kind %s returned nil", next.Kind))
	}
	h.stage(path, entry{live: obj, last: next, id: ulid.Make()})

	childEnv := env.extend(next.Store)
	kids := next.ResolvedChildren()
	var fillers []int
	for i, kid := range kids {
		child := h.create(path.Child(i), kid, childEnv, tx)
		obj.InsertChild(child, i)
		if kid.IsFiller() {
			fillers = append(fillers, i)
		}
	}
	if len(fillers) > 0 {
		if applier, ok := obj.(EqualSizeApplier); ok {
			applier.ApplyEqualSize(layout.EqualSizeGroup{Indices: fillers})
		}
	}
	return obj
}

// update applies next to the live object previously rendered by old at the
// same position. The parent has already decided Reuse; a structurally equal
// subtree short-circuits with no mutations.
func (h *Host) update(path Path, old *view.Description, next view.Description, env Environment, tx *Transaction) LiveObject {
	const op = "reconcile.Host.update"
	h.registry.validatePayload(op, path, next)

	ent, ok := h.directory.lookup(path)
	if !ok {
		errors.Fatal(errors.Mismatch(op, path.String(),
			"no live object recorded at matched position for kind %s", next.Kind))
	}

	if view.Equal(*old, next) {
		h.directory.copySubtree(path, h.pass)
		return ent.live
	}

	funcs := h.registry.funcsFor(op, next.Kind)
	funcs.Update(ent.live, &Context{path: path, old: old, next: next, tx: tx, env: env})

	childEnv := env.extend(next.Store)
	oldKids := old.ResolvedChildren()
	newKids := next.ResolvedChildren()
	h.apply(path, ent.live, oldKids, newKids, Diff(oldKids, newKids), childEnv, tx)

	h.stage(path, entry{live: ent.live, last: next, id: ent.id})
	return ent.live
}

// apply executes the edit script over the parent's live child list in
// script order, then carries forward the untouched positions. The whole
// child-list update is one logical step: no caller observes an intermediate
// state.
func (h *Host) apply(parentPath Path, parentObj LiveObject, oldKids, newKids []view.Description, script Script, env Environment, tx *Transaction) {
	handled := make(map[int]bool, len(script.Ops))
	for _, opn := range script.Ops {
		switch opn.Kind {
		case OpUpdate:
			i := opn.NewIndex
			oldKid := oldKids[opn.OldIndex]
			childPath := parentPath.Child(i)
			if Resolve(&oldKid, &newKids[i]) == DecisionReplace {
				h.disposeSubtree(childPath, oldKid)
				parentObj.RemoveChild(i)
				parentObj.InsertChild(h.create(childPath, newKids[i], env, tx), i)
			} else {
				h.update(childPath, &oldKid, newKids[i], env, tx)
			}
			handled[i] = true
		case OpInsert:
			i := opn.NewIndex
			parentObj.InsertChild(h.create(parentPath.Child(i), newKids[i], env, tx), i)
			handled[i] = true
		case OpRemove:
			h.disposeSubtree(parentPath.Child(opn.OldIndex), oldKids[opn.OldIndex])
			parentObj.RemoveChild(opn.OldIndex)
		}
	}

	// Positions the script never mentioned survive untouched: equal pairs
	// carry their whole subtree forward, role-matched fillers advance their
	// last-rendered reference without a content update.
	shared := min(len(oldKids), len(newKids))
	for i := range shared {
		if handled[i] {
			continue
		}
		childPath := parentPath.Child(i)
		if oldKids[i].IsFiller() && newKids[i].IsFiller() {
			if ent, ok := h.directory.lookup(childPath); ok {
				h.stage(childPath, entry{live: ent.live, last: newKids[i], id: ent.id})
			}
			continue
		}
		h.directory.copySubtree(childPath, h.pass)
	}

	if len(script.Fillers.Indices) > 0 {
		if applier, ok := parentObj.(EqualSizeApplier); ok {
			applier.ApplyEqualSize(script.Fillers)
		}
	}
}

// disposeSubtree releases the live objects under path, children first.
// Disposed positions are simply not staged, so they vanish from the
// directory when the pass commits.
func (h *Host) disposeSubtree(path Path, desc view.Description) {
	for i, kid := range desc.ResolvedChildren() {
		h.disposeSubtree(path.Child(i), kid)
	}
	if ent, ok := h.directory.lookup(path); ok {
		if d, ok := ent.live.(Disposer); ok {
			d.Dispose()
		}
	}
}

func (h *Host) stage(path Path, e entry) {
	h.pass[path.String()] = e
}
