package reconcile

import (
	"reflect"

	"github.com/go-drift/vista/pkg/errors"
	"github.com/go-drift/vista/pkg/view"
)

// CreateFunc instantiates the live counterpart of a description. It must be
// pure with respect to other nodes: no reaching into siblings.
type CreateFunc func(ctx *Context) LiveObject

// UpdateFunc mutates an existing live object to match the context's new
// description. It is responsible for diffing its own scalar and style
// properties against ctx.Previous and applying only the changed ones,
// routing each through ctx.Transaction so active animations are honored.
type UpdateFunc func(obj LiveObject, ctx *Context)

// KindFuncs bundles the per-kind behavior registered for one view kind.
type KindFuncs struct {
	Create CreateFunc
	Update UpdateFunc
	// Payload, when non-nil, is the reflect.Type every non-nil payload of
	// this kind must have. A disagreeing payload is a programming error and
	// aborts the pass.
	Payload reflect.Type
}

// Registry is the function table mapping view kinds to their create/update
// behavior. Register all kinds before rendering; registration is not
// synchronized with running passes.
type Registry struct {
	funcs map[view.Kind]KindFuncs
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{funcs: make(map[view.Kind]KindFuncs)}
}

// Register installs the behavior for kind, replacing any previous entry.
func (r *Registry) Register(kind view.Kind, funcs KindFuncs) {
	r.funcs[kind] = funcs
}

// PayloadType is a convenience for KindFuncs.Payload.
func PayloadType[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// funcsFor returns the registered behavior for kind, failing fast when the
// kind has no entry or the needed function is missing.
func (r *Registry) funcsFor(op string, kind view.Kind) KindFuncs {
	funcs, ok := r.funcs[kind]
	if !ok || funcs.Create == nil || funcs.Update == nil {
		errors.Fatal(errors.MissingHandler(op, kind.String()))
	}
	return funcs
}

// validatePayload aborts when the description's payload type disagrees with
// the registered expectation for its kind.
func (r *Registry) validatePayload(op string, path Path, d view.Description) {
	funcs, ok := r.funcs[d.Kind]
	if !ok || funcs.Payload == nil || d.Payload == nil {
		return
	}
	if got := reflect.TypeOf(d.Payload); got != funcs.Payload {
		errors.Fatal(errors.Mismatch(op, path.String(),
			"kind %s declares payload %s, got %s", d.Kind, funcs.Payload, got))
	}
}
