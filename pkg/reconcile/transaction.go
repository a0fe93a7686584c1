package reconcile

import (
	"github.com/go-drift/vista/pkg/animation"
	"github.com/go-drift/vista/pkg/view"
)

// Transaction is the explicit context for one update pass: whether an
// animation is active and, if so, its curve and duration. There is no
// ambient transaction state; every create/update call receives the
// transaction through its [Context].
type Transaction struct {
	// Animation, when non-nil, is applied to every property change staged
	// through Apply during the pass. Nil means changes apply immediately.
	Animation *animation.Animation

	animated int
}

// Active reports whether an animation is active for this transaction.
// A nil transaction is inactive.
func (t *Transaction) Active() bool {
	return t != nil && t.Animation != nil
}

// Apply stages one changed property. The set function always runs
// synchronously, so the new value is observable when Apply returns; when an
// animation is active the change is additionally routed through it and Apply
// reports true so callers (and the platform layer) can present the change
// over the animation's duration and curve.
func (t *Transaction) Apply(set func()) bool {
	if set == nil {
		return false
	}
	set()
	if !t.Active() {
		return false
	}
	t.animated++
	return true
}

// AnimatedChanges returns how many property changes were routed through the
// active animation during this pass.
func (t *Transaction) AnimatedChanges() int {
	if t == nil {
		return 0
	}
	return t.animated
}

// Environment carries inherited style values flowing root to leaf. Values
// enter the environment from store options registered as inheriting (see
// [view.RegisterOption]) and from the host's base environment.
type Environment map[view.OptionKey]any

// Get returns the inherited value for key.
func (e Environment) Get(key view.OptionKey) (any, bool) {
	v, ok := e[key]
	return v, ok
}

// extend overlays the store's inheritable options over the environment,
// returning the receiver unchanged when the store contributes nothing.
func (e Environment) extend(s view.Store) Environment {
	inherited := s.Inherited()
	if len(inherited) == 0 {
		return e
	}
	out := make(Environment, len(e)+len(inherited))
	for k, v := range e {
		out[k] = v
	}
	for k, v := range inherited {
		out[k] = v
	}
	return out
}

// Context is the ambient argument to per-kind create and update functions:
// the description being applied, the description that produced the live
// object's current state (via the directory's last-rendered reference), the
// pass transaction, and the inherited environment.
type Context struct {
	path Path
	old  *view.Description
	next view.Description
	tx   *Transaction
	env  Environment
}

// New returns the description being applied.
func (c *Context) New() view.Description {
	return c.next
}

// Previous returns the description that last rendered this live object,
// reporting false on first create.
func (c *Context) Previous() (view.Description, bool) {
	if c.old == nil {
		return view.Description{}, false
	}
	return *c.old, true
}

// Transaction returns the pass transaction. Never nil.
func (c *Context) Transaction() *Transaction {
	return c.tx
}

// Environment returns the inherited style values for this position.
func (c *Context) Environment() Environment {
	return c.env
}

// Path returns the tree position being applied.
func (c *Context) Path() Path {
	return c.path
}
