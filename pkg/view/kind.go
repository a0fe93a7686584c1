// Package view defines the immutable view description tree: the value-type
// representation of what should be on screen, rebuilt from scratch on every
// state change and reconciled against live objects by pkg/reconcile.
package view

import (
	"fmt"
	"sync"
)

// Kind is the discriminated tag identifying what a description describes.
// Identity continuity across updates requires an unchanged Kind at a matched
// position; a Kind change always forces destroy-and-recreate.
type Kind int

// Built-in kinds. External packages can add their own with [RegisterKind].
const (
	KindInvalid Kind = iota
	KindStack
	KindGrid
	KindShape
	KindText
	KindSpacer
	KindGroup
)

var (
	kindMu    sync.Mutex
	kindNames = []string{"invalid", "stack", "grid", "shape", "text", "spacer", "group"}
)

// RegisterKind allocates a new Kind with the given name. Call once per kind,
// typically from a package init.
func RegisterKind(name string) Kind {
	kindMu.Lock()
	defer kindMu.Unlock()
	kindNames = append(kindNames, name)
	return Kind(len(kindNames) - 1)
}

// String returns the registered name of the kind.
func (k Kind) String() string {
	kindMu.Lock()
	defer kindMu.Unlock()
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}
