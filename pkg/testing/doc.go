// Package testing provides test support for reconciliation: a [Tester] that
// drives a real [reconcile.Host] over fake live objects, a [MutationLog]
// recording every mutation the engine applies (creates, inserts, removes,
// property updates with their animation routing, constraint applications),
// and YAML golden-file snapshots of description trees.
//
// Import with a name to avoid shadowing the standard library:
//
//	vistatest "github.com/go-drift/vista/pkg/testing"
package testing
