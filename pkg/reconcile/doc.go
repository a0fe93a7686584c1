// Package reconcile is the diffing and update engine: it takes the view
// description tree built for the current state, compares it against the tree
// applied on the previous pass, and applies the minimal set of mutations to
// the live object hierarchy: creating, updating in place, and removing
// live objects while preserving identity and animation continuity.
//
// # Model
//
// Descriptions ([view.Description]) are immutable values with no identity of
// their own. Whether a new description continues the identity of an existing
// live object is decided by [Resolve]: same kind at the matched position
// means the live object is reused and updated in place; a kind change always
// tears it down and creates a replacement. Property-level diffing is
// delegated to the per-kind update function registered in a [Registry], so
// unrelated property changes never cause destructive replacement.
//
// Child lists are diffed positionally by [Diff]: elements pair left to right,
// trailing new elements are inserts, trailing old elements are removes.
// There is deliberately no longest-common-subsequence move detection;
// reordering a list without changing content reconciles as replacement at
// each shifted position. Children flagged as flexible fillers match by role
// rather than content and contribute an equal-size constraint group instead
// of a content diff.
//
// A [Host] owns one live hierarchy and its [Directory], the association from
// tree position to live object and the description that last rendered it.
// [Host.Render] runs one synchronous update pass; the directory advances
// atomically when the pass completes.
//
// # Concurrency
//
// The engine is single-threaded by design: all tree construction, diffing,
// and live-hierarchy mutation belong on one designated goroutine, passes run
// to completion and are never interleaved, and there is no mid-pass
// cancellation. Re-entering Render during a pass is a programming error and
// panics. Code that builds description trees on another goroutine must
// synchronize at the point where the finished tree is handed to Render.
package reconcile
