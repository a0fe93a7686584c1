package reconcile

import (
	"strings"

	"github.com/oklog/ulid/v2"

	"github.com/go-drift/vista/pkg/view"
)

// entry associates one tree position with its live object, the description
// that produced its current state, and its identity token.
type entry struct {
	live LiveObject
	last view.Description
	id   ulid.ULID
}

// Directory is the per-hierarchy association between tree positions and
// their instantiated live objects, keyed by [Path]. Each entry carries the
// description that last rendered the object, which becomes the "old" input
// of the next pass, and a ULID identity token assigned at creation. The token survives
// in-place updates and dies with the object on replace or remove, so it
// tracks identity continuity without a raw back-pointer.
//
// The directory is written only by its host, at the end of a successful
// pass, as one atomic swap; it is never read concurrently with a write.
type Directory struct {
	entries map[string]entry
}

func newDirectory() *Directory {
	return &Directory{entries: make(map[string]entry)}
}

// Live returns the live object at path.
func (d *Directory) Live(p Path) (LiveObject, bool) {
	e, ok := d.entries[p.String()]
	if !ok {
		return nil, false
	}
	return e.live, true
}

// LastRendered returns the description that produced the current state of
// the live object at path.
func (d *Directory) LastRendered(p Path) (view.Description, bool) {
	e, ok := d.entries[p.String()]
	if !ok {
		return view.Description{}, false
	}
	return e.last, true
}

// Identity returns the identity token of the live object at path. The token
// is stable across in-place updates.
func (d *Directory) Identity(p Path) (ulid.ULID, bool) {
	e, ok := d.entries[p.String()]
	if !ok {
		return ulid.ULID{}, false
	}
	return e.id, true
}

// Len returns the number of live positions.
func (d *Directory) Len() int {
	return len(d.entries)
}

func (d *Directory) lookup(p Path) (entry, bool) {
	e, ok := d.entries[p.String()]
	return e, ok
}

// commit atomically advances the directory to the staged pass state.
func (d *Directory) commit(next map[string]entry) {
	d.entries = next
}

// copySubtree copies the entry at p and every descendant entry into dst.
func (d *Directory) copySubtree(p Path, dst map[string]entry) {
	key := p.String()
	if key == "" {
		for k, e := range d.entries {
			dst[k] = e
		}
		return
	}
	if e, ok := d.entries[key]; ok {
		dst[key] = e
	}
	prefix := key + "."
	for k, e := range d.entries {
		if strings.HasPrefix(k, prefix) {
			dst[k] = e
		}
	}
}
