package layout

// EqualSizeGroup is the auxiliary constraint emitted when flexible fillers
// are matched by role during a child-list diff: every member must resolve to
// the same extent along the parent's main axis. Indices refer to positions in
// the parent's resolved child list.
type EqualSizeGroup struct {
	Indices []int
}

// Share returns the extent each member receives from the given leftover
// space. Zero-member groups return 0.
func (g EqualSizeGroup) Share(leftover float64) float64 {
	if len(g.Indices) == 0 {
		return 0
	}
	if leftover < 0 {
		leftover = 0
	}
	return leftover / float64(len(g.Indices))
}

// Contains reports whether index is a member of the group.
func (g EqualSizeGroup) Contains(index int) bool {
	for _, i := range g.Indices {
		if i == index {
			return true
		}
	}
	return false
}
