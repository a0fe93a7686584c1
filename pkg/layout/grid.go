// Package layout provides the sizing collaborators consumed by external
// layout code: grid track resolution and the equal-size constraint emitted
// for matched flexible fillers. It contains no layout pass of its own.
package layout

import (
	"fmt"
	"math"

	"github.com/go-drift/vista/pkg/graphics"
)

// TrackMode discriminates how one grid track's extent is computed.
type TrackMode int

const (
	// TrackFixed is a literal length.
	TrackFixed TrackMode = iota
	// TrackFlexible divides leftover space among all flexible tracks,
	// clamped to [Min, Max].
	TrackFlexible
	// TrackAdaptive repeats as many tracks as fit at Min size, growing each
	// up to Max to fill the remaining space.
	TrackAdaptive
)

// String returns a human-readable representation of the track mode.
func (m TrackMode) String() string {
	switch m {
	case TrackFixed:
		return "fixed"
	case TrackFlexible:
		return "flexible"
	case TrackAdaptive:
		return "adaptive"
	default:
		return fmt.Sprintf("TrackMode(%d)", int(m))
	}
}

// TrackSize is the tagged union describing one grid track's sizing policy.
// Construct with [Fixed], [Flexible], or [Adaptive].
type TrackSize struct {
	Mode   TrackMode
	Length float64 // fixed extent, TrackFixed only
	Min    float64
	Max    float64
}

// Fixed returns a track with a literal extent.
func Fixed(length float64) TrackSize {
	return TrackSize{Mode: TrackFixed, Length: length}
}

// Flexible returns a track that shares leftover space, clamped to [min, max].
// Pass math.Inf(1) as max for an unbounded track.
func Flexible(min, max float64) TrackSize {
	return TrackSize{Mode: TrackFlexible, Min: min, Max: max}
}

// Adaptive returns a track that repeats as many times as fit at min size,
// each instance growing up to max.
func Adaptive(min, max float64) TrackSize {
	return TrackSize{Mode: TrackAdaptive, Min: min, Max: max}
}

// GridItem describes one declared grid track.
type GridItem struct {
	Size TrackSize
	// Spacing overrides the grid-wide spacing after this item when non-zero.
	Spacing float64
}

// ResolveTracks computes concrete track extents for the declared items within
// the available extent. Fixed tracks take their literal length; adaptive
// items expand into as many min-sized tracks as fit their share, grown up to
// max; flexible tracks split what is left equally, clamped to [min, max] with
// the clamped remainder redistributed among the still-unclamped tracks.
//
// The returned slice has one entry per resolved track, so it can be longer
// than items when adaptive items repeat. Spacing is the gap between adjacent
// resolved tracks.
func ResolveTracks(items []GridItem, available, spacing float64) []float64 {
	if len(items) == 0 {
		return nil
	}

	// First pass: fixed consumption and slot counting, treating every item
	// as a single slot for the purpose of splitting leftover between the
	// non-fixed items.
	fixedSum := 0.0
	nonFixed := 0
	for _, item := range items {
		switch item.Size.Mode {
		case TrackFixed:
			fixedSum += item.Size.Length
		default:
			nonFixed++
		}
	}
	leftover := available - fixedSum - spacing*float64(len(items)-1)
	if leftover < 0 {
		leftover = 0
	}
	share := 0.0
	if nonFixed > 0 {
		share = leftover / float64(nonFixed)
	}

	// Second pass: expand adaptive items into concrete tracks and collect
	// flexible track positions for the distribution loop below.
	tracks := make([]float64, 0, len(items))
	var flexIndex []int
	var flexSize []TrackSize
	for _, item := range items {
		switch item.Size.Mode {
		case TrackFixed:
			tracks = append(tracks, item.Size.Length)
		case TrackAdaptive:
			tracks = append(tracks, adaptiveTracks(item.Size, share, spacing)...)
		case TrackFlexible:
			flexIndex = append(flexIndex, len(tracks))
			flexSize = append(flexSize, item.Size)
			tracks = append(tracks, 0)
		}
	}

	distributeFlexible(tracks, flexIndex, flexSize, share)
	return tracks
}

// adaptiveTracks expands one adaptive item into the tracks that fit its
// share of the available extent.
func adaptiveTracks(size TrackSize, share, spacing float64) []float64 {
	if size.Min <= 0 {
		return []float64{graphics.Clamp(share, 0, size.Max)}
	}
	count := int(math.Floor((share + spacing) / (size.Min + spacing)))
	if count < 1 {
		count = 1
	}
	extent := (share - spacing*float64(count-1)) / float64(count)
	extent = graphics.Clamp(extent, size.Min, size.Max)
	out := make([]float64, count)
	for i := range out {
		out[i] = extent
	}
	return out
}

// distributeFlexible assigns the equal share to each flexible track, clamping
// to [Min, Max] and re-splitting the difference among the tracks that were
// not clamped. The loop terminates because each iteration either clamps at
// least one track or assigns the rest.
func distributeFlexible(tracks []float64, flexIndex []int, flexSize []TrackSize, share float64) {
	if len(flexIndex) == 0 {
		return
	}
	remaining := share * float64(len(flexIndex))
	active := make([]int, len(flexIndex))
	for i := range active {
		active[i] = i
	}
	for len(active) > 0 {
		split := remaining / float64(len(active))
		next := active[:0]
		clamped := false
		for _, i := range active {
			min, max := flexSize[i].Min, flexSize[i].Max
			if max <= 0 {
				max = math.Inf(1)
			}
			v := graphics.Clamp(split, min, max)
			if v != split {
				tracks[flexIndex[i]] = v
				remaining -= v
				clamped = true
			} else {
				next = append(next, i)
			}
		}
		active = next
		if !clamped {
			for _, i := range active {
				tracks[flexIndex[i]] = split
			}
			return
		}
	}
}
