// Package sweep implements the Bentley–Ottmann sweep-line algorithm for finding every
// pairwise intersection among a set of segments in O((n+k) log n) time, where k is the
// number of intersections, plus a brute-force reference implementation for testing.
//
// # Overview
//
// A horizontal sweep line moves from the topmost event down to the bottommost, maintaining
// a [statusStructure] (an [avltree.Tree]) of the segments currently crossing it, ordered
// left to right by their intersection with the line. Three kinds of events drive the sweep:
// a segment's upper endpoint ([Insert]), its lower endpoint ([Delete]), and a crossing
// between two adjacent segments in the status structure ([Intersection]). Engine.Run
// processes events in strict top-to-bottom order from an [eventQueue], reporting every
// Intersection event's point.
package sweep

import (
	"github.com/cauchyschwarz192837/MapOverlays/point"
	"github.com/cauchyschwarz192837/MapOverlays/segment"
)

// Kind identifies what triggered an Event.
type Kind uint8

const (
	// Insert fires at a segment's top endpoint: the segment enters the status structure.
	Insert Kind = iota
	// Intersection fires where two segments adjacent in the status structure cross.
	Intersection
	// Delete fires at a segment's bottom endpoint: the segment leaves the status structure.
	Delete
)

// String returns a human-readable name for the Kind.
func (k Kind) String() string {
	switch k {
	case Insert:
		return "Insert"
	case Intersection:
		return "Intersection"
	case Delete:
		return "Delete"
	default:
		return "Unknown"
	}
}

// Event records a single sweep-line event: the kind of event, the point in the plane where
// it occurs, and the segment(s) it concerns (one for Insert/Delete, two for Intersection —
// ordered left, right as they appear above the sweep line at the moment the event fires).
type Event struct {
	Kind     Kind
	Point    point.Point
	Involved []segment.Segment
}

// less orders two events in sweep order: decreasing y-coordinate, ties broken by increasing
// x-coordinate. This matches the direction the sweep line travels (from y=+inf to y=-inf).
func less(a, b Event) bool {
	if a.Point.IsAbove(b.Point) {
		return true
	}
	if a.Point.IsBelow(b.Point) {
		return false
	}
	return a.Point.IsLeftOf(b.Point)
}

// samePoint reports whether two events fire at the same location, regardless of kind or
// involved segments.
func samePoint(a, b Event) bool {
	return a.Point.Eq(b.Point)
}
