// Package segment provides fundamental geometric operations on line segments and lines
// defined over exact homogeneous-coordinate points, including canonical endpoint selection,
// point-containment tests, and exact intersection detection.
//
// # Overview
//
// This package defines the [Segment] type, a finite straight segment between two distinct
// [point.Point] endpoints, and [Line], an infinite line through two distinct points.
// Both types expose their two endpoints under six names — P1/P2 (construction order), and
// Top/Bottom/Left/Right (sweep-line order, with documented tie-break rules) — so that
// callers never need to re-derive "which endpoint is which" by hand.
package segment

import (
	"fmt"

	"github.com/cauchyschwarz192837/MapOverlays/point"
)

// Segment represents a finite straight line segment between two distinct endpoints.
//
// Segment derives and caches its canonical top/bottom/left/right endpoints at construction
// time, following the tie-break rules:
//   - Top is the endpoint with the greater y-coordinate; if tied, the leftmost.
//   - Bottom is the endpoint with the lesser y-coordinate; if tied, the rightmost.
//   - Left is the endpoint with the lesser x-coordinate; if tied, the topmost.
//   - Right is the endpoint with the greater x-coordinate; if tied, the bottommost.
//   - If the segment is vertical (equal x), Left/Right fall back to Top/Bottom.
//   - If the segment is horizontal (equal y), Top/Bottom fall back to Left/Right.
type Segment struct {
	p1, p2     point.Point
	top, bottom point.Point
	left, right point.Point
}

// New constructs a Segment from two endpoints p1 and p2.
//
// Panics:
//   - If p1 and p2 are the same point: a Segment must have two distinct endpoints.
func New(p1, p2 point.Point) Segment {
	if p1.Eq(p2) {
		panic(fmt.Errorf("segment: endpoints must be distinct, got %s and %s", p1, p2))
	}

	top, bottom := p1, p2
	if p1.IsBelow(p2) {
		top, bottom = p2, p1
	}

	left, right := p1, p2
	if p1.IsRightOf(p2) {
		left, right = p2, p1
	}

	if p1.EqualX(p2) {
		left, right = top, bottom
	}
	if p1.EqualY(p2) {
		top, bottom = left, right
	}

	return Segment{p1: p1, p2: p2, top: top, bottom: bottom, left: left, right: right}
}

// P1 returns the first endpoint as given to New.
func (s Segment) P1() point.Point { return s.p1 }

// P2 returns the second endpoint as given to New.
func (s Segment) P2() point.Point { return s.p2 }

// Top returns the canonical top endpoint (see the Segment doc comment for tie-break rules).
func (s Segment) Top() point.Point { return s.top }

// Bottom returns the canonical bottom endpoint.
func (s Segment) Bottom() point.Point { return s.bottom }

// Left returns the canonical left endpoint.
func (s Segment) Left() point.Point { return s.left }

// Right returns the canonical right endpoint.
func (s Segment) Right() point.Point { return s.right }

// IsHorizontal reports whether both endpoints share the same y-coordinate.
func (s Segment) IsHorizontal() bool {
	return s.p1.EqualY(s.p2)
}

// IsVertical reports whether both endpoints share the same x-coordinate.
func (s Segment) IsVertical() bool {
	return s.p1.EqualX(s.p2)
}

// Support returns the Line through this segment's endpoints.
func (s Segment) Support() Line {
	return NewLine(s.p1, s.p2)
}

// String returns a human-readable representation of the segment's endpoints.
func (s Segment) String() string {
	return fmt.Sprintf("(%s,%s)", s.p1, s.p2)
}

// Line represents an infinite line determined by two distinct points it passes through.
// Line embeds Segment so it shares the same canonical-endpoint machinery and intersection
// logic; only the interpretation of "before"/"after" the endpoints differs (a Line has no
// such bound).
type Line struct {
	Segment
}

// NewLine constructs a Line through p1 and p2.
//
// Panics:
//   - If p1 and p2 are the same point.
func NewLine(p1, p2 point.Point) Line {
	return Line{Segment: New(p1, p2)}
}
