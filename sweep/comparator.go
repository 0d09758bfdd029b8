package sweep

import (
	"fmt"
	"math"
	"math/big"

	"github.com/cauchyschwarz192837/MapOverlays/numeric"
	"github.com/cauchyschwarz192837/MapOverlays/point"
	"github.com/cauchyschwarz192837/MapOverlays/segment"
)

// defaultSweepEpsilon is the tolerance below which the fast floating-point comparator falls
// back to exact arithmetic, unless the Engine was constructed with options.WithEpsilon. It
// also bounds how close to vertical a segment can be before the fast path treats it as
// vertical rather than dividing by a near-zero run.
const defaultSweepEpsilon = 0.01

// statusComparator orders segments by their x-coordinate of intersection with a horizontal
// sweep line, whose position (statusComparator.last) moves as the sweep progresses.
//
// This is the one piece of mutable state an avltree.Comparator is allowed to close over
// (avltree's doc comment calls this out): every Compare call reads the *current* sweep
// position, so the same two segments can compare differently before and after the line
// moves past their crossing point.
type statusComparator struct {
	last    point.Point
	line    segment.Line
	set     bool
	epsilon float64
}

// setLast moves the sweep line to the y-coordinate of p, the most recently processed event.
func (c *statusComparator) setLast(p point.Point) {
	c.last = p
	c.line = segment.NewLine(p, p.Translate(big.NewInt(1), big.NewInt(0)))
	c.set = true
}

// fastIntersect returns the x-coordinate, as a float64, of the intersection of segment a's
// supporting line with the current horizontal sweep line. Near-vertical segments (run
// smaller than c.epsilon) report their first endpoint's x-coordinate directly rather than
// dividing by a near-zero run.
func (c *statusComparator) fastIntersect(a segment.Segment) float64 {
	yi := c.last.CartesianY()
	x1, y1 := a.P1().CartesianX(), a.P1().CartesianY()
	x2, y2 := a.P2().CartesianX(), a.P2().CartesianY()

	if math.Abs(x1-x2) < c.epsilon {
		return x1
	}

	m := (y2 - y1) / (x2 - x1)
	b1 := y1 - m*x1
	return (yi - b1) / m
}

// exactIntersect returns the exact intersection point of segment a's supporting line with
// the current horizontal sweep line.
//
// Panics:
//   - If a's supporting line is parallel to the sweep line: a horizontal segment can never
//     legitimately reach this comparator, since it would enter and leave the status
//     structure at the same event.
func (c *statusComparator) exactIntersect(a segment.Segment) point.Point {
	p, ok := segment.LineIntersect(a.Support(), c.line)
	if !ok {
		panic(fmt.Errorf("sweep: segment %s is parallel to the sweep line at y=%s", a, c.last))
	}
	return p
}

// Compare implements avltree.Comparator for two segment.Segment values.
func (c *statusComparator) Compare(a, b any) int {
	sa, sb := a.(segment.Segment), b.(segment.Segment)

	if sameSegment(sa, sb) {
		return 0
	}

	fa, fb := c.fastIntersect(sa), c.fastIntersect(sb)
	if !numeric.FloatEquals(fa, fb, c.epsilon) {
		switch {
		case fa < fb:
			return -1
		default:
			return 1
		}
	}

	ia, ib := c.exactIntersect(sa), c.exactIntersect(sb)
	if !ia.Eq(ib) {
		if ia.Less(ib) {
			return -1
		}
		return 1
	}

	// Both segments cross the sweep line at the same point: order them by which one is to
	// the left below the sweep line (mirrors the original's cw(ia,a.bottom,b.bottom) -
	// ccw(ia,a.bottom,b.bottom)).
	switch {
	case point.CW(ia, sa.Bottom(), sb.Bottom()):
		return 1
	case point.CCW(ia, sa.Bottom(), sb.Bottom()):
		return -1
	default:
		return 0
	}
}
