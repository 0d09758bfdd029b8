package segment

import (
	"math/big"

	"github.com/cauchyschwarz192837/MapOverlays/point"
)

// IntersLoc classifies where an intersection parameter falls relative to a segment,
// treating the segment as directed from its first endpoint to its second.
type IntersLoc uint8

const (
	// Before indicates the intersection lies on the supporting line strictly before the
	// segment's first endpoint.
	Before IntersLoc = iota
	// On indicates the intersection lies within the closed segment [p1, p2].
	On
	// After indicates the intersection lies on the supporting line strictly after the
	// segment's second endpoint.
	After
)

// String returns a human-readable name for the IntersLoc value.
func (l IntersLoc) String() string {
	switch l {
	case Before:
		return "Before"
	case On:
		return "On"
	case After:
		return "After"
	default:
		return "Unknown"
	}
}

// GenericIntersect computes the intersection point of the line supporting s with the line
// supporting other, and classifies where that point falls on each of the two segments
// (s directed from P1 to P2, other directed from its P1 to its P2).
//
// The fourth return value, ok, is false when the two supporting lines are parallel (including
// coincident); when ok is false, the other three return values are zero-valued and must not be
// used.
//
// The computation is carried out entirely in the pooled homogeneous-w integer arithmetic
// used by point.Point, so it is exact regardless of how large or small the input
// coordinates are.
func GenericIntersect(s, other Segment) (p point.Point, sLoc, oLoc IntersLoc, ok bool) {
	x1, y1, w1 := s.p1.X(), s.p1.Y(), s.p1.W()
	x2, y2, w2 := s.p2.X(), s.p2.Y(), s.p2.W()
	x3, y3, w3 := other.p1.X(), other.p1.Y(), other.p1.W()
	x4, y4, w4 := other.p2.X(), other.p2.Y(), other.p2.W()

	nw1 := new(big.Int).Mul(w2, new(big.Int).Mul(w3, w4))
	nw2 := new(big.Int).Mul(w1, new(big.Int).Mul(w3, w4))
	nw3 := new(big.Int).Mul(w1, new(big.Int).Mul(w2, w4))
	nw4 := new(big.Int).Mul(w1, new(big.Int).Mul(w2, w3))

	x1.Mul(x1, nw1)
	x2.Mul(x2, nw2)
	x3.Mul(x3, nw3)
	x4.Mul(x4, nw4)
	y1.Mul(y1, nw1)
	y2.Mul(y2, nw2)
	y3.Mul(y3, nw3)
	y4.Mul(y4, nw4)

	x1mx2 := new(big.Int).Sub(x1, x2)
	y1my2 := new(big.Int).Sub(y1, y2)
	x3mx4 := new(big.Int).Sub(x3, x4)
	y3my4 := new(big.Int).Sub(y3, y4)

	den := new(big.Int).Sub(
		new(big.Int).Mul(x1mx2, y3my4),
		new(big.Int).Mul(y1my2, x3mx4),
	)

	if den.Sign() == 0 {
		return point.Point{}, 0, 0, false
	}

	x1mx3 := new(big.Int).Sub(x1, x3)
	y1my3 := new(big.Int).Sub(y1, y3)

	tNum := new(big.Int).Sub(
		new(big.Int).Mul(x1mx3, y3my4),
		new(big.Int).Mul(y1my3, x3mx4),
	)
	uNum := new(big.Int).Add(
		new(big.Int).Neg(new(big.Int).Mul(x1mx2, y1my3)),
		new(big.Int).Mul(y1my2, x1mx3),
	)

	if den.Sign() < 0 {
		den.Neg(den)
		tNum.Neg(tNum)
		uNum.Neg(uNum)
	}

	sLoc = classify(tNum, den)
	oLoc = classify(uNum, den)

	px := new(big.Int).Mul(x1, den)
	px.Add(px, new(big.Int).Mul(tNum, new(big.Int).Sub(x2, x1)))
	py := new(big.Int).Mul(y1, den)
	py.Add(py, new(big.Int).Mul(tNum, new(big.Int).Sub(y2, y1)))
	pw := new(big.Int).Mul(den, new(big.Int).Mul(w1, new(big.Int).Mul(w2, new(big.Int).Mul(w3, w4))))

	return point.New(px, py, pw), sLoc, oLoc, true
}

// classify reports where num/den (with den > 0) falls relative to the closed unit interval
// [0,1]: Before if num < 0, After if num > den, On otherwise.
func classify(num, den *big.Int) IntersLoc {
	switch {
	case num.Sign() < 0:
		return Before
	case num.Cmp(den) > 0:
		return After
	default:
		return On
	}
}

// Intersect returns the intersection point of s and other as segments (not their supporting
// lines), and ok reporting whether the intersection falls within both segments' closed
// extents.
func Intersect(s, other Segment) (p point.Point, ok bool) {
	p, sLoc, oLoc, isect := GenericIntersect(s, other)
	if !isect || sLoc != On || oLoc != On {
		return point.Point{}, false
	}
	return p, true
}

// IntersectLine returns the point where s crosses the line l, if any.
func IntersectLine(s Segment, l Line) (p point.Point, ok bool) {
	p, sLoc, _, isect := GenericIntersect(s, l.Segment)
	if !isect || sLoc != On {
		return point.Point{}, false
	}
	return p, true
}

// LineIntersect returns the point where l1 crosses l2, treating both as infinite lines. Two
// parallel (including coincident) lines report ok = false.
func LineIntersect(l1, l2 Line) (p point.Point, ok bool) {
	p, _, _, isect := GenericIntersect(l1.Segment, l2.Segment)
	return p, isect
}

// ContainsPoint reports whether p coincides with an endpoint of s or lies in its interior.
func (s Segment) ContainsPoint(p point.Point) bool {
	return s.p1.Eq(p) || s.p2.Eq(p) || s.ContainsInteriorPoint(p)
}

// ContainsInteriorPoint reports whether p lies strictly between s's endpoints on s's
// supporting line.
func (s Segment) ContainsInteriorPoint(p point.Point) bool {
	return point.CollinearInOrder(s.p1, p, s.p2)
}

// ContainsSegment reports whether s's closed extent contains other's closed extent: both of
// other's endpoints must coincide with an endpoint of s or lie in its interior.
//
// ContainsPoint already implies collinearity with s (via ContainsInteriorPoint's call to
// point.CollinearInOrder), so containment of both endpoints is sufficient on its own.
func (s Segment) ContainsSegment(other Segment) bool {
	return s.ContainsPoint(other.p1) && s.ContainsPoint(other.p2)
}
