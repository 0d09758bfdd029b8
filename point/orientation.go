package point

import (
	"fmt"
	"math/big"
)

// OrientationType represents the orientation relationship between three points in the plane.
//
// The orientation is determined by the sign of an exact integer expression equivalent to
// the determinant of the vectors (q-p) and (r-p); unlike floating-point cross products,
// this sign is never approximate.
type OrientationType uint8

// Orientation constants define the possible orientation relationships between three points.
const (
	// Collinear indicates that three points lie on a straight line.
	Collinear OrientationType = iota

	// Counterclockwise indicates that three points form a counterclockwise turn.
	Counterclockwise

	// Clockwise indicates that three points form a clockwise turn.
	Clockwise
)

// String returns a human-readable string representation of the orientation type.
//
// Panics:
//   - If the OrientationType value is not one of the defined constants.
func (o OrientationType) String() string {
	switch o {
	case Collinear:
		return "Collinear"
	case Counterclockwise:
		return "Counterclockwise"
	case Clockwise:
		return "Clockwise"
	default:
		panic(fmt.Errorf("unsupported point orientation: %d", o))
	}
}

// Orient computes the exact sign of the oriented area of the triangle p, q, r: zero if the
// three points are collinear, positive if p, q, r turn counterclockwise, negative if they
// turn clockwise. The homogeneous w-coordinates of all three points are cleared by cross
// multiplication before the determinant is formed, so the result is exact regardless of how
// p, q, and r are scaled.
func Orient(p, q, r Point) *big.Int {
	nwp := new(big.Int).Mul(q.w, r.w)
	nwq := new(big.Int).Mul(p.w, r.w)
	nwr := new(big.Int).Mul(p.w, q.w)

	ry := new(big.Int).Mul(r.y, nwr)
	py1 := new(big.Int).Mul(p.y, nwp)
	qx := new(big.Int).Mul(q.x, nwq)
	px1 := new(big.Int).Mul(p.x, nwp)

	qy := new(big.Int).Mul(q.y, nwq)
	py2 := new(big.Int).Mul(p.y, nwp)
	rx := new(big.Int).Mul(r.x, nwr)
	px2 := new(big.Int).Mul(p.x, nwp)

	left := new(big.Int).Mul(ry.Sub(ry, py1), qx.Sub(qx, px1))
	right := new(big.Int).Mul(qy.Sub(qy, py2), rx.Sub(rx, px2))

	return left.Sub(left, right)
}

// Orientation classifies the sign returned by Orient into Collinear, Counterclockwise, or
// Clockwise.
func Orientation(p, q, r Point) OrientationType {
	switch s := Orient(p, q, r).Sign(); {
	case s == 0:
		return Collinear
	case s > 0:
		return Counterclockwise
	default:
		return Clockwise
	}
}

// CCW reports whether the triangle a, b, c is oriented counterclockwise.
func CCW(a, b, c Point) bool {
	return Orient(a, b, c).Sign() > 0
}

// CW reports whether the triangle a, b, c is oriented clockwise.
func CW(a, b, c Point) bool {
	return Orient(a, b, c).Sign() < 0
}

// IsCollinear reports whether a, b, c are collinear: either two of them coincide, or all
// three lie on a common line.
func IsCollinear(a, b, c Point) bool {
	return Orient(a, b, c).Sign() == 0
}

// CollinearInOrder reports whether a, b, c are distinct, collinear, and appear in that
// order along their common line (i.e. b lies strictly between a and c).
func CollinearInOrder(a, b, c Point) bool {
	if !IsCollinear(a, b, c) {
		return false
	}

	nwa := new(big.Int).Mul(b.w, c.w)
	nwb := new(big.Int).Mul(a.w, c.w)
	nwc := new(big.Int).Mul(a.w, b.w)

	axa := new(big.Int).Mul(a.x, nwa)
	bxb := new(big.Int).Mul(b.x, nwb)
	bxb2 := new(big.Int).Mul(b.x, nwb)
	cxc := new(big.Int).Mul(c.x, nwc)

	aya := new(big.Int).Mul(a.y, nwa)
	byb := new(big.Int).Mul(b.y, nwb)
	byb2 := new(big.Int).Mul(b.y, nwb)
	cyc := new(big.Int).Mul(c.y, nwc)

	dx1 := new(big.Int).Sub(axa, bxb)
	dx2 := new(big.Int).Sub(bxb2, cxc)
	dy1 := new(big.Int).Sub(aya, byb)
	dy2 := new(big.Int).Sub(byb2, cyc)

	sum := new(big.Int).Mul(dx1, dx2)
	sum.Add(sum, new(big.Int).Mul(dy1, dy2))

	return sum.Sign() > 0
}
