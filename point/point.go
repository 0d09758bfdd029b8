// Package point defines the foundational geometric primitive in this library: the Point type.
// All other geometric types — segments, lines, DCEL vertices — are built upon this type.
//
// # Overview
//
// Point represents a point in the plane using homogeneous integer coordinates (x, y, w),
// where the Cartesian coordinates are x/w and y/w. Every predicate on Point is a sign test
// on an integer expression: no floating-point comparison ever participates in a decision
// about orientation, equality, or ordering. This is what lets the sweep-line and DCEL
// packages built on top of Point reason exactly about degenerate and near-degenerate input.
//
// # Normalization
//
// New always returns a Point with w > 0, and with gcd(|x|, |y|, |w|) divided out, so two
// points constructed from proportional homogeneous triples compare Eq.
package point

import (
	"fmt"
	"math"
	"math/big"
)

// Point is a point in the plane in homogeneous integer coordinates (x, y, w), where the
// Cartesian coordinates are x/w and y/w. The zero value is not a valid Point; use New or
// NewFromInt64.
//
// Point is immutable: every method returns new values rather than mutating the receiver.
type Point struct {
	x *big.Int
	y *big.Int
	w *big.Int
}

// origin is the pre-normalized Point at the Cartesian origin (0,0).
var origin = New(big.NewInt(0), big.NewInt(0), big.NewInt(1))

// Origin returns the point (0,0) in homogeneous coordinates (0,0,1).
func Origin() Point {
	return origin
}

// New constructs a Point from homogeneous coordinates x, y, w, normalizing the sign of w to
// be positive and dividing out gcd(|x|, |y|, |w|).
//
// Panics:
//   - If w is zero: a homogeneous coordinate with w=0 represents a point at infinity, which
//     this library does not model.
func New(x, y, w *big.Int) Point {
	if w.Sign() == 0 {
		panic(fmt.Errorf("point: w must be non-zero, got x=%s y=%s w=%s", x, y, w))
	}

	x = new(big.Int).Set(x)
	y = new(big.Int).Set(y)
	w = new(big.Int).Set(w)

	if w.Sign() < 0 {
		x.Neg(x)
		y.Neg(y)
		w.Neg(w)
	}

	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(x), new(big.Int).Abs(y))
	g.GCD(nil, nil, g, w)
	if g.Sign() > 0 {
		x.Quo(x, g)
		y.Quo(y, g)
		w.Quo(w, g)
	}

	return Point{x: x, y: y, w: w}
}

// NewFromInt64 constructs a Point from int64 Cartesian coordinates, equivalent to
// New(x, y, 1) but without the caller needing to allocate big.Int values.
func NewFromInt64(x, y int64) Point {
	return New(big.NewInt(x), big.NewInt(y), big.NewInt(1))
}

// X returns the homogeneous x-coordinate.
func (p Point) X() *big.Int {
	return new(big.Int).Set(p.x)
}

// Y returns the homogeneous y-coordinate.
func (p Point) Y() *big.Int {
	return new(big.Int).Set(p.y)
}

// W returns the homogeneous w-coordinate. W is always strictly positive.
func (p Point) W() *big.Int {
	return new(big.Int).Set(p.w)
}

// CartesianX returns the Cartesian x-coordinate x/w as a float64, for display or for
// non-predicate uses such as sorting by angle. Predicates never call this: they operate on
// the homogeneous integers directly.
func (p Point) CartesianX() float64 {
	xf, _ := new(big.Rat).SetFrac(p.x, p.w).Float64()
	return xf
}

// CartesianY returns the Cartesian y-coordinate y/w as a float64. See CartesianX.
func (p Point) CartesianY() float64 {
	yf, _ := new(big.Rat).SetFrac(p.y, p.w).Float64()
	return yf
}

// crossW cross-multiplies two points' homogeneous coordinates onto a common w, returning
// (x-component-difference, y-component-difference) with the correct sign: positive cx means
// p is to the right of other, positive cy means p is above other.
func (p Point) crossW(other Point) (cx, cy *big.Int) {
	cx = new(big.Int).Mul(p.x, other.w)
	cx.Sub(cx, new(big.Int).Mul(other.x, p.w))

	cy = new(big.Int).Mul(p.y, other.w)
	cy.Sub(cy, new(big.Int).Mul(other.y, p.w))

	return cx, cy
}

// Eq reports whether p and other represent the same Cartesian point, i.e. whether their
// homogeneous coordinates are proportional.
func (p Point) Eq(other Point) bool {
	cx, cy := p.crossW(other)
	return cx.Sign() == 0 && cy.Sign() == 0
}

// Less implements the total order used for sorting points and for canonical
// top/bottom/left/right selection: by x-coordinate, then by y-coordinate.
func (p Point) Less(other Point) bool {
	cx, cy := p.crossW(other)
	if cx.Sign() != 0 {
		return cx.Sign() < 0
	}
	return cy.Sign() < 0
}

// IsLeftOf reports whether p has a strictly smaller x-coordinate than other.
func (p Point) IsLeftOf(other Point) bool {
	cx, _ := p.crossW(other)
	return cx.Sign() < 0
}

// IsRightOf reports whether p has a strictly greater x-coordinate than other.
func (p Point) IsRightOf(other Point) bool {
	cx, _ := p.crossW(other)
	return cx.Sign() > 0
}

// IsAbove reports whether p has a strictly greater y-coordinate than other.
func (p Point) IsAbove(other Point) bool {
	_, cy := p.crossW(other)
	return cy.Sign() > 0
}

// IsBelow reports whether p has a strictly smaller y-coordinate than other.
func (p Point) IsBelow(other Point) bool {
	_, cy := p.crossW(other)
	return cy.Sign() < 0
}

// EqualX reports whether p and other share the same x-coordinate.
func (p Point) EqualX(other Point) bool {
	cx, _ := p.crossW(other)
	return cx.Sign() == 0
}

// EqualY reports whether p and other share the same y-coordinate.
func (p Point) EqualY(other Point) bool {
	_, cy := p.crossW(other)
	return cy.Sign() == 0
}

// AngleTo returns the angle in radians, in (-pi, pi], of the ray from p to other, measured
// from the positive x-axis. This is a display/ordering convenience (used for clockwise
// sorting of half-edges around a vertex); it is never used in an exact predicate.
func (p Point) AngleTo(other Point) float64 {
	return math.Atan2(other.CartesianY()-p.CartesianY(), other.CartesianX()-p.CartesianX())
}

// Translate returns p translated by (dx, dy) in Cartesian units.
func (p Point) Translate(dx, dy *big.Int) Point {
	nx := new(big.Int).Mul(dx, p.w)
	nx.Add(nx, p.x)
	ny := new(big.Int).Mul(dy, p.w)
	ny.Add(ny, p.y)
	return New(nx, ny, p.w)
}

// String returns a human-readable representation showing both the homogeneous triple and
// the Cartesian coordinates it represents, e.g. "(3,4,2)::(1.500000,2.000000)".
func (p Point) String() string {
	return fmt.Sprintf("(%s,%s,%s)::(%s,%s)",
		p.x, p.y, p.w,
		new(big.Rat).SetFrac(p.x, p.w).FloatString(6),
		new(big.Rat).SetFrac(p.y, p.w).FloatString(6))
}
