package sweep

import (
	"github.com/google/btree"

	"github.com/cauchyschwarz192837/MapOverlays/point"
)

// Results is a deduplicating accumulator of intersection points, ordered so that iterating
// it produces points in a deterministic, reproducible order (useful for tests and for
// comparing an Engine's output against NaiveIntersections).
//
// Results is backed by a github.com/google/btree.BTreeG rather than a plain slice+map so
// that insertion and lookup are O(log n) and iteration is in ascending order. Engine.Run does
// not use Results; it returns a plain slice of points.
type Results struct {
	tree *btree.BTreeG[point.Point]
}

// NewResults constructs an empty Results set.
func NewResults() *Results {
	return &Results{
		tree: btree.NewG(2, func(a, b point.Point) bool {
			return a.Less(b)
		}),
	}
}

// Add records p, if it is not already present.
func (r *Results) Add(p point.Point) {
	r.tree.ReplaceOrInsert(p)
}

// Len returns the number of distinct points recorded.
func (r *Results) Len() int {
	return r.tree.Len()
}

// Points returns every recorded point, in ascending order.
func (r *Results) Points() []point.Point {
	out := make([]point.Point, 0, r.tree.Len())
	r.tree.Ascend(func(p point.Point) bool {
		out = append(out, p)
		return true
	})
	return out
}
