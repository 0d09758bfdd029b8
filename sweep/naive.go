package sweep

import (
	"github.com/cauchyschwarz192837/MapOverlays/point"
	"github.com/cauchyschwarz192837/MapOverlays/segment"
)

// NaiveIntersections finds every pairwise intersection among segs by brute-force comparison
// of all O(n^2) pairs. It exists as a correctness reference for Engine.Run/FindIntersections
// (exercised directly by sweep_test.go's fuzz-style comparison, and by dcel.Overlay's
// intersection-collection step, which does not need sweep-line performance since DCEL
// overlays are small).
func NaiveIntersections(segs []segment.Segment) []point.Point {
	var inters []point.Point
	for i := 0; i < len(segs)-1; i++ {
		for j := i + 1; j < len(segs); j++ {
			if p, ok := segment.Intersect(segs[i], segs[j]); ok {
				inters = append(inters, p)
			}
		}
	}
	return inters
}
