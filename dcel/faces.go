package dcel

import (
	"fmt"

	"github.com/cauchyschwarz192837/MapOverlays/point"
	"github.com/cauchyschwarz192837/MapOverlays/segment"
)

// seedCycle is always CycleID 0: a synthetic outer cycle with no half-edges of its own,
// standing in for the unbounded exterior of the whole embedding. Every real boundary cycle
// that is not itself outer (a "hole" cycle) ultimately nests, via Parent, under either a real
// outer cycle or this seed.
const seedCycle CycleID = 0

// SetFaces discovers every face of the subdivision and its hole nesting in time linear in the
// number of half-edges: it walks each half-edge's Next-cycle once, classifies the cycle as
// outer or inner by the turn at its leftmost vertex, and for inner cycles casts a leftward ray
// to find the cycle (and eventually the face) each hole nests inside.
//
// SetFaces does not check that the Next-walks close; a walk simply ends at the first
// half-edge it has already visited. Verify is the check for malformed Next/Prev links.
func (d *DCEL) SetFaces() {
	d.Cycles = []BoundaryCycle{{IsOuter: true, Parent: NoCycle, Leftmost: NoHalfEdge, Face: NoFace}}

	visited := make(map[HalfEdgeID]bool)
	for i := range d.HalfEdges {
		he := HalfEdgeID(i)
		if d.HalfEdge(he).removed || visited[he] {
			continue
		}
		d.buildCycle(he, visited)
	}
	logDebugf("SetFaces: discovered %d boundary cycles", len(d.Cycles)-1)

	for cid := CycleID(1); int(cid) < len(d.Cycles); cid++ {
		c := d.Cycle(cid)
		if c.IsOuter {
			continue
		}
		c.Parent = d.findParentCycle(cid)
		logDebugf("SetFaces: inner cycle %d nests under cycle %d", cid, c.Parent)
	}

	d.groupFaces()
	logDebugf("SetFaces: grouped into %d faces", len(d.Faces))
}

// buildCycle walks the Next chain starting at start, recording every half-edge in the cycle,
// marking it visited, and determining the cycle's leftmost half-edge and outer/inner
// classification.
func (d *DCEL) buildCycle(start HalfEdgeID, visited map[HalfEdgeID]bool) {
	cid := CycleID(len(d.Cycles))
	c := BoundaryCycle{Leftmost: start, Face: NoFace}

	cur := start
	for {
		if visited[cur] {
			break
		}
		visited[cur] = true
		d.HalfEdge(cur).Cycle = cid
		c.Hedges = append(c.Hedges, cur)
		if isLeftmostOf(d, cur, c.Leftmost) {
			c.Leftmost = cur
		}
		cur = d.HalfEdge(cur).Next
	}

	leftmost := d.HalfEdge(c.Leftmost)
	prevOrigin := d.Vertex(d.HalfEdge(leftmost.Prev).Origin).Point
	thisOrigin := d.Vertex(leftmost.Origin).Point
	nextOrigin := d.Vertex(d.HalfEdge(leftmost.Next).Origin).Point
	c.IsOuter = point.CCW(prevOrigin, thisOrigin, nextOrigin)

	d.Cycles = append(d.Cycles, c)
}

// isLeftmostOf reports whether half-edge candidate's origin is more "leftmost" (smaller x;
// tie broken by larger y) than current's origin. A NoHalfEdge current always loses.
func isLeftmostOf(d *DCEL, candidate, current HalfEdgeID) bool {
	if current == NoHalfEdge {
		return true
	}
	a := d.Vertex(d.HalfEdge(candidate).Origin).Point
	b := d.Vertex(d.HalfEdge(current).Origin).Point
	if a.IsLeftOf(b) {
		return true
	}
	if a.EqualX(b) && a.IsAbove(b) {
		return true
	}
	return false
}

// findParentCycle determines the cycle that an inner (hole) cycle cid nests inside, by
// casting a ray leftward from the cycle's leftmost origin and finding the rightmost edge it
// crosses, excluding edges incident to the leftmost origin itself and horizontal edges (which
// a horizontal leftward ray cannot cross transversally). If no edge is visible, cid nests
// directly under the synthetic seed cycle (the unbounded exterior).
func (d *DCEL) findParentCycle(cid CycleID) CycleID {
	leftmost := d.HalfEdge(d.Cycle(cid).Leftmost)
	origin := d.Vertex(leftmost.Origin).Point

	edgeID, ok := d.rightmostVisibleEdge(origin)
	if !ok {
		return seedCycle
	}

	h1, h2 := d.orientedBoundaryHalves(edgeID, origin)
	return d.HalfEdge(h1OrH2Above(d, origin, edgeID, h1, h2)).Cycle
}

// rightmostVisibleEdge casts a leftward ray from origin and returns the live edge it crosses
// closest to origin (the greatest-x crossing strictly left of origin), skipping horizontal
// edges and edges incident to origin. ok is false if no edge is visible.
func (d *DCEL) rightmostVisibleEdge(origin point.Point) (EdgeID, bool) {
	rayLine := segment.NewLine(origin, origin.Translate(bigNegOne, bigZero))

	best := EdgeID(-1)
	var bestQ point.Point
	found := false

	for _, eid := range d.LiveEdges() {
		e := d.Edge(eid)
		if e.Seg.IsHorizontal() {
			continue
		}
		if e.Seg.P1().Eq(origin) || e.Seg.P2().Eq(origin) {
			continue
		}
		q, isect := segment.IntersectLine(e.Seg, rayLine)
		if !isect {
			continue
		}
		if !q.IsLeftOf(origin) {
			continue
		}
		if !found || q.IsRightOf(bestQ) {
			found = true
			bestQ = q
			best = eid
		}
	}

	return best, found
}

// orientedBoundaryHalves returns the two half-edges of edgeID, reordered (if necessary) so
// that the orientation disambiguation in h1OrH2Above is meaningful: if the ray's crossing
// point happens to land exactly on h1's origin, h1 and h2 are swapped first.
func (d *DCEL) orientedBoundaryHalves(edgeID EdgeID, origin point.Point) (h1, h2 HalfEdgeID) {
	e := d.Edge(edgeID)
	h1, h2 = e.H1, e.H2
	q, _ := segment.IntersectLine(e.Seg, segment.NewLine(origin, origin.Translate(bigNegOne, bigZero)))
	if q.Eq(d.Vertex(d.HalfEdge(h1).Origin).Point) {
		h1, h2 = h2, h1
	}
	return h1, h2
}

// h1OrH2Above picks whichever of h1/h2 lies above the leftward ray from origin through the
// edge's crossing point q, by the sign of orient(origin, q, h1.origin): clockwise selects h1,
// counter-clockwise selects h2. Any other outcome means the crossing point is collinear with
// origin and h1's origin, which cannot happen for a transversal, non-incident crossing and
// indicates a malformed embedding.
func h1OrH2Above(d *DCEL, origin point.Point, edgeID EdgeID, h1, h2 HalfEdgeID) HalfEdgeID {
	e := d.Edge(edgeID)
	q, _ := segment.IntersectLine(e.Seg, segment.NewLine(origin, origin.Translate(bigNegOne, bigZero)))
	h1Origin := d.Vertex(d.HalfEdge(h1).Origin).Point

	switch point.Orientation(origin, q, h1Origin) {
	case point.Clockwise:
		return h1
	case point.Counterclockwise:
		return h2
	default:
		panic(fmt.Errorf("dcel: impossible orientation case disambiguating edge halves at %s", q))
	}
}

// groupFaces walks each inner cycle's Parent chain up to its nearest outer ancestor, builds
// one Face per outer cycle (the seed cycle produces the infinite face), and assigns each inner
// cycle as a hole of its ancestor's face.
func (d *DCEL) groupFaces() {
	d.Faces = nil
	outerToFace := make(map[CycleID]FaceID)

	for cid := range d.Cycles {
		c := d.Cycle(CycleID(cid))
		if !c.IsOuter {
			continue
		}
		fid := FaceID(len(d.Faces))
		d.Faces = append(d.Faces, Face{Outer: CycleID(cid), IsInfinite: CycleID(cid) == seedCycle, OverlayData: map[*DCEL]FaceID{}})
		outerToFace[CycleID(cid)] = fid
		c.Face = fid
		if CycleID(cid) == seedCycle {
			d.InfiniteFace = fid
		}
	}

	for cid := range d.Cycles {
		c := d.Cycle(CycleID(cid))
		if c.IsOuter {
			continue
		}
		ancestor := c.Parent
		for !d.Cycle(ancestor).IsOuter {
			ancestor = d.Cycle(ancestor).Parent
		}
		fid := outerToFace[ancestor]
		c.Face = fid
		d.Face(fid).Inners = append(d.Face(fid).Inners, CycleID(cid))
	}
}
