package dcel

import (
	"fmt"
	"sort"

	"github.com/cauchyschwarz192837/MapOverlays/point"
	"github.com/cauchyschwarz192837/MapOverlays/segment"
)

// Copy returns an independent deep copy of d: it re-extracts every live vertex's coordinates
// and every live edge's segment and rebuilds a fresh DCEL from that data, exactly as the
// original construction-from-coordinates path does. The copy shares no arena with d.
func (d *DCEL) Copy() *DCEL {
	var points []point.Point
	for _, vid := range d.LiveVertices() {
		points = append(points, d.Vertex(vid).Point)
	}
	var segs []segment.Segment
	for _, eid := range d.LiveEdges() {
		segs = append(segs, d.Edge(eid).Seg)
	}
	return New(points, segs)
}

// addEdgeVV allocates a new Edge and its twinned half-edge pair between two already-existing
// vertices v1 and v2, returning the new edge and its two half-edges (h1 originating at v1, h2
// at v2). It is the one place overlay repairs create new topology, mirroring how New allocates
// edges during initial construction.
func (d *DCEL) addEdgeVV(v1, v2 VertexID) (EdgeID, HalfEdgeID, HalfEdgeID) {
	seg := segment.New(d.Vertex(v1).Point, d.Vertex(v2).Point)

	h1 := HalfEdgeID(len(d.HalfEdges))
	d.HalfEdges = append(d.HalfEdges, HalfEdge{Origin: v1, Next: NoHalfEdge, Prev: NoHalfEdge})
	h2 := HalfEdgeID(len(d.HalfEdges))
	d.HalfEdges = append(d.HalfEdges, HalfEdge{Origin: v2, Next: NoHalfEdge, Prev: NoHalfEdge})
	d.HalfEdge(h1).Twin = h2
	d.HalfEdge(h2).Twin = h1

	eid := EdgeID(len(d.Edges))
	d.Edges = append(d.Edges, Edge{Seg: seg, H1: h1, H2: h2})
	d.HalfEdge(h1).Edge = eid
	d.HalfEdge(h2).Edge = eid

	return eid, h1, h2
}

// addVertex allocates a new vertex at p with no outgoing half-edge yet recorded.
func (d *DCEL) addVertex(p point.Point) VertexID {
	vid := VertexID(len(d.Verts))
	d.Verts = append(d.Verts, Vertex{Point: p, Hedge: NoHalfEdge})
	return vid
}

// findVertexAt returns the live vertex whose point exactly equals p, if any.
func (d *DCEL) findVertexAt(p point.Point) (VertexID, bool) {
	for _, vid := range d.LiveVertices() {
		if d.Vertex(vid).Point.Eq(p) {
			return vid, true
		}
	}
	return NoVertex, false
}

// merge appends every live record of other into d's arenas (fresh IDs, offset by d's current
// sizes) and returns the resulting map from other's vertex IDs to the merged vertex IDs, which
// repair code uses to translate an edge's endpoints.
func (d *DCEL) merge(other *DCEL) map[VertexID]VertexID {
	vmap := make(map[VertexID]VertexID, len(other.Verts))
	for _, vid := range other.LiveVertices() {
		vmap[vid] = d.addVertex(other.Vertex(vid).Point)
	}
	for _, eid := range other.LiveEdges() {
		e := other.Edge(eid)
		v1 := vmap[other.HalfEdge(e.H1).Origin]
		v2 := vmap[other.HalfEdge(e.H2).Origin]
		neid, nh1, nh2 := d.addEdgeVV(v1, v2)
		_ = neid
		if d.Vertex(v1).Hedge == NoHalfEdge {
			d.Vertex(v1).Hedge = nh1
		}
		if d.Vertex(v2).Hedge == NoHalfEdge {
			d.Vertex(v2).Hedge = nh2
		}
	}
	return vmap
}

// Overlay merges two planar subdivisions A and B into a new DCEL whose edge set is the union
// of both, refined at every crossing so the result is itself a proper planar subdivision.
// Neither A nor B is modified. If computeFaces is true, the result's faces are computed and
// annotated against both A and B (see AnnotateFaces); otherwise Cycles/Faces are left empty
// and InfiniteFace is NoFace.
func Overlay(a, b *DCEL, computeFaces bool) *DCEL {
	cpA := a.Copy()
	cpB := b.Copy()

	merged := newDCEL()
	avmap := merged.merge(cpA)
	_ = avmap
	bvmap := merged.merge(cpB)
	_ = bvmap

	merged.wireNextPrev()

	for {
		p, eids, ok := merged.nextIntersection()
		if !ok {
			break
		}
		merged.repairAt(p, eids)
	}

	if computeFaces {
		merged.SetFaces()
		merged.AnnotateFaces(a)
		merged.AnnotateFaces(b)
	}

	return merged
}

// nextIntersection scans the current (possibly partially repaired) edge set for the first
// unresolved crossing or endpoint coincidence between any two live edges that do not already
// share a vertex (it does not track which input each edge came from), using the same inclusive (endpoint-or-interior)
// intersection test as NaiveIntersections. Returning one point at a time (instead of
// collecting the whole set up front, as the reference does) means every repair sees the
// up-to-date post-split topology rather than stale pre-split edge IDs.
func (d *DCEL) nextIntersection() (point.Point, [2]EdgeID, bool) {
	live := d.LiveEdges()
	for i := 0; i < len(live); i++ {
		for j := i + 1; j < len(live); j++ {
			ei, ej := live[i], live[j]
			if d.shareVertex(ei, ej) {
				continue // already properly joined by a prior repair, not an unresolved crossing
			}
			p, ok := segment.Intersect(d.Edge(ei).Seg, d.Edge(ej).Seg)
			if !ok {
				continue
			}
			if segEq(d.Edge(ei).Seg, d.Edge(ej).Seg) {
				continue
			}
			return p, [2]EdgeID{ei, ej}, true
		}
	}
	return point.Point{}, [2]EdgeID{}, false
}

// shareVertex reports whether edges ei and ej already have a common VertexID endpoint.
func (d *DCEL) shareVertex(ei, ej EdgeID) bool {
	a1, a2 := d.HalfEdge(d.Edge(ei).H1).Origin, d.HalfEdge(d.Edge(ei).H2).Origin
	b1, b2 := d.HalfEdge(d.Edge(ej).H1).Origin, d.HalfEdge(d.Edge(ej).H2).Origin
	return a1 == b1 || a1 == b2 || a2 == b1 || a2 == b2
}

// segEq reports whether two segments have the same endpoint set (used by nextIntersection to
// skip a duplicate edge pair rather than repairing a segment against itself).
func segEq(a, b segment.Segment) bool {
	return (a.P1().Eq(b.P1()) && a.P2().Eq(b.P2())) || (a.P1().Eq(b.P2()) && a.P2().Eq(b.P1()))
}

// repairAt classifies the intersection of the two named edges at p and dispatches to the
// matching local topology repair: edge-edge, vertex-edge, or vertex-vertex, per spec.md §4.6.
func (d *DCEL) repairAt(p point.Point, eids [2]EdgeID) {
	ei, ej := eids[0], eids[1]

	crossingI := d.Edge(ei).Seg.ContainsInteriorPoint(p)
	crossingJ := d.Edge(ej).Seg.ContainsInteriorPoint(p)
	vi, hasVi := d.findVertexAt(p)
	_ = vi

	switch {
	case crossingI && crossingJ && !hasVi:
		d.edgeEdge(p, ei, ej)
	case crossingI && !crossingJ:
		d.vertexEdge(ej, ei)
	case crossingJ && !crossingI:
		d.vertexEdge(ei, ej)
	case !crossingI && !crossingJ:
		d.vertexVertex(ei, ej, p)
	default:
		panic(fmt.Errorf("dcel: overlay: unclassifiable intersection at %s between edges %d,%d", p, ei, ej))
	}
}

// edgeEdge repairs a crossing between two edges a and b that meet at an interior point of
// both, at the new point p that is not yet a vertex: a new Vertex is inserted at p, both edges
// are split into two, and the four resulting half-edges incident to the new vertex (plus the
// four that used to be incident to a/b's old endpoints) are rewired into a single clockwise
// fan around p. Grounded on overlay_cases.py: edge_edge.
func (d *DCEL) edgeEdge(p point.Point, a, b EdgeID) {
	if point.CW(d.Edge(a).Seg.P1(), d.Edge(b).Seg.P1(), d.Edge(a).Seg.P2()) {
		a, b = b, a
	}

	v := d.addVertex(p)

	aEdge, bEdge := d.Edge(a), d.Edge(b)
	aP1V, aP2V := d.HalfEdge(aEdge.H1).Origin, d.HalfEdge(aEdge.H2).Origin
	bP1V, bP2V := d.HalfEdge(bEdge.H1).Origin, d.HalfEdge(bEdge.H2).Origin
	aH1, aH2 := aEdge.H1, aEdge.H2
	bH1, bH2 := bEdge.H1, bEdge.H2

	_, a1H1, a1H2 := d.addEdgeVV(aP1V, v)
	_, a2H1, a2H2 := d.addEdgeVV(v, aP2V)
	_, b1H1, b1H2 := d.addEdgeVV(bP1V, v)
	_, b2H1, b2H2 := d.addEdgeVV(v, bP2V)

	type pair struct{ he, extNext HalfEdgeID }

	inguys := []HalfEdgeID{a1H1, b2H2, a2H2, b1H1}
	inguysPrev := []HalfEdgeID{d.HalfEdge(aH1).Prev, d.HalfEdge(bH2).Prev, d.HalfEdge(aH2).Prev, d.HalfEdge(bH1).Prev}

	order := d.cwOrder(p, inguys)
	n := len(inguys)
	for idx, pos := range order {
		e := inguys[pos]
		nxt := inguys[order[(idx+1)%n]]
		d.HalfEdge(e).Next = d.HalfEdge(nxt).Twin
		d.HalfEdge(d.HalfEdge(nxt).Twin).Prev = e
		d.HalfEdge(e).Prev = inguysPrev[pos]
		d.HalfEdge(inguysPrev[pos]).Next = e
	}

	outguys := []pair{
		{a1H2, d.HalfEdge(aH2).Next},
		{b2H1, d.HalfEdge(bH1).Next},
		{a2H1, d.HalfEdge(aH1).Next},
		{b1H2, d.HalfEdge(bH2).Next},
	}
	for _, og := range outguys {
		d.HalfEdge(og.he).Next = og.extNext
		d.HalfEdge(og.extNext).Prev = og.he
	}

	d.Vertex(v).Hedge = b2H1

	if d.Vertex(aP1V).Hedge == aH1 || d.Vertex(aP1V).Hedge == aH2 {
		d.Vertex(aP1V).Hedge = a1H1
	}
	if d.Vertex(aP2V).Hedge == aH1 || d.Vertex(aP2V).Hedge == aH2 {
		d.Vertex(aP2V).Hedge = a2H2
	}
	if d.Vertex(bP1V).Hedge == bH1 || d.Vertex(bP1V).Hedge == bH2 {
		d.Vertex(bP1V).Hedge = b1H1
	}
	if d.Vertex(bP2V).Hedge == bH1 || d.Vertex(bP2V).Hedge == bH2 {
		d.Vertex(bP2V).Hedge = b2H2
	}

	d.removeEdge(a)
	d.removeEdge(b)
}

// vertexEdge repairs a crossing where edge e's interior passes through an existing vertex v
// (with e not yet incident to v): e is split into two edges at v, and the CW fan of half-edges
// incident to v is rebuilt to include the two new incoming half-edges. Grounded on
// overlay_cases.py: vertex_edge.
func (d *DCEL) vertexEdge(vEdge EdgeID, e EdgeID) {
	// vEdge is the edge already incident to the crossing point; e is the edge whose interior
	// crosses it. Resolve which endpoint of vEdge sits at the crossing point.
	v := d.crossingVertexOf(vEdge, e)

	eEdge := d.Edge(e)
	eP1V, eP2V := d.HalfEdge(eEdge.H1).Origin, d.HalfEdge(eEdge.H2).Origin
	eH1, eH2 := eEdge.H1, eEdge.H2

	// Collect edges already incident to v before splitting e, so the two half-edges e1/e2
	// contribute (appended below) are not also picked up a second time by this scan.
	incident := d.edgesIncidentTo(v)

	_, e1H1, e1H2 := d.addEdgeVV(eP1V, v)
	_, e2H1, e2H2 := d.addEdgeVV(v, eP2V)

	var incoming []HalfEdgeID
	for _, inc := range incident {
		if inc == e {
			continue
		}
		incoming = append(incoming, d.pointingTo(inc, v))
	}
	incoming = append(incoming, e1H1, e2H2)

	order := d.cwOrder(d.Vertex(v).Point, incoming)
	n := len(incoming)
	for idx, pos := range order {
		cur := incoming[pos]
		nxt := incoming[order[(idx+1)%n]]
		d.HalfEdge(cur).Next = d.HalfEdge(nxt).Twin
		d.HalfEdge(d.HalfEdge(nxt).Twin).Prev = cur
	}

	d.HalfEdge(e2H1).Next = d.HalfEdge(eH1).Next
	d.HalfEdge(d.HalfEdge(eH1).Next).Prev = e2H1

	d.HalfEdge(e2H2).Prev = d.HalfEdge(eH2).Prev
	d.HalfEdge(d.HalfEdge(eH2).Prev).Next = e2H2

	d.HalfEdge(e1H1).Prev = d.HalfEdge(eH1).Prev
	d.HalfEdge(d.HalfEdge(eH1).Prev).Next = e1H1

	d.HalfEdge(e1H2).Next = d.HalfEdge(eH2).Next
	d.HalfEdge(d.HalfEdge(eH2).Next).Prev = e1H2

	d.Vertex(v).Hedge = e1H2
	if d.Vertex(eP1V).Hedge == eH1 || d.Vertex(eP1V).Hedge == eH2 {
		d.Vertex(eP1V).Hedge = e1H1
	}
	if d.Vertex(eP2V).Hedge == eH1 || d.Vertex(eP2V).Hedge == eH2 {
		d.Vertex(eP2V).Hedge = e2H2
	}

	d.removeEdge(e)
}

// crossingVertexOf returns the VertexID of vEdge's endpoint that e's interior crosses.
func (d *DCEL) crossingVertexOf(vEdge, e EdgeID) VertexID {
	ve := d.Edge(vEdge)
	v1, v2 := d.HalfEdge(ve.H1).Origin, d.HalfEdge(ve.H2).Origin
	if d.Edge(e).Seg.ContainsInteriorPoint(d.Vertex(v1).Point) {
		return v1
	}
	return v2
}

// edgesIncidentTo returns every live edge with v as one of its endpoints.
func (d *DCEL) edgesIncidentTo(v VertexID) []EdgeID {
	var out []EdgeID
	for _, eid := range d.LiveEdges() {
		e := d.Edge(eid)
		if d.HalfEdge(e.H1).Origin == v || d.HalfEdge(e.H2).Origin == v {
			out = append(out, eid)
		}
	}
	return out
}

// vertexVertex repairs two coincident vertices found via edges a and b whose shared endpoint
// is p but which are not yet the same vertex record: every edge incident to the "losing"
// vertex is re-pointed to the "surviving" one, the combined CW fan around the surviving vertex
// is rebuilt, and the losing vertex is removed. Grounded on overlay_cases.py: vertex_vertex.
func (d *DCEL) vertexVertex(a, b EdgeID, p point.Point) {
	v1 := d.endpointAt(a, p)
	v2 := d.endpointAt(b, p)
	if v1 == v2 {
		return
	}

	inc1 := d.edgesIncidentTo(v1)
	inc2 := d.edgesIncidentTo(v2)

	var heads []HalfEdgeID
	for _, e := range inc1 {
		heads = append(heads, d.pointingTo(e, v1))
	}
	for _, e := range inc2 {
		heads = append(heads, d.pointingTo(e, v2))
	}

	order := d.cwOrder(d.Vertex(v1).Point, heads)
	n := len(heads)
	for idx, pos := range order {
		e := heads[pos]
		nxt := heads[order[(idx+1)%n]]
		d.HalfEdge(e).Next = d.HalfEdge(nxt).Twin
		d.HalfEdge(d.HalfEdge(nxt).Twin).Prev = e
	}

	for i := range d.HalfEdges {
		if d.HalfEdges[i].Origin == v2 {
			d.HalfEdges[i].Origin = v1
		}
	}
	if len(heads) > 0 {
		d.Vertex(v1).Hedge = d.HalfEdge(heads[0]).Twin
	}
	d.Vertex(v2).removed = true
}

// endpointAt returns whichever endpoint of edge e has exactly the coordinates p.
func (d *DCEL) endpointAt(e EdgeID, p point.Point) VertexID {
	edge := d.Edge(e)
	v1 := d.HalfEdge(edge.H1).Origin
	if d.Vertex(v1).Point.Eq(p) {
		return v1
	}
	return d.HalfEdge(edge.H2).Origin
}

// cwOrder returns the permutation of indices into ids, a set of half-edges pointing into
// origin, that visits them in clockwise order around origin (by decreasing angle from origin
// to each half-edge's own origin, i.e. its twin's far endpoint), used by every overlay repair
// to rebuild a vertex's fan.
func (d *DCEL) cwOrder(origin point.Point, ids []HalfEdgeID) []int {
	idx := make([]int, len(ids))
	for i := range idx {
		idx[i] = i
	}
	cp := make([]HalfEdgeID, len(ids))
	for i, id := range ids {
		cp[i] = d.HalfEdge(id).Twin
	}
	d.sortFanCW(origin, cp)
	pos := make(map[HalfEdgeID]int, len(ids))
	for i, id := range ids {
		pos[d.HalfEdge(id).Twin] = i
	}
	out := make([]int, len(cp))
	for i, id := range cp {
		out[i] = pos[id]
	}
	return out
}

// removeEdge tombstones edge e and both of its half-edges.
func (d *DCEL) removeEdge(e EdgeID) {
	edge := d.Edge(e)
	edge.removed = true
	d.HalfEdge(edge.H1).removed = true
	d.HalfEdge(edge.H2).removed = true
}

// AnnotateFaces determines, for every face f of d, which face of other contains it, and
// records the mapping in f.OverlayData[other]. When other is d itself (self-annotation after
// initial construction) every face trivially maps to itself; otherwise the infinite face always
// maps to other's infinite face. For every remaining face, the search walks every live
// half-edge of other against f's outer cycle's leftmost half-edge, in the same priority order
// as the original overlay_cases case ladder:
//
//  1. segment-prefix containment: other's half-edge's span (as a directed segment) contains
//     leftmost's entire span, so leftmost lies along an edge of other and shares its face.
//  2. interior emanation: leftmost's origin lies strictly in the interior of other's
//     half-edge's span (collinear with it and strictly between its endpoints), and leftmost
//     emanates from that point into the half-edge's face (checked by the same CW/CCW orientation test as the ray-cast below).
//  3. shared origin: leftmost's origin exactly coincides with one or more of other's vertices;
//     the matching face is the one whose half-edge is immediately clockwise-next from leftmost
//     around that shared vertex (not simply "some half-edge at that vertex", since several
//     faces can meet at one point).
//  4. Otherwise leftmost's origin is disjoint from every edge of other: fall back to the
//     leftward ray-cast used by SetFaces (rightmostVisibleEdge + the h1/h2 orientation
//     disambiguation), which is exact because both use the same exact point.Orient primitive.
//
// Grounded on dcel.py: DCEL.annotate_faces.
//
// Panics:
//   - Via the shared ray-cast disambiguation, if an "impossible" collinear orientation case is
//     reached (see h1OrH2Above).
func (d *DCEL) AnnotateFaces(other *DCEL) {
	for i := range d.Faces {
		f := d.Face(FaceID(i))
		if f.OverlayData == nil {
			f.OverlayData = map[*DCEL]FaceID{}
		}

		if other == d {
			f.OverlayData[other] = FaceID(i)
			continue
		}
		if f.IsInfinite {
			f.OverlayData[other] = other.InfiniteFace
			continue
		}

		c := d.Cycle(f.Outer)
		leftmost := c.Leftmost
		s2 := d.Vertex(d.HalfEdge(leftmost).Origin).Point
		t2 := d.farPoint(leftmost)

		face, ok := annotateViaBoundary(other, s2, t2)
		if !ok {
			face = annotateViaRayCast(other, s2)
		}
		f.OverlayData[other] = face
		logDebugf("AnnotateFaces: face %d maps to face %d of %p (via boundary=%v)", i, face, other, ok)
	}
}

// annotateViaBoundary implements overlay_cases 1-3: it walks every live half-edge of other
// looking for one whose span contains the directed segment (origin, far) (case 1), one whose
// span origin strictly contains the point origin with (origin, far) emanating into its face
// (case 2), or — failing both — collects every half-edge of other sharing the exact point
// origin and resolves ties by clockwise adjacency around that shared vertex (case 3).
func annotateViaBoundary(other *DCEL, origin, far point.Point) (FaceID, bool) {
	var adjacent []HalfEdgeID

	for _, hid := range other.LiveHalfEdges() {
		h := other.HalfEdge(hid)
		s1 := other.Vertex(h.Origin).Point
		t1 := other.farPoint(hid)

		if (s1.Eq(origin) || point.CollinearInOrder(s1, origin, far)) &&
			(t1.Eq(far) || point.CollinearInOrder(origin, far, t1)) {
			return other.Cycle(h.Cycle).Face, true
		}

		if point.CollinearInOrder(s1, origin, t1) && point.CW(s1, far, t1) {
			return other.Cycle(h.Cycle).Face, true
		}

		if s1.Eq(origin) {
			adjacent = append(adjacent, hid)
		}
	}

	if len(adjacent) == 0 {
		return NoFace, false
	}

	type entry struct {
		far point.Point
		he  HalfEdgeID // NoHalfEdge marks the entry standing in for (origin, far) itself
	}
	entries := make([]entry, 0, len(adjacent)+1)
	for _, hid := range adjacent {
		entries = append(entries, entry{far: other.farPoint(hid), he: hid})
	}
	entries = append(entries, entry{far: far, he: NoHalfEdge})

	sort.Slice(entries, func(i, j int) bool {
		return origin.AngleTo(entries[i].far) > origin.AngleTo(entries[j].far)
	})

	self := -1
	for i, e := range entries {
		if e.he == NoHalfEdge {
			self = i
			break
		}
	}
	next := entries[(self+1)%len(entries)]
	if next.he == NoHalfEdge {
		panic(fmt.Errorf("dcel: annotateViaBoundary: no distinct clockwise-next half-edge at %s", origin))
	}
	return other.Cycle(other.HalfEdge(next.he).Cycle).Face, true
}

// annotateViaRayCast implements overlay_cases case 4: origin is disjoint from every edge of
// other, so cast a leftward ray from it and take the face of the nearest crossing edge.
func annotateViaRayCast(other *DCEL, origin point.Point) FaceID {
	eid, ok := other.rightmostVisibleEdge(origin)
	if !ok {
		return other.InfiniteFace
	}
	h1, h2 := other.orientedBoundaryHalves(eid, origin)
	winner := h1OrH2Above(other, origin, eid, h1, h2)
	return other.Cycle(other.HalfEdge(winner).Cycle).Face
}
