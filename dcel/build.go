package dcel

import (
	"fmt"
	"sort"

	"github.com/cauchyschwarz192837/MapOverlays/point"
	"github.com/cauchyschwarz192837/MapOverlays/segment"
)

// New builds a DCEL from a planar embedding given as a set of unique points and the segments
// connecting them (segment endpoints must coincide, by exact equality, with one of points).
// The embedding must already be planar (non-crossing); resolving crossings between two
// otherwise-independent subdivisions is Overlay's job, not New's.
//
// New allocates a Vertex per point and an Edge (with a twinned pair of half-edges) per
// segment, fans out each vertex's outgoing half-edges in clockwise order, wires next/prev
// across the fan, computes faces, and self-annotates (every face maps to itself), exactly as
// DCEL construction is described for a single subdivision.
//
// Panics:
//   - If a segment's endpoint does not exactly equal one of the supplied points.
func New(points []point.Point, segs []segment.Segment) *DCEL {
	d := newDCEL()

	d.Verts = make([]Vertex, len(points))
	for i, p := range points {
		d.Verts[i] = Vertex{Point: p, Hedge: NoHalfEdge}
	}

	findVertex := func(p point.Point) VertexID {
		for i := range d.Verts {
			if d.Verts[i].Point.Eq(p) {
				return VertexID(i)
			}
		}
		panic(fmt.Errorf("dcel: segment endpoint %s is not among the supplied points", p))
	}

	d.Edges = make([]Edge, len(segs))
	d.HalfEdges = make([]HalfEdge, 0, 2*len(segs))
	for i, s := range segs {
		v1 := findVertex(s.P1())
		v2 := findVertex(s.P2())

		h1ID := HalfEdgeID(len(d.HalfEdges))
		d.HalfEdges = append(d.HalfEdges, HalfEdge{Origin: v1, Edge: EdgeID(i), Next: NoHalfEdge, Prev: NoHalfEdge})
		h2ID := HalfEdgeID(len(d.HalfEdges))
		d.HalfEdges = append(d.HalfEdges, HalfEdge{Origin: v2, Edge: EdgeID(i), Next: NoHalfEdge, Prev: NoHalfEdge})

		d.HalfEdge(h1ID).Twin = h2ID
		d.HalfEdge(h2ID).Twin = h1ID

		d.Edges[i] = Edge{Seg: s, H1: h1ID, H2: h2ID}

		if d.Vertex(v1).Hedge == NoHalfEdge {
			d.Vertex(v1).Hedge = h1ID
		}
		if d.Vertex(v2).Hedge == NoHalfEdge {
			d.Vertex(v2).Hedge = h2ID
		}
	}

	d.wireNextPrev()
	d.SetFaces()
	d.AnnotateFaces(d)

	return d
}

// wireNextPrev fans out, around every vertex, the half-edges originating there in clockwise
// order, and links cur.Twin.Next := nxt / nxt.Prev := cur.Twin for each cyclically consecutive
// pair. This realizes the twin/next/prev invariants that make every half-edge's Next walk
// trace out a boundary cycle.
func (d *DCEL) wireNextPrev() {
	outgoing := make([][]HalfEdgeID, len(d.Verts))
	for i := range d.HalfEdges {
		he := HalfEdgeID(i)
		origin := d.HalfEdge(he).Origin
		outgoing[origin] = append(outgoing[origin], he)
	}

	for v := range d.Verts {
		fan := outgoing[v]
		if len(fan) == 0 {
			continue
		}
		origin := d.Vertex(VertexID(v)).Point
		d.sortFanCW(origin, fan)

		n := len(fan)
		for i, cur := range fan {
			nxt := fan[(i+1)%n]
			twin := d.HalfEdge(cur).Twin
			d.HalfEdge(twin).Next = nxt
			d.HalfEdge(nxt).Prev = twin
		}
	}
}

// farPoint returns the point at the far end of half-edge he (its twin's origin).
func (d *DCEL) farPoint(he HalfEdgeID) point.Point {
	return d.Vertex(d.HalfEdge(d.HalfEdge(he).Twin).Origin).Point
}

// sortFanCW sorts ids, a set of half-edges all originating at origin, in clockwise order
// around origin: decreasing atan2 angle to each half-edge's far endpoint. This is the one
// fan-ordering rule used both by initial construction (wireNextPrev) and by overlay's local
// repairs (edgeEdge/vertexEdge/vertexVertex), which must re-derive the same clockwise fan
// whenever half-edges are spliced in or out around a vertex.
func (d *DCEL) sortFanCW(origin point.Point, ids []HalfEdgeID) {
	sort.Slice(ids, func(i, j int) bool {
		ai := origin.AngleTo(d.farPoint(ids[i]))
		aj := origin.AngleTo(d.farPoint(ids[j]))
		return ai > aj
	})
}
