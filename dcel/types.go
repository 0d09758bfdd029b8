// Package dcel implements a doubly-connected edge list: a half-edge based representation of
// a planar subdivision, together with face discovery and the overlay operation that merges
// two subdivisions into one, refining their edges at every crossing.
//
// Where the original implementation this package is modeled on represents half-edges as
// mutually-referencing objects (twin/next/prev as object pointers, membership tested by
// Python's "in" over lists), this package stores every record in an arena owned by the DCEL
// and refers to other records by small integer IDs. Overlay repairs become localized index
// rewrites rather than pointer surgery, and "removing" a record is a tombstone flip rather
// than a list search-and-delete.
package dcel

import (
	"math/big"

	"github.com/cauchyschwarz192837/MapOverlays/point"
	"github.com/cauchyschwarz192837/MapOverlays/segment"
)

// VertexID indexes a Vertex in a DCEL's Verts arena.
type VertexID int

// EdgeID indexes an Edge in a DCEL's Edges arena.
type EdgeID int

// HalfEdgeID indexes a HalfEdge in a DCEL's HalfEdges arena.
type HalfEdgeID int

// CycleID indexes a BoundaryCycle in a DCEL's Cycles arena.
type CycleID int

// Sentinel IDs.
const (
	// NoHalfEdge, NoVertex, NoEdge, NoCycle, and NoFace are the sentinel "absent" IDs, used
	// wherever the original implementation would have stored None/null.
	NoHalfEdge HalfEdgeID = -1
	NoVertex   VertexID   = -1
	NoEdge     EdgeID     = -1
	NoCycle    CycleID    = -1
	NoFace     FaceID     = -1
)

// FaceID indexes a Face in a DCEL's Faces arena.
type FaceID int

// Vertex is a point in the subdivision together with one of its incident outgoing half-edges,
// which serves as the entry point for walking its full cyclic fan of outgoing edges.
type Vertex struct {
	Point   point.Point
	Hedge   HalfEdgeID
	removed bool
}

// Edge is an undirected segment realized as a pair of twinned half-edges, H1 originating at
// Seg.P1() and H2 originating at Seg.P2().
type Edge struct {
	Seg     segment.Segment
	H1, H2  HalfEdgeID
	removed bool
}

// HalfEdge is one of the two directed halves of an Edge. Next and Prev link it into its
// boundary cycle; Twin links it to the other half of its Edge; Cycle and Face are filled in
// once SetFaces has run.
type HalfEdge struct {
	Origin  VertexID
	Edge    EdgeID
	Twin    HalfEdgeID
	Next    HalfEdgeID
	Prev    HalfEdgeID
	Cycle   CycleID
	removed bool
}

// BoundaryCycle is a closed walk of half-edges discovered by following Next pointers. Outer
// cycles bound a face from the inside; inner cycles bound a hole and nest inside some outer
// cycle's face via Parent.
type BoundaryCycle struct {
	Hedges   []HalfEdgeID
	IsOuter  bool
	Leftmost HalfEdgeID
	Parent   CycleID
	Face     FaceID
}

// Face is a maximal connected region of the plane bounded by one outer cycle and zero or more
// inner (hole) cycles. OverlayData records, for a face produced by Overlay, which face of each
// input DCEL contains it; it is populated by AnnotateFaces and keyed by DCEL identity exactly
// as the face it maps into.
type Face struct {
	Outer       CycleID
	Inners      []CycleID
	IsInfinite  bool
	OverlayData map[*DCEL]FaceID
}

// DCEL owns every record of a planar subdivision in its own arenas. IDs issued by one DCEL
// are meaningless against another; Copy and Overlay always build fresh arenas.
type DCEL struct {
	Verts     []Vertex
	Edges     []Edge
	HalfEdges []HalfEdge
	Cycles    []BoundaryCycle
	Faces     []Face

	InfiniteFace FaceID
}

func newDCEL() *DCEL {
	return &DCEL{InfiniteFace: NoFace}
}

// bigNegOne and bigZero are the displacement used to cast a unit-length leftward ray from a
// vertex (SetFaces' and AnnotateFaces' hole-nesting ray cast), shared so every call site builds
// the same Line rather than allocating a fresh big.Int pair each time.
var (
	bigNegOne = big.NewInt(-1)
	bigZero   = big.NewInt(0)
)

// Vertex returns the vertex record for id.
func (d *DCEL) Vertex(id VertexID) *Vertex { return &d.Verts[id] }

// Edge returns the edge record for id.
func (d *DCEL) Edge(id EdgeID) *Edge { return &d.Edges[id] }

// HalfEdge returns the half-edge record for id.
func (d *DCEL) HalfEdge(id HalfEdgeID) *HalfEdge { return &d.HalfEdges[id] }

// Cycle returns the boundary cycle record for id.
func (d *DCEL) Cycle(id CycleID) *BoundaryCycle { return &d.Cycles[id] }

// Face returns the face record for id.
func (d *DCEL) Face(id FaceID) *Face { return &d.Faces[id] }

// LiveVertices returns the IDs of every vertex not removed by an overlay repair.
func (d *DCEL) LiveVertices() []VertexID {
	var out []VertexID
	for i := range d.Verts {
		if !d.Verts[i].removed {
			out = append(out, VertexID(i))
		}
	}
	return out
}

// LiveEdges returns the IDs of every edge not removed by an overlay repair.
func (d *DCEL) LiveEdges() []EdgeID {
	var out []EdgeID
	for i := range d.Edges {
		if !d.Edges[i].removed {
			out = append(out, EdgeID(i))
		}
	}
	return out
}

// LiveHalfEdges returns the IDs of every half-edge not removed by an overlay repair.
func (d *DCEL) LiveHalfEdges() []HalfEdgeID {
	var out []HalfEdgeID
	for i := range d.HalfEdges {
		if !d.HalfEdges[i].removed {
			out = append(out, HalfEdgeID(i))
		}
	}
	return out
}

// pointingFrom returns the half-edge of e that originates at v.
//
// Panics:
//   - If neither half-edge of e originates at v.
func (d *DCEL) pointingFrom(e EdgeID, v VertexID) HalfEdgeID {
	edge := d.Edge(e)
	if d.HalfEdge(edge.H1).Origin == v {
		return edge.H1
	}
	if d.HalfEdge(edge.H2).Origin == v {
		return edge.H2
	}
	panic("dcel: edge is not incident to vertex")
}

// pointingTo returns the half-edge of e that terminates at v (i.e. the twin of the half-edge
// that originates at v).
func (d *DCEL) pointingTo(e EdgeID, v VertexID) HalfEdgeID {
	return d.HalfEdge(d.pointingFrom(e, v)).Twin
}
