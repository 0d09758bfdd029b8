package dcel

import "fmt"

// Verify checks the core DCEL well-formedness invariants: every half-edge's twin/next/prev
// links are mutually consistent, and every live vertex's stored outgoing half-edge is itself
// live and actually originates there. It is meant to be called after construction and after
// overlay, the two points at which the topology is freshly rewired and a bug would otherwise
// surface only as a mysteriously wrong face count much later.
//
// Panics:
//   - If any invariant is violated; a broken DCEL is a programmer error, not a recoverable
//     runtime condition.
func (d *DCEL) Verify() {
	for i := range d.HalfEdges {
		he := HalfEdgeID(i)
		h := d.HalfEdge(he)
		if h.removed {
			continue
		}
		if d.HalfEdge(h.Twin).Twin != he {
			panic(fmt.Errorf("dcel: verify: half-edge %d twin.twin != self", he))
		}
		if d.HalfEdge(h.Next).Prev != he {
			panic(fmt.Errorf("dcel: verify: half-edge %d next.prev != self", he))
		}
		if d.HalfEdge(h.Prev).Next != he {
			panic(fmt.Errorf("dcel: verify: half-edge %d prev.next != self", he))
		}
	}

	visited := make(map[HalfEdgeID]bool)
	for i := range d.HalfEdges {
		start := HalfEdgeID(i)
		if d.HalfEdge(start).removed || visited[start] {
			continue
		}
		cur := start
		for steps := 0; ; steps++ {
			if steps > len(d.HalfEdges) {
				panic(fmt.Errorf("dcel: verify: half-edge cycle starting at %d does not close", start))
			}
			visited[cur] = true
			cur = d.HalfEdge(cur).Next
			if cur == start {
				break
			}
		}
	}

	for i := range d.Verts {
		v := d.Vertex(VertexID(i))
		if v.removed {
			continue
		}
		if v.Hedge == NoHalfEdge {
			panic(fmt.Errorf("dcel: verify: vertex %d has no outgoing half-edge", i))
		}
		h := d.HalfEdge(v.Hedge)
		if h.removed {
			panic(fmt.Errorf("dcel: verify: vertex %d's stored half-edge %d has been removed", i, v.Hedge))
		}
		if h.Origin != VertexID(i) {
			panic(fmt.Errorf("dcel: verify: vertex %d's stored half-edge %d originates elsewhere", i, v.Hedge))
		}
	}
}
