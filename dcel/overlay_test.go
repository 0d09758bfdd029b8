package dcel

import (
	"testing"

	"github.com/cauchyschwarz192837/MapOverlays/point"
	"github.com/cauchyschwarz192837/MapOverlays/segment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// closedPolygon builds the DCEL of a simple closed polygon given its vertices in order.
func closedPolygon(vs []point.Point) *DCEL {
	segs := make([]segment.Segment, len(vs))
	for i := range vs {
		segs[i] = seg(vs[i], vs[(i+1)%len(vs)])
	}
	return New(vs, segs)
}

func TestOverlay_EdgeEdge_TwoCrossingQuads(t *testing.T) {
	quad1 := closedPolygon([]point.Point{pt(4, 0), pt(6, 1), pt(4, 4), pt(3, 1)})
	quad2 := closedPolygon([]point.Point{pt(2, 2), pt(8, 3), pt(6, 6), pt(4, 5)})

	result := Overlay(quad1, quad2, true)
	require.NotPanics(t, result.Verify)

	v := len(result.LiveVertices())
	e := len(result.LiveEdges())
	f := len(result.Faces)

	assert.Equal(t, 10, v, "4+4 original vertices plus 2 new crossing vertices")
	assert.Equal(t, 12, e, "8 original edges, each of 2 crossings replacing 2 edges with 4")
	assert.Equal(t, 1+1, v-e+f, "Euler relation for a single connected embedding")
}

func TestOverlay_VertexVertex_SharedApex(t *testing.T) {
	tri1 := closedPolygon([]point.Point{pt(0, 0), pt(4, 0), pt(2, 4)})
	tri2 := closedPolygon([]point.Point{pt(2, 4), pt(0, 6), pt(4, 6)})

	result := Overlay(tri1, tri2, true)
	require.NotPanics(t, result.Verify)

	v := len(result.LiveVertices())
	e := len(result.LiveEdges())
	f := len(result.Faces)

	assert.Equal(t, 5, v, "3+3 original vertices minus the one shared apex")
	assert.Equal(t, 6, e, "3+3 original edges, untouched by a vertex-vertex merge")
	assert.Equal(t, 1+1, v-e+f, "Euler relation for a single connected embedding")
}

func TestOverlay_VertexEdge_VertexOnEdgeInterior(t *testing.T) {
	triA := closedPolygon([]point.Point{pt(0, 0), pt(4, 0), pt(2, 4)})
	triB := closedPolygon([]point.Point{pt(2, 0), pt(2, -4), pt(6, -2)})

	result := Overlay(triA, triB, true)
	require.NotPanics(t, result.Verify)

	v := len(result.LiveVertices())
	e := len(result.LiveEdges())
	f := len(result.Faces)

	assert.Equal(t, 6, v, "3+3 original vertices; triB's (2,0) coincides with triA's bottom edge interior, not a new point")
	assert.Equal(t, 7, e, "3+3 original edges, plus one extra from splitting triA's bottom edge at triB's vertex")
	assert.Equal(t, 1+1, v-e+f, "Euler relation for a single connected embedding")
}

func TestOverlay_DoesNotMutateInputs(t *testing.T) {
	quad1 := closedPolygon([]point.Point{pt(4, 0), pt(6, 1), pt(4, 4), pt(3, 1)})
	quad2 := closedPolygon([]point.Point{pt(2, 2), pt(8, 3), pt(6, 6), pt(4, 5)})

	beforeV1, beforeE1 := len(quad1.LiveVertices()), len(quad1.LiveEdges())
	beforeV2, beforeE2 := len(quad2.LiveVertices()), len(quad2.LiveEdges())

	_ = Overlay(quad1, quad2, true)

	assert.Equal(t, beforeV1, len(quad1.LiveVertices()))
	assert.Equal(t, beforeE1, len(quad1.LiveEdges()))
	assert.Equal(t, beforeV2, len(quad2.LiveVertices()))
	assert.Equal(t, beforeE2, len(quad2.LiveEdges()))
}

func TestOverlay_AnnotateFaces_InfiniteFaceMapsToInfinite(t *testing.T) {
	quad1 := closedPolygon([]point.Point{pt(4, 0), pt(6, 1), pt(4, 4), pt(3, 1)})
	quad2 := closedPolygon([]point.Point{pt(2, 2), pt(8, 3), pt(6, 6), pt(4, 5)})

	result := Overlay(quad1, quad2, true)

	infFace := result.Face(result.InfiniteFace)
	assert.Equal(t, quad1.InfiniteFace, infFace.OverlayData[quad1])
	assert.Equal(t, quad2.InfiniteFace, infFace.OverlayData[quad2])
}

// boundedFaceID returns the one non-infinite face of a DCEL with no holes, such as the
// single-triangle/quad DCELs these tests build.
func boundedFaceID(d *DCEL) FaceID {
	for i := range d.Faces {
		if !d.Faces[i].IsInfinite {
			return FaceID(i)
		}
	}
	panic("dcel: no bounded face")
}

func TestOverlay_AnnotateFaces_FiniteFaceMapsToOriginatingFace(t *testing.T) {
	triA := closedPolygon([]point.Point{pt(0, 0), pt(4, 0), pt(2, 4)})
	triB := closedPolygon([]point.Point{pt(2, 0), pt(2, -4), pt(6, -2)})

	result := Overlay(triA, triB, true)

	aBounded := boundedFaceID(triA)
	bBounded := boundedFaceID(triB)

	var sawFaceFromA, sawFaceFromB bool
	for i := range result.Faces {
		f := result.Face(FaceID(i))
		if f.IsInfinite {
			continue
		}
		if f.OverlayData[triA] == aBounded && f.OverlayData[triB] == triB.InfiniteFace {
			sawFaceFromA = true
		}
		if f.OverlayData[triB] == bBounded && f.OverlayData[triA] == triA.InfiniteFace {
			sawFaceFromB = true
		}
	}

	assert.True(t, sawFaceFromA, "a finite overlay face should map to triA's own interior face and triB's infinite face")
	assert.True(t, sawFaceFromB, "a finite overlay face should map to triB's own interior face and triA's infinite face")
}

func TestOverlay_WithoutFaces_LeavesFacesEmpty(t *testing.T) {
	quad1 := closedPolygon([]point.Point{pt(4, 0), pt(6, 1), pt(4, 4), pt(3, 1)})
	quad2 := closedPolygon([]point.Point{pt(2, 2), pt(8, 3), pt(6, 6), pt(4, 5)})

	result := Overlay(quad1, quad2, false)
	assert.Empty(t, result.Faces)
	assert.Equal(t, NoFace, result.InfiniteFace)
}
