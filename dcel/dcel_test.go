package dcel

import (
	"testing"

	"github.com/cauchyschwarz192837/MapOverlays/point"
	"github.com/cauchyschwarz192837/MapOverlays/segment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pt(x, y int64) point.Point { return point.NewFromInt64(x, y) }

func seg(a, b point.Point) segment.Segment { return segment.New(a, b) }

func TestNew_StarDCEL(t *testing.T) {
	center := pt(1, 1)
	arms := []point.Point{pt(0, 1), pt(2, 1), pt(1, 0), pt(1, 2)}

	points := append([]point.Point{center}, arms...)
	var segs []segment.Segment
	for _, arm := range arms {
		segs = append(segs, seg(center, arm))
	}

	d := New(points, segs)
	require.NotPanics(t, d.Verify)

	assert.Equal(t, 5, len(d.LiveVertices()))
	assert.Equal(t, 4, len(d.LiveEdges()))
	assert.Len(t, d.LiveHalfEdges(), 8)

	require.NotEqual(t, NoFace, d.InfiniteFace)
	assert.True(t, d.Face(d.InfiniteFace).IsInfinite)

	assertEulerRelation(t, d, 1)
}

func TestNew_RectangleDCEL(t *testing.T) {
	corners := []point.Point{pt(0, 0), pt(0, 2), pt(2, 2), pt(2, 0)}
	segs := []segment.Segment{
		seg(corners[0], corners[1]),
		seg(corners[1], corners[2]),
		seg(corners[2], corners[3]),
		seg(corners[3], corners[0]),
	}

	d := New(corners, segs)
	require.NotPanics(t, d.Verify)

	assert.Equal(t, 4, len(d.LiveVertices()))
	assert.Equal(t, 4, len(d.LiveEdges()))
	assert.Len(t, d.Faces, 2)

	var bounded int
	for i := range d.Faces {
		if !d.Faces[i].IsInfinite {
			bounded++
		}
	}
	assert.Equal(t, 1, bounded)

	assertEulerRelation(t, d, 1)
}

// assertEulerRelation checks V - E + F == 1 + components for a constructed DCEL (the number
// of faces here includes the unbounded one, matching spec.md §8 property 7).
func assertEulerRelation(t *testing.T, d *DCEL, components int) {
	t.Helper()
	v := len(d.LiveVertices())
	e := len(d.LiveEdges())
	f := len(d.Faces)
	assert.Equal(t, 1+components, v-e+f, "Euler relation V-E+F = 1+C")
}

func TestDCEL_Copy_IsIndependent(t *testing.T) {
	corners := []point.Point{pt(0, 0), pt(0, 2), pt(2, 2), pt(2, 0)}
	segs := []segment.Segment{
		seg(corners[0], corners[1]),
		seg(corners[1], corners[2]),
		seg(corners[2], corners[3]),
		seg(corners[3], corners[0]),
	}
	d := New(corners, segs)
	cp := d.Copy()

	require.NotPanics(t, cp.Verify)
	assert.Equal(t, len(d.LiveVertices()), len(cp.LiveVertices()))
	assert.Equal(t, len(d.LiveEdges()), len(cp.LiveEdges()))

	cp.Verts[0].Point = pt(99, 99)
	assert.False(t, d.Verts[0].Point.Eq(pt(99, 99)))
}

func TestVerify_DoesNotPanicOnWellFormedRectangle(t *testing.T) {
	corners := []point.Point{pt(0, 0), pt(0, 2), pt(2, 2), pt(2, 0)}
	segs := []segment.Segment{
		seg(corners[0], corners[1]),
		seg(corners[1], corners[2]),
		seg(corners[2], corners[3]),
		seg(corners[3], corners[0]),
	}
	d := New(corners, segs)
	assert.NotPanics(t, d.Verify)
}

func TestVerify_PanicsOnBrokenTwin(t *testing.T) {
	corners := []point.Point{pt(0, 0), pt(0, 2), pt(2, 2), pt(2, 0)}
	segs := []segment.Segment{
		seg(corners[0], corners[1]),
		seg(corners[1], corners[2]),
		seg(corners[2], corners[3]),
		seg(corners[3], corners[0]),
	}
	d := New(corners, segs)
	wrongTwin := (d.HalfEdges[0].Twin + 1) % HalfEdgeID(len(d.HalfEdges))
	d.HalfEdges[0].Twin = wrongTwin

	assert.Panics(t, d.Verify)
}
