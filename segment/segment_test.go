package segment

import (
	"testing"

	"github.com/cauchyschwarz192837/MapOverlays/point"
	"github.com/stretchr/testify/assert"
)

func pt(x, y int64) point.Point {
	return point.NewFromInt64(x, y)
}

func TestNew_PanicsOnCoincidentEndpoints(t *testing.T) {
	assert.Panics(t, func() {
		New(pt(1, 1), pt(1, 1))
	})
}

func TestNew_CanonicalEndpoints(t *testing.T) {
	tests := map[string]struct {
		p1, p2                       point.Point
		wantTop, wantBottom          point.Point
		wantLeft, wantRight          point.Point
	}{
		"diagonal, no ties": {
			p1: pt(0, 0), p2: pt(1, 1),
			wantTop: pt(1, 1), wantBottom: pt(0, 0),
			wantLeft: pt(0, 0), wantRight: pt(1, 1),
		},
		"vertical segment falls back left/right to top/bottom": {
			p1: pt(5, 0), p2: pt(5, 10),
			wantTop: pt(5, 10), wantBottom: pt(5, 0),
			wantLeft: pt(5, 10), wantRight: pt(5, 0),
		},
		"horizontal segment falls back top/bottom to left/right": {
			p1: pt(10, 3), p2: pt(0, 3),
			wantTop: pt(0, 3), wantBottom: pt(10, 3),
			wantLeft: pt(0, 3), wantRight: pt(10, 3),
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			s := New(tc.p1, tc.p2)
			assert.True(t, s.Top().Eq(tc.wantTop))
			assert.True(t, s.Bottom().Eq(tc.wantBottom))
			assert.True(t, s.Left().Eq(tc.wantLeft))
			assert.True(t, s.Right().Eq(tc.wantRight))
		})
	}
}

func TestSegment_IsHorizontalIsVertical(t *testing.T) {
	h := New(pt(0, 0), pt(5, 0))
	v := New(pt(0, 0), pt(0, 5))
	diag := New(pt(0, 0), pt(5, 5))

	assert.True(t, h.IsHorizontal())
	assert.False(t, h.IsVertical())
	assert.True(t, v.IsVertical())
	assert.False(t, v.IsHorizontal())
	assert.False(t, diag.IsHorizontal())
	assert.False(t, diag.IsVertical())
}

func TestSegment_ContainsPoint(t *testing.T) {
	s := New(pt(0, 0), pt(10, 0))

	assert.True(t, s.ContainsPoint(pt(0, 0)))
	assert.True(t, s.ContainsPoint(pt(10, 0)))
	assert.True(t, s.ContainsPoint(pt(5, 0)))
	assert.False(t, s.ContainsPoint(pt(11, 0)))
	assert.False(t, s.ContainsPoint(pt(5, 1)))
}

func TestSegment_ContainsSegment(t *testing.T) {
	s := New(pt(0, 0), pt(10, 0))
	inner := New(pt(2, 0), pt(8, 0))
	overhang := New(pt(2, 0), pt(12, 0))

	assert.True(t, s.ContainsSegment(inner))
	assert.False(t, s.ContainsSegment(overhang))
}

func TestGenericIntersect_CrossingSegments(t *testing.T) {
	s := New(pt(0, 0), pt(10, 10))
	other := New(pt(0, 10), pt(10, 0))

	p, sLoc, oLoc, ok := GenericIntersect(s, other)
	assert.True(t, ok)
	assert.Equal(t, On, sLoc)
	assert.Equal(t, On, oLoc)
	assert.True(t, p.Eq(pt(5, 5)))
}

func TestGenericIntersect_ParallelLinesNotOk(t *testing.T) {
	s := New(pt(0, 0), pt(10, 0))
	other := New(pt(0, 1), pt(10, 1))

	_, _, _, ok := GenericIntersect(s, other)
	assert.False(t, ok)
}

func TestGenericIntersect_BeforeAfterClassification(t *testing.T) {
	// s runs from (0,0) to (1,0); other crosses s's supporting line far past s's p2.
	s := New(pt(0, 0), pt(1, 0))
	other := New(pt(5, -5), pt(5, 5))

	_, sLoc, _, ok := GenericIntersect(s, other)
	assert.True(t, ok)
	assert.Equal(t, After, sLoc)
}

func TestIntersect_OnlyReportsWithinBothSegments(t *testing.T) {
	s := New(pt(0, 0), pt(10, 10))
	crossing := New(pt(0, 10), pt(10, 0))
	missing := New(pt(20, 0), pt(20, 20))

	_, ok := Intersect(s, crossing)
	assert.True(t, ok)

	_, ok = Intersect(s, missing)
	assert.False(t, ok)
}
