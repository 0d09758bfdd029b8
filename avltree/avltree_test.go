package avltree

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intCmp(a, b any) int {
	x, y := a.(int), b.(int)
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

// validateShape walks the whole tree asserting the two structural invariants an AVL tree
// promises: every node's parent pointer points back at its actual parent, and every node is
// height-balanced (|balanceFactor| <= 1).
func validateShape(t *testing.T, tr *Tree) {
	t.Helper()

	var walk func(n *node, parent *node)
	walk = func(n *node, parent *node) {
		if n == nil {
			return
		}
		assert.Same(t, parent, n.parent)
		assert.LessOrEqual(t, balanceFactor(n), 1)
		assert.GreaterOrEqual(t, balanceFactor(n), -1)
		if n.left != nil {
			assert.Less(t, intCmp(n.left.key, n.key), 0)
		}
		if n.right != nil {
			assert.Greater(t, intCmp(n.right.key, n.key), 0)
		}
		walk(n.left, n)
		walk(n.right, n)
	}
	walk(tr.root, nil)
}

func TestTree_InsertMaintainsShape(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	xs := r.Perm(1000)

	tr := New(intCmp)
	for _, x := range xs {
		require.NoError(t, tr.Insert(x))
	}

	assert.Equal(t, 1000, tr.Len())
	validateShape(t, tr)

	got := tr.InOrder()
	require.Len(t, got, 1000)
	for i, v := range got {
		assert.Equal(t, i, v)
	}
}

func TestTree_InsertDuplicateReturnsErrorWithoutMutating(t *testing.T) {
	tr := New(intCmp)
	require.NoError(t, tr.Insert(5))

	err := tr.Insert(5)
	assert.Error(t, err)
	assert.Equal(t, 1, tr.Len())
}

func TestTree_DeleteMaintainsShape(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	xs := r.Perm(500)

	tr := New(intCmp)
	for _, x := range xs {
		require.NoError(t, tr.Insert(x))
	}

	toDelete := xs[:250]
	for _, x := range toDelete {
		ok := tr.Delete(x)
		assert.True(t, ok)
	}

	assert.Equal(t, 250, tr.Len())
	validateShape(t, tr)
}

func TestTree_DeleteMissingKeyIsNoop(t *testing.T) {
	tr := New(intCmp)
	require.NoError(t, tr.Insert(1))

	assert.False(t, tr.Delete(99))
	assert.Equal(t, 1, tr.Len())
}

// naiveLeftNeighbor/naiveRightNeighbor mirror the O(n) reference implementations in the
// original AVL tree that left_neighbor/right_neighbor were written to replace.
func naiveLeftNeighbor(keys []int, key int) (int, bool) {
	idx := sort.SearchInts(keys, key)
	if idx <= 0 || idx >= len(keys) || keys[idx] != key {
		return 0, false
	}
	return keys[idx-1], true
}

func naiveRightNeighbor(keys []int, key int) (int, bool) {
	idx := sort.SearchInts(keys, key)
	if idx < 0 || idx >= len(keys)-1 || keys[idx] != key {
		return 0, false
	}
	return keys[idx+1], true
}

func TestTree_NeighborsMatchNaiveReference(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	xs := r.Perm(1000)

	tr := New(intCmp)
	for _, x := range xs {
		require.NoError(t, tr.Insert(x))
	}

	sorted := append([]int(nil), xs...)
	sort.Ints(sorted)

	for _, x := range xs[:50] {
		wantLeft, wantLeftOK := naiveLeftNeighbor(sorted, x)
		gotLeft, gotLeftOK := tr.LeftNeighbor(x)
		assert.Equal(t, wantLeftOK, gotLeftOK)
		if wantLeftOK {
			assert.Equal(t, wantLeft, gotLeft)
		}

		wantRight, wantRightOK := naiveRightNeighbor(sorted, x)
		gotRight, gotRightOK := tr.RightNeighbor(x)
		assert.Equal(t, wantRightOK, gotRightOK)
		if wantRightOK {
			assert.Equal(t, wantRight, gotRight)
		}
	}
}

func TestTree_NeighborsOfAbsentKey(t *testing.T) {
	tr := New(intCmp)
	for _, x := range []int{10, 20, 30, 40} {
		require.NoError(t, tr.Insert(x))
	}

	left, ok := tr.LeftNeighbor(25)
	require.True(t, ok)
	assert.Equal(t, 20, left)

	right, ok := tr.RightNeighbor(25)
	require.True(t, ok)
	assert.Equal(t, 30, right)

	_, ok = tr.LeftNeighbor(5)
	assert.False(t, ok)

	_, ok = tr.RightNeighbor(45)
	assert.False(t, ok)
}
