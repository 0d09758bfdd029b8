package sweep

import (
	"fmt"

	"github.com/cauchyschwarz192837/MapOverlays/avltree"
	"github.com/cauchyschwarz192837/MapOverlays/segment"
)

// statusStructure is the set of segments currently crossing the sweep line, kept in
// left-to-right order by a statusComparator. It is an avltree.Tree specialized to
// segment.Segment keys, plus the swap operation the Intersection event handler needs (the
// AVL tree itself has no notion of "swap the positions of two already-present keys" — that
// is specific to how the sweep line repositions segments at a crossing).
type statusStructure struct {
	tree *avltree.Tree
	cmp  *statusComparator
}

func newStatusStructure(epsilon float64) *statusStructure {
	cmp := &statusComparator{epsilon: epsilon}
	return &statusStructure{
		tree: avltree.New(cmp.Compare),
		cmp:  cmp,
	}
}

func (s *statusStructure) insert(seg segment.Segment) {
	if err := s.tree.Insert(seg); err != nil {
		panic(fmt.Errorf("sweep: %w", err))
	}
}

func (s *statusStructure) delete(seg segment.Segment) {
	if ok := s.tree.Delete(seg); !ok {
		panic(fmt.Errorf("sweep: segment %s not present in status structure", seg))
	}
}

func (s *statusStructure) leftNeighbor(seg segment.Segment) (segment.Segment, bool) {
	v, ok := s.tree.LeftNeighbor(seg)
	if !ok {
		return segment.Segment{}, false
	}
	return v.(segment.Segment), true
}

func (s *statusStructure) rightNeighbor(seg segment.Segment) (segment.Segment, bool) {
	v, ok := s.tree.RightNeighbor(seg)
	if !ok {
		return segment.Segment{}, false
	}
	return v.(segment.Segment), true
}

// swap exchanges the tree positions of left and right, which must currently be adjacent
// (right must be left's right neighbor). This is how an Intersection event is applied: both
// segments are removed while the comparator still reflects the sweep position above their
// crossing, the sweep line is then moved to the crossing point, and both are reinserted, so
// the bottom-endpoint tie-break puts them in their below-the-crossing order.
//
// Panics:
//   - If left and right are not both present, or are not adjacent, in the status structure.
func (s *statusStructure) swap(left, right segment.Segment) {
	got, ok := s.rightNeighbor(left)
	if !ok || !sameSegment(got, right) {
		panic(fmt.Errorf("sweep: swap requires %s to be the right neighbor of %s", right, left))
	}

	if _, leftOK := s.tree.Search(left); !leftOK {
		panic(fmt.Errorf("sweep: swap requires %s present", left))
	}
	if _, rightOK := s.tree.Search(right); !rightOK {
		panic(fmt.Errorf("sweep: swap requires %s present", right))
	}

	// At the crossing point both segments meet the sweep line at the same x, so reinserting
	// them there lets the comparator's tie-break order them as they run below the crossing.
	p, _ := segment.Intersect(left, right)
	s.delete(left)
	s.delete(right)
	s.cmp.setLast(p)
	s.insert(right)
	s.insert(left)
}

// inOrder returns every segment currently in the status structure, left to right.
func (s *statusStructure) inOrder() []segment.Segment {
	raw := s.tree.InOrder()
	out := make([]segment.Segment, len(raw))
	for i, v := range raw {
		out[i] = v.(segment.Segment)
	}
	return out
}
