package sweep

import (
	"fmt"

	rbt "github.com/emirpasic/gods/trees/redblacktree"
	"github.com/cauchyschwarz192837/MapOverlays/point"
	"github.com/cauchyschwarz192837/MapOverlays/segment"
)

// eventQueue is a priority queue of sweep-line events, ordered by the sweep direction (see
// less in event.go) and backed by a red-black tree so Pop/Push both run in O(log n).
//
// At most one Event is ever stored per distinct point: pushing a second event at a point
// already holding one is either a no-op (if it is the very same event — e.g. an intersection
// discovered twice from two different neighbor pairs) or a fatal error (if it is a distinct
// event — two unrelated things happening at the same point, which the sweep algorithm as
// specified here assumes cannot happen).
type eventQueue struct {
	tree *rbt.Tree
}

func pointComparator(a, b any) int {
	pa, pb := a.(point.Point), b.(point.Point)
	switch {
	case less(Event{Point: pa}, Event{Point: pb}):
		return -1
	case less(Event{Point: pb}, Event{Point: pa}):
		return 1
	default:
		return 0
	}
}

func newEventQueue() *eventQueue {
	return &eventQueue{tree: rbt.NewWith(pointComparator)}
}

func (q *eventQueue) Size() int {
	return q.tree.Size()
}

// Push adds evt to the queue, unless an identical event at the same point is already queued
// (in which case it is silently dropped — this is the normal path for an intersection
// discovered from both of its adjacent neighbor pairs).
//
// Panics:
//   - If a distinct event (different kind, or different involved segments) already occupies
//     evt's point: the sweep algorithm's general-position assumptions (spec.md §4.1 /
//     §4.3 non-goals) rule this out, so seeing it means an upstream invariant broke.
func (q *eventQueue) Push(evt Event) {
	existingVal, found := q.tree.Get(evt.Point)
	if !found {
		q.tree.Put(evt.Point, evt)
		return
	}

	existing := existingVal.(Event)
	if sameEvent(existing, evt) {
		return
	}

	panic(fmt.Errorf("sweep: coincident distinct events unsupported at %s: %s %v vs %s %v",
		evt.Point, existing.Kind, existing.Involved, evt.Kind, evt.Involved))
}

// sameEvent reports whether two events at the same point are the "same" event: same kind,
// and the same set of involved segments (order-independent, mirroring the original's
// set(e.involved) == set(evt.involved)).
func sameEvent(a, b Event) bool {
	if a.Kind != b.Kind || len(a.Involved) != len(b.Involved) {
		return false
	}

	remaining := append([]segment.Segment(nil), b.Involved...)
	for _, s := range a.Involved {
		matched := false
		for i, r := range remaining {
			if sameSegment(s, r) {
				remaining = append(remaining[:i], remaining[i+1:]...)
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

func sameSegment(a, b segment.Segment) bool {
	return a.P1().Eq(b.P1()) && a.P2().Eq(b.P2())
}

// Pop removes and returns the event at the smallest (topmost, then leftmost) point in the
// queue.
//
// Panics:
//   - If the queue is empty.
func (q *eventQueue) Pop() Event {
	node := q.tree.Left()
	if node == nil {
		panic(fmt.Errorf("sweep: tried to pop from empty event queue"))
	}
	q.tree.Remove(node.Key)
	return node.Value.(Event)
}
