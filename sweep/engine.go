package sweep

import (
	"github.com/cauchyschwarz192837/MapOverlays/options"
	"github.com/cauchyschwarz192837/MapOverlays/point"
	"github.com/cauchyschwarz192837/MapOverlays/segment"
)

// Engine drives the Bentley–Ottmann sweep over a fixed set of segments. Construct one with
// NewEngine and call Run once; an Engine is not meant to be reused across calls to Run.
type Engine struct {
	status *statusStructure
	queue  *eventQueue
}

// NewEngine constructs a fresh sweep Engine. By default the status structure's fast
// floating-point comparator falls back to exact arithmetic below defaultSweepEpsilon;
// pass options.WithEpsilon to widen or narrow that tolerance, e.g. for input whose
// coordinates are large enough that the default tolerance produces false near-misses.
func NewEngine(opts ...options.GeometryOptionsFunc) *Engine {
	cfg := options.ApplyGeometryOptions(options.GeometryOptions{Epsilon: defaultSweepEpsilon}, opts...)
	return &Engine{
		status: newStatusStructure(cfg.Epsilon),
		queue:  newEventQueue(),
	}
}

// Run finds every pairwise intersection among segs and returns the intersection points,
// assuming general position: no two segments share an endpoint y-coordinate, no three
// segments meet at a point, and no two segments intersect at an endpoint.
//
// Degenerate input that violates those assumptions is not silently tolerated: it surfaces as
// a panic from the event queue (coincident distinct events) or the status structure
// (duplicate/missing segment), per the package's documented error-handling policy.
func (e *Engine) Run(segs []segment.Segment) []point.Point {
	for _, seg := range segs {
		e.queue.Push(Event{Kind: Insert, Point: seg.Top(), Involved: []segment.Segment{seg}})
		e.queue.Push(Event{Kind: Delete, Point: seg.Bottom(), Involved: []segment.Segment{seg}})
	}

	var inters []point.Point
	var lastPoint point.Point
	haveLast := false

	for e.queue.Size() > 0 {
		evt := e.queue.Pop()

		if haveLast && !less(Event{Point: lastPoint}, evt) {
			panic("sweep: event queue popped events out of sweep order")
		}
		lastPoint = evt.Point
		haveLast = true

		var newEvts []Event
		switch evt.Kind {
		case Insert:
			newEvts = e.handleInsert(evt.Involved[0])
		case Delete:
			newEvts = e.handleDelete(evt.Involved[0])
		case Intersection:
			inters = append(inters, evt.Point)
			left, right := evt.Involved[0], evt.Involved[1]
			newEvts = e.handleIntersection(evt.Point, left, right)
		}

		for _, ne := range newEvts {
			e.queue.Push(ne)
		}
	}

	return inters
}

// handleInsert implements the INSERT event: move the sweep line to the segment's top
// endpoint, *then* insert it into the status structure (the comparator must reflect the new
// position before the insert descent compares against it), then check the newly inserted
// segment against its fresh left/right neighbors for future crossings.
func (e *Engine) handleInsert(seg segment.Segment) []Event {
	logDebugf("INSERT %s", seg)
	e.status.cmp.setLast(seg.Top())
	e.status.insert(seg)

	var newEvts []Event

	if ln, ok := e.status.leftNeighbor(seg); ok {
		if p, ok := segment.Intersect(seg, ln); ok {
			logDebugf("INSERT %s: future crossing with left neighbor %s at %s", seg, ln, p)
			evt := Event{Kind: Intersection, Point: p, Involved: []segment.Segment{ln, seg}}
			e.queue.Push(evt)
			newEvts = append(newEvts, evt)
		}
	}

	if rn, ok := e.status.rightNeighbor(seg); ok {
		if p, ok := segment.Intersect(seg, rn); ok {
			logDebugf("INSERT %s: future crossing with right neighbor %s at %s", seg, rn, p)
			evt := Event{Kind: Intersection, Point: p, Involved: []segment.Segment{seg, rn}}
			e.queue.Push(evt)
			newEvts = append(newEvts, evt)
		}
	}

	return newEvts
}

// handleDelete implements the DELETE event: move the sweep line to the segment's bottom
// endpoint, look up its current left/right neighbors *before* removing it (those neighbors
// are about to become adjacent to each other), then delete it and report any crossing below
// the sweep line between the neighbors it leaves behind.
func (e *Engine) handleDelete(seg segment.Segment) []Event {
	logDebugf("DELETE %s", seg)
	e.status.cmp.setLast(seg.Bottom())

	ln, haveLN := e.status.leftNeighbor(seg)
	rn, haveRN := e.status.rightNeighbor(seg)

	e.status.delete(seg)

	var newEvts []Event
	if haveLN && haveRN {
		if p, ok := segment.Intersect(ln, rn); ok && less(Event{Point: seg.Bottom()}, Event{Point: p}) {
			logDebugf("DELETE %s: newly adjacent neighbors %s and %s cross at %s", seg, ln, rn, p)
			evt := Event{Kind: Intersection, Point: p, Involved: []segment.Segment{ln, rn}}
			e.queue.Push(evt)
			newEvts = append(newEvts, evt)
		}
	}

	return newEvts
}

// handleIntersection implements the INTER event for a crossing between left (currently left
// of right above the sweep line) and right: swap their positions in the status structure
// while the comparator still reflects the pre-crossing order, so the swap can find that right
// is indeed left's right neighbor and remove both; the swap itself moves the sweep position to
// the crossing before reinserting them, after which new neighbor pairs are checked for
// crossings below the sweep line.
func (e *Engine) handleIntersection(p point.Point, left, right segment.Segment) []Event {
	logDebugf("INTERSECT %s between %s and %s", p, left, right)
	e.status.swap(left, right)
	e.status.cmp.setLast(p)

	var newEvts []Event

	if ln, ok := e.status.leftNeighbor(right); ok {
		if ip, ok := segment.Intersect(ln, right); ok && less(Event{Point: p}, Event{Point: ip}) {
			evt := Event{Kind: Intersection, Point: ip, Involved: []segment.Segment{ln, right}}
			e.queue.Push(evt)
			newEvts = append(newEvts, evt)
		}
	}

	if rn, ok := e.status.rightNeighbor(left); ok {
		if ip, ok := segment.Intersect(rn, left); ok && less(Event{Point: p}, Event{Point: ip}) {
			evt := Event{Kind: Intersection, Point: ip, Involved: []segment.Segment{left, rn}}
			e.queue.Push(evt)
			newEvts = append(newEvts, evt)
		}
	}

	return newEvts
}

// FindIntersections is a convenience wrapper around NewEngine(opts...).Run(segs).
func FindIntersections(segs []segment.Segment, opts ...options.GeometryOptionsFunc) []point.Point {
	return NewEngine(opts...).Run(segs)
}
