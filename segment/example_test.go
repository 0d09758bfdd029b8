package segment_test

import (
	"fmt"

	"github.com/cauchyschwarz192837/MapOverlays/point"
	"github.com/cauchyschwarz192837/MapOverlays/segment"
)

func ExampleGenericIntersect() {
	s := segment.New(point.NewFromInt64(0, 0), point.NewFromInt64(10, 10))
	other := segment.New(point.NewFromInt64(0, 10), point.NewFromInt64(10, 0))

	p, sLoc, oLoc, ok := segment.GenericIntersect(s, other)
	fmt.Println(p, sLoc, oLoc, ok)
	// Output:
	// (5,5,1)::(5.000000,5.000000) On On true
}

func ExampleSegment_ContainsSegment() {
	s := segment.New(point.NewFromInt64(0, 0), point.NewFromInt64(10, 0))
	inner := segment.New(point.NewFromInt64(2, 0), point.NewFromInt64(8, 0))
	fmt.Println(s.ContainsSegment(inner))
	// Output:
	// true
}
