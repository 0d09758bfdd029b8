package sweep_test

import (
	"fmt"
	"sort"

	"github.com/cauchyschwarz192837/MapOverlays/point"
	"github.com/cauchyschwarz192837/MapOverlays/segment"
	"github.com/cauchyschwarz192837/MapOverlays/sweep"
)

func ExampleFindIntersections() {
	segs := []segment.Segment{
		segment.New(point.NewFromInt64(0, 0), point.NewFromInt64(4, 4)),
		segment.New(point.NewFromInt64(0, 4), point.NewFromInt64(4, 0)),
		segment.New(point.NewFromInt64(1, 5), point.NewFromInt64(1, -1)),
	}

	pts := sweep.FindIntersections(segs)
	strs := make([]string, len(pts))
	for i, p := range pts {
		strs[i] = p.String()
	}
	sort.Strings(strs)
	for _, s := range strs {
		fmt.Println(s)
	}
	// Output:
	// (1,1,1)::(1.000000,1.000000)
	// (1,3,1)::(1.000000,3.000000)
	// (2,2,1)::(2.000000,2.000000)
}
