package point_test

import (
	"fmt"

	"github.com/cauchyschwarz192837/MapOverlays/point"
)

func ExampleNew() {
	p := point.NewFromInt64(3, 4)
	fmt.Println(p)
	// Output:
	// (3,4,1)::(3.000000,4.000000)
}

func ExampleOrientation() {
	a := point.NewFromInt64(0, 0)
	b := point.NewFromInt64(1, 0)
	c := point.NewFromInt64(1, 1)

	fmt.Println(point.Orientation(a, b, c))
	fmt.Println(point.Orientation(a, c, b))
	fmt.Println(point.Orientation(a, b, point.NewFromInt64(2, 0)))
	// Output:
	// Counterclockwise
	// Clockwise
	// Collinear
}

func ExamplePoint_Eq() {
	a := point.NewFromInt64(2, 4)
	b := point.New(a.X(), a.Y(), a.W())
	fmt.Println(a.Eq(b))
	// Output:
	// true
}
