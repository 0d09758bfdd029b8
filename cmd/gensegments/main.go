// Command gensegments generates random integer-coordinate line segments within a rectangular
// plane and writes them to stdout as a JSON array, for feeding into sweep.FindIntersections or
// saving as a fixture for dcel.New. Grounded on the teacher's cmd/genlinesegments.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand/v2"
	"os"

	"github.com/urfave/cli/v3"
)

// segmentJSON is the wire shape of one generated segment: plain int64 endpoints, since
// segment.Segment itself carries no JSON tags (the core library has no serialization
// surface — this command's own output format is local to it).
type segmentJSON struct {
	X1 int64 `json:"x1"`
	Y1 int64 `json:"y1"`
	X2 int64 `json:"x2"`
	Y2 int64 `json:"y2"`
}

func main() {
	cmd := &cli.Command{
		Name:      "gensegments",
		Usage:     "Generates random line segments in a plane and outputs them to stdout as JSON",
		UsageText: "gensegments --number <value> --maxx <value> --minx <value> --maxy <value> --miny <value>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "number",
				Usage:    "The number of segments to create",
				Value:    3,
				Aliases:  []string{"n"},
				OnlyOnce: true,
				Validator: func(u int64) error {
					if u <= 0 {
						return fmt.Errorf("number must be greater than zero")
					}
					return nil
				},
			},
			&cli.IntFlag{Name: "maxx", Usage: "The maximum X value of the plane", OnlyOnce: true, Value: 10},
			&cli.IntFlag{Name: "minx", Usage: "The minimum X value of the plane", OnlyOnce: true, Value: 0},
			&cli.IntFlag{Name: "maxy", Usage: "The maximum Y value of the plane", OnlyOnce: true, Value: 10},
			&cli.IntFlag{Name: "miny", Usage: "The minimum Y value of the plane", OnlyOnce: true, Value: 0},
		},
		HideVersion: true,
		Action:      app,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func randomIntInRange(min, max int64) int64 {
	return min + rand.Int64N(max-min+1)
}

func app(_ context.Context, cmd *cli.Command) error {
	minx := cmd.Int("minx")
	maxx := cmd.Int("maxx")
	miny := cmd.Int("miny")
	maxy := cmd.Int("maxy")
	n := cmd.Int("number")

	if minx >= maxx {
		return fmt.Errorf("maxx must be greater than minx")
	}
	if miny >= maxy {
		return fmt.Errorf("maxy must be greater than miny")
	}

	output := make([]segmentJSON, n)
	for i := int64(0); i < n; i++ {
		for {
			output[i] = segmentJSON{
				X1: randomIntInRange(minx, maxx),
				Y1: randomIntInRange(miny, maxy),
				X2: randomIntInRange(minx, maxx),
				Y2: randomIntInRange(miny, maxy),
			}
			if output[i].X1 != output[i].X2 || output[i].Y1 != output[i].Y2 {
				break
			}
		}
	}

	b, err := json.Marshal(output)
	if err != nil {
		return err
	}
	fmt.Print(string(b))
	return nil
}
