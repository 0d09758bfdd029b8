// Command overlaycli reads two JSON polygons (each a closed ordered list of integer vertices)
// and overlays them via dcel.Overlay, writing a summary of the resulting subdivision —
// vertex/edge/face counts — to stdout as JSON. Grounded on the teacher's cmd/genlinesegments
// for CLI structure; the overlay operation itself is this module's own domain logic.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/cauchyschwarz192837/MapOverlays/dcel"
	"github.com/cauchyschwarz192837/MapOverlays/point"
	"github.com/cauchyschwarz192837/MapOverlays/segment"
)

// vertexJSON is one {"x": ..., "y": ...} vertex of an input polygon file.
type vertexJSON struct {
	X int64 `json:"x"`
	Y int64 `json:"y"`
}

// summaryJSON is overlaycli's entire output: the shape of the overlaid subdivision.
type summaryJSON struct {
	Vertices int  `json:"vertices"`
	Edges    int  `json:"edges"`
	Faces    int  `json:"faces"`
	Computed bool `json:"faces_computed"`
}

func main() {
	cmd := &cli.Command{
		Name:      "overlaycli",
		Usage:     "Overlays two polygons given as JSON vertex lists and reports the resulting DCEL's shape",
		UsageText: "overlaycli --a <file> --b <file> [--faces]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "a", Usage: "Path to the first polygon's JSON vertex list", Required: true},
			&cli.StringFlag{Name: "b", Usage: "Path to the second polygon's JSON vertex list", Required: true},
			&cli.BoolFlag{Name: "faces", Usage: "Compute and annotate faces after overlaying", Value: true},
		},
		HideVersion: true,
		Action:      app,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func loadPolygon(path string) (*dcel.DCEL, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var verts []vertexJSON
	if err := json.Unmarshal(raw, &verts); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(verts) < 3 {
		return nil, fmt.Errorf("%s: a polygon needs at least 3 vertices, got %d", path, len(verts))
	}

	points := make([]point.Point, len(verts))
	for i, v := range verts {
		points[i] = point.NewFromInt64(v.X, v.Y)
	}

	segs := make([]segment.Segment, len(points))
	for i := range points {
		segs[i] = segment.New(points[i], points[(i+1)%len(points)])
	}

	return dcel.New(points, segs), nil
}

func app(_ context.Context, cmd *cli.Command) error {
	a, err := loadPolygon(cmd.String("a"))
	if err != nil {
		return err
	}
	b, err := loadPolygon(cmd.String("b"))
	if err != nil {
		return err
	}

	computeFaces := cmd.Bool("faces")
	result := dcel.Overlay(a, b, computeFaces)

	summary := summaryJSON{
		Vertices: len(result.LiveVertices()),
		Edges:    len(result.LiveEdges()),
		Faces:    len(result.Faces),
		Computed: computeFaces,
	}

	out, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
