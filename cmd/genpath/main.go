package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand/v2"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/vecmesh/partitioner"
	"github.com/vecmesh/partitioner/fillrule"
	"github.com/vecmesh/partitioner/geom"
	"github.com/vecmesh/partitioner/options"
)

func main() {
	cmd := &cli.Command{
		Name:      "genpath",
		Usage:     "Generates a random closed vector path, partitions it, and prints the resulting mesh summary as JSON",
		UsageText: "genpath --vertices <value> --maxx <value> --minx <value> --maxy <value> --miny <value> --curved --winding",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "vertices",
				Usage:   "The number of endpoints in the generated subpath",
				Value:   6,
				Aliases: []string{"n"},
				Validator: func(u int64) error {
					if u < 3 {
						return fmt.Errorf("vertices must be at least 3")
					}
					return nil
				},
			},
			&cli.IntFlag{Name: "maxx", Usage: "The maximum X value of the plane", Value: 100},
			&cli.IntFlag{Name: "minx", Usage: "The minimum X value of the plane", Value: 0},
			&cli.IntFlag{Name: "maxy", Usage: "The maximum Y value of the plane", Value: 100},
			&cli.IntFlag{Name: "miny", Usage: "The minimum Y value of the plane", Value: 0},
			&cli.BoolFlag{Name: "curved", Usage: "Give every edge a random quadratic control point"},
			&cli.BoolFlag{Name: "winding", Usage: "Use the non-zero winding fill rule instead of even-odd"},
		},
		HideVersion: true,
		Action:      app,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func randomFloatInRange(min, max int64) float32 {
	return float32(min) + rand.Float32()*float32(max-min)
}

type meshSummary struct {
	Vertices          int    `json:"vertices"`
	InteriorTriangles int    `json:"interior_triangles"`
	CurveTriangles    int    `json:"curve_triangles"`
	BQuads            int    `json:"b_quads"`
	FillRule          string `json:"fill_rule"`
}

func app(_ context.Context, cmd *cli.Command) error {
	minx, maxx := cmd.Int("minx"), cmd.Int("maxx")
	miny, maxy := cmd.Int("miny"), cmd.Int("maxy")
	n := cmd.Int("vertices")
	curved := cmd.Bool("curved")
	winding := cmd.Bool("winding")

	if minx >= maxx {
		return fmt.Errorf("maxx must be greater than minx")
	}
	if miny >= maxy {
		return fmt.Errorf("maxy must be greater than miny")
	}

	endpoints := make([]partitioner.Endpoint, n)
	var controlPoints []geom.Point32
	for i := int64(0); i < n; i++ {
		endpoints[i] = partitioner.Endpoint{
			Position:          geom.NewPoint32(randomFloatInRange(minx, maxx), randomFloatInRange(miny, maxy)),
			ControlPointIndex: partitioner.Sentinel,
			SubpathIndex:      0,
		}
		if curved {
			controlPoints = append(controlPoints, geom.NewPoint32(randomFloatInRange(minx, maxx), randomFloatInRange(miny, maxy)))
			endpoints[i].ControlPointIndex = uint32(len(controlPoints) - 1)
		}
	}

	subpaths := []partitioner.Subpath{{FirstEndpointIndex: 0, LastEndpointIndex: uint32(n)}}

	rule := fillrule.EvenOdd
	if winding {
		rule = fillrule.NonZeroWinding
	}

	p := partitioner.New(endpoints, controlPoints, subpaths, options.WithFillRule(rule))
	p.Partition(0, 0, 1)

	lib := p.Library()
	summary := meshSummary{
		Vertices:          lib.Len(),
		InteriorTriangles: len(lib.InteriorIndices()) / 3,
		CurveTriangles:    len(lib.CurveIndices()) / 3,
		BQuads:            len(lib.BQuads()),
		FillRule:          rule.String(),
	}

	b, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	fmt.Print(string(b))
	return nil
}
