// Command partitionviewer partitions a small hand-built path — a 2×2
// square with one curved edge — and prints every emitted B-quad and its
// Loop-Blinn vertex data to stdout. It stands in for a renderer without
// depending on a graphics toolkit: the B-quads it prints are exactly what a
// real viewer would hand to a vertex buffer.
package main

import (
	"fmt"

	"github.com/vecmesh/partitioner"
	"github.com/vecmesh/partitioner/geom"
	"github.com/vecmesh/partitioner/mesh"
)

func main() {
	// A square with its top edge replaced by an upward-bulging quadratic
	// curve: (0,0) -> (2,0) -> (2,2) -> curve through (1,3) -> (0,2) -> close.
	endpoints := []partitioner.Endpoint{
		{Position: geom.NewPoint32(0, 0), ControlPointIndex: partitioner.Sentinel, SubpathIndex: 0},
		{Position: geom.NewPoint32(2, 0), ControlPointIndex: partitioner.Sentinel, SubpathIndex: 0},
		{Position: geom.NewPoint32(2, 2), ControlPointIndex: partitioner.Sentinel, SubpathIndex: 0},
		{Position: geom.NewPoint32(0, 2), ControlPointIndex: 0, SubpathIndex: 0},
	}
	controlPoints := []geom.Point32{geom.NewPoint32(1, 3)}
	subpaths := []partitioner.Subpath{{FirstEndpointIndex: 0, LastEndpointIndex: uint32(len(endpoints))}}

	p := partitioner.New(endpoints, controlPoints, subpaths)
	ranges := p.Partition(0, 0, 1)

	lib := p.Library()
	fmt.Printf("path 0: vertices [%d,%d) b-quads [%d,%d)\n",
		ranges.BVertexPositions.Start, ranges.BVertexPositions.End,
		ranges.BQuads.Start, ranges.BQuads.End)

	for i := ranges.BQuads.Start; i < ranges.BQuads.End; i++ {
		bq := lib.BQuads()[i]
		fmt.Printf("b-quad %d:\n", i)
		fmt.Printf("  upper: UL=%s UC=%s UR=%s\n", describe(lib, bq.UL), describe(lib, bq.UC), describe(lib, bq.UR))
		fmt.Printf("  lower: LL=%s LC=%s LR=%s\n", describe(lib, bq.LL), describe(lib, bq.LC), describe(lib, bq.LR))
	}
}

func describe(lib *mesh.Library, i uint32) string {
	if i == partitioner.Sentinel {
		return "-"
	}
	return fmt.Sprintf("%d@%s%+v", i, lib.Position(i), lib.LoopBlinn(i))
}
