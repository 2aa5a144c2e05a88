package partitioner

import (
	"github.com/vecmesh/partitioner/geom"
	"github.com/vecmesh/partitioner/mesh"
	"github.com/vecmesh/partitioner/types"
)

// curveLoopBlinnData computes the Loop-Blinn (uv, sign, kind) triple for the
// three vertices of a curved bound (p0 through control p1 to p2), per §6:
// convexity is the sign of (p1-p0) x (p2-p0), mirrored for a lower ("bottom")
// bound, and canonical UVs are (0,0)/(1,1) at the endpoints and (0.5,0) at
// the control point. parity selects whether the endpoint vertices are
// classified Endpoint0 or Endpoint1, toggled by the active edge each time it
// is cut.
func curveLoopBlinnData(p0, p1, p2 geom.Point32, bottom, parity bool) (p0Data, ctrlData, p2Data mesh.LoopBlinnData) {
	cross := p1.Sub(p0).CrossProduct(p2.Sub(p0))
	if bottom {
		cross = -cross
	}

	convex := types.OrientationFromCrossProduct(cross) == types.PointsClockwise
	sign := int8(1)
	ctrlKind := mesh.ConcaveControlPoint
	if convex {
		sign = -1
		ctrlKind = mesh.ConvexControlPoint
	}

	endpointKind := mesh.Endpoint0
	if parity {
		endpointKind = mesh.Endpoint1
	}

	p0Data = mesh.LoopBlinnData{UV: geom.NewPoint32(0, 0), Sign: sign, Kind: endpointKind}
	ctrlData = mesh.LoopBlinnData{UV: geom.NewPoint32(0.5, 0), Sign: sign, Kind: ctrlKind}
	p2Data = mesh.LoopBlinnData{UV: geom.NewPoint32(1, 1), Sign: sign, Kind: endpointKind}
	return p0Data, ctrlData, p2Data
}

// flatLoopBlinnData returns the Loop-Blinn data for a vertex on a straight
// bound, which carries no curve classification of its own.
func flatLoopBlinnData(parity bool) mesh.LoopBlinnData {
	kind := mesh.Endpoint0
	if parity {
		kind = mesh.Endpoint1
	}
	return mesh.LoopBlinnData{Kind: kind}
}

// isConvex reports whether a control point p1 bulges into the filled region
// of a bound running p0->p2, for a bottom (lower) or top (upper) bound.
func isConvex(p0, p1, p2 geom.Point32, bottom bool) bool {
	cross := p1.Sub(p0).CrossProduct(p2.Sub(p0))
	if bottom {
		cross = -cross
	}
	return types.OrientationFromCrossProduct(cross) == types.PointsClockwise
}
