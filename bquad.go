package partitioner

import (
	"github.com/vecmesh/partitioner/fillrule"
	"github.com/vecmesh/partitioner/geom"
	"github.com/vecmesh/partitioner/mesh"
	"github.com/vecmesh/partitioner/numeric"
	"github.com/vecmesh/partitioner/sweep"
)

// shape classifies one bound of a B-quad for the purposes of the recursive
// hull-disjointness subdivision and the interior/curve triangle table (§4.7).
type shape uint8

const (
	shapeFlat shape = iota
	shapeConvex
	shapeConcave
)

func classifyShape(curved, convex bool) shape {
	switch {
	case !curved:
		return shapeFlat
	case convex:
		return shapeConvex
	default:
		return shapeConcave
	}
}

// subEdge is one bound's piece spanning from an already-emitted left vertex
// to a right-hand "middle" vertex at the B-quad's current right edge, plus
// its control point if curved. It exists only transiently during B-quad
// emission; the active edge list's own state is not touched until emission
// decides a piece is final.
type subEdge struct {
	leftIndex uint32
	leftPos   geom.Point32
	ctrlIndex uint32
	ctrlPos   geom.Point32
	midIndex  uint32
	midPos    geom.Point32
	curved    bool
}

// subdivideBoundAt truncates the active edge ae (whose geometry is edgeGeo)
// at x, pushing new vertices for the split point and, if curved, both the
// left half's and the right half's control points. It returns the left
// half as a subEdge ready for the B-quad emitter, plus the right half's
// control-point vertex index (Sentinel if flat) so the caller can carry the
// edge's remaining geometry forward past x.
func (p *Partitioner) subdivideBoundAt(ae sweep.ActiveEdge, edgeGeo sweep.Edge, x float32, pathID uint16) (se subEdge, rightCtrlIndex uint32) {
	left, right := edgeGeo.SubdivideAtX(x, p.epsilon)
	midPos := left.Sample(1)
	midIndex := p.library.PushVertex(midPos, pathID, mesh.LoopBlinnData{})

	se = subEdge{
		leftIndex: ae.LeftVertexIndex,
		leftPos:   edgeGeo.Sample(0),
		ctrlIndex: Sentinel,
		midIndex:  midIndex,
		midPos:    midPos,
		curved:    left.Curved,
	}
	rightCtrlIndex = Sentinel
	if left.Curved {
		se.ctrlPos = left.Curve.C
		se.ctrlIndex = p.library.PushVertex(se.ctrlPos, pathID, mesh.LoopBlinnData{})
		rightCtrlIndex = p.library.PushVertex(right.Curve.C, pathID, mesh.LoopBlinnData{})
	}
	return se, rightCtrlIndex
}

// subdivideAgainAtT splits a curved subEdge's own (leftPos, ctrlPos, midPos)
// curve at parameter t, pushing the three new vertices (left-half control,
// shared midpoint, right-half control) the hull-disjointness recursion needs.
func (p *Partitioner) subdivideAgainAtT(se subEdge, t float32, pathID uint16) (left, right subEdge) {
	c := geom.NewCurve(se.leftPos, se.ctrlPos, se.midPos)
	lc, rc := c.Subdivide(t)

	leftCtrlIdx := p.library.PushVertex(lc.C, pathID, mesh.LoopBlinnData{})
	midIdx := p.library.PushVertex(lc.B, pathID, mesh.LoopBlinnData{})
	rightCtrlIdx := p.library.PushVertex(rc.C, pathID, mesh.LoopBlinnData{})

	left = subEdge{leftIndex: se.leftIndex, leftPos: se.leftPos, ctrlIndex: leftCtrlIdx, ctrlPos: lc.C, midIndex: midIdx, midPos: lc.B, curved: true}
	right = subEdge{leftIndex: midIdx, leftPos: lc.B, ctrlIndex: rightCtrlIdx, ctrlPos: rc.C, midIndex: se.midIndex, midPos: se.midPos, curved: true}
	return left, right
}

// subdivideAgainAtX splits se (curved or flat) at x rather than at a fixed
// parameter, used when the opposite bound dictated where this one must be
// cut to keep both halves' x-ranges matched.
func (p *Partitioner) subdivideAgainAtX(se subEdge, x float32, pathID uint16) (left, right subEdge) {
	if !se.curved {
		l := geom.NewLine(se.leftPos, se.midPos)
		t := l.SolveTForX(x, p.epsilon)
		mid := l.Sample(t)
		midIdx := p.library.PushVertex(mid, pathID, mesh.LoopBlinnData{})
		left = subEdge{leftIndex: se.leftIndex, leftPos: se.leftPos, ctrlIndex: Sentinel, midIndex: midIdx, midPos: mid}
		right = subEdge{leftIndex: midIdx, leftPos: mid, ctrlIndex: Sentinel, midIndex: se.midIndex, midPos: se.midPos}
		return left, right
	}
	c := geom.NewCurve(se.leftPos, se.ctrlPos, se.midPos)
	t := c.SolveTForX(x, p.epsilon)
	return p.subdivideAgainAtT(se, t, pathID)
}

// emitBQuadsAroundActiveEdge is the B-quad emitter's entry point, called
// whenever active edge i needs to be cut at rightX — at a Regular or Max
// event, or mid-stabilization at a crossing point (§4.8). It finds i's
// bounding pair via the configured fill rule, subdivides both bounds (and
// any interior active edges strictly between them) at rightX, and recurses
// per §4.7 until their convex hulls stop overlapping or the recursion depth
// cap is reached.
func (p *Partitioner) emitBQuadsAroundActiveEdge(i int, rightX float32, pathID uint16) {
	flags := p.activeEdges.LeftToRightFlags()
	upperIdx, lowerIdx := fillrule.BoundingActiveEdges(p.fillRule, flags, i)
	if upperIdx == lowerIdx {
		return
	}

	upperAE := p.activeEdges.Get(upperIdx)
	lowerAE := p.activeEdges.Get(lowerIdx)

	if numeric.FloatEquals(p.VertexPosition(upperAE.LeftVertexIndex).X, rightX, p.epsilon) ||
		numeric.FloatEquals(p.VertexPosition(lowerAE.LeftVertexIndex).X, rightX, p.epsilon) {
		return
	}

	upperEdge := p.activeEdges.Edge(upperIdx, p)
	lowerEdge := p.activeEdges.Edge(lowerIdx, p)

	upperSplit, upperRightCtrl := p.subdivideBoundAt(upperAE, upperEdge, rightX, pathID)
	lowerSplit, lowerRightCtrl := p.subdivideBoundAt(lowerAE, lowerEdge, rightX, pathID)

	for k := upperIdx + 1; k < lowerIdx; k++ {
		p.cutInteriorActiveEdge(k, rightX, pathID)
	}

	p.emitBQuadsRecursive(upperIdx, lowerIdx, upperSplit, lowerSplit, 0, pathID)

	upperAE = p.activeEdges.Get(upperIdx)
	upperAE.LeftVertexIndex = upperSplit.midIndex
	upperAE.ControlPointVertexIndex = upperRightCtrl
	p.activeEdges.Set(upperIdx, upperAE)

	lowerAE = p.activeEdges.Get(lowerIdx)
	lowerAE.LeftVertexIndex = lowerSplit.midIndex
	lowerAE.ControlPointVertexIndex = lowerRightCtrl
	p.activeEdges.Set(lowerIdx, lowerAE)
}

// cutInteriorActiveEdge advances an active edge strictly between a B-quad's
// bounds to rightX without emitting a B-quad of its own: it is cut by the
// B-quad's interior, so it still needs a fresh vertex and a toggled parity,
// but no triangles are recorded for it directly.
func (p *Partitioner) cutInteriorActiveEdge(k int, rightX float32, pathID uint16) {
	ae := p.activeEdges.Get(k)
	edgeGeo := p.activeEdges.Edge(k, p)

	left, right := edgeGeo.SubdivideAtX(rightX, p.epsilon)
	midPos := left.Sample(1)

	newParity := !ae.Parity
	kind := mesh.Endpoint0
	if newParity {
		kind = mesh.Endpoint1
	}
	midIndex := p.library.PushVertex(midPos, pathID, mesh.LoopBlinnData{Kind: kind})

	newCtrlIndex := uint32(Sentinel)
	if left.Curved {
		newCtrlIndex = p.library.PushVertex(right.Curve.C, pathID, mesh.LoopBlinnData{})
	}

	ae.LeftVertexIndex = midIndex
	ae.ControlPointVertexIndex = newCtrlIndex
	ae.Parity = newParity
	p.activeEdges.Set(k, ae)
}

// emitBQuadsRecursive is the recursive hull-disjointness step (§4.7): a
// concave bound whose control point crosses the opposite bound's baseline
// still overlaps it, so both bounds are subdivided at the concave bound's
// midpoint x and the two halves are emitted independently. Recursion stops
// when neither bound intrudes, or depth reaches MaxBQuadSubdivisions (in
// which case the B-quad is emitted anyway, logged as a recoverable anomaly).
func (p *Partitioner) emitBQuadsRecursive(upperIdx, lowerIdx int, upper, lower subEdge, depth int, pathID uint16) {
	upperConvex := upper.curved && isConvex(upper.leftPos, upper.ctrlPos, upper.midPos, false)
	lowerConvex := lower.curved && isConvex(lower.leftPos, lower.ctrlPos, lower.midPos, true)
	upperShape := classifyShape(upper.curved, upperConvex)
	lowerShape := classifyShape(lower.curved, lowerConvex)

	if depth < MaxBQuadSubdivisions {
		if upperShape == shapeConcave {
			lowerBaseline := geom.NewLine(lower.leftPos, lower.midPos)
			if lowerBaseline.Side(upper.ctrlPos) < -p.epsilon {
				upperLeft, upperRight := p.subdivideAgainAtT(upper, 0.5, pathID)
				lowerLeft, lowerRight := p.subdivideAgainAtX(lower, upperLeft.midPos.X, pathID)
				p.emitBQuadsRecursive(upperIdx, lowerIdx, upperLeft, lowerLeft, depth+1, pathID)
				p.emitBQuadsRecursive(upperIdx, lowerIdx, upperRight, lowerRight, depth+1, pathID)
				return
			}
		}
		if lowerShape == shapeConcave {
			upperBaseline := geom.NewLine(upper.leftPos, upper.midPos)
			if upperBaseline.Side(lower.ctrlPos) > p.epsilon {
				lowerLeft, lowerRight := p.subdivideAgainAtT(lower, 0.5, pathID)
				upperLeft, upperRight := p.subdivideAgainAtX(upper, lowerLeft.midPos.X, pathID)
				p.emitBQuadsRecursive(upperIdx, lowerIdx, upperLeft, lowerLeft, depth+1, pathID)
				p.emitBQuadsRecursive(upperIdx, lowerIdx, upperRight, lowerRight, depth+1, pathID)
				return
			}
		}
	} else if upperShape == shapeConcave || lowerShape == shapeConcave {
		logDebugf("b-quad recursion depth %d exceeded between active edges %d and %d, emitting anyway", depth, upperIdx, lowerIdx)
	}

	p.emitBQuad(upperIdx, lowerIdx, upper, lower, upperShape, lowerShape)
}

// emitBQuad finalizes one non-subdividing B-quad: it assigns Loop-Blinn data
// to the bounds' control and middle vertices using each active edge's
// current parity, toggles those parities for the next cut, emits the
// interior and curve triangles, and records the BQuad itself.
func (p *Partitioner) emitBQuad(upperIdx, lowerIdx int, upper, lower subEdge, upperShape, lowerShape shape) {
	upperAE := p.activeEdges.Get(upperIdx)
	lowerAE := p.activeEdges.Get(lowerIdx)

	if upper.curved {
		_, ctrlData, midData := curveLoopBlinnData(upper.leftPos, upper.ctrlPos, upper.midPos, false, upperAE.Parity)
		p.library.SetLoopBlinn(upper.ctrlIndex, ctrlData)
		p.library.SetLoopBlinn(upper.midIndex, midData)
	} else {
		p.library.SetLoopBlinn(upper.midIndex, flatLoopBlinnData(upperAE.Parity))
	}
	if lower.curved {
		_, ctrlData, midData := curveLoopBlinnData(lower.leftPos, lower.ctrlPos, lower.midPos, true, lowerAE.Parity)
		p.library.SetLoopBlinn(lower.ctrlIndex, ctrlData)
		p.library.SetLoopBlinn(lower.midIndex, midData)
	} else {
		p.library.SetLoopBlinn(lower.midIndex, flatLoopBlinnData(lowerAE.Parity))
	}

	upperAE.Parity = !upperAE.Parity
	p.activeEdges.Set(upperIdx, upperAE)
	lowerAE.Parity = !lowerAE.Parity
	p.activeEdges.Set(lowerIdx, lowerAE)

	p.emitTriangles(upper, lower, upperShape, lowerShape)

	p.library.AddBQuad(mesh.BQuad{
		UL: upper.leftIndex, UC: upper.ctrlIndex, UR: upper.midIndex,
		LL: lower.leftIndex, LC: lower.ctrlIndex, LR: lower.midIndex,
	})
}

// emitTriangles pushes the interior and curve triangle indices for one
// B-quad, per the four-row table of §4.7 keyed by whether each bound is
// Concave or not (Flat and Convex bounds share a row; only a Concave bound
// changes which vertex the interior fan pivots on).
func (p *Partitioner) emitTriangles(upper, lower subEdge, upperShape, lowerShape shape) {
	ul, uc, um := upper.leftIndex, upper.ctrlIndex, upper.midIndex
	ll, lc, lm := lower.leftIndex, lower.ctrlIndex, lower.midIndex

	upperCurved := upperShape != shapeFlat
	lowerCurved := lowerShape != shapeFlat

	switch {
	case upperShape != shapeConcave && lowerShape != shapeConcave:
		p.library.PushInteriorTriangle(ul, um, ll)
		p.library.PushInteriorTriangle(lm, ll, um)
		if upperCurved {
			p.library.PushCurveTriangle(uc, um, ul)
		}
		if lowerCurved {
			p.library.PushCurveTriangle(lc, ll, lm)
		}
	case upperShape == shapeConcave && lowerShape != shapeConcave:
		p.library.PushInteriorTriangle(ul, uc, ll)
		p.library.PushInteriorTriangle(um, lm, uc)
		p.library.PushInteriorTriangle(lm, ll, uc)
		p.library.PushCurveTriangle(uc, ul, um)
		if lowerCurved {
			p.library.PushCurveTriangle(lc, ll, lm)
		}
	case upperShape != shapeConcave && lowerShape == shapeConcave:
		p.library.PushInteriorTriangle(ul, um, lc)
		p.library.PushInteriorTriangle(um, lm, lc)
		p.library.PushInteriorTriangle(ul, lc, ll)
		p.library.PushCurveTriangle(lc, lm, ll)
		if upperCurved {
			p.library.PushCurveTriangle(uc, um, ul)
		}
	default:
		p.library.PushInteriorTriangle(ul, uc, ll)
		p.library.PushInteriorTriangle(ll, uc, lc)
		p.library.PushInteriorTriangle(um, lc, uc)
		p.library.PushInteriorTriangle(um, lm, lc)
		p.library.PushCurveTriangle(uc, ul, um)
		p.library.PushCurveTriangle(lc, lm, ll)
	}
}
