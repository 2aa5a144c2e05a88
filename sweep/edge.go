package sweep

import "github.com/vecmesh/partitioner/geom"

// Edge is a tagged union of a [geom.Line] and a [geom.Curve], letting the
// active edge list and the crossing-point primitives below treat a flat and
// a curved bound uniformly wherever the underlying geometry's shape doesn't
// matter, and case on Curved wherever it does.
type Edge struct {
	Curved bool
	Line   geom.Line
	Curve  geom.Curve
}

// NewLineEdge wraps a straight line as an Edge.
func NewLineEdge(l geom.Line) Edge {
	return Edge{Line: l}
}

// NewCurveEdge wraps a quadratic curve as an Edge.
func NewCurveEdge(c geom.Curve) Edge {
	return Edge{Curved: true, Curve: c}
}

// SolveTForX returns the parameter at which the edge crosses x.
func (e Edge) SolveTForX(x, epsilon float32) float32 {
	if e.Curved {
		return e.Curve.SolveTForX(x, epsilon)
	}
	return e.Line.SolveTForX(x, epsilon)
}

// Sample returns the point at parameter t along the edge.
func (e Edge) Sample(t float32) geom.Point32 {
	if e.Curved {
		return e.Curve.Sample(t)
	}
	return e.Line.Sample(t)
}

// YAtX returns the edge's y value at x, used to order the active edge list.
func (e Edge) YAtX(x, epsilon float32) float32 {
	return e.Sample(e.SolveTForX(x, epsilon)).Y
}

// Baseline returns the edge's chord, itself for a line, A-B for a curve.
func (e Edge) Baseline() geom.Line {
	if e.Curved {
		return e.Curve.Baseline()
	}
	return e.Line.Baseline()
}

// SubdivideAtX splits the edge at x, returning the left and right halves as
// Edges of the same shape.
func (e Edge) SubdivideAtX(x, epsilon float32) (left, right Edge) {
	if e.Curved {
		l, r := e.Curve.SubdivideAtX(x, epsilon)
		return NewCurveEdge(l), NewCurveEdge(r)
	}
	l, r := e.Line.SubdivideAtX(x, epsilon)
	return NewLineEdge(l), NewLineEdge(r)
}

// CrossingPoint finds the first intersection between a and b, if any,
// restricted to x <= maxX, by case on whether each edge is a line or a
// curve (§4.8: line×line, curve×line, curve×curve). Both edges are first
// truncated to their left half at maxX so an intersection beyond the
// current sweep position is never reported.
func CrossingPoint(a, b Edge, maxX, epsilon float32) (point geom.Point32, ok bool) {
	aLeft, _ := a.SubdivideAtX(maxX, epsilon)
	bLeft, _ := b.SubdivideAtX(maxX, epsilon)

	switch {
	case !aLeft.Curved && !bLeft.Curved:
		return aLeft.Line.IntersectWithLine(bLeft.Line)
	case aLeft.Curved && !bLeft.Curved:
		return aLeft.Curve.IntersectWithLine(bLeft.Line, epsilon)
	case !aLeft.Curved && bLeft.Curved:
		return bLeft.Curve.IntersectWithLine(aLeft.Line, epsilon)
	default:
		return aLeft.Curve.IntersectWithCurve(bLeft.Curve, epsilon)
	}
}
