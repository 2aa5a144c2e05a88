// Package geom provides the 2D geometric primitives the partitioner sweeps
// over: points, straight lines, and quadratic Bézier curves, all in float32
// to match the vertex buffers a GPU rasterizer ultimately consumes.
//
// # Overview
//
// Unlike a general-purpose computational geometry library, this package does
// not need containment, boolean ops, or arbitrary-degree curves — the
// partitioner only ever asks a [Line] or [Curve] three questions: where does
// it cross a given x, where does it cross another edge, and which side of
// its own chord does a point fall on. Those three operations ([Line.SolveTForX]
// / [Curve.SolveTForX], [Line.IntersectWithLine] / [Curve.IntersectWithLine]
// / [Curve.IntersectWithCurve], and
// [Curve.Side]) are the whole surface area this package needs to expose.
package geom

import (
	"fmt"

	"github.com/vecmesh/partitioner/numeric"
)

// Point32 represents a point (or a free vector, depending on context) in 2D
// space with float32 coordinates.
type Point32 struct {
	X, Y float32
}

// NewPoint32 creates a new Point32 with the given coordinates.
func NewPoint32(x, y float32) Point32 {
	return Point32{X: x, Y: y}
}

// Add returns the component-wise sum of p and q, treating both as vectors.
func (p Point32) Add(q Point32) Point32 {
	return Point32{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector from q to p (p - q).
func (p Point32) Sub(q Point32) Point32 {
	return Point32{X: p.X - q.X, Y: p.Y - q.Y}
}

// Negate returns p with both coordinates negated.
func (p Point32) Negate() Point32 {
	return Point32{X: -p.X, Y: -p.Y}
}

// Scale returns p scaled by k around the origin.
func (p Point32) Scale(k float32) Point32 {
	return Point32{X: p.X * k, Y: p.Y * k}
}

// CrossProduct returns the 2D cross product (determinant) of the vectors p
// and q:
//
//	p × q = p.X*q.Y - p.Y*q.X
//
// A positive result indicates q is counterclockwise from p, negative
// indicates clockwise, and zero indicates p and q are collinear.
func (p Point32) CrossProduct(q Point32) float32 {
	return p.X*q.Y - p.Y*q.X
}

// DotProduct returns the dot product of vectors p and q.
func (p Point32) DotProduct(q Point32) float32 {
	return p.X*q.X + p.Y*q.Y
}

// DistanceSquaredTo returns the squared Euclidean distance between p and q,
// avoiding a square root for callers that only need relative comparisons.
func (p Point32) DistanceSquaredTo(q Point32) float32 {
	dx, dy := q.X-p.X, q.Y-p.Y
	return dx*dx + dy*dy
}

// Eq reports whether p and q are equal within epsilon on both axes.
func (p Point32) Eq(q Point32, epsilon float32) bool {
	return numeric.FloatEquals(p.X, q.X, epsilon) && numeric.FloatEquals(p.Y, q.Y, epsilon)
}

// String returns a string representation of p in the form "(x, y)".
func (p Point32) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// lerp linearly interpolates between a and b at parameter t.
func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// lerpPoint linearly interpolates between points a and b at parameter t.
func lerpPoint(a, b Point32, t float32) Point32 {
	return Point32{X: lerp(a.X, b.X, t), Y: lerp(a.Y, b.Y, t)}
}
