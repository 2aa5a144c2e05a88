package geom

import "github.com/vecmesh/partitioner/numeric"

// Line is a straight edge from A to B. By sweep convention A.X <= B.X; the
// partitioner only ever constructs lines this way, so no ordering is
// enforced here.
type Line struct {
	A, B Point32
}

// NewLine creates a Line from a to b.
func NewLine(a, b Point32) Line {
	return Line{A: a, B: b}
}

// SolveTForX returns the parameter t such that Sample(t).X == x, assuming x
// lies on the line's span. Near-vertical lines (where A.X and B.X are
// indistinguishable within epsilon) return t=0 rather than dividing by a
// near-zero denominator.
func (l Line) SolveTForX(x, epsilon float32) float32 {
	dx := l.B.X - l.A.X
	if numeric.FloatEquals(dx, 0, epsilon) {
		return 0
	}
	return (x - l.A.X) / dx
}

// Sample returns the point at parameter t along the line, t=0 at A and t=1
// at B.
func (l Line) Sample(t float32) Point32 {
	return lerpPoint(l.A, l.B, t)
}

// SubdivideAtX splits the line at the point where it crosses x, returning
// the left half (A to the crossing) and the right half (the crossing to B).
func (l Line) SubdivideAtX(x, epsilon float32) (left, right Line) {
	t := l.SolveTForX(x, epsilon)
	mid := l.Sample(t)
	return Line{A: l.A, B: mid}, Line{A: mid, B: l.B}
}

// IntersectWithLine returns the intersection point of l and other, if any.
// Parallel lines, and lines whose infinite-line intersection falls outside
// either segment's span, report ok=false.
func (l Line) IntersectWithLine(other Line) (point Point32, ok bool) {
	d1 := l.B.Sub(l.A)
	d2 := other.B.Sub(other.A)

	denom := d1.CrossProduct(d2)
	if denom == 0 {
		return Point32{}, false
	}

	diff := other.A.Sub(l.A)
	t := diff.CrossProduct(d2) / denom
	u := diff.CrossProduct(d1) / denom

	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Point32{}, false
	}
	return l.Sample(t), true
}

// Baseline returns l itself — a Line is its own chord. This mirrors
// [Curve.Baseline] so a line and a curve answer the same chord question
// (see Edge.Baseline in the sweep package).
func (l Line) Baseline() Line {
	return l
}

// Side returns the signed perpendicular distance (scaled by the chord
// length, not normalized) from the line A->B to point p: positive when p is
// to the left of the directed line, negative to the right, zero when
// collinear.
func (l Line) Side(p Point32) float32 {
	return l.B.Sub(l.A).CrossProduct(p.Sub(l.A))
}
