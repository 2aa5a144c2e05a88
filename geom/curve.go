package geom

import (
	"math"

	"github.com/vecmesh/partitioner/numeric"
)

// Curve is a quadratic Bézier edge from A through control point C to B.
type Curve struct {
	A, C, B Point32
}

// NewCurve creates a Curve with the given endpoints and control point.
func NewCurve(a, c, b Point32) Curve {
	return Curve{A: a, C: c, B: b}
}

// Sample evaluates the curve at parameter t in [0,1]:
//
//	(1-t)² A + 2(1-t)t C + t² B
func (c Curve) Sample(t float32) Point32 {
	mt := 1 - t
	x := mt*mt*c.A.X + 2*mt*t*c.C.X + t*t*c.B.X
	y := mt*mt*c.A.Y + 2*mt*t*c.C.Y + t*t*c.B.Y
	return Point32{X: x, Y: y}
}

// SolveTForX returns the parameter t at which Sample(t).X == x.
//
// Expanding Sample(t).X as a quadratic in t gives
// at² + bt + c₀ = x, with a = A.X - 2C.X + B.X, b = 2(C.X - A.X),
// c₀ = A.X. When a is within epsilon of zero the curve's x-component is
// (numerically) linear in t and the equation is solved as bt = x - c₀
// instead of falling back to the quadratic formula, which would divide by a
// near-zero leading coefficient.
func (c Curve) SolveTForX(x, epsilon float32) float32 {
	a := c.A.X - 2*c.C.X + c.B.X
	b := 2 * (c.C.X - c.A.X)
	c0 := c.A.X - x

	if numeric.FloatEquals(a, 0, epsilon) {
		if numeric.FloatEquals(b, 0, epsilon) {
			return 0
		}
		return clamp01(-c0 / b)
	}

	disc := b*b - 4*a*c0
	if disc < 0 {
		disc = 0
	}
	sq := float32(math.Sqrt(float64(disc)))
	t0 := (-b + sq) / (2 * a)
	t1 := (-b - sq) / (2 * a)
	return clamp01(pickRootInRange(t0, t1))
}

// pickRootInRange prefers whichever root lies within [0,1]; if both do, the
// one nearer the middle of the range is preferred as the more numerically
// stable choice. If neither root lies in range (can happen with a
// near-degenerate curve), the root closest to the range is returned so the
// caller's subsequent clamp produces a sane endpoint rather than garbage.
func pickRootInRange(t0, t1 float32) float32 {
	in0, in1 := t0 >= 0 && t0 <= 1, t1 >= 0 && t1 <= 1
	switch {
	case in0 && !in1:
		return t0
	case in1 && !in0:
		return t1
	case in0 && in1:
		if absf(t0-0.5) <= absf(t1-0.5) {
			return t0
		}
		return t1
	default:
		if distanceToRange01(t0) <= distanceToRange01(t1) {
			return t0
		}
		return t1
	}
}

func distanceToRange01(t float32) float32 {
	switch {
	case t < 0:
		return -t
	case t > 1:
		return t - 1
	default:
		return 0
	}
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func clamp01(t float32) float32 {
	switch {
	case t < 0:
		return 0
	case t > 1:
		return 1
	default:
		return t
	}
}

// Subdivide splits the curve at parameter t via de Casteljau's algorithm,
// returning the left half (A to the split point) and the right half (the
// split point to B). Both halves are themselves valid quadratic Béziers.
func (c Curve) Subdivide(t float32) (left, right Curve) {
	ac := lerpPoint(c.A, c.C, t)
	cb := lerpPoint(c.C, c.B, t)
	mid := lerpPoint(ac, cb, t)
	return Curve{A: c.A, C: ac, B: mid}, Curve{A: mid, C: cb, B: c.B}
}

// SubdivideAtX splits the curve at the point where it crosses x.
func (c Curve) SubdivideAtX(x, epsilon float32) (left, right Curve) {
	return c.Subdivide(c.SolveTForX(x, epsilon))
}

// Baseline returns the chord from A to B, ignoring the control point. Used
// to test which side of a straight-line approximation the curve's bulge (or
// another edge) falls on.
func (c Curve) Baseline() Line {
	return Line{A: c.A, B: c.B}
}

// Side returns the signed perpendicular distance (scaled by chord length)
// from the curve's baseline A->B to point p, with the same sign convention
// as [Line.Side].
func (c Curve) Side(p Point32) float32 {
	return c.Baseline().Side(p)
}

// IntersectWithLine returns the point where c crosses l, if any, found by
// solving for the parameter t at which c.Sample(t) lies exactly on l's
// infinite extension (Side == 0), a quadratic equation in t. The first root
// in [0,1] whose corresponding point also lies within l's own span is
// returned.
func (c Curve) IntersectWithLine(l Line, epsilon float32) (point Point32, ok bool) {
	dir := l.B.Sub(l.A)

	// Side(p) = dir × (p - l.A), expand p = Sample(t) as a quadratic in t:
	// Side(t) = a t² + b t + c0.
	a := dir.CrossProduct(c.A.Sub(c.C.Scale(2)).Add(c.B))
	b := dir.CrossProduct(c.C.Sub(c.A).Scale(2))
	c0 := dir.CrossProduct(c.A.Sub(l.A))

	roots, n := solveQuadratic(a, b, c0, epsilon)
	for i := 0; i < n; i++ {
		t := roots[i]
		if t < -epsilon || t > 1+epsilon {
			continue
		}
		t = clamp01(t)
		p := c.Sample(t)
		if pointWithinLineSpan(l, p, epsilon) {
			return p, true
		}
	}
	return Point32{}, false
}

// IntersectWithCurve returns the first intersection (by increasing x)
// between c and other within both curves' x-monotonic spans, found by
// bisecting on the difference between the two curves' y values at a shared
// x. This assumes both curves are x-monotonic over the span searched, which
// holds for every curve the sweep considers: active edges are always
// subdivided at event x-coordinates before being compared (§4.8), so each
// segment spans a single x interval without doubling back.
func (c Curve) IntersectWithCurve(other Curve, epsilon float32) (point Point32, ok bool) {
	loX, hiX := overlapRange(c, other)
	if loX > hiX {
		return Point32{}, false
	}

	f := func(x float32) float32 {
		return c.Sample(c.SolveTForX(x, epsilon)).Y - other.Sample(other.SolveTForX(x, epsilon)).Y
	}

	flo, fhi := f(loX), f(hiX)
	if flo == 0 {
		return c.Sample(c.SolveTForX(loX, epsilon)), true
	}
	// Pull hiX back to the first of 16 steps whose sign differs from flo:
	// two crossings inside the overlap leave both of its ends with one sign.
	for s := 1; s < 16; s++ {
		if x := loX + (hiX-loX)*float32(s)/16; !sameSign(flo, f(x)) {
			hiX, fhi = x, f(x)
			break
		}
	}
	if fhi == 0 {
		return c.Sample(c.SolveTForX(hiX, epsilon)), true
	}
	if sameSign(flo, fhi) {
		return Point32{}, false
	}

	lo, hi := loX, hiX
	flo = f(lo)
	const maxIterations = 40
	for i := 0; i < maxIterations; i++ {
		mid := lo + (hi-lo)/2
		fm := f(mid)
		if absf(fm) <= epsilon || hi-lo <= epsilon {
			return c.Sample(c.SolveTForX(mid, epsilon)), true
		}
		if sameSign(fm, flo) {
			lo, flo = mid, fm
		} else {
			hi = mid
		}
	}
	mid := lo + (hi-lo)/2
	return c.Sample(c.SolveTForX(mid, epsilon)), true
}

func sameSign(a, b float32) bool {
	return (a > 0 && b > 0) || (a < 0 && b < 0)
}

func overlapRange(c, other Curve) (lo, hi float32) {
	c0, c1 := minMaxX(c.A.X, c.B.X)
	o0, o1 := minMaxX(other.A.X, other.B.X)
	lo = max32(c0, o0)
	hi = min32(c1, o1)
	return lo, hi
}

func minMaxX(a, b float32) (lo, hi float32) {
	if a <= b {
		return a, b
	}
	return b, a
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func pointWithinLineSpan(l Line, p Point32, epsilon float32) bool {
	lo, hi := minMaxX(l.A.X, l.B.X)
	if p.X < lo-epsilon || p.X > hi+epsilon {
		return false
	}
	lo, hi = minMaxX(l.A.Y, l.B.Y)
	return p.Y >= lo-epsilon && p.Y <= hi+epsilon
}

// solveQuadratic solves a t² + b t + c0 = 0, returning its real roots. A
// near-zero leading coefficient is treated as a linear equation.
func solveQuadratic(a, b, c0, epsilon float32) (roots [2]float32, n int) {
	if numeric.FloatEquals(a, 0, epsilon) {
		if numeric.FloatEquals(b, 0, epsilon) {
			return roots, 0
		}
		roots[0] = -c0 / b
		return roots, 1
	}
	disc := b*b - 4*a*c0
	if disc < 0 {
		return roots, 0
	}
	sq := float32(math.Sqrt(float64(disc)))
	roots[0] = (-b + sq) / (2 * a)
	roots[1] = (-b - sq) / (2 * a)
	return roots, 2
}
