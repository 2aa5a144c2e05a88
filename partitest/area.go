// Package partitest provides test-only helpers for checking partitioner
// output against the input path it was built from — chiefly the shoelace
// area check used to confirm a partition tiles its interior without overlap
// or gap.
package partitest

import "github.com/vecmesh/partitioner/geom"

// Area2XSigned computes twice the signed area of a simple, closed polygon
// via the shoelace formula: positive for counterclockwise point order,
// negative for clockwise, zero if degenerate. The last point is assumed to
// connect back to the first even if not repeated.
func Area2XSigned(points []geom.Point32) float32 {
	n := len(points)
	if n < 3 {
		return 0
	}
	var area float32
	for i := 0; i < n; i++ {
		p1 := points[i]
		p2 := points[(i+1)%n]
		area += p1.X*p2.Y - p2.X*p1.Y
	}
	return area
}

// TriangleArea2XSigned returns twice the signed area of the triangle a, b, c.
func TriangleArea2XSigned(a, b, c geom.Point32) float32 {
	return (b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)
}

// SummedTriangleArea2X sums the signed area of every triangle named by a
// flat a,b,c,a,b,c,... index buffer into positions, resolving indices via
// positionOf so callers can pass either a plain slice lookup or a
// mesh.Library position resolver.
func SummedTriangleArea2X(indices []uint32, positionOf func(uint32) geom.Point32) float32 {
	var total float32
	for i := 0; i+2 < len(indices); i += 3 {
		a := positionOf(indices[i])
		b := positionOf(indices[i+1])
		c := positionOf(indices[i+2])
		total += TriangleArea2XSigned(a, b, c)
	}
	return total
}
