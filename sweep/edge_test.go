package sweep

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vecmesh/partitioner/geom"
)

func TestEdge_LineYAtX(t *testing.T) {
	e := NewLineEdge(geom.NewLine(geom.NewPoint32(0, 0), geom.NewPoint32(10, 10)))
	assert.InDelta(t, float32(5), e.YAtX(5, 1e-6), 1e-4)
}

func TestEdge_CurveYAtX(t *testing.T) {
	e := NewCurveEdge(geom.NewCurve(geom.NewPoint32(0, 0), geom.NewPoint32(5, 10), geom.NewPoint32(10, 0)))
	assert.InDelta(t, float32(5), e.YAtX(5, 1e-6), 1e-2)
}

func TestEdge_SubdivideAtX(t *testing.T) {
	e := NewLineEdge(geom.NewLine(geom.NewPoint32(0, 0), geom.NewPoint32(10, 10)))
	left, right := e.SubdivideAtX(4, 1e-6)
	assert.False(t, left.Curved)
	assert.InDelta(t, float32(4), left.Line.B.X, 1e-4)
	assert.InDelta(t, float32(4), right.Line.A.X, 1e-4)
}

func TestCrossingPoint_LineLine(t *testing.T) {
	a := NewLineEdge(geom.NewLine(geom.NewPoint32(0, 0), geom.NewPoint32(10, 10)))
	b := NewLineEdge(geom.NewLine(geom.NewPoint32(0, 10), geom.NewPoint32(10, 0)))
	p, ok := CrossingPoint(a, b, 10, 1e-6)
	assert.True(t, ok)
	assert.InDelta(t, float32(5), p.X, 1e-3)
	assert.InDelta(t, float32(5), p.Y, 1e-3)
}

func TestCrossingPoint_BeyondMaxX(t *testing.T) {
	a := NewLineEdge(geom.NewLine(geom.NewPoint32(0, 0), geom.NewPoint32(10, 10)))
	b := NewLineEdge(geom.NewLine(geom.NewPoint32(0, 10), geom.NewPoint32(10, 0)))
	// Truncating both edges to x<=2 moves the crossing (at x=5) out of range.
	_, ok := CrossingPoint(a, b, 2, 1e-6)
	assert.False(t, ok)
}

func TestCrossingPoint_CurveLine(t *testing.T) {
	c := NewCurveEdge(geom.NewCurve(geom.NewPoint32(0, 0), geom.NewPoint32(5, 10), geom.NewPoint32(10, 0)))
	l := NewLineEdge(geom.NewLine(geom.NewPoint32(0, 5), geom.NewPoint32(10, 5)))
	p, ok := CrossingPoint(c, l, 10, 1e-4)
	assert.True(t, ok)
	assert.InDelta(t, float32(5), p.Y, 1e-2)
}
