package sweep

import "github.com/vecmesh/partitioner/geom"

// Sentinel marks "no control point" on an [ActiveEdge] and is reused by the
// root package for "no control point index" on an input endpoint (§6).
const Sentinel = ^uint32(0)

// ActiveEdge is an edge currently crossed by the sweep line.
type ActiveEdge struct {
	// LeftVertexIndex indexes the mesh's vertex positions: the already
	// emitted left terminus of this edge on the sweep line.
	LeftVertexIndex uint32
	// ControlPointVertexIndex is Sentinel for a straight edge, otherwise the
	// index of the emitted control-point vertex.
	ControlPointVertexIndex uint32
	// RightEndpointIndex is the input endpoint this edge currently extends
	// toward.
	RightEndpointIndex uint32
	// LeftToRight is true if the path winds in the direction of increasing x
	// along this edge (winding contribution +1, else -1).
	LeftToRight bool
	// Parity toggles each time the edge is cut, and determines whether the
	// next emitted vertex on this edge is classified Endpoint0 or Endpoint1.
	Parity bool
	// Forward records which cyclic direction this edge walks its subpath's
	// endpoint chain in: true via increasing endpoint index (next), false via
	// decreasing (prev). Fixed for the edge's whole lifetime by the Min event
	// that created it, so Regular events know which neighbor to advance to.
	Forward bool
}

// HasControlPoint reports whether the edge is currently curved.
func (ae ActiveEdge) HasControlPoint() bool {
	return ae.ControlPointVertexIndex != Sentinel
}

// Geometry resolves mesh vertex indices and input endpoint positions for the
// active edge list. The root package implements this by combining its
// mesh.Library (for vertex indices) with the borrowed endpoint slice (for
// endpoint indices) — sweep depends on neither directly, so this is the seam
// between the two.
type Geometry interface {
	VertexPosition(index uint32) geom.Point32
	EndpointPosition(index uint32) geom.Point32
}

// List is the ordered, vertical stack of active edges crossing the sweep
// line at the current x.
type List struct {
	edges []ActiveEdge
}

// NewList returns an empty active edge list.
func NewList() *List {
	return &List{}
}

// Len returns the number of active edges.
func (l *List) Len() int {
	return len(l.edges)
}

// Get returns the active edge at position i.
func (l *List) Get(i int) ActiveEdge {
	return l.edges[i]
}

// Set overwrites the active edge at position i.
func (l *List) Set(i int, ae ActiveEdge) {
	l.edges[i] = ae
}

// InsertAt inserts edges at position i, shifting everything at or after i
// to the right. Used by the Min handler to create the two new active edges
// born at a Min event.
func (l *List) InsertAt(i int, edges ...ActiveEdge) {
	tail := append([]ActiveEdge{}, l.edges[i:]...)
	l.edges = append(l.edges[:i], append(edges, tail...)...)
}

// RemoveIndices removes the active edges at one and two, highest index
// first, to preserve the meaning of the remaining index — exactly as the
// Max handler requires (§4.5).
func (l *List) RemoveIndices(one, two int) {
	if one < two {
		one, two = two, one
	}
	l.edges = append(l.edges[:one], l.edges[one+1:]...)
	l.edges = append(l.edges[:two], l.edges[two+1:]...)
}

// Edge builds the geometric [Edge] (line or curve) currently represented by
// active edge i, resolving its left vertex, optional control point, and
// right endpoint through geo.
func (l *List) Edge(i int, geo Geometry) Edge {
	ae := l.edges[i]
	left := geo.VertexPosition(ae.LeftVertexIndex)
	right := geo.EndpointPosition(ae.RightEndpointIndex)
	if !ae.HasControlPoint() {
		return NewLineEdge(geom.NewLine(left, right))
	}
	ctrl := geo.VertexPosition(ae.ControlPointVertexIndex)
	return NewCurveEdge(geom.NewCurve(left, ctrl, right))
}

// YAtX returns active edge i's y value at x.
func (l *List) YAtX(i int, x, epsilon float32, geo Geometry) float32 {
	return l.Edge(i, geo).YAtX(x, epsilon)
}

// LeftToRightFlags returns the top-to-bottom winding-direction flags for
// every active edge, in the form [fillrule.BoundingActiveEdges] expects.
func (l *List) LeftToRightFlags() []bool {
	flags := make([]bool, len(l.edges))
	for i, ae := range l.edges {
		flags[i] = ae.LeftToRight
	}
	return flags
}

// Stabilize runs a bubble-sort pass (repeated until a full pass produces no
// swaps) ordering the active edge list by y at x. Before any swap, the
// neighbors' crossing point is computed via [CrossingPoint] — unless they
// share a left vertex or a right endpoint, in which case no crossing check
// is made at all: two edges born from the same Min event (or converging on
// the same Max event) always satisfy the geometric intersection solve
// trivially at their shared point, which is not a real self-intersection
// (§4.8). If a genuine crossing is found at or before x, onCrossing is
// invoked with the two edges' positions and the crossing point so the
// caller can flush B-quads up to the crossing before the swap proceeds
// (§4.5 step 3). This is a bubble sort deliberately, not a general sort: a
// general sort would have nowhere natural to hang the pairwise crossing
// check each swap needs.
func (l *List) Stabilize(x, epsilon float32, geo Geometry, onCrossing func(i, j int, crossing geom.Point32)) {
	for {
		swapped := false
		for i := 0; i+1 < len(l.edges); i++ {
			yi := l.YAtX(i, x, epsilon, geo)
			yj := l.YAtX(i+1, x, epsilon, geo)
			if yi <= yj {
				continue
			}
			if !l.shareEndpoint(i, i+1) {
				if crossing, ok := CrossingPoint(l.Edge(i, geo), l.Edge(i+1, geo), x, epsilon); ok {
					if crossing.X <= x+epsilon {
						onCrossing(i, i+1, crossing)
					}
				}
			}
			l.edges[i], l.edges[i+1] = l.edges[i+1], l.edges[i]
			swapped = true
		}
		if !swapped {
			return
		}
	}
}

// shareEndpoint reports whether active edges i and j share a left vertex or
// a right endpoint, the no-crossing guard from §4.8.
func (l *List) shareEndpoint(i, j int) bool {
	a, b := l.edges[i], l.edges[j]
	return a.LeftVertexIndex == b.LeftVertexIndex || a.RightEndpointIndex == b.RightEndpointIndex
}
