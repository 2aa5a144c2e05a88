// Package partitioner converts a 2D vector path — closed subpaths of
// straight line segments and quadratic Bézier curves — into a mesh of
// B-quads suitable for Loop-Blinn GPU rasterization, via a plane-sweep
// algorithm.
//
// # Overview
//
// A [Partitioner] borrows the caller's endpoint, control-point, and subpath
// slices for the duration of one or more [Partitioner.Partition] calls, and
// owns a [mesh.Library] that those calls accumulate into. Ordering active
// edges and detecting self-intersections live in the [sweep] package and the
// output buffers in [mesh]; this package holds the sweep loop and the B-quad
// emitter that subdivides curve pairs until their convex hulls stop
// overlapping, the same way the teacher's root package sits next to its
// sweep line and holds the loop that actually walks it.
package partitioner

import (
	"github.com/vecmesh/partitioner/fillrule"
	"github.com/vecmesh/partitioner/geom"
	"github.com/vecmesh/partitioner/mesh"
	"github.com/vecmesh/partitioner/options"
	"github.com/vecmesh/partitioner/sweep"
)

// Sentinel marks "no control point" on an [Endpoint] or an active edge.
const Sentinel = sweep.Sentinel

// ApproxEpsilon is the default tolerance for approximate position and
// parameter comparisons throughout the sweep.
const ApproxEpsilon float32 = 1e-6

// MaxBQuadSubdivisions bounds the recursive hull-disjointness subdivision in
// the B-quad emitter. Exceeding it emits the B-quad anyway rather than
// looping forever on a numerically pathological curve pair.
const MaxBQuadSubdivisions = 8

// Endpoint is one vertex of the input path: immutable, borrowed for the
// duration of a partition call.
type Endpoint struct {
	Position geom.Point32
	// ControlPointIndex indexes ControlPoints, or is Sentinel if the edge
	// from the previous endpoint to this one is a straight line.
	ControlPointIndex uint32
	// SubpathIndex indexes the Subpaths slice this endpoint belongs to.
	SubpathIndex uint32
}

// Subpath is a half-open [First, Last) range into the endpoint slice.
// Endpoints within a subpath are cyclically linked: the endpoint before
// First is Last-1.
type Subpath struct {
	FirstEndpointIndex uint32
	LastEndpointIndex  uint32
}

// Partitioner holds one partition's borrowed input and the mesh library
// every Partition call accumulates into.
type Partitioner struct {
	endpoints     []Endpoint
	controlPoints []geom.Point32
	subpaths      []Subpath

	library  *mesh.Library
	fillRule fillrule.Rule
	epsilon  float32

	visited sweep.Visited

	// activeEdges is rebuilt at the start of every Partition call; it only
	// lives as a field (rather than a local variable threaded through every
	// handler) because the B-quad emitter methods need to read and mutate it
	// too.
	activeEdges *sweep.List
}

// New constructs a Partitioner over the given borrowed input slices.
// Endpoints, control points, and subpaths are read-only for the lifetime of
// the Partitioner; the caller must not mutate them while Partition calls are
// outstanding.
func New(endpoints []Endpoint, controlPoints []geom.Point32, subpaths []Subpath, opts ...options.Option) *Partitioner {
	cfg := options.Apply(options.Config{Epsilon: ApproxEpsilon, FillRule: fillrule.EvenOdd}, opts...)
	return &Partitioner{
		endpoints:     endpoints,
		controlPoints: controlPoints,
		subpaths:      subpaths,
		library:       mesh.NewLibrary(),
		fillRule:      cfg.FillRule,
		epsilon:       cfg.Epsilon,
		visited:       sweep.NewVisited(len(endpoints)),
	}
}

// SetFillRule changes the fill rule used by subsequent Partition calls.
func (p *Partitioner) SetFillRule(rule fillrule.Rule) {
	p.fillRule = rule
}

// AllEndpointsVisited reports whether every endpoint across every subpath
// this Partitioner was constructed with has been swept exactly once. Safe to
// call only after every relevant Partition call has returned.
func (p *Partitioner) AllEndpointsVisited() bool {
	return p.visited.AllVisited()
}

// Library returns the mesh library this Partitioner accumulates into.
func (p *Partitioner) Library() *mesh.Library {
	return p.library
}

// VertexPosition implements sweep.Geometry by resolving a mesh vertex index.
func (p *Partitioner) VertexPosition(index uint32) geom.Point32 {
	return p.library.Position(index)
}

// EndpointPosition implements sweep.Geometry by resolving an input endpoint
// index.
func (p *Partitioner) EndpointPosition(index uint32) geom.Point32 {
	return p.endpoints[index].Position
}

// prevIndex returns the cyclic predecessor of endpoint i within its subpath.
func (p *Partitioner) prevIndex(i uint32) uint32 {
	sp := p.subpaths[p.endpoints[i].SubpathIndex]
	if i == sp.FirstEndpointIndex {
		return sp.LastEndpointIndex - 1
	}
	return i - 1
}

// nextIndex returns the cyclic successor of endpoint i within its subpath.
func (p *Partitioner) nextIndex(i uint32) uint32 {
	sp := p.subpaths[p.endpoints[i].SubpathIndex]
	if i == sp.LastEndpointIndex-1 {
		return sp.FirstEndpointIndex
	}
	return i + 1
}

// controlPointPosition returns the control point position for the edge
// arriving at endpoint i, or ok=false if that edge is a straight line.
func (p *Partitioner) controlPointPosition(i uint32) (geom.Point32, bool) {
	idx := p.endpoints[i].ControlPointIndex
	if idx == Sentinel {
		return geom.Point32{}, false
	}
	return p.controlPoints[idx], true
}
