// Package mesh implements the append-only vertex and index buffers the
// partitioner emits into: parallel vertex arrays (positions, path ids,
// Loop-Blinn classification data), two triangle index buffers, and the
// B-quad records that tie them together.
//
// # Overview
//
// Every cross-reference in this package is an integer index into one of the
// parallel arrays, never a pointer — the same "reference by index" discipline
// the teacher's sweep status structure uses for its segments, chosen here for
// the same reason: the arrays only ever grow, so an index recorded now is
// still valid no matter how much gets appended later.
package mesh

import "github.com/vecmesh/partitioner/geom"

// LoopBlinnKind classifies a B-vertex for the Loop-Blinn fragment shader.
type LoopBlinnKind uint8

const (
	// Endpoint0 and Endpoint1 alternate along an active edge's cut history,
	// toggled by its parity bit each time the edge is advanced or subdivided.
	Endpoint0 LoopBlinnKind = iota
	Endpoint1
	// ConcaveControlPoint marks a control-point vertex whose curve bulges
	// out of the filled region.
	ConcaveControlPoint
	// ConvexControlPoint marks a control-point vertex whose curve bulges
	// into the filled region.
	ConvexControlPoint
)

// LoopBlinnData is the per-vertex classification data a pixel shader uses to
// decide inside/outside of a quadratic curve without tessellating it.
type LoopBlinnData struct {
	UV   geom.Point32
	Sign int8
	Kind LoopBlinnKind
}

// BQuad is a quadrilateral primitive bounded above and below by a line or
// quadratic curve, recorded as six vertex indices. UL/UC/UR name the upper
// bound's left terminus, control point (SENTINEL if flat), and right
// terminus; LL/LC/LR name the lower bound's equivalents.
type BQuad struct {
	UL, UC, UR uint32
	LL, LC, LR uint32
}

// MeshLengths is a snapshot of every array length in a [Library], taken
// before and after a partition call so the caller can recover the half-open
// index ranges belonging to just that call.
type MeshLengths struct {
	Vertices        uint32
	InteriorIndices uint32
	CurveIndices    uint32
	BQuads          uint32
}

// IndexRange is a half-open [Start, End) range into one of a [Library]'s
// arrays.
type IndexRange struct {
	Start, End uint32
}

// IndexRanges describes the slab of a [Library] that a single partition call
// contributed, as half-open ranges into each array.
type IndexRanges struct {
	BVertexPositions    IndexRange
	CoverInteriorIndices IndexRange
	CoverCurveIndices    IndexRange
	BQuads               IndexRange
}

// Library is the append-only mesh buffer set a partition call writes into.
// All three vertex arrays are kept the same length at every call boundary.
// Create one with [NewLibrary]: the zero value has no path registry, so
// RecordPath, RangesForPath and Paths panic on it.
type Library struct {
	bVertexPositions     []geom.Point32
	bVertexPathIDs       []uint16
	bVertexLoopBlinnData []LoopBlinnData

	interiorIndices []uint32
	curveIndices    []uint32

	bQuads []BQuad

	paths *pathRegistry
}

// NewLibrary returns an empty, ready-to-use mesh Library.
func NewLibrary() *Library {
	return &Library{paths: newPathRegistry()}
}

// Len returns the current vertex count, equal to the length of every vertex
// array by invariant.
func (lib *Library) Len() int {
	return len(lib.bVertexPositions)
}

// SnapshotLengths captures the current length of every array in lib, for use
// as the start or end marker of a partition call's [IndexRanges].
func (lib *Library) SnapshotLengths() MeshLengths {
	return MeshLengths{
		Vertices:        uint32(len(lib.bVertexPositions)),
		InteriorIndices: uint32(len(lib.interiorIndices)),
		CurveIndices:    uint32(len(lib.curveIndices)),
		BQuads:          uint32(len(lib.bQuads)),
	}
}

// RangesBetween turns a before/after pair of [MeshLengths] into the
// [IndexRanges] the caller should treat as belonging to the call between
// them.
func RangesBetween(start, end MeshLengths) IndexRanges {
	return IndexRanges{
		BVertexPositions:     IndexRange{Start: start.Vertices, End: end.Vertices},
		CoverInteriorIndices: IndexRange{Start: start.InteriorIndices, End: end.InteriorIndices},
		CoverCurveIndices:    IndexRange{Start: start.CurveIndices, End: end.CurveIndices},
		BQuads:               IndexRange{Start: start.BQuads, End: end.BQuads},
	}
}

// PushVertex appends a new vertex to all three parallel arrays and returns
// its index.
func (lib *Library) PushVertex(position geom.Point32, pathID uint16, lbd LoopBlinnData) uint32 {
	idx := uint32(len(lib.bVertexPositions))
	lib.bVertexPositions = append(lib.bVertexPositions, position)
	lib.bVertexPathIDs = append(lib.bVertexPathIDs, pathID)
	lib.bVertexLoopBlinnData = append(lib.bVertexLoopBlinnData, lbd)
	return idx
}

// Position returns the position of vertex i.
func (lib *Library) Position(i uint32) geom.Point32 {
	return lib.bVertexPositions[i]
}

// PathID returns the path id of vertex i.
func (lib *Library) PathID(i uint32) uint16 {
	return lib.bVertexPathIDs[i]
}

// LoopBlinn returns the Loop-Blinn data of vertex i.
func (lib *Library) LoopBlinn(i uint32) LoopBlinnData {
	return lib.bVertexLoopBlinnData[i]
}

// SetLoopBlinn overwrites the Loop-Blinn data of an already-pushed vertex i,
// used when the emitter decides a vertex's Endpoint0/Endpoint1 kind only
// after it has been appended.
func (lib *Library) SetLoopBlinn(i uint32, lbd LoopBlinnData) {
	lib.bVertexLoopBlinnData[i] = lbd
}

// PushInteriorTriangle appends one interior triangle's three vertex indices.
func (lib *Library) PushInteriorTriangle(a, b, c uint32) {
	lib.interiorIndices = append(lib.interiorIndices, a, b, c)
}

// PushCurveTriangle appends one curve triangle's three vertex indices.
func (lib *Library) PushCurveTriangle(a, b, c uint32) {
	lib.curveIndices = append(lib.curveIndices, a, b, c)
}

// AddBQuad appends bq to the B-quad buffer. The emitter is responsible for
// having already pushed bq's triangles via PushInteriorTriangle /
// PushCurveTriangle; the library itself only records the B-quad, it does
// not infer triangle patterns.
func (lib *Library) AddBQuad(bq BQuad) {
	lib.bQuads = append(lib.bQuads, bq)
}

// InteriorIndices returns the full interior-triangle index buffer.
func (lib *Library) InteriorIndices() []uint32 {
	return lib.interiorIndices
}

// CurveIndices returns the full curve-triangle index buffer.
func (lib *Library) CurveIndices() []uint32 {
	return lib.curveIndices
}

// BQuads returns the full B-quad record buffer.
func (lib *Library) BQuads() []BQuad {
	return lib.bQuads
}

// RecordPath registers the index ranges belonging to pathID, keyed for
// sorted lookup via the btree-backed path registry.
func (lib *Library) RecordPath(pathID uint16, ranges IndexRanges) {
	lib.paths.put(pathID, ranges)
}

// RangesForPath returns the index ranges previously recorded for pathID.
func (lib *Library) RangesForPath(pathID uint16) (IndexRanges, bool) {
	return lib.paths.get(pathID)
}

// Paths returns every recorded path id in ascending order.
func (lib *Library) Paths() []uint16 {
	return lib.paths.ids()
}
