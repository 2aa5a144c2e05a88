package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vecmesh/partitioner/geom"
)

func TestLibrary_PushVertex(t *testing.T) {
	lib := NewLibrary()
	i0 := lib.PushVertex(geom.NewPoint32(0, 0), 1, LoopBlinnData{Kind: Endpoint0})
	i1 := lib.PushVertex(geom.NewPoint32(1, 1), 1, LoopBlinnData{Kind: Endpoint1})
	assert.Equal(t, uint32(0), i0)
	assert.Equal(t, uint32(1), i1)
	assert.Equal(t, 2, lib.Len())
	assert.Equal(t, geom.NewPoint32(1, 1), lib.Position(i1))
	assert.Equal(t, uint16(1), lib.PathID(i0))
}

func TestLibrary_SetLoopBlinn(t *testing.T) {
	lib := NewLibrary()
	i := lib.PushVertex(geom.NewPoint32(0, 0), 0, LoopBlinnData{Kind: Endpoint0})
	lib.SetLoopBlinn(i, LoopBlinnData{Kind: Endpoint1})
	assert.Equal(t, Endpoint1, lib.LoopBlinn(i).Kind)
}

func TestLibrary_SnapshotLengthsAndRanges(t *testing.T) {
	lib := NewLibrary()
	start := lib.SnapshotLengths()
	lib.PushVertex(geom.NewPoint32(0, 0), 0, LoopBlinnData{})
	lib.PushVertex(geom.NewPoint32(1, 0), 0, LoopBlinnData{})
	lib.PushInteriorTriangle(0, 1, 0)
	lib.AddBQuad(BQuad{UL: 0, UR: 1, LL: 0, LR: 1})
	end := lib.SnapshotLengths()

	ranges := RangesBetween(start, end)
	assert.Equal(t, IndexRange{Start: 0, End: 2}, ranges.BVertexPositions)
	assert.Equal(t, IndexRange{Start: 0, End: 3}, ranges.CoverInteriorIndices)
	assert.Equal(t, IndexRange{Start: 0, End: 1}, ranges.BQuads)
}

func TestLibrary_RecordPathAndPaths(t *testing.T) {
	lib := NewLibrary()
	lib.RecordPath(5, IndexRanges{BVertexPositions: IndexRange{0, 3}})
	lib.RecordPath(1, IndexRanges{BVertexPositions: IndexRange{3, 6}})
	lib.RecordPath(9, IndexRanges{BVertexPositions: IndexRange{6, 9}})

	assert.Equal(t, []uint16{1, 5, 9}, lib.Paths())

	r, ok := lib.RangesForPath(5)
	require.True(t, ok)
	assert.Equal(t, IndexRange{0, 3}, r.BVertexPositions)

	_, ok = lib.RangesForPath(42)
	assert.False(t, ok)
}

func TestMerge(t *testing.T) {
	a := NewLibrary()
	a.PushVertex(geom.NewPoint32(0, 0), 1, LoopBlinnData{})
	a.PushVertex(geom.NewPoint32(1, 0), 1, LoopBlinnData{})
	a.PushInteriorTriangle(0, 1, 0)
	a.AddBQuad(BQuad{UL: 0, UR: 1, LL: 0, LR: 1})
	a.RecordPath(1, RangesBetween(MeshLengths{}, a.SnapshotLengths()))

	b := NewLibrary()
	b.PushVertex(geom.NewPoint32(5, 5), 2, LoopBlinnData{})
	b.PushInteriorTriangle(0, 0, 0)
	b.AddBQuad(BQuad{UL: 0, UR: 0, LL: 0, LR: 0})
	b.RecordPath(2, RangesBetween(MeshLengths{}, b.SnapshotLengths()))

	dst := NewLibrary()
	ranges := Merge(dst, a, b)

	require.Len(t, ranges, 2)
	assert.Equal(t, 3, dst.Len())
	assert.Equal(t, geom.NewPoint32(5, 5), dst.Position(2))

	bInterior := dst.InteriorIndices()[3:]
	assert.Equal(t, []uint32{2, 2, 2}, bInterior)

	bQuads := dst.BQuads()
	assert.Equal(t, uint32(2), bQuads[1].UL)

	r1, ok := dst.RangesForPath(1)
	require.True(t, ok)
	assert.Equal(t, IndexRange{0, 2}, r1.BVertexPositions)

	r2, ok := dst.RangesForPath(2)
	require.True(t, ok)
	assert.Equal(t, IndexRange{2, 3}, r2.BVertexPositions)
}
