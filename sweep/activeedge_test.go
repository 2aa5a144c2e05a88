package sweep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vecmesh/partitioner/geom"
)

// fakeGeometry resolves vertex/endpoint indices against plain maps, standing
// in for the root package's combined mesh.Library + endpoint-slice view.
type fakeGeometry struct {
	vertices  map[uint32]geom.Point32
	endpoints map[uint32]geom.Point32
}

func (g fakeGeometry) VertexPosition(i uint32) geom.Point32 {
	return g.vertices[i]
}

func (g fakeGeometry) EndpointPosition(i uint32) geom.Point32 {
	return g.endpoints[i]
}

func TestActiveEdge_HasControlPoint(t *testing.T) {
	straight := ActiveEdge{ControlPointVertexIndex: Sentinel}
	curved := ActiveEdge{ControlPointVertexIndex: 3}
	assert.False(t, straight.HasControlPoint())
	assert.True(t, curved.HasControlPoint())
}

func TestList_InsertAndGet(t *testing.T) {
	l := NewList()
	l.InsertAt(0,
		ActiveEdge{LeftVertexIndex: 0, ControlPointVertexIndex: Sentinel, RightEndpointIndex: 1},
		ActiveEdge{LeftVertexIndex: 0, ControlPointVertexIndex: Sentinel, RightEndpointIndex: 2},
	)
	require.Equal(t, 2, l.Len())
	assert.Equal(t, uint32(1), l.Get(0).RightEndpointIndex)
	assert.Equal(t, uint32(2), l.Get(1).RightEndpointIndex)

	l.InsertAt(1, ActiveEdge{LeftVertexIndex: 0, ControlPointVertexIndex: Sentinel, RightEndpointIndex: 3})
	require.Equal(t, 3, l.Len())
	assert.Equal(t, uint32(3), l.Get(1).RightEndpointIndex)
	assert.Equal(t, uint32(2), l.Get(2).RightEndpointIndex)
}

func TestList_RemoveIndices(t *testing.T) {
	l := NewList()
	l.InsertAt(0,
		ActiveEdge{RightEndpointIndex: 0},
		ActiveEdge{RightEndpointIndex: 1},
		ActiveEdge{RightEndpointIndex: 2},
		ActiveEdge{RightEndpointIndex: 3},
	)
	l.RemoveIndices(1, 3)
	require.Equal(t, 2, l.Len())
	assert.Equal(t, uint32(0), l.Get(0).RightEndpointIndex)
	assert.Equal(t, uint32(2), l.Get(1).RightEndpointIndex)
}

func TestList_LeftToRightFlags(t *testing.T) {
	l := NewList()
	l.InsertAt(0,
		ActiveEdge{LeftToRight: true},
		ActiveEdge{LeftToRight: false},
	)
	assert.Equal(t, []bool{true, false}, l.LeftToRightFlags())
}

func TestList_Stabilize_SwapsOutOfOrderEdges(t *testing.T) {
	geo := fakeGeometry{
		vertices: map[uint32]geom.Point32{
			0: geom.NewPoint32(0, 0),
			1: geom.NewPoint32(0, 10),
		},
		endpoints: map[uint32]geom.Point32{
			10: geom.NewPoint32(10, 10),
			11: geom.NewPoint32(10, 0),
		},
	}
	l := NewList()
	// Edge 0 runs from y=0 to y=10 and edge 1 from y=10 to y=0, crossing at
	// (5,5). The list is ordered by increasing y, so after stabilizing at
	// x=10 edge 0 (now y=10) should come after edge 1 (now y=0).
	l.InsertAt(0,
		ActiveEdge{LeftVertexIndex: 0, ControlPointVertexIndex: Sentinel, RightEndpointIndex: 10},
		ActiveEdge{LeftVertexIndex: 1, ControlPointVertexIndex: Sentinel, RightEndpointIndex: 11},
	)

	var crossings int
	l.Stabilize(10, 1e-4, geo, func(i, j int, crossing geom.Point32) {
		crossings++
	})

	assert.Equal(t, 1, crossings)
	assert.Equal(t, uint32(11), l.Get(0).RightEndpointIndex)
	assert.Equal(t, uint32(10), l.Get(1).RightEndpointIndex)
}

func TestList_Stabilize_NoCrossingCallbackForSharedLeftVertex(t *testing.T) {
	geo := fakeGeometry{
		vertices: map[uint32]geom.Point32{
			0: geom.NewPoint32(0, 5),
		},
		endpoints: map[uint32]geom.Point32{
			10: geom.NewPoint32(10, 10),
			11: geom.NewPoint32(10, 0),
		},
	}
	l := NewList()
	// Both edges share LeftVertexIndex 0 (born at the same Min event) and
	// fan out to different endpoints, crossing nowhere but still starting
	// from the same point the naive geometric solve would trivially report.
	l.InsertAt(0,
		ActiveEdge{LeftVertexIndex: 0, ControlPointVertexIndex: Sentinel, RightEndpointIndex: 10},
		ActiveEdge{LeftVertexIndex: 0, ControlPointVertexIndex: Sentinel, RightEndpointIndex: 11},
	)

	l.Stabilize(10, 1e-4, geo, func(i, j int, crossing geom.Point32) {
		t.Fatalf("unexpected crossing callback for edges sharing a left vertex")
	})

	assert.Equal(t, uint32(11), l.Get(0).RightEndpointIndex)
	assert.Equal(t, uint32(10), l.Get(1).RightEndpointIndex)
}

func TestList_Stabilize_NoSwapWhenAlreadyOrdered(t *testing.T) {
	geo := fakeGeometry{
		vertices: map[uint32]geom.Point32{
			0: geom.NewPoint32(0, 0),
			1: geom.NewPoint32(0, 10),
		},
		endpoints: map[uint32]geom.Point32{
			10: geom.NewPoint32(10, 0),
			11: geom.NewPoint32(10, 10),
		},
	}
	l := NewList()
	l.InsertAt(0,
		ActiveEdge{LeftVertexIndex: 0, ControlPointVertexIndex: Sentinel, RightEndpointIndex: 10},
		ActiveEdge{LeftVertexIndex: 1, ControlPointVertexIndex: Sentinel, RightEndpointIndex: 11},
	)

	l.Stabilize(10, 1e-4, geo, func(i, j int, crossing geom.Point32) {
		t.Fatalf("unexpected crossing callback")
	})

	assert.Equal(t, uint32(10), l.Get(0).RightEndpointIndex)
	assert.Equal(t, uint32(11), l.Get(1).RightEndpointIndex)
}
