package sweep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vecmesh/partitioner/geom"
)

func TestEventQueue_PopsInSweepOrder(t *testing.T) {
	q := NewEventQueue()
	q.Push(EventPoint{Position: geom.NewPoint32(3, 0), EndpointIndex: 2})
	q.Push(EventPoint{Position: geom.NewPoint32(1, 5), EndpointIndex: 0})
	q.Push(EventPoint{Position: geom.NewPoint32(1, 0), EndpointIndex: 1})

	var order []uint32
	for !q.Empty() {
		p, ok := q.Pop()
		require.True(t, ok)
		order = append(order, p.EndpointIndex)
	}
	assert.Equal(t, []uint32{1, 0, 2}, order)
}

func TestEventQueue_AllowsDuplicateEndpointIndex(t *testing.T) {
	q := NewEventQueue()
	dup := EventPoint{Position: geom.NewPoint32(2, 2), EndpointIndex: 7}
	q.Push(dup)
	q.Push(dup)
	assert.Equal(t, 2, q.Len())

	_, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, 1, q.Len())
}

func TestEventQueue_PeekDoesNotRemove(t *testing.T) {
	q := NewEventQueue()
	q.Push(EventPoint{Position: geom.NewPoint32(1, 1), EndpointIndex: 0})
	p, ok := q.Peek()
	require.True(t, ok)
	assert.Equal(t, uint32(0), p.EndpointIndex)
	assert.Equal(t, 1, q.Len())
}

func TestEventQueue_EmptyPop(t *testing.T) {
	q := NewEventQueue()
	_, ok := q.Pop()
	assert.False(t, ok)
}
