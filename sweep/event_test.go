package sweep

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vecmesh/partitioner/geom"
)

func TestEventPoint_Less(t *testing.T) {
	tests := map[string]struct {
		p, q     EventPoint
		expected bool
	}{
		"lower x first": {
			p: EventPoint{Position: geom.NewPoint32(0, 5), EndpointIndex: 0},
			q: EventPoint{Position: geom.NewPoint32(1, 0), EndpointIndex: 0},
			expected: true,
		},
		"equal x, lower y first": {
			p: EventPoint{Position: geom.NewPoint32(1, 0), EndpointIndex: 0},
			q: EventPoint{Position: geom.NewPoint32(1, 5), EndpointIndex: 0},
			expected: true,
		},
		"equal position, lower endpoint index first": {
			p: EventPoint{Position: geom.NewPoint32(1, 1), EndpointIndex: 0},
			q: EventPoint{Position: geom.NewPoint32(1, 1), EndpointIndex: 1},
			expected: true,
		},
		"equal everything": {
			p: EventPoint{Position: geom.NewPoint32(1, 1), EndpointIndex: 0},
			q: EventPoint{Position: geom.NewPoint32(1, 1), EndpointIndex: 0},
			expected: false,
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.p.Less(tc.q))
		})
	}
}

func TestCompare(t *testing.T) {
	a := EventPoint{Position: geom.NewPoint32(0, 0), EndpointIndex: 0}
	b := EventPoint{Position: geom.NewPoint32(1, 0), EndpointIndex: 1}
	assert.Equal(t, -1, Compare(a, b))
	assert.Equal(t, 1, Compare(b, a))
	assert.Equal(t, 0, Compare(a, a))
}
