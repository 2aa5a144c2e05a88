package sweep

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vecmesh/partitioner/geom"
)

func TestClassifier_Classify(t *testing.T) {
	// Triangle (0,0) -> (2,0) -> (1,2), closed, indices 0,1,2 in path order.
	positions := map[uint32]geom.Point32{
		0: geom.NewPoint32(0, 0),
		1: geom.NewPoint32(2, 0),
		2: geom.NewPoint32(1, 2),
	}
	c := Classifier{PositionOf: func(i uint32) geom.Point32 { return positions[i] }}

	tests := map[string]struct {
		i, prev, next uint32
		expected      Classification
	}{
		"leftmost is Min":  {i: 0, prev: 2, next: 1, expected: Min},
		"rightmost is Max": {i: 1, prev: 0, next: 2, expected: Max},
		"top is Regular":   {i: 2, prev: 1, next: 0, expected: Regular},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, c.Classify(tc.i, tc.prev, tc.next))
		})
	}
}

func TestClassification_String(t *testing.T) {
	assert.Equal(t, "Min", Min.String())
	assert.Equal(t, "Regular", Regular.String())
	assert.Equal(t, "Max", Max.String())
}
