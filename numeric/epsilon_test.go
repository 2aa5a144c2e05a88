package numeric

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestFloatEquals(t *testing.T) {
	var a float32 = 2.7594937
	var b float32 = 2.7594938
	o := FloatEquals(a, b, 1e-5)
	assert.True(t, o)
}

func TestSnapToEpsilon(t *testing.T) {
	tests := map[string]struct {
		value    float32
		epsilon  float32
		expected float32
	}{
		"close to whole number":   {value: -0.999999, epsilon: 1e-5, expected: -1.0},
		"far from whole number":   {value: 1.001, epsilon: 1e-5, expected: 1.001},
		"exactly at whole number": {value: 2.0, epsilon: 1e-5, expected: 2.0},
		"just within epsilon":     {value: 1.999, epsilon: 1e-2, expected: 2.0},
		"just outside epsilon":    {value: 1.999, epsilon: 1e-5, expected: 1.999},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, SnapToEpsilon(tc.value, tc.epsilon))
		})
	}
}
