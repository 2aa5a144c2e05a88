package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoint32_Add(t *testing.T) {
	p := NewPoint32(1, 2)
	q := NewPoint32(3, 4)
	assert.Equal(t, NewPoint32(4, 6), p.Add(q))
}

func TestPoint32_Sub(t *testing.T) {
	p := NewPoint32(5, 5)
	q := NewPoint32(2, 1)
	assert.Equal(t, NewPoint32(3, 4), p.Sub(q))
}

func TestPoint32_Negate(t *testing.T) {
	assert.Equal(t, NewPoint32(-1, 2), NewPoint32(1, -2).Negate())
}

func TestPoint32_Scale(t *testing.T) {
	assert.Equal(t, NewPoint32(2, 4), NewPoint32(1, 2).Scale(2))
}

func TestPoint32_CrossProduct(t *testing.T) {
	tests := map[string]struct {
		p, q     Point32
		expected float32
	}{
		"counterclockwise": {p: NewPoint32(1, 0), q: NewPoint32(0, 1), expected: 1},
		"clockwise":        {p: NewPoint32(0, 1), q: NewPoint32(1, 0), expected: -1},
		"collinear":        {p: NewPoint32(1, 1), q: NewPoint32(2, 2), expected: 0},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.p.CrossProduct(tc.q))
		})
	}
}

func TestPoint32_DotProduct(t *testing.T) {
	assert.Equal(t, float32(11), NewPoint32(1, 2).DotProduct(NewPoint32(3, 4)))
}

func TestPoint32_DistanceSquaredTo(t *testing.T) {
	assert.Equal(t, float32(25), NewPoint32(0, 0).DistanceSquaredTo(NewPoint32(3, 4)))
}

func TestPoint32_Eq(t *testing.T) {
	assert.True(t, NewPoint32(1, 1).Eq(NewPoint32(1.0000001, 1), 1e-5))
	assert.False(t, NewPoint32(1, 1).Eq(NewPoint32(1.1, 1), 1e-5))
}

func TestPoint32_String(t *testing.T) {
	assert.Equal(t, "(1, 2)", NewPoint32(1, 2).String())
}
