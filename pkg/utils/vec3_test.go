package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -1, 0.5)

	assert.Equal(t, NewVec3(5, 1, 3.5), a.Add(b))
	assert.Equal(t, NewVec3(-3, 3, 2.5), a.Sub(b))
	assert.Equal(t, NewVec3(2, 4, 6), a.Scale(2))
	assert.InDelta(t, 3.5, a.Dot(b), 1e-12)
}

func TestVec3Length(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec3
		expected float64
	}{
		{"零向量", Zero, 0},
		{"单位X", NewVec3(1, 0, 0), 1},
		{"3-4-0", NewVec3(3, 4, 0), 5},
		{"负分量", NewVec3(0, -3, -4), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.v.Length(), 1e-12)
		})
	}
}

func TestVec3Distance(t *testing.T) {
	assert.InDelta(t, 5.0, NewVec3(1, 1, 1).Distance(NewVec3(4, 5, 1)), 1e-12)
}

func TestVec3Normalize(t *testing.T) {
	t.Run("普通向量", func(t *testing.T) {
		n, ok := NewVec3(0, 3, 4).Normalize()
		assert.True(t, ok)
		assert.InDelta(t, 1.0, n.Length(), 1e-9)
		assert.True(t, n.ApproxEqual(NewVec3(0, 0.6, 0.8), 1e-12))
	})

	t.Run("零向量", func(t *testing.T) {
		_, ok := Zero.Normalize()
		assert.False(t, ok)
	})

	t.Run("NaN", func(t *testing.T) {
		_, ok := NewVec3(math.NaN(), 0, 1).Normalize()
		assert.False(t, ok)
	})

	t.Run("无穷", func(t *testing.T) {
		_, ok := NewVec3(math.Inf(1), 0, 1).Normalize()
		assert.False(t, ok)
	})
}

func TestVec3IsNaN(t *testing.T) {
	assert.False(t, NewVec3(1, 2, 3).IsNaN())
	assert.True(t, NewVec3(1, math.NaN(), 3).IsNaN())
}
