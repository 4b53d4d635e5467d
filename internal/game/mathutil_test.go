package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandDeterministic(t *testing.T) {
	a := NewRand(123)
	b := NewRand(123)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.NextU64(), b.NextU64())
	}
}

func TestRandIntnBounds(t *testing.T) {
	r := NewRand(9)
	for i := 0; i < 1000; i++ {
		v := r.Intn(7)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 7)
	}
}

func TestRandRangeF(t *testing.T) {
	r := NewRand(5)
	for i := 0; i < 1000; i++ {
		v := r.RangeF(-2.5, 4.5)
		assert.GreaterOrEqual(t, v, -2.5)
		assert.Less(t, v, 4.5)
	}
}

func TestHash2DDistinct(t *testing.T) {
	seen := map[uint64]bool{}
	for x := 0; x < 16; x++ {
		for z := 0; z < 16; z++ {
			h := hash2D(1, x, z)
			assert.False(t, seen[h], "collision at (%d,%d)", x, z)
			seen[h] = true
		}
	}
	assert.NotEqual(t, hash2D(1, 3, 4), hash2D(2, 3, 4), "seed must matter")
}

func TestClampAndLerp(t *testing.T) {
	assert.Equal(t, 5.0, clampF(10, 0, 5))
	assert.Equal(t, 0.0, clampF(-10, 0, 5))
	assert.Equal(t, 3.0, clampF(3, 0, 5))

	assert.Equal(t, 7.5, lerpF(5, 10, 0.5))
	assert.Equal(t, 5.0, lerpF(5, 10, 0))
}

func TestApproach(t *testing.T) {
	assert.Equal(t, 1.0, approach(0, 5, 1))
	assert.Equal(t, 5.0, approach(4.5, 5, 1), "never overshoots")
	assert.Equal(t, 4.0, approach(5, 0, 1))
}

func TestAngDiffWraps(t *testing.T) {
	assert.InDelta(t, 0.2, angDiff(-0.1, 0.1), 1e-9)
	// The short way around, never the long way.
	d := angDiff(math.Pi-0.1, -math.Pi+0.1)
	assert.InDelta(t, 0.2, d, 1e-9)
}
