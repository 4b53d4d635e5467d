package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func squarePath() []PathPoint {
	return []PathPoint{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
}

func TestWalkerAdvanceAndLerp(t *testing.T) {
	w := Walker{Path: squarePath(), Speed: 1} // one segment per second

	w.Advance(0.5)
	x, z := w.Pos()
	assert.InDelta(t, 5.0, x, 1e-9)
	assert.InDelta(t, 0.0, z, 1e-9)
	assert.Equal(t, 0, w.Index)

	// Crossing a segment boundary resets progress and bumps the index.
	w.Advance(0.75)
	assert.Equal(t, 1, w.Index)
	assert.InDelta(t, 0.25, w.Progress, 1e-9)
	x, z = w.Pos()
	assert.InDelta(t, 10.0, x, 1e-9)
	assert.InDelta(t, 2.5, z, 1e-9)
}

func TestWalkerLoopCloses(t *testing.T) {
	w := Walker{Path: squarePath(), Speed: 1}

	// Walk exactly one full loop in small steps; position returns to start.
	for i := 0; i < 400; i++ {
		w.Advance(0.01)
	}
	x, z := w.Pos()
	assert.InDelta(t, 0.0, x, 1e-6)
	assert.InDelta(t, 0.0, z, 1e-6)
	assert.Equal(t, 0, w.Index)
}

func TestWalkerLargeStepWrapsMultipleSegments(t *testing.T) {
	w := Walker{Path: squarePath(), Speed: 1}
	w.Advance(2.5)
	assert.Equal(t, 2, w.Index)
	assert.InDelta(t, 0.5, w.Progress, 1e-9)
}

func TestWalkerHeadingFollowsTravel(t *testing.T) {
	w := Walker{Path: squarePath(), Speed: 1}

	w.Advance(0.1) // heading along +X
	assert.InDelta(t, math.Atan2(10, 0), w.Heading, 1e-9)

	w.Advance(1.0) // now on segment 1, along +Z
	assert.InDelta(t, math.Atan2(0, 10), w.Heading, 1e-9)
}

func TestWalkerDegeneratePath(t *testing.T) {
	w := Walker{Path: []PathPoint{{3, 4}}, Speed: 1}
	w.Advance(1)
	x, z := w.Pos()
	assert.Equal(t, 3.0, x)
	assert.Equal(t, 4.0, z)
	assert.Equal(t, 0.0, w.Progress)
}

func TestWalkerCullByDistance(t *testing.T) {
	w := Walker{Path: squarePath(), Speed: 1}

	assert.False(t, w.CullByDistance(0, 0))
	assert.True(t, w.CullByDistance(0, WalkerCullDist+1))
	assert.True(t, w.Hidden)
	// Culling freezes, never removes: state is intact when back in range.
	assert.False(t, w.CullByDistance(1, 1))
	assert.False(t, w.Hidden)
}
