package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayerPitchClamp(t *testing.T) {
	p := NewPlayer()
	f := NewCollisionField()

	p.Update(0.016, MoveIntent{LookDY: -10000}, f)
	limit := PitchLimitDeg * math.Pi / 180
	assert.InDelta(t, limit, p.Pitch, 1e-9)

	p.Update(0.016, MoveIntent{LookDY: 10000}, f)
	assert.InDelta(t, -limit, p.Pitch, 1e-9)
}

func TestPlayerWalksForward(t *testing.T) {
	p := NewPlayer()
	p.Yaw = 0 // face +Z
	f := NewCollisionField()

	p.Update(0.1, MoveIntent{Forward: 1}, f)
	assert.InDelta(t, 0.0, p.X, 1e-9)
	assert.InDelta(t, WalkSpeed*0.1, p.Z, 1e-9)
}

func TestPlayerStopsAtWall(t *testing.T) {
	p := NewPlayer()
	p.Yaw = 0
	f := NewCollisionField()
	f.Add(RectXZ{X0: -10, Z0: 2, X1: 10, Z1: 4})

	for i := 0; i < 200; i++ {
		p.Update(0.016, MoveIntent{Forward: 1}, f)
	}
	assert.False(t, f.IsBlocked(p.X, p.Z, CollisionPadding),
		"resolved position must stay clear")
	assert.Less(t, p.Z, 2-CollisionPadding+1e-9)
	assert.InDelta(t, 0.0, p.X, 1e-9, "head-on block must not move sideways")
}

func TestPlayerSlidesAlongWall(t *testing.T) {
	p := NewPlayer()
	p.Yaw = 0
	f := NewCollisionField()
	f.Add(RectXZ{X0: -50, Z0: 2, X1: 50, Z1: 4})

	// Diagonal input into the wall: Z axis blocks, X axis keeps sliding.
	for i := 0; i < 100; i++ {
		p.Update(0.016, MoveIntent{Forward: 1, Strafe: 1}, f)
	}
	assert.False(t, f.IsBlocked(p.X, p.Z, CollisionPadding))
	assert.Greater(t, math.Abs(p.X), 1.0, "strafe component should survive the block")
}

func TestPlayerWorldBoundsClamp(t *testing.T) {
	p := NewPlayer()
	p.Yaw = 0
	p.Z = WorldSize/2 - WorldMargin - 1
	f := NewCollisionField()

	for i := 0; i < 100; i++ {
		p.Update(0.1, MoveIntent{Forward: 1}, f)
	}
	assert.LessOrEqual(t, p.Z, WorldSize/2-WorldMargin+1e-9)
}

func TestPlayerFrameDeltaCap(t *testing.T) {
	p := NewPlayer()
	p.Yaw = 0
	f := NewCollisionField()

	p.Update(10.0, MoveIntent{Forward: 1}, f)
	assert.InDelta(t, WalkSpeed*MaxFrameDelta, p.Z, 1e-9,
		"a stalled frame must not teleport the player")
}

func TestPlayerDiagonalNotFaster(t *testing.T) {
	f := NewCollisionField()

	straight := NewPlayer()
	straight.Yaw = 0
	straight.Update(1.0, MoveIntent{Forward: 1}, f)

	diag := NewPlayer()
	diag.Yaw = 0
	diag.Update(1.0, MoveIntent{Forward: 1, Strafe: 1}, f)

	distS := math.Hypot(straight.X, straight.Z)
	distD := math.Hypot(diag.X, diag.Z)
	assert.InDelta(t, distS, distD, 1e-9)
}

func TestPlayerHeadBob(t *testing.T) {
	p := NewPlayer()
	f := NewCollisionField()

	// Walking accumulates the bob clock.
	for i := 0; i < 30; i++ {
		p.Update(0.016, MoveIntent{Forward: 1}, f)
	}
	assert.True(t, p.Moving)
	assert.Greater(t, p.BobClock, 0.0)

	// Standing still decays the offset toward zero, never jumps it.
	for i := 0; i < 2000; i++ {
		p.Update(0.016, MoveIntent{}, f)
	}
	assert.False(t, p.Moving)
	assert.InDelta(t, 0.0, p.BobOffset, 0.01)
	assert.InDelta(t, EyeHeight, p.EyeY(), 0.011)
}

func TestPlayerStepsAccumulate(t *testing.T) {
	p := NewPlayer()
	f := NewCollisionField()

	for i := 0; i < 100; i++ {
		p.Update(0.016, MoveIntent{Forward: 1}, f)
	}
	assert.InDelta(t, WalkSpeed*0.016*100, p.Steps, 1e-6)
}
