package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// onWall reports whether a slot sits on one of the footprint's wall planes
// (within the inset tolerance).
func onWall(s WindowSlot, fp RectXZ) bool {
	const eps = WindowInset + 1e-9
	onX := math.Abs(s.X-fp.X0) <= eps || math.Abs(s.X-fp.X1) <= eps
	onZ := math.Abs(s.Z-fp.Z0) <= eps || math.Abs(s.Z-fp.Z1) <= eps
	withinX := s.X >= fp.X0-eps && s.X <= fp.X1+eps
	withinZ := s.Z >= fp.Z0-eps && s.Z <= fp.Z1+eps
	return (onX && withinZ) || (onZ && withinX)
}

func TestBatchWindowsDeterministic(t *testing.T) {
	buildings := GenerateCity(5, NewCollisionField())
	wb1 := BatchWindows(5, buildings)
	wb2 := BatchWindows(5, buildings)
	assert.Equal(t, wb1, wb2)
}

func TestBatchWindowsSingleBuildingGridBound(t *testing.T) {
	// 10x10 footprint, 12 high: 4 floors, 4 columns per face, so at most
	// 2*4*4 + 2*4*4 = 64 slots before per-slot skips.
	b := []Building{{X: 0, Z: 0, W: 10, D: 10, H: 12}}
	wb := BatchWindows(1, b)

	total := wb.Total()
	assert.LessOrEqual(t, total, 64)
	assert.Greater(t, total, 0, "skip chance cannot plausibly empty a 64-slot grid")
}

func TestBatchWindowsOneLitRollPerBuilding(t *testing.T) {
	// A single building's windows land entirely in one batch; the lit
	// state is rolled once per building, never per window.
	b := []Building{{X: 0, Z: 0, W: 10, D: 10, H: 12}}
	for seed := uint64(1); seed <= 20; seed++ {
		wb := BatchWindows(seed, b)
		require.True(t, len(wb.Lit) == 0 || len(wb.Unlit) == 0,
			"seed %d split one building across batches", seed)
	}
}

func TestBatchWindowsSlotGeometry(t *testing.T) {
	b := Building{X: 3, Z: -2, W: 8, D: 6, H: 20}
	wb := BatchWindows(9, []Building{b})
	slots := append(append([]WindowSlot{}, wb.Lit...), wb.Unlit...)
	require.NotEmpty(t, slots)

	fp := b.Footprint()
	for _, s := range slots {
		assert.Greater(t, s.Y, 0.0)
		assert.Less(t, s.Y, b.H)
		// Slot must sit on a wall plane, inset just outside the footprint.
		assert.True(t, onWall(s, fp), "slot off the building walls: %+v", s)
	}
}

func TestBatchWindowsNarrowBuilding(t *testing.T) {
	// Too thin for any column on any face.
	b := []Building{{X: 0, Z: 0, W: 1, D: 1, H: 30}}
	wb := BatchWindows(3, b)
	assert.Equal(t, 0, wb.Total())
}

func TestBatchWindowsFlatBuilding(t *testing.T) {
	b := []Building{{X: 0, Z: 0, W: 20, D: 20, H: 1}}
	wb := BatchWindows(3, b)
	assert.Equal(t, 0, wb.Total(), "no floors fit under one floor spacing")
}
