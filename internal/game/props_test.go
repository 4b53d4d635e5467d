package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleClearAcceptsOpenGround(t *testing.T) {
	r := NewRand(1)
	f := NewCollisionField()

	x, z, ok := sampleClear(r, f, 1.0, 5)
	require.True(t, ok)
	half := WorldSize/2 - WorldMargin
	assert.LessOrEqual(t, math.Abs(x), half)
	assert.LessOrEqual(t, math.Abs(z), half)
}

func TestSampleClearExhaustionDrops(t *testing.T) {
	r := NewRand(1)
	f := NewCollisionField()
	f.Add(RectXZ{X0: -WorldSize, Z0: -WorldSize, X1: WorldSize, Z1: WorldSize})

	_, _, ok := sampleClear(r, f, 1.0, 50)
	assert.False(t, ok, "a fully blocked field must exhaust, not loop")
}

func TestPlaceTreesClearOfBuildings(t *testing.T) {
	f := NewCollisionField()
	GenerateCity(11, f)
	trees := PlaceTrees(11, f)
	require.NotEmpty(t, trees)

	for i := range trees {
		tr := &trees[i]
		assert.False(t, f.IsBlocked(tr.X, tr.Z, TreePadding))
		assert.Greater(t, tr.Height, 0.0)
		assert.Greater(t, tr.Canopy, 0.0)
	}
}

func TestPlaceTreesDeterministic(t *testing.T) {
	f1 := NewCollisionField()
	GenerateCity(3, f1)
	f2 := NewCollisionField()
	GenerateCity(3, f2)

	assert.Equal(t, PlaceTrees(3, f1), PlaceTrees(3, f2))
}

func TestPlaceBenchesClear(t *testing.T) {
	f := NewCollisionField()
	GenerateCity(21, f)
	benches := PlaceBenches(21, f)
	require.NotEmpty(t, benches)

	for i := range benches {
		b := &benches[i]
		assert.False(t, f.IsBlocked(b.X, b.Z, BenchPadding))
	}
}

func TestPlaceLampsOnGridAndClear(t *testing.T) {
	f := NewCollisionField()
	GenerateCity(31, f)
	lamps := PlaceLamps(31, f)
	require.NotEmpty(t, lamps)

	half := WorldSize / 2
	for i := range lamps {
		l := &lamps[i]
		assert.False(t, f.IsBlocked(l.X, l.Z, LampPadding))
		// Positions must come from the street-corner grid.
		gx := math.Mod(l.X+half+StreetWidth/2, CellSize)
		gz := math.Mod(l.Z+half+StreetWidth/2, CellSize)
		assert.InDelta(t, 0.0, math.Min(gx, CellSize-gx), 1e-6)
		assert.InDelta(t, 0.0, math.Min(gz, CellSize-gz), 1e-6)
	}
}

func TestPlaceSidewalksRingOccupiedCells(t *testing.T) {
	f := NewCollisionField()
	buildings := GenerateCity(41, f)
	strips := PlaceSidewalks(buildings)
	require.NotEmpty(t, strips)

	// Four strips per occupied cell.
	assert.Equal(t, 0, len(strips)%4)

	cellsWithBuildings := map[[2]int]bool{}
	half := WorldSize / 2
	for i := range buildings {
		cx := int((buildings[i].X + half) / CellSize)
		cz := int((buildings[i].Z + half) / CellSize)
		cellsWithBuildings[[2]int{cx, cz}] = true
	}
	assert.Equal(t, len(cellsWithBuildings)*4, len(strips))
}
