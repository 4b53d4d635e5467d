package game

import "math"

// Prop styles are small and per-kind; everything here is static for the
// session once placed.

type Tree struct {
	X, Z   float64
	Height float64
	Canopy float64
	Tint   int // small index into leaf shade variants
}

type Bench struct {
	X, Z float64
	Yaw  float64
}

type Lamp struct {
	X, Z float64
}

// SidewalkStrip is a flat box hugging the street edge of an occupied cell.
type SidewalkStrip struct {
	X, Z float64 // center
	W, D float64
}

// sampleClear runs bounded rejection sampling: up to tries candidates inside
// the world (minus margin), accepted when the collision field reports the
// point clear at the given padding. ok=false means the instance is dropped,
// which is the intended exhaustion policy, not an error.
func sampleClear(r *Rand, field *CollisionField, pad float64, tries int) (x, z float64, ok bool) {
	half := WorldSize/2 - WorldMargin
	for t := 0; t < tries; t++ {
		x = r.RangeF(-half, half)
		z = r.RangeF(-half, half)
		if !field.IsBlocked(x, z, pad) {
			return x, z, true
		}
	}
	return 0, 0, false
}

// PlaceTrees scatters trees across the whole map, denser toward the park.
func PlaceTrees(seed uint64, field *CollisionField) []Tree {
	r := NewRand(seed ^ 0x7EEE5)
	trees := make([]Tree, 0, TreeCount)
	for i := 0; i < TreeCount; i++ {
		x, z, ok := sampleClear(r, field, TreePadding, TreeTries)
		if !ok {
			continue
		}
		// Park bias: outside the park, reroll half the candidates away.
		if math.Hypot(x, z) > ParkRadius && r.Intn(100) < 40 {
			continue
		}
		trees = append(trees, Tree{
			X: x, Z: z,
			Height: r.RangeF(3.0, 6.5),
			Canopy: r.RangeF(1.6, 3.2),
			Tint:   r.Intn(3),
		})
	}
	return trees
}

// PlaceBenches puts benches on clear ground, facing a random direction.
func PlaceBenches(seed uint64, field *CollisionField) []Bench {
	r := NewRand(seed ^ 0xBE4C4)
	benches := make([]Bench, 0, BenchCount)
	for i := 0; i < BenchCount; i++ {
		x, z, ok := sampleClear(r, field, BenchPadding, BenchTries)
		if !ok {
			continue
		}
		benches = append(benches, Bench{X: x, Z: z, Yaw: r.RangeF(0, 2*math.Pi)})
	}
	return benches
}

// PlaceLamps walks the street-corner grid and keeps the corners the
// collision field leaves clear. Deterministic positions, not sampled: lamp
// posts belong on the grid the streets define.
func PlaceLamps(seed uint64, field *CollisionField) []Lamp {
	half := WorldSize / 2
	cells := int(WorldSize / CellSize)
	lamps := make([]Lamp, 0, (cells+1)*(cells+1))
	for cz := 0; cz <= cells; cz++ {
		for cx := 0; cx <= cells; cx++ {
			x := -half + float64(cx)*CellSize - StreetWidth/2
			z := -half + float64(cz)*CellSize - StreetWidth/2
			if x < -half+WorldMargin || z < -half+WorldMargin || x > half-WorldMargin || z > half-WorldMargin {
				continue
			}
			if field.IsBlocked(x, z, LampPadding) {
				continue
			}
			// Thin the grid a little so rows don't read as a fence.
			if hash2D(seed^0x1A3B5, cx, cz)%100 < 20 {
				continue
			}
			lamps = append(lamps, Lamp{X: x, Z: z})
		}
	}
	return lamps
}

// PlaceSidewalks rings every cell that holds at least one building with
// four flat strips along its street edges.
func PlaceSidewalks(buildings []Building) []SidewalkStrip {
	half := WorldSize / 2
	cells := int(WorldSize / CellSize)
	occupied := make([]bool, cells*cells)
	for i := range buildings {
		cx := int((buildings[i].X + half) / CellSize)
		cz := int((buildings[i].Z + half) / CellSize)
		if cx >= 0 && cz >= 0 && cx < cells && cz < cells {
			occupied[cz*cells+cx] = true
		}
	}

	strips := make([]SidewalkStrip, 0, 128)
	for cz := 0; cz < cells; cz++ {
		for cx := 0; cx < cells; cx++ {
			if !occupied[cz*cells+cx] {
				continue
			}
			ccx := -half + (float64(cx)+0.5)*CellSize
			ccz := -half + (float64(cz)+0.5)*CellSize
			edge := BlockSize/2 + SidewalkWidth/2
			span := BlockSize + 2*SidewalkWidth
			strips = append(strips,
				SidewalkStrip{X: ccx, Z: ccz - edge, W: span, D: SidewalkWidth},
				SidewalkStrip{X: ccx, Z: ccz + edge, W: span, D: SidewalkWidth},
				SidewalkStrip{X: ccx - edge, Z: ccz, W: SidewalkWidth, D: span},
				SidewalkStrip{X: ccx + edge, Z: ccz, W: SidewalkWidth, D: span},
			)
		}
	}
	return strips
}
