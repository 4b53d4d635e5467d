package game

import "math"

// Building is one placed volume. Immutable once registered: the collision
// field keeps the footprint, the renderer keeps the instance.
type Building struct {
	X, Z     float64 // footprint center
	W, D, H  float64
	ColorIdx int
}

// Footprint returns the building's ground rectangle.
func (b *Building) Footprint() RectXZ {
	hw := b.W / 2
	hd := b.D / 2
	return RectXZ{X0: b.X - hw, Z0: b.Z - hd, X1: b.X + hw, Z1: b.Z + hd}
}

// GenerateCity walks the fixed cell grid across the world square,
// probabilistically skipping cells and the central park, and fills each
// surviving cell with 1-3 buildings. Buildings register into the collision
// field immediately. Pure generation, no failure path.
func GenerateCity(seed uint64, field *CollisionField) []Building {
	buildings := make([]Building, 0, 256)

	half := WorldSize / 2
	cells := int(WorldSize / CellSize)

	for cz := 0; cz < cells; cz++ {
		for cx := 0; cx < cells; cx++ {
			// Per-cell deterministic stream so cells are independent of
			// iteration order.
			r := NewRand(hash2D(seed, cx, cz))

			// Cell center in world space.
			ccx := -half + (float64(cx)+0.5)*CellSize
			ccz := -half + (float64(cz)+0.5)*CellSize

			if r.Intn(100) < BlockSkipChance {
				continue
			}
			// Keep the central park open.
			if math.Hypot(ccx, ccz) < ParkRadius {
				continue
			}

			n := 1 + r.Intn(3)
			slotW := BlockSize / float64(n)
			for i := 0; i < n; i++ {
				// Width factor < 1 leaves gaps between neighbours in the
				// same cell. Deliberate: the skyline reads better with
				// alleys than with a solid wall.
				w := slotW * r.RangeF(0.6, 0.9)
				d := r.RangeF(BlockSize*0.45, BlockSize*0.9)
				h := r.RangeF(BuildingMinH, BuildingMaxH)
				if r.Intn(100) < TowerChance {
					h = r.RangeF(BuildingMaxH, TowerMaxH)
				}

				bx := ccx - BlockSize/2 + (float64(i)+0.5)*slotW
				bz := ccz

				b := Building{
					X: bx, Z: bz,
					W: w, D: d, H: h,
					ColorIdx: r.Intn(len(BuildingPalette)),
				}
				field.Add(b.Footprint())
				buildings = append(buildings, b)
			}
		}
	}

	return buildings
}
