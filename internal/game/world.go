package game

// World owns all generated content. Everything here is created once by
// GenerateAll and is immutable for the session; only the systems that read
// it (renderer, collision queries) hold references.
type World struct {
	seed uint64

	Buildings []Building
	Field     *CollisionField
	Windows   WindowBatches
	Trees     []Tree
	Benches   []Bench
	Lamps     []Lamp
	Sidewalks []SidewalkStrip
}

func NewWorld(seed uint64) *World {
	if seed == 0 {
		seed = 1
	}
	return &World{
		seed:  seed,
		Field: NewCollisionField(),
	}
}

func (w *World) Seed() uint64 { return w.seed }

// GenerateAll builds the full city: buildings first (they feed the
// collision field every later placer consults), then window batches, then
// the prop placers.
func (w *World) GenerateAll() {
	w.Buildings = GenerateCity(w.seed, w.Field)
	w.Windows = BatchWindows(w.seed, w.Buildings)
	w.Trees = PlaceTrees(w.seed, w.Field)
	w.Benches = PlaceBenches(w.seed, w.Field)
	w.Lamps = PlaceLamps(w.seed, w.Field)
	w.Sidewalks = PlaceSidewalks(w.Buildings)
}

// NearestBench returns the closest bench within maxDist, or nil.
func (w *World) NearestBench(x, z, maxDist float64) *Bench {
	var best *Bench
	bestD2 := maxDist * maxDist
	for i := range w.Benches {
		b := &w.Benches[i]
		dx := b.X - x
		dz := b.Z - z
		d2 := dx*dx + dz*dz
		if d2 < bestD2 {
			bestD2 = d2
			best = b
		}
	}
	return best
}
