package game

import "math"

type AnimalKind uint8

const (
	AnimalBird AnimalKind = iota
	AnimalCat
)

// Animal reuses the walker loop but resamples its waypoints in place when
// the loop closes, so wildlife wanders instead of patrolling. Birds ignore
// collision (they fly); cats reject blocked waypoints like any other
// ground placement.
type Animal struct {
	Walker
	Kind    AnimalKind
	Alt     float64 // flight height for birds
	Spotted bool    // first close approach counts for the journal
}

type WildlifeSystem struct {
	A    []Animal
	seed uint64
	rng  *Rand
}

func NewWildlifeSystem(seed uint64) *WildlifeSystem {
	if seed == 0 {
		seed = 1
	}
	return &WildlifeSystem{seed: seed, rng: NewRand(seed ^ 0xA41A1)}
}

// wanderPath samples a short waypoint loop near (x, z). Ground animals
// reject blocked points with a bounded retry; a stuck sample just keeps
// the previous waypoint.
func (ws *WildlifeSystem) wanderPath(x, z float64, field *CollisionField, ground bool) []PathPoint {
	const pts = 4
	path := make([]PathPoint, 0, pts)
	cx, cz := x, z
	for i := 0; i < pts; i++ {
		nx, nz := cx, cz
		for t := 0; t < 10; t++ {
			candX := clampF(cx+ws.rng.RangeF(-14, 14), -WorldSize/2+WorldMargin, WorldSize/2-WorldMargin)
			candZ := clampF(cz+ws.rng.RangeF(-14, 14), -WorldSize/2+WorldMargin, WorldSize/2-WorldMargin)
			if ground && field.IsBlocked(candX, candZ, CollisionPadding) {
				continue
			}
			nx, nz = candX, candZ
			break
		}
		path = append(path, PathPoint{nx, nz})
		cx, cz = nx, nz
	}
	return path
}

func (ws *WildlifeSystem) Spawn(world *World, birds, cats int) {
	for i := 0; i < birds; i++ {
		x := ws.rng.RangeF(-WorldSize/2+WorldMargin, WorldSize/2-WorldMargin)
		z := ws.rng.RangeF(-WorldSize/2+WorldMargin, WorldSize/2-WorldMargin)
		ws.A = append(ws.A, Animal{
			Walker: Walker{Path: ws.wanderPath(x, z, world.Field, false), Speed: ws.rng.RangeF(0.15, 0.35)},
			Kind:   AnimalBird,
			Alt:    ws.rng.RangeF(6, 18),
		})
	}
	for i := 0; i < cats; i++ {
		x, z, ok := sampleClear(ws.rng, world.Field, CollisionPadding, 20)
		if !ok {
			continue
		}
		ws.A = append(ws.A, Animal{
			Walker: Walker{Path: ws.wanderPath(x, z, world.Field, true), Speed: ws.rng.RangeF(0.08, 0.2)},
			Kind:   AnimalCat,
		})
	}
}

// Update advances animals, regrows wander paths when a loop completes, and
// reports first sightings.
func (ws *WildlifeSystem) Update(dt float64, world *World, px, pz float64) []Notification {
	var notes []Notification
	for i := range ws.A {
		a := &ws.A[i]
		if a.CullByDistance(px, pz) {
			continue
		}
		prevIdx := a.Index
		a.Advance(dt)
		// Loop closed: pick a fresh wander loop from the current position.
		if a.Index < prevIdx {
			x, z := a.Pos()
			a.Path = ws.wanderPath(x, z, world.Field, a.Kind != AnimalBird)
			a.Index = 0
			a.Progress = 0
		}

		if !a.Spotted {
			x, z := a.Pos()
			if math.Hypot(x-px, z-pz) < 8 {
				a.Spotted = true
				text := "You spotted a cat"
				if a.Kind == AnimalBird {
					text = "You spotted a bird"
				}
				notes = append(notes, Notification{Kind: NoteWildlife, Text: text})
			}
		}
	}
	return notes
}

// SpottedCount returns how many animals have been seen up close.
func (ws *WildlifeSystem) SpottedCount() int {
	n := 0
	for i := range ws.A {
		if ws.A[i].Spotted {
			n++
		}
	}
	return n
}
