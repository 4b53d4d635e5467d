package game

import "math"

// Collectible is a static orb with a flag that flips exactly once. The
// score delta, particle burst and chime fire on the same frame the flag
// flips; there is no un-collection path.
type Collectible struct {
	X, Z      float64
	Collected bool
	Pulse     float64 // render-only bob/pulse phase
}

// Landmark is a discovery waypoint with a journal entry.
type Landmark struct {
	X, Z       float64
	Name       string
	Discovered bool
}

var landmarkNames = []string{
	"The Old Fountain",
	"Rooftop Garden Corner",
	"The Leaning Tower",
	"Mosaic Alley",
	"The Twin Spires",
	"Market Square",
	"The Quiet Courtyard",
	"Lantern Row",
}

type CollectibleSystem struct {
	Orbs      []Collectible
	Landmarks []Landmark
	seed      uint64
}

func NewCollectibleSystem(seed uint64) *CollectibleSystem {
	if seed == 0 {
		seed = 1
	}
	return &CollectibleSystem{seed: seed}
}

// Spawn scatters orbs and landmarks via bounded rejection sampling against
// the collision field. Exhausted samples are dropped silently, so counts
// may come up short of the targets.
func (cs *CollectibleSystem) Spawn(world *World) {
	r := NewRand(cs.seed ^ 0xC0113C7)
	for i := 0; i < CollectibleCount; i++ {
		x, z, ok := sampleClear(r, world.Field, CollectiblePadding, CollectibleTries)
		if !ok {
			continue
		}
		cs.Orbs = append(cs.Orbs, Collectible{X: x, Z: z, Pulse: r.RangeF(0, 2*math.Pi)})
	}
	lr := NewRand(cs.seed ^ 0x1A2D3A4)
	for i := 0; i < LandmarkCount && i < len(landmarkNames); i++ {
		x, z, ok := sampleClear(lr, world.Field, LandmarkPadding, LandmarkTries)
		if !ok {
			continue
		}
		cs.Landmarks = append(cs.Landmarks, Landmark{X: x, Z: z, Name: landmarkNames[i]})
	}
}

// Update runs the per-frame proximity checks. Multiple triggers in one
// frame are all honored; each item's effect is local so no ordering or
// exclusion is needed. Score mutations go through the session; side
// effects return as notifications.
func (cs *CollectibleSystem) Update(dt float64, px, pz float64, session *Session, particles *ParticleSystem) []Notification {
	var notes []Notification
	for i := range cs.Orbs {
		o := &cs.Orbs[i]
		o.Pulse += dt * 2
		if o.Collected {
			continue
		}
		if math.Hypot(o.X-px, o.Z-pz) < CollectRadius {
			o.Collected = true
			session.Score += CollectScore
			session.OrbsFound++
			particles.SpawnCollectBurst(o.X, 1.0, o.Z)
			notes = append(notes, Notification{Kind: NoteCollect, Text: "Orb collected", X: o.X, Z: o.Z})
		}
	}
	for i := range cs.Landmarks {
		l := &cs.Landmarks[i]
		if l.Discovered {
			continue
		}
		if math.Hypot(l.X-px, l.Z-pz) < DiscoverRadius {
			l.Discovered = true
			session.Score += DiscoverScore
			session.LandmarksFound++
			notes = append(notes, Notification{Kind: NoteDiscovery, Text: "Discovered: " + l.Name, X: l.X, Z: l.Z})
		}
	}
	return notes
}

// Remaining returns the number of uncollected orbs.
func (cs *CollectibleSystem) Remaining() int {
	n := 0
	for i := range cs.Orbs {
		if !cs.Orbs[i].Collected {
			n++
		}
	}
	return n
}
