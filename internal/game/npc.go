package game

import "math"

// NPC is an ambient walker looping a fixed rectangle around a city block,
// with optional full stops at corners and occasional scheduled "thoughts"
// the HUD surfaces as toasts.
type NPC struct {
	Walker
	Col RGB

	StopAt    int // corner index that triggers a pause, -1 for none
	StopTimer float64

	ThoughtTimer float64 // counts down to the next idle thought
}

var npcThoughts = []string{
	"nice evening for a walk",
	"I should visit the park",
	"those windows look warm",
	"wonder what's down that alley",
	"the birds are out today",
}

type NPCSystem struct {
	N    []NPC
	seed uint64
}

func NewNPCSystem(seed uint64) *NPCSystem {
	if seed == 0 {
		seed = 1
	}
	return &NPCSystem{seed: seed}
}

// blockLoop returns the sidewalk rectangle around the cell containing
// (cx, cz), walked clockwise.
func blockLoop(cx, cz float64) []PathPoint {
	half := WorldSize / 2
	ix := math.Floor((cx + half) / CellSize)
	iz := math.Floor((cz + half) / CellSize)
	x0 := -half + ix*CellSize + StreetWidth/2
	z0 := -half + iz*CellSize + StreetWidth/2
	x1 := x0 + BlockSize + SidewalkWidth
	z1 := z0 + BlockSize + SidewalkWidth
	return []PathPoint{{x0, z0}, {x1, z0}, {x1, z1}, {x0, z1}}
}

// Spawn places count NPCs on block loops around clear corners. Blocked
// spawn candidates are rejected and retried a bounded number of times;
// exhaustion drops that NPC.
func (ns *NPCSystem) Spawn(world *World, count int) {
	r := NewRand(ns.seed ^ 0x9C9C1)
	for i := 0; i < count; i++ {
		x, z, ok := sampleClear(r, world.Field, CollisionPadding, 20)
		if !ok {
			continue
		}
		path := blockLoop(x, z)
		stopAt := -1
		if r.Intn(100) < NPCStopChance {
			stopAt = r.Intn(len(path))
		}
		ns.N = append(ns.N, NPC{
			Walker: Walker{
				Path:  path,
				Index: r.Intn(len(path)),
				Speed: NPCWalkSpeed / (BlockSize + SidewalkWidth), // segments/s over a block edge
			},
			Col:          NPCClothPalette[r.Intn(len(NPCClothPalette))].Add(r.Range(-16, 16), r.Range(-16, 16), r.Range(-16, 16)),
			StopAt:       stopAt,
			ThoughtTimer: r.RangeF(20, 90),
		})
	}
}

// Update advances every non-culled NPC and returns any thoughts that fired
// near the player this pass.
func (ns *NPCSystem) Update(dt float64, px, pz float64) []Notification {
	var notes []Notification
	for i := range ns.N {
		n := &ns.N[i]
		if n.CullByDistance(px, pz) {
			continue
		}
		if n.StopTimer > 0 {
			n.StopTimer -= dt
			continue
		}
		prevIdx := n.Index
		n.Advance(dt)
		if n.Index != prevIdx && n.Index == n.StopAt {
			n.StopTimer = NPCStopDuration
		}

		// Idle thoughts surface only when the player is close enough to
		// plausibly overhear.
		n.ThoughtTimer -= dt
		if n.ThoughtTimer <= 0 {
			n.ThoughtTimer = 45 + float64(hash2D(ns.seed, i, n.Index)%60)
			x, z := n.Pos()
			if math.Hypot(x-px, z-pz) < 12 {
				notes = append(notes, Notification{
					Kind: NoteThought,
					Text: npcThoughts[int(hash2D(ns.seed^0x7707, i, n.Index))%len(npcThoughts)],
				})
			}
		}
	}
	return notes
}
