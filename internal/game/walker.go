package game

import "math"

// PathPoint is one waypoint on the ground plane.
type PathPoint struct {
	X, Z float64
}

// Walker loops through a waypoint sequence: progress in [0,1] advances by
// speed*dt along the current segment, then resets and bumps the index
// modulo path length. Position is the lerp between the segment endpoints.
// NPCs fix their path at creation; some wildlife resamples waypoints in
// place.
type Walker struct {
	Path     []PathPoint
	Index    int
	Progress float64
	Speed    float64 // segments per second

	Heading float64
	Hidden  bool // culled by distance; frozen, not removed
}

// Pos returns the interpolated position on the current segment.
func (w *Walker) Pos() (float64, float64) {
	n := len(w.Path)
	if n == 0 {
		return 0, 0
	}
	a := w.Path[w.Index%n]
	b := w.Path[(w.Index+1)%n]
	return a.X + (b.X-a.X)*w.Progress, a.Z + (b.Z-a.Z)*w.Progress
}

// Advance moves progress and wraps segments. Heading follows the direction
// of travel.
func (w *Walker) Advance(dt float64) {
	n := len(w.Path)
	if n < 2 {
		return
	}
	a := w.Path[w.Index%n]
	b := w.Path[(w.Index+1)%n]
	if dx, dz := b.X-a.X, b.Z-a.Z; dx != 0 || dz != 0 {
		w.Heading = math.Atan2(dx, dz)
	}
	w.Progress += w.Speed * dt
	for w.Progress >= 1 {
		w.Progress -= 1
		w.Index = (w.Index + 1) % n
	}
}

// CullByDistance hides and freezes the walker when the player is far away.
// Purely a performance measure: hidden walkers keep their state.
func (w *Walker) CullByDistance(px, pz float64) bool {
	x, z := w.Pos()
	w.Hidden = math.Hypot(x-px, z-pz) > WalkerCullDist
	return w.Hidden
}
