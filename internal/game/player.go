package game

import "math"

// MoveIntent is one frame of player input, already lifted out of the
// windowing layer so the controller stays testable.
type MoveIntent struct {
	Forward float64 // -1..1, +1 walks forward
	Strafe  float64 // -1..1, +1 strafes right
	LookDX  float64 // raw cursor delta, pixels
	LookDY  float64
}

// Player is the sole continuously mutated piece of core state. Camera,
// collision and HUD all read it every frame.
type Player struct {
	X, Z  float64
	Yaw   float64 // radians around Y; 0 faces +Z
	Pitch float64 // radians, clamped

	// Head bob runs off an accumulated clock, never wall time, so it stays
	// consistent when the host throttles frames.
	BobClock  float64
	BobOffset float64

	Moving bool
	Steps  float64 // accumulated walked distance, feeds challenges
}

func NewPlayer() *Player {
	return &Player{Yaw: math.Pi} // face the city from the park center
}

// Forward returns the ground-plane forward vector for the current yaw.
func (p *Player) Forward() (float64, float64) {
	return math.Sin(p.Yaw), math.Cos(p.Yaw)
}

// Update applies one frame of look and movement. The resolved position is
// guaranteed clear of every building at CollisionPadding: full move first,
// then X-only, then Z-only (sliding along walls), else stay.
func (p *Player) Update(dt float64, in MoveIntent, field *CollisionField) {
	if dt > MaxFrameDelta {
		dt = MaxFrameDelta
	}

	// Look. Yaw grows counter-clockwise, so mouse-right subtracts.
	p.Yaw -= in.LookDX * MouseSensitivity
	p.Pitch -= in.LookDY * MouseSensitivity
	limit := PitchLimitDeg * math.Pi / 180
	p.Pitch = clampF(p.Pitch, -limit, limit)

	// Desired displacement: normalize combined input, rotate by yaw.
	ix := in.Strafe
	iz := in.Forward
	mag := math.Hypot(ix, iz)
	if mag > 1 {
		ix /= mag
		iz /= mag
	}
	// Forward is (sin, cos), right is (-cos, sin) on the ground plane.
	sin, cos := math.Sin(p.Yaw), math.Cos(p.Yaw)
	dx := (-cos*ix + sin*iz) * WalkSpeed * dt
	dz := (sin*ix + cos*iz) * WalkSpeed * dt

	nx, nz := p.X+dx, p.Z+dz
	switch {
	case !field.IsBlocked(nx, nz, CollisionPadding):
		p.X, p.Z = nx, nz
	case !field.IsBlocked(nx, p.Z, CollisionPadding):
		p.X = nx
		dz = 0
	case !field.IsBlocked(p.X, nz, CollisionPadding):
		p.Z = nz
		dx = 0
	default:
		dx, dz = 0, 0
	}

	bound := WorldSize/2 - WorldMargin
	p.X = clampF(p.X, -bound, bound)
	p.Z = clampF(p.Z, -bound, bound)

	// Head bob.
	moved := math.Hypot(dx, dz)
	speed := 0.0
	if dt > 0 {
		speed = moved / dt
	}
	p.Moving = speed > HeadBobMinSpeed
	p.Steps += moved
	if p.Moving {
		p.BobClock += dt * HeadBobFreq * (speed / WalkSpeed)
		p.BobOffset = math.Sin(p.BobClock) * HeadBobAmp
	} else {
		p.BobOffset = approach(p.BobOffset, 0, dt*0.3)
	}
}

// EyeY returns the camera height including bob.
func (p *Player) EyeY() float64 {
	return EyeHeight + p.BobOffset
}
