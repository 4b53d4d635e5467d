package game

import "math"

type ParticleKind uint8

const (
	ParticleSpark ParticleKind = iota // collect bursts, additive
	ParticleFirefly
	ParticleLeaf
)

type Particle struct {
	X, Y, Z    float64
	VX, VY, VZ float64

	Size    float64
	Life    float64
	MaxLife float64

	Col  RGB
	Kind ParticleKind
}

// ParticleSystem is a small capped pool with circular overwrite when full.
// Everything in it is cosmetic; nothing reads particles back into game
// state.
type ParticleSystem struct {
	Max    int
	P      []Particle
	seed   uint64
	rng    *Rand
	ovrIdx int

	fireflyAcc float64
	leafAcc    float64
}

func NewParticleSystem(maxParticles int, seed uint64) *ParticleSystem {
	if maxParticles <= 0 {
		maxParticles = MaxParticles
	}
	if seed == 0 {
		seed = 1
	}
	return &ParticleSystem{
		Max:  maxParticles,
		P:    make([]Particle, 0, maxParticles),
		seed: seed,
		rng:  NewRand(seed),
	}
}

func (ps *ParticleSystem) Add(p Particle) {
	if len(ps.P) < ps.Max {
		ps.P = append(ps.P, p)
		return
	}
	if ps.ovrIdx >= ps.Max {
		ps.ovrIdx = 0
	}
	ps.P[ps.ovrIdx] = p
	ps.ovrIdx++
}

// SpawnCollectBurst throws a ring of sparks from a collected orb.
func (ps *ParticleSystem) SpawnCollectBurst(x, y, z float64) {
	for i := 0; i < 24; i++ {
		a := ps.rng.RangeF(0, 2*math.Pi)
		sp := ps.rng.RangeF(1.5, 4.0)
		ps.Add(Particle{
			X: x, Y: y, Z: z,
			VX: math.Cos(a) * sp, VY: ps.rng.RangeF(1.0, 3.5), VZ: math.Sin(a) * sp,
			Size:    ps.rng.RangeF(0.05, 0.14),
			MaxLife: ps.rng.RangeF(0.5, 1.1),
			Col:     Palette.Orb.Add(ps.rng.Range(-30, 30), ps.rng.Range(-20, 20), 0),
			Kind:    ParticleSpark,
		})
	}
}

// SpawnAmbient trickles in fireflies at night and drifting leaves by day,
// around the player only; distant ambience would never be seen.
func (ps *ParticleSystem) SpawnAmbient(dt float64, px, pz float64, night float32) {
	ps.fireflyAcc += dt * float64(night) * 6
	for ps.fireflyAcc >= 1 {
		ps.fireflyAcc--
		a := ps.rng.RangeF(0, 2*math.Pi)
		d := ps.rng.RangeF(4, 30)
		ps.Add(Particle{
			X: px + math.Cos(a)*d, Y: ps.rng.RangeF(0.4, 2.2), Z: pz + math.Sin(a)*d,
			VX: ps.rng.RangeF(-0.3, 0.3), VY: ps.rng.RangeF(-0.1, 0.25), VZ: ps.rng.RangeF(-0.3, 0.3),
			Size:    0.06,
			MaxLife: ps.rng.RangeF(2.5, 6.0),
			Col:     Palette.LampGlow,
			Kind:    ParticleFirefly,
		})
	}

	ps.leafAcc += dt * float64(1-night) * 1.5
	for ps.leafAcc >= 1 {
		ps.leafAcc--
		a := ps.rng.RangeF(0, 2*math.Pi)
		d := ps.rng.RangeF(4, 25)
		ps.Add(Particle{
			X: px + math.Cos(a)*d, Y: ps.rng.RangeF(3, 7), Z: pz + math.Sin(a)*d,
			VX: ps.rng.RangeF(-0.6, 0.6), VY: ps.rng.RangeF(-0.9, -0.4), VZ: ps.rng.RangeF(-0.6, 0.6),
			Size:    0.10,
			MaxLife: ps.rng.RangeF(4, 8),
			Col:     Palette.TreeLeaf.Add(ps.rng.Range(-20, 40), ps.rng.Range(-20, 20), -10),
			Kind:    ParticleLeaf,
		})
	}
}

// Update integrates and expires particles. Swap-remove keeps the pool
// compact without preserving order; render order does not matter here.
func (ps *ParticleSystem) Update(dt float64) {
	for i := 0; i < len(ps.P); {
		p := &ps.P[i]
		p.Life += dt
		if p.Life >= p.MaxLife || p.Y < 0 {
			ps.P[i] = ps.P[len(ps.P)-1]
			ps.P = ps.P[:len(ps.P)-1]
			continue
		}
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.Z += p.VZ * dt
		switch p.Kind {
		case ParticleSpark:
			p.VY -= 6.0 * dt
		case ParticleFirefly:
			// Gentle wander.
			p.VX += ps.rng.RangeF(-0.5, 0.5) * dt
			p.VZ += ps.rng.RangeF(-0.5, 0.5) * dt
		case ParticleLeaf:
			p.VX += math.Sin(p.Life*3) * 0.3 * dt
		}
		i++
	}
}

// RenderData packs live particles near the player into point-sprite
// attributes: [x, y, z, size, r, g, b, fade] per particle.
func (ps *ParticleSystem) RenderData(buf []float32, px, pz float64) []float32 {
	buf = buf[:0]
	for i := range ps.P {
		p := &ps.P[i]
		dx := p.X - px
		dz := p.Z - pz
		if dx*dx+dz*dz > ParticleCullDistance*ParticleCullDistance {
			continue
		}
		fade := 1.0 - p.Life/p.MaxLife
		r, g, b := p.Col.Vec3()
		buf = append(buf,
			float32(p.X), float32(p.Y), float32(p.Z), float32(p.Size),
			r, g, b, float32(fade),
		)
	}
	return buf
}
