package game

import "math"

// MeditateMode parks the camera on a bench with a slow breathing sway.
// Entering requires a bench within reach; any movement input exits.
type MeditateMode struct {
	BenchX, BenchZ float64
	Yaw            float64 // facing stored at entry, from the bench's own yaw
	Clock          float64
}

// TryEnter looks for a bench near the player; returns false when none is
// close enough.
func (mm *MeditateMode) TryEnter(world *World, p *Player) bool {
	bench := world.NearestBench(p.X, p.Z, MeditateBenchRadius)
	if bench == nil {
		return false
	}
	mm.BenchX = bench.X
	mm.BenchZ = bench.Z
	mm.Yaw = bench.Yaw
	mm.Clock = 0
	return true
}

func (mm *MeditateMode) Update(dt float64) {
	mm.Clock += dt
}

// CameraPose returns the seated camera: bench position, lowered eye, and a
// breathing sway on height and pitch.
func (mm *MeditateMode) CameraPose() Camera {
	breath := math.Sin(2 * math.Pi * MeditateBreathFreq * mm.Clock)
	return Camera{
		X:     mm.BenchX,
		Y:     1.25 + breath*MeditateSwayAmp,
		Z:     mm.BenchZ,
		Yaw:   mm.Yaw,
		Pitch: breath * MeditateSwayAmp * 0.6,
	}
}

// WantsExit reports whether the frame's input should end meditation.
func (mm *MeditateMode) WantsExit(in MoveIntent) bool {
	return in.Forward != 0 || in.Strafe != 0
}
