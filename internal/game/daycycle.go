package game

import "math"

// CyclePhase maps accumulated game time to [0,1): 0 is dawn, 0.25 noon,
// 0.5 dusk, 0.75 midnight.
func CyclePhase(gameTime float64) float64 {
	return math.Mod(gameTime, DayCyclePeriod) / DayCyclePeriod
}

// SunCycleLight computes ambient light level and color tint from game time.
// Returns ambient (SunAmbientMin..SunAmbientMax) and tint RGB multipliers.
func SunCycleLight(gameTime float64) (ambient, tintR, tintG, tintB float32) {
	phase := CyclePhase(gameTime)
	sunHeight := math.Sin(phase * 2 * math.Pi) // -1 (midnight) to 1 (noon)

	mid := float64(SunAmbientMin+SunAmbientMax) * 0.5
	amp := float64(SunAmbientMax-SunAmbientMin) * 0.5
	ambient = float32(mid + amp*sunHeight)

	// Warm orange tint near the horizon (sunrise/sunset).
	horizonFactor := 1.0 - math.Abs(sunHeight)
	warmth := horizonFactor * horizonFactor * 0.35
	tintR = float32(1.0 + warmth*0.4)
	tintG = float32(1.0 - warmth*0.15)
	tintB = float32(1.0 - warmth*0.5)

	// Blue shift deep into the night.
	if sunHeight < -0.3 {
		nightFactor := float32((-sunHeight - 0.3) / 0.7)
		tintR -= nightFactor * 0.07
		tintG -= nightFactor * 0.035
		tintB += nightFactor * 0.10
	}

	return
}

// NightIntensityFromAmbient maps ambient light to a 0..1 night factor:
// 0 at/above SunNightStart, 1 at SunAmbientMin. Drives lit windows, lamp
// glow, fireflies and the cricket audio layer.
func NightIntensityFromAmbient(ambient float32) float32 {
	denom := float64(SunNightStart - SunAmbientMin)
	if denom <= 0 {
		return 0
	}
	return float32(clampF((float64(SunNightStart)-float64(ambient))/denom, 0, 1))
}

// SkyColor interpolates the clear-color gradient across the cycle.
func SkyColor(gameTime float64) RGB {
	phase := CyclePhase(gameTime)
	sunHeight := math.Sin(phase * 2 * math.Pi)
	switch {
	case sunHeight > 0.25:
		return Palette.SkyDay
	case sunHeight > -0.2:
		// Blend through dusk on both shoulders.
		t := (sunHeight + 0.2) / 0.45
		return lerpRGB(Palette.SkyDusk, Palette.SkyDay, smoothstep(t))
	default:
		t := (-sunHeight - 0.2) / 0.8
		return lerpRGB(Palette.SkyDusk, Palette.SkyNight, smoothstep(t))
	}
}

// FogDensity thickens overnight and at dawn.
func FogDensity(gameTime float64) float32 {
	phase := CyclePhase(gameTime)
	sunHeight := math.Sin(phase * 2 * math.Pi)
	base := 0.004
	night := clampF(-sunHeight, 0, 1) * 0.006
	dawn := math.Exp(-math.Pow((phase-0.02)/0.04, 2)) * 0.008
	return float32(base + night + dawn)
}

// AmbientAudioGains returns the wind/birdsong/cricket layer gains for the
// current time of day. Wind is constant; birds fade with daylight,
// crickets with night.
func AmbientAudioGains(gameTime float64) (wind, birds, crickets float64) {
	ambient, _, _, _ := SunCycleLight(gameTime)
	night := float64(NightIntensityFromAmbient(ambient))
	wind = 0.5
	birds = clampF(1.0-night*1.4, 0, 1)
	crickets = clampF(night, 0, 1)
	return
}
