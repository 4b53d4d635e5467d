package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCyclePhaseAnchors(t *testing.T) {
	assert.InDelta(t, 0.0, CyclePhase(0), 1e-9)
	assert.InDelta(t, 0.25, CyclePhase(DayCyclePeriod*0.25), 1e-9)
	assert.InDelta(t, 0.5, CyclePhase(DayCyclePeriod*0.5), 1e-9)
	assert.InDelta(t, 0.75, CyclePhase(DayCyclePeriod*0.75), 1e-9)
	// Wraps cleanly past a full cycle.
	assert.InDelta(t, 0.25, CyclePhase(DayCyclePeriod*1.25), 1e-9)
}

func TestSunCycleLightRange(t *testing.T) {
	for i := 0; i < 200; i++ {
		gt := float64(i) * DayCyclePeriod / 200
		ambient, tr, tg, tb := SunCycleLight(gt)
		assert.GreaterOrEqual(t, ambient, float32(SunAmbientMin)-1e-6)
		assert.LessOrEqual(t, ambient, float32(SunAmbientMax)+1e-6)
		assert.Greater(t, tr, float32(0))
		assert.Greater(t, tg, float32(0))
		assert.Greater(t, tb, float32(0))
	}
}

func TestSunCycleLightNoonAndMidnight(t *testing.T) {
	noon, _, _, _ := SunCycleLight(DayCyclePeriod * 0.25)
	midnight, _, _, _ := SunCycleLight(DayCyclePeriod * 0.75)
	assert.InDelta(t, SunAmbientMax, float64(noon), 1e-5)
	assert.InDelta(t, SunAmbientMin, float64(midnight), 1e-5)
}

func TestNightIntensityEndpoints(t *testing.T) {
	assert.Equal(t, float32(0), NightIntensityFromAmbient(SunNightStart))
	assert.Equal(t, float32(0), NightIntensityFromAmbient(SunAmbientMax))
	assert.Equal(t, float32(1), NightIntensityFromAmbient(SunAmbientMin))
}

func TestSkyColorPhases(t *testing.T) {
	assert.Equal(t, Palette.SkyDay, SkyColor(DayCyclePeriod*0.25))
	night := SkyColor(DayCyclePeriod * 0.75)
	assert.Equal(t, Palette.SkyNight, night)
	// Dusk sits between the two.
	dusk := SkyColor(DayCyclePeriod * 0.5)
	assert.NotEqual(t, Palette.SkyDay, dusk)
	assert.NotEqual(t, Palette.SkyNight, dusk)
}

func TestAmbientAudioGains(t *testing.T) {
	wind, birds, crickets := AmbientAudioGains(DayCyclePeriod * 0.25)
	assert.Equal(t, 0.5, wind)
	assert.Equal(t, 1.0, birds)
	assert.Equal(t, 0.0, crickets)

	wind, birds, crickets = AmbientAudioGains(DayCyclePeriod * 0.75)
	assert.Equal(t, 0.5, wind)
	assert.Equal(t, 0.0, birds)
	assert.Equal(t, 1.0, crickets)
}
