package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParticlePoolCap(t *testing.T) {
	ps := NewParticleSystem(10, 1)
	for i := 0; i < 50; i++ {
		ps.Add(Particle{Y: 1, MaxLife: 100})
	}
	assert.Len(t, ps.P, 10, "pool overwrites instead of growing")
}

func TestParticleExpiry(t *testing.T) {
	ps := NewParticleSystem(10, 1)
	ps.Add(Particle{Y: 1, MaxLife: 0.5})
	ps.Add(Particle{Y: 1, MaxLife: 5})

	ps.Update(1.0)
	require.Len(t, ps.P, 1)
	assert.Equal(t, 5.0, ps.P[0].MaxLife)
}

func TestParticleGroundKill(t *testing.T) {
	ps := NewParticleSystem(10, 1)
	ps.Add(Particle{Y: 0.1, VY: -10, MaxLife: 100, Kind: ParticleSpark})

	ps.Update(0.1)
	ps.Update(0.1)
	assert.Empty(t, ps.P, "particles below ground are removed")
}

func TestCollectBurstSparks(t *testing.T) {
	ps := NewParticleSystem(100, 1)
	ps.SpawnCollectBurst(2, 1, 3)
	require.Len(t, ps.P, 24)
	for i := range ps.P {
		assert.Equal(t, ParticleSpark, ps.P[i].Kind)
		assert.Equal(t, 2.0, ps.P[i].X)
		assert.Equal(t, 3.0, ps.P[i].Z)
	}
}

func TestAmbientSpawnsByTimeOfDay(t *testing.T) {
	// Full night: fireflies only.
	ps := NewParticleSystem(1000, 1)
	ps.SpawnAmbient(2.0, 0, 0, 1)
	for i := range ps.P {
		assert.Equal(t, ParticleFirefly, ps.P[i].Kind)
	}
	assert.NotEmpty(t, ps.P)

	// Full day: leaves only.
	ps = NewParticleSystem(1000, 1)
	ps.SpawnAmbient(2.0, 0, 0, 0)
	for i := range ps.P {
		assert.Equal(t, ParticleLeaf, ps.P[i].Kind)
	}
	assert.NotEmpty(t, ps.P)
}

func TestRenderDataCullsByDistance(t *testing.T) {
	ps := NewParticleSystem(10, 1)
	ps.Add(Particle{X: 0, Y: 1, Z: 0, Size: 0.1, MaxLife: 10})
	ps.Add(Particle{X: ParticleCullDistance * 2, Y: 1, Z: 0, Size: 0.1, MaxLife: 10})

	buf := ps.RenderData(nil, 0, 0)
	assert.Len(t, buf, 8, "one particle, eight floats")
}
