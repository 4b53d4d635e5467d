package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChallengesLatchOnce(t *testing.T) {
	ch := NewChallengeSystem()
	ws := NewWildlifeSystem(1)
	s := NewSession()

	assert.Empty(t, ch.Update(s, ws))
	assert.Equal(t, 0, ch.CompletedCount())

	s.WalkedMeters = 500
	notes := ch.Update(s, ws)
	require.Len(t, notes, 1)
	assert.Equal(t, NoteChallenge, notes[0].Kind)
	assert.Contains(t, notes[0].Text, "walk 500m")
	assert.Equal(t, 1, ch.CompletedCount())

	// Progress never un-completes, and completion never re-fires.
	for i := 0; i < 10; i++ {
		assert.Empty(t, ch.Update(s, ws))
	}
	assert.Equal(t, 1, ch.CompletedCount())
}

func TestChallengesIndependent(t *testing.T) {
	ch := NewChallengeSystem()
	ws := NewWildlifeSystem(1)
	s := NewSession()

	s.OrbsFound = 10
	s.LandmarksFound = 3
	notes := ch.Update(s, ws)
	assert.Len(t, notes, 2, "both thresholds fire in the same frame")
	assert.Equal(t, 2, ch.CompletedCount())
}

func TestChallengeMidnight(t *testing.T) {
	ch := NewChallengeSystem()
	ws := NewWildlifeSystem(1)
	s := NewSession()

	s.MidnightsSeen = 1
	notes := ch.Update(s, ws)
	require.Len(t, notes, 1)
	assert.Contains(t, notes[0].Text, "midnight")
}

func TestAchievementsLatchOnce(t *testing.T) {
	as := NewAchievementSystem()
	ch := NewChallengeSystem()
	cs := NewCollectibleSystem(1)
	cs.Orbs = []Collectible{{X: 0, Z: 0}}
	s := NewSession()

	assert.Empty(t, as.Update(s, cs, ch))

	s.WalkedMeters = 10
	notes := as.Update(s, cs, ch)
	require.Len(t, notes, 1)
	assert.Equal(t, "Achievement: First Steps", notes[0].Text)

	assert.Empty(t, as.Update(s, cs, ch), "done entries never re-check")
}

func TestAchievementCompletionist(t *testing.T) {
	as := NewAchievementSystem()
	ch := NewChallengeSystem()
	cs := NewCollectibleSystem(1)
	cs.Orbs = []Collectible{{Collected: true}, {Collected: true}}
	s := NewSession()
	s.OrbsFound = 2

	notes := as.Update(s, cs, ch)
	texts := make([]string, 0, len(notes))
	for _, n := range notes {
		texts = append(texts, n.Text)
	}
	assert.Contains(t, texts, "Achievement: Completionist")
	assert.Contains(t, texts, "Achievement: Shiny")
}

func TestAchievementCompletionistNeedsOrbs(t *testing.T) {
	as := NewAchievementSystem()
	ch := NewChallengeSystem()
	cs := NewCollectibleSystem(1) // no orbs at all
	s := NewSession()

	for _, n := range as.Update(s, cs, ch) {
		assert.NotEqual(t, "Achievement: Completionist", n.Text,
			"an empty orb set must not count as collected-everything")
	}
}
