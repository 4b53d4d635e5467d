package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionStartsInIntro(t *testing.T) {
	s := NewSession()
	assert.Equal(t, ModeIntro, s.Mode)
	assert.Equal(t, 0, s.Score)
}

func TestSessionCountsMidnights(t *testing.T) {
	s := NewSession()
	// Midnight sits at phase 0.75 of the cycle.
	for i := 0; i < int(DayCyclePeriod*0.8); i++ {
		s.Update(1.0)
	}
	assert.Equal(t, 1, s.MidnightsSeen)

	// A second full day adds exactly one more.
	for i := 0; i < int(DayCyclePeriod); i++ {
		s.Update(1.0)
	}
	assert.Equal(t, 2, s.MidnightsSeen)
}

func TestSessionClockAccumulates(t *testing.T) {
	s := NewSession()
	for i := 0; i < 100; i++ {
		s.Update(0.016)
	}
	assert.InDelta(t, 1.6, s.Clock, 1e-9)
}

func TestNotificationQueueOrder(t *testing.T) {
	var q NotificationQueue
	q.Push(Notification{Text: "a"})
	q.Push(Notification{Text: "b"}, Notification{Text: "c"})

	notes := q.Drain()
	assert.Len(t, notes, 3)
	assert.Equal(t, "a", notes[0].Text)
	assert.Equal(t, "b", notes[1].Text)
	assert.Equal(t, "c", notes[2].Text)

	assert.Empty(t, q.Drain(), "drain empties the queue")
}
