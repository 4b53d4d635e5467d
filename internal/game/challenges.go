package game

import "fmt"

// Challenge tracks one cumulative goal. Progress only grows; Done latches.
type Challenge struct {
	Name   string
	Target int
	Done   bool

	progress func(s *Session, ws *WildlifeSystem) int
}

// ChallengeSystem evaluates the fixed challenge set once per frame against
// session counters. Cheap enough that no dirty tracking is worth it.
type ChallengeSystem struct {
	C []Challenge
}

func NewChallengeSystem() *ChallengeSystem {
	return &ChallengeSystem{C: []Challenge{
		{Name: "Stretch your legs: walk 500m", Target: 500,
			progress: func(s *Session, _ *WildlifeSystem) int { return int(s.WalkedMeters) }},
		{Name: "Collector: find 10 orbs", Target: 10,
			progress: func(s *Session, _ *WildlifeSystem) int { return s.OrbsFound }},
		{Name: "Tourist: discover 3 landmarks", Target: 3,
			progress: func(s *Session, _ *WildlifeSystem) int { return s.LandmarksFound }},
		{Name: "Naturalist: spot 5 animals", Target: 5,
			progress: func(_ *Session, ws *WildlifeSystem) int { return ws.SpottedCount() }},
		{Name: "Night owl: stay out past midnight", Target: 1,
			progress: func(s *Session, _ *WildlifeSystem) int { return s.MidnightsSeen }},
	}}
}

func (ch *ChallengeSystem) Update(session *Session, wildlife *WildlifeSystem) []Notification {
	var notes []Notification
	for i := range ch.C {
		c := &ch.C[i]
		if c.Done {
			continue
		}
		if c.progress(session, wildlife) >= c.Target {
			c.Done = true
			notes = append(notes, Notification{
				Kind: NoteChallenge,
				Text: fmt.Sprintf("Challenge complete: %s", c.Name),
			})
		}
	}
	return notes
}

func (ch *ChallengeSystem) CompletedCount() int {
	n := 0
	for i := range ch.C {
		if ch.C[i].Done {
			n++
		}
	}
	return n
}
