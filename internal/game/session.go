package game

type Mode int

const (
	ModeIntro Mode = iota // cinematic flyover before control is handed over
	ModeWalk
	ModePhoto
	ModeMeditate
)

// Session is the explicit top-level game state: no ambient singletons.
// The update loop owns it and passes it into each subsystem that mutates
// score or counters.
type Session struct {
	Mode  Mode
	Score int

	// Clock accumulates simulated time and drives the day/night cycle.
	// Accumulated, never wall-clock, so throttled frames stay consistent.
	Clock float64

	// Journal counters, only ever incremented.
	OrbsFound      int
	LandmarksFound int
	WalkedMeters   float64
	MidnightsSeen  int
	Screenshots    int

	Notes NotificationQueue
}

func NewSession() *Session {
	return &Session{Mode: ModeIntro}
}

// Update advances the session clock and counts midnight crossings.
func (s *Session) Update(dt float64) {
	prev := CyclePhase(s.Clock)
	s.Clock += dt
	cur := CyclePhase(s.Clock)
	// Midnight sits at phase 0.75; detect the crossing.
	if prev < 0.75 && cur >= 0.75 {
		s.MidnightsSeen++
	}
}
