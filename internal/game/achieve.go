package game

// Achievement latches when its threshold check first passes. Latched means
// latched: checks never run again for a done entry, so effects fire once.
type Achievement struct {
	Name string
	Done bool

	check func(s *Session, cs *CollectibleSystem, ch *ChallengeSystem) bool
}

type AchievementSystem struct {
	A []Achievement
}

func NewAchievementSystem() *AchievementSystem {
	return &AchievementSystem{A: []Achievement{
		{Name: "First Steps", check: func(s *Session, _ *CollectibleSystem, _ *ChallengeSystem) bool {
			return s.WalkedMeters >= 10
		}},
		{Name: "Shiny", check: func(s *Session, _ *CollectibleSystem, _ *ChallengeSystem) bool {
			return s.OrbsFound >= 1
		}},
		{Name: "Completionist", check: func(_ *Session, cs *CollectibleSystem, _ *ChallengeSystem) bool {
			return len(cs.Orbs) > 0 && cs.Remaining() == 0
		}},
		{Name: "Cartographer", check: func(_ *Session, cs *CollectibleSystem, _ *ChallengeSystem) bool {
			if len(cs.Landmarks) == 0 {
				return false
			}
			for i := range cs.Landmarks {
				if !cs.Landmarks[i].Discovered {
					return false
				}
			}
			return true
		}},
		{Name: "No Stone Unturned", check: func(_ *Session, _ *CollectibleSystem, ch *ChallengeSystem) bool {
			return ch.CompletedCount() == len(ch.C)
		}},
	}}
}

func (as *AchievementSystem) Update(session *Session, collect *CollectibleSystem, challenges *ChallengeSystem) []Notification {
	var notes []Notification
	for i := range as.A {
		a := &as.A[i]
		if a.Done {
			continue
		}
		if a.check(session, collect, challenges) {
			a.Done = true
			notes = append(notes, Notification{Kind: NoteAchievement, Text: "Achievement: " + a.Name})
		}
	}
	return notes
}
