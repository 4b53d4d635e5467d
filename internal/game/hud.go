package game

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// toast is one on-screen notification bar. With no font atlas in the
// asset-free build, the bar carries the note's kind colour while the text
// itself goes to the log and the window title.
type toast struct {
	note Notification
	ttl  float64
}

const (
	toastDuration = 3.5
	maxToasts     = 5
)

type HUD struct {
	toasts []toast
	// Latest headline notification, surfaced through the window title.
	Headline    string
	headlineTTL float64
}

func NewHUD() *HUD {
	return &HUD{}
}

var noteColors = map[NoteKind]RGB{
	NoteCollect:     Palette.Orb,
	NoteDiscovery:   Palette.Landmark,
	NoteAchievement: {R: 255, G: 236, B: 120},
	NoteChallenge:   {R: 150, G: 230, B: 150},
	NoteThought:     {R: 200, G: 200, B: 210},
	NoteWildlife:    {R: 170, G: 210, B: 240},
	NoteMode:        {R: 235, G: 235, B: 235},
}

// Push adds drained notifications as toasts and logs their text.
func (h *HUD) Push(notes []Notification) {
	for _, n := range notes {
		log.WithFields(log.Fields{"kind": int(n.Kind)}).Info(n.Text)
		h.toasts = append(h.toasts, toast{note: n, ttl: toastDuration})
		if len(h.toasts) > maxToasts {
			h.toasts = h.toasts[len(h.toasts)-maxToasts:]
		}
		h.Headline = n.Text
		h.headlineTTL = toastDuration
	}
}

func (h *HUD) Update(dt float64) {
	live := h.toasts[:0]
	for _, t := range h.toasts {
		t.ttl -= dt
		if t.ttl > 0 {
			live = append(live, t)
		}
	}
	h.toasts = live
	if h.headlineTTL > 0 {
		h.headlineTTL -= dt
		if h.headlineTTL <= 0 {
			h.Headline = ""
		}
	}
}

// Draw renders the crosshair and toast bars. Pure quads; everything here
// is NDC so framebuffer size only matters for the crosshair aspect.
func (h *HUD) Draw(r *Renderer, fbW, fbH int) {
	aspect := float32(fbW) / float32(fbH)

	// Crosshair: two thin strips centered on screen.
	ch := float32(0.002)
	cw := float32(0.018)
	r.DrawHUDRect(-cw/2, -ch/2, cw, ch, 1, 1, 1, 0.7)
	r.DrawHUDRect(-ch/(2*aspect), -cw*aspect/2, ch/aspect, cw*aspect, 1, 1, 1, 0.7)

	// Toast bars stack upward from the lower-left corner, fading out.
	y := float32(-0.9)
	for i := len(h.toasts) - 1; i >= 0; i-- {
		t := &h.toasts[i]
		alpha := float32(0.85)
		if t.ttl < 0.6 {
			alpha *= float32(t.ttl / 0.6)
		}
		cr, cg, cb := noteColors[t.note.Kind].Vec3()
		r.DrawHUDRect(-0.96, y, 0.45, 0.045, cr, cg, cb, alpha)
		y += 0.065
	}
}

// TitleLine builds the window-title status string: score, orbs left,
// journal counters, and the latest headline when one is live.
func (h *HUD) TitleLine(s *Session, cs *CollectibleSystem) string {
	line := fmt.Sprintf("%s — score %d | orbs %d/%d | landmarks %d/%d",
		WindowTitle, s.Score,
		s.OrbsFound, len(cs.Orbs),
		s.LandmarksFound, len(cs.Landmarks))
	if h.Headline != "" {
		line += " | " + h.Headline
	}
	return line
}
