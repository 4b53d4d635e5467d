package game

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	log "github.com/sirupsen/logrus"
)

// Run owns the whole session: window, world generation, the system update
// order, and the render passes. Window or GL init failure is fatal; audio
// failure is not.
func Run() {
	runtime.LockOSThread()

	window, err := initWindow()
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}

	if err := InitAudio(); err != nil {
		log.WithError(err).Warn("audio init failed, continuing without sound")
	} else {
		go func() {
			time.Sleep(100 * time.Millisecond) // let the audio context settle
			StartAmbient()
		}()
	}

	// Seed from environment or clock.
	seed := uint64(time.Now().UnixNano())
	if s := os.Getenv("STROLL_SEED"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			seed = v
		}
	}

	world := NewWorld(seed)
	world.GenerateAll()
	log.WithFields(log.Fields{
		"seed":      world.Seed(),
		"buildings": len(world.Buildings),
		"windows":   world.Windows.Total(),
		"trees":     len(world.Trees),
		"benches":   len(world.Benches),
		"lamps":     len(world.Lamps),
	}).Info("city generated")

	rend, err := NewRenderer()
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()
	rend.UploadStatic(world)

	player := NewPlayer()
	session := NewSession()
	npcs := NewNPCSystem(seed ^ 0xFED)
	npcs.Spawn(world, NPCCount)
	wildlife := NewWildlifeSystem(seed ^ 0xA111)
	wildlife.Spawn(world, BirdCount, CatCount)
	collect := NewCollectibleSystem(seed)
	collect.Spawn(world)
	challenges := NewChallengeSystem()
	achievements := NewAchievementSystem()
	particles := NewParticleSystem(MaxParticles, seed^0xBEAD)

	hud := NewHUD()
	input := NewInput()
	intro := &IntroMode{}
	photo := &PhotoMode{}
	meditate := &MeditateMode{}

	var cam Camera
	var lastStep float64
	var titleTimer float64

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > MaxFrameDelta {
			dt = MaxFrameDelta
		}

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		intent := input.ReadMoveIntent(window)
		shutter := false

		// Mode transitions.
		switch session.Mode {
		case ModeIntro:
			if input.JustPressed(window, glfw.KeySpace) || intro.Update(dt) {
				session.Mode = ModeWalk
				session.Notes.Push(Notification{Kind: NoteMode, Text: "welcome to the city, take a stroll"})
			}

		case ModeWalk:
			if input.JustPressed(window, glfw.KeyP) {
				session.Mode = ModePhoto
				photo.Enter()
				session.Notes.Push(Notification{Kind: NoteMode, Text: "photo mode: click to capture, P to exit"})
			} else if input.JustPressed(window, glfw.KeyM) {
				if meditate.TryEnter(world, player) {
					session.Mode = ModeMeditate
					session.Notes.Push(Notification{Kind: NoteMode, Text: "breathe. move to stand up"})
				} else {
					session.Notes.Push(Notification{Kind: NoteMode, Text: "find a bench to meditate"})
				}
			}

		case ModePhoto:
			if input.JustPressed(window, glfw.KeyP) {
				session.Mode = ModeWalk
			}
			if input.JustPressed(window, glfw.KeyEnter) || input.JustClicked(window, glfw.MouseButtonLeft) {
				shutter = true
			}

		case ModeMeditate:
			if meditate.WantsExit(intent) || input.JustPressed(window, glfw.KeyM) {
				session.Mode = ModeWalk
			}
		}

		// Simulation. The clock and ambient systems run in every mode so
		// the city stays alive behind the camera.
		session.Update(dt)

		switch session.Mode {
		case ModeWalk:
			player.Update(dt, intent, world.Field)
		case ModePhoto:
			// Look only; the photographer's feet stay planted.
			look := MoveIntent{LookDX: intent.LookDX, LookDY: intent.LookDY}
			player.Update(dt, look, world.Field)
			photo.Update(dt)
		case ModeMeditate:
			meditate.Update(dt)
		}
		session.WalkedMeters = player.Steps

		session.Notes.Push(npcs.Update(dt, player.X, player.Z)...)
		session.Notes.Push(wildlife.Update(dt, world, player.X, player.Z)...)
		if session.Mode == ModeWalk {
			session.Notes.Push(collect.Update(dt, player.X, player.Z, session, particles)...)
		}
		session.Notes.Push(challenges.Update(session, wildlife)...)
		session.Notes.Push(achievements.Update(session, collect, challenges)...)

		ambient, _, _, _ := SunCycleLight(session.Clock)
		night := NightIntensityFromAmbient(ambient)
		particles.SpawnAmbient(dt, player.X, player.Z, night)
		particles.Update(dt)

		SetAmbientGains(AmbientAudioGains(session.Clock))

		// Footsteps keyed off walked distance, not time.
		if player.Steps-lastStep > 1.9 {
			lastStep = player.Steps
			PlaySoundWithGain(SoundFootstep, 0.35)
		}

		// Surface this frame's notifications.
		notes := session.Notes.Drain()
		for _, n := range notes {
			switch n.Kind {
			case NoteCollect:
				PlaySound(SoundCollect)
			case NoteDiscovery:
				PlaySound(SoundDiscover)
			case NoteAchievement, NoteChallenge:
				PlaySound(SoundAchievement)
			}
		}
		hud.Push(notes)
		hud.Update(dt)

		// Camera per mode.
		switch session.Mode {
		case ModeIntro:
			cam = intro.CameraPose()
		case ModeMeditate:
			cam = meditate.CameraPose()
		default:
			cam.FromPlayer(player, 0)
		}

		// Render.
		rend.BeginFrame(&cam, fbW, fbH, session.Clock)
		rend.DrawWorld()
		rend.DrawDynamic(npcs, wildlife, collect)
		rend.DrawParticles(particles, player.X, player.Z)

		// Capture before the letterbox bars so photos come out clean.
		if shutter {
			if _, err := SaveScreenshot(fbW, fbH); err != nil {
				log.WithError(err).Error("screenshot failed")
			} else {
				session.Screenshots++
				PlaySound(SoundShutter)
			}
		}

		switch session.Mode {
		case ModePhoto:
			photo.Draw(rend)
		case ModeWalk:
			hud.Draw(rend, fbW, fbH)
		}

		titleTimer -= dt
		if titleTimer <= 0 {
			titleTimer = 0.25
			window.SetTitle(hud.TitleLine(session, collect))
		}

		window.SwapBuffers()
	}
}
