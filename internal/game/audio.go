package game

import (
	"io"
	"math"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// SoundKind identifies the one-shot sound effects.
type SoundKind int

const (
	SoundCollect SoundKind = iota
	SoundDiscover
	SoundAchievement
	SoundFootstep
	SoundShutter
)

// AudioSystem manages the oto context, one-shot effects and the looping
// ambient bed. Init failure is non-fatal; the walk continues silently.
type AudioSystem struct {
	ctx           *oto.Context
	ready         chan struct{}
	ambientPlayer oto.Player
}

var globalAudio *AudioSystem

var sfxVolume = 0.5

// Ambient layer gains, written by the update loop each frame and read by
// the streaming ambient reader. Stored as Float64bits for atomic access
// from the player's pull goroutine.
var (
	ambWindGain    atomic.Uint64
	ambBirdGain    atomic.Uint64
	ambCricketGain atomic.Uint64
)

// InitAudio initializes the audio system.
func InitAudio() error {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return err
	}
	globalAudio = &AudioSystem{ctx: ctx, ready: ready}
	return nil
}

// StartAmbient begins the looping wind/birdsong/cricket bed.
func StartAmbient() {
	if globalAudio == nil {
		return
	}
	<-globalAudio.ready
	p := globalAudio.ctx.NewPlayer(&ambientReader{seed: 0xA3B1E47})
	p.SetVolume(0.35)
	p.Play()
	globalAudio.ambientPlayer = p
}

// SetAmbientGains updates the layer mix; called once per frame from the
// day/night cycle.
func SetAmbientGains(wind, birds, crickets float64) {
	ambWindGain.Store(math.Float64bits(clampF(wind, 0, 1)))
	ambBirdGain.Store(math.Float64bits(clampF(birds, 0, 1)))
	ambCricketGain.Store(math.Float64bits(clampF(crickets, 0, 1)))
}

// PlaySound plays a procedurally generated one-shot effect.
func PlaySound(kind SoundKind) {
	PlaySoundWithGain(kind, 1.0)
}

func PlaySoundWithGain(kind SoundKind, gain float64) {
	if globalAudio == nil || gain <= 0 {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}
	samples := generateSound(kind)
	if len(samples) == 0 {
		return
	}
	go func() {
		reader := &soundReader{data: samples}
		player := globalAudio.ctx.NewPlayer(reader)
		player.SetVolume(sfxVolume * clampF(gain, 0, 1))
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// ---- Synth helpers -------------------------------------------------------

func makeBuf(n int) []byte { return make([]byte, n*8) }

func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

// ---- Sound effects -------------------------------------------------------

func generateSound(kind SoundKind) []byte {
	switch kind {
	case SoundCollect:
		return genCollectChime()
	case SoundDiscover:
		return genDiscoverBell()
	case SoundAchievement:
		return genAchievementArp()
	case SoundFootstep:
		return genFootstep()
	case SoundShutter:
		return genShutter()
	}
	return nil
}

// genCollectChime is a bright two-partial ping sweeping up.
func genCollectChime() []byte {
	n := int(0.25 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.4, 0.2, 0.4)
		freq := 880 + 220*p
		s := math.Sin(2*math.Pi*freq*t) * env * 0.4
		s += math.Sin(2*math.Pi*freq*2*t) * env * 0.12
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genDiscoverBell is a slower, lower bell with a long tail.
func genDiscoverBell() []byte {
	n := int(0.9 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := math.Exp(-p * 4)
		s := math.Sin(2*math.Pi*523.25*t) * env * 0.35
		s += math.Sin(2*math.Pi*659.25*t) * env * 0.2
		s += math.Sin(2*math.Pi*1318.5*t) * env * env * 0.08
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genAchievementArp is a quick rising three-note arpeggio.
func genAchievementArp() []byte {
	n := int(0.6 * SampleRate)
	buf := makeBuf(n)
	notes := []float64{523.25, 659.25, 783.99}
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		note := notes[clamp(int(p*3), 0, 2)]
		local := math.Mod(p*3, 1)
		env := adsr(local, 0.05, 0.3, 0.4, 0.3)
		s := math.Sin(2*math.Pi*note*t) * env * 0.35
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genFootstep is a short lowpassed noise thud.
func genFootstep() []byte {
	n := int(0.07 * SampleRate)
	buf := makeBuf(n)
	seed := uint64(97531)
	lp := 0.0
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)
		env := math.Exp(-p * 14)
		lp = lp*0.92 + lcg(&seed)*0.08
		putStereoF32(buf, i, softSat(lp*env*0.8))
	}
	return buf
}

// genShutter is a tight click pair for photo mode.
func genShutter() []byte {
	n := int(0.08 * SampleRate)
	buf := makeBuf(n)
	seed := uint64(2468)
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)
		env := math.Exp(-p * 28)
		if p > 0.5 {
			env = math.Exp(-(p - 0.5) * 28 * 2)
		}
		putStereoF32(buf, i, softSat(lcg(&seed)*env*0.5))
	}
	return buf
}

// ---- Ambient bed ---------------------------------------------------------

// ambientReader streams an endless mix of wind noise, daytime bird chirps
// and nighttime crickets. Layer gains come from the atomics above.
type ambientReader struct {
	t    float64
	seed uint64
	lp   float64

	chirpT    float64 // remaining chirp time
	chirpF    float64
	nextChirp float64
}

func (a *ambientReader) Read(p []byte) (int, error) {
	samples := len(p) / 8
	if samples == 0 {
		return 0, nil
	}
	wind := math.Float64frombits(ambWindGain.Load())
	birds := math.Float64frombits(ambBirdGain.Load())
	crickets := math.Float64frombits(ambCricketGain.Load())

	dt := 1.0 / SampleRate
	for i := 0; i < samples; i++ {
		a.t += dt

		// Wind: heavily lowpassed noise with a slow swell.
		a.lp = a.lp*0.995 + lcg(&a.seed)*0.005
		swell := 0.7 + 0.3*math.Sin(a.t*0.23)
		s := a.lp * 6.0 * swell * wind

		// Birds: sparse descending chirps.
		a.nextChirp -= dt
		if a.nextChirp <= 0 && birds > 0.05 {
			a.chirpT = 0.12
			a.chirpF = 2200 + lcg(&a.seed)*600
			a.nextChirp = 1.5 + math.Abs(lcg(&a.seed))*4.0
		}
		if a.chirpT > 0 {
			cp := 1.0 - a.chirpT/0.12
			f := a.chirpF * (1.0 - 0.25*cp)
			s += math.Sin(2*math.Pi*f*a.t) * math.Sin(cp*math.Pi) * 0.10 * birds
			a.chirpT -= dt
		}

		// Crickets: steady amplitude-modulated tone.
		tick := math.Sin(a.t*2*math.Pi*31)*0.5 + 0.5
		s += math.Sin(2*math.Pi*4200*a.t) * tick * tick * 0.05 * crickets

		putStereoF32(p, i, softSat(s))
	}
	return samples * 8, nil
}
