package audio

import (
	"math"
	"sync"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/flappy-hero/internal/config"
)

// Tempo eases the ambient beat toward a target derived from intensity.
type Tempo struct {
	base, max float64
	easing    float64
	bpm       float64
}

// NewTempo creates a tempo resting at the base BPM.
func NewTempo(cfg config.AudioConfig) *Tempo {
	return &Tempo{
		base:   cfg.BaseBPM,
		max:    cfg.MaxBPM,
		easing: cfg.Easing,
		bpm:    cfg.BaseBPM,
	}
}

// Target returns the BPM the beat is heading for at intensity k in [0, 1].
func (t *Tempo) Target(k float64) float64 {
	k = math.Max(0, math.Min(1, k))
	return t.base + (t.max-t.base)*k
}

// Next closes part of the gap to the target and returns the BPM for the next beat.
func (t *Tempo) Next(k float64) float64 {
	t.bpm += (t.Target(k) - t.bpm) * t.easing
	return t.bpm
}

// BPM returns the current tempo.
func (t *Tempo) BPM() float64 {
	return t.bpm
}

// Reset returns to the base tempo.
func (t *Tempo) Reset() {
	t.bpm = t.base
}

// Beat is an endless streamer playing a kick and a hat on every beat.
// The beat length is re-evaluated at each beat start from the current intensity.
type Beat struct {
	mu        sync.Mutex
	sr        beep.SampleRate
	tempo     *Tempo
	intensity float64

	kick, hat voice
	pos       int // Sample within the current beat
	length    int // Samples in the current beat
}

// NewBeat creates the ambient beat.
func NewBeat(sr beep.SampleRate, cfg config.AudioConfig) *Beat {
	b := &Beat{
		sr:    sr,
		tempo: NewTempo(cfg),
		kick:  newVoice(kickTone, 0, sr),
		hat:   newVoice(hatTone, hatDelay, sr),
	}
	b.length = b.beatSamples(b.tempo.BPM())
	return b
}

func (b *Beat) beatSamples(bpm float64) int {
	if bpm <= 0 {
		bpm = 1
	}
	return max(int(float64(b.sr)*60/bpm), 1)
}

// SetIntensity sets the ramp progress used for the next beat.
func (b *Beat) SetIntensity(k float64) {
	b.mu.Lock()
	b.intensity = k
	b.mu.Unlock()
}

// Restart rewinds to the start of a beat at the base tempo.
func (b *Beat) Restart() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tempo.Reset()
	b.pos = 0
	b.length = b.beatSamples(b.tempo.BPM())
}

// BPM returns the current tempo.
func (b *Beat) BPM() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.tempo.BPM()
}

func (b *Beat) Stream(samples [][2]float64) (n int, ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range samples {
		if b.pos >= b.length {
			b.pos = 0
			b.length = b.beatSamples(b.tempo.Next(b.intensity))
		}
		v := b.kick.sample(b.pos) + b.hat.sample(b.pos)
		samples[i][0] = v
		samples[i][1] = v
		b.pos++
	}
	return len(samples), true
}

func (b *Beat) Err() error {
	return nil
}
