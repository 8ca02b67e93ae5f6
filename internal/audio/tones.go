package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

// Tone is a short sine blip.
type Tone struct {
	Freq     float64
	Duration time.Duration
	Amp      float64
}

// Cue identifies a one-shot sound effect.
type Cue int

const (
	CueJump Cue = iota
	CueHit
	CueAbility
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueJump:
		return "jump"
	case CueHit:
		return "hit"
	case CueAbility:
		return "ability"
	default:
		return "unknown"
	}
}

// Tone returns the blip played for the cue.
func (c Cue) Tone() Tone {
	switch c {
	case CueJump:
		return Tone{Freq: 740, Duration: 50 * time.Millisecond, Amp: 0.8}
	case CueHit:
		return Tone{Freq: 220, Duration: 120 * time.Millisecond, Amp: 1.0}
	case CueAbility:
		return Tone{Freq: 520, Duration: 80 * time.Millisecond, Amp: 0.9}
	default:
		return Tone{}
	}
}

// Ambient beat voices.
var (
	kickTone = Tone{Freq: 140, Duration: 50 * time.Millisecond, Amp: 0.9}
	hatTone  = Tone{Freq: 860, Duration: 30 * time.Millisecond, Amp: 0.35}
	hatDelay = 70 * time.Millisecond
)

// Streamer returns a finite streamer that plays the tone with a linear fade-out.
func (t Tone) Streamer(sr beep.SampleRate) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, t.Freq)
	if err != nil {
		return nil, err
	}
	n := sr.N(t.Duration)
	return &envelope{src: beep.Take(n, sine), total: n, amp: t.Amp}, nil
}

// envelope fades its source linearly from amp to zero over total samples.
type envelope struct {
	src   beep.Streamer
	total int
	pos   int
	amp   float64
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.src.Stream(samples)
	for i := 0; i < n; i++ {
		g := e.amp * (1 - float64(e.pos)/float64(e.total))
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error {
	return e.src.Err()
}

// voice renders one decaying sine at a fixed offset inside a beat.
// It is evaluated sample by sample so the beat can change length between beats.
type voice struct {
	tone   Tone
	offset int // Samples after the beat start
	length int
	step   float64 // Phase increment per sample
}

func newVoice(t Tone, offset time.Duration, sr beep.SampleRate) voice {
	return voice{
		tone:   t,
		offset: sr.N(offset),
		length: sr.N(t.Duration),
		step:   t.Freq / float64(sr),
	}
}

// sample returns the voice's value at position pos within the beat.
func (v voice) sample(pos int) float64 {
	i := pos - v.offset
	if i < 0 || i >= v.length {
		return 0
	}
	g := v.tone.Amp * (1 - float64(i)/float64(v.length))
	return g * math.Sin(2*math.Pi*v.step*float64(i))
}
