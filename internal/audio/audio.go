// Package audio plays the game's sound: one-shot cues and an ambient beat
// whose tempo follows the difficulty ramp. It uses gopxl/beep and falls
// back to a silent sink when no audio device is available.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/flappy-hero/internal/config"
	"github.com/vovakirdan/flappy-hero/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Sink receives audio requests from the game loop.
type Sink interface {
	Play(c Cue)
	StartAmbient()
	StopAmbient()
	SetIntensity(k float64)
	SetMuted(muted bool)
	Muted() bool
	Close()
}

// Dispatch forwards a simulation event to the sink.
func Dispatch(s Sink, ev core.Event) {
	switch ev.Kind {
	case core.EventJump:
		s.Play(CueJump)
	case core.EventHit:
		s.Play(CueHit)
	case core.EventAbility:
		s.Play(CueAbility)
	case core.EventAmbientStart:
		s.StartAmbient()
	case core.EventAmbientStop:
		s.StopAmbient()
	}
}

// Engine is the beep-backed sink.
// All graph mutations happen under the speaker lock.
type Engine struct {
	mu      sync.Mutex
	sr      beep.SampleRate
	mixer   *beep.Mixer
	master  *effects.Volume
	beat    *Beat
	ambient *beep.Ctrl
	muted   bool
	live    bool // Attached to the speaker
}

// newEngine builds the audio graph without touching the speaker.
func newEngine(cfg config.AudioConfig, sr beep.SampleRate) *Engine {
	mixer := &beep.Mixer{}
	beat := NewBeat(sr, cfg)
	ambient := &beep.Ctrl{Streamer: beat, Paused: true}
	mixer.Add(ambient)

	gain := cfg.MasterGain
	if gain <= 0 {
		gain = 1e-6
	}

	return &Engine{
		sr:    sr,
		mixer: mixer,
		master: &effects.Volume{
			Streamer: mixer,
			Base:     2,
			Volume:   math.Log2(gain),
		},
		beat:    beat,
		ambient: ambient,
	}
}

// Open initialises the speaker and starts streaming the mixer.
func Open(cfg config.AudioConfig) (*Engine, error) {
	e := newEngine(cfg, sampleRate)
	if err := speaker.Init(e.sr, e.sr.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: cannot init speaker: %w", err)
	}
	speaker.Play(e.master)
	e.live = true
	return e, nil
}

// OpenOrSilent returns a working engine, or a silent sink and the reason
// the speaker could not be used.
func OpenOrSilent(cfg config.AudioConfig) (Sink, error) {
	e, err := Open(cfg)
	if err != nil {
		return NewSilent(), err
	}
	return e, nil
}

// lock runs f with the graph protected from the speaker goroutine.
func (e *Engine) lock(f func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.live {
		speaker.Lock()
		defer speaker.Unlock()
	}
	f()
}

// Play mixes in a one-shot cue.
func (e *Engine) Play(c Cue) {
	s, err := c.Tone().Streamer(e.sr)
	if err != nil {
		return
	}
	e.lock(func() {
		e.mixer.Add(s)
	})
}

// StartAmbient starts the beat from its base tempo.
func (e *Engine) StartAmbient() {
	e.lock(func() {
		e.beat.Restart()
		e.ambient.Paused = false
	})
}

// StopAmbient pauses the beat.
func (e *Engine) StopAmbient() {
	e.lock(func() {
		e.ambient.Paused = true
	})
}

// SetIntensity steers the beat tempo.
func (e *Engine) SetIntensity(k float64) {
	e.beat.SetIntensity(k)
}

// SetMuted silences or restores the master output.
func (e *Engine) SetMuted(muted bool) {
	e.lock(func() {
		e.muted = muted
		e.master.Silent = muted
	})
}

// Muted reports whether output is silenced.
func (e *Engine) Muted() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.muted
}

// Close stops all sound and detaches from the speaker.
func (e *Engine) Close() {
	e.lock(func() {
		e.ambient.Paused = true
		e.mixer.Clear()
	})
	e.mu.Lock()
	if e.live {
		speaker.Clear()
		e.live = false
	}
	e.mu.Unlock()
}

// Silent is a sink that only tracks the mute flag.
type Silent struct {
	mu    sync.Mutex
	muted bool
}

// NewSilent creates a silent sink.
func NewSilent() *Silent {
	return &Silent{}
}

func (s *Silent) Play(Cue)             {}
func (s *Silent) StartAmbient()        {}
func (s *Silent) StopAmbient()         {}
func (s *Silent) SetIntensity(float64) {}
func (s *Silent) Close()               {}

func (s *Silent) SetMuted(muted bool) {
	s.mu.Lock()
	s.muted = muted
	s.mu.Unlock()
}

func (s *Silent) Muted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.muted
}
