package core

import "time"

// MaxFrameDelta caps a single frame's delta so long pauses (suspended
// terminals, minimised windows) do not destabilise the simulation.
const MaxFrameDelta = 33 * time.Millisecond

// Clock supplies the current time to the scheduling loop.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock is a clock that only moves when told to. Used for headless
// runs and deterministic tests.
type ManualClock struct {
	now time.Time
}

// NewManualClock creates a manual clock starting at the given time.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the clock's current time.
func (c *ManualClock) Now() time.Time {
	return c.now
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// FrameClock converts successive clock readings into frame deltas in
// seconds, clamped to an upper bound. There is no lower bound.
type FrameClock struct {
	clock    Clock
	last     time.Time
	started  bool
	maxDelta time.Duration
}

// NewFrameClock creates a frame clock reading from c with the default cap.
func NewFrameClock(c Clock) *FrameClock {
	return &FrameClock{clock: c, maxDelta: MaxFrameDelta}
}

// SetMaxDelta overrides the per-frame cap.
func (f *FrameClock) SetMaxDelta(d time.Duration) {
	f.maxDelta = d
}

// Restart forgets the previous reading so the next Tick reports zero.
// Called when a run starts so menu idle time is not simulated.
func (f *FrameClock) Restart() {
	f.last = f.clock.Now()
	f.started = true
}

// Tick returns the seconds elapsed since the previous Tick, clamped.
// The first Tick after construction returns 0.
func (f *FrameClock) Tick() float64 {
	now := f.clock.Now()
	if !f.started {
		f.last = now
		f.started = true
		return 0
	}

	elapsed := now.Sub(f.last)
	f.last = now
	if elapsed < 0 {
		elapsed = 0
	}
	if f.maxDelta > 0 && elapsed > f.maxDelta {
		elapsed = f.maxDelta
	}
	return elapsed.Seconds()
}
