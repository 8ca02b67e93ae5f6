package core

import (
	"math"
	"testing"
	"time"
)

func TestFrameClockFirstTickIsZero(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	fc := NewFrameClock(clock)

	clock.Advance(time.Second)
	if dt := fc.Tick(); dt != 0 {
		t.Errorf("first Tick() = %f, expected 0", dt)
	}
}

func TestFrameClockDelta(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	fc := NewFrameClock(clock)
	fc.Tick()

	clock.Advance(16 * time.Millisecond)
	if dt := fc.Tick(); math.Abs(dt-0.016) > 1e-9 {
		t.Errorf("Tick() = %f, expected 0.016", dt)
	}

	// No lower bound: a zero-length frame reports zero.
	if dt := fc.Tick(); dt != 0 {
		t.Errorf("Tick() without advancing = %f, expected 0", dt)
	}
}

func TestFrameClockClampsLongPauses(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	fc := NewFrameClock(clock)
	fc.Tick()

	clock.Advance(5 * time.Second)
	if dt := fc.Tick(); dt != MaxFrameDelta.Seconds() {
		t.Errorf("Tick() after a long pause = %f, expected %f", dt, MaxFrameDelta.Seconds())
	}

	fc.SetMaxDelta(time.Second)
	clock.Advance(5 * time.Second)
	if dt := fc.Tick(); dt != 1 {
		t.Errorf("Tick() with custom cap = %f, expected 1", dt)
	}
}

func TestFrameClockRestart(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	fc := NewFrameClock(clock)
	fc.Tick()

	clock.Advance(20 * time.Millisecond)
	fc.Restart()
	if dt := fc.Tick(); dt != 0 {
		t.Errorf("Tick() after Restart = %f, expected 0", dt)
	}
}

func TestInputFrame(t *testing.T) {
	in := InputOf(ActionJump, ActionUseAbility)
	if !in.Has(ActionJump) || !in.Has(ActionUseAbility) {
		t.Fatal("InputOf should set all given actions")
	}
	if in.Has(ActionStart) {
		t.Error("unset action should not be reported")
	}

	without := in.Without(ActionJump)
	if without.Has(ActionJump) {
		t.Error("Without should drop the action")
	}
	if !in.Has(ActionJump) {
		t.Error("Without should not modify the original frame")
	}

	in.Clear()
	if in.Has(ActionUseAbility) {
		t.Error("Clear should reset all actions")
	}

	var zero InputFrame
	if zero.Has(ActionJump) {
		t.Error("zero frame should report no actions")
	}
}
