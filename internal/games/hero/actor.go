package hero

import (
	"github.com/vovakirdan/flappy-hero/internal/config"
	"github.com/vovakirdan/flappy-hero/internal/core"
)

// Actor is the player-controlled hero. X never changes during a run.
type Actor struct {
	X, Y    float64
	VY      float64
	Radius  float64
	Charges int     // Immunity charges
	Shield  float64 // Remaining immunity display time, seconds
}

// newActor places the hero at mid-height with no velocity.
func newActor(cfg config.HeroConfig) Actor {
	return Actor{
		X:      cfg.Hero.X,
		Y:      cfg.World.FloorY() / 2,
		Radius: cfg.Hero.Radius,
	}
}

// Circle returns the hero's collision body.
func (a *Actor) Circle() core.Circle {
	return core.Circle{X: a.X, Y: a.Y, R: a.Radius}
}

// Integrate applies gravity and moves the hero by one step.
func (a *Actor) Integrate(gravity, dt float64) {
	a.VY += gravity * dt
	a.Y += a.VY * dt
}

// Jump replaces the vertical velocity with the jump impulse.
func (a *Actor) Jump(impulse float64) {
	a.VY = impulse
}

// ClampCeiling stops the hero at the top edge.
func (a *Actor) ClampCeiling() {
	if a.Y-a.Radius < 0 {
		a.Y = a.Radius
		a.VY = 0
	}
}

// BelowFloor reports whether the hero has crossed the floor line.
func (a *Actor) BelowFloor(floor float64) bool {
	return a.Y+a.Radius > floor
}

// Absorb spends one immunity charge. It returns false when none is held.
func (a *Actor) Absorb() bool {
	if a.Charges <= 0 {
		return false
	}
	a.Charges--
	return true
}

// Shielded reports whether the immunity indicator should be shown.
func (a *Actor) Shielded() bool {
	return a.Charges > 0 || a.Shield > 0
}

// bounceOffFloor lifts the hero just above the floor with a damped jump.
func (a *Actor) bounceOffFloor(floor float64, p config.PhysicsConfig) {
	a.Y = floor - a.Radius - 1
	a.VY = p.JumpImpulse * p.FloorKick
}

// capFall limits downward velocity after an absorbed obstacle hit.
func (a *Actor) capFall(limit float64) {
	a.VY = min(a.VY, limit)
}
