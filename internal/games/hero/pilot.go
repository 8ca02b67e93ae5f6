package hero

import (
	"github.com/vovakirdan/flappy-hero/internal/config"
	"github.com/vovakirdan/flappy-hero/internal/core"
)

// Pilot is a simple autopilot used by the headless simulator and the
// attract mode. It reads snapshots only, so it works with any mode.
type Pilot struct {
	Slack        float64 // How far below the target the hero may sink before flapping
	UseAbilities bool
	Retry        bool // Start a new run after game over
}

// NewPilot creates an autopilot tuned to the given physics. It flaps when the
// hero sinks half a jump height below the target so that the bounce is
// centered on the opening.
func NewPilot(p config.PhysicsConfig) *Pilot {
	slack := 14.0
	if p.Gravity > 0 {
		rise := p.JumpImpulse * p.JumpImpulse / (2 * p.Gravity)
		slack = rise/2 - 4
	}
	return &Pilot{Slack: slack, UseAbilities: true}
}

// Decide returns the inputs for the next frame.
func (p *Pilot) Decide(snap core.Snapshot) core.InputFrame {
	in := core.NewInputFrame()

	switch snap.Phase {
	case core.PhaseMenu:
		in.Set(core.ActionStart)
		return in
	case core.PhaseGameOver:
		if p.Retry {
			in.Set(core.ActionStart)
		}
		return in
	}

	target := snap.FloorY / 2
	next, ok := nextObstacle(snap)
	if ok {
		target = (next.GapTop + next.GapBottom) / 2
	}

	a := snap.Actor
	if a.Y > target+p.Slack && a.VY >= 0 {
		in.Set(core.ActionJump)
	}

	if p.UseAbilities && snap.Abilities && snap.Ability.Ready && ok && next.X-a.X < snap.WorldW/3 {
		in.Set(core.ActionUseAbility)
	}
	return in
}

// nextObstacle returns the closest obstacle the hero has not cleared yet.
func nextObstacle(snap core.Snapshot) (core.ObstacleView, bool) {
	var best core.ObstacleView
	found := false
	for _, o := range snap.Obstacles {
		if o.Passed || o.Broken || o.X+o.W < snap.Actor.X-snap.Actor.R {
			continue
		}
		if !found || o.X < best.X {
			best = o
			found = true
		}
	}
	return best, found
}
