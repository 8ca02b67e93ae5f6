package core

// Snapshot is a read-only view of a game frame in world units.
// Renderers and the autopilot consume it instead of game internals.
type Snapshot struct {
	WorldW, WorldH float64
	FloorY         float64

	Actor     ActorView
	Obstacles []ObstacleView

	Phase     Phase
	Score     int
	Best      int
	Speed     float64
	Gap       float64
	Intensity float64
	Elapsed   float64 // Survival time in effective seconds

	Ability   AbilityView
	SlowLeft  float64 // Remaining slow-time, seconds
	Abilities bool    // Ability system enabled for this mode
}

// ActorView describes the hero.
type ActorView struct {
	X, Y, VY, R float64
	Charges     int
	Shielded    bool
}

// ObstacleView describes one obstacle.
type ObstacleView struct {
	X, W      float64
	GapTop    float64
	GapBottom float64
	Passed    bool
	Broken    bool
}

// AbilityView describes the equipped ability.
type AbilityView struct {
	Name          string
	Title         string
	Glyph         rune
	Unlocked      bool
	Ready         bool
	Cooldown      float64 // Remaining seconds
	Fraction      float64 // Remaining cooldown as a fraction of the full duration
	UnlockScore   int
	UnlockedCount int
}
