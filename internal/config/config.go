// Package config provides YAML-based game configuration loading and
// the difficulty curve for Flappy Hero.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned (wrapped) when a loaded config fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// HeroConfig contains all configuration for the game.
type HeroConfig struct {
	World      WorldConfig      `yaml:"world"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Hero       HeroBody         `yaml:"hero"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Abilities  AbilitiesConfig  `yaml:"abilities"`
	Audio      AudioConfig      `yaml:"audio"`
}

// WorldConfig defines the playfield in world units.
type WorldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"`
}

// FloorY returns the y coordinate of the floor line.
func (w WorldConfig) FloorY() float64 {
	return w.Height - w.GroundHeight
}

// PhysicsConfig defines the actor's vertical motion.
type PhysicsConfig struct {
	Gravity       float64 `yaml:"gravity"`         // Downward acceleration, units/s²
	JumpImpulse   float64 `yaml:"jump_impulse"`    // Velocity set by a jump (negative = up)
	FloorKick     float64 `yaml:"floor_kick"`      // Fraction of the jump impulse applied when a shield absorbs the floor
	ShieldMaxFall float64 `yaml:"shield_max_fall"` // Downward velocity cap after a shield absorbs an obstacle hit
}

// HeroBody defines the actor's fixed geometry.
type HeroBody struct {
	X      float64 `yaml:"x"`
	Radius float64 `yaml:"radius"`
}

// ObstacleConfig defines obstacle geometry and lifetime.
type ObstacleConfig struct {
	Width       float64 `yaml:"width"`
	Margin      float64 `yaml:"margin"`       // Minimum distance between gap and top/floor
	EntryOffset float64 `yaml:"entry_offset"` // Spawn x beyond the right edge
	PruneX      float64 `yaml:"prune_x"`      // Obstacles whose right edge is left of this are removed
}

// DifficultyConfig defines the ramp from start values to bound values.
type DifficultyConfig struct {
	Enabled      bool    `yaml:"enabled"`       // false holds ramp progress at initial_level
	InitialLevel float64 `yaml:"initial_level"` // Ramp progress at t=0 (0.0 = easy, 1.0 = hard)
	RampDuration float64 `yaml:"ramp_duration"` // Survival time at which the bounds are reached
	SpeedStart   float64 `yaml:"speed_start"`
	SpeedMax     float64 `yaml:"speed_max"`
	SpawnStart   float64 `yaml:"spawn_start"`
	SpawnMin     float64 `yaml:"spawn_min"`
	GapStart     float64 `yaml:"gap_start"`
	GapMin       float64 `yaml:"gap_min"`
}

// AbilityConfig holds the settings every ability shares.
type AbilityConfig struct {
	UnlockScore int     `yaml:"unlock_score"`
	Cooldown    float64 `yaml:"cooldown"`
}

// ShieldConfig configures the collision-immunity ability.
type ShieldConfig struct {
	AbilityConfig `yaml:",inline"`
	Charges       int     `yaml:"charges"`
	Display       float64 `yaml:"display"` // Seconds the shield indicator stays visible
}

// SlowConfig configures the time-slow ability.
type SlowConfig struct {
	AbilityConfig `yaml:",inline"`
	Duration      float64 `yaml:"duration"`
	Factor        float64 `yaml:"factor"` // Multiplier applied to frame delta while active
}

// AbilitiesConfig configures the ability system.
type AbilitiesConfig struct {
	Enabled     bool          `yaml:"enabled"`
	KeepUnlocks bool          `yaml:"keep_unlocks"` // Keep unlocked abilities across runs in one session
	Blast       AbilityConfig `yaml:"blast"`
	Shield      ShieldConfig  `yaml:"shield"`
	Slow        SlowConfig    `yaml:"slow"`
}

// AudioConfig tunes the audio collaborator.
type AudioConfig struct {
	MasterGain float64 `yaml:"master_gain"`
	BaseBPM    float64 `yaml:"base_bpm"`
	MaxBPM     float64 `yaml:"max_bpm"`
	Easing     float64 `yaml:"easing"` // Fraction of the tempo gap closed per beat
}

// Validate checks the config for values the simulation cannot run with.
func (c HeroConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("%w: world size must be positive", ErrInvalidConfig)
	case c.World.GroundHeight < 0 || c.World.GroundHeight >= c.World.Height:
		return fmt.Errorf("%w: ground_height must be in [0, height)", ErrInvalidConfig)
	case c.Hero.Radius <= 0:
		return fmt.Errorf("%w: hero radius must be positive", ErrInvalidConfig)
	case c.Obstacles.Width <= 0:
		return fmt.Errorf("%w: obstacle width must be positive", ErrInvalidConfig)
	case c.Difficulty.RampDuration <= 0:
		return fmt.Errorf("%w: ramp_duration must be positive", ErrInvalidConfig)
	case c.Difficulty.SpawnMin <= 0 || c.Difficulty.SpawnStart < c.Difficulty.SpawnMin:
		return fmt.Errorf("%w: spawn interval must satisfy 0 < spawn_min <= spawn_start", ErrInvalidConfig)
	case c.Difficulty.GapMin <= 0 || c.Difficulty.GapStart < c.Difficulty.GapMin:
		return fmt.Errorf("%w: gap must satisfy 0 < gap_min <= gap_start", ErrInvalidConfig)
	case c.Difficulty.SpeedMax < c.Difficulty.SpeedStart:
		return fmt.Errorf("%w: speed_max must be >= speed_start", ErrInvalidConfig)
	case c.Difficulty.InitialLevel < 0 || c.Difficulty.InitialLevel > 1:
		return fmt.Errorf("%w: initial_level must be in [0, 1]", ErrInvalidConfig)
	case c.World.FloorY()-2*c.Obstacles.Margin < c.Difficulty.GapStart:
		return fmt.Errorf("%w: playfield too short for gap_start with the given margin", ErrInvalidConfig)
	case c.Abilities.Slow.Factor <= 0 || c.Abilities.Slow.Factor > 1:
		return fmt.Errorf("%w: slow factor must be in (0, 1]", ErrInvalidConfig)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyPreset(cfg *HeroConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}

// ApplyClassic turns the config into the original ability-free game.
func ApplyClassic(cfg *HeroConfig) {
	cfg.Abilities.Enabled = false
}
