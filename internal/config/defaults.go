package config

import (
	_ "embed"
)

//go:embed defaults/hero.yaml
var defaultHeroYAML []byte

// DefaultHeroConfig returns the hardcoded default configuration.
// It mirrors defaults/hero.yaml and is used when the embedded file cannot be parsed.
func DefaultHeroConfig() HeroConfig {
	return HeroConfig{
		World: WorldConfig{
			Width:        800,
			Height:       600,
			GroundHeight: 40,
		},
		Physics: PhysicsConfig{
			Gravity:       1500,
			JumpImpulse:   -520,
			FloorKick:     0.6,
			ShieldMaxFall: 120,
		},
		Hero: HeroBody{
			X:      120,
			Radius: 18,
		},
		Obstacles: ObstacleConfig{
			Width:       70,
			Margin:      90,
			EntryOffset: 30,
			PruneX:      -20,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			RampDuration: 45,
			SpeedStart:   220,
			SpeedMax:     420,
			SpawnStart:   1.55,
			SpawnMin:     1.05,
			GapStart:     175,
			GapMin:       130,
		},
		Abilities: AbilitiesConfig{
			Enabled:     true,
			KeepUnlocks: false,
			Blast: AbilityConfig{
				UnlockScore: 5,
				Cooldown:    8,
			},
			Shield: ShieldConfig{
				AbilityConfig: AbilityConfig{UnlockScore: 10, Cooldown: 12},
				Charges:       1,
				Display:       2.5,
			},
			Slow: SlowConfig{
				AbilityConfig: AbilityConfig{UnlockScore: 15, Cooldown: 15},
				Duration:      3.0,
				Factor:        0.65,
			},
		},
		Audio: AudioConfig{
			MasterGain: 0.18,
			BaseBPM:    90,
			MaxBPM:     170,
			Easing:     0.08,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultHeroYAML
}
