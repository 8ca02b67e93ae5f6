package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestCurveReachesBoundsExactly(t *testing.T) {
	cfg := DefaultHeroConfig().Difficulty
	curve := NewCurve(cfg)

	for _, tt := range []float64{45, 45.0001, 60, 1000, 1e9} {
		p := curve.At(tt)
		if p.Speed != cfg.SpeedMax {
			t.Errorf("At(%v).Speed = %v, expected %v", tt, p.Speed, cfg.SpeedMax)
		}
		if p.SpawnInterval != cfg.SpawnMin {
			t.Errorf("At(%v).SpawnInterval = %v, expected %v", tt, p.SpawnInterval, cfg.SpawnMin)
		}
		if p.Gap != cfg.GapMin {
			t.Errorf("At(%v).Gap = %v, expected %v", tt, p.Gap, cfg.GapMin)
		}
	}
}

func TestCurveStartValues(t *testing.T) {
	cfg := DefaultHeroConfig().Difficulty
	p := NewCurve(cfg).At(0)

	const eps = 1e-9
	if abs(p.Speed-220) > eps || abs(p.SpawnInterval-1.55) > eps || abs(p.Gap-175) > eps {
		t.Errorf("At(0) = %+v, expected start values 220/1.55/175", p)
	}
}

func TestCurveMonotonic(t *testing.T) {
	curve := NewCurve(DefaultHeroConfig().Difficulty)

	prev := curve.At(0)
	for i := 1; i <= 45000; i++ {
		tt := float64(i) / 1000
		p := curve.At(tt)
		if p.Speed < prev.Speed {
			t.Fatalf("speed decreased at t=%v: %v -> %v", tt, prev.Speed, p.Speed)
		}
		if p.SpawnInterval > prev.SpawnInterval {
			t.Fatalf("spawn interval increased at t=%v: %v -> %v", tt, prev.SpawnInterval, p.SpawnInterval)
		}
		if p.Gap > prev.Gap {
			t.Fatalf("gap increased at t=%v: %v -> %v", tt, prev.Gap, p.Gap)
		}
		prev = p
	}
}

func TestCurveProgress(t *testing.T) {
	curve := NewCurve(DefaultHeroConfig().Difficulty)

	tests := []struct {
		t, expected float64
	}{
		{-5, 0},
		{0, 0},
		{22.5, 0.5},
		{45, 1},
		{90, 1},
	}
	for _, tc := range tests {
		if got := curve.Progress(tc.t); abs(got-tc.expected) > 1e-12 {
			t.Errorf("Progress(%v) = %v, expected %v", tc.t, got, tc.expected)
		}
	}
}

func TestCurvePresets(t *testing.T) {
	cfg := DefaultHeroConfig()
	ApplyPreset(&cfg, DifficultyHard)
	curve := NewCurve(cfg.Difficulty)

	if got := curve.Progress(0); abs(got-0.7) > 1e-12 {
		t.Errorf("hard preset Progress(0) = %v, expected 0.7", got)
	}

	cfg = DefaultHeroConfig()
	cfg.Difficulty.InitialLevel = 0.3
	ApplyPreset(&cfg, DifficultyFixed)
	curve = NewCurve(cfg.Difficulty)
	if curve.IsEnabled() {
		t.Error("fixed preset should disable progression")
	}
	if got := curve.Progress(100); got != 0.3 {
		t.Errorf("fixed preset Progress(100) = %v, expected 0.3", got)
	}

	cfg = DefaultHeroConfig()
	ApplyPreset(&cfg, "")
	if cfg.Difficulty != DefaultHeroConfig().Difficulty {
		t.Error("empty preset should leave difficulty untouched")
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("normal") != DifficultyNormal {
		t.Error("normal should parse")
	}
	if ParsePreset("insane") != "" {
		t.Error("unknown preset should parse to empty")
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultHeroConfig() {
		t.Errorf("embedded YAML differs from DefaultHeroConfig():\n%+v\n%+v", cfg, DefaultHeroConfig())
	}
}

func TestLoadHeroCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hero.yaml")
	data := []byte("physics:\n  gravity: 900\nabilities:\n  slow:\n    factor: 0.5\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadHero(path)
	if err != nil {
		t.Fatalf("LoadHero() failed: %v", err)
	}
	if cfg.Physics.Gravity != 900 {
		t.Errorf("Gravity = %v, expected 900", cfg.Physics.Gravity)
	}
	if cfg.Abilities.Slow.Factor != 0.5 {
		t.Errorf("Slow.Factor = %v, expected 0.5", cfg.Abilities.Slow.Factor)
	}
	// Untouched keys keep their defaults
	if cfg.Hero.Radius != 18 || cfg.Abilities.Slow.Duration != 3.0 {
		t.Errorf("partial config should keep defaults, got %+v", cfg)
	}
}

func TestLoadHeroErrors(t *testing.T) {
	if _, err := LoadHero(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("difficulty:\n  ramp_duration: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadHero(path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("invalid config error = %v, expected ErrInvalidConfig", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*HeroConfig)
	}{
		{"inverted gap", func(c *HeroConfig) { c.Difficulty.GapMin = 200 }},
		{"inverted spawn", func(c *HeroConfig) { c.Difficulty.SpawnMin = 2 }},
		{"zero radius", func(c *HeroConfig) { c.Hero.Radius = 0 }},
		{"ground too tall", func(c *HeroConfig) { c.World.GroundHeight = 600 }},
		{"huge margin", func(c *HeroConfig) { c.Obstacles.Margin = 250 }},
		{"slow speeds up", func(c *HeroConfig) { c.Abilities.Slow.Factor = 1.5 }},
	}

	if err := DefaultHeroConfig().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultHeroConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
