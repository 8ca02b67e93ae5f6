package config

import "math"

// Params are the world parameters derived from survival time.
type Params struct {
	Speed         float64 // Obstacle scroll speed, units/s
	SpawnInterval float64 // Seconds between obstacle spawns
	Gap           float64 // Vertical opening of new obstacles
}

// Curve maps survival time to world parameters.
// It is pure: the same time always yields the same parameters.
type Curve struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewCurve creates a difficulty curve.
func NewCurve(cfg DifficultyConfig) *Curve {
	return &Curve{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (c *Curve) IsEnabled() bool {
	return c.cfg.Enabled
}

// Progress returns ramp progress k in [0, 1] for survival time t.
// With progression disabled k stays at the initial level.
func (c *Curve) Progress(t float64) float64 {
	if !c.cfg.Enabled {
		return c.initialLevel
	}

	ramp := c.cfg.RampDuration
	if ramp <= 0 {
		ramp = 1 // Prevent division by zero
	}
	progress := clampF(t/ramp, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return c.initialLevel + progress*(1.0-c.initialLevel)
}

// At returns the world parameters for survival time t.
// Each value is written as bound + remaining·span so that k = 1 yields
// the bound exactly and every output is monotonic in t.
func (c *Curve) At(t float64) Params {
	rest := 1.0 - c.Progress(t)
	d := c.cfg
	return Params{
		Speed:         d.SpeedMax - rest*(d.SpeedMax-d.SpeedStart),
		SpawnInterval: d.SpawnMin + rest*(d.SpawnStart-d.SpawnMin),
		Gap:           d.GapMin + rest*(d.GapStart-d.GapMin),
	}
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
