package hero

import "github.com/vovakirdan/flappy-hero/internal/core"

// Collides reports whether the hero's circle touches either part of the obstacle.
// Broken obstacles never collide.
func Collides(c core.Circle, o Obstacle, floor float64) bool {
	if o.Broken {
		return false
	}
	return c.IntersectsRect(o.TopRect()) || c.IntersectsRect(o.BottomRect(floor))
}
