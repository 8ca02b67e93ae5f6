package hero

import (
	"math/rand"

	"github.com/vovakirdan/flappy-hero/internal/config"
	"github.com/vovakirdan/flappy-hero/internal/core"
)

// Obstacle is a vertical barrier with an opening the hero must fly through.
type Obstacle struct {
	X      float64 // Left edge
	Width  float64
	GapY   float64 // Center of the opening
	GapH   float64 // Height of the opening
	Passed bool    // Already scored
	Broken bool    // A shield smashed through it; it no longer collides
}

// Right returns the x coordinate of the right edge.
func (o Obstacle) Right() float64 {
	return o.X + o.Width
}

// GapTop returns the y coordinate where the opening starts.
func (o Obstacle) GapTop() float64 {
	return o.GapY - o.GapH/2
}

// GapBottom returns the y coordinate where the opening ends.
func (o Obstacle) GapBottom() float64 {
	return o.GapY + o.GapH/2
}

// TopRect returns the collision rectangle above the opening.
func (o Obstacle) TopRect() core.RectF {
	return core.RectF{X: o.X, Y: 0, W: o.Width, H: o.GapTop()}
}

// BottomRect returns the collision rectangle between the opening and the floor.
func (o Obstacle) BottomRect(floor float64) core.RectF {
	bottom := o.GapBottom()
	return core.RectF{X: o.X, Y: bottom, W: o.Width, H: floor - bottom}
}

// Stream spawns, moves and removes obstacles.
type Stream struct {
	obstacles []Obstacle
	rng       *rand.Rand
	timer     float64 // Seconds since the last spawn
	world     config.WorldConfig
	cfg       config.ObstacleConfig
}

// NewStream creates an empty obstacle stream with the given RNG seed.
func NewStream(seed int64, world config.WorldConfig, cfg config.ObstacleConfig) *Stream {
	s := &Stream{
		obstacles: make([]Obstacle, 0, 8),
		world:     world,
		cfg:       cfg,
	}
	s.Reset(seed)
	return s
}

// Reset clears all obstacles and the spawn timer and reseeds the RNG.
func (s *Stream) Reset(seed int64) {
	s.obstacles = s.obstacles[:0]
	s.rng = rand.New(rand.NewSource(seed))
	s.timer = 0
}

// Clear removes all obstacles and zeroes the spawn timer, keeping the RNG sequence.
func (s *Stream) Clear() {
	s.obstacles = s.obstacles[:0]
	s.timer = 0
}

// Tick advances the spawn timer by dt and spawns an obstacle when the
// interval has elapsed. The timer restarts from zero; overshoot is dropped.
func (s *Stream) Tick(dt, interval, gap float64) bool {
	s.timer += dt
	if s.timer < interval {
		return false
	}
	s.timer = 0
	s.Spawn(gap)
	return true
}

// Spawn adds an obstacle just beyond the right edge with a random gap center.
func (s *Stream) Spawn(gap float64) {
	floor := s.world.FloorY()
	lo := s.cfg.Margin + gap/2
	hi := floor - s.cfg.Margin - gap/2
	if hi < lo {
		hi = lo // Playfield too short; keep the gap at the top bound
	}

	s.obstacles = append(s.obstacles, Obstacle{
		X:     s.world.Width + s.cfg.EntryOffset,
		Width: s.cfg.Width,
		GapY:  lo + s.rng.Float64()*(hi-lo),
		GapH:  gap,
	})
}

// Advance moves every obstacle left by dx.
func (s *Stream) Advance(dx float64) {
	for i := range s.obstacles {
		s.obstacles[i].X -= dx
	}
}

// Prune removes obstacles that are fully off the left side.
// Returns how many were removed.
func (s *Stream) Prune() int {
	kept := s.obstacles[:0]
	for _, o := range s.obstacles {
		if o.Right() >= s.cfg.PruneX {
			kept = append(kept, o)
		}
	}
	removed := len(s.obstacles) - len(kept)
	s.obstacles = kept
	return removed
}

// RemoveNextAhead deletes the nearest obstacle that has not been passed and
// whose right edge is still ahead of x. Returns false if there is none.
func (s *Stream) RemoveNextAhead(x float64) bool {
	idx := -1
	for i, o := range s.obstacles {
		if o.Passed || o.Right() < x {
			continue
		}
		if idx < 0 || o.X < s.obstacles[idx].X {
			idx = i
		}
	}
	if idx < 0 {
		return false
	}
	s.obstacles = append(s.obstacles[:idx], s.obstacles[idx+1:]...)
	return true
}

// Obstacles returns the live obstacles. The slice is owned by the stream.
func (s *Stream) Obstacles() []Obstacle {
	return s.obstacles
}

// Timer returns the seconds accumulated toward the next spawn.
func (s *Stream) Timer() float64 {
	return s.timer
}
