// Package hero implements Flappy Hero: a flying hero threads gapped obstacles,
// scores one point per obstacle cleared and unlocks cooldown-gated abilities.
// The simulation is deterministic for a given seed and input/dt sequence.
package hero

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-hero/internal/config"
	"github.com/vovakirdan/flappy-hero/internal/core"
	"github.com/vovakirdan/flappy-hero/internal/registry"
)

// Mode IDs registered by this package.
const (
	ModeID    = "hero"
	ClassicID = "hero_classic"
)

// slowEpsilon absorbs float drift when the slow countdown meets the frame delta.
const slowEpsilon = 1e-9

func init() {
	registry.Register(registry.GameInfo{
		ID:          ModeID,
		Title:       "Flappy Hero",
		Description: "Fly through the gaps, unlock Blast, Shield and Slow-Mo",
	}, func(d registry.Deps) registry.Game { return New(ModeID, d) })

	registry.Register(registry.GameInfo{
		ID:          ClassicID,
		Title:       "Flappy Hero Classic",
		Description: "The same flight without abilities",
	}, func(d registry.Deps) registry.Game { return New(ClassicID, d) })
}

// World holds the per-run world parameters.
type World struct {
	Speed         float64 // Obstacle scroll speed
	SpawnInterval float64 // Seconds between spawns
	Gap           float64 // Opening of the next spawned obstacle
	Elapsed       float64 // Survival time in effective seconds
	SlowLeft      float64 // Remaining slow-time in real seconds
}

// Game implements the Flappy Hero state machine.
type Game struct {
	id      string
	cfg     config.HeroConfig
	curve   *config.Curve
	runtime core.RuntimeConfig
	scores  core.ScoreKeeper
	log     *log.Logger

	actor     Actor
	stream    *Stream
	abilities *Abilities
	world     World

	score  int
	best   int
	phase  core.Phase
	events []core.Event
}

// New creates a game for the given mode. Configuration comes from deps.Config
// when set, otherwise it is loaded from deps.ConfigPath or the search path.
// The best score is read from deps.Scores once, here.
func New(id string, deps registry.Deps) *Game {
	logger := deps.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	var cfg config.HeroConfig
	if deps.Config != nil {
		cfg = *deps.Config
	} else {
		loaded, err := config.LoadHero(deps.ConfigPath)
		if err != nil {
			logger.Warn("using default config", "err", err)
		}
		cfg = loaded
	}
	config.ApplyPreset(&cfg, deps.Preset)
	if id == ClassicID {
		config.ApplyClassic(&cfg)
	}

	g := &Game{
		id:        id,
		cfg:       cfg,
		curve:     config.NewCurve(cfg.Difficulty),
		scores:    deps.Scores,
		log:       logger.With("game", id),
		abilities: NewAbilities(cfg.Abilities),
	}

	if g.scores != nil {
		best, err := g.scores.LoadBest(id)
		if err != nil {
			g.log.Warn("cannot load best score", "err", err)
		}
		g.best = best
	}

	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this mode.
func (g *Game) Title() string {
	if g.id == ClassicID {
		return "Flappy Hero Classic"
	}
	return "Flappy Hero"
}

// Config returns the effective configuration.
func (g *Game) Config() config.HeroConfig {
	return g.cfg
}

// Reset returns to the menu with a fresh run and reseeds the obstacle RNG.
// The best score is kept.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	if g.stream == nil {
		g.stream = NewStream(rc.Seed, g.cfg.World, g.cfg.Obstacles)
	} else {
		g.stream.Reset(rc.Seed)
	}
	g.abilities.Reset(false)
	g.resetRun()
	g.phase = core.PhaseMenu
}

// resetRun clears everything a new run starts without.
func (g *Game) resetRun() {
	g.actor = newActor(g.cfg)
	g.stream.Clear()
	g.abilities.Reset(g.cfg.Abilities.KeepUnlocks)

	p := g.curve.At(0)
	g.world = World{Speed: p.Speed, SpawnInterval: p.SpawnInterval, Gap: p.Gap}
	g.score = 0
}

// Step handles the frame's inputs and then advances a running game by dt.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	g.events = nil

	if in.Has(core.ActionResetBest) {
		g.resetBest()
	}

	if in.Has(core.ActionStart) && g.phase != core.PhasePlaying {
		g.start()
	}

	if in.Has(core.ActionJump) {
		if g.phase == core.PhaseMenu {
			g.start()
		}
		if g.phase == core.PhasePlaying {
			g.actor.Jump(g.cfg.Physics.JumpImpulse)
			g.emit(core.EventJump, "", 0)
		}
	}

	if in.Has(core.ActionCycleAbility) {
		g.abilities.Cycle()
	}

	if in.Has(core.ActionUseAbility) {
		g.invoke()
	}

	if g.phase == core.PhasePlaying && dt > 0 {
		g.update(dt)
	}

	return core.StepResult{State: g.State(), Events: g.events}
}

// update runs one playing tick.
func (g *Game) update(dt float64) {
	// Timers the player sees run on real time.
	g.abilities.Decay(dt)
	g.actor.Shield = max(g.actor.Shield-dt, 0)

	edt := g.effectiveDelta(dt)
	g.world.Elapsed += edt

	p := g.curve.At(g.world.Elapsed)
	g.world.Speed = p.Speed
	g.world.SpawnInterval = p.SpawnInterval
	g.world.Gap = p.Gap

	g.actor.Integrate(g.cfg.Physics.Gravity, edt)
	g.actor.ClampCeiling()

	floor := g.cfg.World.FloorY()
	if g.actor.BelowFloor(floor) {
		if !g.actor.Absorb() {
			g.gameOver()
			return
		}
		g.actor.bounceOffFloor(floor, g.cfg.Physics)
	}

	g.stream.Tick(edt, g.world.SpawnInterval, g.world.Gap)
	g.stream.Advance(g.world.Speed * edt)

	body := g.actor.Circle()
	scoreLine := g.actor.X - g.actor.Radius
	obstacles := g.stream.Obstacles()
	for i := range obstacles {
		o := &obstacles[i]
		if Collides(body, *o, floor) {
			if !g.actor.Absorb() {
				g.gameOver()
				return
			}
			o.Broken = true
			g.actor.capFall(g.cfg.Physics.ShieldMaxFall)
		}
		if !o.Passed && o.Right() < scoreLine {
			o.Passed = true
			g.addPoint()
		}
	}

	g.stream.Prune()
}

// effectiveDelta scales dt while slow-time is active and counts the slow-time
// down by real time. A frame that crosses the end of slow-time is split at the
// boundary so that only the slowed part is scaled.
func (g *Game) effectiveDelta(dt float64) float64 {
	if g.world.SlowLeft <= 0 {
		return dt
	}

	factor := g.cfg.Abilities.Slow.Factor
	if g.world.SlowLeft > dt+slowEpsilon {
		g.world.SlowLeft -= dt
		return dt * factor
	}

	slowed := g.world.SlowLeft
	g.world.SlowLeft = 0
	return slowed*factor + (dt - slowed)
}

// start begins a new run.
func (g *Game) start() {
	g.resetRun()
	g.phase = core.PhasePlaying
	g.emit(core.EventAmbientStart, "", 0)
	g.log.Debug("run started")
}

// gameOver ends the run and records a new best score.
func (g *Game) gameOver() {
	g.phase = core.PhaseGameOver
	g.emit(core.EventAmbientStop, "", 0)
	g.emit(core.EventHit, "", 0)

	g.log.Debug("run ended", "score", g.score, "elapsed", g.world.Elapsed)

	if g.score <= g.best {
		return
	}
	g.best = g.score
	g.emit(core.EventNewBest, "", g.best)
	if g.scores != nil {
		if err := g.scores.SaveBest(g.id, g.best); err != nil {
			g.log.Error("cannot save best score", "score", g.best, "err", err)
		}
	}
}

// resetBest zeroes the best score in any phase.
func (g *Game) resetBest() {
	g.best = 0
	if g.scores != nil {
		if err := g.scores.ResetBest(g.id); err != nil {
			g.log.Error("cannot reset best score", "err", err)
		}
	}
	g.log.Info("best score reset")
}

// addPoint scores one obstacle and unlocks abilities that became available.
func (g *Game) addPoint() {
	g.score++
	for _, k := range g.abilities.Unlock(g.score) {
		g.emit(core.EventUnlock, k.String(), g.score)
		g.log.Debug("ability unlocked", "ability", k, "score", g.score)
	}
}

// invoke uses the equipped ability when it is ready.
func (g *Game) invoke() {
	if g.phase != core.PhasePlaying || !g.abilities.Ready() {
		return
	}
	kind := g.abilities.Equipped()
	if !g.apply(kind) {
		return
	}
	g.abilities.startCooldown()
	g.emit(core.EventAbility, kind.String(), 0)
}

// apply performs the effect of an ability. It returns false when the effect
// had nothing to act on.
func (g *Game) apply(kind AbilityKind) bool {
	switch kind {
	case AbilityBlast:
		return g.stream.RemoveNextAhead(g.actor.X - g.actor.Radius)
	case AbilityShield:
		g.actor.Charges += g.cfg.Abilities.Shield.Charges
		g.actor.Shield = g.cfg.Abilities.Shield.Display
		return true
	case AbilitySlow:
		g.world.SlowLeft = g.cfg.Abilities.Slow.Duration
		return true
	default:
		return false
	}
}

func (g *Game) emit(kind core.EventKind, detail string, value int) {
	g.events = append(g.events, core.Event{Kind: kind, Detail: detail, Value: value})
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		Best:      g.best,
		Phase:     g.phase,
		Intensity: g.curve.Progress(g.world.Elapsed),
	}
}

// Snapshot returns a world-unit view of the current frame.
func (g *Game) Snapshot() core.Snapshot {
	obstacles := g.stream.Obstacles()
	views := make([]core.ObstacleView, len(obstacles))
	for i, o := range obstacles {
		views[i] = core.ObstacleView{
			X:         o.X,
			W:         o.Width,
			GapTop:    o.GapTop(),
			GapBottom: o.GapBottom(),
			Passed:    o.Passed,
			Broken:    o.Broken,
		}
	}

	equipped := g.abilities.Equipped()
	def := g.abilities.Def(equipped)

	return core.Snapshot{
		WorldW: g.cfg.World.Width,
		WorldH: g.cfg.World.Height,
		FloorY: g.cfg.World.FloorY(),
		Actor: core.ActorView{
			X:        g.actor.X,
			Y:        g.actor.Y,
			VY:       g.actor.VY,
			R:        g.actor.Radius,
			Charges:  g.actor.Charges,
			Shielded: g.actor.Shielded(),
		},
		Obstacles: views,
		Phase:     g.phase,
		Score:     g.score,
		Best:      g.best,
		Speed:     g.world.Speed,
		Gap:       g.world.Gap,
		Intensity: g.curve.Progress(g.world.Elapsed),
		Elapsed:   g.world.Elapsed,
		Ability: core.AbilityView{
			Name:          equipped.String(),
			Title:         equipped.Title(),
			Glyph:         equipped.Glyph(),
			Unlocked:      g.abilities.IsUnlocked(equipped),
			Ready:         g.abilities.Ready(),
			Cooldown:      g.abilities.Cooldown(equipped),
			Fraction:      g.abilities.CooldownFraction(),
			UnlockScore:   def.UnlockScore,
			UnlockedCount: g.abilities.UnlockedCount(),
		},
		SlowLeft:  g.world.SlowLeft,
		Abilities: g.abilities.Enabled(),
	}
}
