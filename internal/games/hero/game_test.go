package hero

import (
	"math"
	"testing"

	"github.com/vovakirdan/flappy-hero/internal/config"
	"github.com/vovakirdan/flappy-hero/internal/core"
	"github.com/vovakirdan/flappy-hero/internal/registry"
)

const frame = 1.0 / 60

// fakeScores is an in-memory ScoreKeeper that counts writes.
type fakeScores struct {
	best   map[string]int
	saves  int
	resets int
}

func newFakeScores() *fakeScores {
	return &fakeScores{best: make(map[string]int)}
}

func (f *fakeScores) LoadBest(id string) (int, error) { return f.best[id], nil }

func (f *fakeScores) SaveBest(id string, score int) error {
	f.saves++
	f.best[id] = max(f.best[id], score)
	return nil
}

func (f *fakeScores) ResetBest(id string) error {
	f.resets++
	f.best[id] = 0
	return nil
}

func newTestGame(t *testing.T, scores core.ScoreKeeper, mutate func(*config.HeroConfig)) *Game {
	t.Helper()
	cfg := config.DefaultHeroConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	g := New(ModeID, registry.Deps{Scores: scores, Config: &cfg})
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})
	return g
}

func noGravity(c *config.HeroConfig) { c.Physics.Gravity = 0 }

func start(t *testing.T, g *Game) {
	t.Helper()
	res := g.Step(core.InputOf(core.ActionStart), 0)
	if res.State.Phase != core.PhasePlaying {
		t.Fatalf("phase after start = %v, expected playing", res.State.Phase)
	}
	if !res.Has(core.EventAmbientStart) {
		t.Error("start should emit ambient-start")
	}
}

func idle() core.InputFrame { return core.NewInputFrame() }

// runUntilOver steps without input until the run ends and returns the last result.
func runUntilOver(t *testing.T, g *Game, maxTicks int) core.StepResult {
	t.Helper()
	for i := 0; i < maxTicks; i++ {
		res := g.Step(idle(), frame)
		if res.State.GameOver() {
			return res
		}
	}
	t.Fatalf("run did not end within %d ticks", maxTicks)
	return core.StepResult{}
}

func TestInitialPhaseIsMenu(t *testing.T) {
	g := newTestGame(t, nil, nil)
	if g.State().Phase != core.PhaseMenu {
		t.Errorf("initial phase = %v, expected menu", g.State().Phase)
	}

	// Time does not pass in the menu
	g.Step(idle(), 1)
	if g.world.Elapsed != 0 || g.actor.Y != g.cfg.World.FloorY()/2 {
		t.Error("menu ticks should not advance the simulation")
	}
}

func TestJumpFromMenuStartsAndFlaps(t *testing.T) {
	g := newTestGame(t, nil, nil)

	res := g.Step(core.InputOf(core.ActionJump), frame)
	if res.State.Phase != core.PhasePlaying {
		t.Fatalf("phase = %v, expected playing", res.State.Phase)
	}
	if !res.Has(core.EventAmbientStart) || !res.Has(core.EventJump) {
		t.Errorf("events = %v, expected ambient-start and jump", res.Events)
	}
	expected := g.cfg.Physics.JumpImpulse + g.cfg.Physics.Gravity*frame
	if math.Abs(g.actor.VY-expected) > 1e-9 {
		t.Errorf("VY = %v, expected %v", g.actor.VY, expected)
	}
}

func TestStartIgnoredWhilePlaying(t *testing.T) {
	g := newTestGame(t, nil, noGravity)
	start(t, g)
	g.score = 4

	res := g.Step(core.InputOf(core.ActionStart), frame)
	if res.Has(core.EventAmbientStart) || g.score != 4 {
		t.Error("start while playing should not restart the run")
	}
}

func TestFloorFallEndsRunWithoutRecord(t *testing.T) {
	scores := newFakeScores()
	scores.best[ModeID] = 3

	g := newTestGame(t, scores, nil)
	start(t, g)

	res := runUntilOver(t, g, 600)
	if !res.Has(core.EventHit) || !res.Has(core.EventAmbientStop) {
		t.Errorf("game over events = %v, expected hit and ambient-stop", res.Events)
	}
	if res.Has(core.EventNewBest) {
		t.Error("score 0 must not be a new best")
	}
	if res.State.Best != 3 || scores.saves != 0 {
		t.Errorf("best = %d, saves = %d; expected best kept at 3 and no save", res.State.Best, scores.saves)
	}
}

func TestFloorFallEndsRunWithRecord(t *testing.T) {
	scores := newFakeScores()
	scores.best[ModeID] = 3

	g := newTestGame(t, scores, nil)
	start(t, g)
	g.score = 5

	res := runUntilOver(t, g, 600)
	if !res.Has(core.EventNewBest) {
		t.Error("expected new-best event")
	}
	if res.State.Best != 5 || scores.best[ModeID] != 5 || scores.saves != 1 {
		t.Errorf("best = %d, stored = %d, saves = %d; expected 5/5/1", res.State.Best, scores.best[ModeID], scores.saves)
	}

	// Further ticks are inert
	before := g.actor
	g.Step(idle(), frame)
	if g.actor != before {
		t.Error("game over ticks should not move the hero")
	}
}

func TestRetryAfterGameOver(t *testing.T) {
	g := newTestGame(t, nil, nil)
	start(t, g)
	g.score = 2
	runUntilOver(t, g, 600)

	// Jump does not restart
	g.Step(core.InputOf(core.ActionJump), frame)
	if g.phase != core.PhaseGameOver {
		t.Fatal("jump should not leave game over")
	}

	start(t, g)
	if g.score != 0 || g.world.Elapsed != 0 || len(g.stream.Obstacles()) != 0 {
		t.Error("retry should reset the run")
	}
	if g.best != 2 {
		t.Errorf("best = %d, expected 2 to survive the retry", g.best)
	}
}

func TestCeilingClamp(t *testing.T) {
	g := newTestGame(t, nil, noGravity)
	start(t, g)
	g.actor.Y = g.actor.Radius + 1
	g.actor.VY = -600

	g.Step(idle(), frame)
	if g.actor.Y != g.actor.Radius || g.actor.VY != 0 {
		t.Errorf("actor = %+v, expected clamped at the ceiling with zero velocity", g.actor)
	}
	if g.phase != core.PhasePlaying {
		t.Error("ceiling contact is not terminal")
	}
}

func TestShieldAbsorbsFloor(t *testing.T) {
	g := newTestGame(t, nil, nil)
	start(t, g)
	floor := g.cfg.World.FloorY()
	g.actor.Charges = 1
	g.actor.Y = floor - g.actor.Radius + 5

	g.Step(idle(), frame)

	if g.phase != core.PhasePlaying {
		t.Fatal("shield should absorb the floor")
	}
	if g.actor.Charges != 0 {
		t.Errorf("charges = %d, expected 0", g.actor.Charges)
	}
	if g.actor.Y != floor-g.actor.Radius-1 {
		t.Errorf("Y = %v, expected just above the floor", g.actor.Y)
	}
	if expected := g.cfg.Physics.JumpImpulse * g.cfg.Physics.FloorKick; g.actor.VY != expected {
		t.Errorf("VY = %v, expected damped kick %v", g.actor.VY, expected)
	}
}

func TestShieldAbsorbsObstacle(t *testing.T) {
	g := newTestGame(t, nil, noGravity)
	start(t, g)
	g.actor.Charges = 1
	g.actor.VY = 400
	g.stream.obstacles = append(g.stream.obstacles, Obstacle{
		X: g.actor.X - 10, Width: 70, GapY: 100, GapH: 50,
	})

	g.Step(idle(), frame)

	if g.phase != core.PhasePlaying {
		t.Fatal("shield should absorb the obstacle")
	}
	if g.actor.VY > g.cfg.Physics.ShieldMaxFall {
		t.Errorf("VY = %v, expected capped at %v", g.actor.VY, g.cfg.Physics.ShieldMaxFall)
	}
	if !g.stream.Obstacles()[0].Broken {
		t.Error("absorbed obstacle should be broken")
	}

	// The broken obstacle no longer collides even without charges
	g.Step(idle(), frame)
	if g.phase != core.PhasePlaying {
		t.Error("broken obstacle should not end the run")
	}
}

func TestObstacleHitEndsRun(t *testing.T) {
	g := newTestGame(t, nil, noGravity)
	start(t, g)
	g.stream.obstacles = append(g.stream.obstacles, Obstacle{
		X: g.actor.X - 10, Width: 70, GapY: 100, GapH: 50,
	})

	res := g.Step(idle(), frame)
	if !res.State.GameOver() || !res.Has(core.EventHit) {
		t.Error("unabsorbed obstacle hit should end the run")
	}
}

// passedObstacle returns an obstacle whose right edge is already behind the hero.
func passedObstacle(g *Game) Obstacle {
	line := g.actor.X - g.actor.Radius
	return Obstacle{X: line - 71, Width: 70, GapY: g.actor.Y, GapH: 175}
}

func TestScoringIsIdempotent(t *testing.T) {
	g := newTestGame(t, nil, noGravity)
	start(t, g)
	g.stream.obstacles = append(g.stream.obstacles, passedObstacle(g))

	for i := 0; i < 30; i++ {
		g.Step(idle(), frame)
	}
	if g.score != 1 {
		t.Errorf("score = %d, expected exactly 1", g.score)
	}
}

func TestShieldUnlocksOnTenthPoint(t *testing.T) {
	g := newTestGame(t, nil, noGravity)
	start(t, g)
	g.score = 9
	g.abilities.Unlock(9)
	if g.abilities.IsUnlocked(AbilityShield) {
		t.Fatal("shield must be locked at score 9")
	}

	g.stream.obstacles = append(g.stream.obstacles, passedObstacle(g))
	res := g.Step(idle(), frame)

	if res.State.Score != 10 {
		t.Fatalf("score = %d, expected 10", res.State.Score)
	}
	if !g.abilities.IsUnlocked(AbilityShield) {
		t.Error("shield should unlock on the tick score reaches 10")
	}
	found := false
	for _, e := range res.Events {
		if e.Kind == core.EventUnlock && e.Detail == "shield" {
			found = true
		}
	}
	if !found {
		t.Errorf("events = %v, expected an unlock event for shield", res.Events)
	}
	if g.abilities.IsUnlocked(AbilitySlow) {
		t.Error("slow must stay locked at 10")
	}
}

func TestSlowTimeScalesEffectiveTime(t *testing.T) {
	g := newTestGame(t, nil, noGravity)
	start(t, g)
	g.abilities.Unlock(15)
	if !g.abilities.Equip(AbilitySlow) {
		t.Fatal("slow should be equippable")
	}

	const dt = 0.03
	res := g.Step(core.InputOf(core.ActionUseAbility), dt)
	if !res.Has(core.EventAbility) {
		t.Fatal("expected ability event")
	}
	for i := 1; i < 100; i++ {
		g.Step(idle(), dt)
	}

	if math.Abs(g.world.Elapsed-1.95) > 1e-9 {
		t.Errorf("effective time = %v, expected 1.95", g.world.Elapsed)
	}
	if g.world.SlowLeft != 0 {
		t.Errorf("slow countdown = %v, expected exactly 0", g.world.SlowLeft)
	}
	if cd := g.abilities.Cooldown(AbilitySlow); math.Abs(cd-12) > 1e-9 {
		t.Errorf("cooldown = %v, expected 12 after 3 real seconds", cd)
	}
}

func TestSlowTimeSplitsStraddlingFrame(t *testing.T) {
	g := newTestGame(t, nil, noGravity)
	start(t, g)
	g.world.SlowLeft = 0.5

	g.Step(idle(), 1.0)

	expected := 0.5*g.cfg.Abilities.Slow.Factor + 0.5
	if math.Abs(g.world.Elapsed-expected) > 1e-12 {
		t.Errorf("effective time = %v, expected %v", g.world.Elapsed, expected)
	}
	if g.world.SlowLeft != 0 {
		t.Errorf("slow countdown = %v, expected 0", g.world.SlowLeft)
	}
}

func TestAbilityNoOps(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, g *Game)
	}{
		{"menu phase", func(t *testing.T, g *Game) {
			g.abilities.Unlock(20)
			g.abilities.Equip(AbilityShield)
		}},
		{"locked", func(t *testing.T, g *Game) {
			start(t, g)
		}},
		{"on cooldown", func(t *testing.T, g *Game) {
			start(t, g)
			g.abilities.Unlock(20)
			g.abilities.Equip(AbilityShield)
			g.abilities.cooldown[AbilityShield] = 5
		}},
		{"blast with nothing ahead", func(t *testing.T, g *Game) {
			start(t, g)
			g.abilities.Unlock(5)
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, nil, noGravity)
			tc.setup(t, g)
			equipped := g.abilities.Equipped()
			before := g.abilities.Cooldown(equipped)
			charges := g.actor.Charges

			res := g.Step(core.InputOf(core.ActionUseAbility), 0)

			if res.Has(core.EventAbility) {
				t.Error("no-op invocation must not emit an ability event")
			}
			if g.abilities.Cooldown(equipped) != before {
				t.Errorf("cooldown changed from %v to %v", before, g.abilities.Cooldown(equipped))
			}
			if g.actor.Charges != charges || g.world.SlowLeft != 0 {
				t.Error("no-op invocation must not apply an effect")
			}
		})
	}
}

func TestBlastRemovesNextObstacle(t *testing.T) {
	g := newTestGame(t, nil, noGravity)
	start(t, g)
	g.abilities.Unlock(5)

	g.stream.obstacles = append(g.stream.obstacles,
		passedObstacle(g),
		Obstacle{X: 600, Width: 70, GapY: 280, GapH: 175},
		Obstacle{X: 400, Width: 70, GapY: 280, GapH: 175},
	)
	g.stream.obstacles[0].Passed = true

	res := g.Step(core.InputOf(core.ActionUseAbility), 0)
	if !res.Has(core.EventAbility) {
		t.Fatal("blast should fire")
	}
	obs := g.stream.Obstacles()
	if len(obs) != 2 || obs[1].X != 600 {
		t.Errorf("obstacles = %+v, expected the one at x=400 removed", obs)
	}
	if g.abilities.Cooldown(AbilityBlast) != g.cfg.Abilities.Blast.Cooldown {
		t.Error("blast should start its cooldown")
	}
}

func TestCooldownsArePerAbility(t *testing.T) {
	g := newTestGame(t, nil, noGravity)
	start(t, g)
	g.abilities.Unlock(20)
	g.abilities.Equip(AbilityShield)

	g.Step(core.InputOf(core.ActionUseAbility), 0)
	if g.actor.Charges != 1 || g.actor.Shield != g.cfg.Abilities.Shield.Display {
		t.Fatalf("shield not applied: %+v", g.actor)
	}

	// Switching away and back neither resets nor transfers the cooldown
	g.Step(core.InputOf(core.ActionCycleAbility), 1)
	if g.abilities.Equipped() != AbilitySlow {
		t.Fatalf("equipped = %v, expected slow", g.abilities.Equipped())
	}
	if !g.abilities.Ready() {
		t.Error("slow should be ready while shield cools down")
	}
	g.Step(core.InputOf(core.ActionCycleAbility), 0)
	g.Step(core.InputOf(core.ActionCycleAbility), 0)
	if g.abilities.Equipped() != AbilityShield {
		t.Fatalf("equipped = %v, expected shield after wrapping", g.abilities.Equipped())
	}
	if cd := g.abilities.Cooldown(AbilityShield); math.Abs(cd-11) > 1e-9 {
		t.Errorf("shield cooldown = %v, expected 11", cd)
	}
}

func TestResetBestRoundTrip(t *testing.T) {
	scores := newFakeScores()
	scores.best[ModeID] = 7

	g := newTestGame(t, scores, nil)
	if g.State().Best != 7 {
		t.Fatalf("best = %d, expected 7 loaded at construction", g.State().Best)
	}

	res := g.Step(core.InputOf(core.ActionResetBest), 0)
	if res.State.Best != 0 || scores.best[ModeID] != 0 || scores.resets != 1 {
		t.Errorf("best = %d, stored = %d, resets = %d; expected 0/0/1", res.State.Best, scores.best[ModeID], scores.resets)
	}

	again := newTestGame(t, scores, nil)
	if again.State().Best != 0 {
		t.Errorf("reloaded best = %d, expected 0", again.State().Best)
	}
}

func TestUnlocksResetBetweenRuns(t *testing.T) {
	g := newTestGame(t, nil, nil)
	start(t, g)
	g.abilities.Unlock(20)
	runUntilOver(t, g, 600)
	start(t, g)
	if g.abilities.UnlockedCount() != 0 {
		t.Error("unlocks should reset on a new run")
	}

	keep := newTestGame(t, nil, func(c *config.HeroConfig) { c.Abilities.KeepUnlocks = true })
	start(t, keep)
	keep.abilities.Unlock(20)
	runUntilOver(t, keep, 600)
	start(t, keep)
	if keep.abilities.UnlockedCount() != 3 {
		t.Error("keep_unlocks should carry unlocks into the next run")
	}
}

func TestClassicModeHasNoAbilities(t *testing.T) {
	cfg := config.DefaultHeroConfig()
	g, err := registry.Create(ClassicID, registry.Deps{Config: &cfg})
	if err != nil {
		t.Fatalf("Create(%q) failed: %v", ClassicID, err)
	}
	hg := g.(*Game)
	if hg.abilities.Enabled() {
		t.Error("classic mode should disable abilities")
	}
	if got := hg.abilities.Unlock(100); got != nil {
		t.Errorf("Unlock() = %v, expected nothing in classic mode", got)
	}
}

func TestDeterminism(t *testing.T) {
	play := func() (core.GameState, core.Snapshot) {
		g := newTestGame(t, nil, nil)
		pilot := NewPilot(g.cfg.Physics)
		for i := 0; i < 3000; i++ {
			res := g.Step(pilot.Decide(g.Snapshot()), frame)
			if res.State.GameOver() {
				break
			}
		}
		return g.State(), g.Snapshot()
	}

	s1, snap1 := play()
	s2, snap2 := play()

	if s1 != s2 {
		t.Errorf("states differ: %+v vs %+v", s1, s2)
	}
	if snap1.Actor != snap2.Actor || len(snap1.Obstacles) != len(snap2.Obstacles) {
		t.Error("snapshots differ between identical runs")
	}
	for i := range snap1.Obstacles {
		if snap1.Obstacles[i] != snap2.Obstacles[i] {
			t.Errorf("obstacle %d differs: %+v vs %+v", i, snap1.Obstacles[i], snap2.Obstacles[i])
		}
	}
}

func TestRegistryModes(t *testing.T) {
	for _, id := range []string{ModeID, ClassicID} {
		if !registry.Exists(id) {
			t.Errorf("mode %q not registered", id)
		}
	}
}
