// Package gui runs the game in a desktop window with Ebitengine. The window
// draws the same snapshot the terminal renderer uses, in world units.
package gui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/flappy-hero/internal/core"
	"github.com/vovakirdan/flappy-hero/internal/engine"
)

// Options configure the window.
type Options struct {
	Title string
	Scale float64 // Window pixels per world unit
}

// Window adapts an engine loop to ebiten.Game.
type Window struct {
	loop *engine.Loop
	dt   float64
}

var _ ebiten.Game = (*Window)(nil)

// NewWindow creates a window that steps the loop tickRate times a second.
func NewWindow(loop *engine.Loop, tickRate int) *Window {
	if tickRate <= 0 {
		tickRate = ebiten.DefaultTPS
	}
	return &Window{loop: loop, dt: 1 / float64(tickRate)}
}

// Update reads input and steps the simulation by one fixed tick.
func (w *Window) Update() error {
	in, quit := readInput(inpututil.IsKeyJustPressed, inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft))
	if quit {
		return ebiten.Termination
	}
	w.loop.Step(in, w.dt)
	return nil
}

// Draw renders the current snapshot.
func (w *Window) Draw(screen *ebiten.Image) {
	snap := w.loop.Game().Snapshot()
	screen.Fill(colorOf(core.ColorSky))

	for _, o := range snap.Obstacles {
		drawObstacle(screen, snap, o)
	}
	vector.DrawFilledRect(screen, 0, float32(snap.FloorY), float32(snap.WorldW), float32(snap.WorldH-snap.FloorY), colorOf(core.ColorGround), false)
	drawHero(screen, snap.Actor)

	ebitenutil.DebugPrintAt(screen, hudText(snap, w.loop.Muted()), 8, 8)
	if msg := overlayText(snap); msg != "" {
		lines := strings.Count(msg, "\n") + 1
		ebitenutil.DebugPrintAt(screen, msg, int(snap.WorldW)/2-90, int(snap.FloorY)/2-lines*8)
	}
}

// Layout keeps the logical screen in world units.
func (w *Window) Layout(_, _ int) (int, int) {
	snap := w.loop.Game().Snapshot()
	return int(snap.WorldW), int(snap.WorldH)
}

func drawObstacle(screen *ebiten.Image, snap core.Snapshot, o core.ObstacleView) {
	body := colorOf(core.ColorObstacle)
	edge := colorOf(core.ColorObstacleEdge)
	if o.Broken {
		body, edge = faded(body), faded(edge)
	}

	x, wd := float32(o.X), float32(o.W)
	top, bottom, floor := float32(o.GapTop), float32(o.GapBottom), float32(snap.FloorY)

	vector.DrawFilledRect(screen, x, 0, wd, top, body, false)
	vector.DrawFilledRect(screen, x, bottom, wd, floor-bottom, body, false)
	vector.StrokeLine(screen, x, top, x+wd, top, 4, edge, false)
	vector.StrokeLine(screen, x, bottom, x+wd, bottom, 4, edge, false)
}

func drawHero(screen *ebiten.Image, a core.ActorView) {
	x, y, r := float32(a.X), float32(a.Y), float32(a.R)
	vector.DrawFilledCircle(screen, x, y, r, colorOf(core.ColorHero), true)
	if a.Shielded {
		vector.StrokeCircle(screen, x, y, r+5, 3, colorOf(core.ColorHeroShielded), true)
	}
}

// hudText is the status line drawn in the top-left corner.
func hudText(snap core.Snapshot, muted bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Score %d  Best %d", snap.Score, snap.Best)

	if snap.Abilities {
		ab := snap.Ability
		switch {
		case !ab.Unlocked:
			fmt.Fprintf(&b, "\n%s at %d", ab.Title, ab.UnlockScore)
		case ab.Ready:
			fmt.Fprintf(&b, "\n%s READY [E]", ab.Title)
		default:
			fmt.Fprintf(&b, "\n%s %.1fs", ab.Title, ab.Cooldown)
		}
		if snap.SlowLeft > 0 {
			fmt.Fprintf(&b, "  SLOW %.1fs", snap.SlowLeft)
		}
	}
	if muted {
		b.WriteString("\n[muted]")
	}
	return b.String()
}

// overlayText returns the centred message for the menu and game over.
func overlayText(snap core.Snapshot) string {
	switch snap.Phase {
	case core.PhaseMenu:
		return "FLAPPY HERO\n\nSpace or click to fly\nEnter to start"
	case core.PhaseGameOver:
		title := "GAME OVER"
		if snap.Score > 0 && snap.Score == snap.Best {
			title = "NEW BEST!"
		}
		return fmt.Sprintf("%s\n\nScore %d  Best %d\nR to retry", title, snap.Score, snap.Best)
	}
	return ""
}

// Run opens the window and plays until it is closed or Q is pressed.
func Run(loop *engine.Loop, rc core.RuntimeConfig, opts Options) error {
	if opts.Title == "" {
		opts.Title = loop.Game().Title()
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}

	loop.Reset(rc)
	snap := loop.Game().Snapshot()

	w := NewWindow(loop, rc.TickRate)
	ebiten.SetTPS(int(1/w.dt + 0.5))
	ebiten.SetWindowSize(int(snap.WorldW*opts.Scale), int(snap.WorldH*opts.Scale))
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
