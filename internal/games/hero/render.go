package hero

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/flappy-hero/internal/core"
)

// Visual characters for rendering
const (
	HeroChar       = '●'
	ObstacleChar   = '█'
	BrokenChar     = '░'
	CapTopChar     = '▀'
	CapBottomChar  = '▄'
	GroundChar     = '▓'
	GroundEdgeChar = '═'
	CooldownFull   = '■'
	CooldownEmpty  = '□'
)

// hudRows is the number of rows reserved above the playfield.
const hudRows = 1

// Render draws the current frame to the screen.
func (g *Game) Render(dst *core.Screen) {
	RenderSnapshot(dst, g.Snapshot())
}

// viewport maps world coordinates onto screen cells below the HUD.
type viewport struct {
	sx, sy float64
	top    int
	rows   int
}

func newViewport(dst *core.Screen, snap core.Snapshot) viewport {
	rows := max(dst.Height()-hudRows, 1)
	return viewport{
		sx:   float64(dst.Width()) / snap.WorldW,
		sy:   float64(rows) / snap.WorldH,
		top:  hudRows,
		rows: rows,
	}
}

func (v viewport) col(x float64) int {
	return int(x * v.sx)
}

func (v viewport) row(y float64) int {
	return v.top + int(y*v.sy)
}

// RenderSnapshot draws a snapshot as a scaled character frame.
func RenderSnapshot(dst *core.Screen, snap core.Snapshot) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 || snap.WorldW <= 0 || snap.WorldH <= 0 {
		return
	}
	vp := newViewport(dst, snap)

	drawGround(dst, vp, snap)
	for _, o := range snap.Obstacles {
		drawObstacle(dst, vp, snap, o)
	}
	drawHero(dst, vp, snap.Actor)
	drawHUD(dst, snap)

	switch snap.Phase {
	case core.PhaseMenu:
		drawCenteredMessage(dst, "FLAPPY HERO", "Space to fly  |  Enter to start")
	case core.PhaseGameOver:
		title := "GAME OVER"
		if snap.Score > 0 && snap.Score == snap.Best {
			title = "NEW BEST!"
		}
		drawCenteredMessage(dst, title, fmt.Sprintf("Score: %d  Best: %d  |  R to retry", snap.Score, snap.Best))
	}
}

func drawGround(dst *core.Screen, vp viewport, snap core.Snapshot) {
	floorRow := vp.row(snap.FloorY)
	dst.DrawHLine(0, floorRow, dst.Width(), GroundEdgeChar, core.ColorGround)
	for y := floorRow + 1; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), GroundChar, core.ColorGround)
	}
}

func drawObstacle(dst *core.Screen, vp viewport, snap core.Snapshot, o core.ObstacleView) {
	left := vp.col(o.X)
	right := max(vp.col(o.X+o.W), left+1)
	gapTop := vp.row(o.GapTop)
	gapBottom := vp.row(o.GapBottom)
	floorRow := vp.row(snap.FloorY)

	fill, color := ObstacleChar, core.ColorObstacle
	if o.Broken {
		fill, color = BrokenChar, core.ColorMuted
	}

	for x := left; x < right; x++ {
		for y := vp.top; y < gapTop; y++ {
			dst.SetColored(x, y, fill, color)
		}
		for y := gapBottom + 1; y < floorRow; y++ {
			dst.SetColored(x, y, fill, color)
		}
		if !o.Broken {
			if gapTop > vp.top {
				dst.SetColored(x, gapTop-1, CapTopChar, core.ColorObstacleEdge)
			}
			if gapBottom+1 < floorRow {
				dst.SetColored(x, gapBottom+1, CapBottomChar, core.ColorObstacleEdge)
			}
		}
	}
}

func drawHero(dst *core.Screen, vp viewport, a core.ActorView) {
	color := core.ColorHero
	if a.Shielded {
		color = core.ColorHeroShielded
	}
	x, y := vp.col(a.X), vp.row(a.Y)
	dst.SetColored(x, y, HeroChar, color)
	if a.Shielded {
		dst.SetColored(x-1, y, '(', color)
		dst.SetColored(x+1, y, ')', color)
	}
}

func drawHUD(dst *core.Screen, snap core.Snapshot) {
	dst.DrawHLine(0, 0, dst.Width(), ' ', core.ColorHUD)
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score %d  Best %d", snap.Score, snap.Best), core.ColorHUD)

	right := abilityLabel(snap)
	if snap.SlowLeft > 0 {
		right = fmt.Sprintf("SLOW %.1fs  ", snap.SlowLeft) + right
	}
	if right == "" {
		return
	}

	color := core.ColorMuted
	switch {
	case snap.SlowLeft > 0:
		color = core.ColorSlow
	case snap.Ability.Ready:
		color = core.ColorAccent
	}
	x := dst.Width() - len([]rune(right)) - 1
	dst.DrawTextColored(max(x, 0), 0, right, color)
}

// abilityLabel describes the equipped ability for the HUD.
func abilityLabel(snap core.Snapshot) string {
	if !snap.Abilities {
		return ""
	}
	ab := snap.Ability
	if !ab.Unlocked {
		return fmt.Sprintf("%c %s at %d", ab.Glyph, ab.Title, ab.UnlockScore)
	}
	if ab.Ready {
		return fmt.Sprintf("%c %s READY [E]", ab.Glyph, ab.Title)
	}
	return fmt.Sprintf("%c %s %s", ab.Glyph, ab.Title, cooldownBar(ab.Fraction, 5))
}

// cooldownBar renders the remaining cooldown as a small gauge that fills up.
func cooldownBar(remaining float64, width int) string {
	filled := int((1 - core.ClampF(remaining, 0, 1)) * float64(width))
	return strings.Repeat(string(CooldownFull), filled) + strings.Repeat(string(CooldownEmpty), width-filled)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := min(max(len([]rune(title)), len([]rune(subtitle)))+4, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorAccent)

	dst.DrawTextColored(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, core.ColorAccent)
	dst.DrawTextColored(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle, core.ColorHUD)
}
