package gui

import (
	"image/color"

	"github.com/vovakirdan/flappy-hero/internal/core"
)

var palette = map[core.Color]color.RGBA{
	core.ColorDefault:      {0xff, 0xff, 0xff, 0xff},
	core.ColorSky:          {0x8e, 0xc9, 0xf0, 0xff},
	core.ColorGround:       {0x8b, 0x5a, 0x2b, 0xff},
	core.ColorObstacle:     {0x2e, 0x9e, 0x44, 0xff},
	core.ColorObstacleEdge: {0x7c, 0xe0, 0x5a, 0xff},
	core.ColorHero:         {0xff, 0xd2, 0x3f, 0xff},
	core.ColorHeroShielded: {0x4d, 0xf0, 0xff, 0xff},
	core.ColorHUD:          {0xff, 0xff, 0xff, 0xff},
	core.ColorAccent:       {0xff, 0x7a, 0xe6, 0xff},
	core.ColorMuted:        {0x9a, 0x9a, 0x9a, 0xff},
	core.ColorDanger:       {0xe8, 0x30, 0x30, 0xff},
	core.ColorSlow:         {0xa8, 0x8b, 0xff, 0xff},
}

// colorOf returns the window colour for a palette entry.
func colorOf(c core.Color) color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return palette[core.ColorDefault]
}

// faded returns c with reduced opacity, for broken obstacles.
func faded(c color.RGBA) color.RGBA {
	return color.RGBA{c.R / 3, c.G / 3, c.B / 3, c.A / 3}
}
