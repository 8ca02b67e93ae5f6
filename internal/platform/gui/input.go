package gui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/flappy-hero/internal/core"
)

// binding maps one key to an action.
type binding struct {
	key    ebiten.Key
	action core.Action
}

var bindings = []binding{
	{ebiten.KeySpace, core.ActionJump},
	{ebiten.KeyArrowUp, core.ActionJump},
	{ebiten.KeyW, core.ActionJump},
	{ebiten.KeyEnter, core.ActionStart},
	{ebiten.KeyR, core.ActionStart},
	{ebiten.KeyE, core.ActionUseAbility},
	{ebiten.KeyTab, core.ActionCycleAbility},
	{ebiten.KeyC, core.ActionCycleAbility},
	{ebiten.KeyM, core.ActionMute},
	{ebiten.KeyX, core.ActionResetBest},
	{ebiten.KeyQ, core.ActionQuit},
	{ebiten.KeyEscape, core.ActionQuit},
}

// readInput builds this frame's actions from a just-pressed predicate.
// Quit is reported separately and never enters the frame.
func readInput(justPressed func(ebiten.Key) bool, clicked bool) (in core.InputFrame, quit bool) {
	in = core.NewInputFrame()
	for _, b := range bindings {
		if !justPressed(b.key) {
			continue
		}
		if b.action == core.ActionQuit {
			quit = true
			continue
		}
		in.Set(b.action)
	}
	if clicked {
		in.Set(core.ActionJump)
	}
	return in, quit
}
