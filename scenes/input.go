package scenes

import (
	cfg "github.com/automoto/dragonfight/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// binding maps one action to the keys and pad buttons that hold it.
type binding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

var padButtons = map[cfg.ActionID][]ebiten.StandardGamepadButton{
	cfg.ActionMoveLeft:  {ebiten.StandardGamepadButtonLeftLeft},
	cfg.ActionMoveRight: {ebiten.StandardGamepadButtonLeftRight},
	cfg.ActionJump:      {ebiten.StandardGamepadButtonRightBottom},
	cfg.ActionJab:       {ebiten.StandardGamepadButtonRightLeft},
	cfg.ActionPunch:     {ebiten.StandardGamepadButtonRightTop},
	cfg.ActionKick:      {ebiten.StandardGamepadButtonRightRight},
	cfg.ActionGrab:      {ebiten.StandardGamepadButtonFrontTopRight},
}

// playerBindings holds the keyboard layout for each player slot. Both
// players share one keyboard; each also gets its own gamepad.
var playerBindings = [2]map[cfg.ActionID]binding{
	{
		cfg.ActionMoveLeft:  {Keys: []ebiten.Key{ebiten.KeyA}},
		cfg.ActionMoveRight: {Keys: []ebiten.Key{ebiten.KeyD}},
		cfg.ActionJump:      {Keys: []ebiten.Key{ebiten.KeyW, ebiten.KeySpace}},
		cfg.ActionJab:       {Keys: []ebiten.Key{ebiten.KeyJ}},
		cfg.ActionPunch:     {Keys: []ebiten.Key{ebiten.KeyK}},
		cfg.ActionKick:      {Keys: []ebiten.Key{ebiten.KeyL}},
		cfg.ActionGrab:      {Keys: []ebiten.Key{ebiten.KeyG}},
	},
	{
		cfg.ActionMoveLeft:  {Keys: []ebiten.Key{ebiten.KeyArrowLeft}},
		cfg.ActionMoveRight: {Keys: []ebiten.Key{ebiten.KeyArrowRight}},
		cfg.ActionJump:      {Keys: []ebiten.Key{ebiten.KeyArrowUp}},
		cfg.ActionJab:       {Keys: []ebiten.Key{ebiten.KeyComma}},
		cfg.ActionPunch:     {Keys: []ebiten.Key{ebiten.KeyZ}},
		cfg.ActionKick:      {Keys: []ebiten.Key{ebiten.KeyX}},
		cfg.ActionGrab:      {Keys: []ebiten.Key{ebiten.KeyC}},
	},
}

func init() {
	for slot := range playerBindings {
		for id, b := range playerBindings[slot] {
			b.StandardGamepadButtons = padButtons[id]
			playerBindings[slot][id] = b
		}
	}
}

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// pollPlayers reads this frame's held actions for both player slots. The
// first connected pad drives player one, the second player two.
func pollPlayers() [2][cfg.ActionCount]bool {
	var held [2][cfg.ActionCount]bool
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for slot := range held {
		pad, hasPad := ebiten.GamepadID(0), false
		if slot < len(gamepadIDs) && ebiten.IsStandardGamepadLayoutAvailable(gamepadIDs[slot]) {
			pad, hasPad = gamepadIDs[slot], true
		}

		for id, b := range playerBindings[slot] {
			for _, key := range b.Keys {
				if ebiten.IsKeyPressed(key) {
					held[slot][id] = true
				}
			}
			if !hasPad {
				continue
			}
			for _, btn := range b.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(pad, btn) {
					held[slot][id] = true
				}
			}
		}
	}
	return held
}

func pausePressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return true
	}
	for _, id := range gamepadIDs {
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight) {
			return true
		}
	}
	return false
}

func restartPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)
}
