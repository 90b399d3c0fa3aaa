package systems

import (
	"github.com/automoto/dragonfight/components"
	cfg "github.com/automoto/dragonfight/config"
)

// GetPlayerAction returns the temporal state of one action for a player.
func GetPlayerAction(input *components.PlayerInputData, id cfg.ActionID) components.ActionState {
	if input == nil || id <= cfg.ActionNone || id >= cfg.ActionCount {
		return components.ActionState{}
	}
	return components.ActionState{
		Pressed:      input.CurrentInput[id],
		JustPressed:  input.Pressed[id],
		JustReleased: input.Released[id],
	}
}
