package components

import (
	"github.com/automoto/dragonfight/level"
	"github.com/yohamta/donburi"
)

// LevelData is the stage being played and its collision world. A nil World
// means free movement clamped to the stage bounds.
type LevelData struct {
	World      *level.World
	StageIndex int
	Stage      level.StageDef
}

var Level = donburi.NewComponentType[LevelData]()
