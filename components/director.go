package components

import (
	"github.com/yohamta/donburi"
)

// DirectorData is the wave director's bookkeeping for the current stage.
type DirectorData struct {
	QuotaLeft    int     // Timed spawns still owed
	SpawnTimer   float64 // Seconds accumulated toward the next timed spawn
	BossSpawned  bool    // A boss is in the registry
	BossDefeated bool
	Spawned      int // Enemies spawned this stage, initial wave included
}

var Director = donburi.NewComponentType[DirectorData]()
