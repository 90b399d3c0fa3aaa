package components

import (
	"math/rand"

	"github.com/yohamta/donburi"
)

// SessionData carries the per-run random source and clock. Every random
// decision in the simulation draws from Rand so a seed replays a session.
type SessionData struct {
	Rand  *rand.Rand
	Ticks uint64
	Time  float64 // Simulated seconds
}

var Session = donburi.NewComponentType[SessionData]()
