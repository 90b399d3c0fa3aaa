package systems

import (
	"math/rand"
	"testing"

	"github.com/automoto/dragonfight/components"
	cfg "github.com/automoto/dragonfight/config"
	"github.com/automoto/dragonfight/level"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// newTestWorld returns a world on stage one's geometry with a seeded random
// source and an idle director.
func newTestWorld(t *testing.T) donburi.World {
	t.Helper()
	w := donburi.NewWorld()
	GetOrCreateSession(w).Rand = rand.New(rand.NewSource(12345))

	_, def := level.StageAt(0)
	lvl := GetOrCreateLevel(w)
	lvl.Stage = def
	lvl.World = def.BuildWorld()
	return w
}

func groundedY() float64 {
	return cfg.Level.GroundY - cfg.Actor.Height
}

func addPlayer(t *testing.T, w donburi.World, index int, x float64) (*components.ActorData, *components.PlayerInputData) {
	t.Helper()
	entry := SpawnPlayer(w, index, math.Vec2{X: x, Y: groundedY()})
	return components.Actor.Get(entry), components.PlayerInput.Get(entry)
}

func addEnemy(t *testing.T, w donburi.World, x float64, health int) (int, *components.ActorData) {
	t.Helper()
	idx, ok := SpawnEnemy(w, math.Vec2{X: x, Y: groundedY()}, health)
	require.True(t, ok)
	return idx, GetOrCreateRegistry(w).At(idx)
}

// hold sets this frame's held actions for a player.
func hold(in *components.PlayerInputData, actions ...cfg.ActionID) {
	var current [cfg.ActionCount]bool
	for _, a := range actions {
		current[a] = true
	}
	in.Push(current, dt())
}

// tick runs one full simulation step in the fixed order.
func tick(w donburi.World) {
	UpdatePlayers(w)
	UpdateEnemies(w)
	UpdatePhysics(w)
	UpdateHits(w)
	UpdateAnimations(w)
	UpdateDirector(w)
	for _, s := range players(w) {
		s.Input.ConsumeEdges()
	}
}

func ticks(w donburi.World, n int) {
	for i := 0; i < n; i++ {
		tick(w)
	}
}

func countCues(cues []cfg.SoundID, want cfg.SoundID) int {
	n := 0
	for _, c := range cues {
		if c == want {
			n++
		}
	}
	return n
}

func groundedPos(x float64) math.Vec2 {
	return math.Vec2{X: x, Y: groundedY()}
}
