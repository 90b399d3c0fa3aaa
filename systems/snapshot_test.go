package systems

import (
	"testing"

	cfg "github.com/automoto/dragonfight/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeathFade(t *testing.T) {
	a := InitEnemy(groundedPos(300), 0)
	assert.Equal(t, 1.0, DeathFade(&a))

	a.Health = 0
	a.State = cfg.Dead
	a.DeathTimer = cfg.Combat.DeathTime
	assert.InDelta(t, 1.0, DeathFade(&a), 1e-6)

	a.DeathTimer = cfg.Combat.DeathTime / 2
	assert.InDelta(t, 0.75, DeathFade(&a), 1e-6)

	a.DeathTimer = 0
	assert.Zero(t, DeathFade(&a))
}

func TestTakeSnapshot(t *testing.T) {
	w := newTestWorld(t)
	addPlayer(t, w, 1, 150)
	addPlayer(t, w, 0, 100)
	StartStage(w, 0, nil)

	reg := GetOrCreateRegistry(w)
	reg.At(0).Health = 0
	reg.At(0).DeathTimer = 1

	snap := TakeSnapshot(w)

	require.Len(t, snap.Players, 2)
	assert.Equal(t, 0, snap.Players[0].Slot)
	assert.Equal(t, 100.0, snap.Players[0].Position.X)
	assert.Equal(t, cfg.KindPlayer, snap.Players[0].Kind)

	require.Len(t, snap.Enemies, 2)
	assert.Less(t, snap.Enemies[0].Alpha, 1.0)
	assert.Equal(t, 1.0, snap.Enemies[1].Alpha)
	assert.False(t, snap.Enemies[1].Boss)

	assert.Equal(t, float64(cfg.Level.StageWidth), snap.StageWidth)
	assert.Equal(t, cfg.Level.GroundY, snap.GroundY)
	assert.Len(t, snap.Statics, 2)
	assert.Equal(t, 5, snap.EnemiesRemaining)
	assert.False(t, snap.Cleared)

	// The snapshot is a copy.
	snap.Enemies[1].Health = 1
	assert.Equal(t, cfg.Enemy.Health, reg.At(1).Health)
}
