package systems

import (
	"testing"

	cfg "github.com/automoto/dragonfight/config"
	"github.com/automoto/dragonfight/level"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartStageSpawnsInitialWave(t *testing.T) {
	w := newTestWorld(t)
	p1, _ := addPlayer(t, w, 0, 700)
	p2, _ := addPlayer(t, w, 1, 900)

	StartStage(w, 0, nil)

	reg := GetOrCreateRegistry(w)
	require.Equal(t, 2, reg.Len())
	assert.Equal(t, 360.0, reg.At(0).Position.X)
	assert.Equal(t, 470.0, reg.At(1).Position.X)
	assert.Equal(t, groundedY(), reg.At(0).Position.Y)

	director := GetOrCreateDirector(w)
	assert.Equal(t, 4, director.QuotaLeft)
	assert.Equal(t, 6, EnemiesRemaining(w))
	assert.False(t, Cleared(w))

	assert.Equal(t, 100.0, p1.Position.X)
	assert.Equal(t, 150.0, p2.Position.X)
	assert.Equal(t, groundedY(), p1.Position.Y)
	assert.NotNil(t, GetOrCreateLevel(w).World)
}

func TestStartStageCarriesHealth(t *testing.T) {
	w := newTestWorld(t)
	p1, _ := addPlayer(t, w, 0, 700)
	p2, _ := addPlayer(t, w, 1, 900)
	p1.Health = 40
	p2.Health = 0

	StartStage(w, 1, nil)

	assert.Equal(t, 40, p1.Health)
	assert.Equal(t, cfg.Idle, p1.State)
	assert.Zero(t, p2.Health)
	assert.Equal(t, cfg.Dead, p2.State)
	assert.Equal(t, 1, GetOrCreateLevel(w).StageIndex)
	assert.Equal(t, 3, GetOrCreateRegistry(w).Len())
}

func TestStartStageUsesOverrideWorld(t *testing.T) {
	w := newTestWorld(t)
	addPlayer(t, w, 0, 700)

	grid := level.NewGrid(60, 38, 16)
	grid.FillRows(28, 38)
	override := level.NewWorld(960, cfg.Level.GroundY, grid, nil)

	StartStage(w, 0, override)

	lvl := GetOrCreateLevel(w)
	assert.Same(t, override, lvl.World)
	assert.Equal(t, 960.0, lvl.Stage.Width)
	assert.Equal(t, 960-cfg.Level.EndMargin, StageEndX(w))
}

func TestTimedSpawnsRespectCap(t *testing.T) {
	w := newTestWorld(t)
	p, _ := addPlayer(t, w, 0, 100)
	StartStage(w, 0, nil)

	reg := GetOrCreateRegistry(w)
	director := GetOrCreateDirector(w)
	require.Equal(t, 2, reg.Len())

	// Stage one spawns every 3.5s.
	for i := 0; i < 200; i++ {
		UpdateDirector(w)
	}
	assert.Equal(t, 2, reg.Len())

	for i := 0; i < 20; i++ {
		UpdateDirector(w)
	}
	require.Equal(t, 3, reg.Len())
	assert.Equal(t, 3, director.QuotaLeft)

	x := reg.At(2).Position.X
	assert.GreaterOrEqual(t, x, p.Position.X+80)
	assert.LessOrEqual(t, x, p.Position.X+260)

	// At the cap the timer never builds up.
	for i := 0; i < 600; i++ {
		UpdateDirector(w)
	}
	assert.Equal(t, 3, reg.Len())
	assert.Zero(t, director.SpawnTimer)
	assert.Equal(t, 3, director.QuotaLeft)
}

func TestTimedSpawnClampsToStage(t *testing.T) {
	w := newTestWorld(t)
	p, _ := addPlayer(t, w, 0, 100)
	StartStage(w, 0, nil)
	GetOrCreateRegistry(w).Clear()
	p.Position.X = 1990

	for i := 0; i < 220; i++ {
		UpdateDirector(w)
	}
	reg := GetOrCreateRegistry(w)
	require.Equal(t, 1, reg.Len())
	assert.Equal(t, float64(cfg.Level.StageWidth)-cfg.Actor.Width, reg.At(0).Position.X)
}

func TestBossStage(t *testing.T) {
	w := newTestWorld(t)
	p, _ := addPlayer(t, w, 0, 100)
	StartStage(w, 2, nil)

	reg := GetOrCreateRegistry(w)
	director := GetOrCreateDirector(w)
	reg.Clear()
	director.QuotaLeft = 0

	assert.False(t, Cleared(w))
	assert.Equal(t, 1, EnemiesRemaining(w))

	// Not far enough along yet.
	p.Position.X = 1500
	UpdateDirector(w)
	assert.Zero(t, reg.Len())

	p.Position.X = 1700
	UpdateDirector(w)
	require.Equal(t, 1, reg.Len())
	boss := reg.At(0)
	assert.True(t, boss.IsBoss())
	assert.Equal(t, 160, boss.Health)
	assert.Equal(t, 1860.0, boss.Position.X)
	assert.True(t, director.BossSpawned)
	assert.Equal(t, 1, EnemiesRemaining(w))
	assert.False(t, Cleared(w))

	// Only one boss per stage.
	UpdateDirector(w)
	assert.Equal(t, 1, reg.Len())

	ApplyDamage(boss, p, 500, true, nil)
	for i := 0; i < 130; i++ {
		UpdateEnemies(w)
	}
	assert.True(t, director.BossDefeated)
	assert.True(t, Cleared(w))
	assert.Zero(t, EnemiesRemaining(w))

	UpdateDirector(w)
	assert.Zero(t, reg.Len())
}

func TestClearedWithoutBoss(t *testing.T) {
	w := newTestWorld(t)
	addPlayer(t, w, 0, 100)
	StartStage(w, 0, nil)

	assert.False(t, Cleared(w))
	GetOrCreateRegistry(w).Clear()
	GetOrCreateDirector(w).QuotaLeft = 0
	assert.True(t, Cleared(w))
}
