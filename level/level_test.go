package level

import (
	"os"
	"testing"

	cfg "github.com/automoto/dragonfight/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectOverlapsIsStrict(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}

	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"inside", Rect{X: 2, Y: 2, W: 2, H: 2}, true},
		{"partial", Rect{X: 9, Y: 9, W: 5, H: 5}, true},
		{"touching right edge", Rect{X: 10, Y: 0, W: 5, H: 10}, false},
		{"touching bottom edge", Rect{X: 0, Y: 10, W: 10, H: 5}, false},
		{"apart", Rect{X: 30, Y: 30, W: 1, H: 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(a))
		})
	}
}

func TestGridOutOfRangeIsEmpty(t *testing.T) {
	g := NewGrid(4, 3, 16)
	g.Set(1, 2, true)
	g.Set(-1, 0, true)
	g.Set(4, 0, true)

	assert.True(t, g.Solid(1, 2))
	assert.False(t, g.Solid(-1, 0))
	assert.False(t, g.Solid(4, 0))
	assert.False(t, g.Solid(0, 3))
	assert.Equal(t, Rect{X: 16, Y: 32, W: 16, H: 16}, g.TileRect(1, 2))

	var nilGrid *Grid
	assert.False(t, nilGrid.Solid(0, 0))
	assert.Zero(t, nilGrid.Columns())
	assert.Zero(t, NewGrid(0, 5, 16).Rows())
}

func TestFirstStaticPrefersDeclarationOrder(t *testing.T) {
	statics := []Rect{
		{X: 100, Y: 0, W: 50, H: 50},
		{X: 80, Y: 0, W: 50, H: 50},
		{X: 400, Y: 0, W: 10, H: 10},
	}
	w := NewWorld(800, 448, nil, statics)

	hit, ok := w.FirstStatic(Rect{X: 90, Y: 10, W: 30, H: 10})
	require.True(t, ok)
	assert.Equal(t, statics[0], hit)

	hit, ok = w.FirstStatic(Rect{X: 85, Y: 10, W: 10, H: 10})
	require.True(t, ok)
	assert.Equal(t, statics[1], hit)

	_, ok = w.FirstStatic(Rect{X: 410, Y: 0, W: 10, H: 10})
	assert.False(t, ok, "touching edge is not a hit")

	// Sub-pixel overlap across a broadphase cell border.
	hit, ok = w.FirstStatic(Rect{X: 380, Y: 0, W: 20.25, H: 5})
	require.True(t, ok)
	assert.Equal(t, statics[2], hit)
}

func TestNilWorldDegrades(t *testing.T) {
	var w *World
	_, ok := w.FirstStatic(Rect{W: 10, H: 10})
	assert.False(t, ok)
	assert.Zero(t, w.Columns())
	assert.Zero(t, w.Rows())
	assert.Equal(t, 800.0, w.StageWidth(800))
}

func TestStageWorlds(t *testing.T) {
	groundRow := int(cfg.Level.GroundY / cfg.Physics.TileSize)

	for i := range Stages {
		idx, def := StageAt(i)
		require.Equal(t, i, idx)

		w := def.BuildWorld()
		assert.Equal(t, int(def.Width/cfg.Physics.TileSize), w.Columns())
		assert.Equal(t, cfg.Level.Rows, w.Rows())
		assert.Len(t, w.Statics, def.Colliders)

		assert.False(t, w.Grid.Solid(0, groundRow-1))
		for ty := groundRow; ty < w.Rows(); ty++ {
			assert.True(t, w.Grid.Solid(w.Columns()-1, ty))
		}
		for _, r := range w.Statics {
			assert.Equal(t, cfg.Level.GroundY, r.Bottom())
		}
	}

	_, def := StageAt(99)
	assert.True(t, def.HasBoss)
	assert.Equal(t, 160, def.BossHealth)
	assert.Equal(t, def.Width-360, def.BossTriggerX)
	assert.Equal(t, def.Width-120, def.EndX())

	idx, _ := StageAt(-4)
	assert.Equal(t, 0, idx)

	assert.Equal(t, MinSpawnInterval, StageDef{SpawnInterval: 0.5}.Interval())
	assert.Equal(t, 3.5, Stages[0].Interval())
}

func TestLoadTMX(t *testing.T) {
	w, err := LoadTMX(os.DirFS("testdata"), "street.tmx")
	require.NoError(t, err)

	assert.Equal(t, 10, w.Columns())
	assert.Equal(t, 6, w.Rows())
	assert.Equal(t, 160.0, w.Width)
	assert.Equal(t, 64.0, w.GroundY)

	assert.True(t, w.Grid.Solid(2, 3))
	assert.False(t, w.Grid.Solid(7, 3), "passable tile")
	assert.False(t, w.Grid.Solid(0, 0))
	for x := 0; x < 10; x++ {
		assert.True(t, w.Grid.Solid(x, 4))
		assert.True(t, w.Grid.Solid(x, 5))
	}

	require.Len(t, w.Statics, 2)
	assert.Equal(t, Rect{X: 60, Y: 48, W: 16, H: 16}, w.Statics[0])
	assert.Equal(t, Rect{X: 100, Y: 40, W: 20, H: 24}, w.Statics[1])
}

func TestLoadTMXErrors(t *testing.T) {
	_, err := LoadTMX(os.DirFS("testdata"), "nocollision.tmx")
	assert.ErrorIs(t, err, ErrNoSolidLayer)

	_, err = LoadTMX(os.DirFS("testdata"), "missing.tmx")
	assert.Error(t, err)
}
