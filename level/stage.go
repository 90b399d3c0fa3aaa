package level

import (
	"math"

	cfg "github.com/automoto/dragonfight/config"
)

// StageDef describes one stage's spawn policy and geometry.
type StageDef struct {
	Width         float64
	SpawnQuota    int
	ConcurrentCap int
	InitialWave   int
	SpawnInterval float64
	Colliders     int

	HasBoss      bool
	BossHealth   int
	BossTriggerX float64
	BossSpawnX   float64
}

// MinSpawnInterval is the floor applied to every stage's spawn interval.
const MinSpawnInterval = 1.6

// colliderLayout is the pool of street obstacles; stage i uses the first
// StageDef.Colliders of them. Heights sit on the ground line.
var colliderLayout = []struct{ X, W, H float64 }{
	{X: 420, W: 48, H: 48},
	{X: 920, W: 80, H: 36},
	{X: 1350, W: 60, H: 52},
	{X: 1650, W: 72, H: 40},
}

// Stages is the campaign in play order.
var Stages []StageDef

func init() {
	width := float64(cfg.Level.StageWidth)
	Stages = []StageDef{
		{Width: width, SpawnQuota: 6, ConcurrentCap: 3, InitialWave: 2, SpawnInterval: 3.5, Colliders: 2},
		{Width: width, SpawnQuota: 8, ConcurrentCap: 4, InitialWave: 3, SpawnInterval: 3.0, Colliders: 3},
		{
			Width: width, SpawnQuota: 10, ConcurrentCap: 4, InitialWave: 3, SpawnInterval: 2.6, Colliders: 4,
			HasBoss: true, BossHealth: 160, BossTriggerX: width - 360, BossSpawnX: width - 140,
		},
	}
}

// StageAt clamps index into the campaign and returns the stage.
func StageAt(index int) (int, StageDef) {
	if index < 0 {
		index = 0
	}
	if index >= len(Stages) {
		index = len(Stages) - 1
	}
	return index, Stages[index]
}

// Interval is the effective spawn interval.
func (s StageDef) Interval() float64 {
	return math.Max(s.SpawnInterval, MinSpawnInterval)
}

// EndX is where a cleared stage hands over to the next one.
func (s StageDef) EndX() float64 {
	end := s.Width - cfg.Level.EndMargin
	if end < 0 {
		return s.Width
	}
	return end
}

// BuildWorld generates the stage's collision world: a solid street from
// the ground row down to the bottom of the grid, plus the stage's share
// of street obstacles.
func (s StageDef) BuildWorld() *World {
	tile := cfg.Physics.TileSize
	cols := int(s.Width / tile)
	rows := cfg.Level.Rows
	grid := NewGrid(cols, rows, tile)

	groundRow := int(cfg.Level.GroundY / tile)
	if groundRow < 0 {
		groundRow = 0
	}
	if groundRow >= rows {
		groundRow = rows - 1
	}
	grid.FillRows(groundRow, rows)

	count := s.Colliders
	if count > len(colliderLayout) {
		count = len(colliderLayout)
	}
	statics := make([]Rect, 0, count)
	for _, c := range colliderLayout[:max(count, 0)] {
		statics = append(statics, Rect{X: c.X, Y: cfg.Level.GroundY - c.H, W: c.W, H: c.H})
	}

	return NewWorld(s.Width, cfg.Level.GroundY, grid, statics)
}
