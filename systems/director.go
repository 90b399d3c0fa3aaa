package systems

import (
	"log"

	"github.com/automoto/dragonfight/components"
	cfg "github.com/automoto/dragonfight/config"
	"github.com/automoto/dragonfight/level"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// StartStage resets the world for stage index: the registry is emptied, the
// director rearmed, the collision world rebuilt (or replaced by override),
// the initial wave spawned and every player moved back to its start. Player
// health carries over between stages.
func StartStage(w donburi.World, index int, override *level.World) {
	index, def := level.StageAt(index)

	GetOrCreateRegistry(w).Clear()

	director := GetOrCreateDirector(w)
	*director = components.DirectorData{QuotaLeft: def.SpawnQuota}

	lvl := GetOrCreateLevel(w)
	lvl.StageIndex = index
	lvl.Stage = def
	if override != nil {
		lvl.World = override
		if override.Width > 0 {
			lvl.Stage.Width = override.Width
		}
	} else {
		lvl.World = def.BuildWorld()
	}

	ground := groundLine(w)
	for _, s := range players(w) {
		pos := StartPosition(s.Input.PlayerIndex)
		pos.Y = ground - cfg.Actor.Height
		resetPlayerForStage(s.Actor, pos)
		s.Input.IdleTime = 0
	}

	spawnInitialWave(w, lvl.Stage, director)

	log.Printf("Stage %d initialised", index+1)
}

func resetPlayerForStage(p *components.ActorData, pos math.Vec2) {
	health := p.Health
	fresh := InitPlayer(pos)
	*p = fresh
	if health <= 0 {
		p.Health = 0
		p.State = cfg.Dead
		return
	}
	p.Health = health
}

func spawnInitialWave(w donburi.World, def level.StageDef, director *components.DirectorData) {
	maxX := def.Width - cfg.Actor.Width
	for i := 0; i < def.InitialWave && director.QuotaLeft > 0; i++ {
		x := clampFloat(cfg.Director.WaveStartX+cfg.Director.WaveSpacing*float64(i), cfg.Director.WaveMinX, maxX)
		if _, ok := SpawnEnemy(w, spawnPoint(w, x), cfg.Enemy.Health); !ok {
			break
		}
		director.QuotaLeft--
		director.Spawned++
	}
}

func spawnPoint(w donburi.World, x float64) math.Vec2 {
	return math.Vec2{X: x, Y: groundLine(w) - cfg.Actor.Height}
}

// bossSpawnPoint stands the scaled boss body on the ground line.
func bossSpawnPoint(w donburi.World, x float64, health int) math.Vec2 {
	probe := InitEnemy(math.Vec2{}, health)
	_, oy := probe.BodyOffset()
	_, h := probe.Size()
	return math.Vec2{X: x, Y: groundLine(w) - oy - h}
}

// UpdateDirector feeds timed spawns while the quota lasts and brings in the
// boss once the stage is otherwise empty and the lead player reaches the
// trigger line. It runs last in the tick.
func UpdateDirector(w donburi.World) {
	step := dt()
	lvl := GetOrCreateLevel(w)
	def := lvl.Stage
	director := GetOrCreateDirector(w)
	reg := GetOrCreateRegistry(w)
	rng := GetOrCreateSession(w).Rand
	lead := LeadX(w)

	active := reg.Len()
	capacity := min(def.ConcurrentCap, reg.Cap())

	if director.QuotaLeft > 0 && active < capacity {
		director.SpawnTimer += step
		if director.SpawnTimer >= def.Interval() {
			director.SpawnTimer = 0
			x := lead + cfg.Director.SpawnAhead + cfg.Director.SpawnJitterMin +
				rng.Float64()*(cfg.Director.SpawnJitterMax-cfg.Director.SpawnJitterMin)
			if x < lead+cfg.Director.SpawnMinAhead {
				x = lead + cfg.Director.SpawnMinAhead
			}
			x = clampFloat(x, cfg.Director.SpawnMinX, def.Width-cfg.Actor.Width)
			if _, ok := SpawnEnemy(w, spawnPoint(w, x), cfg.Enemy.Health); ok {
				director.QuotaLeft--
				director.Spawned++
			}
		}
	} else {
		director.SpawnTimer = 0
	}

	if bossPending(def, director) && director.QuotaLeft <= 0 && reg.Len() == 0 && lead >= bossTrigger(def) {
		x := clampFloat(bossSpawnX(def), cfg.Director.WaveMinX, def.Width-cfg.Actor.Width)
		if _, ok := SpawnEnemy(w, bossSpawnPoint(w, x, def.BossHealth), def.BossHealth); ok {
			director.BossSpawned = true
			director.Spawned++
			log.Printf("Boss spawned at x=%.0f", x)
		}
	}
}

func bossPending(def level.StageDef, director *components.DirectorData) bool {
	return def.HasBoss && !director.BossSpawned && !director.BossDefeated
}

func bossTrigger(def level.StageDef) float64 {
	if def.BossTriggerX > 0 {
		return def.BossTriggerX
	}
	return def.Width - cfg.Director.BossTriggerMargin
}

func bossSpawnX(def level.StageDef) float64 {
	if def.BossSpawnX > 0 {
		return def.BossSpawnX
	}
	return def.Width - cfg.Director.BossSpawnMargin
}

// EnemiesRemaining counts enemies still to beat this stage: unspent quota,
// enemies alive now and a boss that has yet to appear.
func EnemiesRemaining(w donburi.World) int {
	def := GetOrCreateLevel(w).Stage
	director := GetOrCreateDirector(w)
	n := max(director.QuotaLeft, 0) + AliveEnemies(w)
	if bossPending(def, director) {
		n++
	}
	return n
}

// Cleared reports whether the stage has nothing left to fight.
func Cleared(w donburi.World) bool {
	def := GetOrCreateLevel(w).Stage
	director := GetOrCreateDirector(w)
	if def.HasBoss && !director.BossDefeated {
		return false
	}
	return director.QuotaLeft <= 0 && AliveEnemies(w) == 0 && !director.BossSpawned
}

// StageEndX is where the lead player must reach once the stage is cleared.
func StageEndX(w donburi.World) float64 {
	return GetOrCreateLevel(w).Stage.EndX()
}

// groundLine is the stage's ground Y: the loaded world's when it has one.
func groundLine(w donburi.World) float64 {
	if world := GetOrCreateLevel(w).World; world != nil && world.GroundY > 0 {
		return world.GroundY
	}
	return cfg.Level.GroundY
}
