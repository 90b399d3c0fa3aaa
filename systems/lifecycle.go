package systems

import (
	"github.com/automoto/dragonfight/archetypes"
	"github.com/automoto/dragonfight/components"
	cfg "github.com/automoto/dragonfight/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// InitPlayer returns a fresh player standing at pos.
func InitPlayer(pos math.Vec2) components.ActorData {
	a := components.ActorData{
		Kind:          cfg.KindPlayer,
		Position:      pos,
		Health:        cfg.Player.Health,
		MaxHealth:     cfg.Player.Health,
		FacingRight:   true,
		Grounded:      true,
		State:         cfg.Idle,
		CurrentAnim:   cfg.AnimIdle,
		LastAnim:      cfg.AnimNone,
		HitFrameStart: cfg.Combat.HitFrameStart,
		HitFrameEnd:   cfg.Combat.HitFrameEnd,
		Grab:          components.NoGrab,
	}
	a.Anim.TotalFrames = cfg.ClipFor(cfg.KindPlayer, cfg.AnimIdle).Frames
	a.RefreshHitbox()
	return a
}

// InitEnemy returns a fresh enemy standing at pos, facing left. A health
// above the standard enemy maximum makes it a boss.
func InitEnemy(pos math.Vec2, health int) components.ActorData {
	if health <= 0 {
		health = cfg.Enemy.Health
	}
	a := components.ActorData{
		Kind:          cfg.KindEnemy,
		Position:      pos,
		Health:        health,
		MaxHealth:     health,
		Grounded:      true,
		State:         cfg.Idle,
		AIState:       cfg.AIIdle,
		CurrentAnim:   cfg.AnimIdle,
		LastAnim:      cfg.AnimNone,
		HitFrameStart: cfg.Combat.HitFrameStart,
		HitFrameEnd:   cfg.Combat.HitFrameEnd,
		Grab:          components.NoGrab,
	}
	a.Anim.TotalFrames = cfg.ClipFor(cfg.KindEnemy, cfg.AnimIdle).Frames
	a.RefreshHitbox()
	return a
}

// SpawnEnemy adds an enemy to the registry. It returns the slot, or false
// when the registry is full.
func SpawnEnemy(w donburi.World, pos math.Vec2, health int) (int, bool) {
	return GetOrCreateRegistry(w).Spawn(InitEnemy(pos, health))
}

// RemoveEnemy swap-removes an enemy. Removing a boss marks it defeated.
func RemoveEnemy(w donburi.World, index int) bool {
	removed, ok := GetOrCreateRegistry(w).Remove(index)
	if !ok {
		return false
	}
	if removed.IsBoss() {
		director := GetOrCreateDirector(w)
		director.BossSpawned = false
		director.BossDefeated = true
	}
	return true
}

// AliveEnemies counts enemies that are alive and not dying.
func AliveEnemies(w donburi.World) int {
	return GetOrCreateRegistry(w).AliveCount()
}

// SpawnPlayer creates a player entity for slot index at pos.
func SpawnPlayer(w donburi.World, index int, pos math.Vec2) *donburi.Entry {
	entry := archetypes.Player.Spawn(w)
	components.Actor.SetValue(entry, InitPlayer(pos))
	components.PlayerInput.SetValue(entry, components.PlayerInputData{PlayerIndex: index})
	return entry
}

// StartPosition is where player slot index begins a stage.
func StartPosition(index int) math.Vec2 {
	xs := cfg.Level.SpawnStartX
	x := xs[0]
	if index >= 0 && index < len(xs) {
		x = xs[index]
	}
	return math.Vec2{X: x, Y: cfg.Level.GroundY - cfg.Actor.Height}
}
