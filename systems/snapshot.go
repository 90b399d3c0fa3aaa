package systems

import (
	"github.com/automoto/dragonfight/components"
	cfg "github.com/automoto/dragonfight/config"
	"github.com/automoto/dragonfight/level"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ActorView is the read-only state a renderer needs for one actor.
type ActorView struct {
	Kind        cfg.ActorKind
	Slot        int // Player index, or registry slot for enemies
	Position    math.Vec2
	Body        level.Rect
	FacingRight bool
	Grounded    bool
	Health      int
	MaxHealth   int
	State       cfg.StateID
	AIState     cfg.AIStateID
	Anim        cfg.AnimID
	Source      cfg.AnimID // Clip that actually supplies the frames
	Frame       int
	Boss        bool
	Attacking   bool
	Alpha       float64 // 1 opaque, fading to 0 over the death hold
}

// Snapshot is one tick's worth of presentation state. It shares no memory
// with the simulation.
type Snapshot struct {
	Players          []ActorView
	Enemies          []ActorView
	StageIndex       int
	StageWidth       float64
	GroundY          float64
	Statics          []level.Rect
	LeadX            float64
	EnemiesRemaining int
	Cleared          bool
	Ticks            uint64
}

// TakeSnapshot copies the presentation state out of the world.
func TakeSnapshot(w donburi.World) Snapshot {
	lvl := GetOrCreateLevel(w)
	reg := GetOrCreateRegistry(w)

	snap := Snapshot{
		StageIndex:       lvl.StageIndex,
		StageWidth:       lvl.World.StageWidth(lvl.Stage.Width),
		GroundY:          groundLine(w),
		LeadX:            LeadX(w),
		EnemiesRemaining: EnemiesRemaining(w),
		Cleared:          Cleared(w),
		Ticks:            GetOrCreateSession(w).Ticks,
	}
	if lvl.World != nil {
		snap.Statics = append([]level.Rect(nil), lvl.World.Statics...)
	}

	for _, s := range players(w) {
		snap.Players = append(snap.Players, viewOf(s.Actor, s.Input.PlayerIndex))
	}
	for i := 0; i < reg.Len(); i++ {
		snap.Enemies = append(snap.Enemies, viewOf(reg.At(i), i))
	}
	return snap
}

func viewOf(a *components.ActorData, slot int) ActorView {
	return ActorView{
		Kind:        a.Kind,
		Slot:        slot,
		Position:    a.Position,
		Body:        a.Body(),
		FacingRight: a.FacingRight,
		Grounded:    a.Grounded,
		Health:      a.Health,
		MaxHealth:   a.MaxHealth,
		State:       a.State,
		AIState:     a.AIState,
		Anim:        a.CurrentAnim,
		Source:      cfg.ClipFor(a.Kind, a.CurrentAnim).Source,
		Frame:       a.Anim.Frame,
		Boss:        a.Kind == cfg.KindEnemy && a.IsBoss(),
		Attacking:   a.IsAttacking,
		Alpha:       DeathFade(a),
	}
}

// DeathFade is the actor's opacity. It eases out over the death hold and
// stays at zero for a player left dead afterwards.
func DeathFade(a *components.ActorData) float64 {
	if a.DeathTimer <= 0 {
		if a.Health <= 0 && a.State == cfg.Dead {
			return 0
		}
		return 1
	}

	hold := cfg.Combat.DeathTime
	if hold <= 0 {
		return 0
	}
	elapsed := clampFloat(hold-a.DeathTimer, 0, hold)
	tw := gween.New(1, 0, float32(hold), ease.InQuad)
	alpha, _ := tw.Set(float32(elapsed))
	return clampFloat(float64(alpha), 0, 1)
}
