package components

import (
	cfg "github.com/automoto/dragonfight/config"
	"github.com/automoto/dragonfight/level"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// AnimationState is the frame cursor of the clip an actor is playing.
type AnimationState struct {
	Frame       int
	Timer       float64 // Fraction of a frame accumulated, [0,1)
	TotalFrames int
}

// GrabRef is a weak reference to an enemy held by a player. It names a
// registry slot and the serial the slot had when the grab started, and must
// be resolved through RegistryData.Resolve before every use.
type GrabRef struct {
	Index  int
	Serial uint32
}

// NoGrab is the empty grab reference.
var NoGrab = GrabRef{Index: -1}

// Held reports whether the reference names a slot at all.
func (g GrabRef) Held() bool {
	return g.Index >= 0
}

// ActorData is the state shared by players and enemies. Which fields are
// meaningful depends on the driver: AI fields are only touched by the enemy
// system and Grab only by the player system.
type ActorData struct {
	Kind     cfg.ActorKind
	Position math.Vec2 // Top-left of the nominal footprint
	Velocity math.Vec2
	Hitbox   level.Rect

	Health    int
	MaxHealth int

	FacingRight bool
	Grounded    bool

	State      cfg.StateID
	StateTimer float64

	StunTimer      float64
	DeathTimer     float64
	IdleTimer      float64
	AttackCooldown float64
	AttackTimer    float64

	// Active attack, valid while IsAttacking
	IsAttacking   bool
	AttackDamage  int
	AttackHasHit  bool
	HitFrameStart int
	HitFrameEnd   int

	CurrentAnim cfg.AnimID
	LastAnim    cfg.AnimID
	Anim        AnimationState

	// Enemy AI
	AIState cfg.AIStateID
	AITimer float64
	WasHurt bool

	// Player only
	Grab GrabRef
}

// SetState switches the coarse state and restarts the state timer when the
// state actually changes.
func (a *ActorData) SetState(s cfg.StateID) {
	if a.State == s {
		return
	}
	a.State = s
	a.StateTimer = 0
}

// SetAnim selects a clip and forces it to restart on the next advance.
func (a *ActorData) SetAnim(anim cfg.AnimID) {
	a.CurrentAnim = anim
	a.LastAnim = cfg.AnimNone
}

// ClearAttack cancels whatever swing is in progress.
func (a *ActorData) ClearAttack() {
	a.IsAttacking = false
	a.AttackDamage = 0
	a.AttackTimer = 0
	a.AttackHasHit = false
}

// Alive is true while the actor has health and is not in its dying hold.
func (a *ActorData) Alive() bool {
	return a.Health > 0 && a.DeathTimer <= 0
}

// IsBoss reports whether the actor is the scaled-up enemy variant.
func (a *ActorData) IsBoss() bool {
	return a.MaxHealth > cfg.Actor.BossHealthAt
}

// Scale is the body size multiplier.
func (a *ActorData) Scale() float64 {
	if a.IsBoss() {
		return cfg.Actor.BossScale
	}
	return 1
}

// Size is the scaled body size.
func (a *ActorData) Size() (float64, float64) {
	s := a.Scale()
	return cfg.Actor.Width * s, cfg.Actor.Height * s
}

// BodyOffset is the offset from Position to the top-left of the scaled body.
// Scaled bodies stay centered over the nominal footprint.
func (a *ActorData) BodyOffset() (float64, float64) {
	w, h := a.Size()
	return -(w - cfg.Actor.Width) / 2, -(h - cfg.Actor.Height) / 2
}

// Body returns the scaled collision box at the current position.
func (a *ActorData) Body() level.Rect {
	w, h := a.Size()
	ox, oy := a.BodyOffset()
	return level.Rect{X: a.Position.X + ox, Y: a.Position.Y + oy, W: w, H: h}
}

// RefreshHitbox derives the hitbox from the current position.
func (a *ActorData) RefreshHitbox() {
	a.Hitbox = a.Body()
}

// Actor is the component carried by player entities. Enemies live in the
// Registry singleton instead.
var Actor = donburi.NewComponentType[ActorData]()
