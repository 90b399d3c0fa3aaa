package config

// StateID is the coarse behavioral state shared by every actor.
type StateID int

const (
	Idle StateID = iota
	Move
	Jump
	Attack
	Hurt
	Dead
	Grab
)

var stateNames = map[StateID]string{
	Idle:   "idle",
	Move:   "move",
	Jump:   "jump",
	Attack: "attack",
	Hurt:   "hurt",
	Dead:   "dead",
	Grab:   "grab",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// AIStateID is the enemy decision-loop state.
type AIStateID int

const (
	AIIdle AIStateID = iota
	AIChase
	AIAttack
	AIRetreat
	AIEvade
	AIPosition
)

var aiStateNames = map[AIStateID]string{
	AIIdle:     "idle",
	AIChase:    "chase",
	AIAttack:   "attack",
	AIRetreat:  "retreat",
	AIEvade:    "evade",
	AIPosition: "position",
}

func (s AIStateID) String() string {
	if name, ok := aiStateNames[s]; ok {
		return name
	}
	return "unknown"
}

// AnimID selects an animation clip.
type AnimID int

const (
	AnimNone AnimID = iota - 1 // Sentinel: forces a clip reset on the next advance
	AnimIdle
	AnimWalk
	AnimJump
	AnimJab
	AnimPunch
	AnimKick
	AnimJumpKick
	AnimDiveKick
	AnimHurt
)

// IsAttack reports whether the clip is one of the swing clips.
func (a AnimID) IsAttack() bool {
	return a >= AnimJab && a <= AnimDiveKick
}

// ActorKind distinguishes which state machine drives an actor.
type ActorKind int

const (
	KindPlayer ActorKind = iota
	KindEnemy
)

func (k ActorKind) String() string {
	if k == KindPlayer {
		return "player"
	}
	return "enemy"
}
