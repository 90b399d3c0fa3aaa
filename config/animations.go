package config

// ClipDef describes one animation clip: which source clip supplies the
// frames and how many frames it has.
type ClipDef struct {
	Source AnimID
	Frames int
}

// Clips maps an actor kind to its clip table. Enemies reuse a few of the
// player's slots with their own frames.
var Clips = map[ActorKind]map[AnimID]ClipDef{
	KindPlayer: {
		AnimIdle:     {Source: AnimIdle, Frames: 4},
		AnimWalk:     {Source: AnimWalk, Frames: 6},
		AnimJump:     {Source: AnimJump, Frames: 4},
		AnimJab:      {Source: AnimJab, Frames: 3},
		AnimPunch:    {Source: AnimPunch, Frames: 3},
		AnimKick:     {Source: AnimKick, Frames: 5},
		AnimJumpKick: {Source: AnimJumpKick, Frames: 3},
		AnimDiveKick: {Source: AnimDiveKick, Frames: 3},
		AnimHurt:     {Source: AnimHurt, Frames: 2},
	},
	KindEnemy: {
		AnimIdle:  {Source: AnimIdle, Frames: 4},
		AnimWalk:  {Source: AnimWalk, Frames: 6},
		AnimJump:  {Source: AnimWalk, Frames: 6},
		AnimPunch: {Source: AnimPunch, Frames: 3},
		AnimKick:  {Source: AnimPunch, Frames: 3}, // no kick sheet for enemies yet
		AnimHurt:  {Source: AnimHurt, Frames: 2},
	},
}

// ClipFor returns the clip for an animation, falling back to the kind's
// idle clip when the animation is unknown.
func ClipFor(kind ActorKind, anim AnimID) ClipDef {
	table, ok := Clips[kind]
	if !ok {
		return ClipDef{Source: AnimIdle, Frames: 1}
	}
	if clip, ok := table[anim]; ok {
		return clip
	}
	if clip, ok := table[AnimIdle]; ok {
		return clip
	}
	return ClipDef{Source: AnimIdle, Frames: 1}
}
