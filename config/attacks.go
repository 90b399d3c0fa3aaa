package config

// AttackProfile is an immutable description of one attack variant. Players
// and enemies start attacks from the same profile shape.
type AttackProfile struct {
	Name          string
	Anim          AnimID
	Damage        int
	Cooldown      float64
	HitFrameStart int
	HitFrameEnd   int
}

// AttackID names a profile in the Attacks table.
type AttackID int

const (
	AttackJab AttackID = iota
	AttackPunch
	AttackKick
	AttackEnemyPunch
	AttackEnemyKick
)

// AirAttackConfig describes the airborne variants started by any attack
// input while the player is off the ground.
type AirAttackConfig struct {
	Cooldown      float64
	HitFrameStart int
	HitFrameEnd   int
	Momentum      float64 // Horizontal speed kept on entry
}

var Attacks map[AttackID]AttackProfile
var AirAttack AirAttackConfig

func init() {
	Attacks = map[AttackID]AttackProfile{
		AttackJab:        {Name: "jab", Anim: AnimJab, Damage: 15, Cooldown: 0.25, HitFrameStart: 1, HitFrameEnd: 1},
		AttackPunch:      {Name: "punch", Anim: AnimPunch, Damage: 18, Cooldown: 0.45, HitFrameStart: 1, HitFrameEnd: 2},
		AttackKick:       {Name: "kick", Anim: AnimKick, Damage: 20, Cooldown: 0.6, HitFrameStart: 2, HitFrameEnd: 3},
		AttackEnemyPunch: {Name: "enemy_punch", Anim: AnimPunch, Damage: 10, Cooldown: 0.8, HitFrameStart: 1, HitFrameEnd: 1},
		AttackEnemyKick:  {Name: "enemy_kick", Anim: AnimKick, Damage: 20, Cooldown: 1.0, HitFrameStart: 2, HitFrameEnd: 3},
	}

	AirAttack = AirAttackConfig{
		Cooldown:      0.5,
		HitFrameStart: 1,
		HitFrameEnd:   2,
		Momentum:      0.8,
	}
}
