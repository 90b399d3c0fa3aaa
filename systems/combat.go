package systems

import (
	"math"

	"github.com/automoto/dragonfight/components"
	cfg "github.com/automoto/dragonfight/config"
)

// ApplyDamage resolves one hit on target. It cancels the target's own swing,
// staggers it, knocks it away from the attacker and, on the killing blow,
// starts the death hold. Death fires its cue only when the death timer was
// not already running. sfx may be nil.
func ApplyDamage(target, attacker *components.ActorData, amount int, attackerIsPlayer bool, sfx *components.AudioData) {
	if target == nil || attacker == nil || amount <= 0 {
		return
	}

	maxHealth := target.MaxHealth
	if maxHealth <= 0 {
		maxHealth = math.MaxInt
	}
	target.Health = clampInt(target.Health-amount, 0, maxHealth)

	// No trading hits while staggered.
	target.ClearAttack()

	recovery := cfg.Combat.BaseCooldown
	if attackerIsPlayer {
		recovery = math.Max(cfg.Attacks[cfg.AttackEnemyPunch].Cooldown, cfg.Combat.BaseCooldown)
	}
	target.AttackCooldown = math.Max(target.AttackCooldown, recovery)
	target.IdleTimer = 0
	target.HitFrameStart = cfg.Combat.HitFrameStart
	target.HitFrameEnd = cfg.Combat.HitFrameEnd

	target.SetAnim(cfg.AnimHurt)
	target.State = cfg.Hurt
	target.StateTimer = 0

	direction := cfg.DirectionLeft
	if target.Position.X > attacker.Position.X {
		direction = cfg.DirectionRight
	}
	applyKnockback(target, direction)

	if attackerIsPlayer {
		target.AIState = cfg.AIRetreat
		target.AITimer = cfg.Enemy.RetreatTime
		target.WasHurt = true
		target.StunTimer = cfg.Enemy.StunTime
	} else {
		target.StunTimer = cfg.Player.StunTime
	}

	queueSFX(sfx, cfg.SoundHit)

	if target.Health <= 0 && target.DeathTimer == 0 {
		target.DeathTimer = cfg.Combat.DeathTime
		target.State = cfg.Dead
		target.StunTimer = 0
		target.Velocity.Y = 0
		target.Grounded = true
		queueSFX(sfx, cfg.SoundDeath)
	}
}

func applyKnockback(target *components.ActorData, direction float64) {
	desired := direction * cfg.Combat.KnockbackForce
	target.Velocity.X = clampFloat(desired, -cfg.Physics.MaxKnockback, cfg.Physics.MaxKnockback)
}
