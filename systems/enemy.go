package systems

import (
	"math"
	"math/rand"

	"github.com/automoto/dragonfight/components"
	cfg "github.com/automoto/dragonfight/config"
	"github.com/yohamta/donburi"
)

// aiTuning is the decision-loop tuning for one enemy, boss multipliers
// applied.
type aiTuning struct {
	sight       float64
	attackRange float64
	chase       float64
	position    float64
	retreat     float64
}

func tuningFor(e *components.ActorData) aiTuning {
	t := aiTuning{
		sight:       cfg.AI.SightDistance,
		attackRange: cfg.AI.AttackRange,
		chase:       cfg.AI.ChaseSpeed,
		position:    cfg.AI.PositionSpeed,
		retreat:     cfg.AI.RetreatSpeed,
	}
	if e.IsBoss() {
		t.sight *= cfg.AI.BossSight
		t.attackRange *= cfg.AI.BossRange
		t.chase *= cfg.AI.BossChase
		t.position *= cfg.AI.BossPosition
		t.retreat *= cfg.AI.BossRetreat
	}
	return t
}

// UpdateEnemies runs the enemy lifecycle and AI for every registry slot:
// the death hold and removal, cooldowns, stun, grab suspension, the AI
// decision, and friction.
func UpdateEnemies(w donburi.World) {
	step := dt()
	reg := GetOrCreateRegistry(w)
	sfx := GetOrCreateAudio(w)
	rng := GetOrCreateSession(w).Rand
	slots := players(w)
	team := playerActors(w)

	for i := 0; i < reg.Len(); i++ {
		e := reg.At(i)

		if e.DeathTimer > 0 {
			e.DeathTimer -= step
			if e.DeathTimer <= 0 {
				RemoveEnemy(w, i)
				i-- // the last enemy now sits in this slot
				continue
			}
			e.CurrentAnim = cfg.AnimHurt
			e.Velocity.X = 0
			e.Velocity.Y = 0
			continue
		}

		if e.Health <= 0 {
			continue
		}

		countdown(&e.AttackCooldown, step)
		e.StateTimer += step

		skipAI := false
		if e.StunTimer > 0 {
			e.StunTimer -= step
			if e.StunTimer <= 0 {
				e.StunTimer = 0
			} else {
				skipAI = true
				e.SetState(cfg.Hurt)
				e.CurrentAnim = cfg.AnimHurt
			}
		}

		if grabbedBy(slots, reg, i) {
			e.CurrentAnim = cfg.AnimHurt
			e.SetState(cfg.Hurt)
			e.AIState = cfg.AIIdle
			e.Velocity.X = 0
			e.Velocity.Y = 0
			continue
		}

		if !skipAI {
			updateEnemyAI(e, team, rng, sfx, step)
		}

		applyEnemyFriction(e)
	}
}

func applyEnemyFriction(e *components.ActorData) {
	if e.CurrentAnim == cfg.AnimWalk {
		speed := cfg.Enemy.Speed
		switch e.AIState {
		case cfg.AIChase:
			speed = cfg.AI.ChaseSpeed
		case cfg.AIRetreat, cfg.AIEvade:
			speed = cfg.AI.RetreatSpeed
		case cfg.AIPosition:
			speed = cfg.AI.PositionSpeed
		}
		ApplyFriction(e, speed)
	} else if e.Grounded && e.Velocity.X != 0 {
		ApplyFriction(e, cfg.AI.RetreatSpeed)
	}
}

// selectTarget returns the living player closest along X within sight.
func selectTarget(e *components.ActorData, team []*components.ActorData, sight float64) (*components.ActorData, float64) {
	var target *components.ActorData
	best := 0.0
	for _, p := range team {
		if p.Health <= 0 {
			continue
		}
		dist := math.Abs(p.Position.X - e.Position.X)
		if dist > sight {
			continue
		}
		if target == nil || dist < best {
			target = p
			best = dist
		}
	}
	return target, best
}

func updateEnemyAI(e *components.ActorData, team []*components.ActorData, rng *rand.Rand, sfx *components.AudioData, dt float64) {
	t := tuningFor(e)

	target, dist := selectTarget(e, team, t.sight)
	if target == nil {
		e.AIState = cfg.AIIdle
		e.CurrentAnim = cfg.AnimIdle
		e.SetState(cfg.Idle)
		e.Velocity.X = 0
		return
	}

	dir := cfg.DirectionLeft
	if target.Position.X >= e.Position.X {
		dir = cfg.DirectionRight
	}
	e.FacingRight = dir > 0

	countdown(&e.AITimer, dt)

	// A fresh hit always wins over the current plan.
	if e.WasHurt && e.AIState != cfg.AIRetreat {
		e.AIState = cfg.AIRetreat
		if e.AITimer <= 0 {
			e.AITimer = cfg.Enemy.RetreatTime
		}
		e.CurrentAnim = cfg.AnimHurt
	}

	if e.AIState != cfg.AIAttack {
		e.IsAttacking = false
	}

	e.Velocity.X = 0

	switch e.AIState {
	case cfg.AIIdle:
		handleIdleState(e, dist, t)
	case cfg.AIChase:
		handleChaseState(e, target, dist, dir, t, rng, sfx)
	case cfg.AIPosition:
		handlePositionState(e, target, dist, dir, t, rng, sfx)
	case cfg.AIAttack:
		e.IsAttacking = true
		e.Velocity.X = 0
	case cfg.AIRetreat:
		handleRetreatState(e, dir, t)
	case cfg.AIEvade:
		handleEvadeState(e, dir, t)
	}
}

func handleIdleState(e *components.ActorData, dist float64, t aiTuning) {
	e.CurrentAnim = cfg.AnimIdle
	e.SetState(cfg.Idle)
	if dist <= t.sight {
		e.AIState = cfg.AIChase
		e.CurrentAnim = cfg.AnimWalk
		e.SetState(cfg.Move)
	}
}

func handleChaseState(e, target *components.ActorData, dist, dir float64, t aiTuning, rng *rand.Rand, sfx *components.AudioData) {
	e.CurrentAnim = cfg.AnimWalk
	e.SetState(cfg.Move)

	if dist > t.sight {
		e.AIState = cfg.AIIdle
		e.CurrentAnim = cfg.AnimIdle
		e.SetState(cfg.Idle)
		return
	}

	if dist <= t.attackRange {
		if e.AttackCooldown <= 0 && !target.IsAttacking {
			startEnemyAttack(e, chooseEnemyAttack(rng), sfx)
			return
		}
		e.AIState = cfg.AIPosition
		e.SetState(cfg.Move)
		return
	}

	speed := t.chase
	if dist <= t.attackRange+cfg.AI.ApproachMargin {
		speed = t.position
	}
	e.Velocity.X = dir * speed

	if target.IsAttacking && dist <= t.attackRange*cfg.AI.ChaseEvadeRange && rng.Float64() < cfg.AI.EvadeChance {
		e.AIState = cfg.AIEvade
		e.AITimer = cfg.AI.ChaseEvadeTime
	}
}

func handlePositionState(e, target *components.ActorData, dist, dir float64, t aiTuning, rng *rand.Rand, sfx *components.AudioData) {
	e.CurrentAnim = cfg.AnimWalk
	e.SetState(cfg.Move)

	switch {
	case dist < t.attackRange-cfg.AI.PositionBand:
		e.Velocity.X = -dir * t.position
	case dist > t.attackRange+cfg.AI.PositionBand:
		e.Velocity.X = dir * t.position
	case e.AttackCooldown <= 0 && !target.IsAttacking:
		startEnemyAttack(e, chooseEnemyAttack(rng), sfx)
		return
	}

	if target.IsAttacking && dist <= t.attackRange*cfg.AI.PositionEvade && e.AITimer <= 0 {
		e.AIState = cfg.AIEvade
		e.AITimer = cfg.AI.PositionEvadeTime
		e.SetState(cfg.Move)
	}
}

func handleRetreatState(e *components.ActorData, dir float64, t aiTuning) {
	e.CurrentAnim = cfg.AnimHurt
	e.SetState(cfg.Hurt)
	e.Velocity.X = -dir * t.retreat
	e.FacingRight = e.Velocity.X > 0
	if e.AITimer <= 0 {
		e.WasHurt = false
		e.AIState = cfg.AIChase
		e.CurrentAnim = cfg.AnimWalk
		e.SetState(cfg.Move)
	}
}

func handleEvadeState(e *components.ActorData, dir float64, t aiTuning) {
	e.CurrentAnim = cfg.AnimWalk
	e.SetState(cfg.Move)
	e.Velocity.X = -dir * t.retreat
	e.FacingRight = e.Velocity.X > 0
	if e.AITimer <= 0 {
		e.AIState = cfg.AIChase
	}
}

// chooseEnemyAttack picks a kick with the configured chance, a punch
// otherwise.
func chooseEnemyAttack(rng *rand.Rand) cfg.AttackProfile {
	if rng.Float64() < cfg.AI.KickChance {
		return cfg.Attacks[cfg.AttackEnemyKick]
	}
	return cfg.Attacks[cfg.AttackEnemyPunch]
}

func startEnemyAttack(e *components.ActorData, profile cfg.AttackProfile, sfx *components.AudioData) {
	e.AIState = cfg.AIAttack
	e.SetState(cfg.Attack)
	e.SetAnim(profile.Anim)
	e.IsAttacking = true
	e.AttackCooldown = profile.Cooldown
	e.AttackTimer = 0
	e.AttackHasHit = false
	e.AttackDamage = profile.Damage
	e.HitFrameStart = profile.HitFrameStart
	e.HitFrameEnd = profile.HitFrameEnd

	if profile.Anim == cfg.AnimKick {
		queueSFX(sfx, cfg.SoundKick)
	} else {
		queueSFX(sfx, cfg.SoundPunch)
	}
}
