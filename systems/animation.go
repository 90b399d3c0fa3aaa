package systems

import (
	"github.com/automoto/dragonfight/components"
	cfg "github.com/automoto/dragonfight/config"
	"github.com/yohamta/donburi"
)

// AdvanceAnimation steps a clip's frame cursor by dt seconds. Short clips
// (attack swings) play at the fast rate. The cursor holds on the last frame.
func AdvanceAnimation(anim *components.AnimationState, dt float64) {
	if anim.TotalFrames <= 0 {
		anim.Frame = 0
		return
	}

	rate := cfg.Animation.SlowRate
	if anim.TotalFrames <= cfg.Animation.FastMaxFrames {
		rate = cfg.Animation.FastRate
	}

	anim.Timer += dt * rate
	for anim.Timer >= 1 {
		anim.Timer--
		anim.Frame++
		if anim.Frame >= anim.TotalFrames {
			anim.Frame = anim.TotalFrames - 1
			break
		}
	}

	anim.Frame = clampInt(anim.Frame, 0, anim.TotalFrames-1)
}

// SyncClip restarts the clip when the selected animation changed since the
// last sync.
func SyncClip(a *components.ActorData) {
	if a.CurrentAnim == a.LastAnim {
		return
	}
	a.LastAnim = a.CurrentAnim
	a.Anim = components.AnimationState{
		TotalFrames: cfg.ClipFor(a.Kind, a.CurrentAnim).Frames,
	}
}

// UpdateAnimations advances every actor's clip and finishes swings that
// have run their course. It runs last in the tick.
func UpdateAnimations(w donburi.World) {
	step := dt()

	for _, p := range playerActors(w) {
		SyncClip(p)
		AdvanceAnimation(&p.Anim, step)
		finishPlayerAttack(p, step)
	}

	reg := GetOrCreateRegistry(w)
	for i := 0; i < reg.Len(); i++ {
		e := reg.At(i)
		SyncClip(e)
		if e.IsAttacking {
			// Enemy swings play at a reduced rate.
			AdvanceAnimation(&e.Anim, step*cfg.AI.AttackSlowdown)
		} else {
			AdvanceAnimation(&e.Anim, step)
		}
		if e.DeathTimer > 0 {
			continue
		}
		finishEnemyAttack(e, step)
	}
}

// finishPlayerAttack ends a swing once its clip reaches the last frame or
// the attack timeout elapses.
func finishPlayerAttack(p *components.ActorData, dt float64) {
	if !p.IsAttacking || !p.CurrentAnim.IsAttack() {
		p.AttackTimer = 0
		if !p.IsAttacking {
			p.AttackDamage = 0
		}
		return
	}

	p.AttackTimer += dt
	finished := p.Anim.Frame >= p.Anim.TotalFrames-1
	if !finished && p.AttackTimer < cfg.Combat.AttackTimeout {
		return
	}

	p.ClearAttack()
	p.IdleTimer = 0
	p.SetAnim(cfg.AnimIdle)
	if p.Grounded {
		p.SetState(cfg.Idle)
	} else {
		p.SetState(cfg.Jump)
	}
}

// finishEnemyAttack ends an enemy swing after the minimum attack time.
func finishEnemyAttack(e *components.ActorData, dt float64) {
	if !e.IsAttacking {
		e.AttackTimer = 0
		return
	}

	e.AttackTimer += dt
	if e.AttackTimer < cfg.AI.MinAttackTime && e.AttackTimer < cfg.Combat.AttackTimeout {
		return
	}

	e.ClearAttack()
	if e.AIState == cfg.AIAttack {
		e.AIState = cfg.AIChase
		e.CurrentAnim = cfg.AnimWalk
		e.SetState(cfg.Move)
		e.StateTimer = 0
	}
}
