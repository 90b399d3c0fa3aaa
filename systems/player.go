package systems

import (
	"math"

	"github.com/automoto/dragonfight/components"
	cfg "github.com/automoto/dragonfight/config"
	"github.com/yohamta/donburi"
)

// UpdatePlayers runs the player control state machine for every player:
// timers, the death hold, input, and friction. Movement itself happens in
// UpdatePhysics.
func UpdatePlayers(w donburi.World) {
	step := dt()
	reg := GetOrCreateRegistry(w)
	sfx := GetOrCreateAudio(w)

	for _, s := range players(w) {
		updatePlayer(s.Actor, s.Input, reg, sfx, step)
	}
}

func updatePlayer(p *components.ActorData, input *components.PlayerInputData, reg *components.RegistryData, sfx *components.AudioData, dt float64) {
	// A player dropped from the session stays down without a death hold.
	if p.Health <= 0 && p.State == cfg.Dead && p.DeathTimer <= 0 {
		return
	}

	p.StateTimer += dt

	if p.StunTimer > 0 {
		p.StunTimer -= dt
		if p.StunTimer <= 0 {
			p.StunTimer = 0
			if p.Health > 0 && p.State == cfg.Hurt {
				if p.Grounded {
					p.SetState(cfg.Idle)
					p.SetAnim(cfg.AnimIdle)
				} else {
					p.SetState(cfg.Jump)
					p.SetAnim(cfg.AnimJump)
				}
			}
		}
	}

	if p.DeathTimer > 0 {
		updatePlayerDeath(p, dt)
	} else {
		handlePlayerInput(p, input, reg, sfx, dt)
		ApplyFriction(p, cfg.Player.WalkSpeed)
	}

	countdown(&p.AttackCooldown, dt)

	if p.Health <= 0 && p.DeathTimer == 0 && p.State != cfg.Dead {
		p.DeathTimer = cfg.Combat.DeathTime
		p.SetState(cfg.Dead)
	}
}

// updatePlayerDeath counts the death hold down. At expiry the player stays
// Dead with zero health until reinitialized.
func updatePlayerDeath(p *components.ActorData, dt float64) {
	p.DeathTimer -= dt
	p.Velocity.X = 0
	p.Velocity.Y = 0
	p.CurrentAnim = cfg.AnimHurt
	p.State = cfg.Dead
	p.StateTimer = 0
	p.Grounded = true

	if p.DeathTimer <= 0 {
		p.DeathTimer = 0
		p.Health = 0
		p.Grab = components.NoGrab
	}
}

func canControl(p *components.ActorData) bool {
	if p.StunTimer > 0 {
		return false
	}
	switch p.State {
	case cfg.Attack, cfg.Hurt, cfg.Dead:
		return false
	}
	return true
}

func handlePlayerInput(p *components.ActorData, input *components.PlayerInputData, reg *components.RegistryData, sfx *components.AudioData, dt float64) {
	moving := false

	if canControl(p) {
		moveDir := 0.0
		if GetPlayerAction(input, cfg.ActionMoveLeft).Pressed {
			moveDir--
		}
		if GetPlayerAction(input, cfg.ActionMoveRight).Pressed {
			moveDir++
		}

		if GetPlayerAction(input, cfg.ActionJump).JustPressed && p.Grounded {
			p.Velocity.Y = cfg.Player.JumpVelocity
			p.SetState(cfg.Jump)
			p.SetAnim(cfg.AnimJump)
			p.Grounded = false
			queueSFX(sfx, cfg.SoundJump)
		}

		if moveDir != 0 {
			p.Velocity.X = moveDir * cfg.Player.WalkSpeed
			p.FacingRight = moveDir > 0
			moving = true
			if p.State != cfg.Jump {
				p.SetState(cfg.Move)
				p.CurrentAnim = cfg.AnimWalk
			}
		} else if p.State == cfg.Move && p.Grounded {
			p.Velocity.X = 0
			p.SetState(cfg.Idle)
		}

		if p.AttackCooldown <= 0 {
			for _, binding := range cfg.AttackActions {
				if !GetPlayerAction(input, binding.Action).JustPressed {
					continue
				}
				profile := cfg.Attacks[binding.Profile]
				if p.Grounded {
					startPlayerAttack(p, profile, sfx)
				} else {
					startAirAttack(p, profile.Damage+cfg.Player.AirAttackBonus, sfx)
				}
				break
			}
		}

		grab := GetPlayerAction(input, cfg.ActionGrab)
		if grab.JustPressed && !p.Grab.Held() && p.Grounded {
			tryGrab(p, reg)
		}
		if grab.JustReleased && p.Grab.Held() {
			throwGrab(p, reg, sfx)
		}
	}

	// Idle debounce
	if !p.IsAttacking && p.Grounded && !moving && p.StunTimer <= 0 &&
		p.State != cfg.Jump && p.State != cfg.Attack && p.State != cfg.Dead && p.State != cfg.Grab {
		p.IdleTimer += dt
		if p.IdleTimer > cfg.Player.IdleDelay {
			p.SetAnim(cfg.AnimIdle)
			p.SetState(cfg.Idle)
			p.IdleTimer = 0
		}
	} else if moving {
		p.IdleTimer = 0
	}
}

func startPlayerAttack(p *components.ActorData, profile cfg.AttackProfile, sfx *components.AudioData) {
	p.IsAttacking = true
	p.State = cfg.Attack
	p.StateTimer = 0
	p.AttackTimer = 0
	p.AttackHasHit = false
	p.AttackDamage = profile.Damage
	p.AttackCooldown = profile.Cooldown
	p.HitFrameStart = profile.HitFrameStart
	p.HitFrameEnd = profile.HitFrameEnd
	p.SetAnim(profile.Anim)
	p.IdleTimer = 0
	p.Velocity.X = 0

	if profile.Anim == cfg.AnimKick {
		queueSFX(sfx, cfg.SoundKick)
	} else {
		queueSFX(sfx, cfg.SoundPunch)
	}
}

// startAirAttack starts the airborne variant: a rising kick while still
// moving up, a dive kick otherwise.
func startAirAttack(p *components.ActorData, damage int, sfx *components.AudioData) {
	anim := cfg.AnimDiveKick
	if p.Velocity.Y < 0 {
		anim = cfg.AnimJumpKick
	}

	p.IsAttacking = true
	p.State = cfg.Attack
	p.StateTimer = 0
	p.AttackTimer = 0
	p.AttackHasHit = false
	p.AttackDamage = damage
	p.AttackCooldown = cfg.AirAttack.Cooldown
	p.HitFrameStart = cfg.AirAttack.HitFrameStart
	p.HitFrameEnd = cfg.AirAttack.HitFrameEnd
	p.SetAnim(anim)
	p.IdleTimer = 0
	p.Velocity.X *= cfg.AirAttack.Momentum

	queueSFX(sfx, cfg.SoundKick)
}

// tryGrab locks onto the nearest living enemy within the grab radius.
func tryGrab(p *components.ActorData, reg *components.RegistryData) {
	closest := -1
	minDist := cfg.Player.GrabRadius
	for i := 0; i < reg.Len(); i++ {
		e := reg.At(i)
		if e.Health <= 0 {
			continue
		}
		dx := e.Position.X - p.Position.X
		dy := math.Abs(e.Position.Y - p.Position.Y)
		if dist := math.Hypot(dx, dy); dist < minDist {
			minDist = dist
			closest = i
		}
	}
	if closest == -1 {
		return
	}

	e := reg.At(closest)
	e.State = cfg.Hurt
	e.Velocity.X = 0
	e.Velocity.Y = 0
	e.StunTimer = cfg.Player.GrabStun

	p.Grab = reg.Ref(closest)
	p.SetState(cfg.Grab)
	p.SetAnim(cfg.AnimPunch)
}

// throwGrab releases the held enemy: a launch away from the player, then a
// bonus hit whose knockback and stun replace the launch's. A stale
// reference is simply dropped.
func throwGrab(p *components.ActorData, reg *components.RegistryData, sfx *components.AudioData) {
	if e := reg.Resolve(p.Grab); e != nil && e.Health > 0 {
		e.Velocity.X = cfg.Player.ThrowSpeedX
		if !p.FacingRight {
			e.Velocity.X = -cfg.Player.ThrowSpeedX
		}
		e.Velocity.Y = cfg.Player.ThrowSpeedY
		e.Grounded = false
		e.SetState(cfg.Move)
		e.StunTimer = cfg.Player.ThrowStun
		ApplyDamage(e, p, cfg.Player.ThrowDamage, true, sfx)
		queueSFX(sfx, cfg.SoundThrow)
	}
	p.Grab = components.NoGrab
	p.SetState(cfg.Idle)
}

// holdGrab keeps a held enemy pinned in front of the player. The reference
// is revalidated first; a dead or replaced enemy releases the grab.
func holdGrab(p *components.ActorData, reg *components.RegistryData) {
	if !p.Grab.Held() {
		return
	}

	e := reg.Resolve(p.Grab)
	if e == nil || p.Health <= 0 {
		p.Grab = components.NoGrab
		if p.State == cfg.Grab {
			p.SetState(cfg.Idle)
		}
		return
	}

	offset := cfg.Player.GrabOffset
	if !p.FacingRight {
		offset = -offset
	}
	e.Position.X = p.Position.X + offset
	e.Position.Y = p.Position.Y
	e.Velocity.X = 0
	e.Velocity.Y = 0
	e.Grounded = p.Grounded
	e.AIState = cfg.AIIdle
	e.IsAttacking = false
	e.RefreshHitbox()
	p.Velocity.X *= cfg.Player.GrabDrag
}

// grabbedBy reports whether any player holds registry slot index.
func grabbedBy(slots []playerSlot, reg *components.RegistryData, index int) bool {
	for _, s := range slots {
		g := s.Actor.Grab
		if g.Index == index && reg.Resolve(g) != nil {
			return true
		}
	}
	return false
}
