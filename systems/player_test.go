package systems

import (
	"testing"

	"github.com/automoto/dragonfight/components"
	cfg "github.com/automoto/dragonfight/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerJump(t *testing.T) {
	w := newTestWorld(t)
	p, in := addPlayer(t, w, 0, 100)

	hold(in, cfg.ActionJump)
	tick(w)

	assert.False(t, p.Grounded)
	assert.Less(t, p.Velocity.Y, 0.0)
	assert.Equal(t, cfg.Jump, p.State)
	assert.Less(t, p.Position.Y, groundedY())
	assert.Equal(t, []cfg.SoundID{cfg.SoundJump}, DrainSFX(w))

	// Holding the button does not jump again on landing.
	for i := 0; i < 120; i++ {
		tick(w)
	}
	assert.True(t, p.Grounded)
	assert.Empty(t, DrainSFX(w))
}

func TestPlayerWalksAndStops(t *testing.T) {
	w := newTestWorld(t)
	p, in := addPlayer(t, w, 0, 100)

	hold(in, cfg.ActionMoveRight)
	ticks(w, 10)
	assert.Greater(t, p.Position.X, 100.0)
	assert.True(t, p.FacingRight)
	assert.Equal(t, cfg.Move, p.State)
	assert.Equal(t, cfg.AnimWalk, p.CurrentAnim)

	hold(in, cfg.ActionMoveLeft)
	tick(w)
	assert.False(t, p.FacingRight)

	hold(in)
	ticks(w, 30)
	assert.Zero(t, p.Velocity.X)
	assert.Equal(t, cfg.Idle, p.State)
}

func TestPlayerAttackRespectsCooldown(t *testing.T) {
	w := newTestWorld(t)
	p, in := addPlayer(t, w, 0, 100)

	hold(in, cfg.ActionJab)
	tick(w)
	require.True(t, p.IsAttacking)
	assert.Equal(t, cfg.Attack, p.State)
	assert.Equal(t, cfg.Attacks[cfg.AttackJab].Damage, p.AttackDamage)
	assert.Equal(t, []cfg.SoundID{cfg.SoundPunch}, DrainSFX(w))

	// A second press while the swing and its cooldown run is ignored.
	hold(in)
	tick(w)
	hold(in, cfg.ActionKick)
	tick(w)
	assert.Empty(t, DrainSFX(w))
	assert.NotEqual(t, cfg.AnimKick, p.CurrentAnim)

	// Once the cooldown is spent the next press starts a new swing.
	hold(in)
	ticks(w, 30)
	require.False(t, p.IsAttacking)
	hold(in, cfg.ActionKick)
	tick(w)
	assert.True(t, p.IsAttacking)
	assert.Equal(t, cfg.AnimKick, p.CurrentAnim)
	assert.Equal(t, []cfg.SoundID{cfg.SoundKick}, DrainSFX(w))
}

func TestPlayerAirAttack(t *testing.T) {
	tests := []struct {
		name     string
		vy       float64
		wantAnim cfg.AnimID
	}{
		{"rising", -150, cfg.AnimJumpKick},
		{"falling", 150, cfg.AnimDiveKick},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			p, in := addPlayer(t, w, 0, 100)
			p.Position.Y = 200
			p.Grounded = false
			p.SetState(cfg.Jump)
			p.Velocity.X = 100
			p.Velocity.Y = tt.vy

			hold(in, cfg.ActionPunch)
			UpdatePlayers(w)

			assert.True(t, p.IsAttacking)
			assert.Equal(t, tt.wantAnim, p.CurrentAnim)
			assert.Equal(t, cfg.Attacks[cfg.AttackPunch].Damage+cfg.Player.AirAttackBonus, p.AttackDamage)
			assert.InDelta(t, cfg.AirAttack.Cooldown-dt(), p.AttackCooldown, 1e-9)
			assert.InDelta(t, 80, p.Velocity.X, 1e-9)
			assert.Equal(t, []cfg.SoundID{cfg.SoundKick}, DrainSFX(w))
		})
	}
}

func TestGrabAndThrow(t *testing.T) {
	w := newTestWorld(t)
	p, in := addPlayer(t, w, 0, 100)
	_, e := addEnemy(t, w, 140, 0)

	hold(in, cfg.ActionGrab)
	tick(w)

	require.True(t, p.Grab.Held())
	assert.Equal(t, cfg.Grab, p.State)
	assert.Equal(t, cfg.Hurt, e.State)
	assert.InDelta(t, p.Position.X+cfg.Player.GrabOffset, e.Position.X, 1e-9)

	// The hold keeps the enemy pinned while the player walks.
	hold(in, cfg.ActionGrab, cfg.ActionMoveRight)
	ticks(w, 5)
	require.True(t, p.Grab.Held())
	assert.InDelta(t, p.Position.X+cfg.Player.GrabOffset, e.Position.X, 1e-9)
	assert.Equal(t, cfg.Enemy.Health, e.Health)

	hold(in)
	UpdatePlayers(w)

	assert.False(t, p.Grab.Held())
	assert.Equal(t, cfg.Idle, p.State)
	assert.Equal(t, cfg.Enemy.Health-cfg.Player.ThrowDamage, e.Health)
	// The bonus hit lands after the launch, so its knockback and stun win.
	assert.Equal(t, cfg.Combat.KnockbackForce, e.Velocity.X)
	assert.Equal(t, cfg.Player.ThrowSpeedY, e.Velocity.Y)
	assert.False(t, e.Grounded)
	assert.Equal(t, cfg.Hurt, e.State)
	assert.Equal(t, cfg.AIRetreat, e.AIState)
	assert.Equal(t, cfg.Enemy.StunTime, e.StunTimer)

	cues := DrainSFX(w)
	assert.Equal(t, 1, countCues(cues, cfg.SoundThrow))
	assert.Equal(t, 1, countCues(cues, cfg.SoundHit))
}

func TestStandingGrabOutlastsIdleDelay(t *testing.T) {
	w := newTestWorld(t)
	p, in := addPlayer(t, w, 0, 100)
	addEnemy(t, w, 140, 0)

	hold(in, cfg.ActionGrab)
	tick(w)
	require.True(t, p.Grab.Held())

	// Standing still while holding is not idling.
	ticks(w, int(3*cfg.Player.IdleDelay/cfg.Loop.FixedStep))
	assert.True(t, p.Grab.Held())
	assert.Equal(t, cfg.Grab, p.State)
}

func TestGrabOutOfReachDoesNothing(t *testing.T) {
	w := newTestWorld(t)
	p, in := addPlayer(t, w, 0, 100)
	addEnemy(t, w, 300, 0)

	hold(in, cfg.ActionGrab)
	tick(w)
	assert.False(t, p.Grab.Held())
	assert.NotEqual(t, cfg.Grab, p.State)
}

func TestGrabReleasedWhenEnemyDies(t *testing.T) {
	w := newTestWorld(t)
	p, in := addPlayer(t, w, 0, 100)
	_, e := addEnemy(t, w, 140, 0)

	hold(in, cfg.ActionGrab)
	tick(w)
	require.True(t, p.Grab.Held())

	ApplyDamage(e, p, 500, true, nil)
	tick(w)
	assert.False(t, p.Grab.Held())
	assert.NotEqual(t, cfg.Grab, p.State)

	// Past the death hold the enemy is gone and nothing points at it.
	ticks(w, 130)
	assert.Zero(t, GetOrCreateRegistry(w).Len())
	assert.False(t, p.Grab.Held())
}

func TestStaleGrabAfterSwapRemove(t *testing.T) {
	w := newTestWorld(t)
	p, in := addPlayer(t, w, 0, 100)
	reg := GetOrCreateRegistry(w)
	addEnemy(t, w, 140, 0)
	addEnemy(t, w, 700, 0)

	hold(in, cfg.ActionGrab)
	tick(w)
	require.Equal(t, components.GrabRef{Index: 0, Serial: reg.Serials[0]}, p.Grab)

	// The far enemy moves into the grabbed slot.
	RemoveEnemy(w, 0)
	require.Equal(t, 1, reg.Len())
	farX := reg.At(0).Position.X

	UpdatePhysics(w)
	assert.False(t, p.Grab.Held())
	assert.Equal(t, farX, reg.At(0).Position.X)
}

func TestPlayerDeathHold(t *testing.T) {
	w := newTestWorld(t)
	p, _ := addPlayer(t, w, 0, 100)
	_, e := addEnemy(t, w, 140, 0)

	ApplyDamage(p, e, 500, false, GetOrCreateAudio(w))
	require.Equal(t, cfg.Dead, p.State)
	assert.Equal(t, 1, countCues(DrainSFX(w), cfg.SoundDeath))

	ticks(w, 60)
	assert.Greater(t, p.DeathTimer, 0.0)
	assert.Equal(t, groundedY(), p.Position.Y)

	ticks(w, 70)
	assert.Zero(t, p.DeathTimer)
	assert.Equal(t, cfg.Dead, p.State)
	assert.Zero(t, p.Health)
	assert.Zero(t, countCues(DrainSFX(w), cfg.SoundDeath))
}
