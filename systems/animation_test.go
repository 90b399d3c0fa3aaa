package systems

import (
	"testing"

	"github.com/automoto/dragonfight/components"
	cfg "github.com/automoto/dragonfight/config"
	"github.com/stretchr/testify/assert"
)

func TestAdvanceAnimation(t *testing.T) {
	tests := []struct {
		name      string
		frames    int
		dt        float64
		wantFrame int
	}{
		{"slow clip one frame", 4, 0.15, 1},
		{"fast clip one frame", 3, 0.1, 1},
		{"holds on last frame", 4, 5.0, 3},
		{"fast clip holds", 3, 2.0, 2},
		{"empty clip", 0, 1.0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			anim := components.AnimationState{TotalFrames: tt.frames}
			AdvanceAnimation(&anim, tt.dt)
			assert.Equal(t, tt.wantFrame, anim.Frame)
		})
	}
}

func TestAdvanceAnimationNeverLoops(t *testing.T) {
	anim := components.AnimationState{TotalFrames: 6}
	for i := 0; i < 600; i++ {
		AdvanceAnimation(&anim, dt())
		assert.LessOrEqual(t, anim.Frame, 5)
	}
	assert.Equal(t, 5, anim.Frame)
}

func TestSyncClipRestartsOnChange(t *testing.T) {
	a := InitPlayer(groundedPos(100))
	SyncClip(&a)
	AdvanceAnimation(&a.Anim, 0.3)
	assert.Equal(t, 2, a.Anim.Frame)

	// Same clip: the cursor is kept.
	SyncClip(&a)
	assert.Equal(t, 2, a.Anim.Frame)

	a.CurrentAnim = cfg.AnimWalk
	SyncClip(&a)
	assert.Equal(t, 0, a.Anim.Frame)
	assert.Zero(t, a.Anim.Timer)
	assert.Equal(t, 6, a.Anim.TotalFrames)

	// SetAnim to the clip already playing still restarts it.
	AdvanceAnimation(&a.Anim, 0.3)
	a.SetAnim(cfg.AnimWalk)
	SyncClip(&a)
	assert.Equal(t, 0, a.Anim.Frame)
}

func TestClipForFallsBack(t *testing.T) {
	assert.Equal(t, 4, cfg.ClipFor(cfg.KindEnemy, cfg.AnimJab).Frames)
	assert.Equal(t, cfg.AnimIdle, cfg.ClipFor(cfg.KindEnemy, cfg.AnimDiveKick).Source)
	assert.Equal(t, cfg.AnimPunch, cfg.ClipFor(cfg.KindEnemy, cfg.AnimKick).Source)
	assert.Equal(t, cfg.AnimWalk, cfg.ClipFor(cfg.KindEnemy, cfg.AnimJump).Source)
	assert.Equal(t, 5, cfg.ClipFor(cfg.KindPlayer, cfg.AnimKick).Frames)
	assert.Equal(t, 4, cfg.ClipFor(cfg.KindPlayer, cfg.AnimID(42)).Frames)
}

func TestEnemySwingPlaysSlowerAndEnds(t *testing.T) {
	w := newTestWorld(t)
	_, e := addEnemy(t, w, 500, 0)
	startEnemyAttack(e, cfg.Attacks[cfg.AttackEnemyPunch], nil)

	// Twelve ticks at half of 12 frames/s is 1.2 frames.
	for i := 0; i < 12; i++ {
		UpdateAnimations(w)
	}
	assert.True(t, e.IsAttacking)
	assert.Equal(t, 1, e.Anim.Frame)

	for i := 0; i < 30; i++ {
		UpdateAnimations(w)
	}
	assert.False(t, e.IsAttacking)
	assert.Equal(t, cfg.AIChase, e.AIState)
	assert.Equal(t, cfg.AnimWalk, e.CurrentAnim)
	assert.Equal(t, cfg.Move, e.State)
}

func TestPlayerSwingEndsOnLastFrame(t *testing.T) {
	w := newTestWorld(t)
	p, _ := addPlayer(t, w, 0, 100)
	startPlayerAttack(p, cfg.Attacks[cfg.AttackJab], nil)

	for i := 0; i < 30 && p.IsAttacking; i++ {
		UpdateAnimations(w)
	}
	assert.False(t, p.IsAttacking)
	assert.Equal(t, cfg.Idle, p.State)
	assert.Equal(t, cfg.AnimIdle, p.CurrentAnim)
	assert.Zero(t, p.AttackDamage)
}
