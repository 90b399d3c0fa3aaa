package systems

import (
	"github.com/automoto/dragonfight/components"
	cfg "github.com/automoto/dragonfight/config"
	"github.com/automoto/dragonfight/level"
	"github.com/yohamta/donburi"
)

// UpdateHits checks every active swing against the opposing side. Player
// swings are resolved first, in player order, against enemies in registry
// order; then enemy swings against players. The first overlap takes the hit.
func UpdateHits(w donburi.World) {
	reg := GetOrCreateRegistry(w)
	sfx := GetOrCreateAudio(w)
	team := playerActors(w)

	for _, p := range team {
		if !CanHit(p) {
			continue
		}
		box := AttackHitbox(p)
		for i := 0; i < reg.Len(); i++ {
			e := reg.At(i)
			if e.Health > 0 && box.Overlaps(e.Hitbox) {
				ApplyDamage(e, p, p.AttackDamage, true, sfx)
				p.AttackHasHit = true
				break
			}
		}
	}

	for i := 0; i < reg.Len(); i++ {
		e := reg.At(i)
		if e.DeathTimer > 0 || !CanHit(e) {
			continue
		}
		box := AttackHitbox(e)
		for _, p := range team {
			if p.Health > 0 && box.Overlaps(p.Hitbox) {
				ApplyDamage(p, e, e.AttackDamage, false, sfx)
				e.AttackHasHit = true
				break
			}
		}
	}
}

// HitWindow returns the inclusive frame range in which the current swing can
// land, clamped into the clip that is actually playing. A profile window
// longer than the clip is truncated, not rejected.
func HitWindow(a *components.ActorData) (start, end int, ok bool) {
	if a.Anim.TotalFrames <= 0 {
		return 0, 0, false
	}
	maxFrame := a.Anim.TotalFrames - 1

	start = a.HitFrameStart
	if start <= 0 {
		start = cfg.Combat.HitFrameStart
	}
	start = clampInt(start, 0, maxFrame)

	end = a.HitFrameEnd
	if end <= 0 {
		end = cfg.Combat.HitFrameEnd
	}
	end = clampInt(end, start, maxFrame)
	return start, end, true
}

// CanHit reports whether the actor's swing may register a hit this tick. A
// swing whose clip has not started yet never hits.
func CanHit(a *components.ActorData) bool {
	if !a.IsAttacking || a.AttackHasHit || a.AttackDamage <= 0 {
		return false
	}
	if a.CurrentAnim != a.LastAnim {
		return false
	}
	start, end, ok := HitWindow(a)
	if !ok {
		return false
	}
	return a.Anim.Frame >= start && a.Anim.Frame <= end
}

// AttackHitbox projects the attacker's hitbox forward: wider by the reach
// extension, slightly taller, and pushed toward the facing side.
func AttackHitbox(a *components.ActorData) level.Rect {
	base := a.Hitbox
	reach := base.W + cfg.Combat.AttackExtend

	box := base
	box.W = reach
	box.H = base.H * (1 + cfg.Combat.HitboxInflate)
	box.Y -= base.H * cfg.Combat.HitboxInflate / 2

	bias := base.W * cfg.Combat.HitboxFacingBias
	if a.FacingRight {
		box.X += bias
	} else {
		box.X -= reach - bias
	}
	return box
}
