package systems

import (
	"math"

	"github.com/automoto/dragonfight/components"
	cfg "github.com/automoto/dragonfight/config"
	"github.com/automoto/dragonfight/level"
	"github.com/yohamta/donburi"
)

// UpdatePhysics integrates every actor that is free to move: living players,
// then the grabs they hold, then enemies that are neither dying nor held.
func UpdatePhysics(w donburi.World) {
	step := dt()
	lvl := GetOrCreateLevel(w)
	reg := GetOrCreateRegistry(w)
	slots := players(w)
	ground := groundLine(w)

	for _, s := range slots {
		p := s.Actor
		if p.DeathTimer > 0 {
			pinDyingPlayer(p, ground)
			continue
		}
		if p.Health <= 0 && p.State == cfg.Dead {
			continue
		}

		wasGrounded := p.Grounded
		Integrate(p, lvl.World, step)
		if !wasGrounded && p.Grounded && p.State != cfg.Dead && !p.IsAttacking && p.StunTimer <= 0 {
			p.SetState(cfg.Idle)
			p.SetAnim(cfg.AnimIdle)
		}
	}

	for _, s := range slots {
		holdGrab(s.Actor, reg)
	}

	for i := 0; i < reg.Len(); i++ {
		e := reg.At(i)
		if e.DeathTimer > 0 || e.Health <= 0 || grabbedBy(slots, reg, i) {
			continue
		}
		Integrate(e, lvl.World, step)
	}
}

// ApplyFriction slows a grounded actor. Speed is first capped at maxSpeed
// (never above the global entity cap) and tiny speeds snap to zero.
func ApplyFriction(a *components.ActorData, maxSpeed float64) {
	if !a.Grounded {
		return
	}

	limit := cfg.Physics.MaxEntitySpeed
	if maxSpeed > 0 && maxSpeed < limit {
		limit = maxSpeed
	}
	a.Velocity.X = clampFloat(a.Velocity.X, -limit, limit)

	if a.Velocity.X != 0 {
		a.Velocity.X *= cfg.Physics.Friction
		if math.Abs(a.Velocity.X) < cfg.Physics.MinVelocity {
			a.Velocity.X = 0
		}
	}
}

// Integrate moves an actor one step against the world: horizontal pass,
// then vertical pass, then bounds clamp. Each pass snaps to the first solid
// it touches, tiles before static rectangles. A nil world only clamps.
func Integrate(a *components.ActorData, world *level.World, dt float64) {
	body := a.Body()
	ox, oy := a.BodyOffset()

	a.Grounded = false

	// Horizontal
	dx := a.Velocity.X * dt
	newX := body.X + dx
	probe := level.Rect{X: newX, Y: body.Y, W: body.W, H: body.H}
	if solid, ok := firstSolid(world, probe, math.Min(body.X, newX), math.Max(body.Right(), probe.Right()), body.Y, body.Bottom()); ok {
		if dx > 0 {
			newX = solid.X - body.W
		} else if dx < 0 {
			newX = solid.Right()
		}
		a.Velocity.X = 0
	}
	body.X = newX

	// Vertical
	a.Velocity.Y += cfg.Physics.Gravity * dt
	dy := a.Velocity.Y * dt
	newY := body.Y + dy
	probe = level.Rect{X: body.X, Y: newY, W: body.W, H: body.H}
	if solid, ok := firstSolid(world, probe, body.X, body.Right(), math.Min(body.Y, newY), math.Max(body.Bottom(), probe.Bottom())); ok {
		if dy >= 0 {
			newY = solid.Y - body.H
			a.Grounded = true
		} else {
			newY = solid.Bottom()
		}
		a.Velocity.Y = 0
	}
	body.Y = newY

	// Bounds
	maxX := world.StageWidth(float64(cfg.Level.StageWidth)) - body.W
	if maxX < 0 {
		maxX = 0
	}
	body.X = clampFloat(body.X, 0, maxX)

	groundY := cfg.Level.GroundY
	if world != nil && world.GroundY > 0 {
		groundY = world.GroundY
	}
	a.Position.X = body.X - ox
	a.Position.Y = clampFloat(body.Y-oy, 0, groundY)

	a.RefreshHitbox()
}

// firstSolid scans the tile cells covering the swept span [x0,x1]x[y0,y1]
// row by row and returns the first solid cell overlapping probe. Static
// rectangles are only consulted when no tile was hit.
func firstSolid(world *level.World, probe level.Rect, x0, x1, y0, y1 float64) (level.Rect, bool) {
	if world == nil {
		return level.Rect{}, false
	}

	cols, rows := world.Columns(), world.Rows()
	if cols > 0 && rows > 0 {
		ts := world.Grid.TileSize()
		minTx := clampInt(int(x0/ts), 0, cols-1)
		maxTx := clampInt(int(x1/ts)+1, 0, cols)
		minTy := clampInt(int(y0/ts), 0, rows-1)
		maxTy := clampInt(int(y1/ts)+1, 0, rows)

		for ty := minTy; ty < maxTy; ty++ {
			for tx := minTx; tx < maxTx; tx++ {
				if !world.Grid.Solid(tx, ty) {
					continue
				}
				tile := world.Grid.TileRect(tx, ty)
				if tile.Overlaps(probe) {
					return tile, true
				}
			}
		}
	}

	return world.FirstStatic(probe)
}

// pinDyingPlayer holds a player on the ground line during the death hold.
func pinDyingPlayer(p *components.ActorData, groundY float64) {
	p.Position.Y = groundY - cfg.Actor.Height
	p.Velocity.X = 0
	p.Velocity.Y = 0
	p.RefreshHitbox()
}
