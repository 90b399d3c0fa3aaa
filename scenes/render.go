package scenes

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/dragonfight/config"
	"github.com/automoto/dragonfight/core"
	"github.com/automoto/dragonfight/fonts"
	"github.com/automoto/dragonfight/level"
	"github.com/automoto/dragonfight/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin    = 10
	hudBarWidth  = 160
	hudBarHeight = 10
	barOverhead  = 8 // Gap between an actor's head and its health bar
)

// viewLeft is the world X at the left edge of the screen.
func viewLeft(e *ecs.ECS, screen *ebiten.Image) float64 {
	camera := systems.GetOrCreateCamera(e.World)
	return camera.X + camera.Offset - float64(screen.Bounds().Dx())/2
}

func (ws *WorldScene) drawStage(e *ecs.ECS, screen *ebiten.Image) {
	left := viewLeft(e, screen)
	w, h := float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy())
	ground := float32(ws.snap.GroundY)

	vector.FillRect(screen, 0, 0, w, ground, cfg.Sky, false)
	vector.FillRect(screen, 0, ground, w, h-ground, cfg.Street, false)

	// Stage end marker, shown once the way forward is open.
	if ws.snap.Cleared {
		x := float32(ws.snap.StageWidth-cfg.Level.EndMargin-left)
		vector.FillRect(screen, x, 0, 3, ground, cfg.Yellow, false)
	}

	for _, r := range ws.snap.Statics {
		drawRect(screen, r, left, cfg.Grey)
	}
}

func drawRect(screen *ebiten.Image, r level.Rect, left float64, c color.Color) {
	vector.FillRect(screen, float32(r.X-left), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func (ws *WorldScene) drawActors(e *ecs.ECS, screen *ebiten.Image) {
	left := viewLeft(e, screen)

	// Enemies first so players stay on top in a brawl.
	for _, a := range ws.snap.Enemies {
		ws.drawActor(screen, a, left, enemyColor(a))
	}
	for _, a := range ws.snap.Players {
		if a.Alpha <= 0 {
			continue
		}
		ws.drawActor(screen, a, left, cfg.PlayerColors[a.Slot%len(cfg.PlayerColors)])
	}
}

func enemyColor(a systems.ActorView) color.RGBA {
	switch {
	case a.Boss:
		return cfg.Purple
	case a.State == cfg.Hurt:
		return cfg.LightRed
	}
	return cfg.Orange
}

func (ws *WorldScene) drawActor(screen *ebiten.Image, a systems.ActorView, left float64, base color.RGBA) {
	body := a.Body
	x := float32(body.X - left)
	alpha := float32(a.Alpha)

	// Shadow stays on the ground line while the body jumps.
	shadowW := float32(cfg.Actor.ShadowWidth * body.W / cfg.Actor.Width)
	shadow := cfg.Shadow
	shadow.A = uint8(float32(shadow.A) * alpha)
	vector.FillRect(screen, x+float32(body.W)/2-shadowW/2, float32(ws.snap.GroundY)-3, shadowW, 6, shadow, false)

	vector.FillRect(screen, x, float32(body.Y), float32(body.W), float32(body.H), fade(base, alpha), false)

	// Facing notch, longer while a swing is live.
	reach := float32(6)
	if a.Attacking {
		reach = 16
	}
	notchX := x + float32(body.W)
	if !a.FacingRight {
		notchX = x - reach
	}
	vector.FillRect(screen, notchX, float32(body.Y)+float32(body.H)/3, reach, 6, fade(cfg.White, alpha), false)

	if a.Health > 0 && a.MaxHealth > 0 {
		drawBar(screen, x, float32(body.Y)-barOverhead, float32(body.W), 4, a.Health, a.MaxHealth)
	}
}

func fade(c color.RGBA, alpha float32) color.RGBA {
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}

func drawBar(screen *ebiten.Image, x, y, w, h float32, health, maxHealth int) {
	vector.FillRect(screen, x, y, w, h, cfg.DarkGrey, false)

	ratio := float32(health) / float32(maxHealth)
	fill := cfg.Green
	if ratio < 0.3 {
		fill = cfg.Red
	}
	vector.FillRect(screen, x, y, w*ratio, h, fill, false)
}

func (ws *WorldScene) drawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !ws.debug {
		return
	}
	left := viewLeft(e, screen)
	for _, group := range [][]systems.ActorView{ws.snap.Players, ws.snap.Enemies} {
		for _, a := range group {
			r := a.Body
			vector.StrokeRect(screen, float32(r.X-left), float32(r.Y), float32(r.W), float32(r.H), 1, cfg.Yellow, false)
			label := fmt.Sprintf("%s/%s", a.State, a.AIState)
			if a.Kind == cfg.KindPlayer {
				label = a.State.String()
			}
			drawText(screen, label, fonts.Small.Get(), r.X-left, r.Y-24, cfg.White)
		}
	}
	drawText(screen, fmt.Sprintf("tick %d  lead %.0f", ws.snap.Ticks, ws.snap.LeadX), fonts.Small.Get(),
		hudMargin, float64(screen.Bounds().Dy())-20, cfg.White)
}

// drawHUD renders each player's health bar and the stage status.
func (ws *WorldScene) drawHUD(_ *ecs.ECS, screen *ebiten.Image) {
	for i, p := range ws.snap.Players {
		if i >= ws.sim.PlayerCount() {
			break
		}
		x := float32(hudMargin + i*(hudBarWidth+2*hudMargin))
		drawText(screen, fmt.Sprintf("P%d", p.Slot+1), fonts.Small.Get(), float64(x), hudMargin, cfg.PlayerColors[p.Slot%len(cfg.PlayerColors)])
		drawBar(screen, x, hudMargin+16, hudBarWidth, hudBarHeight, p.Health, max(p.MaxHealth, 1))
	}
	if ws.sim.PlayerCount() < 2 {
		drawText(screen, "P2: press any key to join", fonts.Small.Get(),
			hudMargin+hudBarWidth+2*hudMargin, hudMargin, cfg.Grey)
	}

	status := fmt.Sprintf("Stage %d/%d   Enemies %d", ws.snap.StageIndex+1, len(level.Stages), ws.snap.EnemiesRemaining)
	if ws.snap.Cleared {
		status = fmt.Sprintf("Stage %d/%d   GO! >>", ws.snap.StageIndex+1, len(level.Stages))
	}
	w, _ := text.Measure(status, fonts.Regular.Get(), 0)
	drawText(screen, status, fonts.Regular.Get(), float64(screen.Bounds().Dx())-w-hudMargin, hudMargin, cfg.White)
}

func (ws *WorldScene) drawOverlay(_ *ecs.ECS, screen *ebiten.Image) {
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()

	if ws.bannerAlpha > 0 {
		drawCentered(screen, fmt.Sprintf("STAGE %d", ws.stage+1), fonts.Title.Get(), float64(sh)/3, fade(cfg.White, ws.bannerAlpha))
	}

	var title, hint string
	switch ws.sim.State() {
	case core.Paused:
		title, hint = "PAUSED", "P to resume"
	case core.GameOver:
		title, hint = "GAME OVER", "R or Enter to play again"
	case core.Won:
		title = "YOU WIN"
		hint = fmt.Sprintf("Cleared in %.1fs  -  R or Enter to play again", ws.sim.RunTime())
	default:
		return
	}

	vector.FillRect(screen, 0, 0, float32(sw), float32(sh), cfg.BlackOverlay, false)
	drawCentered(screen, title, fonts.Title.Get(), float64(sh)/2-40, cfg.White)
	drawCentered(screen, hint, fonts.Regular.Get(), float64(sh)/2+10, cfg.LightBlue)

	best := ws.progress
	record := fmt.Sprintf("Furthest stage %d   Wins %d   Runs %d", best.FurthestStage, best.Wins, best.Runs)
	if best.BestTime > 0 {
		record += fmt.Sprintf("   Best %.1fs", best.BestTime)
	}
	drawCentered(screen, record, fonts.Small.Get(), float64(sh)/2+40, cfg.Grey)
}

func drawText(screen *ebiten.Image, s string, face text.Face, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}

func drawCentered(screen *ebiten.Image, s string, face text.Face, y float64, c color.Color) {
	w, _ := text.Measure(s, face, 0)
	drawText(screen, s, face, (float64(screen.Bounds().Dx())-w)/2, y, c)
}
