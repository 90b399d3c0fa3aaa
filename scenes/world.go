package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/dragonfight/assets"
	cfg "github.com/automoto/dragonfight/config"
	"github.com/automoto/dragonfight/core"
	"github.com/automoto/dragonfight/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

const (
	layerWorld ecs.LayerID = iota
	layerHUD
)

// Options carries what the command line chose for a run.
type Options struct {
	Sim      []core.Option
	Tuning   <-chan *cfg.Overrides // nil when no overrides file is watched
	Progress systems.SavedProgress
}

// WorldScene runs one game: it feeds input to the simulation, plays its
// cues and draws its snapshots.
type WorldScene struct {
	ecs          *ecs.ECS
	sim          *core.Simulation
	sceneChanger SceneChanger
	opts         Options
	once         sync.Once

	tones    *assets.ToneBank
	snap     systems.Snapshot
	debug    bool
	recorded bool
	progress systems.SavedProgress

	stage       int
	banner      *gween.Sequence
	bannerAlpha float32
}

// NewWorldScene creates the game scene
func NewWorldScene(sc SceneChanger, opts Options) *WorldScene {
	return &WorldScene{sceneChanger: sc, opts: opts, progress: opts.Progress}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	ws.sim = core.New(ws.opts.Sim...)
	ws.ecs = ecs.NewECS(ws.sim.World())

	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(cfg.Audio.SampleRate)
	}
	ws.tones = assets.NewToneBank(ctx)
	ws.tones.PreloadAll()

	ws.ecs.AddSystem(ws.updateTuning)
	ws.ecs.AddSystem(ws.updateFlow)
	ws.ecs.AddSystem(ws.updateSimulation)
	ws.ecs.AddSystem(ws.updateCues)
	ws.ecs.AddSystem(ws.updateCamera)
	ws.ecs.AddSystem(ws.updateBanner)

	ws.ecs.AddRenderer(layerWorld, ws.drawStage)
	ws.ecs.AddRenderer(layerWorld, ws.drawActors)
	ws.ecs.AddRenderer(layerWorld, ws.drawDebug)
	ws.ecs.AddRenderer(layerHUD, ws.drawHUD)
	ws.ecs.AddRenderer(layerHUD, ws.drawOverlay)

	ws.stage = ws.sim.StageIndex()
	ws.startBanner()
	ws.snap = ws.sim.Snapshot()
}

func frameTime() float64 {
	return 1.0 / float64(ebiten.TPS())
}

// updateTuning applies any reloaded overrides between frames.
func (ws *WorldScene) updateTuning(_ *ecs.ECS) {
	if ws.opts.Tuning == nil {
		return
	}
	select {
	case o, ok := <-ws.opts.Tuning:
		if !ok {
			ws.opts.Tuning = nil
			return
		}
		if err := ws.sim.ApplyOverrides(o); err != nil {
			log.Printf("Warning: tuning not applied: %v", err)
			return
		}
		ws.tones.Invalidate()
	default:
	}
}

// updateFlow handles pause, restart and the debug overlay toggle.
func (ws *WorldScene) updateFlow(_ *ecs.ECS) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		ws.debug = !ws.debug
	}
	if pausePressed() {
		ws.sim.TogglePause()
	}
	if restartPressed() {
		ws.recordRun()
		ws.sim.Restart()
		ws.recorded = false
		systems.ResetCamera(ws.sim.World())
		ws.stage = ws.sim.StageIndex()
		ws.startBanner()
	}
}

func (ws *WorldScene) updateSimulation(_ *ecs.ECS) {
	dt := frameTime()
	held := pollPlayers()
	for slot := range held {
		ws.sim.SetInput(slot, held[slot], dt)
	}

	ws.sim.Update(dt)
	ws.snap = ws.sim.Snapshot()

	if stage := ws.sim.StageIndex(); stage != ws.stage {
		ws.stage = stage
		systems.ResetCamera(ws.sim.World())
		ws.startBanner()
	}

	switch ws.sim.State() {
	case core.GameOver, core.Won:
		ws.recordRun()
	}
}

// recordRun saves progress once per finished run.
func (ws *WorldScene) recordRun() {
	if ws.recorded {
		return
	}
	state := ws.sim.State()
	if state != core.GameOver && state != core.Won {
		return
	}
	ws.recorded = true
	ws.progress = systems.RecordRun(ws.progress, ws.sim.StageIndex(), state == core.Won, ws.sim.RunTime())
	if err := systems.SaveProgress(ws.progress); err != nil {
		log.Printf("Warning: Could not save progress: %v", err)
	}
}

func (ws *WorldScene) updateCues(e *ecs.ECS) {
	for _, cue := range ws.sim.DrainCues() {
		ws.tones.Play(cue)
		if cue == cfg.SoundDeath {
			systems.TriggerScreenShake(e.World, cfg.Camera.ShakeIntensity, cfg.Camera.ShakeFrames)
		}
	}
}

func (ws *WorldScene) updateCamera(e *ecs.ECS) {
	systems.UpdateCamera(e.World, float64(cfg.C.Width))
}

// startBanner fades the stage title in, holds it, and fades it out.
func (ws *WorldScene) startBanner() {
	seq := gween.NewSequence()
	seq.Add(
		gween.New(0, 1, 0.4, ease.OutQuad),
		gween.New(1, 1, 1.2, ease.Linear),
		gween.New(1, 0, 0.6, ease.InQuad),
	)
	ws.banner = seq
	ws.bannerAlpha = 0
}

func (ws *WorldScene) updateBanner(_ *ecs.ECS) {
	if ws.banner == nil {
		return
	}
	alpha, _, done := ws.banner.Update(float32(frameTime()))
	ws.bannerAlpha = alpha
	if done {
		ws.banner = nil
		ws.bannerAlpha = 0
	}
}
