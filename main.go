package main

import (
	"flag"
	"image"
	"log"
	"os"
	"path/filepath"

	"github.com/automoto/dragonfight/config"
	"github.com/automoto/dragonfight/core"
	"github.com/automoto/dragonfight/fonts"
	"github.com/automoto/dragonfight/level"
	"github.com/automoto/dragonfight/scenes"
	"github.com/automoto/dragonfight/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(opts scenes.Options) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewWorldScene(g, opts)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	levelPath := flag.String("level", "", "TMX file replacing the generated stage geometry")
	tuningPath := flag.String("tuning", "", "YAML tuning overrides, reloaded on change")
	stage := flag.Int("stage", 1, "Stage to start on (1-based)")
	seed := flag.Int64("seed", 1, "Random seed")
	flag.Parse()

	opts := scenes.Options{
		Sim: []core.Option{
			core.WithStage(*stage - 1),
			core.WithSeed(*seed),
		},
	}

	if *levelPath != "" {
		world, err := level.LoadTMX(os.DirFS(filepath.Dir(*levelPath)), filepath.Base(*levelPath))
		if err != nil {
			log.Printf("Warning: Could not load level, using generated stages: %v", err)
		} else {
			opts.Sim = append(opts.Sim, core.WithWorld(world))
		}
	}

	if *tuningPath != "" {
		if o, err := config.LoadOverrides(*tuningPath); err != nil {
			log.Printf("Warning: Could not load tuning: %v", err)
		} else if err := o.Apply(); err != nil {
			log.Printf("Warning: Could not apply tuning: %v", err)
		}

		watcher, err := config.NewWatcher(*tuningPath)
		if err != nil {
			log.Printf("Warning: Could not watch tuning file: %v", err)
		} else {
			defer watcher.Close()
			opts.Tuning = watcher.Overrides
			go func() {
				for err := range watcher.Errors {
					log.Printf("Warning: tuning reload failed: %v", err)
				}
			}()
		}
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	// Initialize persistence and load saved progress
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	opts.Progress = systems.LoadProgress()

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Dragon Fight")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame(opts)); err != nil {
		log.Fatal(err)
	}
}
