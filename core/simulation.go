// Package core owns one running game: the donburi world, the fixed-step
// clock, the tick order and the outer game flow (co-op join and leave,
// stage progression, game over). It has no dependency on ebitengine, so
// everything here runs headless.
package core

import (
	"log"
	"math/rand"

	"github.com/automoto/dragonfight/components"
	cfg "github.com/automoto/dragonfight/config"
	"github.com/automoto/dragonfight/level"
	"github.com/automoto/dragonfight/systems"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// State is the outer game state.
type State int

const (
	Playing State = iota
	Paused
	GameOver
	Won
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case GameOver:
		return "game over"
	case Won:
		return "won"
	}
	return "unknown"
}

// System is one step of the tick.
type System func(w donburi.World)

// TickOrder is the fixed order systems run in every step. Player input
// resolves before enemy decisions, movement before hits, hits before the
// animation that ends swings.
var TickOrder = []System{
	systems.UpdatePlayers,
	systems.UpdateEnemies,
	systems.UpdatePhysics,
	systems.UpdateHits,
	systems.UpdateAnimations,
	systems.UpdateDirector,
}

type options struct {
	stage int
	world *level.World
	seed  int64
}

// Option configures a new Simulation.
type Option func(*options)

// WithStage starts the run on a later stage (0-based).
func WithStage(index int) Option {
	return func(o *options) { o.stage = index }
}

// WithWorld replaces the generated collision world of every stage.
func WithWorld(w *level.World) Option {
	return func(o *options) { o.world = w }
}

// WithSeed fixes the random source.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// Simulation is the explicit context for one run. It is not safe for
// concurrent use; the outer loop drives it from a single goroutine.
type Simulation struct {
	world    donburi.World
	clock    Clock
	state    State
	override *level.World

	players  [2]*donburi.Entry
	p2Active bool
	runTime  float64
}

// New creates a run with player one standing at the start of the first
// stage (or the one named by WithStage).
func New(opts ...Option) *Simulation {
	o := options{seed: 1}
	for _, opt := range opts {
		opt(&o)
	}

	world := donburi.NewWorld()
	systems.GetOrCreateSession(world).Rand = rand.New(rand.NewSource(o.seed))

	s := &Simulation{
		world:    world,
		override: o.world,
	}
	s.players[0] = systems.SpawnPlayer(world, 0, systems.StartPosition(0))
	systems.StartStage(world, o.stage, s.override)
	return s
}

// World exposes the underlying world for the presentation layer.
func (s *Simulation) World() donburi.World {
	return s.world
}

func (s *Simulation) State() State {
	return s.state
}

// RunTime is the simulated time since the run started.
func (s *Simulation) RunTime() float64 {
	return s.runTime
}

func (s *Simulation) StageIndex() int {
	return systems.GetOrCreateLevel(s.world).StageIndex
}

// PlayerCount is the number of players taking part.
func (s *Simulation) PlayerCount() int {
	if s.p2Active {
		return 2
	}
	return 1
}

// Player returns a player's actor, or nil for a slot nobody has joined.
func (s *Simulation) Player(index int) *components.ActorData {
	if index < 0 || index >= len(s.players) || s.players[index] == nil {
		return nil
	}
	return components.Actor.Get(s.players[index])
}

// TogglePause switches between Playing and Paused. Other states ignore it.
func (s *Simulation) TogglePause() {
	switch s.state {
	case Playing:
		s.state = Paused
	case Paused:
		s.state = Playing
	}
}

// Restart begins a fresh run on the first stage with every joined player
// at full health.
func (s *Simulation) Restart() {
	s.state = Playing
	s.clock.Reset()
	s.runTime = 0

	for i, entry := range s.players {
		if entry == nil {
			continue
		}
		fresh := systems.InitPlayer(systems.StartPosition(i))
		if i == 1 && !s.p2Active {
			fresh.Health = 0
			fresh.State = cfg.Dead
		}
		components.Actor.SetValue(entry, fresh)
		components.PlayerInput.Get(entry).IdleTime = 0
	}
	systems.StartStage(s.world, 0, s.override)
}

// SetInput hands one frame of held actions to a player. Player two joins
// on their first input and leaves after InactivityLimit seconds without
// any.
func (s *Simulation) SetInput(index int, actions [cfg.ActionCount]bool, frameDt float64) {
	if index < 0 || index >= len(s.players) {
		return
	}

	if index == 1 && !s.p2Active {
		if !anyHeld(actions) {
			return
		}
		s.JoinPlayerTwo()
	}

	entry := s.players[index]
	if entry == nil {
		return
	}
	input := components.PlayerInput.Get(entry)
	input.Push(actions, frameDt)

	if index == 1 && input.IdleTime > cfg.Player.InactivityLimit {
		s.DropPlayerTwo()
	}
}

// JoinPlayerTwo brings player two in next to player one at full health.
func (s *Simulation) JoinPlayerTwo() {
	if s.p2Active {
		return
	}
	p1 := s.Player(0)
	pos := math.Vec2{X: p1.Position.X + cfg.Player.JoinOffset, Y: p1.Position.Y}

	if s.players[1] == nil {
		s.players[1] = systems.SpawnPlayer(s.world, 1, pos)
	} else {
		components.Actor.SetValue(s.players[1], systems.InitPlayer(pos))
		input := components.PlayerInput.Get(s.players[1])
		*input = components.PlayerInputData{PlayerIndex: 1}
	}
	s.p2Active = true
	log.Printf("Player 2 joined")
}

// DropPlayerTwo takes player two out of the run. The actor stays in the
// world as a dead body with no death hold.
func (s *Simulation) DropPlayerTwo() {
	if !s.p2Active {
		return
	}
	p2 := s.Player(1)
	p2.Health = 0
	p2.State = cfg.Dead
	p2.DeathTimer = 0
	p2.Velocity = math.Vec2{}
	p2.Grab = components.NoGrab
	p2.ClearAttack()
	s.p2Active = false
	log.Printf("Player 2 left after %.0fs without input", cfg.Player.InactivityLimit)
}

// Update runs the fixed steps owed for one frame and then the game flow
// checks. It returns the number of steps run.
func (s *Simulation) Update(frameDt float64) int {
	if s.state != Playing {
		return 0
	}

	steps := s.clock.Advance(frameDt)
	for i := 0; i < steps; i++ {
		s.Step()
	}
	s.checkFlow()
	return steps
}

// Step runs exactly one fixed tick in TickOrder.
func (s *Simulation) Step() {
	for _, system := range TickOrder {
		system(s.world)
	}

	session := systems.GetOrCreateSession(s.world)
	session.Ticks++
	session.Time += cfg.Loop.FixedStep
	s.runTime += cfg.Loop.FixedStep

	for _, entry := range s.players {
		if entry != nil {
			components.PlayerInput.Get(entry).ConsumeEdges()
		}
	}
}

func (s *Simulation) checkFlow() {
	if s.allPlayersDown() {
		s.state = GameOver
		log.Printf("Game over on stage %d", s.StageIndex()+1)
		return
	}

	if !systems.Cleared(s.world) || systems.LeadX(s.world) < systems.StageEndX(s.world) {
		return
	}

	next := s.StageIndex() + 1
	if next >= len(level.Stages) {
		s.state = Won
		log.Printf("All stages cleared in %.1fs", s.runTime)
		return
	}
	systems.StartStage(s.world, next, s.override)
}

// allPlayersDown is true once no joined player has health or a running
// death hold.
func (s *Simulation) allPlayersDown() bool {
	for i := 0; i < s.PlayerCount(); i++ {
		p := s.Player(i)
		if p == nil {
			continue
		}
		if p.Health > 0 || p.DeathTimer > 0 {
			return false
		}
	}
	return true
}

// Snapshot copies the presentation state of the current tick.
func (s *Simulation) Snapshot() systems.Snapshot {
	return systems.TakeSnapshot(s.world)
}

// DrainCues returns the sound cues queued since the last call.
func (s *Simulation) DrainCues() []cfg.SoundID {
	return systems.DrainSFX(s.world)
}

// ApplyOverrides installs reloaded tuning between frames.
func (s *Simulation) ApplyOverrides(o *cfg.Overrides) error {
	if err := o.Apply(); err != nil {
		return err
	}
	log.Printf("Tuning reloaded")
	return nil
}

func anyHeld(actions [cfg.ActionCount]bool) bool {
	for _, held := range actions {
		if held {
			return true
		}
	}
	return false
}
