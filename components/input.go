package components

import (
	cfg "github.com/automoto/dragonfight/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// PlayerInputData stores per-player input state. The presentation layer
// pushes the held actions each frame; the simulation only reads them.
// Presses and releases latch until a tick consumes them, so a tap that
// starts and ends between two ticks is still seen.
type PlayerInputData struct {
	PlayerIndex   int                   // 0 or 1
	CurrentInput  [cfg.ActionCount]bool // Current frame's Pressed state
	PreviousInput [cfg.ActionCount]bool // Previous frame's Pressed state
	Pressed       [cfg.ActionCount]bool // Went down since the last tick
	Released      [cfg.ActionCount]bool // Went up since the last tick
	IdleTime      float64               // Seconds since any action was held
}

// Push rotates the frame buffers, stores this frame's pressed state and
// latches any edges.
func (p *PlayerInputData) Push(current [cfg.ActionCount]bool, dt float64) {
	p.PreviousInput = p.CurrentInput
	p.CurrentInput = current
	for i := range current {
		if current[i] && !p.PreviousInput[i] {
			p.Pressed[i] = true
		}
		if !current[i] && p.PreviousInput[i] {
			p.Released[i] = true
		}
	}
	if p.Any() {
		p.IdleTime = 0
	} else {
		p.IdleTime += dt
	}
}

// ConsumeEdges clears the latched presses and releases once a tick has
// seen them; held actions stay held.
func (p *PlayerInputData) ConsumeEdges() {
	p.PreviousInput = p.CurrentInput
	p.Pressed = [cfg.ActionCount]bool{}
	p.Released = [cfg.ActionCount]bool{}
}

// Any reports whether any action is held this frame.
func (p *PlayerInputData) Any() bool {
	for _, held := range p.CurrentInput {
		if held {
			return true
		}
	}
	return false
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()
