package core

import (
	cfg "github.com/automoto/dragonfight/config"
)

// Clock turns variable frame times into whole fixed steps. Frame time is
// capped and at most Loop.MaxSteps steps run per frame; whatever is left
// over carries into the next frame.
type Clock struct {
	accumulator float64
}

// Advance adds one frame's wall time and returns how many fixed steps to
// run for it.
func (c *Clock) Advance(frameDt float64) int {
	if frameDt < 0 {
		frameDt = 0
	}
	if frameDt > cfg.Loop.MaxFrameTime {
		frameDt = cfg.Loop.MaxFrameTime
	}
	c.accumulator += frameDt

	step := cfg.Loop.FixedStep
	if step <= 0 {
		return 0
	}

	steps := 0
	for c.accumulator >= step && steps < cfg.Loop.MaxSteps {
		c.accumulator -= step
		steps++
	}
	// Never owe more than one capped frame.
	if c.accumulator > cfg.Loop.MaxFrameTime {
		c.accumulator = cfg.Loop.MaxFrameTime
	}
	return steps
}

// Remainder is the time carried into the next frame.
func (c *Clock) Remainder() float64 {
	return c.accumulator
}

// Reset drops any carried time.
func (c *Clock) Reset() {
	c.accumulator = 0
}
