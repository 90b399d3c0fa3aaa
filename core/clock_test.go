package core

import (
	"testing"

	cfg "github.com/automoto/dragonfight/config"
	"github.com/stretchr/testify/assert"
)

func TestClockCapsLongFrames(t *testing.T) {
	var c Clock

	// A 100ms hitch is capped to one long frame: two steps, nothing owed.
	assert.Equal(t, 2, c.Advance(0.1))
	assert.InDelta(t, 0, c.Remainder(), 1e-9)
}

func TestClockCarriesRemainder(t *testing.T) {
	var c Clock

	assert.Equal(t, 0, c.Advance(0.01))
	assert.InDelta(t, 0.01, c.Remainder(), 1e-9)

	assert.Equal(t, 1, c.Advance(0.01))
	assert.InDelta(t, 0.02-cfg.Loop.FixedStep, c.Remainder(), 1e-9)

	c.Reset()
	assert.Zero(t, c.Remainder())
}

func TestClockIgnoresNegativeTime(t *testing.T) {
	var c Clock
	assert.Equal(t, 0, c.Advance(-1))
	assert.Zero(t, c.Remainder())
}
