package components

import (
	"testing"

	cfg "github.com/automoto/dragonfight/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func enemyWithHealth(h int) ActorData {
	return ActorData{Health: h, MaxHealth: h}
}

func TestRegistryStaysDense(t *testing.T) {
	r := NewRegistry(10)
	for i := 1; i <= 6; i++ {
		_, ok := r.Spawn(enemyWithHealth(i * 10))
		require.True(t, ok)
	}

	steps := []int{1, 3, 0, 10, -1}
	for _, idx := range steps {
		r.Remove(idx)
		for i := 0; i < r.Len(); i++ {
			assert.Greater(t, r.At(i).Health, 0, "slot %d after removing %d", i, idx)
			assert.NotZero(t, r.Serials[i])
		}
		for i := r.Len(); i < r.Cap(); i++ {
			assert.Zero(t, r.Enemies[i].Health)
		}
	}
	assert.Equal(t, 3, r.Len())
	assert.Len(t, r.Active(), 3)
}

func TestRegistryRemoveSwapsLast(t *testing.T) {
	r := NewRegistry(4)
	r.Spawn(enemyWithHealth(10))
	r.Spawn(enemyWithHealth(20))
	r.Spawn(enemyWithHealth(30))

	removed, ok := r.Remove(0)
	require.True(t, ok)
	assert.Equal(t, 10, removed.Health)
	assert.Equal(t, 30, r.At(0).Health)
	assert.Equal(t, 20, r.At(1).Health)
	assert.Nil(t, r.At(2))

	_, ok = r.Remove(5)
	assert.False(t, ok)
}

func TestRegistryCapacity(t *testing.T) {
	r := NewRegistry(2)
	_, ok := r.Spawn(enemyWithHealth(10))
	require.True(t, ok)
	_, ok = r.Spawn(enemyWithHealth(10))
	require.True(t, ok)

	idx, ok := r.Spawn(enemyWithHealth(10))
	assert.False(t, ok)
	assert.Equal(t, -1, idx)
	assert.Equal(t, 2, r.Len())

	empty := NewRegistry(-3)
	_, ok = empty.Spawn(enemyWithHealth(10))
	assert.False(t, ok)
}

func TestRegistryResolve(t *testing.T) {
	r := NewRegistry(4)
	r.Spawn(enemyWithHealth(10))
	r.Spawn(enemyWithHealth(20))

	ref := r.Ref(0)
	require.True(t, ref.Held())
	assert.Equal(t, 10, r.Resolve(ref).Health)

	// The slot's occupant changes: the old reference no longer matches.
	r.Remove(0)
	assert.Equal(t, 20, r.At(0).Health)
	assert.Nil(t, r.Resolve(ref))

	// A reference to a dead enemy resolves to nothing.
	ref = r.Ref(0)
	r.At(0).Health = 0
	assert.Nil(t, r.Resolve(ref))

	// Serials survive a clear.
	r.Clear()
	r.Spawn(enemyWithHealth(10))
	assert.Nil(t, r.Resolve(ref))

	assert.False(t, r.Ref(7).Held())
	assert.False(t, NoGrab.Held())
	assert.Nil(t, r.Resolve(NoGrab))
}

func TestRegistryAliveCount(t *testing.T) {
	r := NewRegistry(4)
	r.Spawn(enemyWithHealth(10))
	r.Spawn(enemyWithHealth(10))
	r.Spawn(enemyWithHealth(10))
	r.At(1).Health = 0
	r.At(2).DeathTimer = 1

	assert.Equal(t, 1, r.AliveCount())
}

func TestInputEdges(t *testing.T) {
	var in PlayerInputData
	var held [cfg.ActionCount]bool
	held[cfg.ActionJump] = true

	in.Push(held, 0.1)
	assert.True(t, in.Any())
	assert.Zero(t, in.IdleTime)
	assert.False(t, in.PreviousInput[cfg.ActionJump])

	in.ConsumeEdges()
	assert.True(t, in.PreviousInput[cfg.ActionJump])
	assert.True(t, in.CurrentInput[cfg.ActionJump])

	in.Push([cfg.ActionCount]bool{}, 0.1)
	in.Push([cfg.ActionCount]bool{}, 0.1)
	assert.False(t, in.Any())
	assert.InDelta(t, 0.2, in.IdleTime, 1e-9)
}

func TestInputLatchesTapBetweenTicks(t *testing.T) {
	var in PlayerInputData
	var held [cfg.ActionCount]bool
	held[cfg.ActionGrab] = true

	in.Push(held, 0.01)
	in.Push([cfg.ActionCount]bool{}, 0.01)

	assert.False(t, in.CurrentInput[cfg.ActionGrab])
	assert.True(t, in.Pressed[cfg.ActionGrab])
	assert.True(t, in.Released[cfg.ActionGrab])

	in.ConsumeEdges()
	assert.False(t, in.Pressed[cfg.ActionGrab])
	assert.False(t, in.Released[cfg.ActionGrab])
}
