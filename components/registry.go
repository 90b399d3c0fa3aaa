package components

import (
	"github.com/yohamta/donburi"
)

// RegistryData is the dense, fixed-capacity store of active enemies.
// Slots [0, Count) are always live; removal swaps the last enemy into the
// freed slot, so indices held elsewhere go stale and every slot carries a
// serial that changes whenever its occupant does.
type RegistryData struct {
	Enemies []ActorData
	Serials []uint32
	Count   int

	nextSerial uint32
}

// NewRegistry returns an empty registry holding at most capacity enemies.
func NewRegistry(capacity int) RegistryData {
	if capacity < 0 {
		capacity = 0
	}
	return RegistryData{
		Enemies: make([]ActorData, capacity),
		Serials: make([]uint32, capacity),
	}
}

func (r *RegistryData) Cap() int { return len(r.Enemies) }
func (r *RegistryData) Len() int { return r.Count }

// Spawn appends an enemy. It returns the new slot, or false when full.
func (r *RegistryData) Spawn(a ActorData) (int, bool) {
	if r.Count >= len(r.Enemies) {
		return -1, false
	}
	idx := r.Count
	r.nextSerial++
	r.Enemies[idx] = a
	r.Serials[idx] = r.nextSerial
	r.Count++
	return idx, true
}

// Remove swap-removes the enemy at index and returns it. Out-of-range
// indices are ignored.
func (r *RegistryData) Remove(index int) (ActorData, bool) {
	if index < 0 || index >= r.Count {
		return ActorData{}, false
	}
	removed := r.Enemies[index]
	last := r.Count - 1
	if index < last {
		r.Enemies[index] = r.Enemies[last]
		r.Serials[index] = r.Serials[last]
	}
	r.Enemies[last] = ActorData{}
	r.Serials[last] = 0
	r.Count--
	return removed, true
}

// At returns the enemy in a live slot, or nil.
func (r *RegistryData) At(index int) *ActorData {
	if index < 0 || index >= r.Count {
		return nil
	}
	return &r.Enemies[index]
}

// Ref returns a weak reference to a live slot.
func (r *RegistryData) Ref(index int) GrabRef {
	if index < 0 || index >= r.Count {
		return NoGrab
	}
	return GrabRef{Index: index, Serial: r.Serials[index]}
}

// Resolve returns the enemy a reference points at if it is still the same
// enemy and still has health. Anything else yields nil.
func (r *RegistryData) Resolve(ref GrabRef) *ActorData {
	e := r.At(ref.Index)
	if e == nil || r.Serials[ref.Index] != ref.Serial || e.Health <= 0 {
		return nil
	}
	return e
}

// Active is the live prefix of the store.
func (r *RegistryData) Active() []ActorData {
	return r.Enemies[:r.Count]
}

// AliveCount counts enemies with health that are not in their dying hold.
func (r *RegistryData) AliveCount() int {
	alive := 0
	for i := 0; i < r.Count; i++ {
		if r.Enemies[i].Alive() {
			alive++
		}
	}
	return alive
}

// Clear empties the registry. Serials keep counting so old references never
// match a new occupant.
func (r *RegistryData) Clear() {
	for i := 0; i < r.Count; i++ {
		r.Enemies[i] = ActorData{}
		r.Serials[i] = 0
	}
	r.Count = 0
}

var Registry = donburi.NewComponentType[RegistryData]()
