package archetypes

import (
	"github.com/automoto/dragonfight/components"
	"github.com/automoto/dragonfight/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Actor,
		components.PlayerInput,
	)
	Level = newArchetype(
		components.Level,
	)
	Registry = newArchetype(
		components.Registry,
	)
	Audio = newArchetype(
		components.Audio,
	)
	Director = newArchetype(
		components.Director,
	)
	Session = newArchetype(
		components.Session,
	)
	Camera = newArchetype(
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates an entity with the archetype's components plus any extras.
// The simulation world is headless, so entities carry no render layer.
func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	e := w.Entry(w.Create(
		append(a.components, cs...)...,
	))
	return e
}
