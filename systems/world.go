package systems

import (
	"math/rand"
	"sort"

	"github.com/automoto/dragonfight/archetypes"
	"github.com/automoto/dragonfight/components"
	cfg "github.com/automoto/dragonfight/config"
	"github.com/automoto/dragonfight/level"
	"github.com/automoto/dragonfight/tags"
	"github.com/yohamta/donburi"
)

// dt is the simulation step every system advances by.
func dt() float64 {
	return cfg.Loop.FixedStep
}

// GetOrCreateRegistry returns the enemy registry singleton, creating it if
// needed.
func GetOrCreateRegistry(w donburi.World) *components.RegistryData {
	entry, ok := components.Registry.First(w)
	if !ok {
		entry = archetypes.Registry.Spawn(w)
		components.Registry.SetValue(entry, components.NewRegistry(cfg.Enemy.Capacity))
	}
	return components.Registry.Get(entry)
}

// GetOrCreateLevel returns the level singleton, creating an empty one if
// needed.
func GetOrCreateLevel(w donburi.World) *components.LevelData {
	entry, ok := components.Level.First(w)
	if !ok {
		entry = archetypes.Level.Spawn(w)
		_, def := level.StageAt(0)
		components.Level.SetValue(entry, components.LevelData{Stage: def})
	}
	return components.Level.Get(entry)
}

// GetOrCreateDirector returns the wave director singleton.
func GetOrCreateDirector(w donburi.World) *components.DirectorData {
	entry, ok := components.Director.First(w)
	if !ok {
		entry = archetypes.Director.Spawn(w)
	}
	return components.Director.Get(entry)
}

// GetOrCreateSession returns the session singleton. A missing session gets
// a fixed seed so behavior stays reproducible.
func GetOrCreateSession(w donburi.World) *components.SessionData {
	entry, ok := components.Session.First(w)
	if !ok {
		entry = archetypes.Session.Spawn(w)
		components.Session.SetValue(entry, components.SessionData{
			Rand: rand.New(rand.NewSource(1)),
		})
	}
	session := components.Session.Get(entry)
	if session.Rand == nil {
		session.Rand = rand.New(rand.NewSource(1))
	}
	return session
}

// playerSlot pairs a player's actor with its input.
type playerSlot struct {
	Actor *components.ActorData
	Input *components.PlayerInputData
}

// players returns every player ordered by player index.
func players(w donburi.World) []playerSlot {
	var out []playerSlot
	tags.Player.Each(w, func(e *donburi.Entry) {
		out = append(out, playerSlot{
			Actor: components.Actor.Get(e),
			Input: components.PlayerInput.Get(e),
		})
	})
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Input.PlayerIndex < out[j].Input.PlayerIndex
	})
	return out
}

// playerActors returns the actors of every player ordered by player index.
func playerActors(w donburi.World) []*components.ActorData {
	slots := players(w)
	out := make([]*components.ActorData, len(slots))
	for i, s := range slots {
		out[i] = s.Actor
	}
	return out
}

// LeadX is the right-most X among living players, or player one's X when
// nobody is alive.
func LeadX(w donburi.World) float64 {
	slots := players(w)
	lead := 0.0
	found := false
	for _, s := range slots {
		if s.Actor.Health <= 0 {
			continue
		}
		if !found || s.Actor.Position.X > lead {
			lead = s.Actor.Position.X
			found = true
		}
	}
	if !found && len(slots) > 0 {
		lead = slots[0].Actor.Position.X
	}
	return lead
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// countdown decrements a timer and saturates it at zero.
func countdown(t *float64, dt float64) {
	if *t > 0 {
		*t -= dt
		if *t < 0 {
			*t = 0
		}
	}
}
