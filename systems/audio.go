package systems

import (
	"github.com/automoto/dragonfight/archetypes"
	"github.com/automoto/dragonfight/components"
	cfg "github.com/automoto/dragonfight/config"
	"github.com/yohamta/donburi"
)

// GetOrCreateAudio returns the singleton Audio component for this world,
// creating it if needed.
func GetOrCreateAudio(w donburi.World) *components.AudioData {
	entry, ok := components.Audio.First(w)
	if !ok {
		entry = archetypes.Audio.Spawn(w)
		components.Audio.SetValue(entry, components.AudioData{
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}

// PlaySFX queues a sound effect to be played
func PlaySFX(w donburi.World, sound cfg.SoundID) {
	queueSFX(GetOrCreateAudio(w), sound)
}

// DrainSFX hands the queued cues to the caller and empties the queue.
func DrainSFX(w donburi.World) []cfg.SoundID {
	audioData := GetOrCreateAudio(w)
	if len(audioData.PendingSFX) == 0 {
		return nil
	}
	pending := append([]cfg.SoundID(nil), audioData.PendingSFX...)
	audioData.PendingSFX = audioData.PendingSFX[:0]
	return pending
}

func queueSFX(audioData *components.AudioData, sound cfg.SoundID) {
	if audioData == nil || sound == cfg.SoundNone {
		return
	}
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}
