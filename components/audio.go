package components

import (
	cfg "github.com/automoto/dragonfight/config"
	"github.com/yohamta/donburi"
)

// AudioData queues fire-and-forget sound cues (singleton component). The
// simulation appends; the presentation layer drains once per frame.
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
