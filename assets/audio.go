package assets

import (
	"github.com/automoto/dragonfight/assets/tone"
	cfg "github.com/automoto/dragonfight/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// ToneBank handles synthesizing and caching of sound cues
type ToneBank struct {
	sfxCache map[cfg.SoundID][]byte // Cache rendered PCM per cue
	context  *audio.Context
	volume   float64
}

// NewToneBank creates a tone bank playing through ctx
func NewToneBank(ctx *audio.Context) *ToneBank {
	return &ToneBank{
		sfxCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
		volume:   cfg.Audio.DefaultSFXVol,
	}
}

// PreloadAll renders every configured cue up front so the first play does
// not stall a frame.
func (b *ToneBank) PreloadAll() {
	for id := range cfg.Sound.Tones {
		b.pcm(id)
	}
}

// Invalidate drops rendered cues, for after the tuning has been reloaded.
func (b *ToneBank) Invalidate() {
	clear(b.sfxCache)
}

func (b *ToneBank) pcm(id cfg.SoundID) ([]byte, bool) {
	if cached, ok := b.sfxCache[id]; ok {
		return cached, true
	}
	def, ok := cfg.Sound.Tones[id]
	if !ok {
		return nil, false
	}

	volume := b.volume
	if mult, ok := cfg.Sound.VolumeMultipliers[id]; ok {
		volume *= mult
	}
	rendered := tone.Synthesize(def, b.context.SampleRate(), volume, int64(id))
	b.sfxCache[id] = rendered
	return rendered, true
}

// Play starts a cue. Unknown cues are ignored.
func (b *ToneBank) Play(id cfg.SoundID) {
	data, ok := b.pcm(id)
	if !ok || len(data) == 0 {
		return
	}
	b.context.NewPlayerFromBytes(data).Play()
}
