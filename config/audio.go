package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Combat sounds
	SoundPunch
	SoundKick
	SoundHit
	SoundDeath
	SoundThrow
	// Movement sounds
	SoundJump
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// ToneDef describes a synthesized cue: a frequency sweep with a decay.
type ToneDef struct {
	StartHz  float64
	EndHz    float64
	Duration float64 // seconds
	Noise    float64 // 0..1 mix of white noise
}

// SoundConfig maps sound IDs to their synthesized tones
type SoundConfig struct {
	Tones             map[SoundID]ToneDef
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.6,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]ToneDef{
			SoundPunch: {StartHz: 220, EndHz: 110, Duration: 0.08, Noise: 0.6},
			SoundKick:  {StartHz: 160, EndHz: 70, Duration: 0.12, Noise: 0.5},
			SoundHit:   {StartHz: 420, EndHz: 180, Duration: 0.1, Noise: 0.3},
			SoundDeath: {StartHz: 300, EndHz: 60, Duration: 0.6},
			SoundThrow: {StartHz: 180, EndHz: 520, Duration: 0.2, Noise: 0.2},
			SoundJump:  {StartHz: 260, EndHz: 640, Duration: 0.12},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundHit: 1.5,
		},
	}
}
