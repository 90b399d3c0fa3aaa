// Package tone synthesizes the game's sound cues as raw PCM so no audio
// files need to ship with the binary.
package tone

import (
	"encoding/binary"
	"math"
	"math/rand"

	cfg "github.com/automoto/dragonfight/config"
)

// BytesPerSample is one 16-bit little-endian stereo frame.
const BytesPerSample = 4

// Synthesize renders def as 16-bit stereo PCM at sampleRate. The pitch
// sweeps linearly from StartHz to EndHz under an exponential decay; Noise
// mixes in white noise drawn from seed.
func Synthesize(def cfg.ToneDef, sampleRate int, volume float64, seed int64) []byte {
	if def.Duration <= 0 || sampleRate <= 0 {
		return nil
	}
	n := int(def.Duration * float64(sampleRate))
	out := make([]byte, n*BytesPerSample)
	rng := rand.New(rand.NewSource(seed))

	noise := math.Max(0, math.Min(1, def.Noise))
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		hz := def.StartHz + (def.EndHz-def.StartHz)*t
		phase += 2 * math.Pi * hz / float64(sampleRate)

		wave := math.Sin(phase)
		if noise > 0 {
			wave = wave*(1-noise) + (rng.Float64()*2-1)*noise
		}
		env := math.Exp(-4 * t)
		v := int16(clamp(wave*env*volume, -1, 1) * math.MaxInt16)

		binary.LittleEndian.PutUint16(out[i*BytesPerSample:], uint16(v))
		binary.LittleEndian.PutUint16(out[i*BytesPerSample+2:], uint16(v))
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
