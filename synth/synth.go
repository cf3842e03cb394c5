// Package synth renders the game's sound effects as raw PCM so no audio
// assets have to ship with the binary.
package synth

import (
	"encoding/binary"
	"math"

	cfg "github.com/automoto/puckduel/config"
)

// BytesPerFrame is the size of one 16-bit stereo sample frame.
const BytesPerFrame = 4

// Render returns signed 16-bit little-endian stereo PCM for id, or nil when
// id has no tones.
func Render(id cfg.SoundID, sampleRate int) []byte {
	tones, ok := cfg.Audio.Tones[id]
	if !ok {
		return nil
	}
	return RenderTones(tones, sampleRate, cfg.Audio.FloorGain)
}

// RenderTones mixes the voices into one buffer long enough for the last
// voice to finish. floor is the gain every voice decays to.
func RenderTones(tones []cfg.ToneSpec, sampleRate int, floor float64) []byte {
	if len(tones) == 0 || sampleRate <= 0 {
		return nil
	}

	end := 0.0
	for _, t := range tones {
		end = max(end, t.Offset+t.Length)
	}
	frames := int(math.Round(end * float64(sampleRate)))
	mix := make([]float64, frames)
	for _, t := range tones {
		addVoice(mix, t, sampleRate, floor)
	}

	out := make([]byte, frames*BytesPerFrame)
	for i, s := range mix {
		v := uint16(int16(math.Round(clampUnit(s) * math.MaxInt16)))
		binary.LittleEndian.PutUint16(out[i*BytesPerFrame:], v)
		binary.LittleEndian.PutUint16(out[i*BytesPerFrame+2:], v)
	}
	return out
}

func addVoice(mix []float64, t cfg.ToneSpec, sampleRate int, floor float64) {
	sr := float64(sampleRate)
	start := int(math.Round(t.Offset * sr))
	n := int(math.Round(t.Length * sr))

	phase := 0.0
	for i := 0; i < n && start+i < len(mix); i++ {
		at := float64(i) / sr
		var s float64
		switch t.Wave {
		case cfg.WaveSquare:
			s = 1
			if math.Sin(phase) < 0 {
				s = -1
			}
		default:
			s = math.Sin(phase)
		}
		mix[start+i] += s * Ramp(t.Gain, floor, at, t.Length)
		phase += 2 * math.Pi * Ramp(t.StartHz, t.EndHz, at, t.SweepSecs) / sr
	}
}

// Ramp moves exponentially from a to b over span seconds and holds b after.
// Both ends must be positive.
func Ramp(a, b, at, span float64) float64 {
	if span <= 0 || at >= span {
		return b
	}
	if a <= 0 || b <= 0 || a == b {
		return a
	}
	return a * math.Pow(b/a, at/span)
}

func clampUnit(v float64) float64 {
	return max(-1, min(1, v))
}
