package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundHit          // puck struck by a paddle
	SoundWall         // puck struck a rail
	SoundGoal
)

func (s SoundID) String() string {
	switch s {
	case SoundHit:
		return "hit"
	case SoundWall:
		return "wall"
	case SoundGoal:
		return "goal"
	}
	return "none"
}

// Waveform selects the oscillator shape of a tone.
type Waveform int

const (
	WaveSine Waveform = iota
	WaveSquare
)

// ToneSpec describes one oscillator voice with an exponential pitch and gain ramp.
type ToneSpec struct {
	Wave      Waveform
	StartHz   float64
	EndHz     float64
	SweepSecs float64 // time to reach EndHz
	Gain      float64
	Length    float64 // seconds; gain ramps to FloorGain over this span
	Offset    float64 // seconds after the trigger the voice starts
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
	FloorGain     float64
	Tones         map[SoundID][]ToneSpec
}

var Audio AudioConfig

func init() {
	goal := make([]ToneSpec, 0, 4)
	for i, hz := range []float64{523, 659, 784, 1047} {
		goal = append(goal, ToneSpec{
			Wave:      WaveSine,
			StartHz:   hz,
			EndHz:     hz,
			SweepSecs: 0.18,
			Gain:      0.4,
			Length:    0.18,
			Offset:    float64(i) * 0.12,
		})
	}

	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 1.0,
		FloorGain:     0.001,
		Tones: map[SoundID][]ToneSpec{
			SoundHit: {{
				Wave:      WaveSine,
				StartHz:   520,
				EndHz:     80,
				SweepSecs: 0.08,
				Gain:      0.6,
				Length:    0.12,
			}},
			SoundWall: {{
				Wave:      WaveSquare,
				StartHz:   260,
				EndHz:     120,
				SweepSecs: 0.06,
				Gain:      0.35,
				Length:    0.07,
			}},
			SoundGoal: goal,
		},
	}
}
