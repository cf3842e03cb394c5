package config

// BotDifficulty scales how quickly the single-player opponent reacts.
type BotDifficulty int

const (
	BotDifficultyEasy BotDifficulty = iota
	BotDifficultyNormal
	BotDifficultyHard
)

func (d BotDifficulty) String() string {
	switch d {
	case BotDifficultyEasy:
		return "easy"
	case BotDifficultyHard:
		return "hard"
	}
	return "normal"
}

// ParseBotDifficulty maps a flag value to a difficulty, defaulting to normal.
func ParseBotDifficulty(s string) BotDifficulty {
	switch s {
	case "easy":
		return BotDifficultyEasy
	case "hard":
		return BotDifficultyHard
	}
	return BotDifficultyNormal
}

// BotDifficultyConfig holds tuning values for the AI paddle at one difficulty
type BotDifficultyConfig struct {
	TrackGain   float64 // x smoothing while the puck is far away
	ThreatGain  float64 // x smoothing when the puck is in or heading to the AI half
	DepthFactor float64 // z gain relative to x gain
}

// BotConfigData holds all AI-related configuration
type BotConfigData struct {
	Difficulties map[BotDifficulty]BotDifficultyConfig

	MinX, MaxX     float64
	MinZ, MaxZ     float64
	GuardZ         float64 // retreat depth when the puck is in the opponent's half
	DefaultPuckPos [3]float64
}

// Bot holds AI paddle configuration
var Bot BotConfigData

func init() {
	Bot = BotConfigData{
		Difficulties: map[BotDifficulty]BotDifficultyConfig{
			BotDifficultyEasy: {
				TrackGain:   0.02,
				ThreatGain:  0.05,
				DepthFactor: 1.5,
			},
			BotDifficultyNormal: {
				TrackGain:   0.03,
				ThreatGain:  0.08,
				DepthFactor: 1.5,
			},
			BotDifficultyHard: {
				TrackGain:   0.05,
				ThreatGain:  0.12,
				DepthFactor: 1.5,
			},
		},
		MinX:           -2.5,
		MaxX:           2.5,
		MinZ:           -4.5,
		MaxZ:           -0.5,
		GuardZ:         -4.0,
		DefaultPuckPos: [3]float64{0, 0.1, 0},
	}
}
