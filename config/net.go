package config

import "time"

// NetConfig contains loop and transport tuning.
type NetConfig struct {
	TickRate      int           // physics ticks per second
	SendEvery     int           // send one outbound message every N ticks; 1 sends every tick
	MaxStep       float64       // dt cap in seconds
	InboxSize     int           // buffered inbound frames before the oldest is dropped
	ErrorBacklog  int           // buffered transport errors before new ones are dropped
	WriteTimeout  time.Duration // per-frame write deadline
	DialTimeout   time.Duration
	ReportTimeout time.Duration // sentry flush budget on shutdown
}

// FXConfig holds flash decay rates in units per second.
type FXConfig struct {
	WallFlashDecay  float64
	GoalFlashDecay  float64
	ScoreFlashDecay float64
}

var (
	Net NetConfig
	FX  FXConfig
)

func init() {
	Net = NetConfig{
		TickRate:      60,
		SendEvery:     1,
		MaxStep:       0.05,
		InboxSize:     32,
		ErrorBacklog:  16,
		WriteTimeout:  250 * time.Millisecond,
		DialTimeout:   10 * time.Second,
		ReportTimeout: 2 * time.Second,
	}

	FX = FXConfig{
		WallFlashDecay:  7.0,
		GoalFlashDecay:  2.5,
		ScoreFlashDecay: 1.8,
	}
}
