package components

import (
	cfg "github.com/automoto/puckduel/config"
	"github.com/yohamta/donburi"
)

// PaddleDriver selects which controller moves a paddle.
type PaddleDriver int

const (
	DriverLocal  PaddleDriver = iota // pointer target, velocity drive
	DriverRemote                     // network target
	DriverAI                         // single-player opponent
)

func (d PaddleDriver) String() string {
	switch d {
	case DriverLocal:
		return "local"
	case DriverRemote:
		return "remote"
	case DriverAI:
		return "ai"
	}
	return "unknown"
}

type PaddleData struct {
	Side       cfg.Side
	Driver     PaddleDriver
	Difficulty cfg.BotDifficulty // only read for DriverAI
}

var Paddle = donburi.NewComponentType[PaddleData]()
