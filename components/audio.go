package components

import (
	cfg "github.com/automoto/puckduel/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound events raised during a tick (singleton component)
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
