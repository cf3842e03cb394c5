package components

import (
	"github.com/automoto/puckduel/physics"
	"github.com/yohamta/donburi"
)

// NetTargetsData stores the latest remote state that local bodies are steered
// toward (singleton component). It is only written between ticks.
type NetTargetsData struct {
	Puck         physics.Vec3
	PuckVel      physics.Vec3
	HostPaddle   physics.Vec3
	ClientPaddle physics.Vec3
	Received     int // inbound messages applied
}

var NetTargets = donburi.NewComponentType[NetTargetsData]()
