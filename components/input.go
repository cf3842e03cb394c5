package components

import (
	"github.com/automoto/puckduel/physics"
	"github.com/yohamta/donburi"
)

// PointerData is the local player's target on the table plane (singleton
// component). Projection from screen space happens outside the match.
type PointerData struct {
	Target physics.Vec3
}

var Pointer = donburi.NewComponentType[PointerData]()
