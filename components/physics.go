package components

import (
	"github.com/automoto/puckduel/physics"
	"github.com/yohamta/donburi"
)

// BodyData links an entity to its rigid body. Body is nil until the physics
// side has created it.
type BodyData struct {
	Body physics.RigidBody
}

var Body = donburi.NewComponentType[BodyData]()

// BodyOf returns the entry's body or nil.
func BodyOf(e *donburi.Entry) physics.RigidBody {
	if e == nil || !e.Valid() || !e.HasComponent(Body) {
		return nil
	}
	return Body.Get(e).Body
}
