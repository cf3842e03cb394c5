package systems

import (
	cfg "github.com/automoto/puckduel/config"
	"github.com/automoto/puckduel/physics"
)

// ReconcilePuck moves a non-authoritative puck a fixed fraction of the way to
// the last remote position. Velocity is never written here; large gaps are
// closed by the snap in ApplyInbound.
func ReconcilePuck(body physics.RigidBody, target physics.Vec3) {
	c := body.Translation()
	a := cfg.Puck.ReconcileAlpha
	body.SetTranslation(physics.V(
		c.X()+(target.X()-c.X())*a,
		cfg.Puck.RestY,
		c.Z()+(target.Z()-c.Z())*a,
	), true)
}
