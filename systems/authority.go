package systems

import (
	"log"

	cfg "github.com/automoto/puckduel/config"
	"github.com/automoto/puckduel/physics"
	"github.com/yohamta/donburi"
)

// RecomputeAuthority reports whether a peer in role owns the puck at puckZ.
// For any z exactly one of host and client is authoritative; z = 0 belongs to
// the host.
func RecomputeAuthority(role cfg.Role, puckZ float64) bool {
	switch role {
	case cfg.RoleSinglePlayer:
		return true
	case cfg.RoleHost:
		return puckZ >= 0
	}
	return puckZ < 0
}

// UpdateAuthority refreshes the authority flag. On a change it re-seeds the
// puck with the last velocity received from the peer, once per transition.
// Runs before the paddle and puck systems.
func UpdateAuthority(w donburi.World) {
	auth := authority(w)
	if auth == nil {
		return
	}

	puck := puckBody(w)
	z := 0.0
	if puck != nil {
		z = puck.Translation().Z()
	}
	auth.Current = RecomputeAuthority(auth.Role, z)

	if auth.Current == auth.Previous || puck == nil {
		return
	}

	targets := netTargets(w)
	if targets != nil {
		puck.SetLinvel(targets.PuckVel, true)
	}
	auth.Previous = auth.Current
	auth.Handoffs++

	// A peer that gave the puck away holds it where it last simulated it until
	// the new owner reports, and stops integrating it locally.
	if auth.Current {
		puck.SetKind(physics.Dynamic, true)
	} else {
		puck.SetKind(physics.PositionBased, true)
		if targets != nil {
			at := puck.Translation()
			targets.Puck = physics.V(at.X(), cfg.Puck.RestY, at.Z())
		}
	}

	if auth.Role.Multiplayer() {
		log.Printf("[match] %s authority %v at z=%.2f", auth.Role, auth.Current, z)
	}
}
