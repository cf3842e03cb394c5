package systems

import (
	"math"

	"github.com/automoto/puckduel/components"
	cfg "github.com/automoto/puckduel/config"
	"github.com/automoto/puckduel/physics"
	"github.com/automoto/puckduel/tags"
	"github.com/yohamta/donburi"
)

// UpdatePaddles moves every paddle according to its driver. Paddles without a
// body are skipped.
func UpdatePaddles(w donburi.World) {
	var pointer physics.Vec3
	if entry, ok := components.Pointer.First(w); ok {
		pointer = components.Pointer.Get(entry).Target
	}
	targets := netTargets(w)

	tags.Paddle.Each(w, func(e *donburi.Entry) {
		body := components.BodyOf(e)
		if body == nil {
			return
		}
		pad := components.Paddle.Get(e)

		switch pad.Driver {
		case components.DriverLocal:
			DrivePaddle(body, pointer, cfg.Paddle.HumanSpeed)
		case components.DriverAI:
			puckPos := physics.Vec3(cfg.Bot.DefaultPuckPos)
			var puckVel physics.Vec3
			if puck := puckBody(w); puck != nil {
				puckPos = puck.Translation()
				puckVel = puck.Linvel()
			}
			next := AITarget(body.Translation(), puckPos, puckVel, cfg.Bot.Difficulties[pad.Difficulty])
			DrivePaddle(body, next, cfg.Paddle.AISpeed)
		case components.DriverRemote:
			if targets == nil {
				return
			}
			if pad.Side == cfg.SideClient {
				MoveProxy(body, targets.ClientPaddle, cfg.Paddle.ProxyAlpha)
			} else {
				FollowRemote(body, targets.HostPaddle, cfg.Paddle.HumanSpeed)
			}
		}
	})
}

// DrivePaddle commands a planar velocity proportional to the distance to
// target, stops any spin and pulls the paddle back to its resting height.
func DrivePaddle(body physics.RigidBody, target physics.Vec3, speed float64) {
	t := body.Translation()
	body.SetLinvel(physics.V((target.X()-t.X())*speed, 0, (target.Z()-t.Z())*speed), true)
	body.SetAngvel(physics.Vec3{}, true)
	if math.Abs(t.Y()-cfg.Paddle.RestY) > cfg.Paddle.DriftTolerance {
		body.SetTranslation(physics.V(t.X(), cfg.Paddle.RestY, t.Z()), true)
	}
}

// MoveProxy steps a kinematic stand-in a fraction alpha of the way to target.
func MoveProxy(body physics.RigidBody, target physics.Vec3, alpha float64) {
	t := body.Translation()
	body.SetNextKinematicTranslation(physics.V(
		t.X()+(target.X()-t.X())*alpha,
		cfg.Paddle.RestY,
		t.Z()+(target.Z()-t.Z())*alpha,
	))
}

// FollowRemote steers the opponent's paddle toward its last reported position
// by velocity. Height is left to the owner.
func FollowRemote(body physics.RigidBody, target physics.Vec3, speed float64) {
	t := body.Translation()
	body.SetLinvel(physics.V((target.X()-t.X())*speed, 0, (target.Z()-t.Z())*speed), true)
	body.SetAngvel(physics.Vec3{}, true)
}
