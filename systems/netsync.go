package systems

import (
	"math"

	cfg "github.com/automoto/puckduel/config"
	"github.com/automoto/puckduel/physics"
	"github.com/automoto/puckduel/shared/messages"
	"github.com/yohamta/donburi"
)

// BuildOutbound constructs this tick's message for the peer, or nil in single
// player. The sender's paddle is always included; puck, velocity and score
// only while this peer owns the puck.
func BuildOutbound(w donburi.World) *messages.Message {
	auth := authority(w)
	if auth == nil || !auth.Role.Multiplayer() {
		return nil
	}

	var msg *messages.Message
	if auth.Role == cfg.RoleHost {
		msg = messages.NewState([3]float64(paddlePos(w, cfg.SideHost)))
	} else {
		msg = messages.NewInput([3]float64(paddlePos(w, cfg.SideClient)))
	}

	puck := puckBody(w)
	if !auth.Current || puck == nil {
		return msg
	}
	var goals [2]int
	if sc := score(w); sc != nil {
		goals = sc.Goals
	}
	return msg.WithPuck([3]float64(puck.Translation()), [3]float64(puck.Linvel()), goals)
}

// ApplyInbound folds a peer message into the network targets. Each field is
// applied independently and only when present. When this peer does not own
// the puck and its local puck has drifted too far in z, the puck is snapped to
// the reported position. It returns false for messages this role does not
// accept.
func ApplyInbound(w donburi.World, msg messages.Message) bool {
	auth := authority(w)
	targets := netTargets(w)
	if auth == nil || targets == nil {
		return false
	}

	switch {
	case msg.Type == messages.TypeState && auth.Role == cfg.RoleClient:
		if hp := msg.HostPaddle; hp != nil {
			targets.HostPaddle = physics.V(hp[0], cfg.Paddle.RestY, hp[2])
		}
	case msg.Type == messages.TypeInput && auth.Role == cfg.RoleHost:
		if pos := msg.Pos; pos != nil {
			targets.ClientPaddle = physics.V(pos[0], cfg.Paddle.RestY, pos[2])
		}
	default:
		return false
	}

	if msg.Vel != nil {
		targets.PuckVel = physics.Vec3(*msg.Vel)
	}
	if msg.Score != nil {
		applyScore(w, *msg.Score)
	}
	if p := msg.Puck; p != nil {
		targets.Puck = physics.V(p[0], cfg.Puck.RestY, p[2])
		if body := puckBody(w); body != nil && !auth.Current {
			if math.Abs(body.Translation().Z()-p[2]) > cfg.Puck.SnapDistance {
				body.SetTranslation(targets.Puck, true)
			}
		}
	}

	targets.Received++
	return true
}

// applyScore adopts the peer's score and replays the goal feedback for any
// side that went up.
func applyScore(w donburi.World, goals [2]int) {
	sc := score(w)
	if sc == nil {
		return
	}
	prev := sc.Goals
	sc.Goals = goals
	for side := range goals {
		if goals[side] > prev[side] {
			emit(w, cfg.SoundGoal)
			flashScore(w, cfg.Side(side))
		}
	}
}
