package systems

import (
	"github.com/automoto/puckduel/components"
	cfg "github.com/automoto/puckduel/config"
	"github.com/automoto/puckduel/physics"
	"github.com/automoto/puckduel/tags"
	"github.com/yohamta/donburi"
)

func puckBody(w donburi.World) physics.RigidBody {
	entry, ok := tags.Puck.First(w)
	if !ok {
		return nil
	}
	return components.BodyOf(entry)
}

func paddleBody(w donburi.World, side cfg.Side) physics.RigidBody {
	tag := tags.HostPaddle
	if side == cfg.SideClient {
		tag = tags.ClientPaddle
	}
	entry, ok := tag.First(w)
	if !ok {
		return nil
	}
	return components.BodyOf(entry)
}

// paddlePos reads a paddle position, treating a missing paddle as parked at
// its start position.
func paddlePos(w donburi.World, side cfg.Side) physics.Vec3 {
	if body := paddleBody(w, side); body != nil {
		return body.Translation()
	}
	return startPos(side)
}

func startPos(side cfg.Side) physics.Vec3 {
	if side == cfg.SideClient {
		return physics.Vec3(cfg.Paddle.ClientStart)
	}
	return physics.Vec3(cfg.Paddle.HostStart)
}

func authority(w donburi.World) *components.AuthorityData {
	entry, ok := components.Authority.First(w)
	if !ok {
		return nil
	}
	return components.Authority.Get(entry)
}

func netTargets(w donburi.World) *components.NetTargetsData {
	entry, ok := components.NetTargets.First(w)
	if !ok {
		return nil
	}
	return components.NetTargets.Get(entry)
}

func score(w donburi.World) *components.ScoreData {
	entry, ok := components.Score.First(w)
	if !ok {
		return nil
	}
	return components.Score.Get(entry)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
