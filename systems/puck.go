package systems

import (
	"math"

	"github.com/automoto/puckduel/components"
	cfg "github.com/automoto/puckduel/config"
	"github.com/automoto/puckduel/physics"
	"github.com/automoto/puckduel/tags"
	"github.com/yohamta/donburi"
)

// UpdatePuck runs the simulator when this peer owns the puck and the
// reconciler otherwise. It must run after UpdateAuthority.
func UpdatePuck(w donburi.World) {
	entry, ok := tags.Puck.First(w)
	if !ok {
		return
	}
	body := components.BodyOf(entry)
	auth := authority(w)
	if body == nil || auth == nil {
		return
	}

	if !auth.Current {
		if targets := netTargets(w); targets != nil {
			ReconcilePuck(body, targets.Puck)
		}
		return
	}

	sc := score(w)
	if sc == nil {
		return
	}
	host := paddlePos(w, cfg.SideHost)
	client := paddlePos(w, cfg.SideClient)
	before := sc.Goals

	events := SimulatePuck(body, components.Puck.Get(entry), host, client, sc)
	for _, ev := range events {
		emit(w, ev)
	}
	for side := range sc.Goals {
		if sc.Goals[side] > before[side] {
			flashScore(w, cfg.Side(side))
		}
	}
}

// SimulatePuck applies one authoritative tick of table rules to body and
// returns the sound events it raised, in order. host and client are the
// paddle positions used to tell paddle impacts from rail impacts.
func SimulatePuck(body physics.RigidBody, state *components.PuckData, host, client physics.Vec3, sc *components.ScoreData) []cfg.SoundID {
	var events []cfg.SoundID

	p := body.Translation()
	v := body.Linvel()

	speed := physics.PlanarSpeed(v)
	if speed-state.PrevSpeed > cfg.Puck.ImpactThreshold {
		if physics.PlanarDist(p, host) < cfg.Puck.HitRadius || physics.PlanarDist(p, client) < cfg.Puck.HitRadius {
			events = append(events, cfg.SoundHit)
		} else {
			events = append(events, cfg.SoundWall)
		}
	}
	state.PrevSpeed = speed

	av := body.Angvel()
	body.SetAngvel(physics.V(0, av.Y(), 0), true)

	py, vy := p.Y(), v.Y()
	if math.Abs(py-cfg.Puck.RestY) > cfg.Puck.DriftTolerance {
		py, vy = cfg.Puck.RestY, 0
	}

	px, vx, hitX := reflect(p.X(), v.X(), cfg.Table.HalfWidth)
	if hitX {
		events = append(events, cfg.SoundWall)
	}

	pz, vz := p.Z(), v.Z()
	if math.Abs(px) >= cfg.Table.GoalHalfGap {
		var hitZ bool
		pz, vz, hitZ = reflect(pz, vz, cfg.Table.HalfLength)
		if hitZ {
			events = append(events, cfg.SoundWall)
		}
	}

	eps := cfg.Table.MoveEpsilon
	if math.Abs(px-p.X()) > eps || math.Abs(py-p.Y()) > eps || math.Abs(pz-p.Z()) > eps {
		body.SetTranslation(physics.V(px, py, pz), true)
		body.SetLinvel(physics.V(vx, vy, vz), true)
	}

	switch {
	case p.Z() > cfg.Table.GoalLine:
		sc.Goals[cfg.SideClient]++
		events = append(events, cfg.SoundGoal)
		resetPuck(body)
	case p.Z() < -cfg.Table.GoalLine:
		sc.Goals[cfg.SideHost]++
		events = append(events, cfg.SoundGoal)
		resetPuck(body)
	case p.Y() < cfg.Table.FallLimit:
		resetPuck(body)
	}

	return events
}

// reflect clamps pos to [-limit, limit]. A velocity still heading out is
// reversed and damped, and hit reports that a bounce happened.
func reflect(pos, vel, limit float64) (float64, float64, bool) {
	hit := false
	if pos < -limit {
		pos = -limit
		if vel < 0 {
			vel = -vel * cfg.Table.Restitution
			hit = true
		}
	}
	if pos > limit {
		pos = limit
		if vel > 0 {
			vel = -vel * cfg.Table.Restitution
			hit = true
		}
	}
	return pos, vel, hit
}

func resetPuck(body physics.RigidBody) {
	body.SetTranslation(physics.V(0, cfg.Puck.RestY, 0), true)
	body.SetLinvel(physics.Vec3{}, true)
}
