package factory

import (
	"github.com/automoto/puckduel/archetypes"
	"github.com/automoto/puckduel/components"
	cfg "github.com/automoto/puckduel/config"
	"github.com/automoto/puckduel/physics"
	"github.com/yohamta/donburi"
)

// CreateTable spawns the match singletons, both paddles and the puck. Bodies
// are registered with space when it is not nil.
func CreateTable(w donburi.World, space *physics.World, role cfg.Role, difficulty cfg.BotDifficulty) {
	CreateSession(w, role)

	hostDriver, clientDriver := components.DriverLocal, components.DriverRemote
	switch role {
	case cfg.RoleClient:
		hostDriver, clientDriver = components.DriverRemote, components.DriverLocal
	case cfg.RoleSinglePlayer:
		clientDriver = components.DriverAI
	}
	CreatePaddle(w, space, cfg.SideHost, hostDriver, difficulty)
	CreatePaddle(w, space, cfg.SideClient, clientDriver, difficulty)
	CreatePuck(w, space)
}

// CreateSession spawns the singleton entity with its starting values.
func CreateSession(w donburi.World, role cfg.Role) *donburi.Entry {
	session := archetypes.Match.Spawn(w)

	components.Match.SetValue(session, components.MatchData{
		State: cfg.MatchStateWaiting,
	})
	components.Authority.SetValue(session, components.AuthorityData{
		Role:     role,
		Current:  true,
		Previous: true,
	})
	components.NetTargets.SetValue(session, components.NetTargetsData{
		Puck:         physics.V(0, cfg.Puck.RestY, 0),
		HostPaddle:   physics.Vec3(cfg.Paddle.HostStart),
		ClientPaddle: physics.Vec3(cfg.Paddle.ClientStart),
	})

	pointer := physics.Vec3(cfg.Paddle.HostStart)
	if role == cfg.RoleClient {
		pointer = physics.Vec3(cfg.Paddle.ClientStart)
	}
	components.Pointer.SetValue(session, components.PointerData{Target: pointer})

	return session
}

func CreatePaddle(w donburi.World, space *physics.World, side cfg.Side, driver components.PaddleDriver, difficulty cfg.BotDifficulty) *donburi.Entry {
	spawn := archetypes.HostPaddle
	start := physics.Vec3(cfg.Paddle.HostStart)
	if side == cfg.SideClient {
		spawn = archetypes.ClientPaddle
		start = physics.Vec3(cfg.Paddle.ClientStart)
	}
	paddle := spawn.Spawn(w)

	body := physics.NewBody(physics.Kinematic, start, cfg.Paddle.Radius)
	if space != nil {
		space.Add(body, physics.TagPaddle)
	}

	components.Paddle.SetValue(paddle, components.PaddleData{
		Side:       side,
		Driver:     driver,
		Difficulty: difficulty,
	})
	components.Body.SetValue(paddle, components.BodyData{Body: body})

	return paddle
}

func CreatePuck(w donburi.World, space *physics.World) *donburi.Entry {
	puck := archetypes.Puck.Spawn(w)

	body := physics.NewBody(physics.Dynamic, physics.V(0, cfg.Puck.RestY, 0), cfg.Puck.Radius)
	if space != nil {
		space.Add(body, physics.TagPuck)
	}
	components.Body.SetValue(puck, components.BodyData{Body: body})

	return puck
}
