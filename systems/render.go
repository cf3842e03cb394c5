package systems

import (
	"github.com/automoto/puckduel/components"
	cfg "github.com/automoto/puckduel/config"
	"github.com/automoto/puckduel/physics"
	"github.com/yohamta/donburi"
)

// RenderState is what a presentation layer needs to draw one frame.
type RenderState struct {
	Tick         uint64
	Match        cfg.MatchStateID
	Authority    bool
	Puck         physics.Vec3
	PuckSpeed    float64
	HostPaddle   physics.Vec3
	ClientPaddle physics.Vec3
	Score        [2]int

	WallFlash  float64
	GoalFlash  float64
	ScoreFlash [2]float64

	Hit  bool // a paddle struck the puck this tick
	Wall bool
	Goal bool
}

// Snapshot copies the current render-relevant state out of the world.
func Snapshot(w donburi.World) RenderState {
	rs := RenderState{
		Puck:         physics.Vec3(cfg.Bot.DefaultPuckPos),
		HostPaddle:   paddlePos(w, cfg.SideHost),
		ClientPaddle: paddlePos(w, cfg.SideClient),
	}
	if puck := puckBody(w); puck != nil {
		rs.Puck = puck.Translation()
		rs.PuckSpeed = physics.PlanarSpeed(puck.Linvel())
	}
	if auth := authority(w); auth != nil {
		rs.Authority = auth.Current
	}
	if sc := score(w); sc != nil {
		rs.Score = sc.Goals
	}
	if entry, ok := components.Match.First(w); ok {
		m := components.Match.Get(entry)
		rs.Tick = m.Tick
		rs.Match = m.State
	}
	if entry, ok := components.Flash.First(w); ok {
		f := components.Flash.Get(entry)
		rs.WallFlash, rs.GoalFlash, rs.ScoreFlash = f.Wall, f.Goal, f.Score
		rs.Hit, rs.Wall, rs.Goal = f.HitThisTick, f.WallThisTick, f.GoalThisTick
	}
	return rs
}
