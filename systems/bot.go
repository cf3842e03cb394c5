package systems

import (
	cfg "github.com/automoto/puckduel/config"
	"github.com/automoto/puckduel/physics"
)

// AITarget computes the next position of the single-player opponent, which
// defends the -z goal. The x gain rises when the puck is in, or heading
// toward, the AI's half. The result always lies inside the AI's box.
func AITarget(cur, puckPos, puckVel physics.Vec3, d cfg.BotDifficultyConfig) physics.Vec3 {
	gain := d.TrackGain
	if puckPos.Z() < 0 || puckVel.Z() < 0 {
		gain = d.ThreatGain
	}

	x := cur.X() + (puckPos.X()-cur.X())*gain
	x = clamp(x, cfg.Bot.MinX, cfg.Bot.MaxX)

	targetZ := min(cfg.Bot.MaxZ, puckPos.Z())
	if puckPos.Z() > 0 {
		targetZ = cfg.Bot.GuardZ
	}
	z := cur.Z() + (targetZ-cur.Z())*gain*d.DepthFactor
	z = clamp(z, cfg.Bot.MinZ, cfg.Bot.MaxZ)

	return physics.V(x, cfg.Paddle.RestY, z)
}
