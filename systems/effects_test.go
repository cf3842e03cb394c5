package systems

import (
	"math"
	"testing"

	cfg "github.com/automoto/puckduel/config"
)

func TestWallFlashDecays(t *testing.T) {
	w := newTestWorld(cfg.RoleSinglePlayer)
	emit(w, cfg.SoundWall)

	UpdateEffects(w, 1.0/14)
	if got := Snapshot(w).WallFlash; math.Abs(got-0.5) > 1e-3 {
		t.Fatalf("wall flash after half its life = %f, want 0.5", got)
	}

	UpdateEffects(w, 1.0/7)
	if got := Snapshot(w).WallFlash; got != 0 {
		t.Fatalf("wall flash after its life = %f, want 0", got)
	}
}

func TestFlashRatesDiffer(t *testing.T) {
	w := newTestWorld(cfg.RoleSinglePlayer)
	emit(w, cfg.SoundWall)
	emit(w, cfg.SoundGoal)
	flashScore(w, cfg.SideHost)

	UpdateEffects(w, 0.1)
	rs := Snapshot(w)
	if math.Abs(rs.WallFlash-0.3) > 1e-3 || math.Abs(rs.GoalFlash-0.75) > 1e-3 || math.Abs(rs.ScoreFlash[cfg.SideHost]-0.82) > 1e-3 {
		t.Fatalf("flashes after 0.1s = wall %f goal %f score %f", rs.WallFlash, rs.GoalFlash, rs.ScoreFlash[cfg.SideHost])
	}
	if rs.ScoreFlash[cfg.SideClient] != 0 {
		t.Fatalf("client score flashed")
	}
}

func TestClearTickEvents(t *testing.T) {
	w := newTestWorld(cfg.RoleSinglePlayer)
	emit(w, cfg.SoundHit)
	if !Snapshot(w).Hit {
		t.Fatalf("hit not flagged")
	}
	ClearTickEvents(w)
	if rs := Snapshot(w); rs.Hit || rs.Wall || rs.Goal {
		t.Fatalf("flags survived clear: %+v", rs)
	}
}
