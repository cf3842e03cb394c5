package components

import (
	cfg "github.com/automoto/puckduel/config"
	"github.com/yohamta/donburi"
)

// ScoreData holds goals per side, indexed by cfg.Side (singleton component).
type ScoreData struct {
	Goals [2]int
}

var Score = donburi.NewComponentType[ScoreData]()

// Leader returns the side ahead and whether anyone is ahead.
func (s *ScoreData) Leader() (cfg.Side, bool) {
	switch {
	case s.Goals[cfg.SideHost] > s.Goals[cfg.SideClient]:
		return cfg.SideHost, true
	case s.Goals[cfg.SideClient] > s.Goals[cfg.SideHost]:
		return cfg.SideClient, true
	}
	return 0, false
}

// MatchData stores the current match state.
// This is a singleton component - only one match exists at a time.
type MatchData struct {
	State  cfg.MatchStateID
	Tick   uint64
	Time   float64  // simulated seconds while playing
	Winner cfg.Side // valid once State is finished
}

var Match = donburi.NewComponentType[MatchData]()
