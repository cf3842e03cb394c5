package systems

import (
	"log"

	"github.com/automoto/puckduel/components"
	cfg "github.com/automoto/puckduel/config"
	"github.com/yohamta/donburi"
)

// MatchState returns the current match state, or waiting when there is no match.
func MatchState(w donburi.World) cfg.MatchStateID {
	entry, ok := components.Match.First(w)
	if !ok {
		return cfg.MatchStateWaiting
	}
	return components.Match.Get(entry).State
}

// SetMatchState moves the match to state. A finished match stays finished.
func SetMatchState(w donburi.World, state cfg.MatchStateID) {
	entry, ok := components.Match.First(w)
	if !ok {
		return
	}
	match := components.Match.Get(entry)
	if match.State == cfg.MatchStateFinished || match.State == state {
		return
	}
	log.Printf("[match] %s -> %s", match.State, state)
	match.State = state
}

// UpdateMatch advances the match clock and ends the match once a side reaches
// goalsToWin. It reports whether the match finished on this call.
func UpdateMatch(w donburi.World, dt float64, goalsToWin int) bool {
	entry, ok := components.Match.First(w)
	if !ok {
		return false
	}
	match := components.Match.Get(entry)
	if match.State != cfg.MatchStatePlaying {
		return false
	}
	match.Tick++
	match.Time += dt

	sc := score(w)
	if sc == nil || goalsToWin <= 0 {
		return false
	}
	leader, ok := sc.Leader()
	if !ok || sc.Goals[leader] < goalsToWin {
		return false
	}

	match.State = cfg.MatchStateFinished
	match.Winner = leader
	log.Printf("[match] finished %d-%d after %.1fs", sc.Goals[cfg.SideHost], sc.Goals[cfg.SideClient], match.Time)
	return true
}
