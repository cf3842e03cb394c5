package config

import "github.com/automoto/puckduel/shared/netconfig"

// Type aliases so match code can refer to config.MatchStateID.
type MatchStateID = netconfig.MatchStateID

const (
	MatchStateWaiting  = netconfig.MatchStateWaiting
	MatchStatePlaying  = netconfig.MatchStatePlaying
	MatchStatePaused   = netconfig.MatchStatePaused
	MatchStateFinished = netconfig.MatchStateFinished
)
