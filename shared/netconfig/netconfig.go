// Package netconfig defines lightweight values shared by both peers and the
// relay. It must have zero dependencies on ebiten or any audio library so the
// relay binary stays headless.
package netconfig

import "time"

// MatchStateID represents the current state of a match.
type MatchStateID int

const (
	MatchStateWaiting  MatchStateID = iota // Waiting for a peer or a start command
	MatchStatePlaying                      // Active gameplay
	MatchStatePaused                       // Ticks are skipped, inbound is still drained
	MatchStateFinished                     // Match over
)

func (s MatchStateID) String() string {
	switch s {
	case MatchStateWaiting:
		return "waiting"
	case MatchStatePlaying:
		return "playing"
	case MatchStatePaused:
		return "paused"
	case MatchStateFinished:
		return "finished"
	}
	return "unknown"
}

const (
	DefaultPeerPort  = 8080
	DefaultRelayPort = 4000

	// PeerPath is the websocket endpoint a hosting peer serves.
	PeerPath = "/peer"
	// RelayPath is the websocket endpoint of the relay.
	RelayPath = "/ws"

	// RoomTTL bounds how long a hosted room waits for a client.
	RoomTTL = 300 * time.Second

	// MaxFrameBytes caps a single inbound frame.
	MaxFrameBytes = 1 << 12
)
