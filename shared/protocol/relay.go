// Package protocol holds the relay handshake. Every line travels as one
// websocket text frame.
package protocol

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	CmdHost  = "HOST"
	CmdJoin  = "JOIN:"
	RespRoom = "ROOM:"
	RespGo   = "START"
	RespErr  = "ERR"
)

// Room codes are four digits in [MinRoomCode, MaxRoomCode].
const (
	MinRoomCode = 1000
	MaxRoomCode = 9999
)

// HostLine asks the relay for a new room.
func HostLine() string { return CmdHost }

// JoinLine asks the relay to pair with the room code.
func JoinLine(code string) string { return CmdJoin + code }

// RoomLine announces the allocated room to a host.
func RoomLine(code string) string { return RespRoom + code }

// FormatRoomCode renders n as a room code.
func FormatRoomCode(n int) string { return fmt.Sprintf("%04d", n) }

// ValidRoomCode reports whether code is four digits in range.
func ValidRoomCode(code string) bool {
	if len(code) != 4 {
		return false
	}
	n, err := strconv.Atoi(code)
	if err != nil {
		return false
	}
	return n >= MinRoomCode && n <= MaxRoomCode
}

// ParseCommand splits the first line a relay peer sends.
// It returns host=true for HOST, or the room code for JOIN.
func ParseCommand(line string) (host bool, code string, err error) {
	line = strings.TrimSpace(line)
	switch {
	case line == CmdHost:
		return true, "", nil
	case strings.HasPrefix(line, CmdJoin):
		code = strings.TrimPrefix(line, CmdJoin)
		if !ValidRoomCode(code) {
			return false, "", fmt.Errorf("bad room code %q", code)
		}
		return false, code, nil
	}
	return false, "", fmt.Errorf("unexpected command %q", line)
}

// ParseRoom extracts the code from a ROOM line.
func ParseRoom(line string) (string, error) {
	line = strings.TrimSpace(line)
	code, ok := strings.CutPrefix(line, RespRoom)
	if !ok || !ValidRoomCode(code) {
		return "", fmt.Errorf("bad relay response %q", line)
	}
	return code, nil
}

// RoomInfo is one entry of the relay's GET /rooms listing.
type RoomInfo struct {
	Code       string `json:"code"`
	AgeSeconds int    `json:"ageSeconds"`
}
