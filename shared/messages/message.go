package messages

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Message types on the wire.
const (
	TypeInput = "input" // client -> host
	TypeState = "state" // host -> client
	TypePing  = "ping"  // client -> host, registers the sender
)

var (
	ErrMissingType = errors.New("message has no type")
	ErrUnknownType = errors.New("unknown message type")
)

// Message is the per-tick exchange between peers. Only Type is mandatory.
// Puck, Vel and Score are present only when the sender owns the puck.
type Message struct {
	Type       string      `json:"type"`
	Pos        *[3]float64 `json:"pos,omitempty"`
	HostPaddle *[3]float64 `json:"hostPaddle,omitempty"`
	Puck       *[3]float64 `json:"puck,omitempty"`
	Vel        *[3]float64 `json:"vel,omitempty"`
	Score      *[2]int     `json:"score,omitempty"`
}

// NewState builds a host message carrying the host paddle position.
func NewState(hostPaddle [3]float64) *Message {
	return &Message{Type: TypeState, HostPaddle: &hostPaddle}
}

// NewInput builds a client message carrying the client paddle position.
func NewInput(pos [3]float64) *Message {
	return &Message{Type: TypeInput, Pos: &pos}
}

// NewPing builds the registration message.
func NewPing() *Message {
	return &Message{Type: TypePing}
}

// WithPuck attaches the authoritative puck state.
func (m *Message) WithPuck(pos, vel [3]float64, score [2]int) *Message {
	m.Puck = &pos
	m.Vel = &vel
	m.Score = &score
	return m
}

// HasPuckState reports whether all authoritative fields are present.
func (m *Message) HasPuckState() bool {
	return m.Puck != nil && m.Vel != nil && m.Score != nil
}

func Encode(m *Message) ([]byte, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", m.Type, err)
	}
	return data, nil
}

// Decode parses a frame. Absent optional fields stay nil.
func Decode(data []byte) (Message, error) {
	var m Message
	if err := json.Unmarshal(data, &m); err != nil {
		return Message{}, fmt.Errorf("decode: %w", err)
	}
	switch m.Type {
	case TypeInput, TypeState, TypePing:
		return m, nil
	case "":
		return Message{}, ErrMissingType
	}
	return Message{}, fmt.Errorf("%w %q", ErrUnknownType, m.Type)
}
