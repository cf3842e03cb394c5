package messages

import (
	"errors"
	"strings"
	"testing"
)

func TestNonAuthoritativeInputOmitsPuckFields(t *testing.T) {
	data, err := Encode(NewInput([3]float64{1, 0.2, -3}))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got := string(data)
	want := `{"type":"input","pos":[1,0.2,-3]}`
	if got != want {
		t.Fatalf("encoded = %s, want %s", got, want)
	}
}

func TestAuthoritativeStateCarriesPuckFields(t *testing.T) {
	m := NewState([3]float64{0, 0.2, 4}).WithPuck([3]float64{1, 0.1, 2}, [3]float64{0, 0, -3}, [2]int{2, 1})
	data, err := Encode(m)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	for _, key := range []string{`"type":"state"`, `"hostPaddle":`, `"puck":`, `"vel":`, `"score":[2,1]`} {
		if !strings.Contains(string(data), key) {
			t.Fatalf("encoded %s missing %s", data, key)
		}
	}
	if strings.Contains(string(data), `"pos"`) {
		t.Fatalf("state message carries pos: %s", data)
	}
}

func TestDecodePartialMessage(t *testing.T) {
	m, err := Decode([]byte(`{"type":"state","hostPaddle":[0.5,0.2,3.9]}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if m.HostPaddle == nil || m.HostPaddle[0] != 0.5 {
		t.Fatalf("hostPaddle = %v, want [0.5 0.2 3.9]", m.HostPaddle)
	}
	if m.Puck != nil || m.Vel != nil || m.Score != nil {
		t.Fatalf("absent fields decoded as present: %+v", m)
	}
	if m.HasPuckState() {
		t.Fatalf("HasPuckState = true for paddle-only message")
	}
}

func TestDecodeRejectsBadFrames(t *testing.T) {
	if _, err := Decode([]byte(`{"pos":[0,0,0]}`)); !errors.Is(err, ErrMissingType) {
		t.Fatalf("missing type: err = %v, want ErrMissingType", err)
	}
	if _, err := Decode([]byte(`{"type":"teleport"}`)); !errors.Is(err, ErrUnknownType) {
		t.Fatalf("unknown type: err = %v, want ErrUnknownType", err)
	}
	if _, err := Decode([]byte(`{"type":`)); err == nil {
		t.Fatalf("truncated frame decoded without error")
	}
}

func TestDecodePing(t *testing.T) {
	m, err := Decode([]byte(`{"type":"ping"}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if m.Type != TypePing {
		t.Fatalf("type = %q, want %q", m.Type, TypePing)
	}
}
