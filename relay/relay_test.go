package relay

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/automoto/puckduel/shared/netconfig"
	"github.com/automoto/puckduel/shared/protocol"
	"github.com/coder/websocket"
)

func newTestRelay(t *testing.T) (*httptest.Server, *Rooms) {
	t.Helper()
	rooms := NewRooms(netconfig.RoomTTL, time.Hour)
	ts := httptest.NewServer(NewServer(rooms).Handler())
	t.Cleanup(func() {
		ts.Close()
		rooms.Stop()
	})
	return ts, rooms
}

func dial(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + netconfig.RelayPath
	ws, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { ws.CloseNow() })
	return ws
}

func send(t *testing.T, ws *websocket.Conn, line string) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := ws.Write(ctx, websocket.MessageText, []byte(line)); err != nil {
		t.Fatalf("write %q: %v", line, err)
	}
}

func recv(t *testing.T, ws *websocket.Conn) string {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, data, err := ws.Read(ctx)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	return string(data)
}

func openRoom(t *testing.T, ts *httptest.Server) (*websocket.Conn, string) {
	t.Helper()
	host := dial(t, ts)
	send(t, host, protocol.HostLine())
	code, err := protocol.ParseRoom(recv(t, host))
	if err != nil {
		t.Fatalf("ParseRoom: %v", err)
	}
	return host, code
}

func TestPairAndForward(t *testing.T) {
	ts, rooms := newTestRelay(t)
	host, code := openRoom(t, ts)

	if rooms.Len() != 1 {
		t.Fatalf("open rooms = %d, want 1", rooms.Len())
	}

	guest := dial(t, ts)
	send(t, guest, protocol.JoinLine(code))
	if got := recv(t, guest); got != protocol.RespGo {
		t.Fatalf("guest got %q, want START", got)
	}
	if got := recv(t, host); got != protocol.RespGo {
		t.Fatalf("host got %q, want START", got)
	}
	if rooms.Len() != 0 {
		t.Fatalf("paired room still listed")
	}

	send(t, host, `{"type":"state","hostPaddle":[0,0.2,4]}`)
	if got := recv(t, guest); got != `{"type":"state","hostPaddle":[0,0.2,4]}` {
		t.Fatalf("guest got %q", got)
	}
	send(t, guest, `{"type":"input","pos":[1,0.2,-3]}`)
	if got := recv(t, host); got != `{"type":"input","pos":[1,0.2,-3]}` {
		t.Fatalf("host got %q", got)
	}
}

func TestJoinUnknownRoom(t *testing.T) {
	ts, _ := newTestRelay(t)
	guest := dial(t, ts)
	send(t, guest, protocol.JoinLine("1234"))
	if got := recv(t, guest); got != protocol.RespErr {
		t.Fatalf("got %q, want ERR", got)
	}
}

func TestBadCommand(t *testing.T) {
	ts, _ := newTestRelay(t)
	ws := dial(t, ts)
	send(t, ws, "HELLO")
	if got := recv(t, ws); got != protocol.RespErr {
		t.Fatalf("got %q, want ERR", got)
	}
}

func TestRoomsListing(t *testing.T) {
	ts, _ := newTestRelay(t)
	_, code := openRoom(t, ts)

	resp, err := http.Get(ts.URL + "/rooms")
	if err != nil {
		t.Fatalf("GET /rooms: %v", err)
	}
	defer resp.Body.Close()

	var rooms []protocol.RoomInfo
	if err := json.NewDecoder(resp.Body).Decode(&rooms); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(rooms) != 1 || rooms[0].Code != code {
		t.Fatalf("rooms = %+v, want one room %s", rooms, code)
	}
}

func TestHealth(t *testing.T) {
	ts, _ := newTestRelay(t)
	resp, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}

func TestExpiredRoomClosesHost(t *testing.T) {
	ts, rooms := newTestRelay(t)
	host, code := openRoom(t, ts)

	start := time.Now()
	rooms.mu.Lock()
	rooms.now = func() time.Time { return start.Add(netconfig.RoomTTL) }
	rooms.mu.Unlock()

	if n := rooms.expire(); n != 1 {
		t.Fatalf("expired %d rooms, want 1", n)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, _, err := host.Read(ctx); err == nil {
		t.Fatalf("host connection still open after expiry")
	}

	guest := dial(t, ts)
	send(t, guest, protocol.JoinLine(code))
	if got := recv(t, guest); got != protocol.RespErr {
		t.Fatalf("join after expiry got %q, want ERR", got)
	}
}

func TestCodesAreUniqueAndInRange(t *testing.T) {
	rooms := NewRooms(time.Minute, time.Hour)
	defer rooms.Stop()

	seen := make(map[string]bool)
	for range 200 {
		rm, err := rooms.open()
		if err != nil {
			t.Fatalf("open: %v", err)
		}
		if !protocol.ValidRoomCode(rm.code) || seen[rm.code] {
			t.Fatalf("bad or duplicate code %s", rm.code)
		}
		seen[rm.code] = true
	}
}
