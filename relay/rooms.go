package relay

import (
	"crypto/rand"
	"errors"
	"log"
	"math/big"
	"sort"
	"sync"
	"time"

	"github.com/automoto/puckduel/shared/protocol"
	"github.com/coder/websocket"
)

// ErrNoFreeCode is returned when no unused room code could be found.
var ErrNoFreeCode = errors.New("no free room code")

// pairing hands the joining client to the host's handler.
type pairing struct {
	guest *websocket.Conn
	done  chan struct{} // closed when forwarding has ended
}

// room is a hosted room waiting for its client.
type room struct {
	code    string
	created time.Time
	paired  chan pairing
	expired chan struct{}
}

// Rooms is an in-memory set of open rooms with TTL-based expiry.
type Rooms struct {
	mu     sync.Mutex
	rooms  map[string]*room
	ttl    time.Duration
	stopCh chan struct{}
	now    func() time.Time
}

func NewRooms(ttl, sweep time.Duration) *Rooms {
	r := &Rooms{
		rooms:  make(map[string]*room),
		ttl:    ttl,
		stopCh: make(chan struct{}),
		now:    time.Now,
	}
	go r.cleanupLoop(sweep)
	return r
}

func (r *Rooms) Stop() {
	close(r.stopCh)
}

// open allocates a room under a fresh four-digit code.
func (r *Rooms) open() (*room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	span := big.NewInt(protocol.MaxRoomCode - protocol.MinRoomCode + 1)
	for range 32 {
		n, err := rand.Int(rand.Reader, span)
		if err != nil {
			return nil, err
		}
		code := protocol.FormatRoomCode(protocol.MinRoomCode + int(n.Int64()))
		if _, taken := r.rooms[code]; taken {
			continue
		}
		rm := &room{
			code:    code,
			created: r.now(),
			paired:  make(chan pairing, 1),
			expired: make(chan struct{}),
		}
		r.rooms[code] = rm
		return rm, nil
	}
	return nil, ErrNoFreeCode
}

// claim removes and returns the room for code.
func (r *Rooms) claim(code string) (*room, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rm, ok := r.rooms[code]
	if ok {
		delete(r.rooms, code)
	}
	return rm, ok
}

func (r *Rooms) remove(rm *room) {
	r.mu.Lock()
	if r.rooms[rm.code] == rm {
		delete(r.rooms, rm.code)
	}
	r.mu.Unlock()
}

// List returns the open rooms, oldest first.
func (r *Rooms) List() []protocol.RoomInfo {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	result := make([]protocol.RoomInfo, 0, len(r.rooms))
	for _, rm := range r.rooms {
		result = append(result, protocol.RoomInfo{
			Code:       rm.code,
			AgeSeconds: int(now.Sub(rm.created) / time.Second),
		})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].AgeSeconds > result[j].AgeSeconds
	})
	return result
}

func (r *Rooms) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rooms)
}

// expire closes every room older than the TTL and returns how many it closed.
func (r *Rooms) expire() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	n := 0
	for code, rm := range r.rooms {
		if now.Sub(rm.created) >= r.ttl {
			log.Printf("[relay] expired room %s after %s", code, now.Sub(rm.created).Round(time.Second))
			delete(r.rooms, code)
			close(rm.expired)
			n++
		}
	}
	return n
}

func (r *Rooms) cleanupLoop(sweep time.Duration) {
	ticker := time.NewTicker(sweep)
	defer ticker.Stop()

	for {
		select {
		case <-r.stopCh:
			return
		case <-ticker.C:
			r.expire()
		}
	}
}
