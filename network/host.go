package network

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/automoto/puckduel/shared/netconfig"
	"github.com/coder/websocket"
	"go.uber.org/atomic"
)

// Host is the hosting side of a direct connection. It serves one peer at a
// time; a new connection replaces the previous one.
type Host struct {
	*mailbox

	mu     sync.Mutex
	peer   *websocket.Conn
	out    outbox
	cancel context.CancelFunc

	accepted *atomic.Int64
}

var _ Transport = (*Host)(nil)

func NewHost() *Host {
	return &Host{
		mailbox:  newMailbox(),
		accepted: atomic.NewInt64(0),
	}
}

// ServeHTTP upgrades the request and reads from the peer until it goes away.
func (h *Host) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		log.Printf("[net] accept failed: %v", err)
		return
	}
	ws.SetReadLimit(netconfig.MaxFrameBytes)

	ctx, cancel := context.WithCancel(context.Background())
	out := newOutbox()
	h.mu.Lock()
	prev, prevCancel := h.peer, h.cancel
	h.peer, h.out, h.cancel = ws, out, cancel
	h.mu.Unlock()
	go h.writeLoop(ctx, ws, out)

	if prev != nil {
		prevCancel()
		prev.Close(websocket.StatusGoingAway, "replaced")
		log.Printf("[net] peer replaced by %s", r.RemoteAddr)
	} else {
		log.Printf("[net] peer connected from %s", r.RemoteAddr)
	}
	h.accepted.Inc()

	h.readLoop(ctx, ws)

	h.mu.Lock()
	if h.peer == ws {
		h.peer, h.out, h.cancel = nil, nil, nil
		log.Printf("[net] peer %s disconnected", r.RemoteAddr)
	}
	h.mu.Unlock()
	cancel()
}

// Connected reports whether a peer is attached.
func (h *Host) Connected() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.peer != nil
}

// Accepted is the number of peers that have connected so far.
func (h *Host) Accepted() int64 { return h.accepted.Load() }

// Send queues data for the current peer's writer and returns straight away.
func (h *Host) Send(_ context.Context, data []byte) error {
	h.mu.Lock()
	out := h.out
	h.mu.Unlock()
	if out == nil {
		return ErrNoPeer
	}
	h.push(out, data)
	return nil
}

// Close drops the current peer. The host keeps accepting new ones.
func (h *Host) Close() error {
	h.mu.Lock()
	ws, cancel := h.peer, h.cancel
	h.peer, h.out, h.cancel = nil, nil, nil
	h.mu.Unlock()
	if ws == nil {
		return nil
	}
	cancel()
	return ws.Close(websocket.StatusNormalClosure, "")
}

// Serve listens on addr until ctx is done.
func (h *Host) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle(netconfig.PeerPath, h)

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		h.Close()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.Printf("[net] hosting on %s%s", addr, netconfig.PeerPath)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}
