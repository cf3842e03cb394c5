package network

import (
	"context"
	"errors"
	"fmt"

	cfg "github.com/automoto/puckduel/config"
	"github.com/coder/websocket"
	"go.uber.org/atomic"
)

var (
	// ErrNoPeer is returned by Send while no peer is connected.
	ErrNoPeer = errors.New("no peer connected")
	// ErrRoomNotFound is returned when the relay has no open room for a code.
	ErrRoomNotFound = errors.New("room not found")
)

// Transport carries encoded messages between the two peers. Send only queues
// the frame; inbound frames and errors are delivered on channels so the match
// loop can drain them between ticks without waiting on the socket.
type Transport interface {
	Send(ctx context.Context, data []byte) error
	Inbound() <-chan []byte
	Errors() <-chan error
	Close() error
}

// Stats are running totals for one transport.
type Stats struct {
	Sent     int64
	Received int64
	Dropped  int64 // inbound frames discarded because the inbox was full
	Replaced int64 // outbound frames overwritten by a newer one before the write
	Errors   int64
}

// mailbox buffers what the read side of a connection produces.
type mailbox struct {
	inbox chan []byte
	errs  chan error

	sent     *atomic.Int64
	received *atomic.Int64
	dropped  *atomic.Int64
	replaced *atomic.Int64
	failed   *atomic.Int64
}

func newMailbox() *mailbox {
	return &mailbox{
		inbox:    make(chan []byte, cfg.Net.InboxSize),
		errs:     make(chan error, cfg.Net.ErrorBacklog),
		sent:     atomic.NewInt64(0),
		received: atomic.NewInt64(0),
		dropped:  atomic.NewInt64(0),
		replaced: atomic.NewInt64(0),
		failed:   atomic.NewInt64(0),
	}
}

func (m *mailbox) Inbound() <-chan []byte { return m.inbox }
func (m *mailbox) Errors() <-chan error { return m.errs }

func (m *mailbox) Stats() Stats {
	return Stats{
		Sent:     m.sent.Load(),
		Received: m.received.Load(),
		Dropped:  m.dropped.Load(),
		Replaced: m.replaced.Load(),
		Errors:   m.failed.Load(),
	}
}

// deliver queues data, dropping the oldest frame when the inbox is full.
func (m *mailbox) deliver(data []byte) {
	m.received.Inc()
	for {
		select {
		case m.inbox <- data:
			return
		default:
		}
		select {
		case <-m.inbox:
			m.dropped.Inc()
		default:
		}
	}
}

// report queues err unless the backlog is full.
func (m *mailbox) report(err error) {
	m.failed.Inc()
	select {
	case m.errs <- err:
	default:
	}
}

// readLoop delivers text frames from ws until the connection fails. Errors
// after ctx is cancelled or a normal close are not reported.
func (m *mailbox) readLoop(ctx context.Context, ws *websocket.Conn) {
	for {
		typ, data, err := ws.Read(ctx)
		if err != nil {
			if ctx.Err() == nil && !isNormalClose(err) {
				m.report(err)
			}
			return
		}
		if typ != websocket.MessageText {
			continue
		}
		m.deliver(data)
	}
}

// outbox holds the next frame for a connection's writer. Only the newest
// frame is kept, so Send never waits on the socket.
type outbox chan []byte

func newOutbox() outbox { return make(outbox, 1) }

// push queues data, replacing a frame the writer has not picked up yet.
func (m *mailbox) push(out outbox, data []byte) {
	for {
		select {
		case out <- data:
			return
		default:
		}
		select {
		case <-out:
			m.replaced.Inc()
		default:
		}
	}
}

// writeLoop writes queued frames to ws until ctx is done. Failures are
// reported, not retried.
func (m *mailbox) writeLoop(ctx context.Context, ws *websocket.Conn, out outbox) {
	for {
		select {
		case <-ctx.Done():
			return
		case data := <-out:
			if err := write(ctx, ws, data); err != nil {
				if ctx.Err() == nil && !isNormalClose(err) {
					m.report(fmt.Errorf("send: %w", err))
				}
				continue
			}
			m.sent.Inc()
		}
	}
}

func write(ctx context.Context, ws *websocket.Conn, data []byte) error {
	ctx, cancel := context.WithTimeout(ctx, cfg.Net.WriteTimeout)
	defer cancel()
	return ws.Write(ctx, websocket.MessageText, data)
}

func isNormalClose(err error) bool {
	switch websocket.CloseStatus(err) {
	case websocket.StatusNormalClosure, websocket.StatusGoingAway:
		return true
	}
	return errors.Is(err, context.Canceled)
}
