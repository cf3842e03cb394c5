package network

import (
	"context"
	"fmt"
	"log"
	"net"
	"sync"

	cfg "github.com/automoto/puckduel/config"
	"github.com/automoto/puckduel/shared/messages"
	"github.com/automoto/puckduel/shared/netconfig"
	"github.com/coder/websocket"
)

// Conn is a Transport over a single websocket connection.
type Conn struct {
	*mailbox

	ws        *websocket.Conn
	out       outbox
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
	done      chan struct{}
}

var _ Transport = (*Conn)(nil)

func newConn(ws *websocket.Conn) *Conn {
	ws.SetReadLimit(netconfig.MaxFrameBytes)
	ctx, cancel := context.WithCancel(context.Background())
	c := &Conn{
		mailbox: newMailbox(),
		ws:      ws,
		out:     newOutbox(),
		ctx:     ctx,
		cancel:  cancel,
		done:    make(chan struct{}),
	}
	go func() {
		defer close(c.done)
		c.readLoop(ctx, ws)
	}()
	go c.writeLoop(ctx, ws, c.out)
	return c
}

// Dial connects to a hosting peer and registers with a ping.
func Dial(ctx context.Context, url string) (*Conn, error) {
	dctx, cancel := context.WithTimeout(ctx, cfg.Net.DialTimeout)
	defer cancel()

	ws, _, err := websocket.Dial(dctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", url, err)
	}
	c := newConn(ws)

	ping, err := messages.Encode(messages.NewPing())
	if err != nil {
		c.Close()
		return nil, err
	}
	if err := write(ctx, ws, ping); err != nil {
		c.Close()
		return nil, fmt.Errorf("ping %s: %w", url, err)
	}
	c.sent.Inc()
	log.Printf("[net] connected to %s", url)
	return c, nil
}

// Send queues data for the writer and returns straight away. Write failures
// arrive on Errors.
func (c *Conn) Send(_ context.Context, data []byte) error {
	if c.ctx.Err() != nil {
		return net.ErrClosed
	}
	c.push(c.out, data)
	return nil
}

// Done is closed once the read side has stopped.
func (c *Conn) Done() <-chan struct{} { return c.done }

func (c *Conn) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.cancel()
		err = c.ws.Close(websocket.StatusNormalClosure, "")
	})
	return err
}
