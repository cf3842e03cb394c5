// Package relay pairs a hosting peer with a joining one by room code and
// forwards frames between them.
package relay

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/automoto/puckduel/shared/netconfig"
	"github.com/automoto/puckduel/shared/protocol"
	"github.com/coder/websocket"
	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"
)

const handshakeTimeout = 10 * time.Second

// Server is the relay's HTTP surface.
type Server struct {
	rooms *Rooms
	pairs *atomic.Int64
}

func NewServer(rooms *Rooms) *Server {
	return &Server{
		rooms: rooms,
		pairs: atomic.NewInt64(0),
	}
}

// Pairs is the number of rooms that have been joined.
func (s *Server) Pairs() int64 { return s.pairs.Load() }

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /rooms", s.listRooms)
	mux.HandleFunc("GET /health", health)
	mux.HandleFunc(netconfig.RelayPath, s.serveWS)
	return mux
}

func (s *Server) listRooms(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	if err := json.NewEncoder(w).Encode(s.rooms.List()); err != nil {
		log.Printf("[relay] list encode error: %v", err)
	}
}

func health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	ws, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		log.Printf("[relay] accept failed: %v", err)
		return
	}
	ws.SetReadLimit(netconfig.MaxFrameBytes)
	defer ws.CloseNow()

	hctx, cancel := context.WithTimeout(context.Background(), handshakeTimeout)
	_, data, err := ws.Read(hctx)
	cancel()
	if err != nil {
		return
	}

	host, code, err := protocol.ParseCommand(string(data))
	if err != nil {
		log.Printf("[relay] %s: %v", r.RemoteAddr, err)
		reply(ws, protocol.RespErr)
		return
	}
	if host {
		s.host(ws)
	} else {
		s.join(ws, code)
	}
}

func (s *Server) host(ws *websocket.Conn) {
	rm, err := s.rooms.open()
	if err != nil {
		log.Printf("[relay] open room: %v", err)
		reply(ws, protocol.RespErr)
		return
	}
	if err := reply(ws, protocol.RoomLine(rm.code)); err != nil {
		s.rooms.remove(rm)
		return
	}
	log.Printf("[relay] room %s opened", rm.code)

	var p pairing
	select {
	case p = <-rm.paired:
	case <-rm.expired:
		ws.Close(websocket.StatusNormalClosure, "room expired")
		return
	}
	defer close(p.done)

	if err := reply(ws, protocol.RespGo); err != nil {
		return
	}
	s.pairs.Inc()
	log.Printf("[relay] room %s paired", rm.code)

	err = pipe(context.Background(), ws, p.guest)
	log.Printf("[relay] room %s closed: %v", rm.code, err)
	p.guest.Close(websocket.StatusNormalClosure, "")
	ws.Close(websocket.StatusNormalClosure, "")
}

func (s *Server) join(ws *websocket.Conn, code string) {
	rm, ok := s.rooms.claim(code)
	if !ok {
		reply(ws, protocol.RespErr)
		ws.Close(websocket.StatusNormalClosure, "")
		return
	}
	done := make(chan struct{})
	err := reply(ws, protocol.RespGo)
	rm.paired <- pairing{guest: ws, done: done}
	if err != nil {
		return
	}
	<-done
}

// pipe forwards frames both ways until either side fails.
func pipe(ctx context.Context, a, b *websocket.Conn) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return forward(ctx, a, b) })
	g.Go(func() error { return forward(ctx, b, a) })
	return g.Wait()
}

func forward(ctx context.Context, from, to *websocket.Conn) error {
	for {
		typ, data, err := from.Read(ctx)
		if err != nil {
			return err
		}
		if err := to.Write(ctx, typ, data); err != nil {
			return err
		}
	}
}

func reply(ws *websocket.Conn, line string) error {
	ctx, cancel := context.WithTimeout(context.Background(), handshakeTimeout)
	defer cancel()
	return ws.Write(ctx, websocket.MessageText, []byte(line))
}
