package network

import (
	"context"
	"fmt"
	"log"
	"strings"

	cfg "github.com/automoto/puckduel/config"
	"github.com/automoto/puckduel/shared/netconfig"
	"github.com/automoto/puckduel/shared/protocol"
	"github.com/coder/websocket"
)

// HostViaRelay opens a room on the relay and blocks until a client joins it.
// onRoom is called with the room code as soon as the relay assigns one.
func HostViaRelay(ctx context.Context, relayURL string, onRoom func(code string)) (*Conn, error) {
	ws, err := dialRelay(ctx, relayURL)
	if err != nil {
		return nil, err
	}

	if err := writeLine(ctx, ws, protocol.HostLine()); err != nil {
		ws.CloseNow()
		return nil, err
	}
	line, err := readLine(ctx, ws)
	if err != nil {
		ws.CloseNow()
		return nil, err
	}
	code, err := protocol.ParseRoom(line)
	if err != nil {
		ws.CloseNow()
		return nil, err
	}
	log.Printf("[net] relay room %s open, waiting for a client", code)
	if onRoom != nil {
		onRoom(code)
	}

	line, err = readLine(ctx, ws)
	if err != nil {
		ws.CloseNow()
		return nil, fmt.Errorf("wait for client: %w", err)
	}
	if line != protocol.RespGo {
		ws.CloseNow()
		return nil, fmt.Errorf("unexpected relay response %q", line)
	}
	log.Printf("[net] client joined room %s", code)
	return newConn(ws), nil
}

// JoinViaRelay pairs with the host of room code.
func JoinViaRelay(ctx context.Context, relayURL, code string) (*Conn, error) {
	if !protocol.ValidRoomCode(code) {
		return nil, fmt.Errorf("join %q: %w", code, ErrRoomNotFound)
	}
	ws, err := dialRelay(ctx, relayURL)
	if err != nil {
		return nil, err
	}

	if err := writeLine(ctx, ws, protocol.JoinLine(code)); err != nil {
		ws.CloseNow()
		return nil, err
	}
	line, err := readLine(ctx, ws)
	if err != nil {
		ws.CloseNow()
		return nil, err
	}
	switch line {
	case protocol.RespGo:
		log.Printf("[net] joined room %s", code)
		return newConn(ws), nil
	case protocol.RespErr:
		ws.Close(websocket.StatusNormalClosure, "")
		return nil, fmt.Errorf("join %s: %w", code, ErrRoomNotFound)
	}
	ws.CloseNow()
	return nil, fmt.Errorf("unexpected relay response %q", line)
}

func dialRelay(ctx context.Context, relayURL string) (*websocket.Conn, error) {
	url := strings.TrimSuffix(relayURL, "/") + netconfig.RelayPath
	dctx, cancel := context.WithTimeout(ctx, cfg.Net.DialTimeout)
	defer cancel()

	ws, _, err := websocket.Dial(dctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial relay %s: %w", url, err)
	}
	ws.SetReadLimit(netconfig.MaxFrameBytes)
	return ws, nil
}

func writeLine(ctx context.Context, ws *websocket.Conn, line string) error {
	if err := ws.Write(ctx, websocket.MessageText, []byte(line)); err != nil {
		return fmt.Errorf("relay write: %w", err)
	}
	return nil
}

func readLine(ctx context.Context, ws *websocket.Conn) (string, error) {
	_, data, err := ws.Read(ctx)
	if err != nil {
		return "", fmt.Errorf("relay read: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
