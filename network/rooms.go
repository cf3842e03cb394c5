package network

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/automoto/puckduel/shared/protocol"
)

// Directory queries a relay's HTTP endpoints.
type Directory struct {
	baseURL string
	client  *http.Client
}

// NewDirectory accepts the relay's ws:// or http:// base URL.
func NewDirectory(relayURL string) *Directory {
	return &Directory{
		baseURL: httpURL(relayURL),
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

// Rooms lists the rooms still waiting for a client.
func (d *Directory) Rooms(ctx context.Context) ([]protocol.RoomInfo, error) {
	var rooms []protocol.RoomInfo
	if err := d.get(ctx, "/rooms", &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// Healthy reports whether the relay answers its health check.
func (d *Directory) Healthy(ctx context.Context) bool {
	var status struct {
		Status string `json:"status"`
	}
	return d.get(ctx, "/health", &status) == nil && status.Status == "ok"
}

func (d *Directory) get(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("get %s: unexpected status: %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func httpURL(u string) string {
	u = strings.TrimSuffix(u, "/")
	switch {
	case strings.HasPrefix(u, "ws://"):
		return "http://" + strings.TrimPrefix(u, "ws://")
	case strings.HasPrefix(u, "wss://"):
		return "https://" + strings.TrimPrefix(u, "wss://")
	}
	return u
}
