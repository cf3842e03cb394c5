package main

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/automoto/puckduel/audio"
	cfg "github.com/automoto/puckduel/config"
	"github.com/automoto/puckduel/core"
	"github.com/automoto/puckduel/store"
)

func TestConsoleCommands(t *testing.T) {
	sound := audio.NewContext(1, false)
	loop := core.NewLoop(core.NewMatch(core.DefaultOptions(cfg.RoleSinglePlayer), nil, sound, nil), 120)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- loop.Run(ctx) }()
	loop.Start()

	console(strings.NewReader("p\nm\nq\n"), loop, sound, nil, store.DefaultSettings())

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("loop still running after q")
	}
	if !sound.Suspended() {
		t.Fatalf("p did not suspend sound")
	}
	if !sound.Muted() {
		t.Fatalf("m did not mute")
	}
}

func TestPeerURL(t *testing.T) {
	cases := map[string]string{
		":8080":                 "ws://localhost:8080/peer",
		"10.0.0.2:8080":         "ws://10.0.0.2:8080/peer",
		"ws://example.com/peer": "ws://example.com/peer",
	}
	for in, want := range cases {
		if got := peerURL(in); got != want {
			t.Fatalf("peerURL(%q) = %q, want %q", in, got, want)
		}
	}
}
