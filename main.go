package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/automoto/puckduel/audio"
	cfg "github.com/automoto/puckduel/config"
	"github.com/automoto/puckduel/core"
	"github.com/automoto/puckduel/network"
	"github.com/automoto/puckduel/reporting"
	"github.com/automoto/puckduel/shared/netconfig"
	"github.com/automoto/puckduel/store"
	"github.com/automoto/puckduel/systems"
	"golang.org/x/sync/errgroup"
)

var version = "dev"

type options struct {
	role       string
	addr       string
	relay      string
	code       string
	difficulty string
	sendEvery  int
	goals      int
	dsn        string
	mute       bool
	list       bool
}

func main() {
	var o options
	flag.StringVar(&o.role, "role", "single", "single, host or client")
	flag.StringVar(&o.addr, "addr", fmt.Sprintf(":%d", netconfig.DefaultPeerPort), "Listen address (host) or peer URL (client)")
	flag.StringVar(&o.relay, "relay", "", "Relay base URL, e.g. ws://localhost:4000 (empty connects directly)")
	flag.StringVar(&o.code, "code", "", "Room code to join through the relay")
	flag.StringVar(&o.difficulty, "difficulty", "", "AI difficulty: easy, normal or hard")
	flag.IntVar(&o.sendEvery, "send-every", cfg.Net.SendEvery, "Send one message every N ticks (handoffs and goals always go out)")
	flag.IntVar(&o.goals, "goals", cfg.Match.GoalsToWin, "Goals to win (0 plays forever)")
	flag.StringVar(&o.dsn, "sentry-dsn", "", "Sentry DSN (empty disables reporting)")
	flag.BoolVar(&o.mute, "mute", false, "Start with sound suspended")
	flag.BoolVar(&o.list, "list", false, "List open relay rooms and exit")
	flag.Parse()

	if err := reporting.Init(o.dsn, "game", version); err != nil {
		log.Printf("Warning: %v", err)
	}
	defer reporting.Flush()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, o); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("Fatal: %v", err)
		reporting.CaptureError("main", err)
		stop()
		reporting.Flush()
		os.Exit(1)
	}
}

func run(ctx context.Context, o options) error {
	role, ok := cfg.ParseRole(o.role)
	if !ok {
		return fmt.Errorf("unknown role %q", o.role)
	}

	st, err := store.Open("puckduel")
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	settings, err := st.LoadSettings()
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
	}
	if o.relay == "" {
		o.relay = settings.RelayURL
	}
	if o.difficulty == "" {
		o.difficulty = settings.Difficulty
	}

	if o.list {
		return listRooms(ctx, o.relay)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	transport, err := connect(ctx, g, role, o, &settings)
	if err != nil {
		return err
	}
	if transport != nil {
		defer transport.Close()
	}

	settings.Difficulty = cfg.ParseBotDifficulty(o.difficulty).String()
	if err := st.SaveSettings(settings); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
	}

	sound := audio.NewContext(settings.SFXVolume, settings.Muted || o.mute)
	sound.Init()

	opts := core.DefaultOptions(role)
	opts.Difficulty = cfg.ParseBotDifficulty(o.difficulty)
	opts.SendEvery = o.sendEvery
	opts.GoalsToWin = o.goals
	loop := core.NewLoop(core.NewMatch(opts, transport, sound, st), cfg.Net.TickRate)

	g.Go(reporting.Guard("loop", func() error {
		defer cancel()
		return loop.Run(ctx)
	}))
	g.Go(reporting.Guard("frames", func() error {
		return watch(ctx, loop)
	}))

	// Not in g: a blocked stdin read must not hold up shutdown.
	log.Println("Commands: p pause/resume, m mute/unmute, q quit")
	go console(os.Stdin, loop, sound, st, settings)

	loop.Start()
	return g.Wait()
}

// console turns one-letter lines typed on r into match commands.
func console(r io.Reader, loop *core.Loop, sound *audio.Context, st *store.Store, settings store.Settings) {
	paused := false
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		switch strings.TrimSpace(sc.Text()) {
		case "p":
			if paused {
				loop.Resume()
			} else {
				loop.Pause()
			}
			paused = !paused
		case "m":
			settings.Muted = !sound.Muted()
			sound.SetMuted(settings.Muted)
			log.Printf("Sound muted: %v", settings.Muted)
			if err := st.SaveSettings(settings); err != nil {
				log.Printf("Warning: Could not save settings: %v", err)
			}
		case "q":
			loop.Stop()
			return
		}
	}
}

// connect sets up the peer transport for role. Hosting directly serves on
// o.addr in g; everything else blocks until the peer is paired.
func connect(ctx context.Context, g *errgroup.Group, role cfg.Role, o options, settings *store.Settings) (network.Transport, error) {
	switch {
	case role == cfg.RoleSinglePlayer:
		return nil, nil

	case role == cfg.RoleHost && o.relay == "":
		host := network.NewHost()
		g.Go(reporting.Guard("host", func() error {
			return host.Serve(ctx, o.addr)
		}))
		return host, nil

	case role == cfg.RoleHost:
		settings.RelayURL = o.relay
		return network.HostViaRelay(ctx, o.relay, func(code string) {
			log.Printf("Room code: %s", code)
			settings.LastRoom = code
		})

	case o.relay != "":
		code := o.code
		if code == "" {
			code = settings.LastRoom
		}
		conn, err := network.JoinViaRelay(ctx, o.relay, code)
		if err != nil {
			return nil, err
		}
		settings.RelayURL, settings.LastRoom = o.relay, code
		return conn, nil
	}

	return network.Dial(ctx, peerURL(o.addr))
}

// peerURL turns a bare listen address into the URL a client dials.
func peerURL(addr string) string {
	if strings.Contains(addr, "://") {
		return addr
	}
	if strings.HasPrefix(addr, ":") {
		addr = "localhost" + addr
	}
	return "ws://" + addr + netconfig.PeerPath
}

// watch logs score changes and the end of the match.
func watch(ctx context.Context, loop *core.Loop) error {
	var last systems.RenderState
	for {
		select {
		case <-ctx.Done():
			return nil
		case rs := <-loop.Frames():
			if rs.Score != last.Score {
				log.Printf("Score %d - %d", rs.Score[cfg.SideHost], rs.Score[cfg.SideClient])
			}
			if rs.Match == cfg.MatchStateFinished && last.Match != cfg.MatchStateFinished {
				log.Println("Match over")
				loop.Stop()
				return nil
			}
			last = rs
		}
	}
}

func listRooms(ctx context.Context, relay string) error {
	if relay == "" {
		return errors.New("-list needs -relay")
	}
	rooms, err := network.NewDirectory(relay).Rooms(ctx)
	if err != nil {
		return err
	}
	if len(rooms) == 0 {
		fmt.Println("no open rooms")
	}
	for _, r := range rooms {
		fmt.Printf("%s  waiting %ds\n", r.Code, r.AgeSeconds)
	}
	return nil
}
