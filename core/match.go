// Package core runs one match: the entity world, the table physics and the
// exchange with the peer, stepped from a single goroutine.
package core

import (
	"context"
	"errors"
	"log"

	"github.com/automoto/puckduel/components"
	cfg "github.com/automoto/puckduel/config"
	"github.com/automoto/puckduel/network"
	"github.com/automoto/puckduel/physics"
	"github.com/automoto/puckduel/shared/messages"
	"github.com/automoto/puckduel/store"
	"github.com/automoto/puckduel/systems"
	"github.com/automoto/puckduel/systems/factory"
	"github.com/yohamta/donburi"
)

// SoundSink plays the effects raised during a tick.
type SoundSink interface {
	Play(id cfg.SoundID)
}

type suspender interface {
	Suspend()
	Resume()
}

type Options struct {
	Role       cfg.Role
	Difficulty cfg.BotDifficulty
	SendEvery  int // outbound message every N ticks
	GoalsToWin int // 0 plays forever
}

func DefaultOptions(role cfg.Role) Options {
	return Options{
		Role:       role,
		Difficulty: cfg.BotDifficultyNormal,
		SendEvery:  cfg.Net.SendEvery,
		GoalsToWin: cfg.Match.GoalsToWin,
	}
}

// Match owns the world of one game. It is not safe for concurrent use; Loop
// is the only caller in the running binary.
type Match struct {
	opts Options

	world donburi.World
	space *physics.World

	transport network.Transport // nil in single player
	sink      SoundSink
	store     *store.Store

	ticks uint64

	// what the last outbound message carried
	sentScore     [2]int
	sentAuthority bool
}

// NewMatch builds the table for opts.Role. transport may be nil for single
// player, sink may be nil to stay silent and st may be nil to skip saving.
func NewMatch(opts Options, transport network.Transport, sink SoundSink, st *store.Store) *Match {
	if opts.SendEvery <= 0 {
		opts.SendEvery = 1
	}
	m := &Match{
		opts:      opts,
		world:     donburi.NewWorld(),
		space:     physics.NewWorld(),
		transport: transport,
		sink:      sink,
		store:     st,

		sentAuthority: true,
	}
	factory.CreateTable(m.world, m.space, opts.Role, opts.Difficulty)
	return m
}

func (m *Match) World() donburi.World { return m.world }
func (m *Match) Role() cfg.Role { return m.opts.Role }

func (m *Match) State() cfg.MatchStateID { return systems.MatchState(m.world) }

func (m *Match) Start() { systems.SetMatchState(m.world, cfg.MatchStatePlaying) }

// Pause stops the simulation. A sink that can be suspended goes quiet too.
func (m *Match) Pause() {
	systems.SetMatchState(m.world, cfg.MatchStatePaused)
	if s, ok := m.sink.(suspender); ok && m.State() == cfg.MatchStatePaused {
		s.Suspend()
	}
}

func (m *Match) Resume() {
	systems.SetMatchState(m.world, cfg.MatchStatePlaying)
	if s, ok := m.sink.(suspender); ok && m.State() == cfg.MatchStatePlaying {
		s.Resume()
	}
}

// SetPointer sets where the local paddle is steered to.
func (m *Match) SetPointer(target physics.Vec3) {
	if entry, ok := components.Pointer.First(m.world); ok {
		components.Pointer.Get(entry).Target = target
	}
}

func (m *Match) Snapshot() systems.RenderState { return systems.Snapshot(m.world) }

// Tick advances the match by dt seconds. Inbound frames are applied first
// and the outbound message goes out every SendEvery ticks, or straight away
// when the peer must not miss it. Paused and waiting matches still take
// inbound state but do not simulate or send.
func (m *Match) Tick(ctx context.Context, dt float64) {
	systems.ClearTickEvents(m.world)
	m.drainInbound()

	playing := m.State() == cfg.MatchStatePlaying
	if playing {
		systems.UpdateAuthority(m.world)
		systems.UpdatePaddles(m.world)
		systems.UpdatePuck(m.world)
		m.space.Step(dt)
		systems.UpdateEffects(m.world, dt)
	}

	for _, id := range systems.DrainSounds(m.world) {
		if m.sink != nil {
			m.sink.Play(id)
		}
	}

	if !playing {
		return
	}
	if systems.UpdateMatch(m.world, dt, m.opts.GoalsToWin) {
		m.finish()
	}

	m.ticks++
	if m.ticks%uint64(m.opts.SendEvery) == 0 || m.mustSend() {
		m.sendOutbound(ctx)
	}
}

// mustSend reports whether the peer has to hear about this tick even when
// sends are throttled. Score and authority changes always go out, as does the
// tick on which the puck leaves this peer's half.
func (m *Match) mustSend() bool {
	if m.transport == nil {
		return false
	}
	rs := m.Snapshot()
	if rs.Score != m.sentScore || rs.Authority != m.sentAuthority {
		return true
	}
	return rs.Authority != systems.RecomputeAuthority(m.opts.Role, rs.Puck.Z())
}

// Deliver decodes and applies one inbound frame.
func (m *Match) Deliver(data []byte) error {
	msg, err := messages.Decode(data)
	if err != nil {
		return err
	}
	if msg.Type == messages.TypePing {
		return nil
	}
	systems.ApplyInbound(m.world, msg)
	return nil
}

func (m *Match) drainInbound() {
	if m.transport == nil {
		return
	}
	inbound := m.transport.Inbound()
	for {
		select {
		case data := <-inbound:
			if err := m.Deliver(data); err != nil {
				log.Printf("[match] dropping frame: %v", err)
			}
		default:
			return
		}
	}
}

func (m *Match) sendOutbound(ctx context.Context) {
	if m.transport == nil {
		return
	}
	msg := systems.BuildOutbound(m.world)
	if msg == nil {
		return
	}
	rs := m.Snapshot()
	m.sentScore, m.sentAuthority = rs.Score, rs.Authority

	data, err := messages.Encode(msg)
	if err != nil {
		log.Printf("[match] %v", err)
		return
	}
	if err := m.transport.Send(ctx, data); err != nil && !errors.Is(err, network.ErrNoPeer) {
		log.Printf("[match] send failed: %v", err)
	}
}

func (m *Match) finish() {
	if m.opts.Role != cfg.RoleSinglePlayer {
		return
	}
	goals := m.Snapshot().Score
	rec, err := m.store.RecordResult(m.opts.Difficulty, goals[cfg.SideHost], goals[cfg.SideClient])
	if err != nil {
		log.Printf("[store] could not save record: %v", err)
		return
	}
	log.Printf("[store] %s record: %d won of %d", m.opts.Difficulty, rec.Won, rec.Played)
}
