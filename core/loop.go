package core

import (
	"context"
	"log"
	"time"

	cfg "github.com/automoto/puckduel/config"
	"github.com/automoto/puckduel/physics"
	"github.com/automoto/puckduel/reporting"
	"github.com/automoto/puckduel/systems"
)

type commandKind int

const (
	cmdStart commandKind = iota
	cmdPause
	cmdResume
	cmdStop
	cmdPointer
)

type command struct {
	kind    commandKind
	pointer physics.Vec3
}

// Loop steps a Match at a fixed rate and publishes a RenderState after
// every tick. Commands are applied between ticks.
type Loop struct {
	match    *Match
	tickRate int

	cmds   chan command
	frames chan systems.RenderState // size-1 buffered; latest wins
	done   chan struct{}
}

func NewLoop(match *Match, tickRate int) *Loop {
	if tickRate <= 0 {
		tickRate = cfg.Net.TickRate
	}
	return &Loop{
		match:    match,
		tickRate: tickRate,
		cmds:     make(chan command, 64),
		frames:   make(chan systems.RenderState, 1),
		done:     make(chan struct{}),
	}
}

// Frames delivers the most recent RenderState. Stale frames are replaced.
func (l *Loop) Frames() <-chan systems.RenderState { return l.frames }

func (l *Loop) Start() { l.send(command{kind: cmdStart}) }
func (l *Loop) Pause() { l.send(command{kind: cmdPause}) }
func (l *Loop) Resume() { l.send(command{kind: cmdResume}) }
func (l *Loop) Stop() { l.send(command{kind: cmdStop}) }

func (l *Loop) SetPointer(target physics.Vec3) {
	l.send(command{kind: cmdPointer, pointer: target})
}

func (l *Loop) send(c command) {
	select {
	case l.cmds <- c:
	case <-l.done:
	}
}

// Run ticks until ctx is done or Stop is called.
func (l *Loop) Run(ctx context.Context) error {
	defer close(l.done)

	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	var errs <-chan error
	if l.match.transport != nil {
		errs = l.match.transport.Errors()
	}

	log.Printf("[match] loop started at %d ticks/second as %s", l.tickRate, l.match.Role())
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			log.Println("[match] loop stopped")
			return nil
		case c := <-l.cmds:
			if c.kind == cmdStop {
				log.Println("[match] loop stopped")
				return nil
			}
			l.apply(c)
		case err := <-errs:
			log.Printf("[net] %v", err)
			reporting.CaptureError("net", err)
		case now := <-ticker.C:
			dt := min(now.Sub(last).Seconds(), cfg.Net.MaxStep)
			last = now
			l.step(ctx, dt)
		}
	}
}

func (l *Loop) apply(c command) {
	switch c.kind {
	case cmdStart:
		l.match.Start()
	case cmdPause:
		l.match.Pause()
	case cmdResume:
		l.match.Resume()
	case cmdPointer:
		l.match.SetPointer(c.pointer)
	}
}

func (l *Loop) step(ctx context.Context, dt float64) {
	l.match.Tick(ctx, dt)
	l.publish(l.match.Snapshot())
}

func (l *Loop) publish(rs systems.RenderState) {
	select { // drain stale, push latest
	case <-l.frames:
	default:
	}
	l.frames <- rs
}
