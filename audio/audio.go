// Package audio plays the synthesized sound effects through ebiten's audio
// context. Only the game binary imports it.
package audio

import (
	"log"
	"sync"

	cfg "github.com/automoto/puckduel/config"
	"github.com/automoto/puckduel/synth"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"go.uber.org/atomic"
)

// Context owns the ebiten audio context and the rendered effect buffers.
// Play is safe to call before Init; sounds are dropped until then.
type Context struct {
	once sync.Once
	ctx  *audio.Context

	mu     sync.Mutex
	pcm    map[cfg.SoundID][]byte
	volume float64

	ready     atomic.Bool
	suspended atomic.Bool // paused with the match
	muted     atomic.Bool // player setting, survives Resume
}

func NewContext(volume float64, muted bool) *Context {
	c := &Context{
		pcm:    make(map[cfg.SoundID][]byte),
		volume: volume,
	}
	c.muted.Store(muted)
	return c
}

// Init creates the audio device and renders every effect. Later calls are no-ops.
func (c *Context) Init() {
	c.once.Do(func() {
		c.ctx = audio.NewContext(cfg.Audio.SampleRate)

		c.mu.Lock()
		for id := range cfg.Audio.Tones {
			c.pcm[id] = synth.Render(id, cfg.Audio.SampleRate)
		}
		c.mu.Unlock()

		c.ready.Store(true)
		log.Printf("[audio] context ready at %d Hz", cfg.Audio.SampleRate)
	})
}

// Resume lets sounds through again after Suspend.
func (c *Context) Resume() { c.suspended.Store(false) }

// Suspend silences every sound until Resume.
func (c *Context) Suspend() { c.suspended.Store(true) }

func (c *Context) Suspended() bool { return c.suspended.Load() }

func (c *Context) SetMuted(muted bool) { c.muted.Store(muted) }
func (c *Context) Muted() bool { return c.muted.Load() }

func (c *Context) SetVolume(v float64) {
	c.mu.Lock()
	c.volume = max(0, min(1, v))
	c.mu.Unlock()
}

func (c *Context) Volume() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.volume
}

// Play starts a fresh player for id.
func (c *Context) Play(id cfg.SoundID) {
	if !c.ready.Load() || c.suspended.Load() || c.muted.Load() {
		return
	}

	c.mu.Lock()
	buf, ok := c.pcm[id]
	volume := c.volume
	c.mu.Unlock()
	if !ok || len(buf) == 0 || volume <= 0 {
		return
	}

	player := c.ctx.NewPlayerFromBytes(buf)
	player.SetVolume(volume)
	player.Play()
}
