package audio

import (
	"testing"

	cfg "github.com/automoto/puckduel/config"
)

func TestPlayBeforeInitIsDropped(t *testing.T) {
	c := NewContext(1, false)
	c.Play(cfg.SoundHit)
	if c.ctx != nil {
		t.Fatalf("Play created an audio context")
	}
}

func TestSuspendResume(t *testing.T) {
	c := NewContext(1, false)
	if c.Suspended() {
		t.Fatalf("new context suspended")
	}
	c.Suspend()
	if !c.Suspended() {
		t.Fatalf("not suspended after Suspend")
	}
	c.Resume()
	if c.Suspended() {
		t.Fatalf("still suspended after Resume")
	}
}

func TestMuteSurvivesResume(t *testing.T) {
	c := NewContext(1, true)
	c.Suspend()
	c.Resume()
	if !c.Muted() {
		t.Fatalf("Resume cleared the mute setting")
	}
	c.SetMuted(false)
	if c.Muted() {
		t.Fatalf("still muted after SetMuted(false)")
	}
}

func TestSetVolumeClamps(t *testing.T) {
	c := NewContext(0.5, false)
	c.SetVolume(3)
	if got := c.Volume(); got != 1 {
		t.Fatalf("volume = %f, want 1", got)
	}
	c.SetVolume(-1)
	if got := c.Volume(); got != 0 {
		t.Fatalf("volume = %f, want 0", got)
	}
}
