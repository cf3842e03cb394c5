package synth

import (
	"encoding/binary"
	"math"
	"testing"

	cfg "github.com/automoto/puckduel/config"
)

const sr = 44100

func sample(buf []byte, frame int) (left, right int16) {
	l := binary.LittleEndian.Uint16(buf[frame*BytesPerFrame:])
	r := binary.LittleEndian.Uint16(buf[frame*BytesPerFrame+2:])
	return int16(l), int16(r)
}

func TestRenderLengths(t *testing.T) {
	cases := []struct {
		id   cfg.SoundID
		secs float64
	}{
		{cfg.SoundHit, 0.12},
		{cfg.SoundWall, 0.07},
		{cfg.SoundGoal, 3*0.12 + 0.18},
	}
	for _, tc := range cases {
		buf := Render(tc.id, sr)
		want := int(math.Round(tc.secs*sr)) * BytesPerFrame
		if len(buf) != want {
			t.Fatalf("%v: len = %d, want %d", tc.id, len(buf), want)
		}
	}
}

func TestRenderUnknownSound(t *testing.T) {
	if buf := Render(cfg.SoundNone, sr); buf != nil {
		t.Fatalf("got %d bytes for SoundNone", len(buf))
	}
}

func TestChannelsMatchAndStayUnderGain(t *testing.T) {
	buf := Render(cfg.SoundHit, sr)
	limit := int16(math.Ceil(0.6 * math.MaxInt16))
	for i := 0; i < len(buf)/BytesPerFrame; i++ {
		l, r := sample(buf, i)
		if l != r {
			t.Fatalf("frame %d: left %d right %d", i, l, r)
		}
		if l > limit || l < -limit {
			t.Fatalf("frame %d: %d exceeds gain", i, l)
		}
	}
	if l, _ := sample(buf, 0); l != 0 {
		t.Fatalf("sine voice starts at %d, want 0", l)
	}
}

func TestSquareVoiceIsTwoLevel(t *testing.T) {
	buf := RenderTones([]cfg.ToneSpec{{
		Wave: cfg.WaveSquare, StartHz: 100, EndHz: 100, SweepSecs: 1, Gain: 0.5, Length: 0.01,
	}}, sr, 0.5)
	want := int16(math.Round(0.5 * math.MaxInt16))
	for i := 0; i < len(buf)/BytesPerFrame; i++ {
		if l, _ := sample(buf, i); l != want && l != -want {
			t.Fatalf("frame %d = %d, want ±%d", i, l, want)
		}
	}
}

func TestGoalNotesAreStaggered(t *testing.T) {
	buf := Render(cfg.SoundGoal, sr)
	// the last note starts at 0.36s and is silent before that
	late := RenderTones(cfg.Audio.Tones[cfg.SoundGoal][3:], sr, cfg.Audio.FloorGain)
	if len(late) != len(buf) {
		t.Fatalf("single late voice len = %d, want %d", len(late), len(buf))
	}
	for i := 0; i < int(0.36*sr)-1; i++ {
		if l, _ := sample(late, i); l != 0 {
			t.Fatalf("late voice audible at frame %d", i)
		}
	}
}

func TestRamp(t *testing.T) {
	if got := Ramp(520, 80, 0, 0.08); got != 520 {
		t.Fatalf("start = %f", got)
	}
	if got := Ramp(520, 80, 0.08, 0.08); got != 80 {
		t.Fatalf("end = %f", got)
	}
	if got := Ramp(520, 80, 1, 0.08); got != 80 {
		t.Fatalf("after span = %f", got)
	}
	mid := Ramp(400, 100, 0.5, 1)
	if math.Abs(mid-200) > 1e-9 {
		t.Fatalf("mid = %f, want geometric mean 200", mid)
	}
}
