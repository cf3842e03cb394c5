package systems

import (
	"github.com/automoto/puckduel/components"
	cfg "github.com/automoto/puckduel/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// emit queues a sound and lights the matching table flash.
func emit(w donburi.World, id cfg.SoundID) {
	if entry, ok := components.Audio.First(w); ok {
		a := components.Audio.Get(entry)
		a.PendingSFX = append(a.PendingSFX, id)
	}

	entry, ok := components.Flash.First(w)
	if !ok {
		return
	}
	f := components.Flash.Get(entry)
	switch id {
	case cfg.SoundHit:
		f.HitThisTick = true
	case cfg.SoundWall:
		f.WallThisTick = true
		f.Wall = 1
		f.WallTween = newFlash(cfg.FX.WallFlashDecay)
	case cfg.SoundGoal:
		f.GoalThisTick = true
		f.Goal = 1
		f.GoalTween = newFlash(cfg.FX.GoalFlashDecay)
	}
}

func flashScore(w donburi.World, side cfg.Side) {
	entry, ok := components.Flash.First(w)
	if !ok {
		return
	}
	f := components.Flash.Get(entry)
	f.Score[side] = 1
	f.ScoreTween[side] = newFlash(cfg.FX.ScoreFlashDecay)
}

// newFlash fades from 1 to 0 at rate units per second.
func newFlash(rate float64) *gween.Tween {
	return gween.New(1, 0, float32(1/rate), ease.Linear)
}

// ClearTickEvents resets the per-tick event flags. Runs first in a tick.
func ClearTickEvents(w donburi.World) {
	entry, ok := components.Flash.First(w)
	if !ok {
		return
	}
	f := components.Flash.Get(entry)
	f.HitThisTick, f.WallThisTick, f.GoalThisTick = false, false, false
}

// UpdateEffects decays the table flashes by dt seconds
func UpdateEffects(w donburi.World, dt float64) {
	entry, ok := components.Flash.First(w)
	if !ok {
		return
	}
	f := components.Flash.Get(entry)

	f.Wall, f.WallTween = advance(f.WallTween, dt)
	f.Goal, f.GoalTween = advance(f.GoalTween, dt)
	for i := range f.ScoreTween {
		f.Score[i], f.ScoreTween[i] = advance(f.ScoreTween[i], dt)
	}
}

func advance(tw *gween.Tween, dt float64) (float64, *gween.Tween) {
	if tw == nil {
		return 0, nil
	}
	v, done := tw.Update(float32(dt))
	if done {
		return 0, nil
	}
	return float64(v), tw
}

// DrainSounds returns and clears the sounds queued since the last call.
func DrainSounds(w donburi.World) []cfg.SoundID {
	entry, ok := components.Audio.First(w)
	if !ok {
		return nil
	}
	a := components.Audio.Get(entry)
	if len(a.PendingSFX) == 0 {
		return nil
	}
	out := make([]cfg.SoundID, len(a.PendingSFX))
	copy(out, a.PendingSFX)
	a.PendingSFX = a.PendingSFX[:0]
	return out
}
