package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FlashData tracks the table highlight intensities, 1 right after the event
// and decaying to 0 (singleton component)
type FlashData struct {
	Wall  float64
	Goal  float64
	Score [2]float64

	WallTween  *gween.Tween
	GoalTween  *gween.Tween
	ScoreTween [2]*gween.Tween

	// Events raised during the current tick, cleared at tick start.
	HitThisTick  bool
	WallThisTick bool
	GoalThisTick bool
}

var Flash = donburi.NewComponentType[FlashData]()
