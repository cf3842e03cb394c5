package components

import "github.com/yohamta/donburi"

type PuckData struct {
	PrevSpeed float64 // planar speed at the end of the previous authoritative tick
}

var Puck = donburi.NewComponentType[PuckData]()
