package tags

import "github.com/yohamta/donburi"

var (
	Paddle       = donburi.NewTag().SetName("Paddle")
	HostPaddle   = donburi.NewTag().SetName("HostPaddle")
	ClientPaddle = donburi.NewTag().SetName("ClientPaddle")
	Puck         = donburi.NewTag().SetName("Puck")
)
