package components

import (
	cfg "github.com/automoto/puckduel/config"
	"github.com/yohamta/donburi"
)

// AuthorityData records which peer owns puck truth (singleton component).
type AuthorityData struct {
	Role     cfg.Role
	Current  bool
	Previous bool
	Handoffs int // velocity re-seeds performed
}

var Authority = donburi.NewComponentType[AuthorityData]()
