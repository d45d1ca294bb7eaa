package components

import (
	cfg "github.com/powderline/downhill/config"
	"github.com/yohamta/donburi"
)

// SkierData is the player-controlled skier. Direction only ever changes
// through the saturating turn helpers on cfg.Direction, and Speed is mutated
// together with the lifecycle state by the transition helpers in systems.
type SkierData struct {
	Direction cfg.Direction
	Speed     float64

	// Config is copied in at construction so tests can inject speeds,
	// step sizes, and animation timings.
	Config cfg.SkierConfig
}

var Skier = donburi.NewComponentType[SkierData]()
