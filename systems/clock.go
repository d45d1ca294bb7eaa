package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/powderline/downhill/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances the run's monotonic clock by one tick. Every
// time-driven system reads this clock instead of the wall clock, which keeps
// simulations deterministic.
func UpdateClock(e *ecs.ECS) {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		return
	}
	clock := components.Clock.Get(entry)
	clock.Now += 1.0 / float64(ebiten.TPS())
}
