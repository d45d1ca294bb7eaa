package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/powderline/downhill/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDrift moves drifting obstacles along their tween sequence. The
// sequence holds the full out-and-back path; when it completes it resets, so
// the drift loops for the whole run.
func UpdateDrift(e *ecs.ECS) {
	dt := float32(1.0 / float64(ebiten.TPS()))

	components.Tween.Each(e.World, func(entry *donburi.Entry) {
		seq := components.Tween.Get(entry)
		x, _, seqDone := seq.Update(dt)

		obj := components.Object.Get(entry)
		obj.X = float64(x)

		if seqDone {
			seq.Reset()
		}
	})
}
