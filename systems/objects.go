package systems

import (
	"github.com/powderline/downhill/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects syncs every resolv object's shape with its position. Runs
// after everything that moves an object and before anything that tests
// geometry.
func UpdateObjects(e *ecs.ECS) {
	components.Object.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		obj.Update()
	})
}
