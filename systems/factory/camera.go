package factory

import (
	"github.com/powderline/downhill/archetypes"
	"github.com/powderline/downhill/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func CreateCamera(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{
		Position: math.Vec2{X: x, Y: y},
	})
	return camera
}

// CreateClock spawns the singleton game clock at time zero.
func CreateClock(ecs *ecs.ECS) *donburi.Entry {
	clock := archetypes.Clock.Spawn(ecs)
	components.Clock.SetValue(clock, components.ClockData{Now: 0})
	return clock
}
