package archetypes

import (
	"github.com/powderline/downhill/components"
	cfg "github.com/powderline/downhill/config"
	"github.com/powderline/downhill/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Skier = newArchetype(
		tags.Skier,
		components.Skier,
		components.State,
		components.Object,
		components.Animation,
		components.Sprite,
	)
	Obstacle = newArchetype(
		tags.Obstacle,
		components.Obstacle,
		components.Object,
		components.Sprite,
	)
	Drifter = newArchetype(
		tags.Obstacle,
		tags.Drifter,
		components.Obstacle,
		components.Object,
		components.Sprite,
		components.Tween,
	)
	Space = newArchetype(
		components.Space,
	)
	Course = newArchetype(
		components.Course,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Sign = newArchetype(
		components.Sign,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
