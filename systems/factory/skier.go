package factory

import (
	"github.com/powderline/downhill/archetypes"
	"github.com/powderline/downhill/assets"
	"github.com/powderline/downhill/components"
	cfg "github.com/powderline/downhill/config"
	"github.com/powderline/downhill/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSkier spawns the player skier at the course spawn point with the
// global config and the loaded sprite sheet.
func CreateSkier(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	skier := CreateSkierWithConfig(ecs, x, y, cfg.Skier)

	sprite := components.Sprite.Get(skier)
	sprite.Sheet = assets.SkierSheet()

	return skier
}

// CreateSkierWithConfig spawns a skier with an injected config and no sprite
// sheet. Tests use it to drive the state machine with deterministic speeds
// and timings.
func CreateSkierWithConfig(ecs *ecs.ECS, x, y float64, sc cfg.SkierConfig) *donburi.Entry {
	skier := archetypes.Skier.Spawn(ecs)

	obj := resolv.NewObject(x, y, sc.CollisionWidth, sc.CollisionHeight)
	obj.SetShape(resolv.NewRectangle(0, 0, sc.CollisionWidth, sc.CollisionHeight))
	obj.AddTags(tags.ResolvSkier)
	obj.Data = skier
	getSpace(ecs).Add(obj)
	components.Object.SetValue(skier, components.ObjectData{Object: obj})

	components.Skier.SetValue(skier, components.SkierData{
		Direction: cfg.DirDown,
		Speed:     sc.StartSpeed,
		Config:    sc,
	})
	components.State.SetValue(skier, components.StateData{
		CurrentState:  cfg.Skiing,
		PreviousState: cfg.StateNone,
		StateTimer:    0,
	})
	components.Sprite.SetValue(skier, components.SpriteData{
		Frame:       sc.DirectionFrames[cfg.DirDown],
		FrameWidth:  sc.FrameWidth,
		FrameHeight: sc.FrameHeight,
	})

	return skier
}

func getSpace(ecs *ecs.ECS) *resolv.Space {
	entry, ok := components.Space.First(ecs.World)
	if !ok {
		panic("factory: no collision space created")
	}
	return components.Space.Get(entry)
}
