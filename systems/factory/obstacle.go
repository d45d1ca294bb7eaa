package factory

import (
	"fmt"

	"github.com/powderline/downhill/archetypes"
	"github.com/powderline/downhill/assets"
	"github.com/powderline/downhill/components"
	cfg "github.com/powderline/downhill/config"
	"github.com/powderline/downhill/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateObstacle spawns a static obstacle of the given kind. The dog kind
// drifts and goes through CreateDrifter instead.
func CreateObstacle(ecs *ecs.ECS, x, y float64, kind string) *donburi.Entry {
	obstacle := archetypes.Obstacle.Spawn(ecs)
	buildObstacle(ecs, obstacle, x, y, kind)
	return obstacle
}

// CreateDrifter spawns an obstacle that paces back and forth across the
// slope on a looping tween, like the lodge dog wandering the run.
func CreateDrifter(ecs *ecs.ECS, x, y float64, kind string) *donburi.Entry {
	drifter := archetypes.Drifter.Spawn(ecs)
	buildObstacle(ecs, drifter, x, y, kind)

	dist := float32(cfg.Obstacle.DogDriftDistance)
	secs := cfg.Obstacle.DogDriftSeconds
	tw := gween.NewSequence(
		gween.New(float32(x), float32(x)+dist, secs, ease.Linear),
		gween.New(float32(x)+dist, float32(x), secs, ease.Linear),
	)
	components.Tween.Set(drifter, tw)

	return drifter
}

func buildObstacle(ecs *ecs.ECS, entry *donburi.Entry, x, y float64, kind string) {
	kc, ok := cfg.Obstacle.Kinds[kind]
	if !ok {
		panic(fmt.Sprintf("factory: unknown obstacle kind %q", kind))
	}

	obj := resolv.NewObject(x, y, kc.CollisionWidth, kc.CollisionHeight)
	obj.SetShape(resolv.NewRectangle(0, 0, kc.CollisionWidth, kc.CollisionHeight))
	obj.AddTags(tags.ResolvObstacle)
	if kc.Ramp {
		obj.AddTags(tags.ResolvRamp)
	}
	obj.Data = entry
	getSpace(ecs).Add(obj)
	components.Object.SetValue(entry, components.ObjectData{Object: obj})

	components.Obstacle.SetValue(entry, components.ObstacleData{
		Kind: kind,
		Ramp: kc.Ramp,
	})
	components.Sprite.SetValue(entry, components.SpriteData{
		Sheet:       assets.ObstacleSheet(),
		Frame:       kc.Frame,
		FrameWidth:  kc.FrameWidth,
		FrameHeight: kc.FrameHeight,
	})
}

// CreateTestObstacle spawns an obstacle without touching the asset loader so
// collision logic can be exercised headless.
func CreateTestObstacle(ecs *ecs.ECS, x, y, w, h float64, kind string, ramp bool) *donburi.Entry {
	obstacle := archetypes.Obstacle.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.AddTags(tags.ResolvObstacle)
	if ramp {
		obj.AddTags(tags.ResolvRamp)
	}
	obj.Data = obstacle
	getSpace(ecs).Add(obj)
	components.Object.SetValue(obstacle, components.ObjectData{Object: obj})

	components.Obstacle.SetValue(obstacle, components.ObstacleData{Kind: kind, Ramp: ramp})
	components.Sprite.SetValue(obstacle, components.SpriteData{})

	return obstacle
}
