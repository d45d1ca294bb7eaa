package factory

import (
	"github.com/powderline/downhill/archetypes"
	"github.com/powderline/downhill/assets"
	"github.com/powderline/downhill/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCourseShell loads the first authored course into a course entity.
// The collision space is sized from it, so this runs before anything that
// needs the space.
func CreateCourseShell(ecs *ecs.ECS) *donburi.Entry {
	courseEntry := archetypes.Course.Spawn(ecs)

	loader := assets.NewCourseLoader()
	courses := loader.MustLoadCourses()

	components.Course.SetValue(courseEntry, components.CourseData{Current: &courses[0]})
	return courseEntry
}

// PopulateCourse spawns everything the course places: obstacles and trail
// signs. Requires the collision space to exist.
func PopulateCourse(ecs *ecs.ECS, course *assets.Course) {
	for _, spawn := range course.Obstacles {
		if spawn.Kind == "dog" {
			CreateDrifter(ecs, spawn.X, spawn.Y, spawn.Kind)
		} else {
			CreateObstacle(ecs, spawn.X, spawn.Y, spawn.Kind)
		}
	}

	for _, sign := range course.Signs {
		CreateSign(ecs, sign.X, sign.Y, sign.Text)
	}
}

func CreateSign(ecs *ecs.ECS, x, y float64, text string) *donburi.Entry {
	sign := archetypes.Sign.Spawn(ecs)
	components.Sign.SetValue(sign, components.SignData{
		Text: text,
		X:    x,
		Y:    y,
	})
	return sign
}
