package components

import "github.com/yohamta/donburi"

// ObstacleData tags a course obstacle. Ramp obstacles launch the skier into a
// jump; everything else is a crash trigger. Read-only from the skier's side.
type ObstacleData struct {
	Kind string
	Ramp bool
}

var Obstacle = donburi.NewComponentType[ObstacleData]()
