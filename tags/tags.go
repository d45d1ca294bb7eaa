package tags

import "github.com/yohamta/donburi"

var (
	Skier    = donburi.NewTag().SetName("Skier")
	Obstacle = donburi.NewTag().SetName("Obstacle")
	Drifter  = donburi.NewTag().SetName("Drifter")
)

// Resolv tags for collision objects
const (
	ResolvSkier    = "skier"
	ResolvObstacle = "obstacle"
	ResolvRamp     = "ramp"
)
