package systems

import (
	"math"

	"github.com/powderline/downhill/components"
	"github.com/powderline/downhill/config"
	"github.com/powderline/downhill/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera follows the skier down the course. Lateral look-ahead leans
// the view toward the side the skier is carving into; the camera never shows
// past the course edges.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	skierEntry, ok := tags.Skier.First(e.World)
	if !ok {
		return
	}
	skierObject := components.Object.Get(skierEntry)
	skier := components.Skier.Get(skierEntry)

	courseEntry, ok := components.Course.First(e.World)
	if !ok {
		return
	}
	course := components.Course.Get(courseEntry)
	if course.Current == nil {
		return
	}

	// Only update look-ahead while actually carving - freeze offset when the
	// skier is stopped or pivoting in place.
	if skier.Speed > config.Camera.LookAheadSpeedThreshold {
		targetLookAhead := lookAheadTarget(skier.Direction)
		camera.LookAheadX += (targetLookAhead - camera.LookAheadX) * config.Camera.LookAheadSmoothing
	}

	targetX := skierObject.X + camera.LookAheadX
	targetY := skierObject.Y

	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)
	courseWidth := float64(course.Current.Width)
	courseHeight := float64(course.Current.Height)

	// Camera bounds: ensure the course always fills the screen
	minCameraX := screenWidth / 2
	maxCameraX := courseWidth - screenWidth/2
	minCameraY := screenHeight / 2
	maxCameraY := courseHeight - screenHeight/2

	targetX = math.Max(minCameraX, math.Min(maxCameraX, targetX))
	targetY = math.Max(minCameraY, math.Min(maxCameraY, targetY))

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

func lookAheadTarget(dir config.Direction) float64 {
	switch dir {
	case config.DirLeft, config.DirLeftDown:
		return -config.Camera.LookAheadDistanceX
	case config.DirRight, config.DirRightDown:
		return config.Camera.LookAheadDistanceX
	}
	return 0
}
