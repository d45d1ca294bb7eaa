package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position   math.Vec2
	LookAheadX float64 // current smoothed lateral look-ahead offset
}

var Camera = donburi.NewComponentType[CameraData]()
