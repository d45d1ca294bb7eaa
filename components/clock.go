package components

import "github.com/yohamta/donburi"

// ClockData is the singleton monotonic game time in seconds. The ski scene
// advances it once per tick; animation scheduling reads it and never touches
// wall time, so tests drive it directly.
type ClockData struct {
	Now float64
}

var Clock = donburi.NewComponentType[ClockData]()
