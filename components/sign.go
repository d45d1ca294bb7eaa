package components

import "github.com/yohamta/donburi"

// SignData is a trail sign placed on the course; skiing close to it pops its
// text at the top of the screen.
type SignData struct {
	Text string
	X, Y float64
}

var Sign = donburi.NewComponentType[SignData]()

// SignStateData is a singleton tracking the active sign popup
type SignStateData struct {
	ActiveText   string // currently displayed text ("" = none)
	DisplayTimer int    // frames remaining to display
}

var SignState = donburi.NewComponentType[SignStateData]()
