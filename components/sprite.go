package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// SpriteData selects one frame of a sprite sheet. Frame is derived state: for
// the skier it follows direction, crash, or the active jump animation.
type SpriteData struct {
	Sheet       *ebiten.Image
	Frame       int
	FrameWidth  int
	FrameHeight int
}

var Sprite = donburi.NewComponentType[SpriteData]()
