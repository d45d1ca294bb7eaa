package components

import (
	"github.com/powderline/downhill/assets/animations"
	"github.com/yohamta/donburi"
)

// AnimationData holds the entity's active animation, if any. The skier owns
// its jump animation for the duration of the jump and clears it on
// completion; looping obstacles (the dog) keep theirs for life.
type AnimationData struct {
	Active *animations.Animation
}

var Animation = donburi.NewComponentType[AnimationData]()
