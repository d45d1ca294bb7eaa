package components

import (
	cfg "github.com/powderline/downhill/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound effects requested by game systems; the audio system
// drains the queue once per tick.
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
