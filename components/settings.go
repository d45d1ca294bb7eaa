package components

import "github.com/yohamta/donburi"

// SettingsData is the singleton runtime settings state, persisted via gdata.
type SettingsData struct {
	Muted      bool
	SFXVolume  float64
	Fullscreen bool
	Debug      bool
}

var Settings = donburi.NewComponentType[SettingsData]()
