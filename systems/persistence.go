package systems

import (
	"encoding/json"
	"log"

	"github.com/powderline/downhill/components"
	cfg "github.com/powderline/downhill/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	SFXVolume  float64 `json:"sfxVolume"`
	Muted      bool    `json:"muted"`
	Fullscreen bool    `json:"fullscreen"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "downhill",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings persists the current Settings component to disk
func SaveSettings(e *ecs.ECS) {
	if !gdataInitialized || gdataManager == nil {
		return
	}

	s := GetOrCreateSettings(e)
	saved := SavedSettings{
		SFXVolume:  s.SFXVolume,
		Muted:      s.Muted,
		Fullscreen: s.Fullscreen,
	}

	data, err := json.Marshal(saved)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
	}
}

// ApplySavedSettings applies loaded settings to the game systems
func ApplySavedSettings(e *ecs.ECS, saved *SavedSettings) {
	if saved == nil {
		return
	}

	s := GetOrCreateSettings(e)
	s.SFXVolume = saved.SFXVolume
	s.Muted = saved.Muted
	s.Fullscreen = saved.Fullscreen

	if saved.Muted {
		SetSFXVolume(e, 0)
	} else {
		SetSFXVolume(e, saved.SFXVolume)
	}

	ebiten.SetFullscreen(saved.Fullscreen)
}

// GetOrCreateSettings returns the singleton Settings component, creating it
// with defaults if needed.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			SFXVolume: cfg.Audio.DefaultSFXVol,
		})
	}
	return components.Settings.Get(entry)
}
