package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Skier sounds
	SoundCrash
	SoundJump
	SoundLand
	SoundRecover
	SoundDeath
	// UI sounds
	SoundMenuNavigate
	SoundMenuSelect
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate      int
	DefaultMusicVol float64
	DefaultSFXVol   float64
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:      44100,
		DefaultMusicVol: 0.75,
		DefaultSFXVol:   1.0,
	}

	Sound = SoundConfig{
		SFXPaths: map[SoundID]string{
			SoundCrash:        "audio/sfx/crash.wav",
			SoundJump:         "audio/sfx/jump.wav",
			SoundLand:         "audio/sfx/land.wav",
			SoundRecover:      "audio/sfx/recover.wav",
			SoundDeath:        "audio/sfx/death.wav",
			SoundMenuNavigate: "audio/sfx/menu_navigate.wav",
			SoundMenuSelect:   "audio/sfx/menu_select.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundCrash: 1.3,
			SoundDeath: 1.5,
		},
	}
}
