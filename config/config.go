package config

import (
	"image/color"
	"math"

	"github.com/yohamta/donburi/ecs"
)

// Default is the ECS layer all entities and renderers are registered on.
const Default = ecs.LayerDefault

// SkierConfig contains all skier-related configuration values. A copy is
// handed to the skier at construction so tests can run with injected values.
type SkierConfig struct {
	// Movement
	StartSpeed      float64 // downhill displacement per tick while skiing
	JumpSpeed       float64 // elevated displacement per tick while airborne
	SideStep        float64 // position shift per turn input once fully lateral
	DiagonalDivisor float64 // scales diagonal displacement so its magnitude matches straight-down

	// Dimensions
	FrameWidth      int
	FrameHeight     int
	CollisionWidth  float64
	CollisionHeight float64

	// Sprite sheet frames
	DirectionFrames [DirectionCount]int // sheet frame per facing
	CrashFrame      int

	// Jump animation
	JumpFrames       []int
	JumpFrameSeconds float64 // fixed per-frame duration of the jump sequence
}

// ObstacleKindConfig describes one obstacle type placed on the course.
type ObstacleKindConfig struct {
	Frame           int // frame in the obstacle sheet
	FrameWidth      int
	FrameHeight     int
	CollisionWidth  float64
	CollisionHeight float64
	Ramp            bool // launches a jump instead of crashing the skier
}

// ObstacleConfig contains obstacle system configuration.
type ObstacleConfig struct {
	Kinds map[string]ObstacleKindConfig

	// Drifting obstacle (the dog pacing across the slope)
	DogDriftDistance float64 // lateral travel per leg of the pace
	DogDriftSeconds  float32 // seconds per leg
}

// CameraConfig contains camera behavior configuration.
type CameraConfig struct {
	FollowSmoothing         float64 // how fast the camera follows the skier (0.0-1.0)
	LookAheadDistanceX      float64 // max lateral look-ahead offset in pixels
	LookAheadSmoothing      float64 // how fast the look-ahead offset changes (0.0-1.0)
	LookAheadSpeedThreshold float64 // minimum speed to update look-ahead
}

// SignConfig contains trail sign popup configuration.
type SignConfig struct {
	ActivationRadius float64    // pixels to trigger sign display
	DisplayDuration  int        // frames to display a sign after triggering
	BoxPadding       float64    // padding inside the popup box
	BoxColor         color.RGBA // semi-transparent background color
	TextColor        color.RGBA
	TopMargin        float64 // distance from top of screen
}

// PauseConfig contains pause menu configuration values.
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// GameOverConfig contains game over screen configuration values.
type GameOverConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	Title             string
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// HUDConfig contains HUD prompt configuration.
type HUDConfig struct {
	PromptColor   color.RGBA
	PromptYOffset float64 // distance from bottom of screen
	CrashedPrompt string
}

// Config holds general game configuration.
type Config struct {
	Width  int
	Height int
}

// DebugConfig contains debug/testing command-line options.
type DebugConfig struct {
	SkipMenu      bool // skip menu and go directly to a run
	ShowCollision bool // draw collision rectangles
}

// Global configuration instances
var C *Config
var Skier SkierConfig
var Obstacle ObstacleConfig
var Camera CameraConfig
var Sign SignConfig
var Pause PauseConfig
var GameOver GameOverConfig
var HUD HUDConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	SnowBlue     = color.RGBA{R: 205, G: 225, B: 245, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	// Skier Config
	Skier = SkierConfig{
		// Movement
		StartSpeed:      4.0,
		JumpSpeed:       5.0,
		SideStep:        8.0,
		DiagonalDivisor: math.Sqrt2,

		// Dimensions
		FrameWidth:      48,
		FrameHeight:     48,
		CollisionWidth:  20,
		CollisionHeight: 36,

		// Sheet layout: one row, facings left to right, then crash, then jump
		DirectionFrames: [DirectionCount]int{0, 1, 2, 3, 4},
		CrashFrame:      5,

		JumpFrames:       []int{6, 7, 8, 9},
		JumpFrameSeconds: 0.15,
	}

	// Obstacle Config
	Obstacle = ObstacleConfig{
		Kinds: map[string]ObstacleKindConfig{
			"tree": {
				Frame:           0,
				FrameWidth:      48,
				FrameHeight:     64,
				CollisionWidth:  28,
				CollisionHeight: 52,
			},
			"rock": {
				Frame:           1,
				FrameWidth:      48,
				FrameHeight:     64,
				CollisionWidth:  36,
				CollisionHeight: 24,
			},
			"stump": {
				Frame:           2,
				FrameWidth:      48,
				FrameHeight:     64,
				CollisionWidth:  24,
				CollisionHeight: 20,
			},
			"ramp": {
				Frame:           3,
				FrameWidth:      48,
				FrameHeight:     64,
				CollisionWidth:  40,
				CollisionHeight: 24,
				Ramp:            true,
			},
			"dog": {
				Frame:           4,
				FrameWidth:      48,
				FrameHeight:     64,
				CollisionWidth:  26,
				CollisionHeight: 18,
			},
		},
		DogDriftDistance: 96.0,
		DogDriftSeconds:  3.0,
	}

	// Camera Config
	Camera = CameraConfig{
		FollowSmoothing:         0.1,
		LookAheadDistanceX:      48.0,
		LookAheadSmoothing:      0.05,
		LookAheadSpeedThreshold: 0.1,
	}

	// Trail sign Config
	Sign = SignConfig{
		ActivationRadius: 80.0,
		DisplayDuration:  240, // 4 seconds at 60fps
		BoxPadding:       8.0,
		BoxColor:         color.RGBA{R: 0, G: 0, B: 0, A: 200},
		TextColor:        White,
		TopMargin:        30.0,
	}

	// Pause Config
	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		MenuItemHeight:    30,
		MenuItemGap:       15,
		MenuOptions:       []string{"Resume", "Sound", "Fullscreen", "Quit"},
	}

	// Game Over Config
	GameOver = GameOverConfig{
		BackgroundColor:   color.RGBA{R: 10, G: 20, B: 40, A: 255},
		TitleColor:        LightRed,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		Title:             "CAUGHT!",
		TitleY:            100,
		MenuStartY:        160,
		MenuItemHeight:    30,
		MenuItemGap:       15,
		MenuOptions:       []string{"Retry", "Main Menu"},
	}

	// HUD Config
	HUD = HUDConfig{
		PromptColor:   White,
		PromptYOffset: 28,
		CrashedPrompt: "Press an arrow key to get up",
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu:      false,
		ShowCollision: false,
	}
}
