package systems

import (
	"os"

	"github.com/powderline/downhill/components"
	cfg "github.com/powderline/downhill/config"
	"github.com/powderline/downhill/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause handles pause toggle and menu navigation.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(e *ecs.ECS) {
	pause := GetOrCreatePause(e)
	input := getOrCreateInput(e)

	// Toggle pause on ESC or P
	if GetAction(input, cfg.ActionPause).JustPressed {
		pause.IsPaused = !pause.IsPaused
		if pause.IsPaused {
			pause.SelectedOption = components.MenuResume
		}
	}

	// Only process menu input while paused
	if !pause.IsPaused {
		return
	}

	// Navigate menu with wrap-around using modulo arithmetic
	numOptions := int(components.MenuQuit) + 1
	if GetAction(input, cfg.ActionMenuUp).JustPressed {
		pause.SelectedOption = components.PauseMenuOption(
			(int(pause.SelectedOption) - 1 + numOptions) % numOptions,
		)
		PlaySFX(e, cfg.SoundMenuNavigate)
	}
	if GetAction(input, cfg.ActionMenuDown).JustPressed {
		pause.SelectedOption = components.PauseMenuOption(
			(int(pause.SelectedOption) + 1) % numOptions,
		)
		PlaySFX(e, cfg.SoundMenuNavigate)
	}

	// Handle selection
	if GetAction(input, cfg.ActionMenuSelect).JustPressed {
		PlaySFX(e, cfg.SoundMenuSelect)
		settings := GetOrCreateSettings(e)
		switch pause.SelectedOption {
		case components.MenuResume:
			pause.IsPaused = false
		case components.MenuSound:
			settings.Muted = !settings.Muted
			if settings.Muted {
				SetSFXVolume(e, 0)
			} else {
				SetSFXVolume(e, settings.SFXVolume)
			}
			SaveSettings(e)
		case components.MenuFullscreen:
			settings.Fullscreen = !settings.Fullscreen
			ebiten.SetFullscreen(settings.Fullscreen)
			SaveSettings(e)
		case components.MenuQuit:
			os.Exit(0)
		}
	}
}

// DrawPause renders the pause overlay and menu.
func DrawPause(e *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(e)

	if !pause.IsPaused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	// Draw semi-transparent overlay
	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Pause.OverlayColor,
		false,
	)

	menuOptions := menuOptionLabels(e)
	totalMenuHeight := float64(len(menuOptions)) * (cfg.Pause.MenuItemHeight + cfg.Pause.MenuItemGap)
	startY := (height - totalMenuHeight) / 2

	fontFace := fonts.Bold.Get()

	for i, option := range menuOptions {
		y := startY + float64(i)*(cfg.Pause.MenuItemHeight+cfg.Pause.MenuItemGap)

		textColor := cfg.Pause.TextColorNormal
		if components.PauseMenuOption(i) == pause.SelectedOption {
			textColor = cfg.Pause.TextColorSelected
		}

		// Center text horizontally (approximate width calculation for 20pt font)
		textWidth := len(option) * 12
		x := int((width - float64(textWidth)) / 2)

		text.Draw(screen, option, fontFace, x, int(y)+int(cfg.Pause.MenuItemHeight), textColor)
	}

	hint := "Arrows: Navigate   Enter: Select   Esc: Resume"
	hintFont := fonts.Small.Get()
	hintWidth := len(hint) * 7
	hintX := int((width - float64(hintWidth)) / 2)
	text.Draw(screen, hint, hintFont, hintX, int(height)-12, cfg.Pause.TextColorNormal)
}

// menuOptionLabels decorates the static option list with current toggle state.
func menuOptionLabels(e *ecs.ECS) []string {
	settings := GetOrCreateSettings(e)
	labels := make([]string, len(cfg.Pause.MenuOptions))
	copy(labels, cfg.Pause.MenuOptions)

	for i, label := range labels {
		switch components.PauseMenuOption(i) {
		case components.MenuSound:
			if settings.Muted {
				labels[i] = label + ": Off"
			} else {
				labels[i] = label + ": On"
			}
		case components.MenuFullscreen:
			if settings.Fullscreen {
				labels[i] = label + ": On"
			} else {
				labels[i] = label + ": Off"
			}
		}
	}
	return labels
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(e *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{
			IsPaused:       false,
			SelectedOption: components.MenuResume,
		})
	}

	ent, _ := components.Pause.First(e.World)
	return components.Pause.Get(ent)
}
