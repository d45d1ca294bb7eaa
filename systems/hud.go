package systems

import (
	"fmt"

	"github.com/powderline/downhill/components"
	cfg "github.com/powderline/downhill/config"
	"github.com/powderline/downhill/fonts"
	"github.com/powderline/downhill/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

const hudMargin = 10

// DrawHUD renders the distance counter and, when the skier is down, the
// get-up prompt.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	skierEntry, ok := tags.Skier.First(e.World)
	if !ok {
		return
	}

	obj := components.Object.Get(skierEntry)
	state := components.State.Get(skierEntry)

	// Distance skied, in whole meters of descent
	distance := int(obj.Y / 10)
	if distance < 0 {
		distance = 0
	}
	text.Draw(screen, fmt.Sprintf("%dm", distance), fonts.Bold.Get(), hudMargin, hudMargin+20, cfg.HUD.PromptColor)

	if state.CurrentState != cfg.Crashed {
		return
	}

	prompt := cfg.HUD.CrashedPrompt
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	promptWidth := len(prompt) * 7
	x := int((width - float64(promptWidth)) / 2)
	y := int(height - cfg.HUD.PromptYOffset)
	text.Draw(screen, prompt, fonts.Body.Get(), x, y, cfg.HUD.PromptColor)
}
