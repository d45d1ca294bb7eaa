package systems

import (
	"math"

	"github.com/powderline/downhill/components"
	cfg "github.com/powderline/downhill/config"
	"github.com/powderline/downhill/fonts"
	"github.com/powderline/downhill/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSigns pops a trail sign's text when the skier passes close enough.
// The nearest sign in range wins; the popup holds for a fixed duration after
// the skier leaves the radius.
func UpdateSigns(e *ecs.ECS) {
	skierEntry, ok := tags.Skier.First(e.World)
	if !ok {
		return
	}
	obj := components.Object.Get(skierEntry)
	skierX := obj.X + obj.W/2
	skierY := obj.Y + obj.H/2

	signState := getOrCreateSignState(e)
	if signState.DisplayTimer > 0 {
		signState.DisplayTimer--
		if signState.DisplayTimer == 0 {
			signState.ActiveText = ""
		}
	}

	bestDist := cfg.Sign.ActivationRadius
	bestText := ""
	components.Sign.Each(e.World, func(entry *donburi.Entry) {
		sign := components.Sign.Get(entry)
		dist := math.Hypot(sign.X-skierX, sign.Y-skierY)
		if dist < bestDist {
			bestDist = dist
			bestText = sign.Text
		}
	})

	if bestText != "" {
		signState.ActiveText = bestText
		signState.DisplayTimer = cfg.Sign.DisplayDuration
	}
}

// DrawSigns renders the active sign popup at the top of the screen.
func DrawSigns(e *ecs.ECS, screen *ebiten.Image) {
	signState := getOrCreateSignState(e)
	if signState.ActiveText == "" {
		return
	}

	width := float64(screen.Bounds().Dx())
	fontFace := fonts.Body.Get()

	textWidth := float64(len(signState.ActiveText) * 7)
	boxWidth := textWidth + cfg.Sign.BoxPadding*2
	boxHeight := 16 + cfg.Sign.BoxPadding*2
	boxX := (width - boxWidth) / 2
	boxY := cfg.Sign.TopMargin

	vector.FillRect(screen, float32(boxX), float32(boxY), float32(boxWidth), float32(boxHeight), cfg.Sign.BoxColor, false)
	text.Draw(screen, signState.ActiveText, fontFace,
		int(boxX+cfg.Sign.BoxPadding), int(boxY+cfg.Sign.BoxPadding)+12, cfg.Sign.TextColor)
}

func getOrCreateSignState(e *ecs.ECS) *components.SignStateData {
	entry, ok := components.SignState.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.SignState))
	}
	return components.SignState.Get(entry)
}
