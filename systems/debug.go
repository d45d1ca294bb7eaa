package systems

import (
	"fmt"
	"image/color"

	"github.com/powderline/downhill/components"
	cfg "github.com/powderline/downhill/config"
	"github.com/powderline/downhill/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebugToggle flips the collision overlay on the debug key.
func UpdateDebugToggle(e *ecs.ECS) {
	input := getOrCreateInput(e)
	if GetAction(input, cfg.ActionDebugToggle).JustPressed {
		settings := GetOrCreateSettings(e)
		settings.Debug = !settings.Debug
	}
}

// DrawDebug outlines every collision object, plus the skier's trimmed scan
// box so the raised bottom edge is visible against the full bounds.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(e)
	if !settings.Debug {
		return
	}

	camX, camY, ok := cameraOffset(e, screen)
	if !ok {
		return
	}

	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		x := obj.X + camX
		y := obj.Y + camY

		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvRamp) {
			c = color.RGBA{0, 255, 0, 255} // Green
		} else if obj.HasTags(tags.ResolvObstacle) {
			c = color.RGBA{255, 0, 0, 255} // Red
		} else if obj.HasTags(tags.ResolvSkier) {
			c = color.RGBA{0, 0, 255, 255} // Blue
		}

		drawRectOutline(screen, x, y, obj.W, obj.H, c)
	}

	// The scan box the obstacle pass actually tests
	if skierEntry, ok := tags.Skier.First(e.World); ok {
		obj := components.Object.Get(skierEntry)
		drawRectOutline(screen, obj.X+camX, obj.Y+camY, obj.W, obj.H*0.75, color.RGBA{255, 255, 0, 255})

		skier := components.Skier.Get(skierEntry)
		state := components.State.Get(skierEntry)
		readout := fmt.Sprintf("state=%s dir=%s speed=%.1f timer=%d",
			state.CurrentState, skier.Direction, skier.Speed, state.StateTimer)
		ebitenutil.DebugPrintAt(screen, readout, hudMargin, screen.Bounds().Dy()-16)
	}
}

func drawRectOutline(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), 1, c, false)       // Top
	vector.FillRect(screen, float32(x), float32(y+h-1), float32(w), 1, c, false)   // Bottom
	vector.FillRect(screen, float32(x), float32(y), 1, float32(h), c, false)       // Left
	vector.FillRect(screen, float32(x+w-1), float32(y), 1, float32(h), c, false)   // Right
}
