package systems

import (
	"image"

	"github.com/powderline/downhill/components"
	cfg "github.com/powderline/downhill/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// DrawCourse renders the pre-rendered course background under everything else.
func DrawCourse(e *ecs.ECS, screen *ebiten.Image) {
	courseEntry, ok := components.Course.First(e.World)
	if !ok {
		return
	}
	course := components.Course.Get(courseEntry)
	if course.Current == nil || course.Current.Background == nil {
		return
	}

	camX, camY, ok := cameraOffset(e, screen)
	if !ok {
		return
	}

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(camX, camY)
	screen.DrawImage(course.Current.Background, drawOp)
}

// DrawSprites renders every sheet-backed sprite centered on its collision
// box. A dead skier is not drawn: removal from the scene is the visible
// outcome of dying.
func DrawSprites(e *ecs.ECS, screen *ebiten.Image) {
	camX, camY, ok := cameraOffset(e, screen)
	if !ok {
		return
	}

	components.Sprite.Each(e.World, func(entry *donburi.Entry) {
		if entry.HasComponent(components.State) &&
			components.State.Get(entry).CurrentState == cfg.Dead {
			return
		}

		o := components.Object.Get(entry)
		sprite := components.Sprite.Get(entry)
		if sprite.Sheet == nil {
			return
		}

		sx := sprite.Frame * sprite.FrameWidth
		srcRect := image.Rect(sx, 0, sx+sprite.FrameWidth, sprite.FrameHeight)
		img := sprite.Sheet.SubImage(srcRect).(*ebiten.Image)

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()

		// Bottom-center of the sprite sits at the bottom-center of the
		// collision box, so obstacle art can overhang its footprint.
		drawOp.GeoM.Translate(-float64(sprite.FrameWidth)/2, -float64(sprite.FrameHeight))
		drawOp.GeoM.Translate(o.X+o.W/2, o.Y+o.H)
		drawOp.GeoM.Translate(camX, camY)

		screen.DrawImage(img, drawOp)
	})
}

// cameraOffset converts world coordinates into the screen translation for
// the current camera position.
func cameraOffset(e *ecs.ECS, screen *ebiten.Image) (float64, float64, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return 0, 0, false
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	return float64(width)/2 - camera.Position.X, float64(height)/2 - camera.Position.Y, true
}
