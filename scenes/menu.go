package scenes

import (
	"image/color"
	"os"
	"sync"

	"github.com/powderline/downhill/systems"
	"github.com/powderline/downhill/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the main menu using ebitenui
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	menuUI       *ui.MenuUI
	once         sync.Once
	shouldStart  bool
}

// NewMenuScene creates a new main menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)

	// Update ECS for audio
	ms.ecs.Update()

	// Update ebitenui
	ms.menuUI.Update()

	if ms.shouldStart {
		ms.sceneChanger.ChangeScene(NewSkiScene(ms.sceneChanger))
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{18, 28, 44, 255})

	if ms.ecs == nil {
		return
	}

	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())
	ms.ecs.AddSystem(systems.UpdateAudio)

	ms.menuUI = ui.NewMenuUI(
		func() { ms.shouldStart = true },
		func() { os.Exit(0) },
	)
}
