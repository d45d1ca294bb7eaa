package scenes

import (
	"image/color"
	"sync"

	"github.com/powderline/downhill/components"
	cfg "github.com/powderline/downhill/config"
	"github.com/powderline/downhill/systems"
	"github.com/powderline/downhill/systems/factory"
	"github.com/powderline/downhill/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SkiScene runs one trip down the course.
type SkiScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewSkiScene creates a new run
func NewSkiScene(sc SceneChanger) *SkiScene {
	return &SkiScene{sceneChanger: sc}
}

func (ss *SkiScene) Update() {
	ss.once.Do(ss.configure)
	ss.ecs.Update()

	// A dead skier ends the run
	if ss.checkGameOver() {
		ss.sceneChanger.ChangeScene(NewGameOverScene(ss.sceneChanger))
	}
}

func (ss *SkiScene) checkGameOver() bool {
	if ss.ecs == nil {
		return false
	}

	entry, ok := tags.Skier.First(ss.ecs.World)
	if !ok {
		return false
	}
	return components.State.Get(entry).CurrentState == cfg.Dead
}

func (ss *SkiScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ss.ecs == nil {
		return
	}
	ss.ecs.Draw(screen)
}

func (ss *SkiScene) configure() {
	// Preload assets to avoid lag on first use (important for WASM)
	systems.PreloadAllSFX()

	e := ecs.NewECS(donburi.NewWorld())

	// Audio runs first so queued menu sounds play even while paused
	e.AddSystem(systems.UpdateAudio)

	// Systems that always run
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePause)
	e.AddSystem(systems.UpdateDebugToggle)

	// Game systems gated on the pause state
	e.AddSystem(systems.WithPauseCheck(systems.UpdateClock))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateSkierInput))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateDrift))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateObjects))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateSkier))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateSigns))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateCamera))

	// Renderers, back to front
	e.AddRenderer(cfg.Default, systems.DrawCourse)
	e.AddRenderer(cfg.Default, systems.DrawSprites)
	e.AddRenderer(cfg.Default, systems.DrawSigns)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.Default, systems.DrawPause)

	ss.ecs = e

	// Course first: its dimensions size the collision space
	course := factory.CreateCourseShell(ss.ecs)
	courseData := components.Course.Get(course)

	factory.CreateSpace(ss.ecs,
		courseData.Current.Width,
		courseData.Current.Height,
		16, 16,
	)

	factory.PopulateCourse(ss.ecs, courseData.Current)
	factory.CreateClock(ss.ecs)
	factory.CreateSkier(ss.ecs, courseData.Current.SpawnX, courseData.Current.SpawnY)
	factory.CreateCamera(ss.ecs, courseData.Current.SpawnX, courseData.Current.SpawnY)

	// Saved settings apply to every fresh run
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(ss.ecs, saved)
	}

	if cfg.Debug.ShowCollision {
		systems.GetOrCreateSettings(ss.ecs).Debug = true
	}
}
