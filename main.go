package main

import (
	"flag"
	"image"
	"log"

	"github.com/powderline/downhill/config"
	"github.com/powderline/downhill/fonts"
	"github.com/powderline/downhill/scenes"
	"github.com/powderline/downhill/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	fonts.LoadFont(fonts.Body, goregular.TTF)
	fonts.LoadFontWithSize(fonts.Bold, goregular.TTF, 20)
	fonts.LoadFontWithSize(fonts.Title, goregular.TTF, 32)
	fonts.LoadFontWithSize(fonts.Small, goregular.TTF, 12)

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewSkiScene(g)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.BoolVar(&config.Debug.SkipMenu, "skip-menu", false, "skip the main menu and start a run")
	flag.BoolVar(&config.Debug.ShowCollision, "show-collision", false, "start with the collision overlay visible")
	flag.Parse()

	ebiten.SetWindowTitle("Downhill")
	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence for saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
