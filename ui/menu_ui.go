package ui

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// MenuUI holds the ebitenui interface for the main menu
type MenuUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnStartRun func()
	OnQuit     func()

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewMenuUI creates the main menu UI with ebitenui
func NewMenuUI(onStartRun, onQuit func()) *MenuUI {
	mui := &MenuUI{
		OnStartRun: onStartRun,
		OnQuit:     onQuit,
	}

	mui.loadFonts()
	mui.buildUI()

	return mui
}

func (mui *MenuUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	// Sized to fit the 640x360 screen
	mui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   28,
	}
	mui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   14,
	}
	mui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   10,
	}
}

func (mui *MenuUI) buildUI() {
	// Root container with AnchorLayout to fill the screen
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{18, 28, 44, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	// Content container with vertical layout, centered
	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	// Title
	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("DOWNHILL", &mui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	subtitleLabel := widget.NewLabel(
		widget.LabelOpts.Text("Carve. Jump. Don't hit the trees.", &mui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{160, 190, 220, 255},
		}),
	)
	contentContainer.AddChild(subtitleLabel)

	contentContainer.AddChild(mui.buildButtonsContainer())

	hintLabel := widget.NewLabel(
		widget.LabelOpts.Text("Arrows steer - Esc pauses - F3 shows collision", &mui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{120, 140, 160, 255},
		}),
	)
	contentContainer.AddChild(hintLabel)

	rootContainer.AddChild(contentContainer)

	mui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (mui *MenuUI) buildButtonsContainer() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)

	startButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(120, 28)),
		widget.ButtonOpts.Image(mui.buttonImage()),
		widget.ButtonOpts.Text("Start Run", &mui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{200, 255, 200, 255},
			Pressed: color.RGBA{150, 200, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if mui.OnStartRun != nil {
				mui.OnStartRun()
			}
		}),
	)
	container.AddChild(startButton)

	quitButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(120, 28)),
		widget.ButtonOpts.Image(mui.buttonImage()),
		widget.ButtonOpts.Text("Quit", &mui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 200, 200, 255},
			Pressed: color.RGBA{200, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if mui.OnQuit != nil {
				mui.OnQuit()
			}
		}),
	)
	container.AddChild(quitButton)

	return container
}

func (mui *MenuUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{50, 70, 95, 255})
	hover := image.NewNineSliceColor(color.RGBA{70, 95, 120, 255})
	pressed := image.NewNineSliceColor(color.RGBA{35, 50, 70, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// Update advances the ebitenui widget tree one tick
func (mui *MenuUI) Update() {
	mui.UI.Update()
}
