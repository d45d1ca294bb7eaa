package assets

import (
	"bytes"
	"embed"
	"fmt"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"
)

var (
	//go:embed all:courses
	courseFS embed.FS

	//go:embed all:images
	imageFS embed.FS
)

// ObstacleSpawn places one obstacle on the course. Kind must name an entry in
// config.Obstacle.Kinds.
type ObstacleSpawn struct {
	X, Y float64
	Kind string
}

type SignSpawn struct {
	X, Y float64
	Text string
}

// Course is one authored downhill run: a prerendered background, the skier's
// start point, and the obstacle and sign placements.
type Course struct {
	Name       string
	Width      int
	Height     int
	Background *ebiten.Image
	SpawnX     float64
	SpawnY     float64
	Obstacles  []ObstacleSpawn
	Signs      []SignSpawn
}

type CourseLoader struct{}

func NewCourseLoader() *CourseLoader {
	return &CourseLoader{}
}

// MustLoadCourses loads every .tmx under assets/courses, panicking on any
// authoring error. Course files ship with the binary; a broken one is a
// build problem, not a runtime condition.
func (l *CourseLoader) MustLoadCourses() []Course {
	entries, err := courseFS.ReadDir("courses")
	if err != nil {
		panic(fmt.Sprintf("failed to read courses directory: %v", err))
	}

	var courses []Course
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".tmx" {
			courses = append(courses, l.MustLoadCourse(filepath.Join("courses", entry.Name())))
		}
	}

	if len(courses) == 0 {
		panic("no course files found in assets/courses")
	}

	return courses
}

func (l *CourseLoader) MustLoadCourse(path string) Course {
	courseMap, err := tiled.LoadFile(path, tiled.WithFileSystem(courseFS))
	if err != nil {
		panic(err)
	}

	course := Course{
		Name:   path,
		Width:  courseMap.Width * courseMap.TileWidth,
		Height: courseMap.Height * courseMap.TileHeight,
	}

	for _, og := range courseMap.ObjectGroups {
		switch og.Name {
		case "Obstacles":
			for _, o := range og.Objects {
				kind := o.Properties.GetString("kind")
				if kind == "" {
					panic(fmt.Sprintf("course %s: obstacle object %d has no kind", path, o.ID))
				}
				course.Obstacles = append(course.Obstacles, ObstacleSpawn{
					X:    o.X,
					Y:    o.Y,
					Kind: kind,
				})
			}
		case "SkierSpawn":
			for _, o := range og.Objects {
				course.SpawnX = o.X
				course.SpawnY = o.Y
			}
		case "Signs":
			for _, o := range og.Objects {
				course.Signs = append(course.Signs, SignSpawn{
					X:    o.X,
					Y:    o.Y,
					Text: o.Properties.GetString("text"),
				})
			}
		}
	}

	course.Background = renderBackground(courseMap, path)

	return course
}

// renderBackground prerenders the visible tile layers into one image.
func renderBackground(courseMap *tiled.Map, path string) *ebiten.Image {
	background := ebiten.NewImage(courseMap.Width*courseMap.TileWidth, courseMap.Height*courseMap.TileHeight)

	renderer, err := render.NewRendererWithFileSystem(courseMap, courseFS)
	if err != nil {
		panic(fmt.Sprintf("failed to create renderer for %s: %v", path, err))
	}

	for i, layer := range courseMap.Layers {
		if !layer.Visible {
			continue
		}
		if err := renderer.RenderLayer(i); err != nil {
			continue
		}
		layerImage := ebiten.NewImageFromImage(renderer.Result)
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleAlpha(float32(layer.Opacity))
		background.DrawImage(layerImage, op)
		layerImage.Deallocate()
		renderer.Clear()
	}

	return background
}

type ImageLoader struct {
	cache map[string]*ebiten.Image
}

func NewImageLoader() *ImageLoader {
	return &ImageLoader{cache: make(map[string]*ebiten.Image)}
}

func (l *ImageLoader) MustLoadImage(path string) *ebiten.Image {
	if img, ok := l.cache[path]; ok {
		return img
	}

	imgBytes, err := imageFS.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("failed to read image file %s: %v", path, err))
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		panic(fmt.Sprintf("failed to decode image %s: %v", path, err))
	}

	l.cache[path] = img

	return img
}

var imageLoader = NewImageLoader()

// SkierSheet returns the skier sprite sheet: facing frames, crash frame, and
// jump frames in one row.
func SkierSheet() *ebiten.Image {
	return imageLoader.MustLoadImage("images/skier.png")
}

// ObstacleSheet returns the obstacle sprite sheet shared by all kinds.
func ObstacleSheet() *ebiten.Image {
	return imageLoader.MustLoadImage("images/obstacles.png")
}
