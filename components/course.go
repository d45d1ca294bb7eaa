package components

import (
	"github.com/powderline/downhill/assets"
	"github.com/yohamta/donburi"
)

type CourseData struct {
	Current *assets.Course
}

var Course = donburi.NewComponentType[CourseData]()
