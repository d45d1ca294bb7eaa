package components

import "github.com/yohamta/donburi"

// GameOverOption represents menu items on the game over screen
type GameOverOption int

const (
	GameOverRetry GameOverOption = iota
	GameOverMenu
)

// GameOverData stores the game over screen menu selection
type GameOverData struct {
	SelectedOption GameOverOption
}

var GameOver = donburi.NewComponentType[GameOverData]()
