package config

// StateID identifies a lifecycle state of the skier.
type StateID int

const (
	StateNone StateID = iota

	Skiing
	Crashed
	Jumping
	Dead
)

var stateNames = map[StateID]string{
	StateNone: "none",
	Skiing:    "skiing",
	Crashed:   "crashed",
	Jumping:   "jumping",
	Dead:      "dead",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Direction is the skier's facing. The ordering is meaningful: a turn moves
// one step along the enumeration, saturating at the fully-lateral ends.
type Direction int

const (
	DirLeft Direction = iota
	DirLeftDown
	DirDown
	DirRightDown
	DirRight

	DirectionCount // Must be last - used for array sizing
)

// TurnedLeft returns the direction one step to the left, saturating at DirLeft.
func (d Direction) TurnedLeft() Direction {
	if d > DirLeft {
		return d - 1
	}
	return d
}

// TurnedRight returns the direction one step to the right, saturating at DirRight.
func (d Direction) TurnedRight() Direction {
	if d < DirRight {
		return d + 1
	}
	return d
}

// Lateral reports whether the skier is fully sideways (no downhill component).
func (d Direction) Lateral() bool {
	return d == DirLeft || d == DirRight
}

var directionNames = [DirectionCount]string{"left", "left-down", "down", "right-down", "right"}

func (d Direction) String() string {
	if d >= 0 && d < DirectionCount {
		return directionNames[d]
	}
	return "unknown"
}
