package config

import "testing"

func TestDirectionTurns(t *testing.T) {
	tests := []struct {
		name  string
		start Direction
		left  Direction
		right Direction
	}{
		{"left saturates left", DirLeft, DirLeft, DirLeftDown},
		{"left-down", DirLeftDown, DirLeft, DirDown},
		{"down", DirDown, DirLeftDown, DirRightDown},
		{"right-down", DirRightDown, DirDown, DirRight},
		{"right saturates right", DirRight, DirRightDown, DirRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.start.TurnedLeft(); got != tt.left {
				t.Errorf("TurnedLeft() = %v, want %v", got, tt.left)
			}
			if got := tt.start.TurnedRight(); got != tt.right {
				t.Errorf("TurnedRight() = %v, want %v", got, tt.right)
			}
		})
	}
}

func TestDirectionLateral(t *testing.T) {
	tests := []struct {
		dir  Direction
		want bool
	}{
		{DirLeft, true},
		{DirLeftDown, false},
		{DirDown, false},
		{DirRightDown, false},
		{DirRight, true},
	}

	for _, tt := range tests {
		if got := tt.dir.Lateral(); got != tt.want {
			t.Errorf("%v.Lateral() = %v, want %v", tt.dir, got, tt.want)
		}
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state StateID
		want  string
	}{
		{Skiing, "skiing"},
		{Crashed, "crashed"},
		{Jumping, "jumping"},
		{Dead, "dead"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
