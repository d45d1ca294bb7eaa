package systems

import (
	"github.com/powderline/downhill/components"
	cfg "github.com/powderline/downhill/config"
	"github.com/powderline/downhill/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput polls raw keyboard state into the InputComponent.
// Must run BEFORE UpdateSkierInput in the system order.
func UpdateInput(e *ecs.ECS) {
	input := getOrCreateInput(e)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
	}
}

// UpdateSkierInput translates freshly pressed steering actions into skier
// commands. Steering is edge-triggered: holding a key turns once.
func UpdateSkierInput(e *ecs.ECS) {
	entry, ok := tags.Skier.First(e.World)
	if !ok {
		return
	}
	input := getOrCreateInput(e)

	for _, action := range []cfg.ActionID{
		cfg.ActionTurnLeft,
		cfg.ActionTurnRight,
		cfg.ActionFaceUp,
		cfg.ActionFaceDown,
		cfg.ActionJump,
	} {
		if GetAction(input, action).JustPressed {
			HandleSkierAction(e, entry, action)
		}
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
