package systems

import (
	"github.com/powderline/downhill/assets/animations"
	"github.com/powderline/downhill/components"
	cfg "github.com/powderline/downhill/config"
	"github.com/powderline/downhill/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSkier advances the skier one tick against the game clock: kinematics
// and the obstacle scan while skiing, kinematics and the jump animation while
// airborne. Crashed and dead skiers hold still until input or a new run.
func UpdateSkier(e *ecs.ECS) {
	entry, ok := tags.Skier.First(e.World)
	if !ok {
		return
	}

	skier := components.Skier.Get(entry)
	state := components.State.Get(entry)
	state.StateTimer++

	switch state.CurrentState {
	case cfg.Skiing:
		moveSkier(entry, skier)
		scanObstacles(e, entry, skier, state)
	case cfg.Jumping:
		// The jump keeps descending the hill while the animation plays.
		moveSkier(entry, skier)
		advanceJump(e, entry)
	}
}

// HandleSkierAction feeds one discrete input event into the skier and
// reports whether the action was recognized. Every action is ignored once
// the skier is dead.
func HandleSkierAction(e *ecs.ECS, entry *donburi.Entry, action cfg.ActionID) bool {
	skier := components.Skier.Get(entry)
	state := components.State.Get(entry)
	sprite := components.Sprite.Get(entry)
	obj := components.Object.Get(entry).Object

	if state.CurrentState == cfg.Dead {
		return false
	}

	switch action {
	case cfg.ActionTurnLeft:
		if state.CurrentState == cfg.Crashed {
			recoverSkier(e, skier, state, sprite, cfg.DirLeft)
		}
		if skier.Direction == cfg.DirLeft {
			obj.X -= skier.Config.SideStep
		} else {
			skier.Direction = skier.Direction.TurnedLeft()
			sprite.Frame = skier.Config.DirectionFrames[skier.Direction]
		}
		return true

	case cfg.ActionTurnRight:
		if state.CurrentState == cfg.Crashed {
			recoverSkier(e, skier, state, sprite, cfg.DirRight)
		}
		if skier.Direction == cfg.DirRight {
			obj.X += skier.Config.SideStep
		} else {
			skier.Direction = skier.Direction.TurnedRight()
			sprite.Frame = skier.Config.DirectionFrames[skier.Direction]
		}
		return true

	case cfg.ActionFaceUp:
		// Climbing only works from a full sideways stance and never scales
		// with speed.
		if state.CurrentState != cfg.Crashed && skier.Direction.Lateral() {
			obj.Y -= skier.Config.SideStep
		}
		return true

	case cfg.ActionFaceDown:
		if state.CurrentState != cfg.Crashed {
			skier.Direction = cfg.DirDown
			sprite.Frame = skier.Config.DirectionFrames[cfg.DirDown]
		}
		return true

	case cfg.ActionJump:
		// Reserved: the trick/jump button is part of the input surface but
		// is not wired to any transition yet.
		return true
	}

	return false
}

// KillSkier forces the terminal dead state. Invoked from outside the skier's
// own logic, e.g. when the thing chasing the skier down the hill wins.
func KillSkier(e *ecs.ECS, entry *donburi.Entry) {
	skier := components.Skier.Get(entry)
	state := components.State.Get(entry)
	anim := components.Animation.Get(entry)

	if state.CurrentState == cfg.Dead {
		return
	}

	skier.Speed = 0
	state.CurrentState = cfg.Dead
	state.StateTimer = 0
	anim.Active = nil
	PlaySFX(e, cfg.SoundDeath)
}

// moveSkier applies the per-tick displacement for the current facing. The
// diagonal divisor keeps the displacement magnitude equal to Speed no matter
// the facing; fully lateral stances pivot in place and only move on input.
func moveSkier(entry *donburi.Entry, skier *components.SkierData) {
	obj := components.Object.Get(entry).Object

	switch skier.Direction {
	case cfg.DirDown:
		obj.Y += skier.Speed
	case cfg.DirLeftDown:
		obj.X -= skier.Speed / skier.Config.DiagonalDivisor
		obj.Y += skier.Speed / skier.Config.DiagonalDivisor
	case cfg.DirRightDown:
		obj.X += skier.Speed / skier.Config.DiagonalDivisor
		obj.Y += skier.Speed / skier.Config.DiagonalDivisor
	}
}

// scanObstacles runs one collision pass over the obstacle set. Ramps launch
// a jump and are excluded as crash triggers; the scan keeps going so a crash
// trigger elsewhere in the same pass still wins. The skier crashes at most
// once per tick.
func scanObstacles(e *ecs.ECS, entry *donburi.Entry, skier *components.SkierData, state *components.StateData) {
	obj := components.Object.Get(entry).Object
	box := skierCollisionBox(obj)

	crashed := false
	components.Obstacle.Each(e.World, func(oe *donburi.Entry) {
		oobj := components.Object.Get(oe).Object
		if oobj.Shape == nil || box.Intersection(0, 0, oobj.Shape) == nil {
			return
		}
		if components.Obstacle.Get(oe).Ramp && state.CurrentState != cfg.Jumping {
			startJump(e, entry, skier, state)
			return
		}
		crashed = true
	})

	if crashed {
		crashSkier(e, entry, skier, state)
	}
}

// skierCollisionBox is the skier's bounds with the bottom edge pulled up to
// a quarter height below center, so obstacle sprites overlap the skis on a
// crash instead of stacking underneath them.
func skierCollisionBox(obj *resolv.Object) *resolv.ConvexPolygon {
	return resolv.NewRectangle(obj.X, obj.Y, obj.W, obj.H*0.75)
}

func crashSkier(e *ecs.ECS, entry *donburi.Entry, skier *components.SkierData, state *components.StateData) {
	sprite := components.Sprite.Get(entry)
	anim := components.Animation.Get(entry)

	skier.Speed = 0
	state.CurrentState = cfg.Crashed
	state.StateTimer = 0
	anim.Active = nil
	sprite.Frame = skier.Config.CrashFrame
	PlaySFX(e, cfg.SoundCrash)
}

func recoverSkier(e *ecs.ECS, skier *components.SkierData, state *components.StateData, sprite *components.SpriteData, dir cfg.Direction) {
	skier.Speed = skier.Config.StartSpeed
	skier.Direction = dir
	state.CurrentState = cfg.Skiing
	state.StateTimer = 0
	sprite.Frame = skier.Config.DirectionFrames[dir]
	PlaySFX(e, cfg.SoundRecover)
}

func startJump(e *ecs.ECS, entry *donburi.Entry, skier *components.SkierData, state *components.StateData) {
	sprite := components.Sprite.Get(entry)
	anim := components.Animation.Get(entry)
	now := clockNow(e)

	state.CurrentState = cfg.Jumping
	state.StateTimer = 0
	skier.Speed = skier.Config.JumpSpeed

	jump := animations.New(skier.Config.JumpFrames, skier.Config.JumpFrameSeconds, false, func() {
		landSkier(e, entry)
	})
	jump.Start(now)
	anim.Active = jump
	sprite.Frame = jump.Frame()
	PlaySFX(e, cfg.SoundJump)
}

// landSkier runs synchronously from the jump animation's completion
// callback, inside the same update tick.
func landSkier(e *ecs.ECS, entry *donburi.Entry) {
	skier := components.Skier.Get(entry)
	state := components.State.Get(entry)
	sprite := components.Sprite.Get(entry)
	anim := components.Animation.Get(entry)

	anim.Active = nil
	state.CurrentState = cfg.Skiing
	state.StateTimer = 0
	skier.Speed = skier.Config.StartSpeed
	sprite.Frame = skier.Config.DirectionFrames[skier.Direction]
	PlaySFX(e, cfg.SoundLand)
}

func advanceJump(e *ecs.ECS, entry *donburi.Entry) {
	anim := components.Animation.Get(entry)
	active := anim.Active
	if active == nil {
		return
	}

	// Completion may clear anim.Active from inside Advance.
	active.Advance(clockNow(e))
	if anim.Active != nil {
		components.Sprite.Get(entry).Frame = active.Frame()
	}
}

func clockNow(e *ecs.ECS) float64 {
	if entry, ok := components.Clock.First(e.World); ok {
		return components.Clock.Get(entry).Now
	}
	return 0
}
