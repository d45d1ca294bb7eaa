package systems

import (
	"math"
	"testing"

	"github.com/powderline/downhill/components"
	cfg "github.com/powderline/downhill/config"
	"github.com/powderline/downhill/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func testConfig() cfg.SkierConfig {
	return cfg.SkierConfig{
		StartSpeed:      10,
		JumpSpeed:       12,
		SideStep:        8,
		DiagonalDivisor: math.Sqrt2,

		FrameWidth:      48,
		FrameHeight:     48,
		CollisionWidth:  20,
		CollisionHeight: 36,

		DirectionFrames:  [cfg.DirectionCount]int{0, 1, 2, 3, 4},
		CrashFrame:       5,
		JumpFrames:       []int{6, 7, 8, 9},
		JumpFrameSeconds: 0.1,
	}
}

// newTestRun builds a headless world: space, clock, and a skier at (100,100)
// facing Down at speed 10.
func newTestRun(t *testing.T) (*ecs.ECS, *donburi.Entry) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, 640, 4096, 16, 16)
	factory.CreateClock(e)
	skier := factory.CreateSkierWithConfig(e, 100, 100, testConfig())
	return e, skier
}

// tick runs one update in scene order: object sync, then the skier.
func tick(e *ecs.ECS) {
	UpdateObjects(e)
	UpdateSkier(e)
}

func setClock(e *ecs.ECS, now float64) {
	entry, _ := components.Clock.First(e.World)
	components.Clock.Get(entry).Now = now
}

func skierState(entry *donburi.Entry) cfg.StateID {
	return components.State.Get(entry).CurrentState
}

func assertSpeedInvariant(t *testing.T, entry *donburi.Entry) {
	t.Helper()
	state := skierState(entry)
	speed := components.Skier.Get(entry).Speed
	stopped := state == cfg.Crashed || state == cfg.Dead
	if stopped != (speed == 0) {
		t.Errorf("speed invariant violated: state=%v speed=%v", state, speed)
	}
}

func TestCrashOnTree(t *testing.T) {
	e, skier := newTestRun(t)
	// In the skier's path after one tick of movement
	factory.CreateTestObstacle(e, 105, 115, 10, 10, "tree", false)

	tick(e)

	if got := skierState(skier); got != cfg.Crashed {
		t.Fatalf("state = %v, want Crashed", got)
	}
	if speed := components.Skier.Get(skier).Speed; speed != 0 {
		t.Errorf("speed = %v, want 0", speed)
	}
	if frame := components.Sprite.Get(skier).Frame; frame != testConfig().CrashFrame {
		t.Errorf("frame = %d, want crash frame %d", frame, testConfig().CrashFrame)
	}
	assertSpeedInvariant(t, skier)
}

func TestCrashedSkierHoldsStill(t *testing.T) {
	e, skier := newTestRun(t)
	factory.CreateTestObstacle(e, 105, 115, 10, 10, "tree", false)
	tick(e)

	obj := components.Object.Get(skier)
	x, y := obj.X, obj.Y
	tick(e)
	tick(e)

	if obj.X != x || obj.Y != y {
		t.Errorf("crashed skier moved from (%v,%v) to (%v,%v)", x, y, obj.X, obj.Y)
	}
}

func TestCrashRecovery(t *testing.T) {
	tests := []struct {
		name    string
		action  cfg.ActionID
		wantDir cfg.Direction
	}{
		{"turn left recovers facing left", cfg.ActionTurnLeft, cfg.DirLeft},
		{"turn right recovers facing right", cfg.ActionTurnRight, cfg.DirRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, skier := newTestRun(t)
			factory.CreateTestObstacle(e, 105, 115, 10, 10, "tree", false)
			tick(e)
			if skierState(skier) != cfg.Crashed {
				t.Fatal("setup: skier did not crash")
			}

			handled := HandleSkierAction(e, skier, tt.action)

			if !handled {
				t.Error("recovery turn reported not handled")
			}
			if got := skierState(skier); got != cfg.Skiing {
				t.Errorf("state = %v, want Skiing", got)
			}
			sk := components.Skier.Get(skier)
			if sk.Direction != tt.wantDir {
				t.Errorf("direction = %v, want %v", sk.Direction, tt.wantDir)
			}
			if sk.Speed != testConfig().StartSpeed {
				t.Errorf("speed = %v, want starting %v", sk.Speed, testConfig().StartSpeed)
			}
			assertSpeedInvariant(t, skier)
		})
	}
}

func TestNoOpActionsWhileCrashed(t *testing.T) {
	e, skier := newTestRun(t)
	factory.CreateTestObstacle(e, 105, 115, 10, 10, "tree", false)
	tick(e)

	obj := components.Object.Get(skier)
	x, y := obj.X, obj.Y

	if !HandleSkierAction(e, skier, cfg.ActionFaceUp) {
		t.Error("face-up should report handled even when it does nothing")
	}
	if !HandleSkierAction(e, skier, cfg.ActionFaceDown) {
		t.Error("face-down should report handled even when it does nothing")
	}

	if skierState(skier) != cfg.Crashed {
		t.Error("face-up/face-down must not recover a crashed skier")
	}
	if obj.X != x || obj.Y != y {
		t.Error("face-up/face-down must not move a crashed skier")
	}
}

func TestJumpSequence(t *testing.T) {
	e, skier := newTestRun(t)
	factory.CreateTestObstacle(e, 105, 112, 10, 8, "ramp", true)

	tick(e)

	c := testConfig()
	if got := skierState(skier); got != cfg.Jumping {
		t.Fatalf("state = %v, want Jumping", got)
	}
	sk := components.Skier.Get(skier)
	if sk.Speed != c.JumpSpeed {
		t.Errorf("jump speed = %v, want %v", sk.Speed, c.JumpSpeed)
	}
	if frame := components.Sprite.Get(skier).Frame; frame != c.JumpFrames[0] {
		t.Errorf("frame = %d, want first jump frame %d", frame, c.JumpFrames[0])
	}
	assertSpeedInvariant(t, skier)

	// The jump keeps descending the hill
	obj := components.Object.Get(skier)
	yBefore := obj.Y
	setClock(e, 0.05)
	tick(e)
	if obj.Y != yBefore+c.JumpSpeed {
		t.Errorf("airborne displacement = %v, want %v", obj.Y-yBefore, c.JumpSpeed)
	}

	// Walk the clock through the rest of the sequence; the final advance
	// lands the skier synchronously.
	for i := 1; i <= len(c.JumpFrames); i++ {
		setClock(e, float64(i)*0.15)
		tick(e)
	}

	if got := skierState(skier); got != cfg.Skiing {
		t.Fatalf("state after jump = %v, want Skiing", got)
	}
	if sk.Speed != c.StartSpeed {
		t.Errorf("speed after landing = %v, want %v", sk.Speed, c.StartSpeed)
	}
	if frame := components.Sprite.Get(skier).Frame; frame != c.DirectionFrames[cfg.DirDown] {
		t.Errorf("frame after landing = %d, want direction frame %d", frame, c.DirectionFrames[cfg.DirDown])
	}
	if components.Animation.Get(skier).Active != nil {
		t.Error("animation not cleared after landing")
	}
}

func TestRampAndTreeSameTickCrashes(t *testing.T) {
	tests := []struct {
		name      string
		rampFirst bool
	}{
		{"ramp placed before tree", true},
		{"tree placed before ramp", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, skier := newTestRun(t)
			if tt.rampFirst {
				factory.CreateTestObstacle(e, 102, 112, 8, 10, "ramp", true)
				factory.CreateTestObstacle(e, 112, 112, 8, 10, "tree", false)
			} else {
				factory.CreateTestObstacle(e, 102, 112, 8, 10, "tree", false)
				factory.CreateTestObstacle(e, 112, 112, 8, 10, "ramp", true)
			}

			tick(e)

			if got := skierState(skier); got != cfg.Crashed {
				t.Fatalf("state = %v, want Crashed (crash trigger wins the tick)", got)
			}
			if speed := components.Skier.Get(skier).Speed; speed != 0 {
				t.Errorf("speed = %v, want 0", speed)
			}
			if components.Animation.Get(skier).Active != nil {
				t.Error("jump animation must not survive a crash in the same pass")
			}
			assertSpeedInvariant(t, skier)
		})
	}
}

func TestMultipleTriggersCrashOnce(t *testing.T) {
	e, skier := newTestRun(t)
	factory.CreateTestObstacle(e, 102, 112, 8, 10, "tree", false)
	factory.CreateTestObstacle(e, 112, 112, 8, 10, "rock", false)

	tick(e)

	if got := skierState(skier); got != cfg.Crashed {
		t.Fatalf("state = %v, want Crashed", got)
	}

	crashes := 0
	for _, id := range GetOrCreateAudio(e).PendingSFX {
		if id == cfg.SoundCrash {
			crashes++
		}
	}
	if crashes != 1 {
		t.Errorf("crash transition fired %d times in one tick, want 1", crashes)
	}
}

func TestDiagonalMotionLaw(t *testing.T) {
	tests := []struct {
		name   string
		action cfg.ActionID
	}{
		{"left-down", cfg.ActionTurnLeft},
		{"right-down", cfg.ActionTurnRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, skier := newTestRun(t)
			HandleSkierAction(e, skier, tt.action)

			obj := components.Object.Get(skier)
			x, y := obj.X, obj.Y
			tick(e)

			dx, dy := obj.X-x, obj.Y-y
			speed := components.Skier.Get(skier).Speed
			if diff := math.Abs(dx*dx + dy*dy - speed*speed); diff > 1e-9 {
				t.Errorf("dx^2+dy^2 = %v, want speed^2 = %v", dx*dx+dy*dy, speed*speed)
			}
			if dy <= 0 {
				t.Errorf("diagonal motion must still descend, dy = %v", dy)
			}
		})
	}
}

func TestStraightDownLaw(t *testing.T) {
	e, skier := newTestRun(t)
	obj := components.Object.Get(skier)
	x, y := obj.X, obj.Y

	const n = 5
	for i := 0; i < n; i++ {
		tick(e)
	}

	c := testConfig()
	if obj.Y != y+n*c.StartSpeed {
		t.Errorf("y displacement over %d ticks = %v, want %v", n, obj.Y-y, n*c.StartSpeed)
	}
	if obj.X != x {
		t.Errorf("straight-down motion drifted laterally by %v", obj.X-x)
	}
}

// The hitbox bottom sits at three-quarter height, so obstacles overlapping
// only the skier's feet are skipped.
func TestRaisedBottomEdge(t *testing.T) {
	// After one tick the skier rect spans y 110..146 but its hitbox only
	// reaches 110..137.
	t.Run("below hitbox bottom", func(t *testing.T) {
		e, skier := newTestRun(t)
		factory.CreateTestObstacle(e, 105, 139, 10, 6, "tree", false)

		tick(e)

		if got := skierState(skier); got != cfg.Skiing {
			t.Fatalf("state = %v, want Skiing: feet-only overlap should not crash", got)
		}
	})

	t.Run("above hitbox bottom", func(t *testing.T) {
		e, skier := newTestRun(t)
		factory.CreateTestObstacle(e, 105, 130, 10, 6, "tree", false)

		tick(e)

		if got := skierState(skier); got != cfg.Crashed {
			t.Fatalf("state = %v, want Crashed", got)
		}
	})
}

func TestLateralPivot(t *testing.T) {
	e, skier := newTestRun(t)
	// Down -> LeftDown -> Left
	HandleSkierAction(e, skier, cfg.ActionTurnLeft)
	HandleSkierAction(e, skier, cfg.ActionTurnLeft)

	sk := components.Skier.Get(skier)
	if sk.Direction != cfg.DirLeft {
		t.Fatalf("direction = %v, want Left", sk.Direction)
	}

	obj := components.Object.Get(skier)
	x, y := obj.X, obj.Y

	// A fully lateral stance pivots in place
	tick(e)
	if obj.X != x || obj.Y != y {
		t.Errorf("lateral stance moved during update: (%v,%v) -> (%v,%v)", x, y, obj.X, obj.Y)
	}

	// Turning further left saturates direction and side-steps instead
	handled := HandleSkierAction(e, skier, cfg.ActionTurnLeft)
	if !handled {
		t.Error("saturating turn reported not handled")
	}
	if sk.Direction != cfg.DirLeft {
		t.Errorf("direction changed past Left: %v", sk.Direction)
	}
	if obj.X != x-testConfig().SideStep {
		t.Errorf("x = %v, want side-step to %v", obj.X, x-testConfig().SideStep)
	}
}

func TestFaceUp(t *testing.T) {
	e, skier := newTestRun(t)
	obj := components.Object.Get(skier)
	y := obj.Y

	// Facing down: recognized but no climb
	if !HandleSkierAction(e, skier, cfg.ActionFaceUp) {
		t.Error("face-up reported not handled")
	}
	if obj.Y != y {
		t.Errorf("face-up moved a non-lateral skier by %v", obj.Y-y)
	}

	// Fully sideways: climbs by the fixed step
	HandleSkierAction(e, skier, cfg.ActionTurnRight)
	HandleSkierAction(e, skier, cfg.ActionTurnRight)
	HandleSkierAction(e, skier, cfg.ActionFaceUp)
	if obj.Y != y-testConfig().SideStep {
		t.Errorf("y = %v, want climb to %v", obj.Y, y-testConfig().SideStep)
	}
}

func TestFaceDownResets(t *testing.T) {
	e, skier := newTestRun(t)
	HandleSkierAction(e, skier, cfg.ActionTurnRight)
	HandleSkierAction(e, skier, cfg.ActionTurnRight)

	if !HandleSkierAction(e, skier, cfg.ActionFaceDown) {
		t.Error("face-down reported not handled")
	}

	sk := components.Skier.Get(skier)
	if sk.Direction != cfg.DirDown {
		t.Errorf("direction = %v, want Down", sk.Direction)
	}
	if frame := components.Sprite.Get(skier).Frame; frame != testConfig().DirectionFrames[cfg.DirDown] {
		t.Errorf("frame = %d, want direction frame", frame)
	}
}

func TestJumpActionReserved(t *testing.T) {
	e, skier := newTestRun(t)

	if !HandleSkierAction(e, skier, cfg.ActionJump) {
		t.Error("jump is part of the recognized input surface")
	}
	if got := skierState(skier); got != cfg.Skiing {
		t.Errorf("reserved jump action changed state to %v", got)
	}
}

func TestUnrecognizedActionNotHandled(t *testing.T) {
	e, skier := newTestRun(t)

	if HandleSkierAction(e, skier, cfg.ActionPause) {
		t.Error("non-skier action reported handled")
	}
}

func TestTerminalDead(t *testing.T) {
	e, skier := newTestRun(t)
	KillSkier(e, skier)

	if got := skierState(skier); got != cfg.Dead {
		t.Fatalf("state = %v, want Dead", got)
	}
	assertSpeedInvariant(t, skier)

	actions := []cfg.ActionID{
		cfg.ActionTurnLeft, cfg.ActionTurnRight,
		cfg.ActionFaceUp, cfg.ActionFaceDown, cfg.ActionJump,
	}
	for _, a := range actions {
		if HandleSkierAction(e, skier, a) {
			t.Errorf("action %v handled while Dead", a)
		}
	}

	obj := components.Object.Get(skier)
	x, y := obj.X, obj.Y
	frame := components.Sprite.Get(skier).Frame
	tick(e)
	tick(e)

	if obj.X != x || obj.Y != y {
		t.Error("update moved a dead skier")
	}
	if components.Sprite.Get(skier).Frame != frame {
		t.Error("update changed a dead skier's image")
	}

	// A second kill is a safe no-op
	KillSkier(e, skier)
	if got := skierState(skier); got != cfg.Dead {
		t.Errorf("state = %v after repeated kill, want Dead", got)
	}
}

func TestKillFromAnyState(t *testing.T) {
	t.Run("while jumping", func(t *testing.T) {
		e, skier := newTestRun(t)
		factory.CreateTestObstacle(e, 105, 112, 10, 8, "ramp", true)
		tick(e)
		if skierState(skier) != cfg.Jumping {
			t.Fatal("setup: skier not jumping")
		}

		KillSkier(e, skier)
		if got := skierState(skier); got != cfg.Dead {
			t.Errorf("state = %v, want Dead", got)
		}
		if components.Animation.Get(skier).Active != nil {
			t.Error("active animation must be cleared on death")
		}
		assertSpeedInvariant(t, skier)
	})

	t.Run("while crashed", func(t *testing.T) {
		e, skier := newTestRun(t)
		factory.CreateTestObstacle(e, 105, 115, 10, 10, "tree", false)
		tick(e)

		KillSkier(e, skier)
		if got := skierState(skier); got != cfg.Dead {
			t.Errorf("state = %v, want Dead", got)
		}
		if HandleSkierAction(e, skier, cfg.ActionTurnLeft) {
			t.Error("dead skier recovered from crash")
		}
	})
}
