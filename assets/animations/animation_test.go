package animations

import "testing"

func TestNewPreconditions(t *testing.T) {
	t.Run("empty frames panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Fatal("expected panic for empty frame sequence")
			}
		}()
		New(nil, 0.1, true, nil)
	})

	t.Run("non-looping without callback panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Fatal("expected panic for non-looping animation without callback")
			}
		}()
		New([]int{1, 2}, 0.1, false, nil)
	})

	t.Run("looping without callback is fine", func(t *testing.T) {
		a := New([]int{1, 2}, 0.1, true, nil)
		if a.Frame() != 1 {
			t.Errorf("Frame() = %d, want 1", a.Frame())
		}
	})
}

func TestAdvanceTiming(t *testing.T) {
	a := New([]int{4, 5, 6}, 0.1, true, nil)
	a.Start(1.0)

	// Within the frame duration: no step
	a.Advance(1.05)
	if a.Frame() != 4 {
		t.Errorf("Frame() = %d after 0.05s, want 4", a.Frame())
	}

	// Past the frame duration: one step
	a.Advance(1.15)
	if a.Frame() != 5 {
		t.Errorf("Frame() = %d after 0.15s, want 5", a.Frame())
	}

	// A long gap still advances one step per call, not many
	a.Advance(5.0)
	if a.Frame() != 6 {
		t.Errorf("Frame() = %d after gap, want 6", a.Frame())
	}
}

func TestLoopingWraps(t *testing.T) {
	a := New([]int{7, 8}, 0.1, true, nil)
	a.Start(0)

	a.Advance(0.11)
	a.Advance(0.22)
	if a.Frame() != 7 {
		t.Errorf("Frame() = %d after wrap, want 7", a.Frame())
	}
	if a.Finished() {
		t.Error("looping animation must never report finished")
	}
}

func TestCompletionFiresExactlyOnce(t *testing.T) {
	completions := 0
	a := New([]int{1, 2}, 0.1, false, func() { completions++ })
	a.Start(0)

	a.Advance(0.11) // frame 2
	a.Advance(0.22) // past the end: completes
	a.Advance(0.33) // already finished: no-op
	a.Advance(0.44)

	if completions != 1 {
		t.Errorf("completion fired %d times, want 1", completions)
	}
	if !a.Finished() {
		t.Error("Finished() = false after traversal")
	}
	if a.Frame() != 2 {
		t.Errorf("Frame() = %d after completion, want last frame 2", a.Frame())
	}
}

func TestRestartAfterCompletion(t *testing.T) {
	completions := 0
	a := New([]int{1, 2}, 0.1, false, func() { completions++ })
	a.Start(0)
	a.Advance(0.11)
	a.Advance(0.22)

	a.Start(1.0)
	if a.Finished() {
		t.Error("Start must rewind the finished flag")
	}
	a.Advance(1.11)
	a.Advance(1.22)
	if completions != 2 {
		t.Errorf("completion fired %d times over two runs, want 2", completions)
	}
}
