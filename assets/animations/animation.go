package animations

// Animation is an ordered sequence of sprite sheet frame indices advanced on
// a fixed per-frame duration measured against the game clock. Looping
// sequences wrap; non-looping sequences fire OnComplete exactly once when the
// final frame has been shown for its full duration.
type Animation struct {
	Frames       []int
	FrameSeconds float64
	Looping      bool
	OnComplete   func()

	cursor      int
	lastFrameAt float64
	finished    bool
}

// New builds an animation over the given frame sequence. A non-looping
// sequence without a completion callback is a programming error.
func New(frames []int, frameSeconds float64, looping bool, onComplete func()) *Animation {
	if len(frames) == 0 {
		panic("animations: empty frame sequence")
	}
	if !looping && onComplete == nil {
		panic("animations: non-looping animation needs a completion callback")
	}
	return &Animation{
		Frames:       frames,
		FrameSeconds: frameSeconds,
		Looping:      looping,
		OnComplete:   onComplete,
	}
}

// Start rewinds the cursor and stamps the first frame at now.
func (a *Animation) Start(now float64) {
	a.cursor = 0
	a.lastFrameAt = now
	a.finished = false
}

// Advance steps the frame cursor once the per-frame duration has elapsed.
// Completion runs synchronously inside this call.
func (a *Animation) Advance(now float64) {
	if a.finished {
		return
	}
	if now-a.lastFrameAt <= a.FrameSeconds {
		return
	}
	a.lastFrameAt = now
	a.cursor++
	if a.cursor < len(a.Frames) {
		return
	}
	if a.Looping {
		a.cursor = 0
		return
	}
	a.cursor = len(a.Frames) - 1
	a.finished = true
	a.OnComplete()
}

// Frame returns the sheet frame index under the cursor.
func (a *Animation) Frame() int {
	return a.Frames[a.cursor]
}

// Finished reports whether a non-looping sequence has been fully traversed.
func (a *Animation) Finished() bool {
	return a.finished
}
