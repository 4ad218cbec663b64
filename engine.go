package cubeviz

import "time"

// Commit describes a turn that was just applied to the cube.
type Commit struct {
	Move Move
	Undo bool // the turn reverted the previous move
}

// Engine is the application state carried through the frame loop: the
// authoritative cube and at most one turn in flight.
//
// Engine is not safe for concurrent use. A frame loop that renders from
// another goroutine must guard Engine and its Frame with one lock per tick.
type Engine struct {
	cfg     *config
	tracker *Tracker
	anim    *Animator
	undoing bool
}

// NewEngine creates an engine with a solved cube and no turn in flight.
func NewEngine(opts ...Option) *Engine {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	t := NewTracker()
	t.SetHistory(cfg.history)
	return &Engine{cfg: cfg, tracker: t}
}

// Speed returns the animation rate in degrees per second.
func (e *Engine) Speed() float64 {
	return e.cfg.speed
}

// Busy reports whether a turn is in flight.
func (e *Engine) Busy() bool {
	return e.anim != nil
}

// Command starts animating m. It is ignored and returns false while another
// turn is in flight.
func (e *Engine) Command(m Move) bool {
	if e.anim != nil {
		return false
	}
	e.anim = NewAnimator(m, e.cfg.speed)
	e.undoing = false
	return true
}

// Undo animates the inverse of the last committed move. It returns false
// while a turn is in flight or when there is nothing to undo.
func (e *Engine) Undo() bool {
	if e.anim != nil {
		return false
	}
	last, ok := e.tracker.LastMove()
	if !ok {
		return false
	}
	e.anim = NewAnimator(last.Inverse(), e.cfg.speed)
	e.undoing = true
	return true
}

// Reset restores the solved cube. It returns false while a turn is in flight.
func (e *Engine) Reset() bool {
	if e.anim != nil {
		return false
	}
	e.tracker.Reset()
	return true
}

// Tick advances the turn in flight by dt. When the turn reaches 90 degrees
// it is committed to the cube exactly once and the animator is dropped.
func (e *Engine) Tick(dt time.Duration) (Commit, bool) {
	if e.anim == nil || !e.anim.Advance(dt) {
		return Commit{}, false
	}

	c := Commit{Move: e.anim.Move().WithTime(e.cfg.now()), Undo: e.undoing}
	if c.Undo {
		e.tracker.Undo()
	} else {
		e.tracker.ApplyMove(c.Move)
	}
	e.anim = nil
	e.undoing = false

	if e.cfg.onCommit != nil {
		e.cfg.onCommit(c)
	}
	return c, true
}

// Active returns a copy of the animator in flight.
func (e *Engine) Active() (Animator, bool) {
	if e.anim == nil {
		return Animator{}, false
	}
	return *e.anim, true
}

// Cube returns the authoritative cube. It never reflects a partial turn.
func (e *Engine) Cube() *Cube {
	return e.tracker.Cube()
}

// Tracker returns the underlying tracker.
func (e *Engine) Tracker() *Tracker {
	return e.tracker
}
