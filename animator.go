package cubeviz

import (
	"math"
	"time"
)

// QuarterTurn is the angle of one turn in degrees.
const QuarterTurn = 90.0

// DefaultSpeed is the default animation rate in degrees per second.
const DefaultSpeed = 360.0

// angleTolerance absorbs float rounding in rate*elapsed so a turn whose
// exact angle reaches 90 commits on that tick.
const angleTolerance = 1e-9

// Animator tracks the progress of a single in-flight turn. It lives for one
// turn: created when the command is accepted, dropped when it commits.
type Animator struct {
	move    Move
	axis    Axis
	layer   int
	dir     Direction
	rate    float64       // degrees per second
	elapsed time.Duration // total animated time
	angle   float64       // signed angle in degrees, derived from elapsed
}

// NewAnimator starts animating m at rate degrees per second.
func NewAnimator(m Move, rate float64) *Animator {
	if rate <= 0 {
		rate = DefaultSpeed
	}
	a, layer := m.Face.Layer()
	return &Animator{
		move:  m,
		axis:  a,
		layer: layer,
		dir:   m.Direction(),
		rate:  rate,
	}
}

// Advance adds dt to the animated time and reports whether the turn has
// reached a quarter turn. The angle is recomputed from the total time, so
// rounding does not build up across ticks.
func (a *Animator) Advance(dt time.Duration) bool {
	if dt > 0 {
		a.elapsed += dt
		a.angle = a.rate * a.elapsed.Seconds()
		if a.dir == CounterClockwise {
			a.angle = -a.angle
		}
	}
	return a.Done()
}

// Done reports whether |angle| has reached 90 degrees.
func (a *Animator) Done() bool {
	return math.Abs(a.angle) >= QuarterTurn-angleTolerance
}

// Elapsed returns the total animated time.
func (a *Animator) Elapsed() time.Duration {
	return a.elapsed
}

// Angle returns the raw signed angle. It may overshoot 90 on the last tick.
func (a *Animator) Angle() float64 {
	return a.angle
}

// RenderAngle returns the signed angle clamped to a quarter turn.
func (a *Animator) RenderAngle() float64 {
	return math.Max(-QuarterTurn, math.Min(QuarterTurn, a.angle))
}

// Progress returns the completed fraction of the turn in [0,1].
func (a *Animator) Progress() float64 {
	return math.Abs(a.RenderAngle()) / QuarterTurn
}

// Move returns the move being animated.
func (a *Animator) Move() Move {
	return a.move
}

// Axis returns the rotation axis.
func (a *Animator) Axis() Axis {
	return a.axis
}

// Layer returns the layer coordinate along the axis.
func (a *Animator) Layer() int {
	return a.layer
}

// Direction returns the rotational sense.
func (a *Animator) Direction() Direction {
	return a.dir
}

// Contains reports whether the cubie at v moves with this turn.
func (a *Animator) Contains(v Vec) bool {
	return InLayer(v, a.axis, a.layer)
}
