package cubeviz

import "time"

// Option configures an Engine.
type Option func(*config)

type config struct {
	speed    float64
	history  bool
	onCommit func(Commit)
	now      func() time.Time
}

func defaultConfig() *config {
	return &config{
		speed:   DefaultSpeed,
		history: true,
		now:     time.Now,
	}
}

// WithSpeed sets the animation rate in degrees per second.
// Non-positive values keep the default of 360.
func WithSpeed(degreesPerSecond float64) Option {
	return func(c *config) {
		if degreesPerSecond > 0 {
			c.speed = degreesPerSecond
		}
	}
}

// WithHistory enables or disables move history tracking.
// When enabled (default), committed moves are kept and can be undone.
func WithHistory(enabled bool) Option {
	return func(c *config) {
		c.history = enabled
	}
}

// WithCommitCallback sets a function called after every committed turn.
func WithCommitCallback(cb func(Commit)) Option {
	return func(c *config) {
		c.onCommit = cb
	}
}

// WithClock overrides the clock used to timestamp committed moves.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}
