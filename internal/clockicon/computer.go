package clockicon

import (
	"sync"
	"time"
)

// LevelsAt maps a wall-clock time onto hand levels for cfg. Changed is left
// false; see Computer for change tracking.
func LevelsAt(cfg Config, t time.Time) Levels {
	h := t.Hour() % 12
	m := t.Minute()
	s := t.Second()

	// Re-base onto the time the artwork shows at level 0
	convertedHour := (h + (12 - cfg.defaultHour)) % 12
	convertedMinute := (m + (60 - cfg.defaultMinute)) % 60
	convertedSecond := (s + (60 - cfg.defaultSecond)) % 60

	var l Levels
	if cfg.hourLayer != InvalidIndex {
		// Unconverted minute keeps the hour hand sweeping within the hour
		l.Hour = convertedHour*60 + m
		l.HasHour = true
	}
	if cfg.minuteLayer != InvalidIndex {
		l.Minute = h*60 + convertedMinute
		l.HasMinute = true
	}
	if cfg.secondLayer != InvalidIndex {
		l.Second = convertedSecond * LevelsPerSecond
		l.HasSecond = true
	}
	return l
}

// Computer computes levels for one config and remembers the previous result
// so it can report changes. It is safe for concurrent use.
type Computer struct {
	cfg Config

	mu     sync.Mutex
	prev   Levels
	primed bool
}

// NewComputer creates a computer for cfg
func NewComputer(cfg Config) *Computer {
	return &Computer{cfg: cfg}
}

// Config returns the computer's config
func (c *Computer) Config() Config {
	return c.cfg
}

// Compute returns the levels for t. The first call always reports Changed.
func (c *Computer) Compute(t time.Time) Levels {
	l := LevelsAt(c.cfg, t)

	c.mu.Lock()
	defer c.mu.Unlock()

	l.Changed = !c.primed || !sameLevels(l, c.prev)
	c.prev = l
	c.primed = true
	return l
}

// Last returns the most recent levels, or false if Compute was never called
func (c *Computer) Last() (Levels, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.prev, c.primed
}
