// Package clock provides the time source for the tick driver.
//
// Production code uses the real clock; tests drive tickers deterministically
// with clockwork's fake clock.
package clock

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Clock provides time-related functions that can be mocked for testing
type Clock = clockwork.Clock

// New returns the real system clock
func New() Clock {
	return clockwork.NewRealClock()
}

// Zoned reports the time of an underlying clock in a fixed location, so clock
// hands follow the configured wall time rather than the host zone
type Zoned struct {
	Clock
	loc *time.Location
}

// InZone wraps c so Now returns times in loc. A nil loc means time.Local.
func InZone(c Clock, loc *time.Location) *Zoned {
	if loc == nil {
		loc = time.Local
	}
	return &Zoned{Clock: c, loc: loc}
}

// Now returns the current time in the clock's location
func (z *Zoned) Now() time.Time {
	return z.Clock.Now().In(z.loc)
}

// Location returns the clock's location
func (z *Zoned) Location() *time.Location {
	return z.loc
}
