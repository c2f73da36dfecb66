package calendar

import "time"

// Clock abstracts time.Now() to allow deterministic testing.
// It is used to decide which grid cell is "today".
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Today returns the local calendar date according to c.
func Today(c Clock) Date {
	return FromTime(c.Now())
}
