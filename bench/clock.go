package bench

import "time"

// Clock abstracts wall-clock access so trial timing is testable.
type Clock interface {
	Now() time.Time
}

// DefaultClock reads the system clock. time.Now carries a monotonic
// reading, so measured intervals are immune to wall-clock adjustment.
type DefaultClock struct{}

func (c *DefaultClock) Now() time.Time {
	return time.Now()
}
