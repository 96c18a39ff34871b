package usecase

import "time"

// Clock abstracts wall-clock time so greetings and sweep windows are testable.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }
