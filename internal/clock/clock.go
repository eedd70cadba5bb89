package clock

import "time"

// Clock is the wall-clock source used for session timing. Injecting it
// lets tests drive elapsed time by hand instead of sleeping.
type Clock interface {
	Now() time.Time
}

// Real reads the system clock.
type Real struct{}

func (Real) Now() time.Time {
	return time.Now()
}
