package service

import "time"

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// nextStamp returns the current instant in UTC at microsecond precision,
// moved forward if needed so it is strictly after previous.
func nextStamp(now, previous time.Time) time.Time {
	stamp := now.UTC().Truncate(time.Microsecond)
	if !stamp.After(previous) {
		stamp = previous.UTC().Truncate(time.Microsecond).Add(time.Microsecond)
	}
	return stamp
}
