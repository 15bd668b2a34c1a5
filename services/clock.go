package services

import "time"

type Clock interface {
	Now() time.Time
}

// SystemClock reads wall time in a fixed location (the configured business timezone).
type SystemClock struct {
	Location *time.Location
}

func (c SystemClock) Now() time.Time {
	if c.Location == nil {
		return time.Now().UTC()
	}
	return time.Now().In(c.Location)
}
