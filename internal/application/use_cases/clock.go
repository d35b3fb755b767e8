package use_cases

import "time"

// Clock stamps rate quotes and journal entries.
type Clock interface {
	NowUTC() time.Time
}

type systemClock struct{}

func NewSystemClock() Clock {
	return systemClock{}
}

// NowUTC drops sub-microsecond precision so a journal entry reads back from
// a timestamptz column unchanged.
func (systemClock) NowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
