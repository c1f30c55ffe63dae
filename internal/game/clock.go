package game

import "time"

// Clock abstracts time so the shoot cooldown can be tested deterministically.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is the wall-clock implementation used outside tests.
var SystemClock Clock = systemClock{}
