package clock

import "time"

// Clock abstracts access to the current time so that timestamp-derived
// dispatch metrics can be tested deterministically.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// Real returns a Clock backed by time.Now in UTC.
func Real() Clock {
	return realClock{}
}

// Fixed is a Clock frozen at a single instant. Advance moves it forward.
type Fixed struct {
	Current time.Time
}

// NewFixed creates a frozen clock at the given instant.
func NewFixed(t time.Time) *Fixed {
	return &Fixed{Current: t}
}

func (f *Fixed) Now() time.Time {
	return f.Current
}

// Advance moves the frozen clock forward by d.
func (f *Fixed) Advance(d time.Duration) {
	f.Current = f.Current.Add(d)
}
