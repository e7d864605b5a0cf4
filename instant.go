package clonology

import "time"

// Instant represents an absolute point in time
type Instant struct {
	Properties
	at time.Time
}

// NewInstant creates an instant
func NewInstant(at time.Time) *Instant {
	return &Instant{at: at}
}

// Now creates an instant for the current time
func Now() *Instant {
	return NewInstant(time.Now())
}

// Time returns instant time
func (i *Instant) Time() time.Time {
	return i.at
}

// SetTime sets instant time
func (i *Instant) SetTime(at time.Time) {
	i.at = at
}

// UnixMilli returns milliseconds elapsed since epoch
func (i *Instant) UnixMilli() int64 {
	return i.at.UnixMilli()
}
