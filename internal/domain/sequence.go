package domain

import "time"

// Sequence issues millisecond-timestamp ids that are strictly increasing
// even when two values are requested inside the same millisecond. Offer
// ids and message timestamps both come from one.
type Sequence struct {
	last int64
	now  func() time.Time
}

// NewSequence returns a sequence seeded so that the next value is greater
// than last (pass the max persisted id after a load, or 0).
func NewSequence(last int64) *Sequence {
	return &Sequence{last: last, now: time.Now}
}

// SetClock overrides the wall clock. Intended for tests.
func (s *Sequence) SetClock(now func() time.Time) {
	s.now = now
}

// Next returns the current time in milliseconds, bumped past the previous
// value when the clock has not advanced.
func (s *Sequence) Next() int64 {
	v := s.now().UnixMilli()
	if v <= s.last {
		v = s.last + 1
	}
	s.last = v
	return v
}
