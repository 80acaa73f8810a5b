package shop

import "time"

// idSource derives ids from the clock. Values are strictly increasing, so two
// calls within the same clock tick still yield distinct ids.
type idSource struct {
	now  func() time.Time
	last int64
}

func newIDSource(now func() time.Time) *idSource {
	if now == nil {
		now = time.Now
	}
	return &idSource{now: now}
}

func (s *idSource) next() (int64, time.Time) {
	t := s.now()
	n := t.UnixNano()
	if n <= s.last {
		n = s.last + 1
	}
	s.last = n
	return n, t
}
