package logging

// IntervalSampler decides which items of a batch get a progress line: the
// first item and every interval-th item after it.
type IntervalSampler struct {
	interval int
}

// NewIntervalSampler constructs a sampler; non-positive intervals default to 50.
func NewIntervalSampler(interval int) *IntervalSampler {
	if interval <= 0 {
		interval = 50
	}
	return &IntervalSampler{interval: interval}
}

// ShouldLog reports whether the item at the 0-based index should be logged.
// A nil sampler logs every item.
func (s *IntervalSampler) ShouldLog(index int) bool {
	if s == nil {
		return true
	}
	return index >= 0 && index%s.interval == 0
}

// Interval returns the configured interval.
func (s *IntervalSampler) Interval() int {
	if s == nil {
		return 1
	}
	return s.interval
}
