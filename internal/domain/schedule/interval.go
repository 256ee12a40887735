package schedule

import "remotework/internal/domain"

// TimeInterval is a recurring daily UTC window [Start, End). When Start is
// after End the window crosses midnight.
type TimeInterval struct {
	start TimeOfDay
	end   TimeOfDay
}

// NewTimeInterval rejects start == end: a zero-length window has no agreed
// meaning, so it is refused rather than read as always-on.
func NewTimeInterval(start, end TimeOfDay) (TimeInterval, error) {
	if start == end {
		return TimeInterval{}, domain.InvalidTimeValue("interval start and end are both %s", start)
	}
	return TimeInterval{start: start, end: end}, nil
}

// ParseTimeInterval builds an interval from two "HH:MM:SS" strings.
func ParseTimeInterval(start, end string) (TimeInterval, error) {
	s, err := ParseTimeOfDay(start)
	if err != nil {
		return TimeInterval{}, err
	}
	e, err := ParseTimeOfDay(end)
	if err != nil {
		return TimeInterval{}, err
	}
	return NewTimeInterval(s, e)
}

func MustTimeInterval(start, end TimeOfDay) TimeInterval {
	iv, err := NewTimeInterval(start, end)
	if err != nil {
		panic(err)
	}
	return iv
}

func (iv TimeInterval) Start() TimeOfDay { return iv.start }
func (iv TimeInterval) End() TimeOfDay   { return iv.end }

// Wraps reports whether the window crosses midnight.
func (iv TimeInterval) Wraps() bool {
	return !iv.start.Before(iv.end)
}

// Contains reports whether t falls inside the window. Start is inclusive,
// end exclusive.
func (iv TimeInterval) Contains(t TimeOfDay) bool {
	if iv.start.Before(iv.end) {
		return !t.Before(iv.start) && t.Before(iv.end)
	}
	return !t.Before(iv.start) || t.Before(iv.end)
}

func (iv TimeInterval) String() string {
	return iv.start.String() + "-" + iv.end.String()
}
