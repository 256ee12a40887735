// Package schedule models recurring daily work windows as clock readings
// without a calendar date.
package schedule

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"remotework/internal/domain"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	SecondsPerDay    = 24 * secondsPerHour
)

// TimeOfDay is a clock reading (hour, minute, second) stored as seconds since midnight.
type TimeOfDay struct {
	sec int
}

func NewTimeOfDay(hour, minute, second int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 {
		return TimeOfDay{}, domain.InvalidTimeValue("hour %d out of range 0-23", hour)
	}
	if minute < 0 || minute > 59 {
		return TimeOfDay{}, domain.InvalidTimeValue("minute %d out of range 0-59", minute)
	}
	if second < 0 || second > 59 {
		return TimeOfDay{}, domain.InvalidTimeValue("second %d out of range 0-59", second)
	}
	return TimeOfDay{sec: hour*secondsPerHour + minute*secondsPerMinute + second}, nil
}

// MustTimeOfDay is NewTimeOfDay for literals known to be valid.
func MustTimeOfDay(hour, minute, second int) TimeOfDay {
	t, err := NewTimeOfDay(hour, minute, second)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseTimeOfDay parses "HH:MM:SS". Each component must be exactly two digits.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 3 {
		return TimeOfDay{}, domain.InvalidTimeValue("time %q is not in HH:MM:SS format", s)
	}

	var fields [3]int
	for i, p := range parts {
		if len(p) != 2 || !isDigit(p[0]) || !isDigit(p[1]) {
			return TimeOfDay{}, domain.InvalidTimeValue("time %q is not in HH:MM:SS format", s)
		}
		fields[i] = int(p[0]-'0')*10 + int(p[1]-'0')
	}

	t, err := NewTimeOfDay(fields[0], fields[1], fields[2])
	var de *domain.DomainError
	if errors.As(err, &de) {
		return TimeOfDay{}, domain.InvalidTimeValue("time %q: %s", s, de.Message)
	}
	return t, err
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// FromTime returns the UTC clock reading of ts.
func FromTime(ts time.Time) TimeOfDay {
	u := ts.UTC()
	return TimeOfDay{sec: u.Hour()*secondsPerHour + u.Minute()*secondsPerMinute + u.Second()}
}

func (t TimeOfDay) Hour() int   { return t.sec / secondsPerHour }
func (t TimeOfDay) Minute() int { return t.sec % secondsPerHour / secondsPerMinute }
func (t TimeOfDay) Second() int { return t.sec % secondsPerMinute }

// Seconds returns the number of seconds since midnight.
func (t TimeOfDay) Seconds() int { return t.sec }

func (t TimeOfDay) Before(o TimeOfDay) bool { return t.sec < o.sec }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}

// On places the clock reading on the calendar date of day, in day's location.
func (t TimeOfDay) On(day time.Time) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), 0, day.Location())
}
