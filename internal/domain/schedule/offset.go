package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"remotework/internal/domain"
)

// MaxOffset bounds what ParseOffset accepts.
const MaxOffset = 18 * time.Hour

// Offset is a fixed signed displacement from UTC used for display.
type Offset struct {
	seconds int
}

// UTC is the zero offset.
var UTC = Offset{}

// OffsetHM builds +hours:minutes. The sign of hours applies to minutes too,
// so OffsetHM(-3, 30) is -03:30.
func OffsetHM(hours, minutes int) Offset {
	total := abs(hours)*secondsPerHour + minutes*secondsPerMinute
	if hours < 0 {
		total = -total
	}
	return Offset{seconds: total}
}

// ParseOffset accepts "Z", "UTC", "+HH", "+HH:MM", "+HHMM" and the same with "-".
func ParseOffset(s string) (Offset, error) {
	s = strings.TrimSpace(s)
	switch strings.ToUpper(s) {
	case "", "Z", "UTC":
		return UTC, nil
	}
	if strings.HasPrefix(strings.ToUpper(s), "UTC") {
		s = s[3:]
	}

	sign := 1
	switch s[0] {
	case '+':
	case '-':
		sign = -1
	default:
		return Offset{}, domain.InvalidTimeValue("offset %q must start with + or -", s)
	}

	body := strings.ReplaceAll(s[1:], ":", "")
	var hh, mm string
	switch len(body) {
	case 2:
		hh, mm = body, "00"
	case 4:
		hh, mm = body[:2], body[2:]
	default:
		return Offset{}, domain.InvalidTimeValue("offset %q is not in ±HH:MM format", s)
	}

	h, errH := strconv.Atoi(hh)
	m, errM := strconv.Atoi(mm)
	if errH != nil || errM != nil || h < 0 || m < 0 || m > 59 {
		return Offset{}, domain.InvalidTimeValue("offset %q is not in ±HH:MM format", s)
	}

	off := Offset{seconds: sign * (h*secondsPerHour + m*secondsPerMinute)}
	if abs(off.seconds) > int(MaxOffset/time.Second) {
		return Offset{}, domain.InvalidTimeValue("offset %q exceeds ±18:00", s)
	}
	return off, nil
}

// Location returns a fixed zone named after the offset.
func (o Offset) Location() *time.Location {
	return time.FixedZone(o.String(), o.seconds)
}

func (o Offset) String() string {
	sign := '+'
	if o.seconds < 0 {
		sign = '-'
	}
	a := abs(o.seconds)
	return fmt.Sprintf("%c%02d:%02d", sign, a/secondsPerHour, a%secondsPerHour/secondsPerMinute)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
