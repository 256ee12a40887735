package schedule

import "time"

// referenceDate anchors time-of-day values to an instant for conversion. Any
// date works because only the clock reading survives.
var referenceDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// ConvertToOffset returns the clock reading in the zone off at the moment
// the UTC clock reads t. The calendar day is dropped, so 23:00 at +02:00
// yields 01:00 with no indication that the day rolled over.
func ConvertToOffset(t TimeOfDay, off Offset) TimeOfDay {
	local := t.On(referenceDate).In(off.Location())
	return TimeOfDay{sec: local.Hour()*secondsPerHour + local.Minute()*secondsPerMinute + local.Second()}
}

// Block is a display span [StartSec, EndSec) in seconds of day. EndSec may be
// SecondsPerDay to mean "until midnight".
type Block struct {
	StartSec int
	EndSec   int
}

func (b Block) String() string {
	return FormatSeconds(b.StartSec) + "-" + FormatSeconds(b.EndSec)
}

// DisplayBlocks re-expresses iv in the zone off and splits it at midnight
// when the shifted window wraps.
func DisplayBlocks(iv TimeInterval, off Offset) []Block {
	start := ConvertToOffset(iv.Start(), off).Seconds()
	end := ConvertToOffset(iv.End(), off).Seconds()

	if start < end {
		return []Block{{StartSec: start, EndSec: end}}
	}

	blocks := []Block{{StartSec: start, EndSec: SecondsPerDay}}
	if end > 0 {
		blocks = append(blocks, Block{StartSec: 0, EndSec: end})
	}
	return blocks
}

// FormatSeconds renders seconds of day as HH:MM:SS, with 86400 as 24:00:00.
func FormatSeconds(sec int) string {
	if sec == SecondsPerDay {
		return "24:00:00"
	}
	return TimeOfDay{sec: sec}.String()
}
