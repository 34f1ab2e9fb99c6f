package clarion

import "time"

// A Clarion time counts hundredths of a second from midnight.
const (
	centisPerSecond = 100
	centisPerMinute = 60 * centisPerSecond
	centisPerHour   = 60 * centisPerMinute

	// CentisPerDay is the number of centiseconds in 24 hours.
	CentisPerDay = 24 * centisPerHour

	nanosPerCenti = int(10 * time.Millisecond)
)

// ClarionTime is a moment in time in the Clarion time format, the number
// of centiseconds between the time and midnight.
type ClarionTime struct {
	time int32
}

// NewTime returns the ClarionTime for a centisecond offset from midnight.
// The value is stored exactly as given: offsets outside [0, CentisPerDay)
// are kept and only normalized when converting to a clock reading.
func NewTime(time int32) ClarionTime {
	return ClarionTime{time: time}
}

// Time returns the integral representation of this time, the number of
// centiseconds between it and midnight.
func (t ClarionTime) Time() int32 {
	return t.time
}

// ToTime converts the centisecond offset to a clock reading on the zero
// date (the 1st of January, year 1, UTC), so midnight reports IsZero.
// Offsets are normalized modulo 24 hours, negative offsets counting
// backward from midnight.
func (t ClarionTime) ToTime() time.Time {
	cs := int(t.time) % CentisPerDay
	if cs < 0 {
		cs += CentisPerDay
	}
	hour := cs / centisPerHour
	minute := cs % centisPerHour / centisPerMinute
	second := cs % centisPerMinute / centisPerSecond
	nanos := cs % centisPerSecond * nanosPerCenti
	return time.Date(1, time.January, 1, hour, minute, second, nanos, time.UTC)
}

// TimeOf returns the ClarionTime for the clock reading of t, as displayed
// in t's own location. Sub-centisecond precision is truncated. A full
// day's range fits an int32, so TimeOf cannot fail.
func TimeOf(t time.Time) ClarionTime {
	cs := t.Hour()*centisPerHour +
		t.Minute()*centisPerMinute +
		t.Second()*centisPerSecond +
		t.Nanosecond()/nanosPerCenti
	return ClarionTime{time: int32(cs)}
}
