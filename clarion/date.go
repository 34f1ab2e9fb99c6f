package clarion

import (
	"math"
	"time"
)

// Epoch is the Clarion date epoch, the 28th of December, 1800.
var Epoch = time.Date(1800, time.December, 28, 0, 0, 0, 0, time.UTC)

// Window of calendar dates the conversions can produce. Day offsets that
// land outside of it do not convert.
var (
	// MinDate is the earliest calendar date a ClarionDate converts to.
	MinDate = time.Date(-9999, time.January, 1, 0, 0, 0, 0, time.UTC)

	// MaxDate is the latest calendar date a ClarionDate converts to.
	MaxDate = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)
)

const secondsPerDay = 24 * 60 * 60

var epochUnix = Epoch.Unix()

// ClarionDate is a calendar date in the Clarion date format, the number of
// days between the date and the 28th of December, 1800.
type ClarionDate struct {
	date int32
}

// NewDate returns the ClarionDate for a day offset from the epoch. Any
// int32 is accepted; offsets with no calendar counterpart only fail at
// conversion.
func NewDate(date int32) ClarionDate {
	return ClarionDate{date: date}
}

// Date returns the integral representation of this date, the number of
// days between it and the 28th of December, 1800.
func (d ClarionDate) Date() int32 {
	return d.date
}

// ToTime converts the day offset to a calendar date at midnight UTC.
// Returns ErrOutOfRange if the date lands outside MinDate..MaxDate.
func (d ClarionDate) ToTime() (time.Time, error) {
	t := Epoch.AddDate(0, 0, int(d.date))
	if t.Before(MinDate) || t.After(MaxDate) {
		return time.Time{}, ErrOutOfRange
	}
	return t, nil
}

// DateOf returns the ClarionDate for the calendar day of t, read in t's
// own location; the clock reading is discarded. Returns
// ErrConversionOverflowed if the day count does not fit an int32.
func DateOf(t time.Time) (ClarionDate, error) {
	year, month, day := t.Date()
	u := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Unix()
	days := (u - epochUnix) / secondsPerDay
	if days > math.MaxInt32 || days < math.MinInt32 {
		return ClarionDate{}, ErrConversionOverflowed
	}
	return ClarionDate{date: int32(days)}, nil
}
