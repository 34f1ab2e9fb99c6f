package clarion

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func clock(h, m, s, cs int) time.Time {
	return time.Date(1, time.January, 1, h, m, s, cs*nanosPerCenti, time.UTC)
}

func TestTimeToTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cs   int32
		want time.Time
	}{
		{0, clock(0, 0, 0, 0)},
		{1, clock(0, 0, 0, 1)},
		{-1, clock(23, 59, 59, 99)},
		{5964000, clock(16, 34, 0, 0)},
		{5771421, clock(16, 1, 54, 21)},
		{8639999, clock(23, 59, 59, 99)},
		{math.MaxInt32, clock(13, 13, 56, 47)},
		{math.MinInt32, clock(10, 46, 3, 52)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NewTime(tt.cs).ToTime(), "centiseconds %d", tt.cs)
	}
}

func TestTimeToTimeMidnightIsZero(t *testing.T) {
	t.Parallel()

	assert.True(t, NewTime(0).ToTime().IsZero())
	assert.True(t, NewTime(CentisPerDay).ToTime().IsZero())
}

func TestTimeOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   time.Time
		want int32
	}{
		{clock(0, 0, 0, 0), 0},
		{clock(0, 0, 0, 1), 1},
		{clock(16, 34, 0, 0), 5964000},
		{clock(16, 1, 54, 21), 5771421},
		{clock(23, 59, 59, 99), 8639999},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TimeOf(tt.in).Time(), "clock %v", tt.in)
	}
}

func TestTimeOfTruncatesSubCentisecond(t *testing.T) {
	t.Parallel()

	in := time.Date(1, time.January, 1, 16, 34, 0, int(9*time.Millisecond), time.UTC)
	assert.Equal(t, int32(5964000), TimeOf(in).Time())
}

func TestNewTimeKeepsRawValue(t *testing.T) {
	t.Parallel()

	// Construction does not range-check or normalize.
	for _, cs := range []int32{-1, 8640000, 9000000, math.MaxInt32, math.MinInt32} {
		assert.Equal(t, cs, NewTime(cs).Time())
	}
}

func TestTimeRoundTrip(t *testing.T) {
	t.Parallel()

	for cs := int32(0); cs < CentisPerDay; cs += 9973 {
		back := TimeOf(NewTime(cs).ToTime())
		assert.Equal(t, cs, back.Time())
	}
	back := TimeOf(NewTime(8639999).ToTime())
	assert.Equal(t, int32(8639999), back.Time())
}
