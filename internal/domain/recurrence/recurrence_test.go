package recurrence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 9, 30, 0, 0, time.UTC)
}

func TestParseFrequency(t *testing.T) {
	for _, f := range []Frequency{Daily, Weekly, Biweekly, Monthly, Bimonthly, Quarterly, Semiannual, Annual} {
		got, err := ParseFrequency(string(f))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	_, err := ParseFrequency("fortnightly-ish")
	assert.ErrorIs(t, err, ErrUnknownFrequency)
}

func TestNew_DerivesDayFields(t *testing.T) {
	start := date(2025, time.January, 31) // a Friday
	d, err := New(Monthly, start)
	require.NoError(t, err)

	assert.Equal(t, 31, d.DayOfMonth)
	assert.Equal(t, time.Friday, d.DayOfWeek)
}

func TestNew_UnknownFrequency(t *testing.T) {
	_, err := New(Frequency("hourly"), date(2025, time.January, 1))
	assert.ErrorIs(t, err, ErrUnknownFrequency)
}

func TestNextOccurrence_MonthlyClampsToMonthEnd(t *testing.T) {
	start := date(2025, time.January, 31)
	d, err := New(Monthly, start)
	require.NoError(t, err)

	// Jan 31 -> Feb 28 (2025 is not a leap year), never March 3.
	next, ok := d.NextOccurrence(start)
	require.True(t, ok)
	assert.Equal(t, time.February, next.Month())
	assert.Equal(t, 28, next.Day())

	// Leap year lands on Feb 29.
	leapStart := date(2024, time.January, 31)
	d2, err := New(Monthly, leapStart)
	require.NoError(t, err)
	next, ok = d2.NextOccurrence(leapStart)
	require.True(t, ok)
	assert.Equal(t, 29, next.Day())
}

func TestNextOccurrence_MonthlyRecoverDay(t *testing.T) {
	// Day 31 descriptor stepping from a February reference returns to day 31.
	d, err := New(Monthly, date(2025, time.January, 31))
	require.NoError(t, err)

	next, ok := d.NextOccurrence(date(2025, time.February, 28))
	require.True(t, ok)
	assert.Equal(t, time.March, next.Month())
	assert.Equal(t, 31, next.Day())
}

func TestNextOccurrence_Daily(t *testing.T) {
	start := date(2025, time.June, 1)
	d, err := New(Daily, start)
	require.NoError(t, err)

	// Reference is exactly at the start time, so the same-day slot has passed.
	next, ok := d.NextOccurrence(start)
	require.True(t, ok)
	assert.Equal(t, 2, next.Day())
	assert.Equal(t, 9, next.Hour())

	// Earlier the same day still fires today.
	earlier := time.Date(2025, time.June, 1, 6, 0, 0, 0, time.UTC)
	next, ok = d.NextOccurrence(earlier)
	require.True(t, ok)
	assert.Equal(t, 1, next.Day())
}

func TestNextOccurrence_Weekly(t *testing.T) {
	// Start on a Wednesday.
	start := date(2025, time.June, 4)
	require.Equal(t, time.Wednesday, start.Weekday())
	d, err := New(Weekly, start)
	require.NoError(t, err)

	// From a Monday the next Wednesday is two days out.
	monday := date(2025, time.June, 9)
	next, ok := d.NextOccurrence(monday)
	require.True(t, ok)
	assert.Equal(t, time.Wednesday, next.Weekday())
	assert.Equal(t, 11, next.Day())

	// From the Wednesday itself, jump a full week.
	next, ok = d.NextOccurrence(date(2025, time.June, 11))
	require.True(t, ok)
	assert.Equal(t, 18, next.Day())
}

func TestNextOccurrence_Biweekly(t *testing.T) {
	start := date(2025, time.June, 4) // Wednesday
	d, err := New(Biweekly, start)
	require.NoError(t, err)

	// Same weekday reference jumps two weeks.
	next, ok := d.NextOccurrence(date(2025, time.June, 4))
	require.True(t, ok)
	assert.Equal(t, 18, next.Day())

	// An upcoming weekday still skips the extra week.
	monday := date(2025, time.June, 9)
	next, ok = d.NextOccurrence(monday)
	require.True(t, ok)
	assert.Equal(t, 18, next.Day())
}

func TestNextOccurrence_AnnualPinsStartMonth(t *testing.T) {
	d, err := New(Annual, date(2024, time.January, 31))
	require.NoError(t, err)

	// A mid-cycle reference still lands on the January anniversary,
	// not twelve months past the reference.
	next, ok := d.NextOccurrence(date(2025, time.June, 10))
	require.True(t, ok)
	assert.Equal(t, 2026, next.Year())
	assert.Equal(t, time.January, next.Month())
	assert.Equal(t, 31, next.Day())

	// A reference before the anniversary fires within the same year.
	next, ok = d.NextOccurrence(date(2025, time.January, 10))
	require.True(t, ok)
	assert.Equal(t, 2025, next.Year())
	assert.Equal(t, 31, next.Day())

	// Feb 29 anniversaries clamp to Feb 28 off leap years.
	leap, err := New(Annual, date(2024, time.February, 29))
	require.NoError(t, err)
	next, ok = leap.NextOccurrence(date(2024, time.March, 1))
	require.True(t, ok)
	assert.Equal(t, 2025, next.Year())
	assert.Equal(t, time.February, next.Month())
	assert.Equal(t, 28, next.Day())
}

func TestNextOccurrence_Terminated(t *testing.T) {
	start := date(2025, time.January, 15)
	end := date(2025, time.March, 1)

	d, err := New(Monthly, start, WithEndDate(end))
	require.NoError(t, err)

	// Next from mid-February would be March 15, past the end date.
	_, ok := d.NextOccurrence(date(2025, time.February, 20))
	assert.False(t, ok)

	// Reference already past the end date.
	_, ok = d.NextOccurrence(date(2025, time.April, 1))
	assert.False(t, ok)

	exhausted, err := New(Weekly, start, WithMaxOccurrences(0))
	require.NoError(t, err)
	_, ok = exhausted.NextOccurrence(start)
	assert.False(t, ok)
}

func TestNextOccurrence_StrictlyAfterReference(t *testing.T) {
	freqs := []Frequency{Daily, Weekly, Biweekly, Monthly, Bimonthly, Quarterly, Semiannual, Annual}
	refs := []time.Time{
		date(2025, time.January, 1),
		date(2025, time.January, 31),
		date(2024, time.February, 29),
		date(2025, time.December, 31),
	}

	for _, f := range freqs {
		for _, ref := range refs {
			d, err := New(f, date(2024, time.January, 31))
			require.NoError(t, err)

			next, ok := d.NextOccurrence(ref)
			require.True(t, ok, "freq %s ref %s", f, ref)
			assert.True(t, next.After(ref), "freq %s: %s not after %s", f, next, ref)
			assert.LessOrEqual(t, next.Day(), daysInMonth(next.Year(), next.Month()))
		}
	}
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name       string
		from       time.Time
		months     int
		dayOfMonth int
		wantYear   int
		wantMonth  time.Month
		wantDay    int
	}{
		{"plain step", date(2025, time.March, 10), 1, 10, 2025, time.April, 10},
		{"clamp 31 to 30", date(2025, time.March, 31), 1, 31, 2025, time.April, 30},
		{"february non-leap", date(2025, time.January, 30), 1, 30, 2025, time.February, 28},
		{"february leap", date(2024, time.January, 30), 1, 30, 2024, time.February, 29},
		{"year rollover", date(2025, time.November, 15), 3, 15, 2026, time.February, 15},
		{"annual", date(2025, time.February, 28), 12, 29, 2026, time.February, 28},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AddMonths(tt.from, tt.months, tt.dayOfMonth)
			assert.Equal(t, tt.wantYear, got.Year())
			assert.Equal(t, tt.wantMonth, got.Month())
			assert.Equal(t, tt.wantDay, got.Day())
		})
	}
}
