// Package recurrence computes occurrence dates for repeating ledger entries.
package recurrence

import (
	"errors"
	"fmt"
	"time"
)

// Frequency enumerates the supported repetition intervals.
type Frequency string

const (
	Daily      Frequency = "daily"
	Weekly     Frequency = "weekly"
	Biweekly   Frequency = "biweekly"
	Monthly    Frequency = "monthly"
	Bimonthly  Frequency = "bimonthly"
	Quarterly  Frequency = "quarterly"
	Semiannual Frequency = "semiannual"
	Annual     Frequency = "annual"
)

// ErrUnknownFrequency is returned by New for an unrecognized frequency token.
var ErrUnknownFrequency = errors.New("unknown recurrence frequency")

// monthSteps maps monthly-or-coarser frequencies to their month advance.
var monthSteps = map[Frequency]int{
	Monthly:    1,
	Bimonthly:  2,
	Quarterly:  3,
	Semiannual: 6,
}

// ParseFrequency validates a canonical frequency token.
func ParseFrequency(s string) (Frequency, error) {
	f := Frequency(s)
	switch f {
	case Daily, Weekly, Biweekly, Monthly, Bimonthly, Quarterly, Semiannual, Annual:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFrequency, s)
}

// Descriptor describes how a recurring transaction repeats. It is immutable
// once created: DayOfMonth and DayOfWeek are derived from StartDate when not
// supplied and fixed thereafter.
type Descriptor struct {
	Frequency      Frequency
	StartDate      time.Time
	EndDate        *time.Time
	DayOfMonth     int
	DayOfWeek      time.Weekday
	MaxOccurrences *int
}

// Option customizes a Descriptor at construction time.
type Option func(*Descriptor)

// WithEndDate bounds the recurrence.
func WithEndDate(end time.Time) Option {
	return func(d *Descriptor) { d.EndDate = &end }
}

// WithDayOfMonth overrides the day derived from StartDate.
func WithDayOfMonth(day int) Option {
	return func(d *Descriptor) { d.DayOfMonth = day }
}

// WithDayOfWeek overrides the weekday derived from StartDate.
func WithDayOfWeek(day time.Weekday) Option {
	return func(d *Descriptor) { d.DayOfWeek = day }
}

// WithMaxOccurrences caps the number of remaining occurrences.
func WithMaxOccurrences(n int) Option {
	return func(d *Descriptor) { d.MaxOccurrences = &n }
}

// New builds a Descriptor, deriving DayOfMonth/DayOfWeek from startDate when
// the options do not supply them. An unrecognized frequency is the only
// construction error.
func New(frequency Frequency, startDate time.Time, opts ...Option) (*Descriptor, error) {
	if _, err := ParseFrequency(string(frequency)); err != nil {
		return nil, err
	}

	d := &Descriptor{
		Frequency:  frequency,
		StartDate:  startDate,
		DayOfMonth: startDate.Day(),
		DayOfWeek:  startDate.Weekday(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// NextOccurrence computes the first occurrence strictly after referenceDate.
// The boolean is false when the recurrence has terminated (past EndDate or
// MaxOccurrences exhausted). Monthly and coarser frequencies preserve
// DayOfMonth, clamped to the last valid day of the target month; Annual
// additionally keeps the start date's month, so occurrences stay on the
// anniversary regardless of where in the cycle the reference falls.
//
// NextOccurrence panics on a Descriptor with an unknown frequency; New never
// produces one.
func (d *Descriptor) NextOccurrence(referenceDate time.Time) (time.Time, bool) {
	if d.EndDate != nil && referenceDate.After(*d.EndDate) {
		return time.Time{}, false
	}
	if d.MaxOccurrences != nil && *d.MaxOccurrences <= 0 {
		return time.Time{}, false
	}

	var next time.Time
	switch d.Frequency {
	case Daily:
		next = d.atStartTime(referenceDate)
		if !next.After(referenceDate) {
			next = next.AddDate(0, 0, 1)
		}
	case Weekly:
		next = d.atStartTime(referenceDate).AddDate(0, 0, d.daysUntilWeekday(referenceDate, 7))
	case Biweekly:
		next = d.atStartTime(referenceDate).AddDate(0, 0, d.daysUntilWeekday(referenceDate, 14))
	case Monthly, Bimonthly, Quarterly, Semiannual:
		stepped := AddMonths(referenceDate, monthSteps[d.Frequency], d.DayOfMonth)
		next = time.Date(stepped.Year(), stepped.Month(), stepped.Day(),
			d.StartDate.Hour(), d.StartDate.Minute(), 0, 0, referenceDate.Location())
	case Annual:
		next = d.nextAnniversary(referenceDate)
	default:
		panic(fmt.Sprintf("recurrence: malformed descriptor frequency %q", d.Frequency))
	}

	if d.EndDate != nil && next.After(*d.EndDate) {
		return time.Time{}, false
	}
	return next, true
}

// nextAnniversary returns the first StartDate anniversary strictly after
// reference. The month is pinned to the start month; DayOfMonth is clamped
// to its last valid day (Feb 29 anniversaries fall on Feb 28 off leap years).
func (d *Descriptor) nextAnniversary(reference time.Time) time.Time {
	month := d.StartDate.Month()
	for year := reference.Year(); ; year++ {
		day := d.DayOfMonth
		if last := daysInMonth(year, month); day > last {
			day = last
		}
		candidate := time.Date(year, month, day,
			d.StartDate.Hour(), d.StartDate.Minute(), 0, 0, reference.Location())
		if candidate.After(reference) {
			return candidate
		}
	}
}

// atStartTime returns reference's calendar day at the start date's time of day.
func (d *Descriptor) atStartTime(reference time.Time) time.Time {
	return time.Date(reference.Year(), reference.Month(), reference.Day(),
		d.StartDate.Hour(), d.StartDate.Minute(), 0, 0, reference.Location())
}

// daysUntilWeekday computes how many days ahead the next DayOfWeek boundary
// falls. When the target weekday is today or already passed this week, the
// whole period is added; otherwise biweekly schedules still skip one extra
// week past the upcoming weekday.
func (d *Descriptor) daysUntilWeekday(reference time.Time, period int) int {
	ahead := int(d.DayOfWeek) - int(reference.Weekday())
	if ahead <= 0 {
		return ahead + period
	}
	if period > 7 {
		return ahead + 7
	}
	return ahead
}

// AddMonths advances t by the given number of calendar months, landing on
// dayOfMonth clamped to the last valid day of the target month. Feb 31 becomes
// Feb 28 (29 in leap years), never a day in March.
func AddMonths(t time.Time, months, dayOfMonth int) time.Time {
	year := t.Year()
	month := int(t.Month()) + months
	for month > 12 {
		month -= 12
		year++
	}

	day := dayOfMonth
	if last := daysInMonth(year, time.Month(month)); day > last {
		day = last
	}
	if day < 1 {
		day = 1
	}

	return time.Date(year, time.Month(month), day,
		t.Hour(), t.Minute(), t.Second(), 0, t.Location())
}

// daysInMonth returns the number of days in the given month.
func daysInMonth(year int, month time.Month) int {
	// Day zero of the following month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
