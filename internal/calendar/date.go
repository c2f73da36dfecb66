// Package calendar holds the pure calendar logic behind the picker: date
// validation, month geometry, page indexing and the month grid layout.
package calendar

import (
	"fmt"
	"time"

	"github.com/tartampluch/go-datepicker/internal/config"
)

// Date is a proleptic Gregorian calendar date without time or zone.
// The zero value is not a valid date; build values with NewDate or FromTime.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate validates the triple and returns it as a Date.
func NewDate(year int, month time.Month, day int) (Date, error) {
	if month < time.January || month > time.December {
		return Date{}, fmt.Errorf("%s: month %d", config.ErrInvalidDate, month)
	}
	if day < 1 || day > MonthLength(year, month) {
		return Date{}, fmt.Errorf("%s: %04d-%02d-%02d", config.ErrInvalidDate, year, month, day)
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// MustDate is NewDate for literals known to be valid. It panics otherwise.
func MustDate(year int, month time.Month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// FromTime returns the calendar date of t in t's own location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Time returns midnight of the date in loc.
func (d Date) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// Weekday returns the day of the week of the date.
func (d Date) Weekday() time.Weekday {
	return d.Time(time.UTC).Weekday()
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Before reports whether d is strictly earlier than o.
func (d Date) Before(o Date) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

// WithYear moves the date to another year, clamping the day to the last day
// of the target month (Feb 29 becomes Feb 28 in a common year).
func (d Date) WithYear(year int) Date {
	return Date{Year: year, Month: d.Month, Day: clampDay(year, d.Month, d.Day)}
}

// String renders the date as yyyy-mm-dd, or "" for the zero Date.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Time(time.UTC).Format(config.DateFormatDisplay)
}

func clampDay(year int, month time.Month, day int) int {
	if day < 1 {
		return 1
	}
	if last := MonthLength(year, month); day > last {
		return last
	}
	return day
}
