package calendar

import (
	"time"

	"cloudeng.io/datetime"
	"github.com/tartampluch/go-datepicker/internal/config"
)

// MonthInfo describes how a month populates the fixed-size grid.
type MonthInfo struct {
	// LeadingBlanks is the number of empty cells before day 1.
	LeadingBlanks int
	// DayCount is the length of the month (28-31).
	DayCount int
}

// IsLeap reports whether year is a Gregorian leap year.
func IsLeap(year int) bool {
	return datetime.IsLeap(year)
}

// MonthLength returns the number of days in month of year.
func MonthLength(year int, month time.Month) int {
	return datetime.DaysInMonth(year, datetime.Month(month))
}

// ISOWeekday converts a time.Weekday to ISO numbering (Monday=1 .. Sunday=7).
func ISOWeekday(wd time.Weekday) int {
	if wd == time.Sunday {
		return config.DaysPerWeek
	}
	return int(wd)
}

// FirstWeekdayOffset returns the column (0-6) of day 1 of the month when the
// week starts on firstDay. The result depends on firstDay, so it must be
// recomputed whenever the locale changes.
func FirstWeekdayOffset(year int, month time.Month, firstDay time.Weekday) int {
	day1 := Date{Year: year, Month: month, Day: 1}.Weekday()
	return (ISOWeekday(day1) - ISOWeekday(firstDay) + config.DaysPerWeek) % config.DaysPerWeek
}

// MonthInfoOf computes the grid geometry of a month.
func MonthInfoOf(year int, month time.Month, firstDay time.Weekday) MonthInfo {
	return MonthInfo{
		LeadingBlanks: FirstWeekdayOffset(year, month, firstDay),
		DayCount:      MonthLength(year, month),
	}
}

// WeekdayAt returns the day of the week displayed in column col (0-6).
func WeekdayAt(col int, firstDay time.Weekday) time.Weekday {
	return time.Weekday((int(firstDay) + col) % config.DaysPerWeek)
}
