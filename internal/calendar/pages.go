package calendar

import (
	"errors"
	"fmt"
	"time"

	"github.com/tartampluch/go-datepicker/internal/config"
)

// YearRange is the inclusive span of selectable years.
type YearRange struct {
	Min int
	Max int
}

// DefaultYearRange mirrors the historical picker bounds.
var DefaultYearRange = YearRange{Min: config.DefaultMinYear, Max: config.DefaultMaxYear}

// NewYearRange validates the bounds.
func NewYearRange(minYear, maxYear int) (YearRange, error) {
	if minYear > maxYear {
		return YearRange{}, fmt.Errorf("%s: %d > %d", config.ErrInvalidRange, minYear, maxYear)
	}
	return YearRange{Min: minYear, Max: maxYear}, nil
}

// Contains reports whether year lies inside the range.
func (r YearRange) Contains(year int) bool {
	return year >= r.Min && year <= r.Max
}

// Years returns the number of years in the range.
func (r YearRange) Years() int {
	return r.Max - r.Min + 1
}

func (r YearRange) String() string {
	return fmt.Sprintf("[%d, %d]", r.Min, r.Max)
}

// ErrOutOfRange is matched by every *RangeError through errors.Is.
var ErrOutOfRange = errors.New(config.ErrOutOfRange)

// RangeError reports a year outside the configured YearRange. It signals a
// caller or configuration mistake and is never clamped away.
type RangeError struct {
	Year  int
	Range YearRange
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: %d not in %s", config.ErrOutOfRange, e.Year, e.Range)
}

// Is makes errors.Is(err, ErrOutOfRange) hold for range errors.
func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// CheckYear returns a *RangeError when year is outside r.
func CheckYear(year int, r YearRange) error {
	if !r.Contains(year) {
		return &RangeError{Year: year, Range: r}
	}
	return nil
}

// PageCount is the number of month pages in r.
func PageCount(r YearRange) int {
	return r.Years() * config.MonthsPerYear
}

// PageOf maps (year, month) to its linear page index.
func PageOf(year int, month time.Month, r YearRange) (int, error) {
	if err := CheckYear(year, r); err != nil {
		return 0, err
	}
	return (year-r.Min)*config.MonthsPerYear + int(month) - 1, nil
}

// DateFromPage maps a page index back to (year, month).
func DateFromPage(page int, r YearRange) (int, time.Month) {
	return r.Min + page/config.MonthsPerYear, time.Month(page%config.MonthsPerYear + 1)
}

// YearPageOf maps a year to its position in the year grid.
func YearPageOf(year int, r YearRange) (int, error) {
	if err := CheckYear(year, r); err != nil {
		return 0, err
	}
	return year - r.Min, nil
}

// YearFromPage is the inverse of YearPageOf.
func YearFromPage(page int, r YearRange) int {
	return r.Min + page
}

// PreviousPage steps back one month; it is a no-op on the first page.
func PreviousPage(page int, r YearRange) int {
	if page > 0 {
		return page - 1
	}
	return page
}

// NextPage steps forward one month; it is a no-op on the last page.
func NextPage(page int, r YearRange) int {
	if page < PageCount(r)-1 {
		return page + 1
	}
	return page
}
