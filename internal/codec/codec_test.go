package codec_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-datepicker/internal/calendar"
	"github.com/tartampluch/go-datepicker/internal/codec"
)

// frenchNames is a minimal non-English table for locale-sensitive cases.
var frenchNames = &codec.Table{
	Months: [3][12]string{
		codec.Short: {"janv.", "févr.", "mars", "avr.", "mai", "juin", "juil.", "août", "sept.", "oct.", "nov.", "déc."},
		codec.Full: {"janvier", "février", "mars", "avril", "mai", "juin",
			"juillet", "août", "septembre", "octobre", "novembre", "décembre"},
	},
	Weekdays: [3][7]string{
		codec.Narrow: {"D", "L", "M", "M", "J", "V", "S"},
		codec.Short:  {"dim.", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam."},
		codec.Full:   {"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"},
	},
}

func TestFormat(t *testing.T) {
	d := calendar.MustDate(2023, time.July, 4) // Tuesday

	tests := []struct {
		name    string
		pattern string
		names   codec.Names
		want    string
	}{
		{"ISO", "yyyy-MM-dd", nil, "2023-07-04"},
		{"Title", "EEE, MMM d", nil, "Tue, Jul 4"},
		{"YearHeader", "MMMM yyyy", nil, "July 2023"},
		{"Unpadded", "d/M/y", nil, "4/7/2023"},
		{"TwoDigitYear", "dd.MM.yy", nil, "04.07.23"},
		{"FullWeekday", "EEEE", nil, "Tuesday"},
		{"NarrowWeekday", "EEEEE", nil, "T"},
		{"QuotedLiteral", "'Day' d 'of' MMMM", nil, "Day 4 of July"},
		{"EscapedQuote", "yyyy''MM", nil, "2023'07"},
		{"French", "EEEE d MMMM yyyy", frenchNames, "mardi 4 juillet 2023"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := codec.Format(d, tt.pattern, tt.names)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_InvalidPattern(t *testing.T) {
	d := calendar.MustDate(2023, time.July, 4)

	for _, p := range []string{"yyyy-MM-dd HH", "'unterminated", "ddd", "MMMMM"} {
		_, err := codec.Format(d, p, nil)
		assert.ErrorIs(t, err, codec.ErrPattern, "pattern %q", p)
	}

	assert.Equal(t, "HH", codec.MustFormat(d, "HH", nil))
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		pattern string
		names   codec.Names
		want    calendar.Date
	}{
		{"ISO", "2023-07-04", "yyyy-MM-dd", nil, calendar.MustDate(2023, time.July, 4)},
		{"Unpadded", "4/7/2023", "d/M/y", nil, calendar.MustDate(2023, time.July, 4)},
		{"UnpaddedTwoDigits", "14/12/2023", "d/M/y", nil, calendar.MustDate(2023, time.December, 14)},
		{"TwoDigitYear", "04.07.23", "dd.MM.yy", nil, calendar.MustDate(2023, time.July, 4)},
		{"MonthNameCaseInsensitive", "july 4, 2023", "MMMM d, yyyy", nil, calendar.MustDate(2023, time.July, 4)},
		{"WeekdayMatches", "Tue 2023-07-04", "EEE yyyy-MM-dd", nil, calendar.MustDate(2023, time.July, 4)},
		{"NarrowWeekdayAmbiguous", "T 2023-07-06", "EEEEE yyyy-MM-dd", nil, calendar.MustDate(2023, time.July, 6)},
		{"LeapDay", "2024-02-29", "yyyy-MM-dd", nil, calendar.MustDate(2024, time.February, 29)},
		{"French", "4 juillet 2023", "d MMMM yyyy", frenchNames, calendar.MustDate(2023, time.July, 4)},
		{"FrenchShort", "févr. 3 2023", "MMM d yyyy", frenchNames, calendar.MustDate(2023, time.February, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := codec.Parse(tt.text, tt.pattern, tt.names)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		pattern string
	}{
		{"MonthOutOfRange", "2023-13-01", "yyyy-MM-dd"},
		{"NotADate", "not-a-date", "yyyy-MM-dd"},
		{"Empty", "", "yyyy-MM-dd"},
		{"Partial", "2023-0", "yyyy-MM-dd"},
		{"PartialYear", "202", "yyyy-MM-dd"},
		{"Trailing", "2023-07-04x", "yyyy-MM-dd"},
		{"NoLeapDay", "2023-02-29", "yyyy-MM-dd"},
		{"DayZero", "2023-02-00", "yyyy-MM-dd"},
		{"WrongSeparator", "2023/07/04", "yyyy-MM-dd"},
		{"WeekdayMismatch", "Mon 2023-07-04", "EEE yyyy-MM-dd"},
		{"UnknownMonthName", "Juli 4 2023", "MMMM d yyyy"},
		{"IncompletePattern", "2023-07", "yyyy-MM"},
		{"InvalidPattern", "2023", "'oops"},
		{"ConflictingDay", "04 05 2023-07", "dd dd yyyy-MM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.Parse(tt.text, tt.pattern, nil)
			require.Error(t, err)

			var perr *codec.ParseError
			require.True(t, errors.As(err, &perr), "must be a *ParseError")
			assert.Equal(t, tt.text, perr.Text)
			assert.NotEmpty(t, perr.Reason)
			assert.ErrorIs(t, err, codec.ErrParse)
		})
	}
}

// TestRoundTrip checks Parse(Format(d)) == d across a leap year and patterns
// mixing numeric and textual fields.
func TestRoundTrip(t *testing.T) {
	patterns := []string{"yyyy-MM-dd", "d/M/yyyy", "EEE, MMM d yyyy", "EEEE d MMMM yyyy", "dd.MM.yy", "yyyyMMdd"}
	namesSets := map[string]codec.Names{"en": nil, "fr": frenchNames}

	start := calendar.MustDate(2024, time.January, 1).Time(time.UTC)
	for lang, names := range namesSets {
		for _, p := range patterns {
			t.Run(lang+"_"+p, func(t *testing.T) {
				for i := 0; i < 366; i++ {
					d := calendar.FromTime(start.AddDate(0, 0, i))
					s, err := codec.Format(d, p, names)
					require.NoError(t, err)

					got, err := codec.Parse(s, p, names)
					require.NoError(t, err, "text %q", s)
					require.Equal(t, d, got, "text %q", s)
				}
			})
		}
	}
}

func TestRoundTrip_Spec(t *testing.T) {
	d := calendar.MustDate(2023, time.July, 4)
	s, err := codec.Format(d, "yyyy-MM-dd", nil)
	require.NoError(t, err)

	got, err := codec.Parse(s, "yyyy-MM-dd", nil)
	require.NoError(t, err)
	assert.Equal(t, d, got)
}

func TestEnglishNames(t *testing.T) {
	assert.Equal(t, "January", codec.English.MonthName(time.January, codec.Full))
	assert.Equal(t, "Dec", codec.English.MonthName(time.December, codec.Short))
	assert.Equal(t, "S", codec.English.WeekdayName(time.Sunday, codec.Narrow))
	assert.Equal(t, "Wednesday", codec.English.WeekdayName(time.Wednesday, codec.Full))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, codec.Validate("EEE, MMM d"))
	assert.NoError(t, codec.Validate("MMMM yyyy"))
	assert.ErrorIs(t, codec.Validate("hh:mm"), codec.ErrPattern)

	assert.NoError(t, codec.ValidateParsable("dd/MM/yyyy"))
	assert.ErrorIs(t, codec.ValidateParsable("MMMM yyyy"), codec.ErrPattern)
	assert.ErrorIs(t, codec.ValidateParsable("'x"), codec.ErrPattern)
}

func TestNumericInput(t *testing.T) {
	tests := []struct {
		pattern  string
		literals string
		numeric  bool
	}{
		{"yyyy-MM-dd", "--", true},
		{"dd.MM.yy", "..", true},
		{"'Day' d/M/y", "Day //", true},
		{"d MMMM yyyy", "", false},
		{"EEE yyyy-MM-dd", "", false},
		{"HH", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			lit, ok := codec.NumericInput(tt.pattern)
			assert.Equal(t, tt.numeric, ok)
			assert.Equal(t, tt.literals, lit)
		})
	}
}
