package interchange

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-datepicker/internal/calendar"
	"github.com/tartampluch/go-datepicker/internal/config"
)

// SeedDate returns the first usable BDAY found in the vCard stream r. A
// birthday without a year ("--MM-DD") is placed in the year of today, with
// Feb 29 clamped to Feb 28 outside leap years. Cards with an unrecognized
// date are skipped; a malformed stream is an error.
func SeedDate(r io.Reader, today calendar.Date) (calendar.Date, error) {
	decoder := vcard.NewDecoder(r)

	for {
		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			slog.Warn(config.MsgSkippedCard,
				config.LogKeyComponent, config.CompInterop,
				config.LogKeyError, err)
			return calendar.Date{}, fmt.Errorf("%s: %w", config.ErrVCardParse, err)
		}

		bday := card.Get(config.VCardBDAY)
		if bday == nil || bday.Value == "" {
			continue
		}

		d, err := parseDate(bday.Value, today.Year)
		if err != nil {
			slog.Debug(config.MsgSkippedDate,
				config.LogKeyComponent, config.CompInterop,
				config.LogKeyValue, bday.Value)
			continue
		}
		slog.Info(config.MsgSeeded,
			config.LogKeyComponent, config.CompInterop,
			config.LogKeyDate, d.String())
		return d, nil
	}

	return calendar.Date{}, errors.New(config.ErrNoBirthday)
}

// parseDate handles the vCard date forms. Truncated dates take yearIfMissing.
func parseDate(value string, yearIfMissing int) (calendar.Date, error) {
	formatsWithYear := []string{
		config.DateFormatFullDash,
		config.DateFormatFullBasic,
		config.DateFormatRFC3339,
		config.DateFormatFullT,
	}
	for _, f := range formatsWithYear {
		if t, err := time.Parse(f, value); err == nil {
			return calendar.FromTime(t), nil
		}
	}

	// Held in a leap year until WithYear clamps --02-29.
	formatsWithoutYear := []string{config.DateFormatNoYearD, config.DateFormatNoYearB}
	for _, f := range formatsWithoutYear {
		if t, err := time.Parse(f, value); err == nil {
			d := calendar.Date{Year: config.DefaultLeapYear, Month: t.Month(), Day: t.Day()}
			return d.WithYear(yearIfMissing), nil
		}
	}

	return calendar.Date{}, fmt.Errorf("%s: %q", config.ErrDateParse, value)
}
