// Package interchange moves picked dates in and out of the standard calendar
// formats: an all-day iCalendar event for a confirmed date and the BDAY of a
// vCard as the initial date.
package interchange

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-datepicker/internal/calendar"
	"github.com/tartampluch/go-datepicker/internal/config"
)

// Event describes the all-day event exported for a date.
type Event struct {
	Date    calendar.Date
	Summary string    // Default: config.FallbackSummary
	Stamp   time.Time // DTSTAMP, written in UTC
}

// EncodeEvent renders ev as a VCALENDAR holding a single all-day VEVENT.
func EncodeEvent(ev Event) ([]byte, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ProductID)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	summary := ev.Summary
	if summary == "" {
		summary = fmt.Sprintf(config.FallbackSummary, ev.Date)
	}

	event := ical.NewEvent()
	event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, ev.Date.Year, int(ev.Date.Month), ev.Date.Day, config.ICalDomain))
	event.Props.SetText(config.PropSummary, summary)

	dtStamp := ical.NewProp(config.PropDTStamp)
	dtStamp.SetDateTime(ev.Stamp.UTC())
	event.Props.Set(dtStamp)

	// VALUE=DATE keeps the event on the same calendar day in every time zone.
	dtStart := ical.NewProp(config.PropDTStart)
	dtStart.SetDate(ev.Date.Time(time.UTC))
	event.Props.Set(dtStart)

	cal.Children = append(cal.Children, event.Component)

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}
	return buf.Bytes(), nil
}

// WriteEvent encodes ev and writes it to path, readable by the owner only.
func WriteEvent(path string, ev Event) error {
	data, err := EncodeEvent(ev)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, config.FilePermUserRW); err != nil {
		return fmt.Errorf("%s: %w", config.ErrWriteICS, err)
	}
	slog.Info(config.MsgICSWritten,
		config.LogKeyComponent, config.CompInterop,
		config.LogKeyFile, path,
		config.LogKeyDate, ev.Date.String(),
	)
	return nil
}
