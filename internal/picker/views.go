package picker

import (
	"github.com/tartampluch/go-datepicker/internal/calendar"
	"github.com/tartampluch/go-datepicker/internal/codec"
	"github.com/tartampluch/go-datepicker/internal/config"
)

// Grid lays out the viewed month. It is recomputed on every call.
func (c *Controller) Grid() []calendar.Slot {
	year, month := c.ViewedMonth()
	info := calendar.MonthInfoOf(year, month, c.opts.Locale.FirstDay)
	return calendar.LayoutMonth(year, month, info, c.selection, calendar.Today(c.opts.Clock), calendar.SlotCount)
}

// YearGrid lists the selectable years with the selected one flagged.
func (c *Controller) YearGrid() []calendar.YearSlot {
	return calendar.YearSlots(c.years, c.selection.Year)
}

// Title renders the selection with the title pattern.
func (c *Controller) Title() string {
	return codec.MustFormat(c.selection, c.opts.TitlePattern, c.opts.Locale.Names())
}

// Header renders the viewed month with the year picker pattern.
func (c *Controller) Header() string {
	year, month := c.ViewedMonth()
	return codec.MustFormat(calendar.Date{Year: year, Month: month, Day: 1}, c.opts.YearPickerPattern, c.opts.Locale.Names())
}

// WeekdayLabels returns the narrow weekday names in column order, starting
// at the locale's first day of the week.
func (c *Controller) WeekdayLabels() []string {
	names := c.opts.Locale.Names()
	labels := make([]string, config.DaysPerWeek)
	for col := range labels {
		labels[col] = names.WeekdayName(calendar.WeekdayAt(col, c.opts.Locale.FirstDay), codec.Narrow)
	}
	return labels
}

// Labels returns the resolved display strings.
func (c *Controller) Labels() Strings {
	return c.opts.Strings
}
