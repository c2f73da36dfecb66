package calendar

import (
	"time"

	"github.com/tartampluch/go-datepicker/internal/config"
)

// SlotCount is the fixed size of a month page: six full weeks, enough for a
// 31 day month that starts on the last column.
const SlotCount = config.MonthGridSlots

// Slot is one cell of a month page. It is either Blank or Day; the unexported
// method closes the set so a type switch over both cases is exhaustive.
type Slot interface {
	slot()
}

// Blank is an empty cell before day 1 or after the last day.
type Blank struct{}

// Day is a cell holding a day of the viewed month.
type Day struct {
	Date     Date
	Selected bool // equals the tentative selection
	Today    bool // equals the current date
}

func (Blank) slot() {}
func (Day) slot()   {}

// Number returns the day of month shown in the cell.
func (d Day) Number() int {
	return d.Date.Day
}

// LayoutMonth builds the slots of the page showing month of year. Slot i holds
// day i+1-LeadingBlanks when it falls inside the month and is Blank otherwise.
// Selected and Today are independent flags.
func LayoutMonth(year int, month time.Month, info MonthInfo, selection, today Date, slotCount int) []Slot {
	slots := make([]Slot, slotCount)
	for i := range slots {
		if i < info.LeadingBlanks || i >= info.LeadingBlanks+info.DayCount {
			slots[i] = Blank{}
			continue
		}
		date := Date{Year: year, Month: month, Day: i + 1 - info.LeadingBlanks}
		slots[i] = Day{
			Date:     date,
			Selected: date == selection,
			Today:    date == today,
		}
	}
	return slots
}

// YearSlot is one cell of the year grid.
type YearSlot struct {
	Year     int
	Selected bool
}

// YearSlots lists every year of r in order, flagging selectedYear.
func YearSlots(r YearRange, selectedYear int) []YearSlot {
	slots := make([]YearSlot, 0, r.Years())
	for y := r.Min; y <= r.Max; y++ {
		slots = append(slots, YearSlot{Year: y, Selected: y == selectedYear})
	}
	return slots
}
