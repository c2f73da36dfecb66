package codec

import "time"

// Width selects the length of a month or weekday name.
type Width int

const (
	Narrow Width = iota // "J", "M"
	Short               // "Jan", "Mon"
	Full                // "January", "Monday"
)

// Names supplies localized month and weekday names.
type Names interface {
	MonthName(m time.Month, w Width) string
	WeekdayName(d time.Weekday, w Width) string
}

// Table is a Names implementation backed by fixed arrays. Months are indexed
// by month-1 and weekdays by time.Weekday (Sunday = 0).
type Table struct {
	Months   [3][12]string
	Weekdays [3][7]string
}

// MonthName implements Names.
func (t *Table) MonthName(m time.Month, w Width) string {
	return t.Months[w][m-1]
}

// WeekdayName implements Names.
func (t *Table) WeekdayName(d time.Weekday, w Width) string {
	return t.Weekdays[w][d]
}

// English is the built-in fallback used when no catalog is available.
var English = &Table{
	Months: [3][12]string{
		Narrow: {"J", "F", "M", "A", "M", "J", "J", "A", "S", "O", "N", "D"},
		Short:  {"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		Full: {"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December"},
	},
	Weekdays: [3][7]string{
		Narrow: {"S", "M", "T", "W", "T", "F", "S"},
		Short:  {"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
		Full:   {"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	},
}
