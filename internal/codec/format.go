package codec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tartampluch/go-datepicker/internal/calendar"
)

// Format renders d with pattern using names for textual fields. A nil names
// falls back to English. Only an invalid pattern produces an error.
func Format(d calendar.Date, pattern string, names Names) (string, error) {
	tokens, err := compile(pattern)
	if err != nil {
		return "", err
	}
	if names == nil {
		names = English
	}

	var b strings.Builder
	for _, t := range tokens {
		switch t.field {
		case fieldLiteral:
			b.WriteString(t.text)
		case fieldYear:
			b.WriteString(formatYear(d.Year, t.width))
		case fieldMonth:
			if t.isText() {
				b.WriteString(names.MonthName(d.Month, t.nameWidth()))
			} else {
				b.WriteString(pad(int(d.Month), t.width))
			}
		case fieldDay:
			b.WriteString(pad(d.Day, t.width))
		case fieldWeekday:
			b.WriteString(names.WeekdayName(d.Weekday(), t.nameWidth()))
		}
	}
	return b.String(), nil
}

// MustFormat is Format for patterns known to be valid. An invalid pattern
// yields the pattern itself, which keeps a misconfigured label visible.
func MustFormat(d calendar.Date, pattern string, names Names) string {
	s, err := Format(d, pattern, names)
	if err != nil {
		return pattern
	}
	return s
}

func formatYear(year, width int) string {
	switch {
	case width == 2:
		return pad(((year%100)+100)%100, 2)
	case width >= 3:
		return pad(year, yearDigits(width))
	default:
		return strconv.Itoa(year)
	}
}

func pad(n, width int) string {
	if n < 0 {
		return "-" + pad(-n, width)
	}
	return fmt.Sprintf("%0*d", width, n)
}
