package codec

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tartampluch/go-datepicker/internal/calendar"
	"github.com/tartampluch/go-datepicker/internal/config"
)

// ErrParse is wrapped by every *ParseError.
var ErrParse = errors.New(config.ErrParse)

// ParseError reports text that does not denote a valid date for a pattern.
// It is an expected, user-facing condition.
type ParseError struct {
	Text    string
	Pattern string
	Reason  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s %q with pattern %q: %s", config.ErrParse, e.Text, e.Pattern, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return ErrParse
}

// Parse reads text strictly against pattern. Every failure, including an
// invalid pattern or partially typed input, is returned as a *ParseError.
func Parse(text, pattern string, names Names) (calendar.Date, error) {
	fail := func(format string, args ...any) (calendar.Date, error) {
		return calendar.Date{}, &ParseError{Text: text, Pattern: pattern, Reason: fmt.Sprintf(format, args...)}
	}

	tokens, err := compile(pattern)
	if err != nil {
		return fail("%s", err.Error())
	}
	if !hasDate(tokens) {
		return fail("%s", config.ErrPatternIncomplete)
	}
	if text == "" {
		return fail("%s", config.ReasonEmpty)
	}
	if names == nil {
		names = English
	}

	s := scanner{text: text}
	values := map[field]int{}
	weekdays := uint8(0x7f) // bit i set: time.Weekday(i) still possible

	set := func(f field, v int) bool {
		if old, ok := values[f]; ok && old != v {
			return false
		}
		values[f] = v
		return true
	}

	for _, t := range tokens {
		var v int
		var ok bool

		switch t.field {
		case fieldLiteral:
			if !strings.HasPrefix(s.rest(), t.text) {
				return fail(config.ReasonExpected, t.text)
			}
			s.pos += len(t.text)
			continue

		case fieldYear:
			switch {
			case t.width == 2:
				v, ok = s.digits(2, 2)
				v += config.TwoDigitYearBase
			case t.width >= 3:
				n := yearDigits(t.width)
				v, ok = s.digits(n, n)
			default:
				v, ok = s.digits(1, 4)
			}

		case fieldMonth:
			if t.isText() {
				v, ok = s.name(12, func(i int) string {
					return names.MonthName(time.Month(i+1), t.nameWidth())
				})
				if !ok {
					return fail(config.ReasonName, t.field)
				}
				v++
			} else {
				v, ok = s.digits(t.width, 2)
			}

		case fieldDay:
			v, ok = s.digits(t.width, 2)

		case fieldWeekday:
			mask, matched := s.names(7, func(i int) string {
				return names.WeekdayName(time.Weekday(i), t.nameWidth())
			})
			if !matched {
				return fail(config.ReasonName, t.field)
			}
			weekdays &= mask
			continue
		}

		if !ok {
			return fail(config.ReasonDigits, t.field)
		}
		if !set(t.field, v) {
			return fail(config.ReasonConflict, t.field)
		}
	}

	if s.pos != len(text) {
		return fail("%s", config.ReasonTrailing)
	}

	year, month, day := values[fieldYear], values[fieldMonth], values[fieldDay]
	if month < 1 || month > 12 {
		return fail(config.ReasonRange, fieldMonth)
	}
	if day < 1 || day > calendar.MonthLength(year, time.Month(month)) {
		return fail(config.ReasonRange, fieldDay)
	}

	d := calendar.Date{Year: year, Month: time.Month(month), Day: day}
	if weekdays&(1<<uint(d.Weekday())) == 0 {
		return fail("%s", config.ReasonWeekday)
	}
	return d, nil
}

// scanner walks the input left to right.
type scanner struct {
	text string
	pos  int
}

func (s *scanner) rest() string {
	return s.text[s.pos:]
}

// digits consumes between minN and maxN ASCII digits, greedily.
func (s *scanner) digits(minN, maxN int) (int, bool) {
	n, v := 0, 0
	for n < maxN && s.pos+n < len(s.text) && isDigit(s.text[s.pos+n]) {
		v = v*10 + int(s.text[s.pos+n]-'0')
		n++
	}
	if n < minN {
		return 0, false
	}
	s.pos += n
	return v, true
}

// name consumes the longest of count candidate names, ignoring case, and
// returns its index.
func (s *scanner) name(count int, candidate func(int) string) (int, bool) {
	best, bestLen := -1, 0
	rest := s.rest()
	for i := 0; i < count; i++ {
		c := candidate(i)
		if l := len(c); l > bestLen && l <= len(rest) && strings.EqualFold(rest[:l], c) {
			best, bestLen = i, l
		}
	}
	if best < 0 {
		return 0, false
	}
	s.pos += bestLen
	return best, true
}

// names is like name but returns the bit set of every candidate sharing the
// longest match, since narrow names are ambiguous ("T" is Tuesday or Thursday).
func (s *scanner) names(count int, candidate func(int) string) (uint8, bool) {
	var mask uint8
	bestLen := 0
	rest := s.rest()
	for i := 0; i < count; i++ {
		c := candidate(i)
		l := len(c)
		if l == 0 || l > len(rest) || !strings.EqualFold(rest[:l], c) {
			continue
		}
		switch {
		case l > bestLen:
			mask, bestLen = 1<<uint(i), l
		case l == bestLen:
			mask |= 1 << uint(i)
		}
	}
	if mask == 0 {
		return 0, false
	}
	s.pos += bestLen
	return mask, true
}
