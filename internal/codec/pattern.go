// Package codec formats calendar dates with letter patterns such as
// "yyyy-MM-dd" or "EEE, MMM d" and parses text back against the same pattern.
//
// Recognized letters:
//
//	y     year; "yy" is two digits (2000-2099), "yyyy" is four digits
//	M     month; "M" and "MM" numeric, "MMM" short name, "MMMM" full name
//	d     day of month; "d" or "dd"
//	E     day of week; "E" to "EEE" short, "EEEE" full, "EEEEE" narrow
//
// Text between single quotes is copied verbatim; two quotes make one. Other
// ASCII letters are reserved and rejected; everything else is a literal.
package codec

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tartampluch/go-datepicker/internal/config"
)

// ErrPattern is wrapped by every pattern compilation failure.
var ErrPattern = errors.New(config.ErrPattern)

type field int

const (
	fieldLiteral field = iota
	fieldYear
	fieldMonth
	fieldDay
	fieldWeekday
)

func (f field) String() string {
	switch f {
	case fieldYear:
		return "year"
	case fieldMonth:
		return "month"
	case fieldDay:
		return "day"
	case fieldWeekday:
		return "weekday"
	default:
		return "literal"
	}
}

type token struct {
	field field
	width int
	text  string // literal text, only for fieldLiteral
}

// isText reports whether the token renders a name rather than digits.
func (t token) isText() bool {
	return (t.field == fieldMonth && t.width >= 3) || t.field == fieldWeekday
}

func (t token) nameWidth() Width {
	switch {
	case t.width == 4:
		return Full
	case t.width == 5:
		return Narrow
	default:
		return Short
	}
}

var maxWidth = map[byte]int{'y': 9, 'M': 4, 'd': 2, 'E': 5}

var fieldOf = map[byte]field{'y': fieldYear, 'M': fieldMonth, 'd': fieldDay, 'E': fieldWeekday}

// compile splits a pattern into tokens.
func compile(pattern string) ([]token, error) {
	var tokens []token
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			tokens = append(tokens, token{field: fieldLiteral, text: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(pattern); {
		c := pattern[i]
		switch {
		case c == '\'':
			if i+1 < len(pattern) && pattern[i+1] == '\'' {
				lit.WriteByte('\'')
				i += 2
				continue
			}
			end := strings.IndexByte(pattern[i+1:], '\'')
			if end < 0 {
				return nil, fmt.Errorf("%w: unterminated quote in %q", ErrPattern, pattern)
			}
			lit.WriteString(pattern[i+1 : i+1+end])
			i += end + 2
		case isASCIILetter(c):
			f, ok := fieldOf[c]
			if !ok {
				return nil, fmt.Errorf("%w: unknown letter %q in %q", ErrPattern, c, pattern)
			}
			n := 1
			for i+n < len(pattern) && pattern[i+n] == c {
				n++
			}
			if n > maxWidth[c] {
				return nil, fmt.Errorf("%w: too many %q in %q", ErrPattern, c, pattern)
			}
			flush()
			tokens = append(tokens, token{field: f, width: n})
			i += n
		default:
			lit.WriteByte(c)
			i++
		}
	}
	flush()
	return tokens, nil
}

// hasDate reports whether the tokens fix year, month and day.
func hasDate(tokens []token) bool {
	var y, m, d bool
	for _, t := range tokens {
		switch t.field {
		case fieldYear:
			y = true
		case fieldMonth:
			m = true
		case fieldDay:
			d = true
		}
	}
	return y && m && d
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// yearDigits is the fixed digit count of a year token of width >= 3.
func yearDigits(width int) int {
	return max(width, 4)
}

// Validate reports whether pattern compiles.
func Validate(pattern string) error {
	_, err := compile(pattern)
	return err
}

// ValidateParsable is Validate for patterns used to read dates back: they must
// also carry year, month and day fields.
func ValidateParsable(pattern string) error {
	tokens, err := compile(pattern)
	if err != nil {
		return err
	}
	if !hasDate(tokens) {
		return fmt.Errorf("%w: %s in %q", ErrPattern, config.ErrPatternIncomplete, pattern)
	}
	return nil
}

// NumericInput reports whether pattern renders nothing but digits and
// literal text, and returns the literal characters it uses. Text entries use
// it to filter keystrokes and to pick a numeric keyboard.
func NumericInput(pattern string) (string, bool) {
	tokens, err := compile(pattern)
	if err != nil {
		return "", false
	}
	var lit strings.Builder
	for _, t := range tokens {
		if t.isText() {
			return "", false
		}
		if t.field == fieldLiteral {
			lit.WriteString(t.text)
		}
	}
	return lit.String(), true
}
