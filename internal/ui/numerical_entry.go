package ui

import (
	"strings"
	"unicode/utf8"

	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-datepicker/internal/codec"
)

// NumericalEntry is an Entry that only accepts digits, at most MaxDigits of
// them when MaxDigits is positive.
type NumericalEntry struct {
	widget.Entry
	MaxDigits int
}

// NewNumericalEntry creates a new instance of NumericalEntry.
func NewNumericalEntry(maxDigits int) *NumericalEntry {
	entry := &NumericalEntry{MaxDigits: maxDigits}
	entry.ExtendBaseWidget(entry)
	return entry
}

// TypedRune drops non-digits and digits past MaxDigits.
func (e *NumericalEntry) TypedRune(r rune) {
	if r < '0' || r > '9' {
		return
	}
	if e.MaxDigits > 0 && utf8.RuneCountInString(e.Text) >= e.MaxDigits {
		return
	}
	e.Entry.TypedRune(r)
}

// Keyboard shows a numeric keypad on mobile devices.
func (e *NumericalEntry) Keyboard() mobile.KeyboardType {
	return mobile.NumberKeyboard
}

// DateEntry is the picker text field. When its pattern is purely numeric,
// keystrokes are limited to digits and the pattern's separators.
// Pasted text is not filtered; the picker rejects it on parse.
type DateEntry struct {
	widget.Entry
	numeric  bool
	literals string
}

// NewDateEntry creates a text field for dates written with pattern.
func NewDateEntry(pattern string) *DateEntry {
	literals, numeric := codec.NumericInput(pattern)
	entry := &DateEntry{numeric: numeric, literals: literals}
	entry.ExtendBaseWidget(entry)
	return entry
}

// TypedRune filters keystrokes for numeric patterns.
func (e *DateEntry) TypedRune(r rune) {
	if e.numeric && (r < '0' || r > '9') && !strings.ContainsRune(e.literals, r) {
		return
	}
	e.Entry.TypedRune(r)
}

// Keyboard picks the numeric keypad for numeric patterns.
func (e *DateEntry) Keyboard() mobile.KeyboardType {
	if e.numeric {
		return mobile.NumberKeyboard
	}
	return mobile.DefaultKeyboard
}
