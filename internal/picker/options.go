package picker

import (
	"fmt"

	"github.com/tartampluch/go-datepicker/internal/calendar"
	"github.com/tartampluch/go-datepicker/internal/codec"
	"github.com/tartampluch/go-datepicker/internal/config"
	"github.com/tartampluch/go-datepicker/internal/locale"
)

// Strings are the display-only texts of the dialog.
type Strings struct {
	Label   string // text field label
	Error   string // shown under an invalid text field
	Cancel  string
	Confirm string
}

// Options configures a picker session. Zero fields take their defaults.
type Options struct {
	InitialDate calendar.Date       // Default: today
	YearRange   *calendar.YearRange // Default: calendar.DefaultYearRange
	Locale      locale.Locale       // Default: system locale

	TitlePattern      string // Default: config.DefaultTitlePattern
	YearPickerPattern string // Default: config.DefaultYearPickerPattern
	TextFieldPattern  string // Default: config.DefaultTextFieldPattern

	Strings Strings        // Default: translated from the locale catalog
	Clock   calendar.Clock // Default: calendar.RealClock

	// OnSelectDate receives the committed date. It is called at most once,
	// from Confirm.
	OnSelectDate func(calendar.Date)
}

// withDefaults fills zero fields and validates the result.
func (o Options) withDefaults() (Options, error) {
	if o.Clock == nil {
		o.Clock = calendar.RealClock{}
	}
	r := calendar.DefaultYearRange
	if o.YearRange != nil {
		r = *o.YearRange
	}
	if r.Min > r.Max {
		return o, fmt.Errorf("%s: %s", config.ErrInvalidRange, r)
	}
	o.YearRange = &r
	if o.InitialDate.IsZero() {
		o.InitialDate = calendar.Today(o.Clock)
	} else if _, err := calendar.NewDate(o.InitialDate.Year, o.InitialDate.Month, o.InitialDate.Day); err != nil {
		return o, err
	}
	if err := calendar.CheckYear(o.InitialDate.Year, r); err != nil {
		return o, err
	}
	if o.Locale.IsZero() {
		o.Locale = locale.DefaultCatalog().Locale(locale.System())
	}

	if o.TitlePattern == "" {
		o.TitlePattern = config.DefaultTitlePattern
	}
	if o.YearPickerPattern == "" {
		o.YearPickerPattern = config.DefaultYearPickerPattern
	}
	if o.TextFieldPattern == "" {
		o.TextFieldPattern = config.DefaultTextFieldPattern
	}
	for _, p := range []string{o.TitlePattern, o.YearPickerPattern} {
		if err := codec.Validate(p); err != nil {
			return o, err
		}
	}
	if err := codec.ValidateParsable(o.TextFieldPattern); err != nil {
		return o, err
	}

	s := &o.Strings
	if s.Label == "" {
		s.Label = o.Locale.MsgOr(config.TKeyLblDate, config.DefaultLabelText)
	}
	if s.Error == "" {
		s.Error = o.Locale.MsgOr(config.TKeyErrFormat, config.DefaultErrorText)
	}
	if s.Cancel == "" {
		s.Cancel = o.Locale.MsgOr(config.TKeyBtnCancel, config.DefaultCancelText)
	}
	if s.Confirm == "" {
		s.Confirm = o.Locale.MsgOr(config.TKeyBtnConfirm, config.DefaultConfirmText)
	}
	return o, nil
}
