// Package picker holds the date picker session: the tentative selection, the
// viewed page and the active mode, and commits the date only on Confirm.
package picker

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/tartampluch/go-datepicker/internal/calendar"
	"github.com/tartampluch/go-datepicker/internal/codec"
	"github.com/tartampluch/go-datepicker/internal/config"
	"github.com/tartampluch/go-datepicker/internal/locale"
)

var (
	// ErrInvalidTransition is returned by an operation called in a mode that
	// does not allow it.
	ErrInvalidTransition = errors.New(config.ErrInvalidTransition)
	// ErrSessionClosed is returned by every operation after Confirm or Cancel.
	ErrSessionClosed = errors.New(config.ErrSessionClosed)
)

// TextFieldState is the text entry field. Date holds the last successful
// parse of Raw; Err is the parse failure of Raw, if any.
type TextFieldState struct {
	Raw  string
	Date calendar.Date
	Err  error
}

// Valid reports whether Raw parsed to a selectable date.
func (t TextFieldState) Valid() bool {
	return t.Err == nil
}

// Controller is one picker session. It is not safe for concurrent use; a
// session belongs to a single dialog and its event loop.
type Controller struct {
	opts  Options
	years calendar.YearRange
	log   *slog.Logger

	mode      Mode
	selection calendar.Date
	page      int
	text      TextFieldState
	closed    bool
}

// New opens a session on opts. An InitialDate outside the YearRange is a
// *calendar.RangeError.
func New(opts Options) (*Controller, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}
	page, err := calendar.PageOf(opts.InitialDate.Year, opts.InitialDate.Month, *opts.YearRange)
	if err != nil {
		return nil, err
	}

	c := &Controller{
		opts:      opts,
		years:     *opts.YearRange,
		log:       slog.With(config.LogKeyComponent, config.CompPicker),
		mode:      Calendar,
		selection: opts.InitialDate,
		page:      page,
	}
	c.log.Debug(config.MsgPickerOpen,
		config.LogKeyDate, c.selection.String(),
		config.LogKeyPage, c.page,
		config.LogKeyRange, c.years.String(),
		config.LogKeyLocale, opts.Locale.Tag.String(),
	)
	return c, nil
}

// Mode returns the active mode.
func (c *Controller) Mode() Mode { return c.mode }

// Selection returns the tentative selection.
func (c *Controller) Selection() calendar.Date { return c.selection }

// Page returns the viewed month page.
func (c *Controller) Page() int { return c.page }

// PageCount returns the number of month pages in the year range.
func (c *Controller) PageCount() int { return calendar.PageCount(c.years) }

// YearRange returns the selectable years.
func (c *Controller) YearRange() calendar.YearRange { return c.years }

// Locale returns the session locale.
func (c *Controller) Locale() locale.Locale { return c.opts.Locale }

// Done reports whether the session was confirmed or cancelled.
func (c *Controller) Done() bool { return c.closed }

// ViewedMonth returns the (year, month) of the viewed page.
func (c *Controller) ViewedMonth() (int, time.Month) {
	return calendar.DateFromPage(c.page, c.years)
}

// TextFieldPattern returns the pattern the text field is read with.
func (c *Controller) TextFieldPattern() string { return c.opts.TextFieldPattern }

// TextField returns the text entry state. Outside TextEntry it is empty.
func (c *Controller) TextField() TextFieldState { return c.text }

// ToggleEditMode switches between the calendar and the text field. Entering
// the text field seeds it with the formatted selection; leaving it keeps the
// last valid selection and shows its month.
func (c *Controller) ToggleEditMode() error {
	if err := c.require(Calendar, YearPicker, TextEntry); err != nil {
		return err
	}
	if c.mode == TextEntry {
		c.text = TextFieldState{}
		c.showSelection()
		c.setMode(Calendar)
		return nil
	}

	raw := codec.MustFormat(c.selection, c.opts.TextFieldPattern, c.opts.Locale.Names())
	c.text = TextFieldState{Raw: raw, Date: c.selection}
	c.setMode(TextEntry)
	return nil
}

// ToggleYearPicker opens or closes the year grid. The selection is unchanged.
func (c *Controller) ToggleYearPicker() error {
	if err := c.require(Calendar, YearPicker); err != nil {
		return err
	}
	if c.mode == YearPicker {
		c.setMode(Calendar)
	} else {
		c.setMode(YearPicker)
	}
	return nil
}

// SelectYear moves the selection to year, keeping month and day. A day past
// the end of the month in year is clamped to the last day (Feb 29 becomes
// Feb 28). The month page follows and the calendar is shown again.
func (c *Controller) SelectYear(year int) error {
	if err := c.require(YearPicker); err != nil {
		return err
	}
	if err := calendar.CheckYear(year, c.years); err != nil {
		return err
	}
	c.setSelection(c.selection.WithYear(year))
	c.showSelection()
	c.setMode(Calendar)
	return nil
}

// SelectDay sets the selection to d and shows its month.
func (c *Controller) SelectDay(d calendar.Date) error {
	if err := c.require(Calendar); err != nil {
		return err
	}
	if _, err := calendar.NewDate(d.Year, d.Month, d.Day); err != nil {
		return err
	}
	if err := calendar.CheckYear(d.Year, c.years); err != nil {
		return err
	}
	c.setSelection(d)
	c.showSelection()
	return nil
}

// TapSlot selects the day in slot i of the viewed page. Tapping a blank slot
// does nothing.
func (c *Controller) TapSlot(i int) error {
	if err := c.require(Calendar); err != nil {
		return err
	}
	if i < 0 || i >= calendar.SlotCount {
		return fmt.Errorf("%s: %d", config.ErrInvalidSlot, i)
	}
	if day, ok := c.Grid()[i].(calendar.Day); ok {
		return c.SelectDay(day.Date)
	}
	return nil
}

// EditText replaces the text field content. A valid date inside the year
// range becomes the selection at once; anything else only marks the field
// invalid and leaves the selection as it was.
func (c *Controller) EditText(s string) error {
	if err := c.require(TextEntry); err != nil {
		return err
	}
	c.text.Raw = s

	d, err := codec.Parse(s, c.opts.TextFieldPattern, c.opts.Locale.Names())
	if err == nil && !c.years.Contains(d.Year) {
		err = &codec.ParseError{Text: s, Pattern: c.opts.TextFieldPattern, Reason: config.ReasonYearRange}
	}
	if err != nil {
		c.text.Err = err
		c.log.Debug(config.MsgTextInvalid,
			config.LogKeyText, s,
			config.LogKeyError, err,
		)
		return nil
	}

	c.text.Err = nil
	c.text.Date = d
	c.setSelection(d)
	c.showSelection()
	return nil
}

// Previous shows the previous month. It reports whether the page moved, which
// is false on the first page.
func (c *Controller) Previous() (bool, error) {
	if err := c.require(Calendar); err != nil {
		return false, err
	}
	return c.setPage(calendar.PreviousPage(c.page, c.years)), nil
}

// Next shows the next month. It reports whether the page moved, which is
// false on the last page.
func (c *Controller) Next() (bool, error) {
	if err := c.require(Calendar); err != nil {
		return false, err
	}
	return c.setPage(calendar.NextPage(c.page, c.years)), nil
}

// Confirm commits the selection to OnSelectDate and ends the session. It is
// accepted in every mode; an invalid text field commits the last valid date.
func (c *Controller) Confirm() error {
	if c.closed {
		return ErrSessionClosed
	}
	c.closed = true
	c.log.Info(config.MsgConfirmed, config.LogKeyDate, c.selection.String())
	if c.opts.OnSelectDate != nil {
		c.opts.OnSelectDate(c.selection)
	}
	return nil
}

// Cancel ends the session without calling OnSelectDate.
func (c *Controller) Cancel() error {
	if c.closed {
		return ErrSessionClosed
	}
	c.closed = true
	c.text = TextFieldState{}
	c.log.Info(config.MsgCancelled)
	return nil
}

// require checks that the session is open and in one of modes.
func (c *Controller) require(modes ...Mode) error {
	if c.closed {
		return ErrSessionClosed
	}
	for _, m := range modes {
		if c.mode == m {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrInvalidTransition, c.mode)
}

func (c *Controller) setMode(m Mode) {
	if m == c.mode {
		return
	}
	c.log.Debug(config.MsgModeChange,
		config.LogKeyOld, c.mode.String(),
		config.LogKeyNew, m.String(),
	)
	c.mode = m
}

func (c *Controller) setSelection(d calendar.Date) {
	if d == c.selection {
		return
	}
	c.log.Debug(config.MsgSelection,
		config.LogKeyOld, c.selection.String(),
		config.LogKeyNew, d.String(),
	)
	c.selection = d
}

// setPage reports whether the page changed.
func (c *Controller) setPage(p int) bool {
	if p == c.page {
		return false
	}
	c.log.Debug(config.MsgPageChange,
		config.LogKeyOld, c.page,
		config.LogKeyNew, p,
	)
	c.page = p
	return true
}

// showSelection moves the page to the month of the selection, which is
// always inside the range.
func (c *Controller) showSelection() {
	if p, err := calendar.PageOf(c.selection.Year, c.selection.Month, c.years); err == nil {
		c.setPage(p)
	}
}
