package ui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-datepicker/internal/calendar"
	"github.com/tartampluch/go-datepicker/internal/codec"
	"github.com/tartampluch/go-datepicker/internal/config"
	"github.com/tartampluch/go-datepicker/internal/interchange"
	"github.com/tartampluch/go-datepicker/internal/locale"
	"github.com/tartampluch/go-datepicker/internal/picker"
	"github.com/tartampluch/go-datepicker/internal/server"
)

// DatePickerApp is the host window around the picker: it opens sessions,
// shows the confirmed date and hands it to the feed server and .ics file.
type DatePickerApp struct {
	App         fyne.App
	Window      fyne.Window
	Preferences fyne.Preferences
	Locale      locale.Locale
	Ctx         context.Context

	Server  *server.FeedServer // nil disables the feed
	Clock   calendar.Clock
	ICSPath string // empty disables the .ics export

	// Overrides come from the command line and win over preferences.
	Overrides      picker.Options
	LocaleOverride string

	// Selected is the last confirmed date, zero until one exists.
	Selected calendar.Date

	selectedLabel  *widget.Label
	pickBtn        *widget.Button
	settingsBtn    *widget.Button
	settingsWindow fyne.Window
	dialog         *PickerDialog
}

// NewDatePickerApp constructs the application and wires dependencies.
func NewDatePickerApp(a fyne.App, ctx context.Context, srv *server.FeedServer) *DatePickerApp {
	return &DatePickerApp{
		App:         a,
		Preferences: a.Preferences(),
		Ctx:         ctx,
		Server:      srv,
		Clock:       calendar.RealClock{},
	}
}

// Run launches the feed server and the main UI loop.
func (app *DatePickerApp) Run() {
	app.UpdateLocale()
	app.restoreSelection()
	app.buildMainWindow()

	if app.Server != nil {
		go func() {
			if err := app.Server.Start(app.Ctx); err != nil {
				slog.Error(config.ErrServerStartup,
					config.LogKeyError, err,
					config.LogKeyComponent, config.CompUI)

				fyne.Do(func() {
					app.App.SendNotification(fyne.NewNotification(
						config.TitleStartupError,
						fmt.Sprintf(config.MsgPortBusy, app.Server.Port)))
				})
			}
		}()
		if !app.Selected.IsZero() {
			app.publish(app.Selected)
		}
	}

	go func() {
		<-app.Ctx.Done()
		slog.Info(config.MsgCtxCancel, config.LogKeyComponent, config.CompUI)
		fyne.Do(app.App.Quit)
	}()

	app.Window.ShowAndRun()
}

// restoreSelection seeds Selected from the command line or, failing that,
// from the last confirmed date kept in preferences.
func (app *DatePickerApp) restoreSelection() {
	if !app.Overrides.InitialDate.IsZero() {
		app.Selected = app.Overrides.InitialDate
		return
	}
	raw := app.Preferences.String(config.PrefLastDate)
	if raw == "" {
		return
	}
	d, err := codec.Parse(raw, config.DefaultTextFieldPattern, nil)
	if err != nil {
		slog.Warn(config.MsgSkippedDate,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyValue, raw,
			config.LogKeyError, err)
		return
	}
	app.Selected = d
}

// buildMainWindow creates the host window: the confirmed date and two buttons.
func (app *DatePickerApp) buildMainWindow() {
	w := app.App.NewWindow(app.GetMsg(config.TKeyWinTitle))
	app.Window = w

	app.selectedLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	app.pickBtn = widget.NewButtonWithIcon("", theme.CalendarIcon(), app.ShowPicker)
	app.pickBtn.Importance = widget.HighImportance
	app.settingsBtn = widget.NewButtonWithIcon("", theme.SettingsIcon(), app.ShowSettingsWindow)
	app.refreshMainWindow()

	w.SetContent(container.NewPadded(container.NewVBox(
		app.selectedLabel,
		container.NewGridWithColumns(config.LayoutButtonsCols, app.settingsBtn, app.pickBtn),
	)))
	w.Resize(fyne.NewSize(config.MainWindowWidth, config.MainWindowHeight))
	w.SetMaster()
}

// refreshMainWindow re-applies localized texts after a locale change.
func (app *DatePickerApp) refreshMainWindow() {
	if app.Window == nil {
		return
	}
	app.Window.SetTitle(app.GetMsg(config.TKeyWinTitle))
	app.selectedLabel.SetText(app.selectedText())
	app.pickBtn.SetText(app.GetMsg(config.TKeyBtnPick))
	app.settingsBtn.SetText(app.GetMsg(config.TKeyBtnSettings))
}

func (app *DatePickerApp) selectedText() string {
	label := app.GetMsg(config.TKeyLblSelected)
	if app.Selected.IsZero() {
		return label
	}
	return label + ": " + app.Selected.Time(time.UTC).Format(config.DateFormatDisplay)
}

// pickerOptions assembles a session from preferences, then command line
// overrides.
func (app *DatePickerApp) pickerOptions() picker.Options {
	o := app.Overrides
	years := calendar.YearRange{
		Min: app.Preferences.IntWithFallback(config.PrefMinYear, config.DefaultMinYear),
		Max: app.Preferences.IntWithFallback(config.PrefMaxYear, config.DefaultMaxYear),
	}
	if o.YearRange != nil {
		years = *o.YearRange
	}
	opts := picker.Options{
		InitialDate:       app.Selected,
		YearRange:         &years,
		Locale:            app.Locale,
		TitlePattern:      o.TitlePattern,
		YearPickerPattern: o.YearPickerPattern,
		TextFieldPattern:  app.Preferences.String(config.PrefPattern),
		Strings:           o.Strings,
		Clock:             app.Clock,
		OnSelectDate:      app.onSelectDate,
	}
	if o.TextFieldPattern != "" {
		opts.TextFieldPattern = o.TextFieldPattern
	}
	if !o.Locale.IsZero() {
		opts.Locale = o.Locale
	}
	// A remembered date outside the range falls back to today. A date given
	// on the command line is kept so that picker.New reports it.
	explicit := !o.InitialDate.IsZero() && opts.InitialDate == o.InitialDate
	if !explicit && !years.Contains(opts.InitialDate.Year) {
		opts.InitialDate = calendar.Date{}
	}
	return opts
}

// ShowPicker opens a new picker session over the main window.
func (app *DatePickerApp) ShowPicker() {
	ctrl, err := picker.New(app.pickerOptions())
	if err != nil {
		slog.Error(config.MsgPickerFail,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyError, err)
		dialog.ShowError(err, app.Window)
		return
	}

	compact := app.Window.Canvas().Size().Height < config.CompactHeight
	app.dialog = NewPickerDialog(ctrl, app.Window, compact)
	app.dialog.Show()
}

// onSelectDate receives the date confirmed in the picker.
func (app *DatePickerApp) onSelectDate(d calendar.Date) {
	app.Selected = d
	app.Preferences.SetString(config.PrefLastDate, d.String())
	if app.selectedLabel != nil {
		app.selectedLabel.SetText(app.selectedText())
	}
	app.publish(d)
}

// publish hands d to the feed server and the .ics file, when enabled.
func (app *DatePickerApp) publish(d calendar.Date) {
	summary := app.summary(d)

	if app.Server != nil {
		if err := app.Server.Publish(d, summary); err != nil {
			slog.Error(config.MsgPublishFail,
				config.LogKeyComponent, config.CompUI,
				config.LogKeyError, err)
		}
	}

	if app.ICSPath != "" {
		ev := interchange.Event{Date: d, Summary: summary, Stamp: app.Clock.Now()}
		if err := interchange.WriteEvent(app.ICSPath, ev); err != nil {
			slog.Error(config.MsgPublishFail,
				config.LogKeyComponent, config.CompUI,
				config.LogKeyFile, app.ICSPath,
				config.LogKeyError, err)
		}
	}
}

// summary localizes the event title, using the text field pattern for the date.
func (app *DatePickerApp) summary(d calendar.Date) string {
	pattern := app.pickerOptions().TextFieldPattern
	if pattern == "" {
		pattern = config.DefaultTextFieldPattern
	}
	text, err := codec.Format(d, pattern, app.Locale.Names())
	if err != nil {
		text = d.String()
	}

	msg, err := app.Locale.MsgWith(config.TKeyEventSummary, map[string]any{"Date": text})
	if err != nil || msg == "" {
		return fmt.Sprintf(config.FallbackSummary, text)
	}
	return msg
}
