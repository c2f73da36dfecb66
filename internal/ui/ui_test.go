package ui

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-datepicker/internal/calendar"
	"github.com/tartampluch/go-datepicker/internal/config"
	"github.com/tartampluch/go-datepicker/internal/server"
)

// setupTestApp initializes a headless Fyne app in en-US with an unstarted feed
// server.
func setupTestApp(t *testing.T) *DatePickerApp {
	t.Helper()
	a := test.NewApp()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	srv := server.NewFeedServer("0")
	srv.Clock = testClock

	app := NewDatePickerApp(a, ctx, srv)
	app.Clock = testClock
	app.LocaleOverride = "en-US"

	// Run() is skipped: load the locale and build the window by hand.
	app.UpdateLocale()
	app.buildMainWindow()
	t.Cleanup(app.Window.Close)

	return app
}

// -----------------------------------------------------------------------------
// Localization Tests
// -----------------------------------------------------------------------------

func TestLocalization_Switching(t *testing.T) {
	app := setupTestApp(t)
	app.LocaleOverride = ""

	app.Preferences.SetString(config.PrefLanguage, "en")
	app.UpdateLocale()
	assert.Equal(t, "Settings...", app.GetMsg(config.TKeyBtnSettings))

	app.Preferences.SetString(config.PrefLanguage, "fr")
	app.UpdateLocale()
	assert.Equal(t, "Paramètres...", app.GetMsg(config.TKeyBtnSettings))
	assert.Equal(t, time.Monday, app.Locale.FirstDay)
}

func TestLocalization_OverrideWins(t *testing.T) {
	app := setupTestApp(t)
	app.Preferences.SetString(config.PrefLanguage, "fr")
	app.UpdateLocale()

	assert.Equal(t, "Pick a date", app.GetMsg(config.TKeyBtnPick))
	assert.Equal(t, time.Sunday, app.Locale.FirstDay)
}

func TestLocalization_InvalidTagFallsBack(t *testing.T) {
	app := setupTestApp(t)
	app.LocaleOverride = "not a tag!"
	app.UpdateLocale()

	assert.False(t, app.Locale.IsZero())
}

func TestLocalization_Summary(t *testing.T) {
	app := setupTestApp(t)
	d := calendar.MustDate(2023, time.July, 4)

	assert.Equal(t, "Selected date: 2023-07-04", app.summary(d))

	app.LocaleOverride = "fr"
	app.UpdateLocale()
	app.Preferences.SetString(config.PrefPattern, "d MMMM yyyy")
	assert.Equal(t, "Date choisie : 4 juillet 2023", app.summary(d))
}

// -----------------------------------------------------------------------------
// Main Window
// -----------------------------------------------------------------------------

func TestMainWindow_Labels(t *testing.T) {
	app := setupTestApp(t)

	assert.Equal(t, "Selected date", app.selectedLabel.Text)
	assert.Equal(t, "Pick a date", app.pickBtn.Text)
	assert.Equal(t, "Settings...", app.settingsBtn.Text)

	app.LocaleOverride = "fr"
	app.UpdateLocale()
	app.refreshMainWindow()
	assert.Equal(t, "Choisir une date", app.pickBtn.Text)
}

func TestRestoreSelection(t *testing.T) {
	tests := []struct {
		name     string
		pref     string
		override calendar.Date
		want     calendar.Date
	}{
		{"Empty", "", calendar.Date{}, calendar.Date{}},
		{"FromPreferences", "2022-01-05", calendar.Date{}, calendar.MustDate(2022, time.January, 5)},
		{"Malformed", "05/01/2022", calendar.Date{}, calendar.Date{}},
		{"OverrideWins", "2022-01-05", june20, june20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := setupTestApp(t)
			app.Preferences.SetString(config.PrefLastDate, tt.pref)
			app.Overrides.InitialDate = tt.override

			app.restoreSelection()
			assert.Equal(t, tt.want, app.Selected)
		})
	}
}

// -----------------------------------------------------------------------------
// Picker Options
// -----------------------------------------------------------------------------

func TestPickerOptions_Preferences(t *testing.T) {
	app := setupTestApp(t)
	app.Preferences.SetInt(config.PrefMinYear, 2000)
	app.Preferences.SetInt(config.PrefMaxYear, 2030)
	app.Preferences.SetString(config.PrefPattern, "dd/MM/yyyy")
	app.Selected = june15

	opts := app.pickerOptions()
	require.NotNil(t, opts.YearRange)
	assert.Equal(t, calendar.YearRange{Min: 2000, Max: 2030}, *opts.YearRange)
	assert.Equal(t, "dd/MM/yyyy", opts.TextFieldPattern)
	assert.Equal(t, june15, opts.InitialDate)
	assert.NotNil(t, opts.OnSelectDate)
}

func TestPickerOptions_Defaults(t *testing.T) {
	app := setupTestApp(t)

	opts := app.pickerOptions()
	require.NotNil(t, opts.YearRange)
	assert.Equal(t, calendar.DefaultYearRange, *opts.YearRange)
	assert.Empty(t, opts.TextFieldPattern, "left to the picker default")
	assert.True(t, opts.InitialDate.IsZero())
}

func TestPickerOptions_OverridesWin(t *testing.T) {
	app := setupTestApp(t)
	app.Preferences.SetInt(config.PrefMinYear, 2000)
	app.Preferences.SetInt(config.PrefMaxYear, 2030)
	app.Preferences.SetString(config.PrefPattern, "dd/MM/yyyy")
	app.Overrides.YearRange = &calendar.YearRange{Min: 1990, Max: 1999}
	app.Overrides.TextFieldPattern = "yyyyMMdd"

	opts := app.pickerOptions()
	assert.Equal(t, calendar.YearRange{Min: 1990, Max: 1999}, *opts.YearRange)
	assert.Equal(t, "yyyyMMdd", opts.TextFieldPattern)
}

func TestPickerOptions_SelectionOutsideRange(t *testing.T) {
	app := setupTestApp(t)
	app.Preferences.SetInt(config.PrefMinYear, 2000)
	app.Preferences.SetInt(config.PrefMaxYear, 2030)
	app.Selected = calendar.MustDate(1950, time.March, 1)

	assert.True(t, app.pickerOptions().InitialDate.IsZero())
}

func TestPickerOptions_CommandLineDateKept(t *testing.T) {
	app := setupTestApp(t)
	app.Preferences.SetInt(config.PrefMinYear, 2000)
	app.Preferences.SetInt(config.PrefMaxYear, 2030)
	app.Overrides.InitialDate = calendar.MustDate(1950, time.March, 1)
	app.restoreSelection()

	assert.Equal(t, app.Overrides.InitialDate, app.pickerOptions().InitialDate)

	app.ShowPicker()
	assert.Nil(t, app.dialog, "a command line date outside the range is reported")

	// Once another date is confirmed the fallback applies again.
	app.Selected = calendar.MustDate(1960, time.May, 2)
	assert.True(t, app.pickerOptions().InitialDate.IsZero())
}

// -----------------------------------------------------------------------------
// Picker Session
// -----------------------------------------------------------------------------

func TestShowPicker_ConfirmPublishes(t *testing.T) {
	app := setupTestApp(t)
	app.ICSPath = filepath.Join(t.TempDir(), "date"+config.ExtICS)
	app.Selected = june15

	app.ShowPicker()
	require.NotNil(t, app.dialog)

	test.Tap(app.dialog.days[23])
	test.Tap(app.dialog.confirmBtn)

	assert.Equal(t, june20, app.Selected)
	assert.Equal(t, "Selected date: 2023-06-20", app.selectedLabel.Text)
	assert.Equal(t, "2023-06-20", app.Preferences.String(config.PrefLastDate))

	published, ok := app.Server.Published()
	require.True(t, ok)
	assert.Equal(t, june20, published)

	data, err := os.ReadFile(app.ICSPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "DTSTART;VALUE=DATE:20230620")
	assert.Contains(t, string(data), "SUMMARY:Selected date: 2023-06-20")
}

func TestShowPicker_CancelKeepsSelection(t *testing.T) {
	app := setupTestApp(t)
	app.Selected = june15

	app.ShowPicker()
	require.NotNil(t, app.dialog)
	test.Tap(app.dialog.days[23])
	test.Tap(app.dialog.cancelBtn)

	assert.Equal(t, june15, app.Selected)
	_, ok := app.Server.Published()
	assert.False(t, ok)
}

func TestShowPicker_InvalidRange(t *testing.T) {
	app := setupTestApp(t)
	app.Preferences.SetInt(config.PrefMinYear, 2030)
	app.Preferences.SetInt(config.PrefMaxYear, 2000)

	app.ShowPicker()
	assert.Nil(t, app.dialog)
}

func TestShowPicker_InvalidPattern(t *testing.T) {
	app := setupTestApp(t)
	app.Preferences.SetString(config.PrefPattern, "MMMM yyyy")

	app.ShowPicker()
	assert.Nil(t, app.dialog)
}

func TestPublish_NoServerNoFile(t *testing.T) {
	app := setupTestApp(t)
	app.Server = nil

	assert.NotPanics(t, func() { app.onSelectDate(june20) })
	assert.Equal(t, june20, app.Selected)
}
