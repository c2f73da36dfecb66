package ui

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-datepicker/internal/codec"
	"github.com/tartampluch/go-datepicker/internal/config"
)

// settingsWidgets holds references to UI elements to simplify data retrieval during save.
type settingsWidgets struct {
	langSelect   *widget.Select
	entryMinYear *NumericalEntry
	entryMaxYear *NumericalEntry
	entryPattern *widget.Entry
	entryPort    *NumericalEntry
}

// ShowSettingsWindow displays the preferences window, or focuses it when it
// is already open.
func (app *DatePickerApp) ShowSettingsWindow() {
	if app.settingsWindow != nil {
		slog.Debug(config.MsgSettingsFocus, config.LogKeyComponent, config.CompUISet)
		app.settingsWindow.RequestFocus()
		return
	}

	slog.Info(config.MsgSettingsOpen, config.LogKeyComponent, config.CompUISet)
	w := app.App.NewWindow(app.GetMsg(config.TKeyWinSettings))
	app.settingsWindow = w

	sw := app.buildSettingsWidgets()

	// --- General ---
	itemLang := widget.NewFormItem(app.GetMsg(config.TKeyLblLanguage), sw.langSelect)
	itemLang.HintText = app.GetMsg(config.TKeyHelpLanguage)
	itemMin := widget.NewFormItem(app.GetMsg(config.TKeyLblMinYear), sw.entryMinYear)
	itemMax := widget.NewFormItem(app.GetMsg(config.TKeyLblMaxYear), sw.entryMaxYear)
	itemPattern := widget.NewFormItem(app.GetMsg(config.TKeyLblPattern), sw.entryPattern)
	itemPattern.HintText = app.GetMsg(config.TKeyHelpPattern)
	itemPort := widget.NewFormItem(app.GetMsg(config.TKeyLblPort), sw.entryPort)
	itemPort.HintText = app.GetMsg(config.TKeyHelpPort)

	generalForm := widget.NewForm(itemLang, itemMin, itemMax, itemPattern, itemPort)
	generalCard := widget.NewCard(app.GetMsg(config.TKeyLblGeneral), "", generalForm)

	// --- Actions ---
	saveAction := func() {
		if err := app.validateSettings(sw); err != nil {
			dialog.ShowError(err, w)
			return
		}
		app.saveSettings(sw, w)
	}

	btnSave := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnSave), theme.DocumentSaveIcon(), saveAction)
	btnSave.Importance = widget.HighImportance
	btnCancel := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnCancel), theme.CancelIcon(), func() { w.Close() })

	// --- Footer ---
	footerLabel := widget.NewLabel(fmt.Sprintf(app.GetMsg(config.TKeyLblFooter), config.Version))
	footerLabel.Alignment = fyne.TextAlignCenter
	footerLabel.TextStyle = fyne.TextStyle{Italic: true}

	paddedContent := container.NewPadded(container.NewVBox(
		generalCard,
		container.NewGridWithColumns(config.LayoutButtonsCols, btnCancel, btnSave),
		footerLabel,
	))

	w.SetContent(paddedContent)
	w.Resize(fyne.NewSize(config.SettingsWindowWidth, paddedContent.MinSize().Height))
	w.SetFixedSize(true)
	w.SetOnClosed(func() { app.settingsWindow = nil })
	w.Show()
}

// buildSettingsWidgets creates the form fields, pre-filled from preferences.
func (app *DatePickerApp) buildSettingsWidgets() *settingsWidgets {
	sw := &settingsWidgets{}

	// The first option follows the system locale and is stored as "".
	options := append([]string{app.GetMsg(config.TKeyLangSystem)}, config.SupportedLanguages...)
	sw.langSelect = widget.NewSelect(options, nil)
	if lang := app.Preferences.String(config.PrefLanguage); lang != "" {
		sw.langSelect.SetSelected(lang)
	} else {
		sw.langSelect.SetSelectedIndex(0)
	}

	yearValidator := func(s string) error {
		if len(s) != config.YearDigits {
			return errors.New(app.GetMsg(config.TKeyErrYear))
		}
		return nil
	}

	sw.entryMinYear = NewNumericalEntry(config.YearDigits)
	sw.entryMinYear.SetText(strconv.Itoa(app.Preferences.IntWithFallback(config.PrefMinYear, config.DefaultMinYear)))
	sw.entryMinYear.Validator = yearValidator

	sw.entryMaxYear = NewNumericalEntry(config.YearDigits)
	sw.entryMaxYear.SetText(strconv.Itoa(app.Preferences.IntWithFallback(config.PrefMaxYear, config.DefaultMaxYear)))
	sw.entryMaxYear.Validator = yearValidator

	sw.entryPattern = widget.NewEntry()
	sw.entryPattern.SetText(app.Preferences.StringWithFallback(config.PrefPattern, config.DefaultTextFieldPattern))
	sw.entryPattern.Validator = func(s string) error {
		if err := codec.ValidateParsable(s); err != nil {
			return errors.New(app.GetMsg(config.TKeyErrPattern))
		}
		return nil
	}

	// Port: optional, but a value must be in range.
	sw.entryPort = NewNumericalEntry(config.PortDigits)
	sw.entryPort.SetText(app.Preferences.String(config.PrefServerPort))
	sw.entryPort.Validator = func(s string) error {
		if s == "" {
			return nil
		}
		port, err := strconv.Atoi(s)
		if err != nil {
			return errors.New(app.GetMsg(config.TKeyErrPortNum))
		}
		if port < config.MinPort || port > config.MaxPort {
			return errors.New(app.GetMsg(config.TKeyErrPortRange))
		}
		return nil
	}

	return sw
}

// validateSettings runs the field validators, then checks the year order.
func (app *DatePickerApp) validateSettings(sw *settingsWidgets) error {
	for _, v := range []fyne.Validatable{sw.entryMinYear, sw.entryMaxYear, sw.entryPattern, sw.entryPort} {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	minYear, _ := strconv.Atoi(sw.entryMinYear.Text)
	maxYear, _ := strconv.Atoi(sw.entryMaxYear.Text)
	if minYear > maxYear {
		return errors.New(app.GetMsg(config.TKeyErrYearOrder))
	}
	return nil
}

// saveSettings persists validated values and applies the language at once.
// Range and pattern take effect on the next picker session, the port on the
// next start.
func (app *DatePickerApp) saveSettings(sw *settingsWidgets, w fyne.Window) {
	slog.Info(config.MsgSettingsSave, config.LogKeyComponent, config.CompUISet)

	lang := sw.langSelect.Selected
	if sw.langSelect.SelectedIndex() == 0 {
		lang = ""
	}
	app.Preferences.SetString(config.PrefLanguage, lang)

	if v, err := strconv.Atoi(sw.entryMinYear.Text); err == nil {
		app.Preferences.SetInt(config.PrefMinYear, v)
	}
	if v, err := strconv.Atoi(sw.entryMaxYear.Text); err == nil {
		app.Preferences.SetInt(config.PrefMaxYear, v)
	}
	app.Preferences.SetString(config.PrefPattern, sw.entryPattern.Text)
	app.Preferences.SetString(config.PrefServerPort, sw.entryPort.Text)

	app.UpdateLocale()
	app.refreshMainWindow()

	w.Close()
}
