package ui

import (
	"log/slog"

	"github.com/tartampluch/go-datepicker/internal/config"
	"github.com/tartampluch/go-datepicker/internal/locale"
)

// UpdateLocale resolves the display locale: the command line tag first, then
// the language preference, then the system locale.
func (app *DatePickerApp) UpdateLocale() {
	lang := app.LocaleOverride
	if lang == "" {
		lang = app.Preferences.String(config.PrefLanguage)
	}

	loc, err := locale.Resolve(lang)
	if err != nil {
		slog.Warn(config.MsgLocaleFallbk,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyLang, lang,
			config.LogKeyError, err,
		)
		loc, _ = locale.Resolve("")
	}
	app.Locale = loc

	slog.Debug(config.MsgLocaleApplied,
		config.LogKeyComponent, config.CompI18n,
		config.LogKeyLocale, loc.Tag.String(),
	)
}

// GetMsg is a helper to translate a key safely.
func (app *DatePickerApp) GetMsg(key string) string {
	return app.Locale.Msg(key)
}
