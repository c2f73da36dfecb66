package locale

import (
	"embed"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-datepicker/internal/codec"
	"github.com/tartampluch/go-datepicker/internal/config"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// Catalog holds the translation bundle loaded from the embedded locale files.
type Catalog struct {
	Bundle    *i18n.Bundle
	Languages []string
}

// NewCatalog loads every embedded active.<lang>.json file into a bundle whose
// default language is English.
func NewCatalog() *Catalog {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc(config.LocaleUnmarshalExt, json.Unmarshal)
	cat := &Catalog{Bundle: bundle}

	entries, err := localeFS.ReadDir(config.LocaleDir)
	if err != nil {
		slog.Error(config.ErrLocalesAccess,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyError, err,
		)
		return cat
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, config.LocaleFilePrefix) || !strings.HasSuffix(name, config.LocaleFileSuffix) {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		langCode := strings.TrimSuffix(strings.TrimPrefix(name, config.LocaleFilePrefix), config.LocaleFileSuffix)
		if langCode == "" {
			slog.Warn(config.MsgLocaleBadName,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		path := config.LocaleDir + "/" + name
		if _, err := bundle.LoadMessageFileFS(localeFS, path); err != nil {
			slog.Error(config.ErrLocaleLoad,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
				config.LogKeyError, err,
			)
			continue
		}
		cat.Languages = append(cat.Languages, langCode)
		slog.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyLang, langCode,
		)
	}
	return cat
}

var defaultCatalog = sync.OnceValue(NewCatalog)

// DefaultCatalog returns the process-wide catalog, loading it on first use.
func DefaultCatalog() *Catalog {
	return defaultCatalog()
}

// Locale resolves tag against the catalog. The week start comes from the
// tag's region and the names are read once from the matching translation.
func (c *Catalog) Locale(tag language.Tag) Locale {
	loc := Locale{
		Tag:       tag,
		FirstDay:  FirstDayOfWeek(tag),
		localizer: i18n.NewLocalizer(c.Bundle, tag.String(), config.DefaultLanguage),
	}
	loc.names = loc.buildNames()
	return loc
}

// buildNames copies month and weekday names out of the localizer. Missing
// entries keep the English value.
func (l Locale) buildNames() *codec.Table {
	t := *codec.English
	widths := []struct {
		w       codec.Width
		month   string
		weekday string
	}{
		{codec.Narrow, config.TKeyMonthNarrow, config.TKeyWeekdayNarrow},
		{codec.Short, config.TKeyMonthShort, config.TKeyWeekdayShort},
		{codec.Full, config.TKeyMonthFull, config.TKeyWeekdayFull},
	}

	for _, wk := range widths {
		for m := time.January; m <= time.December; m++ {
			if s, ok := l.lookup(wk.month + strconv.Itoa(int(m))); ok {
				t.Months[wk.w][m-1] = s
			}
		}
		for iso := 1; iso <= config.DaysPerWeek; iso++ {
			if s, ok := l.lookup(wk.weekday + strconv.Itoa(iso)); ok {
				t.Weekdays[wk.w][iso%config.DaysPerWeek] = s
			}
		}
	}
	return &t
}

func (l Locale) lookup(key string) (string, bool) {
	if l.localizer == nil {
		return "", false
	}
	msg, err := l.localizer.Localize(&i18n.LocalizeConfig{MessageID: key})
	if err != nil || msg == "" {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, key,
			config.LogKeyError, err,
		)
		return "", false
	}
	return msg, true
}
