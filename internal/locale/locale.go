// Package locale resolves the host locale: BCP 47 parsing, system locale
// detection, the first day of the week and translated names and labels.
package locale

import (
	"fmt"
	"log/slog"
	"time"

	golocale "github.com/jeandeaual/go-locale"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-datepicker/internal/codec"
	"github.com/tartampluch/go-datepicker/internal/config"
	"golang.org/x/text/language"
)

// Locale is a resolved locale. It is immutable once built by Catalog.Locale.
type Locale struct {
	Tag      language.Tag
	FirstDay time.Weekday

	localizer *i18n.Localizer
	names     *codec.Table
}

// Names returns the month and weekday names of the locale.
func (l Locale) Names() codec.Names {
	if l.names == nil {
		return codec.English
	}
	return l.names
}

// Msg translates key, returning the key itself when it is missing.
func (l Locale) Msg(key string) string {
	if msg, ok := l.lookup(key); ok {
		return msg
	}
	return key
}

// MsgOr translates key, returning fallback when it is missing.
func (l Locale) MsgOr(key, fallback string) string {
	if msg, ok := l.lookup(key); ok {
		return msg
	}
	return fallback
}

// MsgWith translates a templated message.
func (l Locale) MsgWith(key string, data map[string]any) (string, error) {
	if l.localizer == nil {
		return "", fmt.Errorf("%s: %s", config.ErrLocaleLoad, key)
	}
	return l.localizer.Localize(&i18n.LocalizeConfig{MessageID: key, TemplateData: data})
}

// Parse parses a BCP 47 tag such as "en-US" or "fr".
func Parse(s string) (language.Tag, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, fmt.Errorf("%s: %w", config.ErrLocaleParse, err)
	}
	return tag, nil
}

// System returns the operating system's locale, or English when it cannot
// be detected or parsed.
func System() language.Tag {
	raw, err := golocale.GetLocale()
	if err != nil {
		slog.Debug(config.MsgLocaleFallbk,
			config.LogKeyComponent, config.CompLocale,
			config.LogKeyError, fmt.Errorf("%s: %w", config.ErrSystemLocale, err),
		)
		return language.English
	}
	tag, err := Parse(raw)
	if err != nil {
		slog.Debug(config.MsgLocaleFallbk,
			config.LogKeyComponent, config.CompLocale,
			config.LogKeyValue, raw,
			config.LogKeyError, err,
		)
		return language.English
	}
	return tag
}

// Resolve parses s with the default catalog, using the system locale when s
// is empty.
func Resolve(s string) (Locale, error) {
	if s == "" {
		return DefaultCatalog().Locale(System()), nil
	}
	tag, err := Parse(s)
	if err != nil {
		return Locale{}, err
	}
	return DefaultCatalog().Locale(tag), nil
}

// Sunday- and Saturday-first regions from CLDR weekData; every other region
// starts the week on Monday.
var (
	sundayFirst = map[string]bool{
		"AG": true, "AS": true, "BD": true, "BR": true, "BS": true, "BT": true, "BW": true,
		"BZ": true, "CA": true, "CN": true, "CO": true, "DM": true, "DO": true, "ET": true,
		"GT": true, "GU": true, "HK": true, "HN": true, "ID": true, "IL": true, "IN": true,
		"JM": true, "JP": true, "KE": true, "KH": true, "KR": true, "LA": true, "MH": true,
		"MM": true, "MO": true, "MT": true, "MX": true, "MZ": true, "NI": true, "NP": true,
		"PA": true, "PE": true, "PH": true, "PK": true, "PR": true, "PT": true, "PY": true,
		"SA": true, "SG": true, "SV": true, "TH": true, "TT": true, "TW": true, "UM": true,
		"US": true, "VE": true, "VI": true, "WS": true, "YE": true, "ZA": true, "ZW": true,
	}
	saturdayFirst = map[string]bool{
		"AE": true, "AF": true, "BH": true, "DJ": true, "DZ": true, "EG": true, "IQ": true,
		"IR": true, "JO": true, "KW": true, "LY": true, "OM": true, "QA": true, "SD": true,
		"SY": true,
	}
)

// FirstDayOfWeek returns the week start for the tag's region. A tag without
// an explicit region uses the most likely one ("en" resolves to US).
func FirstDayOfWeek(tag language.Tag) time.Weekday {
	region, _ := tag.Region()
	switch code := region.String(); {
	case sundayFirst[code]:
		return time.Sunday
	case saturdayFirst[code]:
		return time.Saturday
	case code == "MV":
		return time.Friday
	default:
		return time.Monday
	}
}

// IsZero reports whether l was never resolved through a Catalog.
func (l Locale) IsZero() bool {
	return l.localizer == nil && l.names == nil
}
