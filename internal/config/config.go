package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// ProductID identifies the application in exported calendar documents.
var ProductID = "-//Go DatePicker//" + Version + "//EN"

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName           = "Go DatePicker"
	AppID             = "com.github.tartampluch.go-datepicker"
	LocalhostBindAddr = "127.0.0.1"
	LogFileName       = "app.log"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion  = "version"
	FlagDebug    = "debug"
	FlagLocale   = "locale"
	FlagDate     = "date"
	FlagMinYear  = "min-year"
	FlagMaxYear  = "max-year"
	FlagPattern  = "pattern"
	FlagServe    = "serve"
	FlagSeedVCF  = "seed-vcf"
	FlagICSOut   = "ics"
	FlagDescVer  = "Show application version and exit"
	FlagDescDbg  = "Enable debug logging to stdout"
	FlagDescLoc  = "BCP 47 locale tag (default: system locale)"
	FlagDescDate = "Initial date in yyyy-MM-dd (default: today)"
	FlagDescMin  = "First selectable year"
	FlagDescMax  = "Last selectable year"
	FlagDescPat  = "Text field date pattern"
	FlagDescSrv  = "Serve the confirmed date as an iCalendar feed on this port (empty disables)"
	FlagDescSeed = "vCard file whose first BDAY seeds the initial date"
	FlagDescICS  = "Write the confirmed date to this .ics file"

	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// Picker Defaults
// -----------------------------------------------------------------------------

const (
	DefaultMinYear = 1900
	DefaultMaxYear = 2100

	DefaultTitlePattern      = "EEE, MMM d"
	DefaultYearPickerPattern = "MMMM yyyy"
	DefaultTextFieldPattern  = "yyyy-MM-dd"

	DefaultLabelText   = "Date"
	DefaultErrorText   = "Invalid format.\nUse: yyyy-mm-dd"
	DefaultCancelText  = "Cancel"
	DefaultConfirmText = "OK"

	DefaultLanguage = "en"

	// MonthsPerYear is the page stride of the month pager.
	MonthsPerYear = 12
	DaysPerWeek   = 7

	// MonthGridSlots covers a 31 day month starting on the last column.
	MonthGridSlots  = 42
	YearGridColumns = 3

	// TwoDigitYearBase anchors "yy" patterns, matching the 2000-2099 window.
	TwoDigitYearBase = 2000
	DefaultLeapYear  = 2000
)

// SupportedLanguages lists the embedded catalogs (ISO 639-1).
var SupportedLanguages = []string{"en", "fr"}

// -----------------------------------------------------------------------------
// UI Layout Constants
// -----------------------------------------------------------------------------

const (
	MainWindowWidth     = 420
	MainWindowHeight    = 640
	SettingsWindowWidth = 420
	DialogMinWidth      = 320
	YearGridHeight      = 280
	YearGridHeightSm    = 210
	CompactHeight       = 560
	LayoutButtonsCols   = 2
	DateFormatDisplay   = "2006-01-02"
)

// -----------------------------------------------------------------------------
// Preferences Keys (fyne.Preferences)
// -----------------------------------------------------------------------------

const (
	PrefLanguage   = "language"
	PrefMinYear    = "min_year"
	PrefMaxYear    = "max_year"
	PrefPattern    = "text_pattern"
	PrefServerPort = "server_port"
	PrefLastRun    = "last_run_version"
	PrefLastDate   = "last_confirmed_date"

	MinPort    = 1
	MaxPort    = 65535
	PortDigits = 5
	YearDigits = 4
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWinTitle     = "win_title"
	TKeyBtnPick      = "btn_pick"
	TKeyLblSelected  = "lbl_selected"
	TKeyLblDate      = "lbl_date"
	TKeyErrFormat    = "err_invalid_format"
	TKeyBtnCancel    = "btn_cancel"
	TKeyBtnConfirm   = "btn_confirm"
	TKeyDialogTitle  = "dialog_title"
	TKeyEventSummary = "event_summary" // Requires Date

	// Settings window
	TKeyBtnSettings  = "btn_settings"
	TKeyWinSettings  = "win_settings"
	TKeyLblGeneral   = "lbl_general"
	TKeyLblLanguage  = "lbl_language"
	TKeyHelpLanguage = "help_language"
	TKeyLangSystem   = "lang_system"
	TKeyLblMinYear   = "lbl_min_year"
	TKeyLblMaxYear   = "lbl_max_year"
	TKeyLblPattern   = "lbl_pattern"
	TKeyHelpPattern  = "help_pattern"
	TKeyLblPort      = "lbl_port"
	TKeyHelpPort     = "help_port"
	TKeyBtnSave      = "btn_save"
	TKeyLblFooter    = "lbl_footer" // Requires %s
	TKeyErrYear      = "err_year"
	TKeyErrYearOrder = "err_year_order"
	TKeyErrPattern   = "err_pattern"
	TKeyErrPortNum   = "err_port_num"
	TKeyErrPortRange = "err_port_range"

	// Name keys are suffixed with the month (1-12) or ISO weekday (1-7).
	TKeyMonthFull      = "month_full_"
	TKeyMonthShort     = "month_short_"
	TKeyMonthNarrow    = "month_narrow_"
	TKeyWeekdayFull    = "weekday_full_"
	TKeyWeekdayShort   = "weekday_short_"
	TKeyWeekdayNarrow  = "weekday_narrow_"
	LocaleFilePrefix   = "active."
	LocaleFileSuffix   = ".json"
	LocaleDir          = "locales"
	LocaleUnmarshalExt = "json"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	ICalVersion = "2.0"
	ICalCalName = "Selected date"
	ICalMethod  = "PUBLISH"
	ICalScale   = "GREGORIAN"
	ICalDomain  = "godatepicker"

	PropUID        = "UID"
	PropSummary    = "SUMMARY"
	PropDTStart    = "DTSTART"
	PropDTStamp    = "DTSTAMP"
	PropVersion    = "VERSION"
	PropProdid     = "PRODID"
	PropXWRCalName = "X-WR-CALNAME"
	PropCalScale   = "CALSCALE"
	PropMethod     = "METHOD"

	VCardBDAY = "BDAY"

	FormatUID       = "%04d%02d%02d@%s"
	FallbackSummary = "Selected date: %s"
	ExtICS          = ".ics"

	// vCard BDAY layouts (RFC 6350 section 4.3.1)
	DateFormatFullDash  = "2006-01-02"
	DateFormatFullBasic = "20060102"
	DateFormatRFC3339   = time.RFC3339
	DateFormatFullT     = "20060102T150405Z"
	DateFormatNoYearD   = "--01-02"
	DateFormatNoYearB   = "--0102"
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	ShutdownTimeout    = 5 * time.Second
	ServerReadTimeout  = 10 * time.Second
	ServerWriteTimeout = 30 * time.Second
	ServerIdleTimeout  = 60 * time.Second
	RetryAfterSeconds  = "10"
	AllowedMethods     = "GET, HEAD"
	RouteRoot          = "/"
	RouteDate          = "/date"
	AddrSeparator      = ":"
)

// -----------------------------------------------------------------------------
// HTTP Headers & MIME Types
// -----------------------------------------------------------------------------

const (
	HeaderContentType     = "Content-Type"
	HeaderCacheControl    = "Cache-Control"
	HeaderETag            = "ETag"
	HeaderLastModified    = "Last-Modified"
	HeaderRetryAfter      = "Retry-After"
	HeaderAllow           = "Allow"
	HeaderXContentType    = "X-Content-Type-Options"
	HeaderIfNoneMatch     = "If-None-Match"
	HeaderIfModifiedSince = "If-Modified-Since"

	MimeTextCalendar    = "text/calendar; charset=utf-8"
	MimeTextPlain       = "text/plain; charset=utf-8"
	MimeNoSniff         = "nosniff"
	CacheControlPrivate = "private, no-cache"

	// FormatETag expects a string argument.
	FormatETag = `"%s"`
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrInvalidDate       = "invalid calendar date"
	ErrInvalidRange      = "invalid year range"
	ErrOutOfRange        = "year outside configured range"
	ErrParse             = "unable to parse date"
	ErrPattern           = "invalid date pattern"
	ErrPatternIncomplete = "pattern lacks year, month or day"
	ErrInvalidTransition = "transition not valid in current mode"
	ErrSessionClosed     = "picker session already closed"
	ErrLocaleParse       = "failed to parse locale tag"
	ErrSystemLocale      = "could not detect system locale"
	ErrServerStartup     = "server startup failed"
	ErrServerShutdown    = "server shutdown failed"
	ErrPortRequired      = "server port is required"
	ErrICalEncode        = "failed to encode iCalendar data"
	ErrVCardParse        = "failed to parse vCard stream"
	ErrNoBirthday        = "no BDAY property found"
	ErrLogFile           = "failed to open log file"
	ErrCacheDir          = "could not determine user cache dir"
	ErrCreateDir         = "could not create app cache dir"
	ErrAppFailed         = "application failed unexpectedly"
	ErrWriteResp         = "failed to write response body"
	ErrWriteICS          = "failed to write iCalendar file"
	ErrLocalesAccess     = "failed to access embedded locales"
	ErrLocaleLoad        = "failed to load locale file"
	ErrSeed              = "failed to seed initial date"
	ErrInvalidSlot       = "grid slot index out of bounds"
	ErrDateParse         = "unrecognized date format"
)

// Parse failure reasons, reported inside codec.ParseError.
const (
	ReasonEmpty     = "empty input"
	ReasonExpected  = "expected %q"
	ReasonDigits    = "expected digits for %s"
	ReasonName      = "unknown %s name"
	ReasonRange     = "%s out of range"
	ReasonTrailing  = "unexpected trailing text"
	ReasonWeekday   = "weekday does not match date"
	ReasonConflict  = "conflicting %s values"
	ReasonYearRange = "year outside selectable range"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting   = "Starting application"
	MsgAppStop       = "Application stopped gracefully"
	MsgCtxCancel     = "Context cancelled, shutting down UI"
	MsgLogWarning    = "Warning: %s at %s: %v\n"
	MsgPickerOpen    = "Picker session opened"
	MsgModeChange    = "Picker mode changed"
	MsgPageChange    = "Picker page changed"
	MsgSelection     = "Tentative selection changed"
	MsgTextInvalid   = "Text entry rejected"
	MsgConfirmed     = "Date confirmed"
	MsgCancelled     = "Picker cancelled"
	MsgDialogShown   = "Showing date picker dialog"
	MsgSettingsOpen  = "Opening settings window"
	MsgSettingsFocus = "Settings window already open, requesting focus"
	MsgSettingsSave  = "Saving preferences"
	MsgPublishFail   = "Failed to publish confirmed date"
	MsgPickerFail    = "Failed to open date picker"
	MsgActionIgnored = "Picker action ignored"
	MsgLocaleApplied = "Locale applied"
	MsgPortBusy      = "Port %s is busy or unavailable."
	MsgServerListen  = "HTTP server listening"
	MsgServerStop    = "Shutting down HTTP server..."
	MsgFeedUpdated   = "Feed document updated"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleBadName = "Skipping malformed locale filename"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgTransMissing  = "Missing translation key"
	MsgLocaleFallbk  = "Falling back to default locale"
	MsgSkippedCard   = "Skipping malformed vCard"
	MsgSkippedDate   = "Skipping invalid date format"
	MsgSeeded        = "Initial date seeded from vCard"
	MsgICSWritten    = "iCalendar file written"

	TitleStartupError = AppName + " - Startup Error"

	HTTPMsgInitializing = "No date confirmed yet, please try again shortly."
	HTTPMsgMethodNotAll = "Method Not Allowed"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyPort      = "port"
	LogKeyMode      = "mode"
	LogKeyOld       = "old"
	LogKeyNew       = "new"
	LogKeyPage      = "page"
	LogKeyDate      = "date"
	LogKeyText      = "text"
	LogKeyLocale    = "locale"
	LogKeyRange     = "year_range"
	LogKeySizeBytes = "size_bytes"
	LogKeyETag      = "etag"
	LogKeyValue     = "value"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyCommit  = "commit"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompUI      = "ui"
	CompUISet   = "ui_settings"
	CompPicker  = "picker"
	CompServer  = "server"
	CompMain    = "main"
	CompI18n    = "i18n"
	CompLocale  = "locale"
	CompInterop = "interchange"
)
