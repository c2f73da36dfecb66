package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"fyne.io/fyne/v2/app"
	"github.com/tartampluch/go-datepicker/internal/calendar"
	"github.com/tartampluch/go-datepicker/internal/codec"
	"github.com/tartampluch/go-datepicker/internal/config"
	"github.com/tartampluch/go-datepicker/internal/interchange"
	"github.com/tartampluch/go-datepicker/internal/locale"
	"github.com/tartampluch/go-datepicker/internal/picker"
	"github.com/tartampluch/go-datepicker/internal/server"
	"github.com/tartampluch/go-datepicker/internal/ui"
)

// cliOptions holds the parsed command line.
type cliOptions struct {
	version bool
	debug   bool
	locale  string
	date    string
	minYear int
	maxYear int
	pattern string
	serve   string
	seedVCF string
	icsOut  string
}

// main is the application entry point.
// It delegates execution to runMain to ensure that deferred function calls
// (like closing log files) are executed before the process terminates.
func main() {
	os.Exit(runMain(os.Args[1:]))
}

// runMain manages the application lifecycle, argument parsing, and exit codes.
func runMain(args []string) int {
	// -------------------------------------------------------------------------
	// 1. CLI Argument Parsing
	// -------------------------------------------------------------------------
	cli, err := parseFlags(args)
	if err != nil {
		return config.ExitCodeError
	}

	if cli.version {
		printVersion()
		return config.ExitCodeSuccess
	}

	// -------------------------------------------------------------------------
	// 2. Logging Initialization
	// -------------------------------------------------------------------------
	logCloser := setupLogging(cli.debug)
	if logCloser != nil {
		defer func() {
			_ = logCloser.Close() // Best effort close
		}()
	}

	// -------------------------------------------------------------------------
	// 3. Context & Signal Handling
	// -------------------------------------------------------------------------
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logStartupInfo()

	// -------------------------------------------------------------------------
	// 4. Application Logic
	// -------------------------------------------------------------------------
	if err := run(ctx, cli); err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		return config.ExitCodeError
	}

	slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return config.ExitCodeSuccess
}

// parseFlags reads args into cliOptions. Usage is printed on error.
func parseFlags(args []string) (cliOptions, error) {
	var cli cliOptions
	fs := flag.NewFlagSet(config.AppName, flag.ContinueOnError)
	fs.BoolVar(&cli.version, config.FlagVersion, false, config.FlagDescVer)
	fs.BoolVar(&cli.debug, config.FlagDebug, false, config.FlagDescDbg)
	fs.StringVar(&cli.locale, config.FlagLocale, "", config.FlagDescLoc)
	fs.StringVar(&cli.date, config.FlagDate, "", config.FlagDescDate)
	fs.IntVar(&cli.minYear, config.FlagMinYear, 0, config.FlagDescMin)
	fs.IntVar(&cli.maxYear, config.FlagMaxYear, 0, config.FlagDescMax)
	fs.StringVar(&cli.pattern, config.FlagPattern, "", config.FlagDescPat)
	fs.StringVar(&cli.serve, config.FlagServe, "", config.FlagDescSrv)
	fs.StringVar(&cli.seedVCF, config.FlagSeedVCF, "", config.FlagDescSeed)
	fs.StringVar(&cli.icsOut, config.FlagICSOut, "", config.FlagDescICS)
	err := fs.Parse(args)
	return cli, err
}

// run initializes the Fyne application, wires dependencies, and starts the UI loop.
func run(ctx context.Context, cli cliOptions) error {
	overrides, err := buildOverrides(cli, calendar.Today(calendar.RealClock{}))
	if err != nil {
		return err
	}

	a := app.NewWithID(config.AppID)
	a.Preferences().SetString(config.PrefLastRun, config.Version)

	// The feed runs only when a port is given on the command line or saved.
	var srv *server.FeedServer
	port := cli.serve
	if port == "" {
		port = a.Preferences().String(config.PrefServerPort)
	}
	if port != "" {
		srv = server.NewFeedServer(port)
	}

	gui := ui.NewDatePickerApp(a, ctx, srv)
	gui.Overrides = overrides
	gui.LocaleOverride = cli.locale
	gui.ICSPath = cli.icsOut

	// Blocks until the main window closes or ctx is cancelled.
	gui.Run()
	return nil
}

// buildOverrides validates the picker-related flags. An explicit -date wins
// over a -seed-vcf birthday; either must fall in the flag range, or in the
// default range when no year flag is given.
func buildOverrides(cli cliOptions, today calendar.Date) (picker.Options, error) {
	var o picker.Options

	if cli.locale != "" {
		if _, err := locale.Parse(cli.locale); err != nil {
			return o, err
		}
	}

	if cli.minYear != 0 || cli.maxYear != 0 {
		minYear, maxYear := cli.minYear, cli.maxYear
		if minYear == 0 {
			minYear = config.DefaultMinYear
		}
		if maxYear == 0 {
			maxYear = config.DefaultMaxYear
		}
		r, err := calendar.NewYearRange(minYear, maxYear)
		if err != nil {
			return o, err
		}
		o.YearRange = &r
	}

	if cli.pattern != "" {
		if err := codec.ValidateParsable(cli.pattern); err != nil {
			return o, err
		}
		o.TextFieldPattern = cli.pattern
	}

	switch {
	case cli.date != "":
		d, err := codec.Parse(cli.date, config.DefaultTextFieldPattern, nil)
		if err != nil {
			return o, err
		}
		o.InitialDate = d
	case cli.seedVCF != "":
		d, err := seedFromFile(cli.seedVCF, today)
		if err != nil {
			return o, err
		}
		o.InitialDate = d
	}

	if !o.InitialDate.IsZero() {
		years := calendar.DefaultYearRange
		if o.YearRange != nil {
			years = *o.YearRange
		}
		if err := calendar.CheckYear(o.InitialDate.Year, years); err != nil {
			return o, err
		}
	}
	return o, nil
}

// seedFromFile reads the first birthday of a .vcf file.
func seedFromFile(path string, today calendar.Date) (calendar.Date, error) {
	f, err := os.Open(path)
	if err != nil {
		return calendar.Date{}, fmt.Errorf("%s: %w", config.ErrSeed, err)
	}
	defer f.Close()

	d, err := interchange.SeedDate(f, today)
	if err != nil {
		return calendar.Date{}, fmt.Errorf("%s: %w", config.ErrSeed, err)
	}
	return d, nil
}

// printVersion outputs the build information to stdout.
func printVersion() {
	fmt.Printf(config.MsgVersionOutput,
		config.AppName,
		config.Version,
		runtime.GOOS,
		runtime.GOARCH,
	)
}

// logStartupInfo logs environment details useful for debugging.
func logStartupInfo() {
	slog.Info(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyCommit, config.Commit),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
		),
	)
}

// setupLogging configures the default slog logger: JSON to stdout and to a
// log file in the user's cache directory when one can be opened.
func setupLogging(debugMode bool) io.Closer {
	writers := []io.Writer{os.Stdout}
	var logFile *os.File

	if logPath, err := getLogFilePath(); err == nil {
		// O_TRUNC resets logs on restart to prevent indefinite growth.
		f, err := os.OpenFile(logPath, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, config.FilePermUserRW)
		if err == nil {
			writers = append(writers, f)
			logFile = f
		} else {
			fmt.Fprintf(os.Stderr, config.MsgLogWarning, config.ErrLogFile, logPath, err)
		}
	}

	level := slog.LevelInfo
	if debugMode {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: debugMode,
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(io.MultiWriter(writers...), opts)))

	if logFile == nil {
		return nil
	}
	return logFile
}

// getLogFilePath determines the platform-specific cache directory for logs.
func getLogFilePath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCacheDir, err)
	}

	appDir := filepath.Join(cacheDir, config.AppID)
	if err := os.MkdirAll(appDir, config.DirPermUserRWX); err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}

	return filepath.Join(appDir, config.LogFileName), nil
}
