package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-datepicker/internal/calendar"
	"github.com/tartampluch/go-datepicker/internal/codec"
	"github.com/tartampluch/go-datepicker/internal/config"
)

var today = calendar.MustDate(2023, time.June, 15)

func TestParseFlags(t *testing.T) {
	cli, err := parseFlags([]string{
		"-locale", "fr-CA",
		"-date", "2023-07-04",
		"-min-year", "2000",
		"-max-year", "2030",
		"-pattern", "dd/MM/yyyy",
		"-serve", "18099",
		"-ics", "out.ics",
		"-debug",
	})
	require.NoError(t, err)

	assert.Equal(t, "fr-CA", cli.locale)
	assert.Equal(t, "2023-07-04", cli.date)
	assert.Equal(t, 2000, cli.minYear)
	assert.Equal(t, 2030, cli.maxYear)
	assert.Equal(t, "dd/MM/yyyy", cli.pattern)
	assert.Equal(t, "18099", cli.serve)
	assert.Equal(t, "out.ics", cli.icsOut)
	assert.True(t, cli.debug)
	assert.False(t, cli.version)
}

func TestParseFlags_Unknown(t *testing.T) {
	_, err := parseFlags([]string{"-nope"})
	assert.Error(t, err)
	assert.Equal(t, config.ExitCodeError, runMain([]string{"-nope"}))
}

func TestBuildOverrides(t *testing.T) {
	o, err := buildOverrides(cliOptions{
		date:    "2023-07-04",
		minYear: 2000,
		pattern: "dd.MM.yyyy",
	}, today)
	require.NoError(t, err)

	assert.Equal(t, calendar.MustDate(2023, time.July, 4), o.InitialDate)
	require.NotNil(t, o.YearRange)
	assert.Equal(t, calendar.YearRange{Min: 2000, Max: config.DefaultMaxYear}, *o.YearRange)
	assert.Equal(t, "dd.MM.yyyy", o.TextFieldPattern)
}

func TestBuildOverrides_Empty(t *testing.T) {
	o, err := buildOverrides(cliOptions{}, today)
	require.NoError(t, err)

	assert.True(t, o.InitialDate.IsZero())
	assert.Nil(t, o.YearRange)
	assert.Empty(t, o.TextFieldPattern)
}

func TestBuildOverrides_Errors(t *testing.T) {
	tests := []struct {
		name string
		cli  cliOptions
	}{
		{"BadLocale", cliOptions{locale: "not a tag!"}},
		{"InvertedRange", cliOptions{minYear: 2030, maxYear: 2000}},
		{"PatternWithoutYear", cliOptions{pattern: "dd/MM"}},
		{"BadDate", cliOptions{date: "2023-02-29"}},
		{"DateOutsideRange", cliOptions{date: "1999-12-31", minYear: 2000, maxYear: 2030}},
		{"DateOutsideDefaultRange", cliOptions{date: "1850-01-01"}},
		{"DateAfterDefaultRange", cliOptions{date: "2101-01-01"}},
		{"MissingVCF", cliOptions{seedVCF: filepath.Join(t.TempDir(), "missing.vcf")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildOverrides(tt.cli, today)
			assert.Error(t, err)
		})
	}
}

func TestBuildOverrides_DateIsParseError(t *testing.T) {
	_, err := buildOverrides(cliOptions{date: "07/04/2023"}, today)
	assert.ErrorIs(t, err, codec.ErrParse)
}

func TestBuildOverrides_SeedVCF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.vcf")
	vcf := "BEGIN:VCARD\r\nVERSION:4.0\r\nFN:Ada\r\nBDAY:--0229\r\nEND:VCARD\r\n"
	require.NoError(t, os.WriteFile(path, []byte(vcf), config.FilePermUserRW))

	o, err := buildOverrides(cliOptions{seedVCF: path}, today)
	require.NoError(t, err)
	assert.Equal(t, calendar.MustDate(2023, time.February, 28), o.InitialDate)

	o, err = buildOverrides(cliOptions{seedVCF: path, date: "2023-07-04"}, today)
	require.NoError(t, err)
	assert.Equal(t, calendar.MustDate(2023, time.July, 4), o.InitialDate, "-date wins")
}

func TestBuildOverrides_DateOutsideDefaultRange(t *testing.T) {
	_, err := buildOverrides(cliOptions{date: "1850-01-01"}, today)
	assert.ErrorIs(t, err, calendar.ErrOutOfRange)

	o, err := buildOverrides(cliOptions{date: "1850-01-01", minYear: 1800}, today)
	require.NoError(t, err)
	assert.Equal(t, calendar.MustDate(1850, time.January, 1), o.InitialDate)
}

func TestBuildOverrides_SeedVCFOutsideRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.vcf")
	vcf := "BEGIN:VCARD\r\nVERSION:4.0\r\nFN:Old\r\nBDAY:18500101\r\nEND:VCARD\r\n"
	require.NoError(t, os.WriteFile(path, []byte(vcf), config.FilePermUserRW))

	_, err := buildOverrides(cliOptions{seedVCF: path}, today)
	assert.ErrorIs(t, err, calendar.ErrOutOfRange)
}

func TestGetLogFilePath(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	path, err := getLogFilePath()
	require.NoError(t, err)
	assert.Equal(t, config.LogFileName, filepath.Base(path))
	assert.Equal(t, config.AppID, filepath.Base(filepath.Dir(path)))
}
