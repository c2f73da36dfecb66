package config_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-datepicker/internal/config"
)

// TestConstants_Integrity ensures critical constants are not empty or malformed.
// This prevents accidental deletion of keys required for runtime or UI logic.
func TestConstants_Integrity(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"AppName", config.AppName},
		{"AppID", config.AppID},
		{"Version", config.Version},
		{"ProductID", config.ProductID},
		{"ICalVersion", config.ICalVersion},
		{"DefaultTitlePattern", config.DefaultTitlePattern},
		{"DefaultYearPickerPattern", config.DefaultYearPickerPattern},
		{"DefaultTextFieldPattern", config.DefaultTextFieldPattern},
		{"DefaultLanguage", config.DefaultLanguage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.value, "Critical constant %s should not be empty", tt.name)
		})
	}
}

// TestDefaults_Sanity checks that default values make sense logically.
func TestDefaults_Sanity(t *testing.T) {
	assert.LessOrEqual(t, config.DefaultMinYear, config.DefaultMaxYear)
	assert.Equal(t, 2000, config.DefaultLeapYear, "Default leap year must be 2000 for consistency")
	assert.Equal(t, 0, config.DefaultLeapYear%400, "DefaultLeapYear must hold Feb 29")

	// Six weeks of seven days.
	assert.Equal(t, 6*config.DaysPerWeek, config.MonthGridSlots)
	assert.Equal(t, 12, config.MonthsPerYear)
	assert.Contains(t, config.SupportedLanguages, config.DefaultLanguage)
}

// TestProductID_Format ensures the PRODID follows the FPI shape.
func TestProductID_Format(t *testing.T) {
	assert.True(t, strings.HasPrefix(config.ProductID, "-//"), "ProductID must start with -//")
	assert.True(t, strings.HasSuffix(config.ProductID, "//EN"))
}

// TestTimeoutsAndLimits ensures that operational constraints are reasonable.
func TestTimeoutsAndLimits(t *testing.T) {
	t.Parallel()

	assert.Greater(t, config.ShutdownTimeout, 0*time.Second, "ShutdownTimeout must be positive")
	assert.Greater(t, config.ServerReadTimeout, 0*time.Second)
	assert.GreaterOrEqual(t, config.ServerWriteTimeout, config.ServerReadTimeout)

	assert.Equal(t, 1, config.MinPort)
	assert.Equal(t, 65535, config.MaxPort)
	assert.Less(t, config.YearGridHeightSm, config.YearGridHeight)
}
