package config_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-contacts/internal/config"
)

// TestConstants_Integrity ensures critical constants are not empty or malformed.
// This prevents accidental deletion of keys required for runtime logic.
func TestConstants_Integrity(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"AppName", config.AppName},
		{"AppID", config.AppID},
		{"Version", config.Version},
		{"SnapshotFileName", config.SnapshotFileName},
		{"ICalVersion", config.ICalVersion},
		{"ICalProdid", config.ICalProdid},
		{"VCardVersion", config.VCardVersion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.value, "Critical constant %s should not be empty", tt.name)
		})
	}
}

// TestDefaults_Sanity checks that default values make sense logically.
func TestDefaults_Sanity(t *testing.T) {
	assert.Equal(t, 10, config.PhoneLength, "Phones carry exactly 10 digits")
	assert.Equal(t, 7, config.UpcomingWindowDays, "The report looks 7 days ahead")
	assert.Equal(t, 2, config.ShiftSaturdayDays, "Saturday shifts to Monday")
	assert.Equal(t, 1, config.ShiftSundayDays, "Sunday shifts to Monday")

	assert.Contains(t, config.SupportedLanguages, config.DefaultLanguage,
		"The fallback language must be supported")
}

// TestDateFormats ensures the reference layouts parse their own canonical output.
func TestDateFormats(t *testing.T) {
	ref := time.Date(1990, 12, 25, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		layout string
		want   string
	}{
		{"Birthday", config.DateFormatBirthday, "25.12.1990"},
		{"VCardBDay", config.DateFormatVCardBDay, "19901225"},
		{"VCardBDayDash", config.DateFormatVCardBDayDash, "1990-12-25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ref.Format(tt.layout))

			parsed, err := time.Parse(tt.layout, tt.want)
			assert.NoError(t, err)
			assert.True(t, parsed.Equal(ref))
		})
	}
}

// TestFlagDescriptions_MatchBehavior guards help text against drift: debug
// logs mirror to stderr, never stdout, which stays reserved for the prompt.
func TestFlagDescriptions_MatchBehavior(t *testing.T) {
	assert.Contains(t, config.FlagDescDebug, "stderr")
	assert.NotContains(t, config.FlagDescDebug, "stdout")
}

// TestSnapshotFile_Conventions guards the on-disk naming scheme.
func TestSnapshotFile_Conventions(t *testing.T) {
	assert.True(t, strings.HasSuffix(config.SnapshotFileName, config.ExtVCF),
		"Snapshot file must carry the vCard extension")
	assert.Contains(t, config.TempFilePattern, "*",
		"Temp pattern needs a wildcard for os.CreateTemp")
	assert.True(t, strings.HasSuffix(config.TempFilePattern, ".tmp"),
		"Temp files must be recognizable as temporary")
}

// TestTimeoutsAndLimits ensures that operational constraints are reasonable.
func TestTimeoutsAndLimits(t *testing.T) {
	t.Parallel()

	assert.Greater(t, config.SaveTimeout, 0*time.Second, "SaveTimeout must be positive")
	assert.LessOrEqual(t, config.SaveTimeout, time.Minute, "SaveTimeout should not block shutdown excessively")

	assert.Greater(t, config.UIDHashLength, 0, "UID hash prefix must not be empty")
	assert.LessOrEqual(t, config.UIDHashLength, 64, "UID hash prefix cannot exceed a SHA-256 hex digest")
}
