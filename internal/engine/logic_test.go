package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-contacts/internal/book"
	"github.com/tartampluch/go-contacts/internal/config"
)

func buildBook(t *testing.T, contacts map[string]string) *book.AddressBook {
	t.Helper()
	b := book.NewAddressBook()
	for name, bday := range contacts {
		rec, err := book.NewRecord(name)
		require.NoError(t, err)
		if bday != "" {
			require.NoError(t, rec.SetBirthday(bday))
		}
		b.AddRecord(rec)
	}
	return b
}

func greetingsByName(greetings []Greeting) map[string]string {
	out := make(map[string]string, len(greetings))
	for _, g := range greetings {
		out[g.Name] = g.Congratulation.Format(config.DateFormatBirthday)
	}
	return out
}

// TestUpcomingBirthdays_Window verifies the 7-day inclusive window and the
// weekend shift of the congratulation date.
func TestUpcomingBirthdays_Window(t *testing.T) {
	// Reference "today": Monday, May 20th 2024.
	today := time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)

	b := buildBook(t, map[string]string{
		"Ann": "22.05.1990", // Wednesday, within window
		"Bob": "25.05.1985", // Saturday, within window
		"Cid": "30.05.1979", // outside the 7-day window
		"Dee": "26.05.1992", // Sunday, within window
		"Eve": "27.05.2001", // Monday, day 7, edge of window
		"Fay": "",           // no birthday set
	})

	got := greetingsByName(UpcomingBirthdays(b, today))

	assert.Equal(t, map[string]string{
		"Ann": "22.05.2024", // weekday, unshifted
		"Bob": "27.05.2024", // Saturday shifted to Monday
		"Dee": "27.05.2024", // Sunday shifted to Monday
		"Eve": "27.05.2024", // inclusive day-7 edge, already a Monday
	}, got)
}

// TestUpcomingBirthdays_TodayCounts checks that a birthday today is included.
func TestUpcomingBirthdays_TodayCounts(t *testing.T) {
	today := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)
	b := buildBook(t, map[string]string{"Ann": "20.05.1990"})

	got := greetingsByName(UpcomingBirthdays(b, today))
	assert.Equal(t, map[string]string{"Ann": "20.05.2024"}, got)
}

// TestUpcomingBirthdays_PassedRollsToNextYear verifies that a birthday
// earlier this year is projected into the next year and therefore excluded
// from a mid-year window.
func TestUpcomingBirthdays_PassedRollsToNextYear(t *testing.T) {
	today := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)
	b := buildBook(t, map[string]string{"Ann": "19.05.1990"})

	assert.Empty(t, UpcomingBirthdays(b, today))
}

// TestUpcomingBirthdays_YearBoundary covers a window that spans New Year.
func TestUpcomingBirthdays_YearBoundary(t *testing.T) {
	// Tuesday, December 30th 2025; January 2nd falls within the window.
	today := time.Date(2025, 12, 30, 0, 0, 0, 0, time.UTC)
	b := buildBook(t, map[string]string{"Ann": "02.01.1990"})

	got := greetingsByName(UpcomingBirthdays(b, today))
	assert.Equal(t, map[string]string{"Ann": "02.01.2026"}, got)
}

// TestUpcomingBirthdays_Leapling documents the Feb 29 policy: in a non-leap
// target year the birthday resolves to March 1st via time.Date
// normalization, and the weekend shift still applies afterwards.
func TestUpcomingBirthdays_Leapling(t *testing.T) {
	// Tuesday, February 25th 2025 (non-leap year).
	today := time.Date(2025, 2, 25, 0, 0, 0, 0, time.UTC)
	b := buildBook(t, map[string]string{"Leap Baby": "29.02.2000"})

	got := greetingsByName(UpcomingBirthdays(b, today))
	// March 1st 2025 is a Saturday, so the congratulation moves to Monday.
	assert.Equal(t, map[string]string{"Leap Baby": "03.03.2025"}, got)
}

func TestUpcomingBirthdays_EmptyBook(t *testing.T) {
	today := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)

	assert.Empty(t, UpcomingBirthdays(book.NewAddressBook(), today))
	assert.Empty(t, UpcomingBirthdays(buildBook(t, map[string]string{"Ann": ""}), today))
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		a, b time.Time
		want int
	}{
		{
			name: "Same day",
			a:    time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC),
			b:    time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC),
			want: 0,
		},
		{
			name: "One week",
			a:    time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC),
			b:    time.Date(2024, 5, 27, 0, 0, 0, 0, time.UTC),
			want: 7,
		},
		{
			name: "Backwards",
			a:    time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC),
			b:    time.Date(2024, 5, 19, 0, 0, 0, 0, time.UTC),
			want: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, daysBetween(tt.a, tt.b))
		})
	}
}
