package engine

import (
	"time"

	"github.com/tartampluch/go-contacts/internal/book"
	"github.com/tartampluch/go-contacts/internal/config"
)

// Greeting is one entry of the upcoming birthdays report: who to
// congratulate and on which day.
type Greeting struct {
	Name string

	// Congratulation is the birthday's occurrence this year (or next, if it
	// already passed), shifted off weekends to the following Monday.
	Congratulation time.Time
}

// UpcomingBirthdays returns one Greeting per contact whose birthday falls
// within the next config.UpcomingWindowDays days, today inclusive.
//
// The window filter applies to the unshifted occurrence date: a Saturday
// birthday at the edge of the window is still reported, under its shifted
// Monday congratulation date. A Feb 29 birthday resolves to Mar 1 in
// non-leap target years through time.Date normalization.
//
// Entries come back in the book's iteration order; grouping and sorting for
// display is the command layer's concern.
func UpcomingBirthdays(b *book.AddressBook, today time.Time) []Greeting {
	loc := today.Location()
	todayStart := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, loc)

	var out []Greeting
	for _, rec := range b.Records() {
		bday, ok := rec.Birthday()
		if !ok {
			continue
		}
		dob := bday.Date()

		occurrence := time.Date(todayStart.Year(), dob.Month(), dob.Day(), 0, 0, 0, 0, loc)
		if occurrence.Before(todayStart) {
			occurrence = time.Date(todayStart.Year()+1, dob.Month(), dob.Day(), 0, 0, 0, 0, loc)
		}

		daysDelta := daysBetween(todayStart, occurrence)
		if daysDelta < 0 || daysDelta > config.UpcomingWindowDays {
			continue
		}

		congratulation := occurrence
		switch occurrence.Weekday() {
		case time.Saturday:
			congratulation = occurrence.AddDate(0, 0, config.ShiftSaturdayDays)
		case time.Sunday:
			congratulation = occurrence.AddDate(0, 0, config.ShiftSundayDays)
		}

		out = append(out, Greeting{
			Name:           rec.Name().String(),
			Congratulation: congratulation,
		})
	}
	return out
}

// daysBetween counts whole calendar days from a to b. Both are remapped to
// UTC midnight so DST transitions cannot skew the count.
func daysBetween(a, b time.Time) int {
	au := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bu := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au) / (24 * time.Hour))
}
