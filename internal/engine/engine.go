package engine

import (
	"bytes"
	"context"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-contacts/internal/book"
	"github.com/tartampluch/go-contacts/internal/config"
)

// Generator is the query and export engine working on an AddressBook
// snapshot. It never mutates the book.
type Generator struct {
	Clock Clock // Interface for time mocking.

	// FormatSummary allows the command layer to inject localized event
	// summaries. When nil, a plain fallback is used.
	FormatSummary func(name string, age int) string
}

// Upcoming computes the birthdays report relative to the injected clock.
func (g *Generator) Upcoming(b *book.AddressBook) []Greeting {
	return UpcomingBirthdays(b, g.Clock.Now())
}

// BuildCalendar renders the book's birthdays as an iCalendar document.
// For every contact with a birthday it emits events for the previous,
// current and next year, skipping years before the person was born, so the
// file stays useful when a calendar app scrolls across year boundaries.
// reminderTrigger, when non-empty, attaches a DISPLAY alarm with the given
// ISO8601 trigger to each event.
//
// It returns the encoded calendar and the number of contacts included.
func (g *Generator) BuildCalendar(ctx context.Context, b *book.AddressBook, reminderTrigger string) ([]byte, int, error) {
	start := time.Now()
	log := slog.With(config.LogKeyComponent, config.CompEngine)

	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	// Birthdays are defined by the local calendar date of the person, not an
	// absolute UTC timestamp; the clock's local time drives the event dates
	// while the DTSTAMP is converted to UTC as the standard requires.
	now := g.Clock.Now()
	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	stats := struct{ total, withBday int }{}

	for _, rec := range b.Records() {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}

		stats.total++
		bday, ok := rec.Birthday()
		if !ok {
			continue
		}
		stats.withBday++

		name := rec.Name().String()

		// Deterministic UID generation for stability across exports.
		input := fmt.Sprintf(config.FormatHashInput, name, bday.Date().Format(time.RFC3339), config.UIDSalt)
		hash := sha256.Sum256([]byte(input))
		uidBase := fmt.Sprintf("%x", hash[:config.UIDHashLength])

		for _, e := range g.createEvents(name, bday.Date(), reminderTrigger, now, uidBase) {
			e.Props.Set(dtStampProp)
			cal.Children = append(cal.Children, e.Component)
		}
	}

	if len(cal.Children) == 0 {
		// A valid empty VCALENDAR keeps clients from flagging the file.
		g.logSuccess(log, stats, start)
		return []byte(config.StubVCalendar), 0, nil
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	g.logSuccess(log, stats, start)
	return buf.Bytes(), stats.withBday, nil
}

func (g *Generator) logSuccess(log *slog.Logger, stats struct{ total, withBday int }, start time.Time) {
	log.Info(config.MsgGenSuccess,
		slog.Group(config.LogKeyStats,
			slog.Int(config.LogKeyTotal, stats.total),
			slog.Int(config.LogKeyFound, stats.withBday),
		),
		config.LogKeyDuration, time.Since(start).Milliseconds(),
	)
}

// createEvents generates events for CurrentYear-1, CurrentYear and
// CurrentYear+1, never before the person is born.
func (g *Generator) createEvents(name string, birthDate time.Time, reminderTrigger string, now time.Time, uidBase string) []*ical.Event {
	currentYear := now.Year()
	targetYears := []int{currentYear - 1, currentYear, currentYear + 1}
	loc := now.Location()

	var events []*ical.Event
	for _, y := range targetYears {
		if y < birthDate.Year() {
			continue
		}

		event := ical.NewEvent()
		event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, uidBase, y, config.ICalDomain))

		age := y - birthDate.Year()
		summary := fmt.Sprintf(config.FallbackSummary, name)
		if age > 0 {
			summary = fmt.Sprintf(config.FallbackSummaryAge, name, age)
		}
		if g.FormatSummary != nil {
			summary = g.FormatSummary(name, age)
		}
		event.Props.SetText(config.PropSummary, summary)

		// Feb 29 normalizes to Mar 1 in non-leap years.
		eventDate := time.Date(y, birthDate.Month(), birthDate.Day(), 0, 0, 0, 0, loc)

		dtStartProp := ical.NewProp(config.PropDTStart)
		dtStartProp.SetDate(eventDate)
		event.Props.Set(dtStartProp)

		if reminderTrigger != "" {
			addAlarm(event, reminderTrigger, summary)
		}

		events = append(events, event)
	}
	return events
}

// addAlarm appends a DISPLAY alarm (notification) to the event.
func addAlarm(event *ical.Event, trigger, description string) {
	alarm := ical.NewComponent(config.ICalComponent)
	alarm.Props.SetText(config.PropAction, config.ICalAction)
	alarm.Props.SetText(config.PropDescription, description)

	// Set trigger manually to avoid "VALUE=TEXT" param
	triggerProp := ical.NewProp(config.PropTrigger)
	triggerProp.Value = trigger
	alarm.Props.Set(triggerProp)

	event.Children = append(event.Children, alarm)
}
