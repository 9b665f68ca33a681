package store

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-contacts/internal/book"
	"github.com/tartampluch/go-contacts/internal/config"
)

// MergeVCards decodes vCards from r and merges them into b. It backs both
// the snapshot load and the interactive import command.
//
// Merge semantics: a card whose FN matches an existing record adds its
// phones to that record (duplicates skipped) and overwrites its birthday
// if the card carries one. Malformed cards, unusable names and invalid
// field values are skipped with a warning so one bad entry cannot block
// the rest of the file.
//
// It returns the number of cards merged.
func MergeVCards(ctx context.Context, b *book.AddressBook, r io.Reader) (int, error) {
	log := slog.With(config.LogKeyComponent, config.CompStore)

	decoder := vcard.NewDecoder(r)
	merged := 0

	for {
		if err := ctx.Err(); err != nil {
			return merged, err
		}

		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Skip but continue to the next card to maximize data recovery.
			log.Warn(config.MsgSkippedCard, config.LogKeyError, err)
			continue
		}

		if mergeCard(b, card, log) {
			merged++
		}
	}

	return merged, nil
}

// mergeCard folds one decoded card into the book. Reports whether the card
// contributed a record.
func mergeCard(b *book.AddressBook, card vcard.Card, log *slog.Logger) bool {
	name := card.Value(vcard.FieldFormattedName)

	rec, ok := b.Find(name)
	if !ok {
		newRec, err := book.NewRecord(name)
		if err != nil {
			log.Warn(config.MsgSkippedCard, config.LogKeyError, err)
			return false
		}
		rec = newRec
		// The trimmed name may differ from the raw FN value.
		if existing, found := b.Find(rec.Name().String()); found {
			rec = existing
		}
	}

	for _, tel := range card.Values(vcard.FieldTelephone) {
		if err := rec.AddPhone(tel); err != nil {
			var dup *book.DuplicatePhoneError
			if errors.As(err, &dup) {
				continue
			}
			log.Warn(config.MsgSkippedCard,
				config.LogKeyValue, tel,
				config.LogKeyError, err,
			)
		}
	}

	if raw := card.Value(vcard.FieldBirthday); raw != "" {
		if date, err := parseBDay(raw); err == nil {
			rec.SetBirthdayValue(book.BirthdayFromDate(date))
		} else {
			log.Debug(config.MsgSkippedDate,
				config.LogKeyName, rec.Name().String(),
				config.LogKeyValue, raw,
			)
		}
	}

	b.AddRecord(rec)
	return true
}

// cardFromRecord renders a record as a vCard 4.0 card. Field values are
// written back exactly as stored so the snapshot round-trips byte for byte.
func cardFromRecord(rec *book.Record) vcard.Card {
	card := make(vcard.Card)
	card.SetValue(vcard.FieldVersion, config.VCardVersion)
	card.SetValue(vcard.FieldFormattedName, rec.Name().String())
	for _, p := range rec.Phones() {
		card.AddValue(vcard.FieldTelephone, p.String())
	}
	if bday, ok := rec.Birthday(); ok {
		card.SetValue(vcard.FieldBirthday, bday.Date().Format(config.DateFormatVCardBDay))
	}
	return card
}

// parseBDay accepts the stored basic layout plus the dashed variant seen in
// vCards exported by other tools.
func parseBDay(value string) (time.Time, error) {
	layouts := []string{config.DateFormatVCardBDay, config.DateFormatVCardBDayDash}
	var lastErr error
	for _, layout := range layouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
