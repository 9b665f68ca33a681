package book

import (
	"strings"
	"time"

	"github.com/tartampluch/go-contacts/internal/config"
)

// Name is a non-empty, whitespace-trimmed contact name. It doubles as the
// unique key of a Record inside an AddressBook.
type Name string

// NewName validates and normalizes a raw name.
func NewName(raw string) (Name, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", &ValidationError{Field: config.FieldName, Reason: config.ReasonEmptyName}
	}
	return Name(trimmed), nil
}

func (n Name) String() string {
	return string(n)
}

// Phone is a string of exactly ten decimal digits.
type Phone string

// NewPhone validates a raw phone number.
func NewPhone(raw string) (Phone, error) {
	if len(raw) != config.PhoneLength {
		return "", &ValidationError{Field: config.FieldPhone, Reason: config.ReasonInvalidPhone}
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return "", &ValidationError{Field: config.FieldPhone, Reason: config.ReasonInvalidPhone}
		}
	}
	return Phone(raw), nil
}

func (p Phone) String() string {
	return string(p)
}

// Birthday is a valid calendar date parsed from the DD.MM.YYYY layout.
// The zero value means "not set".
type Birthday struct {
	date time.Time
}

// NewBirthday parses a DD.MM.YYYY string into a Birthday. Impossible
// calendar dates (e.g. 31.02.2024) are rejected by time.Parse.
func NewBirthday(raw string) (Birthday, error) {
	date, err := time.Parse(config.DateFormatBirthday, raw)
	if err != nil {
		return Birthday{}, &ValidationError{Field: config.FieldBirthday, Reason: config.ReasonInvalidDate}
	}
	return Birthday{date: date}, nil
}

// BirthdayFromDate builds a Birthday from an already-parsed date,
// keeping only its calendar components.
func BirthdayFromDate(date time.Time) Birthday {
	return Birthday{date: time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)}
}

// Date returns the underlying calendar date.
func (b Birthday) Date() time.Time {
	return b.date
}

// IsZero reports whether the birthday is unset.
func (b Birthday) IsZero() bool {
	return b.date.IsZero()
}

// String round-trips the birthday back to its canonical DD.MM.YYYY form.
func (b Birthday) String() string {
	if b.IsZero() {
		return ""
	}
	return b.date.Format(config.DateFormatBirthday)
}
