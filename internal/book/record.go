package book

import (
	"fmt"

	"github.com/tartampluch/go-contacts/internal/config"
)

// Record stores the data of one contact: a name, an ordered list of unique
// phone numbers and an optional birthday. The name is fixed at creation and
// identifies the record inside its AddressBook.
type Record struct {
	name     Name
	phones   []Phone
	birthday Birthday
}

// NewRecord creates a record with a validated name and no phones.
func NewRecord(rawName string) (*Record, error) {
	name, err := NewName(rawName)
	if err != nil {
		return nil, err
	}
	return &Record{name: name}, nil
}

// Name returns the record's immutable identity.
func (r *Record) Name() Name {
	return r.name
}

// Phones returns a copy of the phone list in insertion order.
func (r *Record) Phones() []Phone {
	out := make([]Phone, len(r.phones))
	copy(out, r.phones)
	return out
}

// Birthday returns the birthday and whether one is set.
func (r *Record) Birthday() (Birthday, bool) {
	return r.birthday, !r.birthday.IsZero()
}

// AddPhone validates and appends a phone number, rejecting duplicates.
func (r *Record) AddPhone(number string) error {
	phone, err := NewPhone(number)
	if err != nil {
		return err
	}
	if r.indexOf(phone.String()) >= 0 {
		return &DuplicatePhoneError{Number: phone.String()}
	}
	r.phones = append(r.phones, phone)
	return nil
}

// RemovePhone deletes the phone equal to number if present. It reports
// whether a removal occurred; removing an absent phone is not an error.
// The relative order of the remaining phones is preserved.
func (r *Record) RemovePhone(number string) bool {
	idx := r.indexOf(number)
	if idx < 0 {
		return false
	}
	r.phones = append(r.phones[:idx], r.phones[idx+1:]...)
	return true
}

// EditPhone replaces oldNumber with newNumber in place, keeping its position.
// It fails without mutating anything when oldNumber is absent, newNumber is
// invalid, or newNumber already exists on a different entry.
func (r *Record) EditPhone(oldNumber, newNumber string) error {
	idx := r.indexOf(oldNumber)
	if idx < 0 {
		return &NotFoundError{What: config.FieldPhone, Key: oldNumber}
	}
	phone, err := NewPhone(newNumber)
	if err != nil {
		return err
	}
	if dup := r.indexOf(phone.String()); dup >= 0 && dup != idx {
		return &DuplicatePhoneError{Number: phone.String()}
	}
	r.phones[idx] = phone
	return nil
}

// FindPhone looks up a phone by exact string match.
func (r *Record) FindPhone(number string) (Phone, bool) {
	idx := r.indexOf(number)
	if idx < 0 {
		return "", false
	}
	return r.phones[idx], true
}

// SetBirthday parses and stores a birthday, overwriting any previous one.
func (r *Record) SetBirthday(raw string) error {
	birthday, err := NewBirthday(raw)
	if err != nil {
		return err
	}
	r.birthday = birthday
	return nil
}

// SetBirthdayValue stores an already-validated birthday, overwriting any
// previous one. Used when restoring records from a snapshot.
func (r *Record) SetBirthdayValue(b Birthday) {
	r.birthday = b
}

// BirthdayString returns the canonical DD.MM.YYYY form, or "" if unset.
func (r *Record) BirthdayString() string {
	return r.birthday.String()
}

// String renders the record for display.
func (r *Record) String() string {
	phones := config.EmptyFieldPlaceholder
	if len(r.phones) > 0 {
		joined := ""
		for i, p := range r.phones {
			if i > 0 {
				joined += config.PhoneSeparator
			}
			joined += p.String()
		}
		phones = joined
	}
	bday := config.EmptyFieldPlaceholder
	if !r.birthday.IsZero() {
		bday = r.birthday.String()
	}
	return fmt.Sprintf("Contact name: %s, phones: %s, birthday: %s", r.name, phones, bday)
}

func (r *Record) indexOf(number string) int {
	for i, p := range r.phones {
		if p.String() == number {
			return i
		}
	}
	return -1
}
