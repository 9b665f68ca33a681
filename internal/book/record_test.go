package book_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-contacts/internal/book"
)

func newRecord(t *testing.T, name string, phones ...string) *book.Record {
	t.Helper()
	rec, err := book.NewRecord(name)
	require.NoError(t, err)
	for _, p := range phones {
		require.NoError(t, rec.AddPhone(p))
	}
	return rec
}

func phoneValues(rec *book.Record) []string {
	phones := rec.Phones()
	out := make([]string, len(phones))
	for i, p := range phones {
		out[i] = p.String()
	}
	return out
}

func TestRecord_AddPhone_RejectsDuplicate(t *testing.T) {
	rec := newRecord(t, "Ann", "0501234567")

	err := rec.AddPhone("0501234567")

	var dup *book.DuplicatePhoneError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "0501234567", dup.Number)
	// The failed add must not touch the list.
	assert.Equal(t, []string{"0501234567"}, phoneValues(rec))
}

func TestRecord_AddPhone_RejectsInvalid(t *testing.T) {
	rec := newRecord(t, "Ann")

	err := rec.AddPhone("123")

	var validation *book.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Empty(t, rec.Phones())
}

func TestRecord_RemovePhone(t *testing.T) {
	rec := newRecord(t, "Ann", "0501111111", "0502222222", "0503333333")

	// Absent value: reported as false, list untouched.
	assert.False(t, rec.RemovePhone("0509999999"))
	assert.Equal(t, []string{"0501111111", "0502222222", "0503333333"}, phoneValues(rec))

	// Removing the middle entry preserves the relative order of the rest.
	assert.True(t, rec.RemovePhone("0502222222"))
	assert.Equal(t, []string{"0501111111", "0503333333"}, phoneValues(rec))
}

func TestRecord_EditPhone(t *testing.T) {
	tests := []struct {
		name       string
		old        string
		new        string
		wantErr    any
		wantPhones []string
		desc       string
	}{
		{
			name:       "Replaces in place",
			old:        "0502222222",
			new:        "0505555555",
			wantPhones: []string{"0501111111", "0505555555", "0503333333"},
			desc:       "edited phone keeps its position",
		},
		{
			name:       "Old number missing",
			old:        "0509999999",
			new:        "0505555555",
			wantErr:    &book.NotFoundError{},
			wantPhones: []string{"0501111111", "0502222222", "0503333333"},
			desc:       "nothing changes when the source phone is absent",
		},
		{
			name:       "New number on another entry",
			old:        "0501111111",
			new:        "0503333333",
			wantErr:    &book.DuplicatePhoneError{},
			wantPhones: []string{"0501111111", "0502222222", "0503333333"},
			desc:       "both phones stay unchanged on duplicate",
		},
		{
			name:       "New number invalid",
			old:        "0501111111",
			new:        "bad",
			wantErr:    &book.ValidationError{},
			wantPhones: []string{"0501111111", "0502222222", "0503333333"},
			desc:       "validation failure leaves the list untouched",
		},
		{
			name:       "Same value is a no-op edit",
			old:        "0501111111",
			new:        "0501111111",
			wantPhones: []string{"0501111111", "0502222222", "0503333333"},
			desc:       "replacing a phone with itself is not a duplicate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := newRecord(t, "Ann", "0501111111", "0502222222", "0503333333")

			err := rec.EditPhone(tt.old, tt.new)

			switch want := tt.wantErr.(type) {
			case nil:
				assert.NoError(t, err, tt.desc)
			case *book.NotFoundError:
				assert.ErrorAs(t, err, &want, tt.desc)
			case *book.DuplicatePhoneError:
				assert.ErrorAs(t, err, &want, tt.desc)
			case *book.ValidationError:
				assert.ErrorAs(t, err, &want, tt.desc)
			}
			assert.Equal(t, tt.wantPhones, phoneValues(rec), tt.desc)
		})
	}
}

func TestRecord_FindPhone(t *testing.T) {
	rec := newRecord(t, "Ann", "0501234567")

	phone, ok := rec.FindPhone("0501234567")
	assert.True(t, ok)
	assert.Equal(t, "0501234567", phone.String())

	_, ok = rec.FindPhone("0509999999")
	assert.False(t, ok)
}

func TestRecord_SetBirthday_Overwrites(t *testing.T) {
	rec := newRecord(t, "Ann")
	assert.Empty(t, rec.BirthdayString())

	require.NoError(t, rec.SetBirthday("25.12.1990"))
	assert.Equal(t, "25.12.1990", rec.BirthdayString())

	// A second set replaces the first unconditionally.
	require.NoError(t, rec.SetBirthday("01.01.2000"))
	assert.Equal(t, "01.01.2000", rec.BirthdayString())

	// A failed set keeps the previous value.
	assert.Error(t, rec.SetBirthday("31.02.2024"))
	assert.Equal(t, "01.01.2000", rec.BirthdayString())
}

func TestRecord_String(t *testing.T) {
	rec := newRecord(t, "Ann")
	assert.Equal(t, "Contact name: Ann, phones: -, birthday: -", rec.String())

	require.NoError(t, rec.AddPhone("0501111111"))
	require.NoError(t, rec.AddPhone("0502222222"))
	require.NoError(t, rec.SetBirthday("25.12.1990"))
	assert.Equal(t, "Contact name: Ann, phones: 0501111111; 0502222222, birthday: 25.12.1990", rec.String())
}
