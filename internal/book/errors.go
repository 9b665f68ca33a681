package book

import "fmt"

// ValidationError reports a malformed field value. The operation that
// produced it left the record and the book unchanged.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// DuplicatePhoneError reports an attempt to add or edit a phone to a value
// already present on the record.
type DuplicatePhoneError struct {
	Number string
}

func (e *DuplicatePhoneError) Error() string {
	return fmt.Sprintf("phone number already in use: %s", e.Number)
}

// NotFoundError reports a missing contact or phone for an operation that
// requires it to exist. Deletions deliberately return a bool instead:
// absence is an expected outcome there, not a failure.
type NotFoundError struct {
	What string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.What, e.Key)
}
