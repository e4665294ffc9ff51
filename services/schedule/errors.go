package schedule

import "fmt"

// ValidationError signals a malformed or missing required field; the caller
// must correct the input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// InvalidDateError signals input that cannot be parsed as a calendar date.
type InvalidDateError struct {
	Input string
}

func (e InvalidDateError) Error() string {
	return fmt.Sprintf("cannot parse %q as a calendar date", e.Input)
}

// NotFoundError signals that a referenced date record or booking id is absent.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

// SlotTakenError signals a lost uniqueness race: another confirmed booking
// already occupies the slot. The caller should refresh available slots and
// retry with a different time.
type SlotTakenError struct {
	Date string
	Time string
}

func (e SlotTakenError) Error() string {
	return fmt.Sprintf("slot %s %s already has a confirmed booking", e.Date, e.Time)
}

// StorageUnavailableError wraps a transient storage-layer failure. It is
// surfaced to the caller, never swallowed or retried by the core.
type StorageUnavailableError struct {
	Err error
}

func (e StorageUnavailableError) Error() string {
	return fmt.Sprintf("storage unavailable: %v", e.Err)
}

func (e StorageUnavailableError) Unwrap() error {
	return e.Err
}
