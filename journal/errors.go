package journal

import (
	"errors"
	"fmt"
)

var (
	// ErrDailyLimitExceeded is returned when a date already carries the
	// maximum number of trades.
	ErrDailyLimitExceeded = errors.New("maximum trades per day reached")

	// ErrInsufficientFunds is returned when a withdrawal exceeds the
	// current account balance.
	ErrInsufficientFunds = errors.New("withdrawal amount exceeds account balance")
)

// ValidationError reports a missing or malformed input field. The ledger is
// never touched when one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// StorageError reports a failed persist. The mutation has already been
// applied in memory; callers may retry the save with Session.Persist
// without re-applying the mutation.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("persist ledger: %v", e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
