// Package errors defines the error taxonomy shared by the trade panel engine.
//
// None of these errors abort a computation. They are returned next to a
// usable value (ErrUnknownOutcome), carried as a guard reason
// (ErrInsufficientBalance, ErrInsufficientShares) or recorded on a result
// (ErrDegenerateBook). Match them with errors.Is.
package errors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrUnknownOutcome      = errors.New("unknown outcome")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInsufficientShares  = errors.New("insufficient shares")
	ErrDegenerateBook      = errors.New("degenerate book")
	ErrInvalidConfig       = errors.New("invalid config")
)

// UnknownOutcome wraps ErrUnknownOutcome with the offending outcome id.
func UnknownOutcome(outcomeID string) error {
	return fmt.Errorf("%w: %q", ErrUnknownOutcome, outcomeID)
}

// InvalidConfig wraps ErrInvalidConfig with a description of the bad field.
func InvalidConfig(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// IsUserFacing reports whether err should disable order submission in the UI.
func IsUserFacing(err error) bool {
	return errors.Is(err, ErrInsufficientBalance) || errors.Is(err, ErrInsufficientShares)
}
