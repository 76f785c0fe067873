package usecase

import (
	"errors"
	"fmt"
)

var (
	// ErrOTPNotFound covers never-issued, already-consumed, and
	// already-deleted challenges alike.
	ErrOTPNotFound     = errors.New("OTP expired or not found")
	ErrOTPExpired      = errors.New("OTP expired")
	ErrTooManyAttempts = errors.New("too many failed attempts")

	ErrInvalidCredentials = errors.New("invalid admin credentials")

	ErrProductNotFound = errors.New("product not found")
)

// InvalidCodeError reports a code mismatch and how many attempts the
// caller has left before the challenge is withdrawn.
type InvalidCodeError struct {
	AttemptsRemaining int
}

func (e *InvalidCodeError) Error() string {
	return fmt.Sprintf("invalid OTP, %d attempts remaining", e.AttemptsRemaining)
}

// NotifyError wraps a delivery failure. The challenge it refers to is
// still issued; delivery failure is non-fatal by design.
type NotifyError struct {
	Err error
}

func (e *NotifyError) Error() string {
	return fmt.Sprintf("failed to send OTP: %v", e.Err)
}

func (e *NotifyError) Unwrap() error {
	return e.Err
}
