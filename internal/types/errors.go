package types

import "errors"

// ErrValidation is the parent of all input validation errors.
var ErrValidation = errors.New("the request contains invalid data")

var (
	ErrInvalidAmount     = &validationError{"invalid amount format", ErrValidation}
	ErrAmountNotPositive = &validationError{"amount must be positive", ErrInvalidAmount}
	ErrAmountOutOfRange  = &validationError{"amount must have at most 12 digits before and 8 digits after the decimal point", ErrInvalidAmount}
	ErrInvalidDate       = &validationError{"invalid date format, use YYYY-MM-DD", ErrValidation}
	ErrInvalidMonth      = &validationError{"invalid month format, use YYYY-MM", ErrValidation}
)

// validationError carries a user facing message and the error it
// specializes, so that errors.Is works up the chain.
type validationError struct {
	msg    string
	parent error
}

func (e *validationError) Error() string {
	return e.msg
}

func (e *validationError) Unwrap() error {
	return e.parent
}
