package types

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// AmountIntegerDigits is the maximum number of digits before the decimal point.
	AmountIntegerDigits = 12

	// AmountDecimalPlaces is the maximum number of digits after the decimal point.
	AmountDecimalPlaces = 8
)

var amountLimit = decimal.New(1, AmountIntegerDigits)

// Amount is a positive amount of money in the currency units of the user.
//
// It is accepted both as JSON number and as a numeric string.
type Amount struct {
	decimal.Decimal
}

// ParseAmount parses a numeric string and verifies that it is a valid amount.
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Amount{}, ErrInvalidAmount
	}

	if err := CheckAmount(d); err != nil {
		return Amount{}, err
	}

	return Amount{d}, nil
}

// CheckAmount verifies that d is positive and has at most AmountIntegerDigits
// digits before and AmountDecimalPlaces digits after the decimal point.
func CheckAmount(d decimal.Decimal) error {
	if !d.IsPositive() {
		return ErrAmountNotPositive
	}

	if d.GreaterThanOrEqual(amountLimit) || !d.Equal(d.Truncate(AmountDecimalPlaces)) {
		return ErrAmountOutOfRange
	}

	return nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (a *Amount) UnmarshalJSON(data []byte) error {
	value := string(data)
	if value == "null" {
		return ErrInvalidAmount
	}

	amount, err := ParseAmount(strings.Trim(value, `"`))
	if err != nil {
		return err
	}

	*a = amount
	return nil
}
