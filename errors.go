package smartcalc

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCurrency a currency code missing from the rate table
	ErrInvalidCurrency = errors.New("invalid currency")

	// ErrInvalidExpression an expression that does not parse or has no value
	ErrInvalidExpression = errors.New("invalid expression")

	// ErrDivisionByZero division or modulo by zero inside an expression
	ErrDivisionByZero = errors.New("division by zero")

	ErrNegativeValue  = errors.New("negative value")
	ErrPercentTooHigh = errors.New("percent exceeds 100")

	// ErrInvalidNumber input that is not a usable number
	ErrInvalidNumber = errors.New("invalid number")

	// ErrInvalidAmount the single amount of a conversion is not a usable number
	ErrInvalidAmount = fmt.Errorf("amount: %w", ErrInvalidNumber)
)

// Messages shown to users in place of errors.
const (
	MsgError           = "Error"
	MsgInvalidCurrency = "Invalid currency"
	MsgNegative        = "Values cannot be negative"
	MsgPercentTooHigh  = "Discount cannot exceed 100%"
	MsgInvalidNumbers  = "Please enter valid numbers"
	MsgInvalidNumber   = "Please enter a valid number"
)

// Message converts err into the text a user sees. Errors outside the
// known set all read as MsgError.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidCurrency):
		return MsgInvalidCurrency
	case errors.Is(err, ErrNegativeValue):
		return MsgNegative
	case errors.Is(err, ErrPercentTooHigh):
		return MsgPercentTooHigh
	case errors.Is(err, ErrInvalidAmount):
		return MsgInvalidNumber
	case errors.Is(err, ErrInvalidNumber):
		return MsgInvalidNumbers
	default:
		return MsgError
	}
}
