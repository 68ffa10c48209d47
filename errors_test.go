package smartcalc

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrInvalidAmount_IsInvalidNumber(t *testing.T) {
	assert.True(t, errors.Is(ErrInvalidAmount, ErrInvalidNumber))
}

func TestMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"currency", ErrInvalidCurrency, MsgInvalidCurrency},
		{"wrapped currency", fmt.Errorf("convert [POUND]: %w", ErrInvalidCurrency), MsgInvalidCurrency},
		{"negative", ErrNegativeValue, MsgNegative},
		{"percent", fmt.Errorf("discount: %w", ErrPercentTooHigh), MsgPercentTooHigh},
		{"number", ErrInvalidNumber, MsgInvalidNumbers},
		{"amount", fmt.Errorf("convert amount [NaN]: %w", ErrInvalidAmount), MsgInvalidNumber},
		{"expression", ErrInvalidExpression, MsgError},
		{"division", ErrDivisionByZero, MsgError},
		{"other", errors.New("boom"), MsgError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Message(tt.err))
		})
	}
}
