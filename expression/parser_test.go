package expression

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go-smart-calc"
)

func TestEval(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want string
	}{
		{"integer", "42", "42"},
		{"addition", "2+3", "5"},
		{"precedence", "2+3*4", "14"},
		{"left assoc subtraction", "10-4-3", "3"},
		{"true division", "7/2", "3.5"},
		{"division keeps float", "4/2", "2.0"},
		{"float literal", "1.5*2", "3.0"},
		{"trailing point", "5.+1", "6.0"},
		{"leading point", ".5+.25", "0.75"},
		{"unary minus", "-3+5", "2"},
		{"double unary", "--3", "3"},
		{"unary plus", "+4*2", "8"},
		{"operator then unary", "6*-2", "-12"},
		{"floor division", "7//2", "3"},
		{"floor division negative", "-7//2", "-4"},
		{"floor division float", "7.0//2", "3.0"},
		{"modulo", "7%3", "1"},
		{"modulo sign of divisor", "-7%3", "2"},
		{"power", "2**10", "1024"},
		{"power right assoc", "2**3**2", "512"},
		{"power binds over unary", "-2**2", "-4"},
		{"negative exponent", "2**-1", "0.5"},
		{"parentheses", "(2+3)*4", "20"},
		{"nested parentheses", "((1+2)*(3+4))/7", "3.0"},
		{"spaces", " 1 + 2 ", "3"},
		{"exponent literal", "1e+16*10", "1e+17"},
		{"small float", "1/100000", "1e-05"},
		{"chained float", "0.1+0.2", "0.30000000000000004"},
		{"exact product", "99999999*99999999", "9999999800000001"},
		{"exact literal", "9007199254740993", "9007199254740993"},
		{"exact power", "3**40", "12157665459056928801"},
		{"large power", "2**100", "1267650600228229401496703205376"},
		{"exact floor division", "12157665459056928801//3", "4052555153018976267"},
		{"exact modulo", "12157665459056928801%10", "1"},
		{"negative floor modulo", "-12157665459056928801%10", "9"},
		{"integer true division", "9007199254740993/1", "9007199254740992.0"},
		{"one to a huge power", "1**123456789", "1"},
		{"zeros", "00+0", "0"},
		{"leading zero float", "007.5", "7.5"},
		{"zero point", "0.5*2", "1.0"},
		{"nested within limit", strings.Repeat("(", 150) + "1" + strings.Repeat(")", 150), "1"},
		{"signs within limit", strings.Repeat("-", 150) + "1", "1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Eval(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestEval_Errors(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want error
	}{
		{"empty", "", smartcalc.ErrInvalidExpression},
		{"blank", "   ", smartcalc.ErrInvalidExpression},
		{"trailing operator", "2+", smartcalc.ErrInvalidExpression},
		{"leading operator", "*2", smartcalc.ErrInvalidExpression},
		{"double point", "1.2.3", smartcalc.ErrInvalidExpression},
		{"lone point", ".", smartcalc.ErrInvalidExpression},
		{"unbalanced open", "(1+2", smartcalc.ErrInvalidExpression},
		{"unbalanced close", "1+2)", smartcalc.ErrInvalidExpression},
		{"letters", "2+x", smartcalc.ErrInvalidExpression},
		{"malformed exponent", "2e+", smartcalc.ErrInvalidExpression},
		{"divide by zero", "5/0", smartcalc.ErrDivisionByZero},
		{"floor divide by zero", "5//0", smartcalc.ErrDivisionByZero},
		{"modulo by zero", "5%0", smartcalc.ErrDivisionByZero},
		{"zero negative power", "0**-1", smartcalc.ErrDivisionByZero},
		{"overflow", "10.0**400", smartcalc.ErrInvalidExpression},
		{"complex root", "(-8)**0.5", smartcalc.ErrInvalidExpression},
		{"leading zero", "07", smartcalc.ErrInvalidExpression},
		{"leading zero operand", "1+012", smartcalc.ErrInvalidExpression},
		{"power too large", "2**100000000", smartcalc.ErrInvalidExpression},
		{"integer beyond float", "10**400*1.0", smartcalc.ErrInvalidExpression},
		{"deep parentheses", strings.Repeat("(", 100000) + "1" + strings.Repeat(")", 100000), smartcalc.ErrInvalidExpression},
		{"deep signs", strings.Repeat("-", 100000) + "1", smartcalc.ErrInvalidExpression},
		{"deep powers", strings.Repeat("2**", 5000) + "1", smartcalc.ErrInvalidExpression},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Eval(tt.expr)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestValue(t *testing.T) {
	assert.True(t, Int(3).IsInt())
	assert.False(t, Float(3).IsInt())
	assert.Equal(t, "3", Int(3).String())
	assert.Equal(t, "3.0", Float(3).String())
	assert.Equal(t, "0", Int(0).String())
	assert.Equal(t, -2.5, Float(-2.5).Float64())
	assert.Equal(t, float64(1<<60), Int(1<<60).Float64())
}
