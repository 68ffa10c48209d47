package expression

import (
	"fmt"
	"math"
	"math/big"
	"strconv"

	"go-smart-calc"
)

// maxIntBits caps the size of an integer power result
const maxIntBits = 1 << 16

// Value a number produced by an expression. Integers are exact and stay
// integers through +, -, *, //, % and ** with a non-negative exponent;
// / always gives a float, as does mixing in any float operand.
type Value struct {
	// i set for integers, f used otherwise
	i *big.Int
	f float64
}

// Int an integer Value
func Int(i int64) Value {
	return Value{i: big.NewInt(i)}
}

// Float a float Value
func Float(f float64) Value {
	return Value{f: f}
}

func (v Value) IsInt() bool {
	return v.i != nil
}

// Float64 the nearest float64, ±Inf for integers beyond the float range
func (v Value) Float64() float64 {
	if v.i == nil {
		return v.f
	}
	f, _ := new(big.Float).SetInt(v.i).Float64()
	return f
}

// String formats v the way the calculator display shows it: integers bare,
// floats always with a fractional part or an exponent.
func (v Value) String() string {
	if v.i != nil {
		return v.i.String()
	}
	abs := math.Abs(v.f)
	if abs >= 1e16 || (abs != 0 && abs < 1e-4) {
		return strconv.FormatFloat(v.f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v.f, 'f', -1, 64)
	if v.f == math.Trunc(v.f) {
		s += ".0"
	}
	return s
}

func (v Value) neg() Value {
	if v.i != nil {
		return Value{i: new(big.Int).Neg(v.i)}
	}
	return Value{f: -v.f}
}

func (v Value) isZero() bool {
	if v.i != nil {
		return v.i.Sign() == 0
	}
	return v.f == 0
}

func apply(op kind, a, b Value) (Value, error) {
	switch op {
	case slash, floorSlash, percent:
		if b.isZero() {
			return Value{}, smartcalc.ErrDivisionByZero
		}
	case power:
		if a.isZero() && b.Float64() < 0 {
			return Value{}, smartcalc.ErrDivisionByZero
		}
	}

	var r Value
	var err error
	if a.IsInt() && b.IsInt() {
		r, err = applyInt(op, a.i, b.i)
	} else {
		r, err = applyFloat(op, a.Float64(), b.Float64())
	}
	if err != nil {
		return Value{}, err
	}
	if !r.IsInt() && (math.IsInf(r.f, 0) || math.IsNaN(r.f)) {
		return Value{}, fmt.Errorf("%v %v %v has no finite value: %w", a, op, b, smartcalc.ErrInvalidExpression)
	}
	return r, nil
}

func applyInt(op kind, a, b *big.Int) (Value, error) {
	r := new(big.Int)
	switch op {
	case plus:
		r.Add(a, b)
	case minus:
		r.Sub(a, b)
	case star:
		r.Mul(a, b)
	case slash:
		f, _ := new(big.Rat).SetFrac(a, b).Float64()
		return Value{f: f}, nil
	case floorSlash:
		q, _ := floorDivMod(a, b)
		return Value{i: q}, nil
	case percent:
		_, m := floorDivMod(a, b)
		return Value{i: m}, nil
	case power:
		if b.Sign() < 0 {
			return applyFloat(op, Value{i: a}.Float64(), Value{i: b}.Float64())
		}
		return intPow(a, b)
	default:
		return Value{}, fmt.Errorf("unknown operator %v: %w", op, smartcalc.ErrInvalidExpression)
	}
	return Value{i: r}, nil
}

// floorDivMod quotient rounded toward negative infinity and the remainder
// carrying the sign of the divisor
func floorDivMod(a, b *big.Int) (*big.Int, *big.Int) {
	q, m := new(big.Int).QuoRem(a, b, new(big.Int))
	if m.Sign() != 0 && (m.Sign() < 0) != (b.Sign() < 0) {
		q.Sub(q, big.NewInt(1))
		m.Add(m, b)
	}
	return q, m
}

func intPow(a, b *big.Int) (Value, error) {
	// 0, 1 and -1 never grow
	if a.CmpAbs(big.NewInt(1)) <= 0 {
		return Value{i: new(big.Int).Exp(a, b, nil)}, nil
	}
	if !b.IsInt64() || b.Int64() > maxIntBits || int64(a.BitLen()-1)*b.Int64() > maxIntBits {
		return Value{}, fmt.Errorf("%v ** %v is too large: %w", a, b, smartcalc.ErrInvalidExpression)
	}
	return Value{i: new(big.Int).Exp(a, b, nil)}, nil
}

func applyFloat(op kind, a, b float64) (Value, error) {
	var r float64
	switch op {
	case plus:
		r = a + b
	case minus:
		r = a - b
	case star:
		r = a * b
	case slash:
		r = a / b
	case floorSlash:
		r = math.Floor(a / b)
	case percent:
		r = math.Mod(a, b)
		if r != 0 && (r < 0) != (b < 0) {
			r += b
		}
	case power:
		r = math.Pow(a, b)
	default:
		return Value{}, fmt.Errorf("unknown operator %v: %w", op, smartcalc.ErrInvalidExpression)
	}
	return Value{f: r}, nil
}
