package expression

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"go-smart-calc"
)

type kind int

const (
	eof kind = iota
	number
	plus
	minus
	star
	slash
	floorSlash
	power
	percent
	lparen
	rparen
)

var kindNames = map[kind]string{
	eof:        "end of input",
	number:     "number",
	plus:       "+",
	minus:      "-",
	star:       "*",
	slash:      "/",
	floorSlash: "//",
	power:      "**",
	percent:    "%",
	lparen:     "(",
	rparen:     ")",
}

func (k kind) String() string {
	return kindNames[k]
}

type token struct {
	kind  kind
	value Value
	// pos byte offset of the token in the input
	pos int
}

// tokenize splits expr into tokens, always terminated by an eof token
func tokenize(expr string) ([]token, error) {
	var tokens []token
	for i := 0; i < len(expr); {
		c := expr[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case isDigit(c) || c == '.':
			v, n, err := lexNumber(expr[i:])
			if err != nil {
				return nil, fmt.Errorf("offset %d: %w", i, err)
			}
			tokens = append(tokens, token{kind: number, value: v, pos: i})
			i += n
		case c == '*' && i+1 < len(expr) && expr[i+1] == '*':
			tokens = append(tokens, token{kind: power, pos: i})
			i += 2
		case c == '/' && i+1 < len(expr) && expr[i+1] == '/':
			tokens = append(tokens, token{kind: floorSlash, pos: i})
			i += 2
		default:
			k, ok := singles[c]
			if !ok {
				return nil, fmt.Errorf("offset %d: unexpected character %q: %w", i, c, smartcalc.ErrInvalidExpression)
			}
			tokens = append(tokens, token{kind: k, pos: i})
			i++
		}
	}
	return append(tokens, token{kind: eof, pos: len(expr)}), nil
}

var singles = map[byte]kind{
	'+': plus,
	'-': minus,
	'*': star,
	'/': slash,
	'%': percent,
	'(': lparen,
	')': rparen,
}

// lexNumber reads one numeric literal from the start of s and reports how
// many bytes it used. Literals with a point or an exponent are floats;
// integer literals other than zeros may not start with 0.
func lexNumber(s string) (Value, int, error) {
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	digits := i
	integer := true
	if i < len(s) && s[i] == '.' {
		integer = false
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return Value{}, 0, fmt.Errorf("lone decimal point: %w", smartcalc.ErrInvalidExpression)
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		start := j
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j == start {
			return Value{}, 0, fmt.Errorf("malformed exponent in %q: %w", s[:j], smartcalc.ErrInvalidExpression)
		}
		integer = false
		i = j
	}

	if integer {
		lit := s[:i]
		if len(lit) > 1 && lit[0] == '0' && strings.TrimLeft(lit, "0") != "" {
			return Value{}, 0, fmt.Errorf("leading zero in %q: %w", lit, smartcalc.ErrInvalidExpression)
		}
		n, ok := new(big.Int).SetString(lit, 10)
		if !ok {
			return Value{}, 0, fmt.Errorf("bad number %q: %w", lit, smartcalc.ErrInvalidExpression)
		}
		return Value{i: n}, i, nil
	}

	f, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return Value{}, 0, fmt.Errorf("bad number %q: %w", s[:i], smartcalc.ErrInvalidExpression)
	}
	return Value{f: f}, i, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
