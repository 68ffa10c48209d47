package expression

import (
	"go-smart-calc"
)

// Calculator accumulates keystrokes into an expression and evaluates it on
// demand. It is not safe for concurrent use.
type Calculator struct {
	expression string
}

// New returns an empty Calculator
func New() *Calculator {
	return &Calculator{}
}

// Append adds a keystroke (digit, operator, point or parenthesis)
func (c *Calculator) Append(token string) {
	c.expression += token
}

// Clear resets the expression
func (c *Calculator) Clear() {
	c.expression = ""
}

// Expression the text currently on the display
func (c *Calculator) Expression() string {
	return c.expression
}

// Evaluate computes the accumulated expression. On success the expression
// becomes the formatted result so further keystrokes extend it. On failure
// the expression is cleared and the display text is smartcalc.MsgError.
func (c *Calculator) Evaluate() (string, error) {
	v, err := Eval(c.expression)
	if err != nil {
		c.expression = ""
		return smartcalc.MsgError, err
	}
	c.expression = v.String()
	return c.expression, nil
}
