package expression

import (
	"fmt"
	"strings"

	"go-smart-calc"
)

// Eval parses and computes an arithmetic expression.
//
//	expr    = term { ("+" | "-") term }
//	term    = unary { ("*" | "/" | "//" | "%") unary }
//	unary   = ("+" | "-") unary | power
//	power   = primary [ "**" unary ]
//	primary = number | "(" expr ")"
func Eval(expr string) (Value, error) {
	if strings.TrimSpace(expr) == "" {
		return Value{}, fmt.Errorf("empty expression: %w", smartcalc.ErrInvalidExpression)
	}
	tokens, err := tokenize(expr)
	if err != nil {
		return Value{}, fmt.Errorf("tokenize %q: %w", expr, err)
	}

	p := parser{tokens: tokens}
	v, err := p.expr()
	if err != nil {
		return Value{}, fmt.Errorf("evaluate %q: %w", expr, err)
	}
	if t := p.peek(); t.kind != eof {
		return Value{}, fmt.Errorf("evaluate %q: unexpected %v at offset %d: %w", expr, t.kind, t.pos, smartcalc.ErrInvalidExpression)
	}
	return v, nil
}

// maxDepth bounds nesting of parentheses, unary signs and ** exponents
const maxDepth = 200

type parser struct {
	tokens []token
	pos    int
	depth  int
}

// enter tracks one more level of nesting and fails past maxDepth
func (p *parser) enter() error {
	p.depth++
	if p.depth > maxDepth {
		return fmt.Errorf("nesting deeper than %d at offset %d: %w", maxDepth, p.peek().pos, smartcalc.ErrInvalidExpression)
	}
	return nil
}

func (p *parser) leave() {
	p.depth--
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) next() token {
	t := p.tokens[p.pos]
	if t.kind != eof {
		p.pos++
	}
	return t
}

func (p *parser) expr() (Value, error) {
	left, err := p.term()
	if err != nil {
		return Value{}, err
	}
	for k := p.peek().kind; k == plus || k == minus; k = p.peek().kind {
		p.next()
		right, err := p.term()
		if err != nil {
			return Value{}, err
		}
		if left, err = apply(k, left, right); err != nil {
			return Value{}, err
		}
	}
	return left, nil
}

func (p *parser) term() (Value, error) {
	left, err := p.unary()
	if err != nil {
		return Value{}, err
	}
	for k := p.peek().kind; k == star || k == slash || k == floorSlash || k == percent; k = p.peek().kind {
		p.next()
		right, err := p.unary()
		if err != nil {
			return Value{}, err
		}
		if left, err = apply(k, left, right); err != nil {
			return Value{}, err
		}
	}
	return left, nil
}

func (p *parser) unary() (Value, error) {
	k := p.peek().kind
	if k != plus && k != minus {
		return p.power()
	}
	p.next()
	if err := p.enter(); err != nil {
		return Value{}, err
	}
	defer p.leave()
	v, err := p.unary()
	if err != nil {
		return Value{}, err
	}
	if k == minus {
		v = v.neg()
	}
	return v, nil
}

func (p *parser) power() (Value, error) {
	base, err := p.primary()
	if err != nil {
		return Value{}, err
	}
	if p.peek().kind != power {
		return base, nil
	}
	p.next()
	if err := p.enter(); err != nil {
		return Value{}, err
	}
	defer p.leave()
	exp, err := p.unary()
	if err != nil {
		return Value{}, err
	}
	return apply(power, base, exp)
}

func (p *parser) primary() (Value, error) {
	t := p.next()
	switch t.kind {
	case number:
		return t.value, nil
	case lparen:
		if err := p.enter(); err != nil {
			return Value{}, err
		}
		defer p.leave()
		v, err := p.expr()
		if err != nil {
			return Value{}, err
		}
		if closing := p.next(); closing.kind != rparen {
			return Value{}, fmt.Errorf("expected ) at offset %d, got %v: %w", closing.pos, closing.kind, smartcalc.ErrInvalidExpression)
		}
		return v, nil
	}
	return Value{}, fmt.Errorf("unexpected %v at offset %d: %w", t.kind, t.pos, smartcalc.ErrInvalidExpression)
}
