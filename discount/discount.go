package discount

import (
	"context"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"go-smart-calc"
)

var hundred = decimal.NewFromInt(100)

// Calculate applies percent to price. Both must be non-negative and percent
// at most 100; savings and final price are rounded to 2 decimals.
func Calculate(price smartcalc.Amount, percent float64) (smartcalc.Discounted, error) {
	if math.IsNaN(float64(price)) || math.IsInf(float64(price), 0) || math.IsNaN(percent) || math.IsInf(percent, 0) {
		return smartcalc.Discounted{}, fmt.Errorf("discount [%v, %v]: %w", price, percent, smartcalc.ErrInvalidNumber)
	}
	if price < 0 || percent < 0 {
		return smartcalc.Discounted{}, fmt.Errorf("discount [%v, %v]: %w", price, percent, smartcalc.ErrNegativeValue)
	}
	if percent > 100 {
		return smartcalc.Discounted{}, fmt.Errorf("discount [%v%%]: %w", percent, smartcalc.ErrPercentTooHigh)
	}

	p := decimal.NewFromFloat(float64(price))
	savings := p.Mul(decimal.NewFromFloat(percent)).Div(hundred)
	final := p.Sub(savings)

	return smartcalc.Discounted{
		Price:   price,
		Percent: percent,
		Savings: smartcalc.Amount(savings.Round(2).InexactFloat64()),
		Final:   smartcalc.Amount(final.Round(2).InexactFloat64()),
	}, nil
}

// Format renders a discount the way the result panel shows it
func Format(d smartcalc.Discounted) string {
	return fmt.Sprintf("Final Price: %.2f\nYou Save: %.2f", float64(d.Final), float64(d.Savings))
}

// Service computes discounts
type Service interface {
	Discount(ctx context.Context, price smartcalc.Amount, percent float64) (smartcalc.Discounted, error)
}

type service struct{}

// NewService constructs a discount Service
func NewService() Service {
	return &service{}
}

func (s *service) Discount(_ context.Context, price smartcalc.Amount, percent float64) (smartcalc.Discounted, error) {
	return Calculate(price, percent)
}
