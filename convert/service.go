package convert

import (
	"context"
	"fmt"
	"math"
	"math/big"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"go-smart-calc"
	"go-smart-calc/rates"
)

// Menu currency choices offered to users. POUND is not an ISO code and
// never converts.
var Menu = []smartcalc.Currency{
	"USD", "PKR", "EUR", "GBP", "INR", "AED", "SAR", "CAD",
	"AUD", "JPY", "CNY", "TRY", "KWD", "BDT", "POUND",
}

// Service converts amounts between currencies of a fixed rate table
type Service interface {
	Convert(ctx context.Context, amount smartcalc.Amount, from smartcalc.Currency, to smartcalc.Currency) (smartcalc.Exchanged, error)
	Currencies() []smartcalc.Currency
}

// service converter over rates loaded once
type service struct {
	// rates relative to smartcalc.BaseCurrency, never written after New
	rates smartcalc.Rates
}

// New loads the rate table for smartcalc.BaseCurrency once and returns a
// Service converting with it for its whole lifetime.
func New(ctx context.Context, s rates.Service) (Service, error) {
	table, err := s.ExchangeRates(ctx, smartcalc.BaseCurrency)
	if err != nil {
		return nil, fmt.Errorf("loading rates: %w", err)
	}
	return NewWithRates(table), nil
}

// NewWithRates returns a Service over a copy of table
func NewWithRates(table smartcalc.Rates) Service {
	copied := make(smartcalc.Rates, len(table))
	for k, v := range table {
		copied[k] = v
	}
	return &service{rates: copied}
}

// Convert goes through the base currency and rounds to 2 decimals
func (s *service) Convert(_ context.Context, amount smartcalc.Amount, from smartcalc.Currency, to smartcalc.Currency) (smartcalc.Exchanged, error) {
	from, to = normalize(from), normalize(to)

	fromRate, ok := s.rates[from]
	if !ok {
		return smartcalc.Exchanged{}, fmt.Errorf("convert from [%v]: %w", from, smartcalc.ErrInvalidCurrency)
	}
	toRate, ok := s.rates[to]
	if !ok {
		return smartcalc.Exchanged{}, fmt.Errorf("convert to [%v]: %w", to, smartcalc.ErrInvalidCurrency)
	}
	if !finite(float64(amount)) {
		return smartcalc.Exchanged{}, fmt.Errorf("convert amount [%v]: %w", amount, smartcalc.ErrInvalidAmount)
	}
	if fromRate == 0 || !finite(float64(fromRate)) || !finite(float64(toRate)) {
		return smartcalc.Exchanged{}, fmt.Errorf("convert [%v -> %v]: unusable rates %v, %v", from, to, fromRate, toRate)
	}

	base := float64(amount) / float64(fromRate)
	converted := base * float64(toRate)
	if !finite(converted) {
		return smartcalc.Exchanged{}, fmt.Errorf("convert [%v -> %v]: result out of range", from, to)
	}

	return smartcalc.Exchanged{
		From:     from,
		To:       to,
		Original: amount,
		Rate:     toRate / fromRate,
		Amount:   smartcalc.Amount(round2(converted)),
	}, nil
}

// Currencies sorted codes of the loaded table
func (s *service) Currencies() []smartcalc.Currency {
	codes := make([]smartcalc.Currency, 0, len(s.rates))
	for k := range s.rates {
		codes = append(codes, k)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

// Format renders a conversion as "<amount> <from> = <result> <to>"
func Format(ex smartcalc.Exchanged) string {
	return fmt.Sprintf("%v %v = %v %v",
		decimal.NewFromFloat(float64(ex.Original)).String(), ex.From,
		decimal.NewFromFloat(float64(ex.Amount)).StringFixed(2), ex.To)
}

// round2 rounds the exact binary value of f to 2 decimals, ties to even,
// so 2.675 (stored as 2.67499...) gives 2.67
func round2(f float64) float64 {
	exact := new(big.Float).SetFloat64(f).Text('f', 1100)
	d, err := decimal.NewFromString(exact)
	if err != nil {
		return decimal.NewFromFloat(f).RoundBank(2).InexactFloat64()
	}
	return d.RoundBank(2).InexactFloat64()
}

func normalize(c smartcalc.Currency) smartcalc.Currency {
	return smartcalc.Currency(strings.ToUpper(strings.TrimSpace(string(c))))
}

func finite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}
