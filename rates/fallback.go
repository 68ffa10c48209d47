package rates

import (
	"context"
	"fmt"
	"time"

	"github.com/eapache/go-resiliency/deadline"
	"github.com/go-kit/log"
	"go-smart-calc"
)

// fallbackRates USD rates used whenever the live table cannot be loaded
var fallbackRates = smartcalc.Rates{
	"USD": 1,
	"PKR": 280.0,
	"EUR": 0.91,
	"GBP": 0.78,
	"INR": 83.2,
	"AED": 3.67,
	"SAR": 3.75,
	"CAD": 1.36,
	"AUD": 1.52,
	"JPY": 150.5,
	"CNY": 7.2,
	"TRY": 33.5,
	"KWD": 0.31,
	"BDT": 118.0,
	"CHF": 0.89,
}

// Fallback returns a copy of the static USD rate table
func Fallback() smartcalc.Rates {
	return copyRates(fallbackRates)
}

// Rebase re-expresses rates, given against any common base, relative to base
func Rebase(rates smartcalc.Rates, base smartcalc.Currency) (smartcalc.Rates, error) {
	pivot, ok := rates[base]
	if !ok || pivot == 0 {
		return nil, fmt.Errorf("rebase [%v]: %w", base, smartcalc.ErrInvalidCurrency)
	}
	rebased := make(smartcalc.Rates, len(rates))
	for k, v := range rates {
		rebased[k] = v / pivot
	}
	return rebased, nil
}

// fallbackService decorates a rates.Service so that a failed or slow lookup
// yields a static table instead of an error
type fallbackService struct {
	next     Service
	fallback smartcalc.Rates
	deadline *deadline.Deadline
	logger   log.Logger
}

// NewFallbackService returns a Service that bounds every lookup by timeout
// and answers with fallback, rebased as needed, when next fails.
// fallback must be expressed relative to smartcalc.BaseCurrency.
func NewFallbackService(timeout time.Duration, fallback smartcalc.Rates, logger log.Logger, s Service) Service {
	return &fallbackService{
		next:     s,
		fallback: fallback,
		deadline: deadline.New(timeout),
		logger:   logger,
	}
}

func (s *fallbackService) ExchangeRates(ctx context.Context, base smartcalc.Currency) (smartcalc.Rates, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var rates smartcalc.Rates
	err := s.deadline.Run(func(stopper <-chan struct{}) error {
		go func() {
			select {
			case <-stopper:
				cancel()
			case <-ctx.Done():
			}
		}()
		r, err := s.next.ExchangeRates(ctx, base)
		if err != nil {
			return err
		}
		rates = r
		return nil
	})
	if err == nil {
		return rates, nil
	}

	s.logger.Log("msg", "using fallback rates", "base", base, "error", err)
	if base == smartcalc.BaseCurrency {
		return copyRates(s.fallback), nil
	}
	rebased, rerr := Rebase(s.fallback, base)
	if rerr != nil {
		return nil, fmt.Errorf("fallback after [%v]: %w", err, rerr)
	}
	return rebased, nil
}

func copyRates(rates smartcalc.Rates) smartcalc.Rates {
	c := make(smartcalc.Rates, len(rates))
	for k, v := range rates {
		c[k] = v
	}
	return c
}
