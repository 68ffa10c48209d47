package discount

import (
	"context"
	"time"

	"github.com/go-kit/log"
	"go-smart-calc"
)

// loggingService decorates a discount.Service with logging
type loggingService struct {
	logger log.Logger
	next   Service
}

// NewLoggingService returns a new instance of a logging Service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) Discount(ctx context.Context, price smartcalc.Amount, percent float64) (d smartcalc.Discounted, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "discount",
			"price", price,
			"percent", percent,
			"savings", d.Savings,
			"final", d.Final,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Discount(ctx, price, percent)
}
