package convert

import (
	"context"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"go-smart-calc"
)

// loggingService logs every conversion at info, or at warn with the user
// facing message when it fails
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

func (s *loggingService) Convert(ctx context.Context, amount smartcalc.Amount, from smartcalc.Currency, to smartcalc.Currency) (smartcalc.Exchanged, error) {
	begin := time.Now()
	ex, err := s.next.Convert(ctx, amount, from, to)
	if err != nil {
		level.Warn(s.logger).Log(
			"method", "convert",
			"pair", string(from)+"/"+string(to),
			"amount", amount,
			"shown", smartcalc.Message(err),
			"took", time.Since(begin),
			"err", err,
		)
		return ex, err
	}
	level.Info(s.logger).Log(
		"method", "convert",
		"pair", string(ex.From)+"/"+string(ex.To),
		"amount", ex.Original,
		"rate", ex.Rate,
		"result", ex.Amount,
		"took", time.Since(begin),
	)
	return ex, nil
}

func (s *loggingService) Currencies() []smartcalc.Currency {
	codes := s.next.Currencies()
	level.Debug(s.logger).Log("method", "currencies", "count", len(codes))
	return codes
}
