package expression

import (
	"context"
	"time"

	"github.com/go-kit/log"
)

// loggingService decorates an expression.Service with logging
type loggingService struct {
	logger log.Logger
	next   Service
}

// NewLoggingService returns a new instance of a logging Service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		logger: logger,
		next:   s,
	}
}

func (s *loggingService) Calculate(ctx context.Context, expr string) (v Value, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "calculate",
			"expression", expr,
			"result", v,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Calculate(ctx, expr)
}
