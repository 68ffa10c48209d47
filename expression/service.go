package expression

import (
	"context"
)

// Service evaluates standalone expressions
type Service interface {
	Calculate(ctx context.Context, expr string) (Value, error)
}

type service struct{}

// NewService constructs a stateless expression Service
func NewService() Service {
	return &service{}
}

func (s *service) Calculate(_ context.Context, expr string) (Value, error) {
	return Eval(expr)
}
