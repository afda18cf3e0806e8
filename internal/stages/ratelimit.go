package stages

import (
	"context"

	"github.com/M34031-1/high-load-course/internal/models"
	"golang.org/x/time/rate"
)

// RateLimitStage blocks until the shared limiter admits the call, then
// delegates. Rate slots are not released on exit; every entry, including each
// retry from an outer RetryStage, consumes a fresh slot.
type RateLimitStage struct {
	next    PaymentStage
	limiter *rate.Limiter
}

func NewRateLimitStage(next PaymentStage, limiter *rate.Limiter) *RateLimitStage {
	return &RateLimitStage{
		next:    next,
		limiter: limiter,
	}
}

func (s *RateLimitStage) Process(ctx context.Context, payment models.Payment) (models.ProcessResult, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return models.ProcessResult{}, err
	}

	return s.next.Process(ctx, payment)
}
