package stages

import (
	"context"
	"time"

	"github.com/M34031-1/high-load-course/internal/models"
)

// RetryStage re-invokes its wrapped stage while results stay retryable.
// retryTimes is the total number of attempts including the first. Exhaustion
// returns ProcessResult{Retry: false}: a terminal signal upward, never an
// error, and not to be confused with success. The durable records decide.
type RetryStage struct {
	next       PaymentStage
	retryTimes int
	delay      time.Duration
}

func NewRetryStage(next PaymentStage, retryTimes int, delay time.Duration) *RetryStage {
	return &RetryStage{
		next:       next,
		retryTimes: retryTimes,
		delay:      delay,
	}
}

func (s *RetryStage) Process(ctx context.Context, payment models.Payment) (models.ProcessResult, error) {
	for attempt := 1; attempt <= s.retryTimes; attempt++ {
		result, err := s.next.Process(ctx, payment)
		if err != nil {
			return models.ProcessResult{}, err
		}
		if !result.Retry {
			return result, nil
		}
		if attempt == s.retryTimes {
			break
		}

		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return models.ProcessResult{}, ctx.Err()
		}
	}

	return models.ProcessResult{Retry: false}, nil
}
