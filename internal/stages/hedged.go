package stages

import (
	"context"
	"time"

	"github.com/M34031-1/high-load-course/internal/models"
)

// HedgedStage races a primary invocation of the wrapped stage against a
// secondary one launched after hedgeDelay, returning whichever finishes first.
// Both attempts run under a context cancelled when Process returns, so the
// loser's external call is interrupted instead of lingering on provider
// capacity. Place this inside the rate/semaphore gates: a hedge pair must not
// double the admitted throughput.
type HedgedStage struct {
	next       PaymentStage
	hedgeDelay time.Duration
}

func NewHedgedStage(next PaymentStage, hedgeDelay time.Duration) *HedgedStage {
	return &HedgedStage{
		next:       next,
		hedgeDelay: hedgeDelay,
	}
}

func (s *HedgedStage) Process(ctx context.Context, payment models.Payment) (models.ProcessResult, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type attempt struct {
		result models.ProcessResult
		err    error
	}

	// Buffered so the loser never blocks after the winner is taken.
	results := make(chan attempt, 2)
	launch := func() {
		go func() {
			result, err := s.next.Process(ctx, payment)
			results <- attempt{result: result, err: err}
		}()
	}

	launch()

	timer := time.NewTimer(s.hedgeDelay)
	defer timer.Stop()

	select {
	case first := <-results:
		// Primary finished within the delay: no race overhead.
		return first.result, first.err
	case <-ctx.Done():
		return models.ProcessResult{}, ctx.Err()
	case <-timer.C:
	}

	// The timer and a finishing primary can become ready in the same
	// instant. Prefer the delivered result over a needless second attempt.
	select {
	case first := <-results:
		return first.result, first.err
	default:
	}

	launch()

	select {
	case winner := <-results:
		return winner.result, winner.err
	case <-ctx.Done():
		return models.ProcessResult{}, ctx.Err()
	}
}
