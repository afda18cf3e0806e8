package stages

import (
	"context"

	"github.com/M34031-1/high-load-course/internal/models"
	"golang.org/x/sync/semaphore"
)

// SemaphoreStage bounds how many invocations of its wrapped stage are in
// flight at once. The gate is shared across all concurrent invocations for an
// account; the slot is released on every exit path, cancellation included.
type SemaphoreStage struct {
	next PaymentStage
	gate *semaphore.Weighted
}

func NewSemaphoreStage(next PaymentStage, gate *semaphore.Weighted) *SemaphoreStage {
	return &SemaphoreStage{
		next: next,
		gate: gate,
	}
}

func (s *SemaphoreStage) Process(ctx context.Context, payment models.Payment) (models.ProcessResult, error) {
	if err := s.gate.Acquire(ctx, 1); err != nil {
		return models.ProcessResult{}, err
	}
	defer s.gate.Release(1)

	return s.next.Process(ctx, payment)
}
