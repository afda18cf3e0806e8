package stages_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/M34031-1/high-load-course/internal/models"
	"github.com/M34031-1/high-load-course/internal/stages"
	"github.com/stretchr/testify/assert"
	"golang.org/x/sync/semaphore"
)

func TestSemaphoreStage_BoundsConcurrency(t *testing.T) {
	const permits = 3
	const invocations = 20

	var active, observedMax, calls atomic.Int32
	next := stageFunc(func(ctx context.Context, payment models.Payment) (models.ProcessResult, error) {
		calls.Add(1)
		current := active.Add(1)
		for {
			max := observedMax.Load()
			if current <= max || observedMax.CompareAndSwap(max, current) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)
		active.Add(-1)
		return models.ProcessResult{Retry: false}, nil
	})

	stage := stages.NewSemaphoreStage(next, semaphore.NewWeighted(permits))

	var wg sync.WaitGroup
	for i := 0; i < invocations; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := stage.Process(context.Background(), testPayment())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.EqualValues(t, invocations, calls.Load())
	assert.LessOrEqual(t, observedMax.Load(), int32(permits))
}

func TestSemaphoreStage_ReleasesSlotOnError(t *testing.T) {
	gate := semaphore.NewWeighted(1)
	next := stageFunc(func(ctx context.Context, payment models.Payment) (models.ProcessResult, error) {
		return models.ProcessResult{}, errors.New("boom")
	})

	stage := stages.NewSemaphoreStage(next, gate)

	_, err := stage.Process(context.Background(), testPayment())
	assert.Error(t, err)

	// The slot must be free again after the failed invocation.
	assert.True(t, gate.TryAcquire(1))
	gate.Release(1)
}

func TestSemaphoreStage_CancelledWhileWaiting(t *testing.T) {
	gate := semaphore.NewWeighted(1)
	assert.True(t, gate.TryAcquire(1))
	defer gate.Release(1)

	var calls atomic.Int32
	next := stageFunc(func(ctx context.Context, payment models.Payment) (models.ProcessResult, error) {
		calls.Add(1)
		return models.ProcessResult{}, nil
	})

	stage := stages.NewSemaphoreStage(next, gate)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := stage.Process(ctx, testPayment())

	assert.Error(t, err)
	assert.EqualValues(t, 0, calls.Load())
}
