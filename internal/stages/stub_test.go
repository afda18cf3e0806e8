package stages_test

import (
	"context"
	"time"

	"github.com/M34031-1/high-load-course/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// stageFunc adapts a closure into a PaymentStage for test stubs.
type stageFunc func(ctx context.Context, payment models.Payment) (models.ProcessResult, error)

func (f stageFunc) Process(ctx context.Context, payment models.Payment) (models.ProcessResult, error) {
	return f(ctx, payment)
}

func testPayment() models.Payment {
	return models.Payment{
		PaymentID:        uuid.New(),
		OrderID:          uuid.New(),
		Amount:           decimal.NewFromInt(100),
		PaymentStartedAt: time.Now().UTC(),
		Deadline:         time.Now().UTC().Add(5 * time.Second),
	}
}
