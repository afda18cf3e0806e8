package stages

import (
	"context"
	"time"

	"github.com/M34031-1/high-load-course/internal/models"
	"github.com/google/uuid"
)

// PaymentStage is one composable unit of the outbound-call chain: given a
// payment, produce a ProcessResult. Decorators exclusively own the stage they
// wrap; composition happens once at startup and is immutable afterwards.
//
// The error return is reserved for collaborator failures (ledger writes and
// the like) that must propagate to the dispatcher. Anything attributable to
// the external call itself is folded into the ProcessResult and the durable
// records, never surfaced as an error.
type PaymentStage interface {
	Process(ctx context.Context, payment models.Payment) (models.ProcessResult, error)
}

// Ledger is the durable payment state consumed by ProcessStage. A submission
// entry is recorded before every physical attempt; a processing entry records
// that attempt's terminal verdict.
type Ledger interface {
	RecordSubmission(ctx context.Context, paymentID, transactionID uuid.UUID, observedAt time.Time, elapsed time.Duration) error
	RecordProcessingOutcome(ctx context.Context, paymentID uuid.UUID, success bool, observedAt time.Time, transactionID uuid.UUID, reason string) error
}
