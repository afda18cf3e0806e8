package stages

import (
	"context"
	"time"

	"github.com/M34031-1/high-load-course/internal/models"
	"github.com/M34031-1/high-load-course/internal/provider"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const timeoutReason = "Request timeout."

// ProcessStage is the unique leaf of every pipeline: one invocation is one
// physical external call under a fresh transaction id.
type ProcessStage struct {
	ledger     Ledger
	client     *provider.Client
	properties models.PaymentAccountProperties
	timeout    time.Duration
	log        *logrus.Entry
}

// NewProcessStage builds the leaf stage for one provider account. A timeout
// of zero disables the per-call bound.
func NewProcessStage(ledger Ledger, client *provider.Client, properties models.PaymentAccountProperties, timeout time.Duration) *ProcessStage {
	return &ProcessStage{
		ledger:     ledger,
		client:     client,
		properties: properties,
		timeout:    timeout,
		log:        logrus.WithField("account", properties.AccountName),
	}
}

// Process submits one attempt. The submission entry is recorded before the
// call in all cases; a processing entry is recorded for every terminal
// outcome and deliberately omitted when the provider reports a plain failure,
// because that attempt is still retryable by an outer stage.
func (s *ProcessStage) Process(ctx context.Context, payment models.Payment) (models.ProcessResult, error) {
	start := time.Now()
	transactionID := uuid.New()

	s.log.Infof("Submitting payment %s, txId: %s", payment.PaymentID, transactionID)

	err := s.ledger.RecordSubmission(ctx, payment.PaymentID, transactionID, time.Now().UTC(), time.Since(payment.PaymentStartedAt))
	if err != nil {
		return models.ProcessResult{}, err
	}

	resp, callErr := s.client.Submit(ctx, s.properties, transactionID, payment, s.timeout)

	switch {
	case callErr == nil && !resp.Result:
		// Provider-reported failure with a healthy transport: retryable,
		// and no processing entry yet, a fresh attempt may still settle it.
		return models.ProcessResult{Retry: true, ProcessingTime: time.Since(start)}, nil

	case callErr == nil:
		s.log.Infof("Payment %s processed, txId: %s, message: %s", payment.PaymentID, transactionID, resp.Message)
		err = s.ledger.RecordProcessingOutcome(ctx, payment.PaymentID, true, time.Now().UTC(), transactionID, resp.Message)

	case provider.IsTimeout(callErr):
		// The provider's state is unknown; never retried to avoid a
		// duplicate charge.
		s.log.Errorf("Payment %s timed out, txId: %s", payment.PaymentID, transactionID)
		err = s.ledger.RecordProcessingOutcome(ctx, payment.PaymentID, false, time.Now().UTC(), transactionID, timeoutReason)

	default:
		s.log.Errorf("Payment %s failed, txId: %s: %v", payment.PaymentID, transactionID, callErr)
		err = s.ledger.RecordProcessingOutcome(ctx, payment.PaymentID, false, time.Now().UTC(), transactionID, callErr.Error())
	}

	if err != nil {
		return models.ProcessResult{}, err
	}

	return models.ProcessResult{Retry: false, ProcessingTime: time.Since(start)}, nil
}
