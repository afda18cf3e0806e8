package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment is the immutable value that flows through one pipeline invocation.
// Stages never mutate it; retries and hedges operate on the same value.
type Payment struct {
	PaymentID        uuid.UUID
	OrderID          uuid.UUID
	Amount           decimal.Decimal
	PaymentStartedAt time.Time
	Deadline         time.Time
}

// ProcessResult is the only signal that flows back up the stage chain.
// Retry == true means the outcome is still transient and a fresh attempt may
// succeed. Retry == false means a terminal determination was recorded; it does
// NOT imply business success, the durable payment records are authoritative.
type ProcessResult struct {
	Retry          bool
	ProcessingTime time.Duration
}

// PaymentAccountProperties describes one provider account as declared by the
// discovery endpoint. Immutable after startup.
type PaymentAccountProperties struct {
	ServiceName             string `json:"serviceName"`
	AccountName             string `json:"accountName"`
	AverageProcessingTimeMs int64  `json:"averageProcessingTime"`
	RateLimitPerSec         int    `json:"rateLimitPerSec"`
	ParallelRequests        int64  `json:"parallelRequests"`
}

// ExternalSysResponse is the provider's wire-level reply to a process call.
type ExternalSysResponse struct {
	TransactionID string `json:"transactionId"`
	PaymentID     string `json:"paymentId"`
	Result        bool   `json:"result"`
	Message       string `json:"message"`
}
