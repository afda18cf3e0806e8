package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	PaymentProcessedTopic = "payments.processed"
	PaymentsDLQTopic      = "payments.dlq"
)

// PaymentProcessedEvent announces that a payment reached a terminal state in
// the submission pipeline. It says nothing about business success; consumers
// interested in the outcome must read the payment's durable records.
type PaymentProcessedEvent struct {
	PaymentID      uuid.UUID       `json:"payment_id"`
	OrderID        uuid.UUID       `json:"order_id"`
	Amount         decimal.Decimal `json:"amount"`
	AccountName    string          `json:"account_name"`
	ProcessingTime time.Duration   `json:"processing_time_ns"`
	ProcessedAt    time.Time       `json:"processed_at"`
}

type DLQMessage struct {
	OriginalTopic string    `json:"original_topic"`
	Key           string    `json:"key"`
	Value         string    `json:"value"`
	Reason        string    `json:"reason,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
	Attempts      int       `json:"attempts"`
}
