package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	PaymentCreatedTopic = "payments.created"
)

// PaymentCreatedEvent is the upstream notification that a payment must be
// submitted to the provider. Delivery is at-least-once; deduplicating the
// notification itself is the upstream's concern.
type PaymentCreatedEvent struct {
	PaymentID uuid.UUID       `json:"payment_id"`
	OrderID   uuid.UUID       `json:"order_id"`
	Amount    decimal.Decimal `json:"amount"`
	Deadline  time.Time       `json:"deadline"`
	TraceID   string          `json:"trace_id"`
}
