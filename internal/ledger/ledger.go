package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RecordType string

const (
	RecordTypeSubmission RecordType = "SUBMISSION"
	RecordTypeProcessing RecordType = "PROCESSING"
)

// PaymentRecord is one append-only row of a payment's durable history.
// A submission row is written before every physical external attempt; a
// processing row carries that attempt's terminal verdict.
type PaymentRecord struct {
	ID            string     `gorm:"primaryKey" json:"id"`
	PaymentID     string     `gorm:"index" json:"payment_id"`
	TransactionID string     `json:"transaction_id"`
	Type          RecordType `json:"type"`
	Success       bool       `json:"success"`
	Reason        string     `json:"reason,omitempty"`
	ElapsedMs     int64      `json:"elapsed_ms,omitempty"`
	ObservedAt    time.Time  `json:"observed_at"`
	CreatedAt     time.Time  `json:"created_at"`
}

func (r *PaymentRecord) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}

	return
}

// Store persists payment submission/processing records. Safe for concurrent
// use across payments; duplicate submission rows for distinct transaction ids
// are expected (one per physical attempt).
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) RecordSubmission(ctx context.Context, paymentID, transactionID uuid.UUID, observedAt time.Time, elapsed time.Duration) error {
	record := PaymentRecord{
		PaymentID:     paymentID.String(),
		TransactionID: transactionID.String(),
		Type:          RecordTypeSubmission,
		Success:       true,
		ElapsedMs:     elapsed.Milliseconds(),
		ObservedAt:    observedAt,
	}

	return s.db.WithContext(ctx).Create(&record).Error
}

func (s *Store) RecordProcessingOutcome(ctx context.Context, paymentID uuid.UUID, success bool, observedAt time.Time, transactionID uuid.UUID, reason string) error {
	record := PaymentRecord{
		PaymentID:     paymentID.String(),
		TransactionID: transactionID.String(),
		Type:          RecordTypeProcessing,
		Success:       success,
		Reason:        reason,
		ObservedAt:    observedAt,
	}

	return s.db.WithContext(ctx).Create(&record).Error
}

// RecordsForPayment returns a payment's full recorded history, oldest first.
func (s *Store) RecordsForPayment(ctx context.Context, paymentID uuid.UUID) ([]PaymentRecord, error) {
	var records []PaymentRecord
	err := s.db.WithContext(ctx).
		Where("payment_id = ?", paymentID.String()).
		Order("created_at asc").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}
