package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/M34031-1/high-load-course/internal/ledger"
	"github.com/M34031-1/high-load-course/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type PaymentDispatcher interface {
	Dispatch(ctx context.Context, event models.PaymentCreatedEvent) error
}

type RecordReader interface {
	RecordsForPayment(ctx context.Context, paymentID uuid.UUID) ([]ledger.PaymentRecord, error)
}

type PaymentHandler struct {
	Dispatcher PaymentDispatcher
	Records    RecordReader
}

func NewPaymentHandler(dispatcher PaymentDispatcher, records RecordReader) *PaymentHandler {
	return &PaymentHandler{
		Dispatcher: dispatcher,
		Records:    records,
	}
}

// HandleEvents routes consumed stream messages. A returned error triggers the
// subscriber's retry-then-DLQ handling.
func (h *PaymentHandler) HandleEvents(ctx context.Context, topic string, value []byte) error {
	switch topic {
	case models.PaymentCreatedTopic:
		var event models.PaymentCreatedEvent
		if err := json.Unmarshal(value, &event); err != nil {
			logrus.Errorf("Error parsing payment created event %s", err.Error())
			return fmt.Errorf("error parsing payment created event %w", err)
		}

		if err := h.Dispatcher.Dispatch(ctx, event); err != nil {
			return fmt.Errorf("error dispatching payment %s: %w", event.PaymentID, err)
		}

		return nil
	default:
		logrus.Errorf("topic not allowed %s", topic)
		return fmt.Errorf("topic not allowed %s", topic)
	}
}

// GET /payments/:id/records
func (h *PaymentHandler) GetPaymentRecords(c *gin.Context) {
	paymentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment id"})
		return
	}

	records, err := h.Records.RecordsForPayment(c.Request.Context(), paymentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, records)
}
