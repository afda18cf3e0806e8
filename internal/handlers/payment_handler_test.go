package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/M34031-1/high-load-course/internal/handlers"
	"github.com/M34031-1/high-load-course/internal/handlers/mocks"
	"github.com/M34031-1/high-load-course/internal/ledger"
	"github.com/M34031-1/high-load-course/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestHandleEvents_PaymentCreatedDispatches(t *testing.T) {
	mockDispatcher := mocks.NewMockPaymentDispatcher(t)
	h := handlers.NewPaymentHandler(mockDispatcher, nil)

	event := models.PaymentCreatedEvent{
		PaymentID: uuid.New(),
		OrderID:   uuid.New(),
		Amount:    decimal.NewFromInt(100),
		Deadline:  time.Now().UTC().Add(5 * time.Second),
		TraceID:   "trace-123",
	}
	value, err := json.Marshal(event)
	assert.NoError(t, err)

	ctx := context.Background()

	mockDispatcher.EXPECT().
		Dispatch(ctx, mock.MatchedBy(func(evt models.PaymentCreatedEvent) bool {
			return evt.PaymentID == event.PaymentID &&
				evt.OrderID == event.OrderID &&
				evt.Amount.Equal(event.Amount) &&
				evt.Deadline.Equal(event.Deadline)
		})).
		Return(nil).
		Once()

	err = h.HandleEvents(ctx, models.PaymentCreatedTopic, value)

	assert.NoError(t, err)
	mockDispatcher.AssertExpectations(t)
}

func TestHandleEvents_UnmarshalError(t *testing.T) {
	mockDispatcher := mocks.NewMockPaymentDispatcher(t)
	h := handlers.NewPaymentHandler(mockDispatcher, nil)

	err := h.HandleEvents(context.Background(), models.PaymentCreatedTopic, []byte(`{"invalid json`))

	assert.Error(t, err)
	mockDispatcher.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
}

func TestHandleEvents_TopicNotAllowed(t *testing.T) {
	mockDispatcher := mocks.NewMockPaymentDispatcher(t)
	h := handlers.NewPaymentHandler(mockDispatcher, nil)

	err := h.HandleEvents(context.Background(), "wallet.funds.verified", []byte(`{}`))

	assert.Error(t, err)
	mockDispatcher.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
}

func recordsRouter(h *handlers.PaymentHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/payments/:id/records", h.GetPaymentRecords)
	return router
}

func TestGetPaymentRecords_ReturnsHistory(t *testing.T) {
	paymentID := uuid.New()
	records := []ledger.PaymentRecord{
		{ID: uuid.New().String(), PaymentID: paymentID.String(), Type: ledger.RecordTypeSubmission, Success: true},
		{ID: uuid.New().String(), PaymentID: paymentID.String(), Type: ledger.RecordTypeProcessing, Success: false, Reason: "Request timeout."},
	}

	mockRecords := mocks.NewMockRecordReader(t)
	mockRecords.EXPECT().
		RecordsForPayment(mock.Anything, paymentID).
		Return(records, nil).
		Once()

	h := handlers.NewPaymentHandler(nil, mockRecords)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/payments/"+paymentID.String()+"/records", nil)
	recordsRouter(h).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body []ledger.PaymentRecord
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body, 2)
	assert.Equal(t, ledger.RecordTypeSubmission, body[0].Type)
	assert.Equal(t, "Request timeout.", body[1].Reason)
}

func TestGetPaymentRecords_InvalidID(t *testing.T) {
	mockRecords := mocks.NewMockRecordReader(t)
	h := handlers.NewPaymentHandler(nil, mockRecords)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/payments/not-a-uuid/records", nil)
	recordsRouter(h).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockRecords.AssertNotCalled(t, "RecordsForPayment", mock.Anything, mock.Anything)
}

func TestGetPaymentRecords_StoreFailure(t *testing.T) {
	paymentID := uuid.New()

	mockRecords := mocks.NewMockRecordReader(t)
	mockRecords.EXPECT().
		RecordsForPayment(mock.Anything, paymentID).
		Return(nil, errors.New("ledger unavailable")).
		Once()

	h := handlers.NewPaymentHandler(nil, mockRecords)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/payments/"+paymentID.String()+"/records", nil)
	recordsRouter(h).ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHandleEvents_DispatchErrorPropagates(t *testing.T) {
	mockDispatcher := mocks.NewMockPaymentDispatcher(t)
	h := handlers.NewPaymentHandler(mockDispatcher, nil)

	event := models.PaymentCreatedEvent{PaymentID: uuid.New(), OrderID: uuid.New(), Amount: decimal.NewFromInt(50)}
	value, err := json.Marshal(event)
	assert.NoError(t, err)

	expectedErr := errors.New("gate closed")

	mockDispatcher.EXPECT().
		Dispatch(mock.Anything, mock.AnythingOfType("models.PaymentCreatedEvent")).
		Return(expectedErr).
		Once()

	err = h.HandleEvents(context.Background(), models.PaymentCreatedTopic, value)

	assert.ErrorIs(t, err, expectedErr)
}
