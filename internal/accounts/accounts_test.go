package accounts_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/M34031-1/high-load-course/internal/accounts"
	"github.com/M34031-1/high-load-course/internal/models"
	"github.com/M34031-1/high-load-course/internal/provider"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type nopLedger struct{}

func (nopLedger) RecordSubmission(ctx context.Context, paymentID, transactionID uuid.UUID, observedAt time.Time, elapsed time.Duration) error {
	return nil
}

func (nopLedger) RecordProcessingOutcome(ctx context.Context, paymentID uuid.UUID, success bool, observedAt time.Time, transactionID uuid.UUID, reason string) error {
	return nil
}

func discoveredAccounts() []models.PaymentAccountProperties {
	return []models.PaymentAccountProperties{
		{ServiceName: "onlineStore", AccountName: "acc-1", RateLimitPerSec: 100, ParallelRequests: 10},
		{ServiceName: "onlineStore", AccountName: "acc-9", RateLimitPerSec: 110, ParallelRequests: 50},
	}
}

func pipelineConfig() accounts.PipelineConfig {
	return accounts.PipelineConfig{
		RetryAttempts: 1,
		RetryDelay:    time.Millisecond,
		CallTimeout:   time.Second,
	}
}

func succeedingProvider(t *testing.T) *provider.Client {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"transactionId":%q,"paymentId":%q,"result":true,"message":"OK"}`,
			r.URL.Query().Get("transactionId"), r.URL.Query().Get("paymentId"))
	}))
	t.Cleanup(server.Close)

	return provider.NewClient(strings.TrimPrefix(server.URL, "http://"))
}

func payment() models.Payment {
	return models.Payment{
		PaymentID:        uuid.New(),
		OrderID:          uuid.New(),
		Amount:           decimal.NewFromInt(100),
		PaymentStartedAt: time.Now().UTC(),
	}
}

func TestNewRegistry_FiltersToAllowList(t *testing.T) {
	registry, err := accounts.NewRegistry(discoveredAccounts(), []string{"acc-9"}, pipelineConfig(), nopLedger{}, succeedingProvider(t))
	assert.NoError(t, err)

	result, accountName, err := registry.Submit(context.Background(), payment())

	assert.NoError(t, err)
	assert.False(t, result.Retry)
	assert.Equal(t, "acc-9", accountName)
}

func TestNewRegistry_NoEnabledAccounts(t *testing.T) {
	_, err := accounts.NewRegistry(discoveredAccounts(), []string{"acc-404"}, pipelineConfig(), nopLedger{}, succeedingProvider(t))

	assert.ErrorIs(t, err, accounts.ErrNoEnabledAccounts)
}

func TestRegistry_RoundRobinAcrossAccounts(t *testing.T) {
	registry, err := accounts.NewRegistry(discoveredAccounts(), []string{"acc-1", "acc-9"}, pipelineConfig(), nopLedger{}, succeedingProvider(t))
	assert.NoError(t, err)

	seen := map[string]int{}
	for i := 0; i < 4; i++ {
		_, accountName, err := registry.Submit(context.Background(), payment())
		assert.NoError(t, err)
		seen[accountName]++
	}

	assert.Equal(t, map[string]int{"acc-1": 2, "acc-9": 2}, seen)
}
