package accounts

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/M34031-1/high-load-course/internal/models"
	"github.com/M34031-1/high-load-course/internal/provider"
	"github.com/M34031-1/high-load-course/internal/stages"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

var ErrNoEnabledAccounts = errors.New("no enabled payment accounts")

// PipelineConfig carries the per-deployment knobs for one account's chain.
// Rate and concurrency budgets come from the discovered account properties.
type PipelineConfig struct {
	RetryAttempts int
	RetryDelay    time.Duration
	HedgeDelay    time.Duration
	CallTimeout   time.Duration
}

// Account pairs discovered provider-account properties with the composed
// root stage built for it at startup.
type Account struct {
	Properties models.PaymentAccountProperties
	Pipeline   stages.PaymentStage
}

// Registry holds one pipeline per enabled account and routes payments across
// them round-robin.
type Registry struct {
	accounts []*Account
	next     atomic.Uint64
}

// NewRegistry filters the discovered accounts to the enabled allow-list and
// composes one pipeline per retained account.
func NewRegistry(
	discovered []models.PaymentAccountProperties,
	allowed []string,
	cfg PipelineConfig,
	ledger stages.Ledger,
	client *provider.Client,
) (*Registry, error) {
	enabled := make(map[string]struct{}, len(allowed))
	for _, name := range allowed {
		enabled[name] = struct{}{}
	}

	var accounts []*Account
	for _, properties := range discovered {
		if _, ok := enabled[properties.AccountName]; !ok {
			continue
		}

		logrus.Infof("Enabling payment account %s (rate=%d/s, parallel=%d, avg=%dms)",
			properties.AccountName, properties.RateLimitPerSec, properties.ParallelRequests, properties.AverageProcessingTimeMs)

		accounts = append(accounts, &Account{
			Properties: properties,
			Pipeline:   buildPipeline(properties, cfg, ledger, client),
		})
	}

	if len(accounts) == 0 {
		return nil, ErrNoEnabledAccounts
	}

	return &Registry{accounts: accounts}, nil
}

// Chain order, outermost first: Retry, RateLimit, Semaphore, Hedged, Process.
// Every retry re-consumes a rate slot, and a hedge pair shares one admitted
// slot so hedging never doubles throughput.
func buildPipeline(properties models.PaymentAccountProperties, cfg PipelineConfig, ledger stages.Ledger, client *provider.Client) stages.PaymentStage {
	var stage stages.PaymentStage = stages.NewProcessStage(ledger, client, properties, cfg.CallTimeout)

	if cfg.HedgeDelay > 0 {
		stage = stages.NewHedgedStage(stage, cfg.HedgeDelay)
	}

	stage = stages.NewSemaphoreStage(stage, semaphore.NewWeighted(properties.ParallelRequests))
	stage = stages.NewRateLimitStage(stage, rate.NewLimiter(rate.Limit(properties.RateLimitPerSec), properties.RateLimitPerSec))

	if cfg.RetryAttempts > 1 {
		stage = stages.NewRetryStage(stage, cfg.RetryAttempts, cfg.RetryDelay)
	}

	return stage
}

// Submit routes the payment to the next account's pipeline and returns the
// terminal result together with the account that handled it.
func (r *Registry) Submit(ctx context.Context, payment models.Payment) (models.ProcessResult, string, error) {
	account := r.accounts[r.next.Add(1)%uint64(len(r.accounts))]
	result, err := account.Pipeline.Process(ctx, payment)

	return result, account.Properties.AccountName, err
}
