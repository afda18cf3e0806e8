package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/M34031-1/high-load-course/internal/models"
	"github.com/google/uuid"
)

// ErrMalformedResponse marks replies whose body could not be decoded into an
// ExternalSysResponse. Non-2xx replies without a decodable body end up here too.
var ErrMalformedResponse = errors.New("malformed provider response")

// Client issues the external process call to the payment provider.
// One Client is shared by all accounts; per-call timeouts come from the caller.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(hostPort string) *Client {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 50,
		IdleConnTimeout:     90 * time.Second,
		DisableCompression:  true,
	}

	return &Client{
		httpClient: &http.Client{Transport: transport},
		baseURL:    "http://" + hostPort,
	}
}

// Submit performs one physical payment attempt identified by transactionID.
// A timeout > 0 bounds this single call; the returned error is a transport or
// decode failure, never a provider-reported business failure.
func (c *Client) Submit(
	ctx context.Context,
	account models.PaymentAccountProperties,
	transactionID uuid.UUID,
	payment models.Payment,
	timeout time.Duration,
) (models.ExternalSysResponse, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	q := url.Values{}
	q.Set("serviceName", account.ServiceName)
	q.Set("accountName", account.AccountName)
	q.Set("transactionId", transactionID.String())
	q.Set("paymentId", payment.PaymentID.String())
	q.Set("amount", payment.Amount.String())
	if timeout > 0 {
		q.Set("timeout", strconv.FormatInt(timeout.Milliseconds(), 10))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/external/process?"+q.Encode(), http.NoBody)
	if err != nil {
		return models.ExternalSysResponse{}, fmt.Errorf("failed to create process request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.ExternalSysResponse{}, err
	}
	defer resp.Body.Close()

	var body models.ExternalSysResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return models.ExternalSysResponse{}, fmt.Errorf("%w: status %d: %v", ErrMalformedResponse, resp.StatusCode, err)
	}

	return body, nil
}

// IsTimeout reports whether err is a transport-level timeout, including a
// per-call deadline expiring mid-request.
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
