package discovery

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/M34031-1/high-load-course/internal/models"
)

// Client fetches the provider's declared accounts at process startup.
// It is never used on the hot path.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(hostPort string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		baseURL:    "http://" + hostPort,
	}
}

// FetchAccounts returns every account the provider declares for serviceName.
// Filtering to the enabled allow-list is the caller's concern.
func (c *Client) FetchAccounts(ctx context.Context, serviceName string) ([]models.PaymentAccountProperties, error) {
	q := url.Values{}
	q.Set("serviceName", serviceName)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/external/accounts?"+q.Encode(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create accounts request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("accounts request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("accounts request returned status %d", resp.StatusCode)
	}

	var accounts []models.PaymentAccountProperties
	if err := json.NewDecoder(resp.Body).Decode(&accounts); err != nil {
		return nil, fmt.Errorf("failed to decode accounts response: %w", err)
	}

	return accounts, nil
}
