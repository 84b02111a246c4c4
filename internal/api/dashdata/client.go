package dashdata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/omarshaarawi/leaguedash/internal/config"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	now        func() time.Time
}

func NewClient(cfg config.DataSource) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.FetchTimeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		now:        time.Now,
	}
}

// Get fetches a JSON document relative to the base URL. Every request carries
// a "t" timestamp so intermediate caches never serve a stale document.
func (c *Client) Get(ctx context.Context, name string, result interface{}) error {
	u, err := url.Parse(fmt.Sprintf("%s/%s", c.baseURL, name))
	if err != nil {
		return fmt.Errorf("error building url: %w", err)
	}

	q := u.Query()
	q.Set("t", fmt.Sprintf("%d", c.now().UnixMilli()))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("error decoding response: %w", err)
	}

	return nil
}
