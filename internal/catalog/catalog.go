// Package catalog provides a read-only client for the remote product
// catalog service used to enrich sales transactions.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"fjacquet/sales-csv/internal/logging"
	"fjacquet/sales-csv/internal/parsererror"

	"github.com/shopspring/decimal"
)

// Defaults for the catalog client.
const (
	DefaultBaseURL = "https://dummyjson.com"
	DefaultLimit   = 100
	DefaultTimeout = 30 * time.Second
)

// Product is one catalog entry. The enrichment join consumes only the
// id, category, brand and rating projection.
type Product struct {
	ID       int             `json:"id"`
	Title    string          `json:"title"`
	Category string          `json:"category"`
	Brand    string          `json:"brand"`
	Price    decimal.Decimal `json:"price"`
	Rating   decimal.Decimal `json:"rating"`
}

type productsResponse struct {
	Products []Product `json:"products"`
}

// Client fetches products from the remote catalog service.
type Client struct {
	baseURL    string
	limit      int
	httpClient *http.Client
	logger     logging.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL overrides the catalog base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// WithLimit overrides the maximum number of entries requested per run.
func WithLimit(limit int) Option {
	return func(c *Client) {
		if limit > 0 {
			c.limit = limit
		}
	}
}

// WithTimeout overrides the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// NewClient creates a catalog client with the given options.
func NewClient(logger logging.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	c := &Client{
		baseURL:    DefaultBaseURL,
		limit:      DefaultLimit,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchProducts queries the catalog once for up to the configured
// number of entries. Transport, status and decode failures all surface
// as a FetchError; callers degrade to an empty catalog on any error.
func (c *Client) FetchProducts(ctx context.Context) ([]Product, error) {
	url := fmt.Sprintf("%s/products?limit=%d", c.baseURL, c.limit)
	c.logger.Info("Fetching product catalog",
		logging.Field{Key: logging.FieldURL, Value: url})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &parsererror.FetchError{URL: url, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &parsererror.FetchError{URL: url, Err: err}
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.WithError(err).Warn("Failed to close response body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, &parsererror.FetchError{
			URL: url,
			Err: fmt.Errorf("unexpected status: %s", resp.Status),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &parsererror.FetchError{URL: url, Err: err}
	}

	var parsed productsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &parsererror.FetchError{URL: url, Err: err}
	}

	c.logger.Info("Fetched product catalog",
		logging.Field{Key: logging.FieldCount, Value: len(parsed.Products)})

	return parsed.Products, nil
}
