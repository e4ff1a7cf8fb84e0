// Package api implements the records repository contract over HTTP.
// It is the only layer that knows about transport; the store consumes it
// through the repository interface.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/go-resty/resty/v2"

	clienterrors "github.com/inspecly/recordstore-go/internal/errors"
	"github.com/inspecly/recordstore-go/internal/types"
)

const defaultTimeout = 30 * time.Second

// Config collects the knobs for one API client.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration

	// MaxGetRetries bounds transient-error retries for idempotent GETs.
	// Zero disables retries. Mutating calls are never retried.
	MaxGetRetries uint64
}

// Client is the HTTP repository implementation.
type Client struct {
	http          *resty.Client
	maxGetRetries uint64
}

// New constructs a Client against the given backend.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("api: base URL cannot be empty")
	}
	if cfg.APIKey == "" {
		return nil, errors.New("api: API key cannot be empty")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	hc := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(timeout).
		SetAuthToken(cfg.APIKey).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	if debugLoggingRequested() {
		hc.SetTransport(&debugTransport{base: http.DefaultTransport})
	}

	return &Client{http: hc, maxGetRetries: cfg.MaxGetRetries}, nil
}

// getJSON performs an idempotent GET, decoding the success body into out.
// Retryable failures (network errors, 5xx, 408, 429) are retried with
// exponential backoff up to maxGetRetries attempts; permanent ones fail
// immediately. A 404 maps to types.ErrNotFound.
func (c *Client) getJSON(ctx context.Context, operation, path string, query map[string]string, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	attempt := func() error {
		resp, err := c.http.R().
			SetContext(ctx).
			SetQueryParams(query).
			SetResult(out).
			Get(path)
		if err != nil {
			return clienterrors.NewNetworkError(operation, err)
		}
		if resp.IsError() {
			if resp.StatusCode() == http.StatusNotFound {
				return backoff.Permanent(types.ErrNotFound)
			}
			cerr := clienterrors.NewHTTPError(resp.StatusCode(), resp.String(), operation)
			if !clienterrors.IsRetryable(cerr) {
				return backoff.Permanent(cerr)
			}
			return cerr
		}
		return nil
	}
	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.maxGetRetries), ctx)
	return backoff.Retry(attempt, policy)
}
