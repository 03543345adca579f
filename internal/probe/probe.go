// Package probe checks the liveness of a deployed application over HTTP.
package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/csiro-mentor/mentorctl/internal/util/retry"
)

// Response is the backend's health payload. Fields beyond status are
// best-effort; an endpoint that returns 200 with a different body still
// counts as healthy.
type Response struct {
	Status     string `json:"status"`
	Version    string `json:"version"`
	RAGEnabled bool   `json:"rag_enabled"`
}

// Prober issues health checks against an application URL.
type Prober struct {
	client *http.Client
}

// Option configures a Prober.
type Option func(*Prober)

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(p *Prober) {
		p.client = c
	}
}

// New creates a Prober.
func New(opts ...Option) *Prober {
	p := &Prober{
		client: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Check issues a single health request against baseURL+path.
func (p *Prober) Check(ctx context.Context, baseURL, path string) (*Response, error) {
	url := baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNotFound {
		// A missing health route will not appear by waiting.
		return nil, retry.Fatal(fmt.Errorf("health endpoint %s not found", url))
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("health check %s returned status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return nil, err
	}

	var health Response
	if err := json.Unmarshal(body, &health); err != nil {
		// 200 with a non-JSON body still counts as alive.
		return &Response{Status: "healthy"}, nil
	}
	return &health, nil
}

// Wait polls the health endpoint until it responds with 200 or the retry
// budget is exhausted. A freshly deployed app can take minutes to build
// and boot, so the default budget is generous.
func (p *Prober) Wait(ctx context.Context, baseURL, path string) (*Response, error) {
	return p.waitWithOptions(ctx, baseURL, path,
		retry.WithMaxRetries(8),
		retry.WithInitialDelay(5*time.Second),
		retry.WithMaxDelay(60*time.Second))
}

func (p *Prober) waitWithOptions(ctx context.Context, baseURL, path string, opts ...retry.Option) (*Response, error) {
	var health *Response

	err := retry.WithExponentialBackoff(ctx, func() error {
		var checkErr error
		health, checkErr = p.Check(ctx, baseURL, path)
		return checkErr
	}, opts...)
	if err != nil {
		return nil, err
	}
	return health, nil
}
