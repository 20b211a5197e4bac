// Package fetch retrieves raw feed and page bodies over HTTP.
//
// A single Client is shared by every source worker; it applies a common
// timeout, a polite User-Agent, and a light global rate limit so a burst
// of parallel refreshes does not hammer the network all at once.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultTimeout bounds a single source fetch end to end.
	DefaultTimeout = 18 * time.Second

	userAgent = "Mozilla/5.0 (compatible; pressdeck/1.0; +https://github.com/abelbrown/pressdeck)"

	// AcceptFeed is sent when the URL is expected to serve RSS or Atom.
	AcceptFeed = "application/rss+xml, application/atom+xml, application/xml;q=0.9, text/html;q=0.8, */*;q=0.7"

	// AcceptHTML is sent when scraping a newsroom page directly.
	AcceptHTML = "text/html,application/xhtml+xml,application/xml;q=0.9, */*;q=0.8"

	// maxBodyBytes caps how much of a response we will read. Newsroom
	// pages and feeds are well under this; it guards against a
	// misbehaving endpoint streaming forever.
	maxBodyBytes = 8 << 20
)

// StatusError reports a non-2xx response from a source.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error: %d %s", e.Code, e.Status)
}

// Client fetches source bodies with shared timeout and pacing.
type Client struct {
	http    *http.Client
	limiter *rate.Limiter
}

// New creates a Client with the given per-request timeout.
// A zero or negative timeout falls back to DefaultTimeout.
func New(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		http: &http.Client{
			Timeout: timeout,
		},
		limiter: rate.NewLimiter(rate.Every(50*time.Millisecond), 10),
	}
}

// Get fetches url and returns the response body. The accept header tells
// the server what representation we want; use AcceptFeed or AcceptHTML.
// Non-2xx responses return a *StatusError.
func (c *Client) Get(ctx context.Context, url, accept string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	if accept != "" {
		req.Header.Set("Accept", accept)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}
	return body, nil
}
