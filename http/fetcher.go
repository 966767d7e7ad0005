// Package http provides an HTTP-based implementation of jobscrape.Fetcher.
// Each Fetch is a single attempt; retries live in the scrape package.
package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/akmandhania/jobscrape"
)

// DefaultFetchTimeout is the default timeout for one request.
const DefaultFetchTimeout = 15 * time.Second

// DefaultMaxBodyBytes caps how much of a response body is read.
const DefaultMaxBodyBytes = 5 << 20

// Ensure Fetcher implements jobscrape.Fetcher at compile time.
var _ jobscrape.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves job pages with browser-like request headers and
// classifies failures into jobscrape error codes.
type Fetcher struct {
	client     *http.Client
	timeout    time.Duration
	userAgent  string
	signatures []string
	maxBody    int64
	robots     *robotsCache
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for a single request.
// Defaults to DefaultFetchTimeout (15s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides jobscrape.DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithBlockSignatures replaces the phrases that mark a 200 response as a
// block page.
func WithBlockSignatures(signatures []string) Option {
	return func(f *Fetcher) {
		f.signatures = signatures
	}
}

// WithMaxBodyBytes caps the number of body bytes read per response.
func WithMaxBodyBytes(n int64) Option {
	return func(f *Fetcher) {
		f.maxBody = n
	}
}

// WithRobots makes the fetcher consult robots.txt before each request and
// refuse disallowed paths.
func WithRobots() Option {
	return func(f *Fetcher) {
		f.robots = newRobotsCache()
	}
}

// WithClient sets the underlying HTTP client. Its Timeout is ignored in
// favour of the per-request timeout.
func WithClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:    DefaultFetchTimeout,
		userAgent:  jobscrape.DefaultUserAgent,
		signatures: jobscrape.DefaultBlockSignatures(),
		maxBody:    DefaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.client == nil {
		f.client = &http.Client{}
	}
	return f
}

// Fetch performs one GET request for rawURL and returns the body.
//
// Transport failures and timeouts are ENETWORK. Status codes are classified
// by jobscrape.StatusError. A 2xx body matching a block signature is a final
// EBLOCKED, as is a path disallowed by robots.txt.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", &jobscrape.Error{Code: jobscrape.ENETWORK, Message: fmt.Sprintf("invalid request: %v", err), Final: true, Err: err}
	}
	setBrowserHeaders(req, f.userAgent)

	if f.robots != nil && !f.robots.allowed(ctx, f.client, req.URL, f.userAgent) {
		return "", &jobscrape.Error{Code: jobscrape.EBLOCKED, Message: "disallowed by robots.txt", Final: true}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", networkError(err)
	}
	defer resp.Body.Close()

	if e := jobscrape.StatusError(resp.StatusCode); e != nil {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return "", e
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBody))
	if err != nil {
		return "", networkError(err)
	}

	html := string(body)
	if e := jobscrape.BlockPageError(html, f.signatures); e != nil {
		return "", e
	}
	return html, nil
}

// Close releases idle connections.
func (f *Fetcher) Close() error {
	f.client.CloseIdleConnections()
	return nil
}

func setBrowserHeaders(req *http.Request, userAgent string) {
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	req.Header.Set("Upgrade-Insecure-Requests", "1")
	req.Header.Set("Sec-Fetch-Dest", "document")
	req.Header.Set("Sec-Fetch-Mode", "navigate")
}

func networkError(err error) *jobscrape.Error {
	msg := fmt.Sprintf("request failed: %v", err)
	if errors.Is(err, context.DeadlineExceeded) {
		msg = "request timed out"
	}
	return &jobscrape.Error{Code: jobscrape.ENETWORK, Message: msg, Err: err}
}
