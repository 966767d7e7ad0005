// Package colly provides a jobscrape.Fetcher built on gocolly/colly. It is an
// alternative transport to package http with the same failure
// classification.
package colly

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/akmandhania/jobscrape"
	"github.com/gocolly/colly/v2"
)

// DefaultFetchTimeout is the default timeout for one request.
const DefaultFetchTimeout = 15 * time.Second

var _ jobscrape.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves pages with a fresh colly collector per request, so no
// visited-URL state leaks between calls.
type Fetcher struct {
	userAgent  string
	timeout    time.Duration
	signatures []string
	robots     bool
	maxBody    int
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for a single request.
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

// WithRobots makes colly honour robots.txt.
func WithRobots() Option {
	return func(f *Fetcher) {
		f.robots = true
	}
}

// NewFetcher creates a colly-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		userAgent:  jobscrape.DefaultUserAgent,
		timeout:    DefaultFetchTimeout,
		signatures: jobscrape.DefaultBlockSignatures(),
		maxBody:    5 << 20,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch performs one GET request for rawURL and returns the body.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", networkError(err)
	}

	c := colly.NewCollector(colly.UserAgent(f.userAgent), colly.AllowURLRevisit())
	c.IgnoreRobotsTxt = !f.robots
	c.MaxBodySize = f.maxBody
	c.SetRequestTimeout(f.requestTimeout(ctx))

	c.OnRequest(func(r *colly.Request) {
		if ctx.Err() != nil {
			r.Abort()
		}
	})

	var (
		status int
		body   []byte
		reqErr error
	)
	c.OnResponse(func(r *colly.Response) {
		status = r.StatusCode
		body = r.Body
	})
	c.OnError(func(r *colly.Response, err error) {
		if r != nil {
			status = r.StatusCode
		}
		reqErr = err
	})

	hdr := http.Header{}
	hdr.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	hdr.Set("Accept-Language", "en-US,en;q=0.5")
	hdr.Set("Upgrade-Insecure-Requests", "1")

	if err := c.Request(http.MethodGet, rawURL, nil, nil, hdr); err != nil {
		if errors.Is(err, colly.ErrRobotsTxtBlocked) {
			return "", &jobscrape.Error{Code: jobscrape.EBLOCKED, Message: "disallowed by robots.txt", Final: true, Err: err}
		}
		if status == 0 {
			return "", networkError(err)
		}
		reqErr = err
	}
	if err := ctx.Err(); err != nil {
		return "", networkError(err)
	}

	if e := jobscrape.StatusError(status); status != 0 && e != nil {
		e.Err = reqErr
		return "", e
	}
	if reqErr != nil {
		return "", networkError(reqErr)
	}
	if status == 0 {
		return "", &jobscrape.Error{Code: jobscrape.ENETWORK, Message: "no response"}
	}

	html := string(body)
	if e := jobscrape.BlockPageError(html, f.signatures); e != nil {
		return "", e
	}
	return html, nil
}

// Close is a no-op; collectors are discarded after each request.
func (f *Fetcher) Close() error {
	return nil
}

// requestTimeout shortens the configured timeout to the context deadline.
func (f *Fetcher) requestTimeout(ctx context.Context) time.Duration {
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < f.timeout {
			return max(left, time.Millisecond)
		}
	}
	return f.timeout
}

func networkError(err error) *jobscrape.Error {
	return &jobscrape.Error{Code: jobscrape.ENETWORK, Message: fmt.Sprintf("request failed: %v", err), Err: err}
}
