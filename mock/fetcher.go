package mock

import (
	"context"

	"github.com/akmandhania/jobscrape"
)

var _ jobscrape.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of jobscrape.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

var _ jobscrape.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of jobscrape.DomainLimiter.
type DomainLimiter struct {
	AcquireFn func(ctx context.Context, domain string) (func(), error)
}

func (l *DomainLimiter) Acquire(ctx context.Context, domain string) (func(), error) {
	return l.AcquireFn(ctx, domain)
}
