package scrape

import (
	"context"
	"time"

	"github.com/akmandhania/jobscrape"
)

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// SleepFunc waits for d or until ctx is done, whichever comes first.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Sleep is the real SleepFunc.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

var _ jobscrape.Fetcher = (*RetryFetcher)(nil)

// RetryFetcher retries a single-attempt Fetcher according to a RetryPolicy.
type RetryFetcher struct {
	Fetcher jobscrape.Fetcher
	Policy  jobscrape.RetryPolicy

	// Sleep waits between attempts. Defaults to Sleep.
	Sleep SleepFunc

	// Log, if set, is called before every retry.
	Log LogFunc
}

// NewRetryFetcher wraps f with policy.
func NewRetryFetcher(f jobscrape.Fetcher, policy jobscrape.RetryPolicy) *RetryFetcher {
	return &RetryFetcher{Fetcher: f, Policy: policy, Sleep: Sleep}
}

// Fetch calls the wrapped fetcher until it succeeds, the error is not
// retryable, or the policy's attempts are used up. The returned error carries
// the number of attempts made.
func (r *RetryFetcher) Fetch(ctx context.Context, url string) (string, error) {
	sleep := r.Sleep
	if sleep == nil {
		sleep = Sleep
	}
	maxAttempts := max(r.Policy.MaxAttempts, 1)

	for attempt := 0; ; attempt++ {
		html, err := r.Fetcher.Fetch(ctx, url)
		if err == nil {
			return html, nil
		}

		// Copy so errors shared by the underlying fetcher are never mutated.
		e := *jobscrape.AsError(err, jobscrape.ENETWORK)
		e.Attempts = attempt + 1

		if ctx.Err() != nil || attempt+1 >= maxAttempts || !r.Policy.ShouldRetry(&e) {
			return "", &e
		}

		delay := r.Policy.Delay(attempt)
		if r.Log != nil {
			r.Log("retry %s in %s (attempt %d/%d): %s", url, delay, attempt+2, maxAttempts, e.Message)
		}
		if err := sleep(ctx, delay); err != nil {
			return "", &e
		}
	}
}

// Close closes the wrapped fetcher.
func (r *RetryFetcher) Close() error {
	return r.Fetcher.Close()
}
