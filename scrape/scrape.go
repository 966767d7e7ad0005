// Package scrape turns job listing URLs into validated postings. It owns the
// control flow around the pluggable pieces: fetching with retries, choosing
// an adapter, falling back to the generic adapter, cleaning and validating.
package scrape

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/akmandhania/jobscrape"
	"golang.org/x/net/publicsuffix"
	"golang.org/x/sync/errgroup"
)

// Scraper extracts a job posting from a single URL or a batch of URLs.
// It is safe for concurrent use once configured.
type Scraper struct {
	Fetcher   jobscrape.Fetcher
	Registry  jobscrape.AdapterRegistry
	Cleaner   *jobscrape.Cleaner
	Validator *jobscrape.Validator

	// Limiter coordinates concurrent batches. When set, its rate governs
	// per-domain spacing and Options.Delay is not consulted. If nil,
	// ScrapeMany creates one per batch from Options.Delay.
	Limiter jobscrape.DomainLimiter

	// Sleep waits between sequential batch requests. Defaults to Sleep.
	Sleep SleepFunc

	// Now stamps ExtractedAt. Defaults to time.Now.
	Now func() time.Time
}

// Options controls a batch run.
type Options struct {
	// Delay is the pause between consecutive requests. With Concurrency > 1
	// it becomes the minimum spacing between requests to the same domain,
	// unless Scraper.Limiter is set.
	Delay time.Duration

	// Concurrency is the number of URLs processed at once. Values below 2
	// process URLs one after another.
	Concurrency int

	// Progress, if set, is called after each URL completes.
	Progress ProgressFunc
}

// ProgressFunc reports a completed URL. completed counts finished URLs so far.
type ProgressFunc func(completed, total int, result jobscrape.Result)

// Scrape fetches rawURL and extracts a posting from it. Every failure is
// reported in the returned Result; Scrape never panics on bad input.
func (s *Scraper) Scrape(ctx context.Context, rawURL string) jobscrape.Result {
	if err := checkURL(rawURL); err != nil {
		return jobscrape.Failure(rawURL, err)
	}

	adapter := s.Registry.Lookup(rawURL)

	html, err := s.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return jobscrape.Failure(rawURL, jobscrape.AsError(err, jobscrape.ENETWORK))
	}

	posting, err := s.extract(adapter, html, rawURL)
	if posting != nil {
		return jobscrape.Success(posting)
	}
	parseFailed := jobscrape.ErrorCode(err) == jobscrape.EPARSE

	if adapter.Site() != jobscrape.SiteGeneric {
		posting, err = s.extract(s.Registry.Generic(), html, rawURL)
		if posting != nil {
			return jobscrape.Success(posting)
		}
		parseFailed = parseFailed && jobscrape.ErrorCode(err) == jobscrape.EPARSE
	}

	if parseFailed {
		return jobscrape.Failure(rawURL, &jobscrape.Error{
			Code:    jobscrape.EPARSE,
			Message: "page could not be parsed",
			Final:   true,
			Err:     err,
		})
	}
	return jobscrape.Failure(rawURL, &jobscrape.Error{
		Code:    jobscrape.ENOCONTENT,
		Message: fmt.Sprintf("no usable description found (site adapter %s and generic fallback)", adapter.Site()),
		Final:   true,
	})
}

// extract runs one adapter and returns a posting if its cleaned description
// is valid. A nil posting with a nil error means the description was
// rejected.
func (s *Scraper) extract(adapter jobscrape.Adapter, html, rawURL string) (*jobscrape.JobPosting, error) {
	ex, err := adapter.Extract(html, rawURL)
	if err != nil {
		return nil, err
	}

	description := s.Cleaner.Clean(ex.Description)
	if !s.Validator.Valid(description) {
		return nil, nil
	}

	return &jobscrape.JobPosting{
		URL:         rawURL,
		Title:       s.Cleaner.CleanLine(ex.Title),
		Company:     s.Cleaner.CleanLine(ex.Company),
		Location:    s.Cleaner.CleanLine(ex.Location),
		Salary:      s.Cleaner.CleanLine(ex.Salary),
		Description: description,
		Source:      adapter.Site(),
		ContentHash: jobscrape.ComputeHash(description),
		ExtractedAt: s.now(),
	}, nil
}

// ScrapeMany scrapes urls and returns one result per URL in input order.
// A failed URL never stops the batch. If ctx is canceled the results
// completed so far are returned, still in input order, together with
// ctx.Err().
func (s *Scraper) ScrapeMany(ctx context.Context, urls []string, opts Options) ([]jobscrape.Result, error) {
	if opts.Concurrency > 1 {
		return s.scrapeConcurrent(ctx, urls, opts)
	}

	sleep := s.Sleep
	if sleep == nil {
		sleep = Sleep
	}

	results := make([]jobscrape.Result, 0, len(urls))
	for i, u := range urls {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		if i > 0 && opts.Delay > 0 {
			if err := sleep(ctx, opts.Delay); err != nil {
				return results, ctx.Err()
			}
		}

		r := s.Scrape(ctx, u)
		if err := ctx.Err(); err != nil {
			return results, err
		}
		results = append(results, r)
		if opts.Progress != nil {
			opts.Progress(len(results), len(urls), r)
		}
	}
	return results, nil
}

func (s *Scraper) scrapeConcurrent(ctx context.Context, urls []string, opts Options) ([]jobscrape.Result, error) {
	limiter := s.Limiter
	if limiter == nil {
		rps := 0.0
		if opts.Delay > 0 {
			rps = float64(time.Second) / float64(opts.Delay)
		}
		limiter = NewDomainLimiter(rps)
	}

	var (
		mu        sync.Mutex
		completed int
		done      = make([]bool, len(urls))
		results   = make([]jobscrape.Result, len(urls))
	)

	var g errgroup.Group
	g.SetLimit(opts.Concurrency)
	for i, u := range urls {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if domain := domainOf(u); domain != "" {
				release, err := limiter.Acquire(ctx, domain)
				if err != nil {
					return nil
				}
				defer release()
			}

			r := s.Scrape(ctx, u)
			if ctx.Err() != nil {
				return nil
			}

			mu.Lock()
			defer mu.Unlock()
			results[i], done[i] = r, true
			completed++
			if opts.Progress != nil {
				opts.Progress(completed, len(urls), r)
			}
			return nil
		})
	}
	_ = g.Wait()

	out := make([]jobscrape.Result, 0, completed)
	for i, r := range results {
		if done[i] {
			out = append(out, r)
		}
	}
	return out, ctx.Err()
}

func (s *Scraper) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// checkURL rejects anything that is not an absolute http(s) URL with a host.
func checkURL(rawURL string) *jobscrape.Error {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return &jobscrape.Error{Code: jobscrape.EPARSE, Message: fmt.Sprintf("invalid URL: %v", err), Final: true, Err: err}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return &jobscrape.Error{Code: jobscrape.EPARSE, Message: fmt.Sprintf("invalid URL: unsupported scheme %q", u.Scheme), Final: true}
	}
	if u.Hostname() == "" {
		return &jobscrape.Error{Code: jobscrape.EPARSE, Message: "invalid URL: missing host", Final: true}
	}
	return nil
}

// domainOf returns the registrable domain of rawURL, so that
// uk.linkedin.com and www.linkedin.com share a limiter. IP addresses and
// hosts without a public suffix are returned as they are.
func domainOf(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return ""
	}
	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	if host == "" || net.ParseIP(host) != nil {
		return host
	}
	if d, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		return d
	}
	return host
}
