package jobscrape

import (
	"context"
	"fmt"
	"strings"
)

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch retrieves the page at url and returns its HTML.
	// Failures are reported as *Error with ENETWORK, EBLOCKED or ENOCONTENT.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}

// DomainLimiter grants per-domain permits so that requests to the same
// domain are serialized and spaced out while distinct domains proceed
// independently.
type DomainLimiter interface {
	// Acquire blocks until a request to domain may start. The returned
	// release function must be called when the request completes.
	// Returns an error if the context is canceled.
	Acquire(ctx context.Context, domain string) (release func(), err error)
}

// StatusError classifies a non-2xx HTTP status code. Returns nil for 2xx.
//
// Refusals (401, 403, 407, 429, 503 and LinkedIn's 999) are EBLOCKED and
// may clear up after backing off. Missing pages (404, 410) are final
// ENOCONTENT. Other server errors are ENETWORK; remaining client errors are
// final ENETWORK.
func StatusError(status int) *Error {
	if status >= 200 && status < 300 {
		return nil
	}
	switch status {
	case 401, 403, 407, 429, 503, 999:
		return &Error{Code: EBLOCKED, Message: fmt.Sprintf("HTTP %d", status)}
	case 404, 410:
		return &Error{Code: ENOCONTENT, Message: fmt.Sprintf("HTTP %d", status), Final: true}
	}
	if status >= 500 {
		return &Error{Code: ENETWORK, Message: fmt.Sprintf("HTTP %d", status)}
	}
	return &Error{Code: ENETWORK, Message: fmt.Sprintf("HTTP %d", status), Final: true}
}

// BlockPageError returns a final EBLOCKED error if body contains one of the
// signatures (matched case-insensitively), or nil.
func BlockPageError(body string, signatures []string) *Error {
	lower := strings.ToLower(body)
	for _, sig := range signatures {
		if sig = strings.ToLower(strings.TrimSpace(sig)); sig != "" && strings.Contains(lower, sig) {
			return &Error{Code: EBLOCKED, Message: fmt.Sprintf("block page detected (%q)", sig), Final: true}
		}
	}
	return nil
}
