package jobscrape

import (
	"context"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Site identifies the adapter family that produced a posting.
type Site string

// Supported job sites.
const (
	SiteGeneric       Site = "generic"
	SiteLinkedIn      Site = "linkedin"
	SiteIndeed        Site = "indeed"
	SiteGlassdoor     Site = "glassdoor"
	SiteMonster       Site = "monster"
	SiteCareerBuilder Site = "careerbuilder"
)

// JobPosting is a validated job listing. It is created once a description has
// passed validation and is not modified afterwards.
type JobPosting struct {
	ID          string    `json:"id,omitempty"`
	URL         string    `json:"url"`
	Title       string    `json:"title,omitempty"`
	Company     string    `json:"company,omitempty"`
	Location    string    `json:"location,omitempty"`
	Salary      string    `json:"salary,omitempty"`
	Description string    `json:"description"`
	Source      Site      `json:"source"`
	ContentHash string    `json:"contentHash"`
	ExtractedAt time.Time `json:"extractedAt"`
}

// Validate returns an error if the posting contains invalid fields.
func (p *JobPosting) Validate() error {
	if p.URL == "" {
		return Errorf(EINVALID, "posting URL required")
	}
	if p.Description == "" {
		return Errorf(EINVALID, "posting description required")
	}
	return nil
}

// ComputeHash returns the xxhash of content as a hex string.
func ComputeHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}

// Result is the outcome of scraping a single URL. Exactly one of Posting and
// Err is set.
type Result struct {
	URL     string      `json:"url"`
	Posting *JobPosting `json:"posting,omitempty"`
	Err     *Error      `json:"error,omitempty"`
}

// Success returns a successful result for p.
func Success(p *JobPosting) Result {
	return Result{URL: p.URL, Posting: p}
}

// Failure returns a failed result for err, recording rawURL on the error.
func Failure(rawURL string, err *Error) Result {
	if err.URL == "" {
		err.URL = rawURL
	}
	return Result{URL: rawURL, Err: err}
}

// OK reports whether the result holds a posting.
func (r Result) OK() bool {
	return r.Posting != nil && r.Err == nil
}

// PostingStore persists postings produced by a scrape run.
// The scraping core never calls it; front ends use it as a results sink.
type PostingStore interface {
	// CreatePosting stores a copy of p under a new ID and returns the ID.
	// p itself is not modified.
	CreatePosting(ctx context.Context, p *JobPosting) (string, error)

	// FindPostings returns stored postings matching the filter.
	FindPostings(ctx context.Context, filter PostingFilter) ([]*JobPosting, error)
}

// PostingFilter represents a filter for FindPostings.
type PostingFilter struct {
	URL    *string `json:"url"`
	Source *Site   `json:"source"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
