// Package readability adapts go-readability as a main-content extractor for
// the generic adapter.
package readability

import (
	"strings"

	"github.com/akmandhania/jobscrape"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements jobscrape.Extractor at compile time.
var _ jobscrape.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the article text.
func (e *Extractor) Extract(rawHTML string) (*jobscrape.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, jobscrape.Errorf(jobscrape.EPARSE, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, &jobscrape.Error{Code: jobscrape.EPARSE, Message: "readability: " + err.Error(), Err: err}
	}

	return &jobscrape.ExtractResult{
		Title: article.Title,
		Text:  strings.TrimSpace(article.TextContent),
	}, nil
}
