package mock

import "github.com/akmandhania/jobscrape"

var _ jobscrape.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of jobscrape.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*jobscrape.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*jobscrape.ExtractResult, error) {
	return e.ExtractFn(html)
}
