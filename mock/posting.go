package mock

import (
	"context"

	"github.com/akmandhania/jobscrape"
)

var _ jobscrape.PostingStore = (*PostingStore)(nil)

// PostingStore is a mock implementation of jobscrape.PostingStore.
type PostingStore struct {
	CreatePostingFn func(ctx context.Context, p *jobscrape.JobPosting) (string, error)
	FindPostingsFn  func(ctx context.Context, filter jobscrape.PostingFilter) ([]*jobscrape.JobPosting, error)
}

func (s *PostingStore) CreatePosting(ctx context.Context, p *jobscrape.JobPosting) (string, error) {
	return s.CreatePostingFn(ctx, p)
}

func (s *PostingStore) FindPostings(ctx context.Context, filter jobscrape.PostingFilter) ([]*jobscrape.JobPosting, error) {
	return s.FindPostingsFn(ctx, filter)
}
