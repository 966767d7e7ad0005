package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/akmandhania/jobscrape"
)

// Ensure LoggingPostingStore implements jobscrape.PostingStore.
var _ jobscrape.PostingStore = (*LoggingPostingStore)(nil)

// LoggingPostingStore wraps a PostingStore with logging.
type LoggingPostingStore struct {
	next   jobscrape.PostingStore
	logger *slog.Logger
}

// NewLoggingPostingStore creates a new LoggingPostingStore.
func NewLoggingPostingStore(next jobscrape.PostingStore, logger *slog.Logger) *LoggingPostingStore {
	return &LoggingPostingStore{next: next, logger: logger}
}

// CreatePosting delegates to the wrapped store and logs the operation.
func (s *LoggingPostingStore) CreatePosting(ctx context.Context, p *jobscrape.JobPosting) (id string, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("create posting",
			"url", p.URL,
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreatePosting(ctx, p)
}

// FindPostings delegates to the wrapped store and logs the operation.
func (s *LoggingPostingStore) FindPostings(ctx context.Context, filter jobscrape.PostingFilter) (postings []*jobscrape.JobPosting, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find postings",
			"count", len(postings),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindPostings(ctx, filter)
}
