package slog_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/akmandhania/jobscrape"
	"github.com/akmandhania/jobscrape/mock"
	jsslog "github.com/akmandhania/jobscrape/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingPostingStore(t *testing.T) {
	t.Parallel()

	t.Run("logs created posting", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.PostingStore{
			CreatePostingFn: func(ctx context.Context, p *jobscrape.JobPosting) (string, error) {
				return "abc", nil
			},
		}

		store := jsslog.NewLoggingPostingStore(inner, newLogger(&buf))
		id, err := store.CreatePosting(context.Background(), &jobscrape.JobPosting{URL: "https://example.com/j"})

		require.NoError(t, err)
		assert.Equal(t, "abc", id)
		output := buf.String()
		assert.Contains(t, output, "msg=\"create posting\"")
		assert.Contains(t, output, "url=https://example.com/j")
		assert.Contains(t, output, "id=abc")
	})

	t.Run("logs find count and error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.PostingStore{
			FindPostingsFn: func(ctx context.Context, filter jobscrape.PostingFilter) ([]*jobscrape.JobPosting, error) {
				return nil, errors.New("db closed")
			},
		}

		store := jsslog.NewLoggingPostingStore(inner, newLogger(&buf))
		_, err := store.FindPostings(context.Background(), jobscrape.PostingFilter{})

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "count=0")
		assert.Contains(t, output, "err=\"db closed\"")
	})
}
