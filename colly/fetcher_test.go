package colly_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/akmandhania/jobscrape"
	"github.com/akmandhania/jobscrape/colly"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns body with browser user agent", func(t *testing.T) {
		t.Parallel()

		var ua string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ua = r.UserAgent()
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html><body>Hello</body></html>"))
		}))
		defer server.Close()

		f := colly.NewFetcher()
		defer f.Close()

		html, err := f.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "<html><body>Hello</body></html>", html)
		assert.Equal(t, jobscrape.DefaultUserAgent, ua)
	})

	t.Run("fetches the same URL twice", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("ok"))
		}))
		defer server.Close()

		f := colly.NewFetcher()
		for range 2 {
			_, err := f.Fetch(context.Background(), server.URL)
			require.NoError(t, err)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := colly.NewFetcher().Fetch(ctx, "http://example.com")
		require.Error(t, err)
		assert.Equal(t, jobscrape.ENETWORK, jobscrape.ErrorCode(err))
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("block page", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html><body>Please verify you are a human</body></html>`))
		}))
		defer server.Close()

		_, err := colly.NewFetcher().Fetch(context.Background(), server.URL)
		assert.Equal(t, jobscrape.EBLOCKED, jobscrape.ErrorCode(err))
		assert.True(t, jobscrape.IsFinal(err))
	})

	t.Run("robots disallow", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/robots.txt" {
				_, _ = w.Write([]byte("User-agent: *\nDisallow: /private\n"))
				return
			}
			_, _ = w.Write([]byte("ok"))
		}))
		defer server.Close()

		_, err := colly.NewFetcher(colly.WithRobots()).Fetch(context.Background(), server.URL+"/private/1")
		assert.Equal(t, jobscrape.EBLOCKED, jobscrape.ErrorCode(err))
		assert.True(t, jobscrape.IsFinal(err))
	})
}

func TestFetcher_Fetch_ClassifiesStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status int
		code   string
		final  bool
	}{
		{http.StatusTooManyRequests, jobscrape.EBLOCKED, false},
		{http.StatusNotFound, jobscrape.ENOCONTENT, true},
		{http.StatusInternalServerError, jobscrape.ENETWORK, false},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			_, err := colly.NewFetcher().Fetch(context.Background(), server.URL)
			require.Error(t, err)
			assert.Equal(t, tt.code, jobscrape.ErrorCode(err))
			assert.Equal(t, tt.final, jobscrape.IsFinal(err))
		})
	}
}
