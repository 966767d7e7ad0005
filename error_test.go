package jobscrape_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/akmandhania/jobscrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("returns empty string for nil", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, jobscrape.ErrorCode(nil))
	})

	t.Run("returns code of application error", func(t *testing.T) {
		t.Parallel()
		err := jobscrape.Errorf(jobscrape.EBLOCKED, "status %d", 429)
		assert.Equal(t, jobscrape.EBLOCKED, jobscrape.ErrorCode(err))
	})

	t.Run("unwraps wrapped application error", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("fetch: %w", jobscrape.Errorf(jobscrape.ENETWORK, "timeout"))
		assert.Equal(t, jobscrape.ENETWORK, jobscrape.ErrorCode(err))
	})

	t.Run("returns internal for foreign errors", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, jobscrape.EINTERNAL, jobscrape.ErrorCode(errors.New("boom")))
	})
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "status 429", jobscrape.ErrorMessage(jobscrape.Errorf(jobscrape.EBLOCKED, "status %d", 429)))
	assert.Equal(t, "Internal error.", jobscrape.ErrorMessage(errors.New("boom")))
	assert.Empty(t, jobscrape.ErrorMessage(nil))
}

func TestError_Error(t *testing.T) {
	t.Parallel()

	err := jobscrape.Errorf(jobscrape.ENOCONTENT, "no usable description")
	assert.Equal(t, "jobscrape error: code=no_content message=no usable description", err.Error())

	err.URL = "https://example.com/job"
	assert.Equal(t, "jobscrape error: code=no_content url=https://example.com/job message=no usable description", err.Error())
}

func TestIsFinal(t *testing.T) {
	t.Parallel()

	retryable := jobscrape.Errorf(jobscrape.EBLOCKED, "status 429")
	final := jobscrape.Errorf(jobscrape.EBLOCKED, "captcha page")
	final.Final = true

	assert.False(t, jobscrape.IsFinal(retryable))
	assert.True(t, jobscrape.IsFinal(final))
	assert.True(t, jobscrape.IsFinal(fmt.Errorf("wrapped: %w", final)))
	assert.False(t, jobscrape.IsFinal(errors.New("boom")))
}

func TestAsError(t *testing.T) {
	t.Parallel()

	t.Run("returns nil for nil", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, jobscrape.AsError(nil, jobscrape.ENETWORK))
	})

	t.Run("returns application error unchanged", func(t *testing.T) {
		t.Parallel()
		orig := jobscrape.Errorf(jobscrape.EPARSE, "bad html")
		assert.Same(t, orig, jobscrape.AsError(fmt.Errorf("wrap: %w", orig), jobscrape.ENETWORK))
	})

	t.Run("wraps foreign error with fallback code", func(t *testing.T) {
		t.Parallel()
		cause := errors.New("connection reset")
		got := jobscrape.AsError(cause, jobscrape.ENETWORK)
		require.NotNil(t, got)
		assert.Equal(t, jobscrape.ENETWORK, got.Code)
		assert.Equal(t, "connection reset", got.Message)
		assert.ErrorIs(t, got, cause)
	})
}

func TestResult(t *testing.T) {
	t.Parallel()

	t.Run("success holds posting", func(t *testing.T) {
		t.Parallel()
		r := jobscrape.Success(&jobscrape.JobPosting{URL: "https://a.test/1", Description: "d"})
		assert.True(t, r.OK())
		assert.Equal(t, "https://a.test/1", r.URL)
		assert.Nil(t, r.Err)
	})

	t.Run("failure records url on error", func(t *testing.T) {
		t.Parallel()
		r := jobscrape.Failure("https://a.test/2", jobscrape.Errorf(jobscrape.ENETWORK, "timeout"))
		assert.False(t, r.OK())
		assert.Nil(t, r.Posting)
		assert.Equal(t, "https://a.test/2", r.Err.URL)
	})
}

func TestJobPosting_Validate(t *testing.T) {
	t.Parallel()

	p := &jobscrape.JobPosting{URL: "https://a.test/1"}
	assert.Equal(t, jobscrape.EINVALID, jobscrape.ErrorCode(p.Validate()))

	p.Description = "Build things."
	assert.NoError(t, p.Validate())

	p.URL = ""
	assert.Equal(t, jobscrape.EINVALID, jobscrape.ErrorCode(p.Validate()))
}
