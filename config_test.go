package jobscrape_test

import (
	"testing"
	"time"

	"github.com/akmandhania/jobscrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	t.Run("default config is valid", func(t *testing.T) {
		t.Parallel()
		cfg := jobscrape.DefaultConfig()
		assert.NoError(t, cfg.Validate())
	})

	tests := []struct {
		name   string
		modify func(*jobscrape.Config)
	}{
		{"zero retry attempts", func(c *jobscrape.Config) { c.Retry.MaxAttempts = 0 }},
		{"zero fetch timeout", func(c *jobscrape.Config) { c.FetchTimeout = 0 }},
		{"negative delay", func(c *jobscrape.Config) { c.RequestDelay = -time.Second }},
		{"zero concurrency", func(c *jobscrape.Config) { c.Concurrency = 0 }},
		{"zero domain rate", func(c *jobscrape.Config) { c.DomainRate = 0 }},
		{"zero min length", func(c *jobscrape.Config) { c.MinDescriptionLen = 0 }},
		{"budget below minimum", func(c *jobscrape.Config) { c.MaxDescriptionChars = 50 }},
	}
	for _, tt := range tests {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := jobscrape.DefaultConfig()
			tt.modify(&cfg)
			assert.Equal(t, jobscrape.ECONFIG, jobscrape.ErrorCode(cfg.Validate()))
		})
	}
}

func TestConfig_Builders(t *testing.T) {
	t.Parallel()

	cfg := jobscrape.DefaultConfig()

	c, err := cfg.Cleaner()
	require.NoError(t, err)
	assert.Equal(t, "Engineer", c.Clean("Show more Engineer"))

	v := cfg.Validator()
	assert.Equal(t, jobscrape.DefaultMinDescriptionLen, v.MinLen())

	cfg.Denylist = []string{"("}
	_, err = cfg.Cleaner()
	assert.Equal(t, jobscrape.ECONFIG, jobscrape.ErrorCode(err))
}

func TestConfig_DomainLimit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		rate  float64
		delay time.Duration
		want  float64
	}{
		{"rate when delay is shorter", 1, 500 * time.Millisecond, 1},
		{"delay when it asks for wider spacing", 1, 4 * time.Second, 0.25},
		{"rate when delay is zero", 2, 0, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := jobscrape.DefaultConfig()
			cfg.DomainRate = tt.rate
			cfg.RequestDelay = tt.delay
			assert.InDelta(t, tt.want, cfg.DomainLimit(), 1e-9)
		})
	}
}
