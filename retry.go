package jobscrape

import (
	"math"
	"slices"
	"time"
)

// RetryPolicy controls how many times a fetch is attempted and how long to
// wait between attempts.
type RetryPolicy struct {
	// MaxAttempts includes the initial attempt. Minimum 1.
	MaxAttempts int `yaml:"max_attempts"`

	// BaseDelay is the wait before the first retry.
	BaseDelay time.Duration `yaml:"base_delay"`

	// Multiplier grows the delay after every failed attempt.
	Multiplier float64 `yaml:"multiplier"`

	// MaxDelay caps a single wait.
	MaxDelay time.Duration `yaml:"max_delay"`

	// Retryable lists the error codes worth another attempt.
	Retryable []string `yaml:"retryable"`
}

// DefaultRetryPolicy returns three attempts with delays of 1s then 2s,
// retrying network errors and block responses.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		BaseDelay:   1 * time.Second,
		Multiplier:  2,
		MaxDelay:    10 * time.Second,
		Retryable:   []string{ENETWORK, EBLOCKED},
	}
}

// Delay returns the wait after the given zero-based failed attempt:
// BaseDelay * Multiplier^attempt, capped at MaxDelay.
func (p RetryPolicy) Delay(attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	d := float64(p.BaseDelay) * math.Pow(p.Multiplier, float64(attempt))
	if p.MaxDelay > 0 && (d > float64(p.MaxDelay) || math.IsInf(d, 0) || math.IsNaN(d)) {
		return p.MaxDelay
	}
	return time.Duration(d)
}

// ShouldRetry reports whether err may succeed on another attempt.
func (p RetryPolicy) ShouldRetry(err error) bool {
	if err == nil || IsFinal(err) {
		return false
	}
	return slices.Contains(p.Retryable, ErrorCode(err))
}

// Validate returns ECONFIG if the policy cannot be used.
func (p RetryPolicy) Validate() error {
	if p.MaxAttempts < 1 {
		return Errorf(ECONFIG, "retry policy: max attempts must be at least 1, got %d", p.MaxAttempts)
	}
	if p.BaseDelay < 0 || p.MaxDelay < 0 {
		return Errorf(ECONFIG, "retry policy: delays must not be negative")
	}
	if p.Multiplier < 1 {
		return Errorf(ECONFIG, "retry policy: multiplier must be at least 1, got %v", p.Multiplier)
	}
	for _, code := range p.Retryable {
		switch code {
		case ENETWORK, EBLOCKED, ENOCONTENT, EPARSE:
		default:
			return Errorf(ECONFIG, "retry policy: unknown retryable error kind %q", code)
		}
	}
	return nil
}
