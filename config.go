package jobscrape

import "time"

// DefaultUserAgent mimics a desktop browser; several job boards refuse
// obvious bot user agents outright.
const DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// DefaultBlockSignatures returns phrases that identify a block or challenge
// page served with a successful status code. They are specific to the
// interstitial pages themselves: ordinary pages that merely load a captcha
// widget or a bot-management script must not match.
func DefaultBlockSignatures() []string {
	return []string{
		"<title>just a moment...</title>",
		"attention required! | cloudflare",
		"cf-browser-verification",
		"cf_chl_opt",
		"unusual traffic from your computer network",
		"are you a robot",
		"verify you are a human",
		"px-captcha",
		"access to this page has been denied",
		"request unsuccessful. incapsula incident id",
		"pardon our interruption",
		"geo.captcha-delivery.com",
	}
}

// Config holds the settings of a scrape run. It is built once at start-up
// and treated as read-only afterwards.
type Config struct {
	Retry RetryPolicy `yaml:"retry"`

	// FetchTimeout bounds each fetch attempt.
	FetchTimeout time.Duration `yaml:"fetch_timeout"`

	// UserAgent sent with every request.
	UserAgent string `yaml:"user_agent"`

	// RequestDelay is the pause between consecutive batch requests.
	RequestDelay time.Duration `yaml:"request_delay"`

	// Concurrency is the number of batch workers. One means sequential.
	Concurrency int `yaml:"concurrency"`

	// DomainRate is the request rate allowed per domain, in requests per second.
	DomainRate float64 `yaml:"domain_rate"`

	MinDescriptionLen   int      `yaml:"min_description_len"`
	MaxDescriptionChars int      `yaml:"max_description_chars"`
	Denylist            []string `yaml:"denylist"`
	ErrorMarkers        []string `yaml:"error_markers"`
	BlockSignatures     []string `yaml:"block_signatures"`

	// RespectRobots makes the fetcher honour robots.txt.
	RespectRobots bool `yaml:"respect_robots"`
}

// DefaultConfig returns the settings used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Retry:               DefaultRetryPolicy(),
		FetchTimeout:        15 * time.Second,
		UserAgent:           DefaultUserAgent,
		RequestDelay:        1 * time.Second,
		Concurrency:         1,
		DomainRate:          1,
		MinDescriptionLen:   DefaultMinDescriptionLen,
		MaxDescriptionChars: DefaultMaxDescriptionChars,
		Denylist:            DefaultDenylist(),
		ErrorMarkers:        DefaultErrorMarkers(),
		BlockSignatures:     DefaultBlockSignatures(),
	}
}

// DomainLimit returns the per-domain request rate for concurrent batches:
// DomainRate, lowered if RequestDelay asks for wider spacing.
func (c *Config) DomainLimit() float64 {
	limit := c.DomainRate
	if c.RequestDelay > 0 {
		if r := float64(time.Second) / float64(c.RequestDelay); r < limit {
			limit = r
		}
	}
	return limit
}

// Validate returns ECONFIG if the configuration is unusable.
func (c *Config) Validate() error {
	if err := c.Retry.Validate(); err != nil {
		return err
	}
	if c.FetchTimeout <= 0 {
		return Errorf(ECONFIG, "fetch timeout must be positive")
	}
	if c.RequestDelay < 0 {
		return Errorf(ECONFIG, "request delay must not be negative")
	}
	if c.Concurrency < 1 {
		return Errorf(ECONFIG, "concurrency must be at least 1, got %d", c.Concurrency)
	}
	if c.DomainRate <= 0 {
		return Errorf(ECONFIG, "domain rate must be positive")
	}
	if c.MinDescriptionLen < 1 {
		return Errorf(ECONFIG, "min description length must be at least 1")
	}
	if c.MaxDescriptionChars != 0 && c.MaxDescriptionChars < c.MinDescriptionLen {
		return Errorf(ECONFIG, "max description chars (%d) is below the minimum length (%d)",
			c.MaxDescriptionChars, c.MinDescriptionLen)
	}
	return nil
}

// Cleaner builds the Cleaner described by the configuration.
func (c *Config) Cleaner() (*Cleaner, error) {
	return NewCleaner(c.Denylist, c.MaxDescriptionChars)
}

// Validator builds the Validator described by the configuration.
func (c *Config) Validator() *Validator {
	return NewValidator(c.MinDescriptionLen, c.ErrorMarkers)
}
