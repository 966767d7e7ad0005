package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/akmandhania/jobscrape"
	"github.com/akmandhania/jobscrape/colly"
	"github.com/akmandhania/jobscrape/goquery"
	jshttp "github.com/akmandhania/jobscrape/http"
	"github.com/akmandhania/jobscrape/readability"
	"github.com/akmandhania/jobscrape/scrape"
	jsslog "github.com/akmandhania/jobscrape/slog"
	"github.com/akmandhania/jobscrape/sqlite"
	"github.com/akmandhania/jobscrape/trafilatura"
	"github.com/akmandhania/jobscrape/yaml"
	"github.com/alecthomas/kong"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher replaces the network transport when set. Retries and logging
	// are still layered on top.
	Fetcher jobscrape.Fetcher

	// Stdin is read by "batch -".
	Stdin io.Reader

	// SQLite database, opened only when --db is given.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Stdin: os.Stdin}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("jobscrape"),
		kong.Description("Extract structured job postings from job board URLs"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'jobscrape --help' to see available commands")
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := cli.config()
	if err != nil {
		return err
	}
	deps.Config = cfg
	deps.Format = cli.Format

	logger, err := newLogger(stderr, cli.LogLevel)
	if err != nil {
		return err
	}
	deps.Logger = logger

	cleaner, err := cfg.Cleaner()
	if err != nil {
		return err
	}
	validator := cfg.Validator()

	generic := goquery.NewGenericAdapter(
		goquery.WithAccept(validator.Valid),
		goquery.WithExtractors(trafilatura.NewExtractor(), readability.NewExtractor()),
	)
	registry, err := goquery.NewDefaultRegistry(generic)
	if err != nil {
		return err
	}
	deps.Registry = registry

	transport := m.Fetcher
	if transport == nil {
		transport = newTransport(cli.Transport, cfg)
	}
	fetcher := scrape.NewRetryFetcher(jsslog.NewLoggingFetcher(transport, logger), cfg.Retry)
	fetcher.Log = func(format string, args ...any) {
		logger.Info(fmt.Sprintf(format, args...))
	}
	defer fetcher.Close()

	deps.Scraper = &scrape.Scraper{
		Fetcher:   fetcher,
		Registry:  jsslog.NewLoggingRegistry(registry, logger),
		Cleaner:   cleaner,
		Validator: validator,
		Limiter:   scrape.NewDomainLimiter(cfg.DomainLimit()),
	}

	if cli.DB != "" {
		m.DB = sqlite.NewDB(cli.DB)
		if err := m.DB.Open(); err != nil {
			return fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
		}
		defer m.Close()
		deps.Postings = jsslog.NewLoggingPostingStore(sqlite.NewPostingStore(m.DB), logger)
	}

	return kongCtx.Run(deps)
}

// config loads the configuration file, if any, and applies flag overrides.
func (c *CLI) config() (jobscrape.Config, error) {
	cfg := jobscrape.DefaultConfig()
	if c.Config != "" {
		var err error
		if cfg, err = yaml.LoadConfig(c.Config); err != nil {
			return jobscrape.Config{}, err
		}
	}

	if c.Timeout != nil {
		cfg.FetchTimeout = *c.Timeout
	}
	if c.UserAgent != "" {
		cfg.UserAgent = c.UserAgent
	}
	if c.Robots {
		cfg.RespectRobots = true
	}
	if c.Batch.Concurrency != nil {
		cfg.Concurrency = *c.Batch.Concurrency
	}
	if c.Batch.Delay != nil {
		cfg.RequestDelay = *c.Batch.Delay
	}

	if err := cfg.Validate(); err != nil {
		return jobscrape.Config{}, err
	}
	return cfg, nil
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return nil, jobscrape.Errorf(jobscrape.ECONFIG, "invalid log level %q", level)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l})), nil
}

func newTransport(name string, cfg jobscrape.Config) jobscrape.Fetcher {
	if name == "colly" {
		opts := []colly.Option{
			colly.WithTimeout(cfg.FetchTimeout),
			colly.WithUserAgent(cfg.UserAgent),
			colly.WithBlockSignatures(cfg.BlockSignatures),
		}
		if cfg.RespectRobots {
			opts = append(opts, colly.WithRobots())
		}
		return colly.NewFetcher(opts...)
	}

	opts := []jshttp.Option{
		jshttp.WithTimeout(cfg.FetchTimeout),
		jshttp.WithUserAgent(cfg.UserAgent),
		jshttp.WithBlockSignatures(cfg.BlockSignatures),
	}
	if cfg.RespectRobots {
		opts = append(opts, jshttp.WithRobots())
	}
	return jshttp.NewFetcher(opts...)
}
