package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/akmandhania/jobscrape"
	"github.com/akmandhania/jobscrape/scrape"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Config   jobscrape.Config
	Format   string
	Scraper  *scrape.Scraper
	Registry jobscrape.AdapterRegistry

	// Postings is nil unless results should be stored.
	Postings jobscrape.PostingStore
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config    string         `short:"C" type:"existingfile" env:"JOBSCRAPE_CONFIG" help:"YAML configuration file"`
	DB        string         `env:"JOBSCRAPE_DB" help:"Store extracted postings in this SQLite database"`
	Format    string         `short:"f" enum:"json,table" default:"json" env:"JOBSCRAPE_FORMAT" help:"Output format (json, table)"`
	LogLevel  string         `enum:"debug,info,warn,error" default:"warn" env:"JOBSCRAPE_LOG_LEVEL" help:"Log level written to stderr"`
	Transport string         `enum:"http,colly" default:"http" env:"JOBSCRAPE_TRANSPORT" help:"HTTP transport (http, colly)"`
	Robots    bool           `env:"JOBSCRAPE_ROBOTS" help:"Honour robots.txt"`
	Timeout   *time.Duration `env:"JOBSCRAPE_TIMEOUT" help:"Timeout per fetch attempt"`
	UserAgent string         `env:"JOBSCRAPE_USER_AGENT" help:"User-Agent header sent with requests"`

	Scrape ScrapeCmd `cmd:"" help:"Extract the posting at a single URL"`
	Batch  BatchCmd  `cmd:"" help:"Extract postings for every URL in a file"`
	Sites  SitesCmd  `cmd:"" help:"List supported job sites and their domains"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URL string `arg:"" help:"Job posting URL"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	File        string         `arg:"" help:"File with one URL per line (or first CSV column); - reads stdin"`
	Concurrency *int           `short:"c" env:"JOBSCRAPE_CONCURRENCY" help:"URLs processed at once (default 1)"`
	Delay       *time.Duration `env:"JOBSCRAPE_DELAY" help:"Pause between requests (default 1s)"`
}

// SitesCmd is the "sites" subcommand.
type SitesCmd struct{}
