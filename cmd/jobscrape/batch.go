package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/akmandhania/jobscrape"
	"github.com/akmandhania/jobscrape/scrape"
)

// Run executes the batch command.
func (c *BatchCmd) Run(deps *Dependencies) error {
	urls, err := c.readURLs(deps)
	if err != nil {
		return err
	}
	if len(urls) == 0 {
		fmt.Fprintln(deps.Stderr, "No URLs found in input.")
		return nil
	}

	opts := scrape.Options{
		Delay:       deps.Config.RequestDelay,
		Concurrency: deps.Config.Concurrency,
		Progress: func(completed, total int, r jobscrape.Result) {
			deps.Logger.Info("progress", "completed", completed, "total", total, "url", r.URL, "ok", r.OK())
		},
	}
	results, runErr := deps.Scraper.ScrapeMany(deps.Ctx, urls, opts)

	if err := writeResults(deps.Stdout, deps.Format, results); err != nil {
		return err
	}
	if err := store(deps, results); err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if !r.OK() {
			failed++
		}
	}
	fmt.Fprintf(deps.Stderr, "Extracted %d of %d postings (%d failed)\n", len(results)-failed, len(urls), failed)

	if runErr != nil {
		return fmt.Errorf("batch interrupted after %d of %d URLs: %w", len(results), len(urls), runErr)
	}
	return nil
}

func (c *BatchCmd) readURLs(deps *Dependencies) ([]string, error) {
	if c.File == "-" {
		return readURLs(deps.Stdin)
	}
	f, err := os.Open(c.File)
	if err != nil {
		return nil, fmt.Errorf("open URL list: %w", err)
	}
	defer f.Close()
	return readURLs(f)
}

// readURLs reads one URL per record, taking the first CSV column. Blank
// lines, # comments, a "url" header and repeated URLs are skipped.
func readURLs(r io.Reader) ([]string, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true

	var urls []string
	seen := make(map[string]bool)
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read URL list: %w", err)
		}

		u := strings.TrimSpace(record[0])
		if u == "" || strings.EqualFold(u, "url") || seen[u] {
			continue
		}
		seen[u] = true
		urls = append(urls, u)
	}
	return urls, nil
}
