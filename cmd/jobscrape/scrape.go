package main

import (
	"github.com/akmandhania/jobscrape"
)

// Run executes the scrape command. A failed scrape is printed like a
// success and also returned as the command error.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	r := deps.Scraper.Scrape(deps.Ctx, c.URL)

	if err := writeResults(deps.Stdout, deps.Format, []jobscrape.Result{r}); err != nil {
		return err
	}
	if err := store(deps, []jobscrape.Result{r}); err != nil {
		return err
	}
	if !r.OK() {
		return r.Err
	}
	return nil
}
