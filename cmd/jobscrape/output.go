package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/akmandhania/jobscrape"
)

const (
	formatJSON  = "json"
	formatTable = "table"
)

// writeResults prints results as JSON lines or as an aligned table.
func writeResults(w io.Writer, format string, results []jobscrape.Result) error {
	if format == formatTable {
		return writeTable(w, results)
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, r := range results {
		if err := enc.Encode(r); err != nil {
			return err
		}
	}
	return nil
}

func writeTable(w io.Writer, results []jobscrape.Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "STATUS\tSOURCE\tTITLE\tCOMPANY\tLOCATION\tURL")
	for _, r := range results {
		if r.OK() {
			p := r.Posting
			fmt.Fprintf(tw, "ok\t%s\t%s\t%s\t%s\t%s\n",
				p.Source, cell(p.Title, 40), cell(p.Company, 24), cell(p.Location, 24), r.URL)
			continue
		}
		fmt.Fprintf(tw, "%s\t-\t%s\t-\t-\t%s\n", r.Err.Code, cell(r.Err.Message, 40), r.URL)
	}
	return tw.Flush()
}

// cell shortens s for a table column and marks empty values.
func cell(s string, max int) string {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return "-"
	}
	if r := []rune(s); len(r) > max {
		return string(r[:max-3]) + "..."
	}
	return s
}

// store saves successful results when a posting store is configured.
func store(deps *Dependencies, results []jobscrape.Result) error {
	if deps.Postings == nil {
		return nil
	}
	for _, r := range results {
		if !r.OK() {
			continue
		}
		if _, err := deps.Postings.CreatePosting(deps.Ctx, r.Posting); err != nil {
			return fmt.Errorf("store posting for %s: %w", r.URL, err)
		}
	}
	return nil
}
