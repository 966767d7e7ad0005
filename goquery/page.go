package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/akmandhania/jobscrape"
)

// Page is a parsed HTML document and the URL it was fetched from. All
// strategies of one extraction share a single Page.
type Page struct {
	// URL is nil when the page URL could not be parsed.
	URL  *url.URL
	Doc  *goquery.Document
	HTML string

	postings []map[string]any
}

// NewPage parses html. Returns EPARSE if the document cannot be parsed.
func NewPage(html string, pageURL string) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, jobscrape.Errorf(jobscrape.EPARSE, "failed to parse HTML: %v", err)
	}

	p := &Page{Doc: doc, HTML: html, postings: findJobPostings(doc)}
	if u, err := url.Parse(pageURL); err == nil && u.Host != "" {
		p.URL = u
	}
	return p, nil
}

// Title returns the text of the <title> element.
func (p *Page) Title() string {
	return squash(p.Doc.Find("title").First().Text())
}

// Meta returns the content of the first non-empty <meta> tag whose name or
// property equals one of keys.
func (p *Page) Meta(keys ...string) string {
	for _, key := range keys {
		var found string
		p.Doc.Find("meta").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			name := sel.AttrOr("name", sel.AttrOr("property", ""))
			if !strings.EqualFold(name, key) {
				return true
			}
			found = squash(sel.AttrOr("content", ""))
			return found == ""
		})
		if found != "" {
			return found
		}
	}
	return ""
}

// JobPostings returns the schema.org JobPosting objects embedded as JSON-LD.
func (p *Page) JobPostings() []map[string]any {
	return p.postings
}

// squash joins whitespace-separated words with single spaces.
func squash(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
