package goquery

import (
	"fmt"
	"strings"

	"github.com/akmandhania/jobscrape"
	"golang.org/x/net/publicsuffix"
)

var _ jobscrape.Adapter = (*GenericAdapter)(nil)

// GenericOption configures a GenericAdapter.
type GenericOption func(*GenericAdapter)

// WithExtractors appends main-content extractors as the last description
// candidates.
func WithExtractors(extractors ...jobscrape.Extractor) GenericOption {
	return func(a *GenericAdapter) {
		for _, ex := range extractors {
			a.description = append(a.description, extractorStrategy(ex))
		}
	}
}

// WithAccept sets the predicate deciding whether a description candidate
// is good enough to stop looking.
func WithAccept(fn func(description string) bool) GenericOption {
	return func(a *GenericAdapter) {
		a.accept = fn
	}
}

// GenericAdapter extracts postings from pages of unknown sites using
// heuristics that hold across most job pages. It is the last resort, so for
// the description it keeps trying candidates until one is acceptable and
// only then settles for the first non-empty one.
type GenericAdapter struct {
	title       []Strategy
	company     []Strategy
	location    []Strategy
	salary      []Strategy
	description []Strategy
	accept      func(string) bool
}

// NewGenericAdapter creates a GenericAdapter. Without WithAccept, candidates
// are judged by a Validator with default settings.
func NewGenericAdapter(opts ...GenericOption) *GenericAdapter {
	v := jobscrape.NewValidator(jobscrape.DefaultMinDescriptionLen, jobscrape.DefaultErrorMarkers())
	a := &GenericAdapter{
		title: []Strategy{
			Text("h1"),
			JSONLD(LDTitle),
			TitleJob(),
		},
		company: []Strategy{
			{Name: "title:at", Extract: func(p *Page) string { return companyAt(p.Title()) }},
			JSONLD(LDCompany),
			{Name: "url:domain", Extract: func(p *Page) string { return registrableName(p) }},
		},
		location: []Strategy{
			JSONLD(LDLocation),
		},
		salary: []Strategy{
			JSONLD(LDSalary),
			SalaryPattern(),
		},
		description: []Strategy{
			Meta("description"),
			Meta("og:description", "twitter:description"),
			PageTitle(),
			Block(`[class*="description"]`, `[id*="description"]`),
			Block("main", "article", "section", "div"),
			JSONLD(LDDescription),
		},
		accept: v.Valid,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Site returns the generic site identifier.
func (a *GenericAdapter) Site() jobscrape.Site {
	return jobscrape.SiteGeneric
}

// Extract pulls fields from any HTML page. Only a parse failure produces an
// error.
func (a *GenericAdapter) Extract(html string, pageURL string) (*jobscrape.Extraction, error) {
	page, err := NewPage(html, pageURL)
	if err != nil {
		return nil, err
	}

	ex := &jobscrape.Extraction{Matched: make(map[string]string)}
	ex.Title = firstNonEmpty(page, a.title, jobscrape.FieldTitle, ex.Matched)
	ex.Company = firstNonEmpty(page, a.company, jobscrape.FieldCompany, ex.Matched)
	ex.Location = firstNonEmpty(page, a.location, jobscrape.FieldLocation, ex.Matched)
	ex.Salary = firstNonEmpty(page, a.salary, jobscrape.FieldSalary, ex.Matched)
	ex.Description = a.firstAccepted(page, ex.Matched)
	return ex, nil
}

func (a *GenericAdapter) firstAccepted(p *Page, matched map[string]string) string {
	var first, firstName string
	for _, s := range a.description {
		v := strings.TrimSpace(s.Extract(p))
		if v == "" {
			continue
		}
		if a.accept(v) {
			matched[jobscrape.FieldDescription] = s.Name
			return v
		}
		if first == "" {
			first, firstName = v, s.Name
		}
	}
	if first != "" {
		matched[jobscrape.FieldDescription] = firstName
	}
	return first
}

// extractorStrategy adapts a main-content extractor. Extractor failures are
// treated as "no candidate".
func extractorStrategy(ex jobscrape.Extractor) Strategy {
	return Strategy{
		Name: fmt.Sprintf("extractor:%T", ex),
		Extract: func(p *Page) string {
			res, err := ex.Extract(p.HTML)
			if err != nil || res == nil {
				return ""
			}
			return res.Text
		},
	}
}

// registrableName returns the registrable domain of the page URL without
// its public suffix: jobs.acme.com and acme.co.uk both yield "acme".
func registrableName(p *Page) string {
	if p.URL == nil {
		return ""
	}
	host := strings.TrimPrefix(strings.ToLower(p.URL.Hostname()), "www.")
	if host == "" {
		return ""
	}

	etld1, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		name, _, _ := strings.Cut(host, ".")
		return name
	}
	suffix, _ := publicsuffix.PublicSuffix(etld1)
	return strings.TrimSuffix(etld1, "."+suffix)
}
