package goquery

import (
	"strings"

	"github.com/akmandhania/jobscrape"
)

var _ jobscrape.Adapter = (*SpecAdapter)(nil)

// AdapterSpec declares how to extract a posting from one site family: the
// domains it serves and, per field, strategies in priority order.
type AdapterSpec struct {
	Site    jobscrape.Site
	Domains []string

	Title       []Strategy
	Company     []Strategy
	Location    []Strategy
	Salary      []Strategy
	Description []Strategy
}

// Validate returns ECONFIG if the spec is misconfigured.
func (s *AdapterSpec) Validate() error {
	if s.Site == "" {
		return jobscrape.Errorf(jobscrape.ECONFIG, "adapter spec: site required")
	}
	if s.Site == jobscrape.SiteGeneric {
		return jobscrape.Errorf(jobscrape.ECONFIG, "adapter spec: site %q is reserved", s.Site)
	}
	if len(s.Domains) == 0 {
		return jobscrape.Errorf(jobscrape.ECONFIG, "adapter spec %s: at least one domain required", s.Site)
	}
	for _, d := range s.Domains {
		if !validDomain(d) {
			return jobscrape.Errorf(jobscrape.ECONFIG, "adapter spec %s: invalid domain pattern %q", s.Site, d)
		}
	}
	if len(s.Description) == 0 {
		return jobscrape.Errorf(jobscrape.ECONFIG, "adapter spec %s: description strategies required", s.Site)
	}
	for _, f := range s.fields() {
		for i, st := range f.strategies {
			if st.Name == "" || st.Extract == nil {
				return jobscrape.Errorf(jobscrape.ECONFIG, "adapter spec %s: %s strategy %d is incomplete", s.Site, f.name, i)
			}
		}
	}
	return nil
}

type fieldStrategies struct {
	name       string
	strategies []Strategy
}

// fields lists the strategy slices in extraction order.
func (s *AdapterSpec) fields() []fieldStrategies {
	return []fieldStrategies{
		{jobscrape.FieldTitle, s.Title},
		{jobscrape.FieldCompany, s.Company},
		{jobscrape.FieldLocation, s.Location},
		{jobscrape.FieldSalary, s.Salary},
		{jobscrape.FieldDescription, s.Description},
	}
}

// validDomain accepts lower-case host names such as "linkedin.com".
func validDomain(d string) bool {
	if d == "" || d != strings.ToLower(d) || !strings.Contains(d, ".") {
		return false
	}
	if strings.HasPrefix(d, ".") || strings.HasSuffix(d, ".") || strings.HasPrefix(d, "www.") {
		return false
	}
	return !strings.ContainsAny(d, "/:?# \t")
}

// SpecAdapter runs the strategies of an AdapterSpec.
type SpecAdapter struct {
	spec AdapterSpec
}

// NewAdapter validates spec and returns an adapter for it.
func NewAdapter(spec AdapterSpec) (*SpecAdapter, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &SpecAdapter{spec: spec}, nil
}

// Site returns the adapter's identifier.
func (a *SpecAdapter) Site() jobscrape.Site {
	return a.spec.Site
}

// Domains returns the domain patterns the adapter serves.
func (a *SpecAdapter) Domains() []string {
	return append([]string(nil), a.spec.Domains...)
}

// Extract runs each field's strategies independently; the first strategy
// yielding non-empty trimmed text wins. Description quality is not judged
// here.
func (a *SpecAdapter) Extract(html string, pageURL string) (*jobscrape.Extraction, error) {
	page, err := NewPage(html, pageURL)
	if err != nil {
		return nil, err
	}

	ex := &jobscrape.Extraction{Matched: make(map[string]string)}
	ex.Title = firstNonEmpty(page, a.spec.Title, jobscrape.FieldTitle, ex.Matched)
	ex.Company = firstNonEmpty(page, a.spec.Company, jobscrape.FieldCompany, ex.Matched)
	ex.Location = firstNonEmpty(page, a.spec.Location, jobscrape.FieldLocation, ex.Matched)
	ex.Salary = firstNonEmpty(page, a.spec.Salary, jobscrape.FieldSalary, ex.Matched)
	ex.Description = firstNonEmpty(page, a.spec.Description, jobscrape.FieldDescription, ex.Matched)
	return ex, nil
}

func firstNonEmpty(p *Page, strategies []Strategy, field string, matched map[string]string) string {
	for _, s := range strategies {
		if v := strings.TrimSpace(s.Extract(p)); v != "" {
			matched[field] = s.Name
			return v
		}
	}
	return ""
}
