package mock

import "github.com/akmandhania/jobscrape"

var _ jobscrape.Adapter = (*Adapter)(nil)

// Adapter is a mock implementation of jobscrape.Adapter.
type Adapter struct {
	ExtractFn func(html string, pageURL string) (*jobscrape.Extraction, error)
	SiteFn    func() jobscrape.Site
}

func (a *Adapter) Extract(html string, pageURL string) (*jobscrape.Extraction, error) {
	return a.ExtractFn(html, pageURL)
}

func (a *Adapter) Site() jobscrape.Site {
	return a.SiteFn()
}

var _ jobscrape.AdapterRegistry = (*AdapterRegistry)(nil)

// AdapterRegistry is a mock implementation of jobscrape.AdapterRegistry.
type AdapterRegistry struct {
	LookupFn  func(rawURL string) jobscrape.Adapter
	GenericFn func() jobscrape.Adapter
	ListFn    func() []jobscrape.Site
	DomainsFn func(site jobscrape.Site) []string
}

func (r *AdapterRegistry) Lookup(rawURL string) jobscrape.Adapter {
	return r.LookupFn(rawURL)
}

func (r *AdapterRegistry) Generic() jobscrape.Adapter {
	return r.GenericFn()
}

func (r *AdapterRegistry) List() []jobscrape.Site {
	return r.ListFn()
}

func (r *AdapterRegistry) Domains(site jobscrape.Site) []string {
	return r.DomainsFn(site)
}
