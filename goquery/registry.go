package goquery

import (
	"net/url"
	"strings"

	"github.com/akmandhania/jobscrape"
)

var _ jobscrape.AdapterRegistry = (*Registry)(nil)

// Registry maps URL domains to site adapters, falling back to a generic
// adapter when no domain pattern matches. It is built once and read-only
// afterwards, so it is safe for concurrent use.
type Registry struct {
	generic  jobscrape.Adapter
	adapters []*SpecAdapter
	byDomain map[string]*SpecAdapter
	bySite   map[jobscrape.Site]*SpecAdapter
}

// NewRegistry creates a Registry from the given specs. Returns ECONFIG if
// generic is nil, a spec is invalid, or a site or domain is registered twice.
func NewRegistry(generic jobscrape.Adapter, specs ...AdapterSpec) (*Registry, error) {
	if generic == nil {
		return nil, jobscrape.Errorf(jobscrape.ECONFIG, "registry: generic adapter required")
	}

	r := &Registry{
		generic:  generic,
		byDomain: make(map[string]*SpecAdapter),
		bySite:   make(map[jobscrape.Site]*SpecAdapter),
	}
	for _, spec := range specs {
		a, err := NewAdapter(spec)
		if err != nil {
			return nil, err
		}
		if _, dup := r.bySite[a.Site()]; dup {
			return nil, jobscrape.Errorf(jobscrape.ECONFIG, "registry: site %q registered twice", a.Site())
		}
		for _, d := range spec.Domains {
			if other, dup := r.byDomain[d]; dup {
				return nil, jobscrape.Errorf(jobscrape.ECONFIG, "registry: domain %q claimed by both %s and %s", d, other.Site(), a.Site())
			}
			r.byDomain[d] = a
		}
		r.bySite[a.Site()] = a
		r.adapters = append(r.adapters, a)
	}
	return r, nil
}

// NewDefaultRegistry returns a Registry with every built-in site adapter.
func NewDefaultRegistry(generic jobscrape.Adapter) (*Registry, error) {
	return NewRegistry(generic,
		NewLinkedInSpec(),
		NewIndeedSpec(),
		NewGlassdoorSpec(),
		NewMonsterSpec(),
		NewCareerBuilderSpec(),
	)
}

// Lookup returns the adapter registered for the URL's host or any parent
// domain of it, so "linkedin.com" also serves "www.linkedin.com" and
// "uk.linkedin.com". Unmatched or unparsable URLs get the generic adapter.
func (r *Registry) Lookup(rawURL string) jobscrape.Adapter {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return r.generic
	}
	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	for host != "" {
		if a, ok := r.byDomain[host]; ok {
			return a
		}
		_, parent, found := strings.Cut(host, ".")
		if !found {
			break
		}
		host = parent
	}
	return r.generic
}

// Generic returns the fallback adapter.
func (r *Registry) Generic() jobscrape.Adapter {
	return r.generic
}

// List returns the registered sites in registration order.
func (r *Registry) List() []jobscrape.Site {
	sites := make([]jobscrape.Site, 0, len(r.adapters))
	for _, a := range r.adapters {
		sites = append(sites, a.Site())
	}
	return sites
}

// Domains returns the domain patterns registered for site, or nil.
func (r *Registry) Domains(site jobscrape.Site) []string {
	if a, ok := r.bySite[site]; ok {
		return a.Domains()
	}
	return nil
}
