package scrape

import (
	"context"
	"sync"

	"github.com/akmandhania/jobscrape"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

var _ jobscrape.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter serializes requests per domain and spaces them with a token
// bucket. Requests to different domains do not wait for each other.
type DomainLimiter struct {
	mu      sync.Mutex
	domains map[string]*domainPermit
	limit   rate.Limit
}

type domainPermit struct {
	sem     *semaphore.Weighted
	limiter *rate.Limiter
}

// NewDomainLimiter creates a DomainLimiter allowing rps requests per second
// to each domain. A non-positive rps disables spacing but still serializes.
func NewDomainLimiter(rps float64) *DomainLimiter {
	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}
	return &DomainLimiter{
		domains: make(map[string]*domainPermit),
		limit:   limit,
	}
}

// Acquire blocks until no other request to domain is in flight and the
// domain's rate allows a new one.
func (d *DomainLimiter) Acquire(ctx context.Context, domain string) (func(), error) {
	p := d.permit(domain)

	if err := p.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	if err := p.limiter.Wait(ctx); err != nil {
		p.sem.Release(1)
		return nil, err
	}
	return sync.OnceFunc(func() { p.sem.Release(1) }), nil
}

func (d *DomainLimiter) permit(domain string) *domainPermit {
	d.mu.Lock()
	defer d.mu.Unlock()

	p, ok := d.domains[domain]
	if !ok {
		p = &domainPermit{
			sem:     semaphore.NewWeighted(1),
			limiter: rate.NewLimiter(d.limit, 1),
		}
		d.domains[domain] = p
	}
	return p
}
