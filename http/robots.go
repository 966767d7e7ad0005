package http

import (
	"context"
	"net/http"
	"net/url"
	"sync"

	"github.com/temoto/robotstxt"
)

// robotsCache holds parsed robots.txt files per scheme and host.
// Unreachable or unparsable robots.txt files allow everything. Transport
// failures and 5xx answers are not cached, so the next request asks again.
type robotsCache struct {
	mu   sync.Mutex
	data map[string]*robotstxt.RobotsData
}

func newRobotsCache() *robotsCache {
	return &robotsCache{data: make(map[string]*robotstxt.RobotsData)}
}

func (c *robotsCache) allowed(ctx context.Context, client *http.Client, u *url.URL, userAgent string) bool {
	data := c.get(ctx, client, u, userAgent)
	if data == nil {
		return true
	}
	return data.TestAgent(u.RequestURI(), userAgent)
}

func (c *robotsCache) get(ctx context.Context, client *http.Client, u *url.URL, userAgent string) *robotstxt.RobotsData {
	key := u.Scheme + "://" + u.Host

	c.mu.Lock()
	data, ok := c.data[key]
	c.mu.Unlock()
	if ok {
		return data
	}

	data, ok = fetchRobots(ctx, client, key+"/robots.txt", userAgent)
	if !ok {
		return nil
	}

	c.mu.Lock()
	c.data[key] = data
	c.mu.Unlock()
	return data
}

// fetchRobots reports ok=false when the answer is transient and must not be
// cached.
func fetchRobots(ctx context.Context, client *http.Client, robotsURL, userAgent string) (*robotstxt.RobotsData, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
	if err != nil {
		return nil, true
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, false
	}
	defer resp.Body.Close()

	// robotstxt treats 5xx as disallow-all.
	if resp.StatusCode >= 500 {
		return nil, false
	}

	data, err := robotstxt.FromResponse(resp)
	if err != nil {
		return nil, true
	}
	return data, true
}
