// Package linkcheck probes link targets for liveness.
package linkcheck

import (
	"context"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"
)

// Result is the probe outcome for one URL.
type Result struct {
	URL        string
	StatusCode int
	OK         bool
	Err        error
}

// Checker probes URLs over HTTP.
type Checker struct {
	client  *http.Client
	workers int
}

// NewChecker builds a Checker with the given concurrency; values below one
// fall back to a single worker.
func NewChecker(workers int) *Checker {
	if workers < 1 {
		workers = 1
	}
	return &Checker{
		client:  &http.Client{Timeout: 10 * time.Second},
		workers: workers,
	}
}

// Check probes each http(s) URL with a HEAD request, retrying as GET when
// the server rejects HEAD. Non-HTTP targets are skipped. Results come back
// sorted by URL.
func (c *Checker) Check(ctx context.Context, urls []string) []Result {
	var targets []string
	for _, u := range urls {
		if strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
			targets = append(targets, u)
		}
	}

	work := make(chan string, len(targets))
	out := make(chan Result, len(targets))

	var wg sync.WaitGroup
	for i := 0; i < c.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for u := range work {
				out <- c.probe(ctx, u)
			}
		}()
	}

	for _, u := range targets {
		work <- u
	}
	close(work)
	wg.Wait()
	close(out)

	results := make([]Result, 0, len(targets))
	for r := range out {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].URL < results[j].URL })
	return results
}

func (c *Checker) probe(ctx context.Context, url string) Result {
	status, err := c.request(ctx, http.MethodHead, url)
	if err != nil || status == http.StatusMethodNotAllowed {
		status, err = c.request(ctx, http.MethodGet, url)
	}
	return Result{
		URL:        url,
		StatusCode: status,
		OK:         err == nil && status >= 200 && status < 400,
		Err:        err,
	}
}

func (c *Checker) request(ctx context.Context, method, url string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return 0, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return resp.StatusCode, nil
}
