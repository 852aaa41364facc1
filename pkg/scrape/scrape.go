package scrape

import (
	"context"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/yugabyte/ybstats/pkg/fetch"
	"github.com/yugabyte/ybstats/pkg/model"
)

// Target is one (host, port) pair the scraper fans out over.
type Target struct {
	Host string
	Port int
}

// Targets builds the Cartesian product of hosts x ports.
func Targets(hosts []string, ports []int) []Target {
	targets := make([]Target, 0, len(hosts)*len(ports))
	for _, h := range hosts {
		for _, p := range ports {
			targets = append(targets, Target{Host: h, Port: p})
		}
	}
	return targets
}

// Scraper executes fetch-and-decode tasks against a bounded worker pool,
// optionally throttled by a rate limiter (§1B, §4.3).
type Scraper struct {
	Fetcher     fetch.Fetcher
	Limiter     *rate.Limiter
	Parallelism int
}

// NewScraper builds a Scraper. ratePerSecond <= 0 means unlimited (bounded
// only by Parallelism).
func NewScraper(fetcher fetch.Fetcher, parallelism int, ratePerSecond float64) *Scraper {
	if parallelism <= 0 {
		parallelism = 1
	}
	s := &Scraper{Fetcher: fetcher, Parallelism: parallelism}
	if ratePerSecond > 0 {
		s.Limiter = rate.NewLimiter(rate.Limit(ratePerSecond), 1)
	}
	return s
}

// ReadAll fetches path from every target, decodes each response with
// decode, and returns one T per reachable target that produced a
// parseable payload. Order is not guaranteed (§4.3). A failing task
// (unreachable node, decode failure surfaced as a zero value by decode)
// contributes nothing to the result if isEmpty reports it empty;
// pass a permissive isEmpty (always false) to keep every result,
// including explicit "no data" records like model.Rpcz's empty shape.
func ReadAll[T any](ctx context.Context, s *Scraper, targets []Target, path string, decode func(body []byte, env model.Envelope) T, isEmpty func(T) bool) []T {
	results := make(chan T, len(targets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.Parallelism)

	for _, target := range targets {
		target := target
		g.Go(func() error {
			if s.Limiter != nil {
				if err := s.Limiter.Wait(gctx); err != nil {
					return nil //nolint:nilerr // context cancellation ends the fan-out, not a batch failure
				}
			}

			captureTime := time.Now()
			hostnamePort := target.hostnamePort()
			body := s.Fetcher.Fetch(gctx, target.Host, target.Port, path)

			env := model.Envelope{HostnamePort: hostnamePort, Timestamp: captureTime}
			decoded := decode(body, env)
			if isEmpty == nil || !isEmpty(decoded) {
				results <- decoded
			}
			return nil
		})
	}

	_ = g.Wait()
	close(results)

	out := make([]T, 0, len(targets))
	for r := range results {
		out = append(out, r)
	}
	return out
}

func (t Target) hostnamePort() string {
	return t.Host + ":" + strconv.Itoa(t.Port)
}
