// Package scrape implements the bounded-parallel fan-out scraper (§4.3):
// ReadAll executes the Cartesian product of hosts x ports as independent
// tasks, bounded to a worker-pool size via errgroup.Group.SetLimit, with
// an optional golang.org/x/time/rate.Limiter throttling task starts.
package scrape
