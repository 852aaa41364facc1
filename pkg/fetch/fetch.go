package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"

	"github.com/yugabyte/ybstats/pkg/defaults"
)

// Fetcher pulls one endpoint off one cluster node.
type Fetcher interface {
	Fetch(ctx context.Context, host string, port int, path string) []byte
}

// HTTPFetcher is the concrete Fetcher backed by a tuned *http.Client,
// configured from pkg/defaults timeout constants (§4.1).
type HTTPFetcher struct {
	client *http.Client
	scheme string
}

// NewHTTPFetcher builds an HTTPFetcher. scheme is normally "http"; pass
// "https" for TLS-terminated endpoints.
func NewHTTPFetcher(scheme string) *HTTPFetcher {
	if scheme == "" {
		scheme = "http"
	}
	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   defaults.HTTPConnectTimeout,
			KeepAlive: defaults.HTTPKeepAlive,
		}).DialContext,
		TLSHandshakeTimeout:   defaults.HTTPTLSHandshakeTimeout,
		ResponseHeaderTimeout: defaults.HTTPResponseHeaderTimeout,
		IdleConnTimeout:       defaults.HTTPIdleConnTimeout,
		ExpectContinueTimeout: defaults.HTTPExpectContinueTimeout,
	}
	return &HTTPFetcher{
		client: &http.Client{
			Transport: transport,
			Timeout:   defaults.HTTPClientTimeout,
		},
		scheme: scheme,
	}
}

// Fetch performs the HTTP GET and returns the body, or empty bytes on any
// failure. Every failure is logged at debug level (§4.1) and never
// returned as an error: callers (the decoders) treat empty input as a
// missing endpoint.
func (f *HTTPFetcher) Fetch(ctx context.Context, host string, port int, path string) []byte {
	url := fmt.Sprintf("%s://%s:%d%s", f.scheme, host, port, path)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		slog.Debug("fetch: failed to build request", "url", url, "error", err)
		return nil
	}

	resp, err := f.client.Do(req)
	if err != nil {
		slog.Debug("fetch: request failed", "url", url, "error", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		slog.Debug("fetch: non-2xx response", "url", url, "status", resp.StatusCode)
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		slog.Debug("fetch: failed reading body", "url", url, "error", err)
		return nil
	}
	return body
}
