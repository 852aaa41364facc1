package scrape

import (
	"context"
	"testing"

	"github.com/yugabyte/ybstats/pkg/model"
)

type fakeFetcher struct {
	responses map[string][]byte
}

func (f *fakeFetcher) Fetch(_ context.Context, host string, port int, path string) []byte {
	key := host + ":" + path
	return f.responses[key]
}

func TestTargets(t *testing.T) {
	got := Targets([]string{"h1", "h2"}, []int{9000, 9100})
	if len(got) != 4 {
		t.Fatalf("expected 4 targets, got %d", len(got))
	}
}

func TestReadAll(t *testing.T) {
	fetcher := &fakeFetcher{responses: map[string][]byte{
		"h1:/varz": []byte(`ok1`),
		"h2:/varz": nil, // unreachable
	}}
	s := NewScraper(fetcher, 2, 0)

	decode := func(body []byte, env model.Envelope) string {
		if len(body) == 0 {
			return ""
		}
		return env.HostnamePort + ":" + string(body)
	}
	isEmpty := func(s string) bool { return s == "" }

	targets := Targets([]string{"h1", "h2"}, []int{9000})
	got := ReadAll(context.Background(), s, targets, "/varz", decode, isEmpty)

	if len(got) != 1 {
		t.Fatalf("expected 1 result (h2 unreachable filtered), got %v", got)
	}
	if got[0] != "h1:9000:ok1" {
		t.Errorf("unexpected result: %v", got[0])
	}
}

func TestReadAll_NoFilter(t *testing.T) {
	fetcher := &fakeFetcher{responses: map[string][]byte{}}
	s := NewScraper(fetcher, 1, 0)

	decode := func(body []byte, env model.Envelope) model.Rpcz {
		return model.Rpcz{Envelope: env, Shape: model.RpczShapeEmpty}
	}

	targets := Targets([]string{"h1"}, []int{9000})
	got := ReadAll(context.Background(), s, targets, "/rpcz", decode, nil)

	if len(got) != 1 {
		t.Fatalf("expected empty-shape result to be kept when isEmpty is nil, got %d", len(got))
	}
}
