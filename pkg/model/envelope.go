package model

import "time"

// Envelope carries the per-node capture metadata that every scraped record
// is stamped with: which node produced it and when the scrape started.
type Envelope struct {
	HostnamePort string    `json:"hostname_port"`
	Timestamp    time.Time `json:"timestamp"`
}
