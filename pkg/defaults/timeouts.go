// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package defaults

import "time"

// Scrape timeouts for pulling endpoints off cluster nodes.
const (
	// ScrapeEndpointTimeout is the default timeout for a single endpoint
	// fetch against one host:port. Individual fetches should respect a
	// parent context deadline when it is shorter.
	ScrapeEndpointTimeout = 10 * time.Second

	// ScrapeSnapshotTimeout bounds an entire snapshot across all hosts,
	// ports, and endpoints.
	ScrapeSnapshotTimeout = 2 * time.Minute
)

// HTTP client timeouts for outbound requests to master and tablet-server
// endpoints.
const (
	// HTTPClientTimeout is the default total timeout for HTTP requests.
	HTTPClientTimeout = 10 * time.Second

	// HTTPConnectTimeout is the timeout for establishing connections.
	HTTPConnectTimeout = 3 * time.Second

	// HTTPTLSHandshakeTimeout is the timeout for TLS handshake.
	HTTPTLSHandshakeTimeout = 5 * time.Second

	// HTTPResponseHeaderTimeout is the timeout for reading response headers.
	HTTPResponseHeaderTimeout = 5 * time.Second

	// HTTPIdleConnTimeout is the timeout for idle connections in the pool.
	HTTPIdleConnTimeout = 90 * time.Second

	// HTTPKeepAlive is the keep-alive duration for connections.
	HTTPKeepAlive = 30 * time.Second

	// HTTPExpectContinueTimeout is the timeout for Expect: 100-continue.
	HTTPExpectContinueTimeout = 1 * time.Second
)

// Store timeouts for snapshot persistence.
const (
	// StoreWriteTimeout bounds writing a single kind file (or the index)
	// to the snapshot store.
	StoreWriteTimeout = 5 * time.Second
)

// CLI timeouts for command-line operations.
const (
	// CLISnapshotTimeout is the default timeout for a `--snapshot` command
	// invocation end to end, covering all hosts and ports.
	CLISnapshotTimeout = 5 * time.Minute

	// CLIDiffTimeout is the default timeout for a `--snapshot-diff` or
	// `--adhoc-diff` command invocation.
	CLIDiffTimeout = 1 * time.Minute
)
