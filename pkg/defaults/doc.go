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

// Package defaults provides centralized configuration constants for ybstats.
//
// This package defines timeout values used across the codebase. Centralizing
// these values ensures consistency and makes tuning easier.
//
// # Timeout Categories
//
// Timeouts are organized by component:
//
//   - Scrape timeouts: For pulling endpoints off cluster nodes
//   - HTTP client timeouts: For outbound requests to master/tablet-server endpoints
//   - Store timeouts: For snapshot persistence
//   - CLI timeouts: For command-line operations end to end
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/yugabyte/ybstats/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.ScrapeEndpointTimeout)
//	defer cancel()
//
// # Timeout Guidelines
//
// When choosing timeout values:
//
//   - Per-endpoint fetch: 10s default, respects parent context deadline
//   - Whole-snapshot fan-out: 2m, bounding scrape across all hosts and ports
//   - CLI invocation: 5m for --snapshot, 1m for --snapshot-diff/--adhoc-diff
package defaults
