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

// Package header provides a common envelope type for CLI output resources.
//
// This package defines the Header type embedded by snapshot-list and diff
// output resources to provide consistent Kind/APIVersion/Metadata fields,
// independent of the serialization format (JSON, YAML, table) chosen at
// print time.
//
// # Usage
//
//	h := header.New(
//	    header.WithKind(header.KindMetricDiff),
//	    header.WithAPIVersion("ybstats/v1"),
//	    header.WithMetadata("begin", "4"),
//	    header.WithMetadata("end", "5"),
//	)
package header
