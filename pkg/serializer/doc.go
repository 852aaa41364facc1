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

// Package serializer provides encoding and decoding of snapshot and diff
// output in multiple formats.
//
// # Overview
//
// The serializer package handles conversion between the orchestrator's
// snapshot-list and diff result structures and various output formats:
// JSON, YAML, and a flattened human-readable table. It supports both
// encoding (writing data) and decoding (reading data) operations.
//
// # Supported Formats
//
// JSON: machine-parseable, encoding/json with two-space indent.
//
// YAML: human-readable, gopkg.in/yaml.v3.
//
// Table: flattens nested structs/slices/maps into dotted field paths and
// prints them via text/tabwriter. Write-only: table format does not
// support deserialization.
//
// # Usage - Encoding
//
//	w := serializer.NewStdoutWriter(serializer.FormatTable)
//	if err := w.Serialize(ctx, diffResult); err != nil {
//	    log.Fatal(err)
//	}
//
// Write to a file (or stdout if path is "" or "-"):
//
//	w, err := serializer.NewFileWriterOrStdout(serializer.FormatJSON, path)
//	if err != nil { log.Fatal(err) }
//	defer w.Close()
//	if err := w.Serialize(ctx, snapshotList); err != nil { log.Fatal(err) }
//
// # Usage - Decoding
//
//	r, err := serializer.NewFileReaderAuto("4/values.json")
//	if err != nil { log.Fatal(err) }
//	defer r.Close()
//	var values []model.ValueObservation
//	if err := r.Deserialize(&values); err != nil { log.Fatal(err) }
//
// # Resource Management
//
// Always Close() writers/readers backed by files. Stdout-backed writers
// are safe to Close() as a no-op.
package serializer
