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

// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// # Overview
//
// This package implements a structured error system with error codes for
// programmatic handling, human-readable messages, cause chaining, and
// optional context for debugging. It supports the standard errors.Is and
// errors.As functions through the Unwrap interface.
//
// # Error Codes
//
//   - ErrCodeFetch: an HTTP fetch against a cluster node failed
//   - ErrCodeDecode: a decoder could not parse an endpoint payload
//   - ErrCodeStore: a snapshot store operation failed (index or kind file I/O)
//   - ErrCodeDiff: the diff engine could not complete a join
//   - ErrCodeInput: invalid user input (CLI flags, stdin prompts)
//   - ErrCodeInvariant: a programming-invariant violation (duplicate key)
//
// # Usage
//
// Create a simple error:
//
//	err := errors.New(errors.ErrCodeStore, "snapshot 4 not found")
//
// Wrap an existing error:
//
//	err := errors.Wrap(errors.ErrCodeDiff, "join failed", originalErr)
//
// Wrap with additional context:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeFetch,
//	    "scrape failed",
//	    ctx.Err(),
//	    map[string]any{
//	        "endpoint": "/metrics",
//	        "node":     hostPort,
//	    },
//	)
//
// # Error Handling
//
// The StructuredError type implements the standard error interface and
// supports error unwrapping:
//
//	var structErr *errors.StructuredError
//	if errors.As(err, &structErr) {
//	    log.Printf("code: %s, message: %s", structErr.Code, structErr.Message)
//	}
package errors
