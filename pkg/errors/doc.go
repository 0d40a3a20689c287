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

// Package errors provides structured error types for adapters around the
// server composer core: the CLI and the HTTP API.
//
// The validator and the recommender report negative outcomes as values; this
// package is used when such an outcome, or a malformed request, has to leave
// the process as an error.
//
// Example usage:
//
//	err := errors.NewWithContext(
//	    errors.ErrCodeInvalidRequest,
//	    "Memory size must be a power of 2",
//	    map[string]any{
//	        "kind":  "NotPowerOfTwo",
//	        "input": "3,072",
//	    },
//	)
package errors
