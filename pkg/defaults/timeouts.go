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

// Handler timeouts for HTTP request processing.
const (
	// RecommendHandlerTimeout is the timeout for recommendation requests.
	RecommendHandlerTimeout = 10 * time.Second

	// ValidateHandlerTimeout is the timeout for memory validation requests.
	ValidateHandlerTimeout = 5 * time.Second

	// RecommendCacheTTL is the cache duration for recommendation responses.
	// Decisions are pure functions of the request, so responses never go stale
	// within a release.
	RecommendCacheTTL = 10 * time.Minute

	// OptionsCacheTTL is the cache duration for the options listing.
	OptionsCacheTTL = time.Hour
)

// Request limits.
const (
	// MaxRequestBodyBytes caps POST bodies accepted by the API.
	MaxRequestBodyBytes = 64 << 10
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// Server defaults overridable through the environment.
const (
	// ServerPort is the default listen port.
	ServerPort = 8080

	// ServerRateLimit is the default sustained requests per second.
	ServerRateLimit = 100

	// ServerRateLimitBurst is the default token bucket burst.
	ServerRateLimitBurst = 200

	// ServerMaxHeaderBytes caps request header size.
	ServerMaxHeaderBytes = 1 << 20
)

// CLI timeouts for command-line operations.
const (
	// CLICommandTimeout bounds a single non-interactive command.
	CLICommandTimeout = 30 * time.Second
)
