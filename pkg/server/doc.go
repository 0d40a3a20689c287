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

// Package server provides the HTTP server shared by the composer API.
//
// It wires application routes behind a middleware chain and adds the system
// endpoints every deployment needs.
//
// # Middleware
//
// Application routes run through, outermost first:
//
//   - Prometheus RED metrics, labeled by route pattern
//   - API version negotiation (Accept: application/vnd.nvidia.composer.v1+json)
//   - Request IDs (X-Request-Id, generated when missing or not a UUID)
//   - Panic recovery
//   - Token bucket rate limiting (golang.org/x/time/rate)
//   - Debug request logging
//
// # System Endpoints
//
// System endpoints bypass the middleware chain:
//
//	GET /health   liveness check
//	GET /ready    readiness check, 503 while starting or draining
//	GET /metrics  Prometheus metrics
//
// # Errors
//
// Handlers report failures with WriteError or WriteErrorFromErr, which map
// pkg/errors codes to HTTP status:
//
//	{
//	  "code": "INVALID_REQUEST",
//	  "message": "invalid query parameters",
//	  "details": {"fields": ["memory: Invalid value: \"3072\": ..."]},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2025-01-15T10:30:00Z",
//	  "retryable": false
//	}
//
// # Configuration
//
// Defaults come from pkg/defaults and can be overridden through the
// environment:
//
//	PORT                      listen port (default 8080)
//	SHUTDOWN_TIMEOUT_SECONDS  graceful shutdown budget (default 30)
//	RATE_LIMIT                sustained requests per second (default 100)
//	RATE_LIMIT_BURST          burst size (default 200)
//
// # Usage
//
//	s := server.New(
//	    server.WithName("composerd"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/v1/recommendations": h.HandleRecommendations,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
package server
