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

// Package api provides the server composer HTTP API.
//
// Usage:
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Architecture
//
// The API layer is responsible for:
//   - Configuring structured logging with application name and version
//   - Translating requests into hardware configurations (pkg/request)
//   - Calling the decision engine (pkg/recommender) and the memory
//     validator (pkg/validator)
//   - Delegating server lifecycle management to pkg/server
//
// # Endpoints
//
// Application Endpoints (with rate limiting):
//   - GET  /v1/recommendations       - Server models for query parameters
//   - POST /v1/recommendations       - Server models for a HardwareConfig body (JSON/YAML)
//   - GET  /v1/memory/validate       - Validate a memory size
//   - GET  /v1/options               - Supported CPU models, server models, and memory bounds
//
// System Endpoints (no rate limiting):
//   - GET /health  - Health check (liveness)
//   - GET /ready   - Readiness check
//   - GET /metrics - Prometheus metrics
//
// # Query Parameters (GET /v1/recommendations)
//
//   - cpu: CPU model (X86, Power, ARM; case-insensitive, default X86)
//   - memory: Memory size in MB, commas allowed (e.g. 262,144)
//   - gpu: GPU accelerator (true/false, default false)
//
// A configuration no server model satisfies is not an error: the response has
// "matched": false and no models.
//
// # Request Body (POST /v1/recommendations)
//
//	kind: HardwareConfig
//	apiVersion: composer.nvidia.com/v1alpha1
//	metadata:
//	  name: analytics-node
//	spec:
//	  cpu: Power
//	  memorySize: 262144
//	  gpuAccelerator: false
//
// Example:
//
//	curl -X POST http://localhost:8080/v1/recommendations \
//	  -H "Content-Type: application/yaml" \
//	  --data-binary @server.yaml
//
// # Memory Validation (GET /v1/memory/validate?memory=3072)
//
// Invalid sizes are a normal result, answered with 200:
//
//	{
//	  "kind": "ValidationResult",
//	  "apiVersion": "composer.nvidia.com/v1alpha1",
//	  "input": "3072",
//	  "result": {
//	    "isValid": false,
//	    "errorMessage": "Memory size must be a power of 2",
//	    "kind": "NotPowerOfTwo"
//	  }
//	}
//
// # Configuration
//
// See pkg/server for environment variables. Version information is set at
// build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/server-composer/pkg/api.version=1.0.0'"
package api
