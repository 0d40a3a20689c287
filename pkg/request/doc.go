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

// Package request turns untrusted input into hardware configurations.
//
// Three sources are supported:
//   - URL query values (cpu, memory, gpu) via ParseConfigFromValues
//   - HTTP request bodies in JSON or YAML via ParseConfigFromBody
//   - Files in JSON or YAML via LoadConfigFromFile
//
// Bodies and files use a Kubernetes-style resource:
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
// Memory text is checked with the validator package, so only sizes the
// composer form would accept reach the decision engine. All field problems in
// a request are reported together as a single INVALID_REQUEST error.
package request
