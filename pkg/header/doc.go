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

// Package header provides the common resource header for server composer
// documents.
//
// Every document the CLI and API emit, and every hardware configuration file
// they read, starts with Kubernetes-style Kind and APIVersion fields plus a
// free-form metadata map:
//
//	kind: Recommendation
//	apiVersion: composer.nvidia.com/v1alpha1
//	metadata:
//	  timestamp: "2025-12-30T10:30:00Z"
//	  version: v1.0.0
//
// Create a header with Init:
//
//	var h header.Header
//	h.Init(header.KindRecommendation, header.APIVersion, version)
//
// Timestamps use RFC3339 in UTC. Consumers should check APIVersion and Kind
// before interpreting a document.
package header
