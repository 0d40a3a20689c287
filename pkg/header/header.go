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

package header

import (
	"time"
)

// APIVersion is the schema version of all server composer documents.
const APIVersion = "composer.nvidia.com/v1alpha1"

// Kind represents the type of server composer document.
type Kind string

// Kinds of server composer documents.
const (
	KindHardwareConfig   Kind = "HardwareConfig"
	KindRecommendation   Kind = "Recommendation"
	KindValidationResult Kind = "ValidationResult"
	KindOptions          Kind = "Options"
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid reports whether k is one of the document kinds above.
func (k Kind) IsValid() bool {
	switch k {
	case KindHardwareConfig, KindRecommendation, KindValidationResult, KindOptions:
		return true
	default:
		return false
	}
}

// Header is embedded inline at the top of every document.
type Header struct {
	// Kind is the type of the document.
	Kind Kind `json:"kind,omitempty" yaml:"kind,omitempty"`

	// APIVersion is the schema version of the document.
	APIVersion string `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`

	// Metadata holds the generation timestamp and the producing version.
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Init sets kind and apiVersion and resets Metadata to an RFC3339 UTC
// timestamp plus version when version is not empty.
func (h *Header) Init(kind Kind, apiVersion string, version string) {
	h.Kind = kind
	h.APIVersion = apiVersion
	h.Metadata = map[string]string{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	if version != "" {
		h.Metadata["version"] = version
	}
}
