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
	"testing"
	"time"
)

func TestKindIsValid(t *testing.T) {
	tests := []struct {
		kind Kind
		want bool
	}{
		{KindHardwareConfig, true},
		{KindRecommendation, true},
		{KindValidationResult, true},
		{KindOptions, true},
		{Kind("Snapshot"), false},
		{Kind(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := tt.kind.IsValid(); got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInit(t *testing.T) {
	var h Header
	h.Init(KindRecommendation, APIVersion, "v1.2.3")

	if h.Kind != KindRecommendation {
		t.Errorf("expected kind %s, got %s", KindRecommendation, h.Kind)
	}
	if h.APIVersion != APIVersion {
		t.Errorf("expected apiVersion %s, got %s", APIVersion, h.APIVersion)
	}
	if h.Metadata["version"] != "v1.2.3" {
		t.Errorf("expected version metadata, got %v", h.Metadata)
	}
	if _, err := time.Parse(time.RFC3339, h.Metadata["timestamp"]); err != nil {
		t.Errorf("expected RFC3339 timestamp, got %q: %v", h.Metadata["timestamp"], err)
	}

	h.Init(KindOptions, APIVersion, "")
	if _, ok := h.Metadata["version"]; ok {
		t.Error("expected no version metadata when version is empty")
	}
}
