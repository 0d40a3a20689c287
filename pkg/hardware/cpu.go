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

package hardware

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"

	apperrors "github.com/NVIDIA/server-composer/pkg/errors"
)

// suggestionMaxDistance is the largest edit distance for which an unknown
// CPU model gets a "did you mean" hint.
const suggestionMaxDistance = 2

// CPUModel represents the CPU family of a hardware configuration.
type CPUModel string

// CPUModel constants for supported CPU families.
const (
	CPUModelX86   CPUModel = "X86"
	CPUModelPower CPUModel = "Power"
	CPUModelARM   CPUModel = "ARM"
)

// DefaultCPUModel is used when no CPU model is given.
const DefaultCPUModel = CPUModelX86

// String returns the string representation of the CPU model.
func (c CPUModel) String() string {
	return string(c)
}

// IsValid returns true if the CPU model is one of the supported families.
func (c CPUModel) IsValid() bool {
	switch c {
	case CPUModelX86, CPUModelPower, CPUModelARM:
		return true
	default:
		return false
	}
}

// SupportedCPUModels returns all supported CPU models in display order.
func SupportedCPUModels() []CPUModel {
	return []CPUModel{CPUModelX86, CPUModelPower, CPUModelARM}
}

// SupportedCPUModelNames returns the names of all supported CPU models.
func SupportedCPUModelNames() []string {
	models := SupportedCPUModels()
	names := make([]string, 0, len(models))
	for _, m := range models {
		names = append(names, m.String())
	}
	return names
}

// ParseCPUModel parses a string into a CPUModel.
// Matching is case-insensitive and an empty string yields DefaultCPUModel.
func ParseCPUModel(s string) (CPUModel, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return DefaultCPUModel, nil
	}

	for _, m := range SupportedCPUModels() {
		if strings.EqualFold(trimmed, m.String()) {
			return m, nil
		}
	}

	msg := fmt.Sprintf("invalid cpu model %q, supported values: %s",
		s, strings.Join(SupportedCPUModelNames(), ", "))
	if suggestion, ok := suggestCPUModel(trimmed); ok {
		msg = fmt.Sprintf("%s (did you mean %q?)", msg, suggestion)
	}

	return DefaultCPUModel, apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest, msg,
		map[string]any{"cpu": s})
}

// suggestCPUModel returns the supported CPU model closest to s when it is
// within suggestionMaxDistance edits.
func suggestCPUModel(s string) (CPUModel, bool) {
	lower := strings.ToLower(s)
	best := CPUModel("")
	bestDistance := suggestionMaxDistance + 1

	for _, m := range SupportedCPUModels() {
		d := levenshtein.ComputeDistance(lower, strings.ToLower(m.String()))
		if d < bestDistance {
			best = m
			bestDistance = d
		}
	}

	if best == "" {
		return "", false
	}
	return best, true
}
