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

package validator

import (
	"github.com/NVIDIA/server-composer/pkg/header"
)

// Report is the document describing the validation of one memory input.
// The result is nested because both the header and ValidationResult carry a
// kind.
type Report struct {
	header.Header `json:",inline" yaml:",inline"`

	// Input is the memory text as received.
	Input string `json:"input" yaml:"input"`

	// Result is the validation outcome.
	Result ValidationResult `json:"result" yaml:"result"`

	// Formatted is the accepted size with thousands separators.
	Formatted string `json:"formatted,omitempty" yaml:"formatted,omitempty"`
}

// NewReport validates input with ParseMemoryInput and wraps the result.
func NewReport(version, input string) *Report {
	r := &Report{
		Input:  input,
		Result: ParseMemoryInput(input),
	}
	if r.Result.Valid && r.Result.Value != nil {
		r.Formatted = FormatWithCommas(*r.Result.Value)
	}
	r.Init(header.KindValidationResult, header.APIVersion, version)
	return r
}
