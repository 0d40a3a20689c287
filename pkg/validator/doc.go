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

// Package validator converts and validates user-entered memory sizes.
//
// Memory sizes are expressed in megabytes and arrive either as free text typed
// by a user (possibly grouped with commas, e.g. "524,288") or as integers set
// programmatically. All functions are pure: they hold no state, never panic and
// report failures as a ValidationResult rather than an error.
//
// # Rules
//
// A memory size is accepted when all of the following hold, checked in order;
// the first violated rule is reported:
//
//  1. it is an integer
//  2. it is at least 2,048MB
//  3. it does not exceed 8,388,608MB
//  4. it is a multiple of 1024MB
//  5. it is a power of 2
//
// Text input must consist only of digits and commas before any of the numeric
// rules are applied.
//
// # Usage
//
//	res := validator.ParseMemoryInput("4,096")
//	if !res.Valid {
//	    fmt.Println(res.ErrorMessage)
//	    return
//	}
//	fmt.Println(*res.Value) // 4096
//
// Formatting helpers convert between integers and display text:
//
//	validator.FormatWithCommas(524288)          // "524,288"
//	n, _ := validator.FormatRemoveCommas("100.6") // 100
package validator
