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
	"errors"
	"math"
	"strconv"
	"strings"

	"k8s.io/utils/ptr"
)

const (
	// MinMemorySize is the smallest accepted memory size in megabytes.
	MinMemorySize = 2048

	// MaxMemorySize is the largest accepted memory size in megabytes.
	MaxMemorySize = 8388608

	// MemoryStep is the granularity memory sizes must be a multiple of.
	MemoryStep = 1024
)

// Error messages reported for each rule.
const (
	MsgInvalidCharacters = "Memory size must contain only digits and commas"
	MsgNotNumber         = "Memory size must be a number"
	MsgNotInteger        = "Memory size must be an integer"
	MsgBelowMinimum      = "Memory size must be at least 2,048MB"
	MsgAboveMaximum      = "Memory size must not exceed 8,388,608MB"
	MsgNotMultiple       = "Memory size must be a multiple of 1024MB"
	MsgNotPowerOfTwo     = "Memory size must be a power of 2"
)

// ParseMemoryInput validates free-text memory input such as "4,096".
// Commas are stripped, the remainder must be one or more decimal digits, and
// the resulting number is checked with ValidateMemorySize.
func ParseMemoryInput(raw string) ValidationResult {
	cleaned := stripCommas(raw)
	if !isDigits(cleaned) {
		return invalid(KindInvalidCharacters, MsgInvalidCharacters)
	}

	size, err := strconv.Atoi(cleaned)
	if err != nil {
		// Only digits reach here, so the sole failure is overflow.
		if errors.Is(err, strconv.ErrRange) {
			return invalid(KindAboveMaximum, MsgAboveMaximum)
		}
		return invalid(KindInvalidCharacters, MsgInvalidCharacters)
	}

	return ValidateMemorySize(size)
}

// ValidateMemorySize checks an integer memory size against the rules, in
// order, and reports the first one violated.
func ValidateMemorySize(size int) ValidationResult {
	if size < MinMemorySize {
		return invalid(KindBelowMinimum, MsgBelowMinimum)
	}

	if size > MaxMemorySize {
		return invalid(KindAboveMaximum, MsgAboveMaximum)
	}

	if size%MemoryStep != 0 {
		return invalid(KindNotMultiple, MsgNotMultiple)
	}

	if size&(size-1) != 0 {
		return invalid(KindNotPowerOfTwo, MsgNotPowerOfTwo)
	}

	return ValidationResult{
		Valid: true,
		Value: ptr.To(size),
	}
}

// ValidateMemoryValue checks a memory size that may not be a whole number,
// such as one decoded from JSON. Non-integral values are rejected before the
// integer rules apply.
func ValidateMemoryValue(size float64) ValidationResult {
	if math.IsNaN(size) {
		return invalid(KindNotInteger, MsgNotNumber)
	}

	if math.IsInf(size, 0) || size != math.Trunc(size) {
		return invalid(KindNotInteger, MsgNotInteger)
	}

	if size > MaxMemorySize {
		return invalid(KindAboveMaximum, MsgAboveMaximum)
	}
	if size < MinMemorySize {
		return invalid(KindBelowMinimum, MsgBelowMinimum)
	}

	return ValidateMemorySize(int(size))
}

func stripCommas(s string) string {
	return strings.ReplaceAll(s, ",", "")
}

// isDigits reports whether s is one or more ASCII decimal digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
