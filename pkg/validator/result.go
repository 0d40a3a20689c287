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
	apperrors "github.com/NVIDIA/server-composer/pkg/errors"
)

// ErrorKind classifies why a memory size was rejected.
type ErrorKind string

const (
	// KindNone is reported for valid memory sizes.
	KindNone ErrorKind = ""

	// KindInvalidCharacters indicates text input with characters other than digits and commas.
	KindInvalidCharacters ErrorKind = "InvalidCharacters"

	// KindNotInteger indicates a value that is not a whole number.
	KindNotInteger ErrorKind = "NotInteger"

	// KindBelowMinimum indicates a value under MinMemorySize.
	KindBelowMinimum ErrorKind = "BelowMinimum"

	// KindAboveMaximum indicates a value over MaxMemorySize.
	KindAboveMaximum ErrorKind = "AboveMaximum"

	// KindNotMultiple indicates a value that is not a multiple of MemoryStep.
	KindNotMultiple ErrorKind = "NotMultiple"

	// KindNotPowerOfTwo indicates a value that is not a power of 2.
	KindNotPowerOfTwo ErrorKind = "NotPowerOfTwo"
)

// String returns the string representation of the ErrorKind.
func (k ErrorKind) String() string {
	return string(k)
}

// ValidationResult is the outcome of validating a memory size.
// Value is set if and only if Valid is true, and ErrorMessage is empty if and
// only if Valid is true.
type ValidationResult struct {
	// Valid is true when the memory size satisfies every rule.
	Valid bool `json:"isValid" yaml:"isValid"`

	// ErrorMessage describes the first violated rule.
	ErrorMessage string `json:"errorMessage" yaml:"errorMessage"`

	// Kind classifies the first violated rule.
	Kind ErrorKind `json:"kind,omitempty" yaml:"kind,omitempty"`

	// Value is the accepted memory size in megabytes.
	Value *int `json:"value,omitempty" yaml:"value,omitempty"`
}

// Err converts an invalid result into a structured error.
// It returns nil for valid results.
func (r ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest, r.ErrorMessage,
		map[string]any{"kind": r.Kind.String()})
}

func invalid(kind ErrorKind, message string) ValidationResult {
	return ValidationResult{
		Valid:        false,
		ErrorMessage: message,
		Kind:         kind,
	}
}
