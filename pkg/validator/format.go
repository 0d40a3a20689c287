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
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	apperrors "github.com/NVIDIA/server-composer/pkg/errors"
)

// printer groups digits the way memory sizes are displayed ("8,388,608").
var printer = message.NewPrinter(language.English)

// FormatWithCommas renders value with a comma every three digits from the
// right. Values under 1000 are returned unchanged.
func FormatWithCommas(value int) string {
	return printer.Sprintf("%d", value)
}

// FormatRemoveCommas strips commas from text and parses its leading integer
// portion, truncating any fractional part ("100.6" becomes 100).
func FormatRemoveCommas(text string) (int, error) {
	s := strings.TrimSpace(stripCommas(text))

	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}

	if end == digitsStart {
		return 0, apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			"no integer found in memory text", map[string]any{"input": text})
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, apperrors.WrapWithContext(apperrors.ErrCodeInvalidRequest,
			"memory text out of range", err, map[string]any{"input": text})
	}
	return n, nil
}
