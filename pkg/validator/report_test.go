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
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/server-composer/pkg/header"
)

func TestNewReport(t *testing.T) {
	t.Run("valid input is formatted", func(t *testing.T) {
		r := NewReport("v1", "8388608")
		assert.Equal(t, header.KindValidationResult, r.Kind)
		assert.Equal(t, header.APIVersion, r.APIVersion)
		assert.True(t, r.Result.Valid)
		assert.Equal(t, "8,388,608", r.Formatted)
	})

	t.Run("invalid input keeps message", func(t *testing.T) {
		r := NewReport("v1", "3072")
		assert.False(t, r.Result.Valid)
		assert.Equal(t, KindNotPowerOfTwo, r.Result.Kind)
		assert.Empty(t, r.Formatted)
	})

	t.Run("surrounding whitespace is rejected", func(t *testing.T) {
		for _, input := range []string{" 4096", "4096 ", "4,096\t"} {
			r := NewReport("v1", input)
			assert.Equal(t, input, r.Input)
			assert.False(t, r.Result.Valid, input)
			assert.Equal(t, KindInvalidCharacters, r.Result.Kind, input)
			assert.Equal(t, ParseMemoryInput(input), r.Result, input)
		}
	})

	t.Run("header and result kinds do not collide", func(t *testing.T) {
		data, err := json.Marshal(NewReport("v1", "3000"))
		require.NoError(t, err)

		var m map[string]any
		require.NoError(t, json.Unmarshal(data, &m))
		assert.Equal(t, "ValidationResult", m["kind"])
		result, ok := m["result"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "NotMultiple", result["kind"])
		assert.Equal(t, false, result["isValid"])
	})
}
