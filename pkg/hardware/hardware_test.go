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
	"errors"
	"strings"
	"testing"

	apperrors "github.com/NVIDIA/server-composer/pkg/errors"
)

func TestParseCPUModel(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    CPUModel
		wantErr bool
	}{
		{"empty", "", CPUModelX86, false},
		{"whitespace", "  ", CPUModelX86, false},
		{"x86", "X86", CPUModelX86, false},
		{"x86 lowercase", "x86", CPUModelX86, false},
		{"power", "Power", CPUModelPower, false},
		{"power uppercase", "POWER", CPUModelPower, false},
		{"arm", "ARM", CPUModelARM, false},
		{"arm padded", " arm ", CPUModelARM, false},
		{"invalid", "sparc", CPUModelX86, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCPUModel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseCPUModel() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ParseCPUModel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseCPUModelSuggestion(t *testing.T) {
	_, err := ParseCPUModel("powr")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), `did you mean "Power"`) {
		t.Errorf("expected suggestion in %q", err.Error())
	}

	_, err = ParseCPUModel("sparc")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if strings.Contains(err.Error(), "did you mean") {
		t.Errorf("unexpected suggestion in %q", err.Error())
	}

	var se *apperrors.StructuredError
	if !errors.As(err, &se) {
		t.Fatalf("expected StructuredError, got %T", err)
	}
	if se.Code != apperrors.ErrCodeInvalidRequest {
		t.Errorf("expected code %s, got %s", apperrors.ErrCodeInvalidRequest, se.Code)
	}
}

func TestCPUModelIsValid(t *testing.T) {
	for _, m := range SupportedCPUModels() {
		if !m.IsValid() {
			t.Errorf("expected %s to be valid", m)
		}
	}
	if CPUModel("x86").IsValid() {
		t.Error("expected non-canonical spelling to be invalid")
	}
}

func TestServerModelLabels(t *testing.T) {
	tests := []struct {
		model ServerModel
		label string
	}{
		{ServerModelTower, "Tower Server"},
		{ServerModelRack, "4U Rack Server"},
		{ServerModelMainframe, "Mainframe"},
		{ServerModelHighDensity, "High Density Server"},
		{ServerModel("Blade"), "Blade"},
	}

	for _, tt := range tests {
		t.Run(tt.model.String(), func(t *testing.T) {
			if got := tt.model.Label(); got != tt.label {
				t.Errorf("Label() = %q, want %q", got, tt.label)
			}
		})
	}
}

func TestLabelsPreservesOrder(t *testing.T) {
	got := Labels([]ServerModel{ServerModelMainframe, ServerModelTower, ServerModelRack})
	want := []string{"Mainframe", "Tower Server", "4U Rack Server"}
	if len(got) != len(want) {
		t.Fatalf("expected %d labels, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("label[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNewHardwareConfig(t *testing.T) {
	cfg := NewHardwareConfig()
	if cfg.CPU != CPUModelX86 || cfg.MemorySize != 0 || cfg.GPUAccelerator {
		t.Errorf("unexpected defaults: %s", cfg)
	}
}
