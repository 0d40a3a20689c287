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

package form

import (
	"strings"
	"sync"

	"github.com/NVIDIA/server-composer/pkg/hardware"
	"github.com/NVIDIA/server-composer/pkg/recommender"
	"github.com/NVIDIA/server-composer/pkg/validator"
)

// Form is the state of the composer input form. It is safe for concurrent use.
type Form struct {
	mu sync.RWMutex

	cpu         hardware.CPUModel
	memoryText  string
	memory      *int
	memoryError string
	gpu         bool
	changed     bool
}

// New returns a form with the default selections: X86, no memory, no GPU.
// A new form counts as changed until its first submit.
func New() *Form {
	return &Form{
		cpu:     hardware.DefaultCPUModel,
		changed: true,
	}
}

// CPU returns the selected CPU model.
func (f *Form) CPU() hardware.CPUModel {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.cpu
}

// SetCPU selects a CPU model.
func (f *Form) SetCPU(cpu hardware.CPUModel) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cpu = cpu
	f.changed = true
}

// GPU reports whether the GPU accelerator is selected.
func (f *Form) GPU() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.gpu
}

// SetGPU toggles the GPU accelerator.
func (f *Form) SetGPU(gpu bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gpu = gpu
	f.changed = true
}

// MemoryText returns the memory field as displayed.
func (f *Form) MemoryText() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.memoryText
}

// MemoryError returns the validation message for the memory field, empty
// when the text is valid or blank.
func (f *Form) MemoryError() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.memoryError
}

// Memory returns the accepted memory size and whether one is set.
func (f *Form) Memory() (int, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.memory == nil {
		return 0, false
	}
	return *f.memory, true
}

// SetMemoryText records raw input in the memory field and validates it.
// Blank input is silently unset: no value and no message.
func (f *Form) SetMemoryText(raw string) validator.ValidationResult {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.memoryText = raw
	f.changed = true

	if strings.TrimSpace(raw) == "" {
		f.memory = nil
		f.memoryError = ""
		return validator.ValidationResult{}
	}

	res := validator.ParseMemoryInput(raw)
	f.memory = res.Value
	f.memoryError = res.ErrorMessage
	return res
}

// BlurMemory reformats a valid memory field with thousands separators.
// Blur is not an edit and leaves the changed flag alone.
func (f *Form) BlurMemory() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.memory == nil || f.memoryError != "" {
		return
	}
	f.memoryText = validator.FormatWithCommas(*f.memory)
}

// Changed reports whether the form was edited since the last submit.
func (f *Form) Changed() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.changed
}

// Submit returns the configuration entered so far and clears the changed
// flag. An unset or invalid memory field submits as 0.
func (f *Form) Submit() hardware.HardwareConfig {
	f.mu.Lock()
	defer f.mu.Unlock()

	cfg := hardware.HardwareConfig{
		CPU:            f.cpu,
		GPUAccelerator: f.gpu,
	}
	if f.memory != nil {
		cfg.MemorySize = *f.memory
	}

	f.changed = false
	return cfg
}

// Results returns the lines to display for the models decided at the last
// submit, and false when the form changed since then and nothing should be
// shown. An empty model list displays recommender.NoOptionsMessage.
func (f *Form) Results(models []hardware.ServerModel) ([]string, bool) {
	if f.Changed() {
		return nil, false
	}
	if len(models) == 0 {
		return []string{recommender.NoOptionsMessage}, true
	}
	return hardware.Labels(models), true
}
