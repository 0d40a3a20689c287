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

import "fmt"

// HardwareConfig is the desired machine a user describes.
// It is a value type; callers build a fresh one for every decision.
type HardwareConfig struct {
	// CPU is the CPU family.
	CPU CPUModel `json:"cpu" yaml:"cpu"`

	// MemorySize is the memory size in megabytes. Must not be negative.
	MemorySize int `json:"memorySize" yaml:"memorySize"`

	// GPUAccelerator requests a GPU accelerator card.
	GPUAccelerator bool `json:"gpuAccelerator" yaml:"gpuAccelerator"`
}

// NewHardwareConfig returns the configuration a blank form submits:
// X86 CPU, no memory and no GPU accelerator.
func NewHardwareConfig() HardwareConfig {
	return HardwareConfig{
		CPU:            DefaultCPUModel,
		MemorySize:     0,
		GPUAccelerator: false,
	}
}

// String returns a human-readable representation of the configuration.
func (c HardwareConfig) String() string {
	return fmt.Sprintf("hardware(cpu=%s, memory=%dMB, gpu=%t)", c.CPU, c.MemorySize, c.GPUAccelerator)
}
