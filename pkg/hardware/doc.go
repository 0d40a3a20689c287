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

// Package hardware defines the hardware configuration vocabulary shared by the
// memory validator, the server model recommender and the presentation layers.
//
// A HardwareConfig describes a desired machine: the CPU family, the memory
// size in megabytes and whether a GPU accelerator card is required.
//
//	cfg := hardware.HardwareConfig{
//	    CPU:            hardware.CPUModelPower,
//	    MemorySize:     262144,
//	    GPUAccelerator: false,
//	}
//
// CPU models parse case-insensitively; unknown values produce an error that
// suggests the closest supported model when one is near:
//
//	cpu, err := hardware.ParseCPUModel("powr") // error: did you mean "Power"?
//
// Server models carry a fixed display label:
//
//	hardware.ServerModelRack.Label() // "4U Rack Server"
package hardware
