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

// Package form models the server composer input form without any rendering.
//
// A Form tracks the CPU selection, the free-text memory field with its
// current validation message, and the GPU accelerator toggle. Any edit marks
// the form as changed; Submit produces a hardware configuration and clears
// the flag. Results are only shown while the form is unchanged since the last
// submit, so stale options never sit next to edited inputs.
//
// Usage:
//
//	f := form.New()
//	f.SetCPU(hardware.CPUModelPower)
//	f.SetMemoryText("262144")
//	f.BlurMemory() // text becomes "262,144"
//	cfg := f.Submit()
//	lines, ok := f.Results(recommender.DecideServerModels(cfg).Models)
package form
