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

// Package recommender decides which predefined server models satisfy a
// hardware configuration.
//
// # Rules
//
// DecideServerModels evaluates an ordered cascade of guards; a configuration
// rejected by an earlier rule is never reconsidered by a later one:
//
//  1. Memory below 2,048MB matches nothing, whatever the CPU or GPU.
//  2. A GPU accelerator is only available on the High Density Server, which
//     requires an ARM CPU and at least 524,288MB. With a GPU requested the
//     result is that single model or no match.
//  3. A Power CPU makes the Mainframe eligible.
//  4. Memory of at least 131,072MB makes the Tower Server and the 4U Rack
//     Server eligible; below that only the Tower Server is.
//
// Eligible models are returned in the order they were added, so the Mainframe
// always precedes the Tower and Rack servers.
//
// # No match
//
// A configuration with no eligible model yields a Result whose Matched field is
// false and whose Models slice is nil. A matched Result is never empty.
//
// # Usage
//
//	res := recommender.DecideServerModels(hardware.HardwareConfig{
//	    CPU:        hardware.CPUModelPower,
//	    MemorySize: 262144,
//	})
//	// res.Models: [Mainframe TowerServer RackServer]
//
// Adapters that need a serializable document with metrics use Recommender:
//
//	r := recommender.New(recommender.WithVersion(version))
//	rec, err := r.Recommend(ctx, cfg)
package recommender
