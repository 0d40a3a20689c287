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

package recommender

import (
	"github.com/NVIDIA/server-composer/pkg/hardware"
)

const (
	// MinMemorySize is the memory floor below which no server model is eligible.
	MinMemorySize = 2048

	// HighDensityMinMemorySize is the memory the High Density Server requires.
	HighDensityMinMemorySize = 524288

	// RackMinMemorySize is the memory from which the 4U Rack Server is eligible.
	RackMinMemorySize = 131072
)

// Result is the outcome of a server model decision.
type Result struct {
	// Models are the eligible server models in rule order. Nil when Matched is false.
	Models []hardware.ServerModel

	// Matched is false when no server model satisfies the configuration.
	Matched bool
}

// NoMatch is the Result for configurations no server model satisfies.
var NoMatch = Result{}

// Labels returns the display labels of the eligible models.
// Labels is nil when nothing matched, like Models.
func (r Result) Labels() []string {
	if !r.Matched {
		return nil
	}
	return hardware.Labels(r.Models)
}

// DecideServerModels returns the server models that satisfy cfg.
func DecideServerModels(cfg hardware.HardwareConfig) Result {
	if cfg.MemorySize < MinMemorySize {
		return NoMatch
	}

	if cfg.GPUAccelerator {
		if cfg.CPU == hardware.CPUModelARM && cfg.MemorySize >= HighDensityMinMemorySize {
			return matched(hardware.ServerModelHighDensity)
		}
		return NoMatch
	}

	eligible := make([]hardware.ServerModel, 0, 3)

	if cfg.CPU == hardware.CPUModelPower {
		eligible = append(eligible, hardware.ServerModelMainframe)
	}

	if cfg.MemorySize >= RackMinMemorySize {
		eligible = append(eligible, hardware.ServerModelTower, hardware.ServerModelRack)
	} else {
		eligible = append(eligible, hardware.ServerModelTower)
	}

	// Unreachable while the tower tier is unconditional.
	if len(eligible) == 0 {
		return NoMatch
	}

	return matched(eligible...)
}

func matched(models ...hardware.ServerModel) Result {
	return Result{
		Models:  models,
		Matched: true,
	}
}
