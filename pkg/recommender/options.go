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
	"github.com/NVIDIA/server-composer/pkg/header"
	"github.com/NVIDIA/server-composer/pkg/validator"
)

// ServerModelOption describes one server model.
type ServerModelOption struct {
	ID    hardware.ServerModel `json:"id" yaml:"id"`
	Label string               `json:"label" yaml:"label"`
}

// MemoryBounds describes the accepted memory sizes in MB.
type MemoryBounds struct {
	Min  int `json:"min" yaml:"min"`
	Max  int `json:"max" yaml:"max"`
	Step int `json:"step" yaml:"step"`
}

// Options lists everything a client can choose from.
type Options struct {
	header.Header `json:",inline" yaml:",inline"`

	CPUModels    []string            `json:"cpuModels" yaml:"cpuModels"`
	ServerModels []ServerModelOption `json:"serverModels" yaml:"serverModels"`
	Memory       MemoryBounds        `json:"memory" yaml:"memory"`
}

// NewOptions builds the options document.
func NewOptions(version string) *Options {
	models := hardware.AllServerModels()
	o := &Options{
		CPUModels:    hardware.SupportedCPUModelNames(),
		ServerModels: make([]ServerModelOption, 0, len(models)),
		Memory: MemoryBounds{
			Min:  validator.MinMemorySize,
			Max:  validator.MaxMemorySize,
			Step: validator.MemoryStep,
		},
	}
	for _, m := range models {
		o.ServerModels = append(o.ServerModels, ServerModelOption{ID: m, Label: m.Label()})
	}
	o.Init(header.KindOptions, header.APIVersion, version)
	return o
}
