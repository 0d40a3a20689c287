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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NVIDIA/server-composer/pkg/hardware"
)

func cfg(cpu hardware.CPUModel, memory int, gpu bool) hardware.HardwareConfig {
	return hardware.HardwareConfig{CPU: cpu, MemorySize: memory, GPUAccelerator: gpu}
}

func TestDecideServerModels(t *testing.T) {
	tests := []struct {
		name   string
		config hardware.HardwareConfig
		want   []hardware.ServerModel
	}{
		{
			name:   "memory below floor",
			config: cfg(hardware.CPUModelX86, 1024, false),
			want:   nil,
		},
		{
			name:   "gpu with arm and enough memory",
			config: cfg(hardware.CPUModelARM, 524288, true),
			want:   []hardware.ServerModel{hardware.ServerModelHighDensity},
		},
		{
			name:   "gpu with arm and more memory",
			config: cfg(hardware.CPUModelARM, 8388608, true),
			want:   []hardware.ServerModel{hardware.ServerModelHighDensity},
		},
		{
			name:   "gpu with x86",
			config: cfg(hardware.CPUModelX86, 524288, true),
			want:   nil,
		},
		{
			name:   "gpu with power",
			config: cfg(hardware.CPUModelPower, 524288, true),
			want:   nil,
		},
		{
			name:   "gpu with arm and insufficient memory",
			config: cfg(hardware.CPUModelARM, 262144, true),
			want:   nil,
		},
		{
			name:   "power includes mainframe",
			config: cfg(hardware.CPUModelPower, 131072, false),
			want: []hardware.ServerModel{
				hardware.ServerModelMainframe,
				hardware.ServerModelTower,
				hardware.ServerModelRack,
			},
		},
		{
			name:   "power with small memory",
			config: cfg(hardware.CPUModelPower, 2048, false),
			want:   []hardware.ServerModel{hardware.ServerModelMainframe, hardware.ServerModelTower},
		},
		{
			name:   "tower only below rack tier",
			config: cfg(hardware.CPUModelX86, 65536, false),
			want:   []hardware.ServerModel{hardware.ServerModelTower},
		},
		{
			name:   "tower and rack at rack tier",
			config: cfg(hardware.CPUModelX86, 131072, false),
			want:   []hardware.ServerModel{hardware.ServerModelTower, hardware.ServerModelRack},
		},
		{
			name:   "arm without gpu",
			config: cfg(hardware.CPUModelARM, 524288, false),
			want:   []hardware.ServerModel{hardware.ServerModelTower, hardware.ServerModelRack},
		},
		{
			name:   "memory exactly at floor",
			config: cfg(hardware.CPUModelX86, 2048, false),
			want:   []hardware.ServerModel{hardware.ServerModelTower},
		},
		// Scenarios from the product requirements.
		{
			name:   "scenario A power 1024 no gpu",
			config: cfg(hardware.CPUModelPower, 1024, false),
			want:   nil,
		},
		{
			name:   "scenario B power 262144 no gpu",
			config: cfg(hardware.CPUModelPower, 262144, false),
			want: []hardware.ServerModel{
				hardware.ServerModelMainframe,
				hardware.ServerModelTower,
				hardware.ServerModelRack,
			},
		},
		{
			name:   "scenario C x86 524288 no gpu",
			config: cfg(hardware.CPUModelX86, 524288, false),
			want:   []hardware.ServerModel{hardware.ServerModelTower, hardware.ServerModelRack},
		},
		{
			name:   "scenario D arm 524288 gpu",
			config: cfg(hardware.CPUModelARM, 524288, true),
			want:   []hardware.ServerModel{hardware.ServerModelHighDensity},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecideServerModels(tt.config)
			if tt.want == nil {
				assert.False(t, got.Matched)
				assert.Nil(t, got.Models)
				assert.Equal(t, NoMatch, got)
				return
			}
			assert.True(t, got.Matched)
			assert.Equal(t, tt.want, got.Models)
		})
	}
}

func TestDecideServerModelsMemoryFloor(t *testing.T) {
	for _, cpu := range hardware.SupportedCPUModels() {
		for _, gpu := range []bool{false, true} {
			for _, memory := range []int{-1, 0, 1, 1024, 2047} {
				got := DecideServerModels(cfg(cpu, memory, gpu))
				assert.False(t, got.Matched, "cpu=%s memory=%d gpu=%t", cpu, memory, gpu)
			}
		}
	}
}

func TestDecideServerModelsGPUExclusivity(t *testing.T) {
	for _, cpu := range hardware.SupportedCPUModels() {
		for memory := 1024; memory <= 8388608; memory *= 2 {
			got := DecideServerModels(cfg(cpu, memory, true))
			if !got.Matched {
				continue
			}
			assert.Equal(t, []hardware.ServerModel{hardware.ServerModelHighDensity}, got.Models,
				"cpu=%s memory=%d", cpu, memory)
		}
	}
}

func TestDecideServerModelsNeverEmptyWhenMatched(t *testing.T) {
	for _, cpu := range hardware.SupportedCPUModels() {
		for _, gpu := range []bool{false, true} {
			for memory := 1024; memory <= 8388608; memory *= 2 {
				got := DecideServerModels(cfg(cpu, memory, gpu))
				if got.Matched {
					assert.NotEmpty(t, got.Models)
				}
			}
		}
	}
}

func TestDecideServerModelsMainframeFirst(t *testing.T) {
	for memory := 2048; memory <= 8388608; memory *= 2 {
		got := DecideServerModels(cfg(hardware.CPUModelPower, memory, false))
		assert.True(t, got.Matched)
		assert.Equal(t, hardware.ServerModelMainframe, got.Models[0])
	}
}

func TestResultLabels(t *testing.T) {
	got := DecideServerModels(cfg(hardware.CPUModelPower, 262144, false))
	assert.Equal(t, []string{"Mainframe", "Tower Server", "4U Rack Server"}, got.Labels())
	assert.Nil(t, NoMatch.Labels())
}
