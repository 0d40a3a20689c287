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
	"github.com/NVIDIA/server-composer/pkg/header"
)

func TestNewOptions(t *testing.T) {
	o := NewOptions("v1")

	assert.Equal(t, header.KindOptions, o.Kind)
	assert.Equal(t, []string{"X86", "Power", "ARM"}, o.CPUModels)
	assert.Equal(t, MemoryBounds{Min: 2048, Max: 8388608, Step: 1024}, o.Memory)

	want := []ServerModelOption{
		{ID: hardware.ServerModelTower, Label: "Tower Server"},
		{ID: hardware.ServerModelRack, Label: "4U Rack Server"},
		{ID: hardware.ServerModelMainframe, Label: "Mainframe"},
		{ID: hardware.ServerModelHighDensity, Label: "High Density Server"},
	}
	assert.Equal(t, want, o.ServerModels)
}
