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
)

// NoOptionsMessage is shown in place of a model list when nothing matches.
const NoOptionsMessage = "No Options."

// Recommendation is the document describing the server models eligible for a
// hardware configuration.
type Recommendation struct {
	header.Header `json:",inline" yaml:",inline"`

	// Config is the hardware configuration the decision was made for.
	Config hardware.HardwareConfig `json:"config" yaml:"config"`

	// Matched is false when no server model satisfies the configuration.
	Matched bool `json:"matched" yaml:"matched"`

	// Models are the eligible server model identifiers in rule order.
	Models []hardware.ServerModel `json:"models" yaml:"models"`

	// Labels are the display labels of Models. Nil when Matched is false.
	Labels []string `json:"labels" yaml:"labels"`

	// Display holds the lines to show: Labels, or NoOptionsMessage alone.
	Display []string `json:"display" yaml:"display"`
}

// Lines returns the lines a presentation layer shows for the recommendation:
// the model labels, or NoOptionsMessage when nothing matched.
func (r *Recommendation) Lines() []string {
	if r == nil || !r.Matched {
		return []string{NoOptionsMessage}
	}
	return r.Labels
}
