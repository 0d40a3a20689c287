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

// ServerModel identifies one of the predefined server models.
type ServerModel string

// ServerModel constants for the supported server models.
const (
	ServerModelTower       ServerModel = "TowerServer"
	ServerModelRack        ServerModel = "RackServer"
	ServerModelMainframe   ServerModel = "Mainframe"
	ServerModelHighDensity ServerModel = "HighDensityServer"
)

var serverModelLabels = map[ServerModel]string{
	ServerModelTower:       "Tower Server",
	ServerModelRack:        "4U Rack Server",
	ServerModelMainframe:   "Mainframe",
	ServerModelHighDensity: "High Density Server",
}

// String returns the identifier of the server model.
func (m ServerModel) String() string {
	return string(m)
}

// Label returns the human-readable name of the server model.
// Unknown models return their identifier.
func (m ServerModel) Label() string {
	if l, ok := serverModelLabels[m]; ok {
		return l
	}
	return string(m)
}

// IsValid returns true if the server model is one of the predefined models.
func (m ServerModel) IsValid() bool {
	_, ok := serverModelLabels[m]
	return ok
}

// AllServerModels returns every predefined server model.
func AllServerModels() []ServerModel {
	return []ServerModel{
		ServerModelTower,
		ServerModelRack,
		ServerModelMainframe,
		ServerModelHighDensity,
	}
}

// Labels maps a list of server models to their display labels, preserving order.
func Labels(models []ServerModel) []string {
	labels := make([]string, 0, len(models))
	for _, m := range models {
		labels = append(labels, m.Label())
	}
	return labels
}
