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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	recommendTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "composer_recommend_total",
			Help: "Total number of server model recommendations by outcome",
		},
		[]string{"outcome"},
	)

	recommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "composer_recommend_duration_seconds",
			Help:    "Duration of server model recommendations in seconds",
			Buckets: []float64{.00001, .0001, .001, .01, .1},
		},
	)
)

const (
	outcomeMatch   = "match"
	outcomeNoMatch = "no_match"
	outcomeError   = "error"
)
