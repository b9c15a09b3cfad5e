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

package quote

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Dataset metrics
	datasetRecords = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "quotes_dataset_records",
			Help: "Number of quote records currently loaded",
		},
	)
	datasetLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "quotes_dataset_load_duration_seconds",
			Help:    "Duration of dataset load and parse in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 30},
		},
	)

	// Query metrics
	fuzzyMatches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quotes_fuzzy_match_total",
			Help: "Fuzzy vocabulary lookups by field and outcome (exact, approximate, miss)",
		},
		[]string{"field", "outcome"},
	)
	searchResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "quotes_search_matches",
			Help:    "Number of quotes with a non-zero relevance score per search",
			Buckets: []float64{0, 1, 5, 10, 50, 100, 500, 1000},
		},
	)
)
