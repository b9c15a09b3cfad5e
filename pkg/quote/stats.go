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

// Leader is the most frequent value of a field.
type Leader struct {
	Value string
	Count int
}

// Stats summarizes the dataset.
type Stats struct {
	TotalQuotes         int
	MostPopularCategory *Leader
	MostProlificAuthor  *Leader
	AveragePopularity   float64
}

// ComputeStats summarizes quotes. Leaders are the first value to reach the
// highest count in dataset order; they are nil when no quote has the field.
func ComputeStats(quotes []Quote) Stats {
	s := Stats{TotalQuotes: len(quotes)}

	categories := newCounter()
	authors := newCounter()
	total := 0.0
	for _, q := range quotes {
		if q.Category != "" {
			categories.add(q.Category)
		}
		if q.Author != "" {
			authors.add(q.Author)
		}
		total += q.Popularity
	}

	s.MostPopularCategory = leader(categories.result(nil))
	s.MostProlificAuthor = leader(authors.result(nil))
	if len(quotes) > 0 {
		s.AveragePopularity = total / float64(len(quotes))
	}
	return s
}

func leader(counts []Count) *Leader {
	var best *Leader
	for _, c := range counts {
		if best == nil || c.Count > best.Count {
			best = &Leader{Value: c.Value, Count: c.Count}
		}
	}
	return best
}
