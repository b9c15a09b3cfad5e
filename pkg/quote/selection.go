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
	"math"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/NVIDIA/quotes-api/pkg/defaults"
)

// Source supplies the randomness used for sampling and shuffling.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	// IntN returns a uniformly random int in [0, n). It panics if n <= 0.
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// DefaultSource draws from the process-wide math/rand/v2 generator and is
// safe for concurrent use.
var DefaultSource Source = globalSource{}

// Shuffle returns a Fisher-Yates shuffled copy of quotes.
func Shuffle(quotes []Quote, src Source) []Quote {
	out := slices.Clone(quotes)
	for i := len(out) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Sample returns k distinct quotes chosen uniformly at random in draw order.
// When k is at least len(quotes) every quote is returned in shuffled order.
func Sample(quotes []Quote, k int, src Source) []Quote {
	n := len(quotes)
	if k <= 0 || n == 0 {
		return []Quote{}
	}
	if k >= n {
		return Shuffle(quotes, src)
	}

	used := make(map[int]struct{}, k)
	out := make([]Quote, 0, k)
	for len(out) < k {
		i := src.IntN(n)
		if _, ok := used[i]; ok {
			continue
		}
		used[i] = struct{}{}
		out = append(out, quotes[i])
	}
	return out
}

// Pick returns one uniformly random quote.
func Pick(quotes []Quote, src Source) (Quote, bool) {
	if len(quotes) == 0 {
		return Quote{}, false
	}
	return quotes[src.IntN(len(quotes))], true
}

// Popular returns up to k quotes with popularity of at least minPopularity,
// most popular first. Equal popularity keeps dataset order.
func Popular(quotes []Quote, minPopularity float64, k int) []Quote {
	out := make([]Quote, 0)
	for _, q := range quotes {
		if q.Popularity >= minPopularity {
			out = append(out, q)
		}
	}
	slices.SortStableFunc(out, func(a, b Quote) int {
		switch {
		case a.Popularity > b.Popularity:
			return -1
		case a.Popularity < b.Popularity:
			return 1
		default:
			return 0
		}
	})
	if k >= 0 && k < len(out) {
		out = out[:k]
	}
	return out
}

// DailyThreshold returns the popularity at the top-decile rank of the
// dataset, or 0 when that rank does not exist.
func DailyThreshold(quotes []Quote) float64 {
	values := make([]float64, len(quotes))
	for i, q := range quotes {
		values[i] = q.Popularity
	}
	slices.SortFunc(values, func(a, b float64) int {
		switch {
		case a > b:
			return -1
		case a < b:
			return 1
		default:
			return 0
		}
	})

	idx := int(math.Floor(float64(len(values)) * defaults.DailyPoolFraction))
	if idx >= len(values) || math.IsNaN(values[idx]) {
		return 0
	}
	return values[idx]
}

// DailyPool returns the quotes eligible for quote of the day, in dataset order.
func DailyPool(quotes []Quote) []Quote {
	threshold := DailyThreshold(quotes)
	pool := make([]Quote, 0)
	for _, q := range quotes {
		if q.Popularity >= threshold {
			pool = append(pool, q)
		}
	}
	return pool
}

// DateKey formats t as the UTC calendar date used to seed the daily pick.
func DateKey(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}

// DailyIndex folds the date key into an index in [0, poolSize).
func DailyIndex(date string, poolSize int) int {
	hash := 0
	for i := 0; i < len(date); i++ {
		hash = (hash*31 + int(date[i])) % poolSize
	}
	return hash
}

// Daily returns the quote of the day for the UTC date of t.
// Every caller gets the same quote for the same day and dataset.
func Daily(quotes []Quote, t time.Time) (Quote, bool) {
	pool := DailyPool(quotes)
	if len(pool) == 0 {
		return Quote{}, false
	}
	return pool[DailyIndex(DateKey(t), len(pool))], true
}
