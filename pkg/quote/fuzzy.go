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
	"github.com/agnivade/levenshtein"

	"github.com/NVIDIA/quotes-api/pkg/defaults"
)

// Match is the vocabulary entry closest to a user supplied token.
type Match struct {
	Value    string
	Distance int
}

// Resolve returns the candidate with the smallest case-insensitive edit
// distance to token. Candidates are scanned in order; the first one at the
// minimum distance wins and an exact match ends the scan. The result is
// rejected when the distance exceeds defaults.MaxEditDistance.
func Resolve(token string, candidates []string) (Match, bool) {
	needle := Fold(token)

	best := Match{Distance: -1}
	for _, c := range candidates {
		dist := levenshtein.ComputeDistance(needle, Fold(c))
		if best.Distance < 0 || dist < best.Distance {
			best = Match{Value: c, Distance: dist}
		}
		if dist == 0 {
			break
		}
	}

	if best.Distance < 0 || best.Distance > defaults.MaxEditDistance {
		return Match{}, false
	}
	return best, true
}

// resolveField is Resolve plus outcome accounting for the given field name.
func resolveField(field, token string, candidates []string) (Match, bool) {
	m, ok := Resolve(token, candidates)
	switch {
	case !ok:
		fuzzyMatches.WithLabelValues(field, "miss").Inc()
	case m.Distance == 0:
		fuzzyMatches.WithLabelValues(field, "exact").Inc()
	default:
		fuzzyMatches.WithLabelValues(field, "approximate").Inc()
	}
	return m, ok
}
