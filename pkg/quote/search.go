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
	"slices"
	"strings"
	"unicode"
)

// Tokenize splits raw keyword input on runs of commas and whitespace and
// returns the lower-cased, non-empty tokens.
func Tokenize(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if t := Fold(strings.TrimSpace(f)); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// Score counts, for every keyword, a hit in the text, the author, the
// category and any one tag. Keywords must already be lower-cased.
func Score(q Quote, keywords []string) int {
	score := 0
	for _, kw := range keywords {
		if strings.Contains(q.foldText, kw) {
			score++
		}
		if strings.Contains(q.foldAuthor, kw) {
			score++
		}
		if strings.Contains(q.foldCategory, kw) {
			score++
		}
		if slices.ContainsFunc(q.foldTags, func(tag string) bool {
			return strings.Contains(tag, kw)
		}) {
			score++
		}
	}
	return score
}

// Search returns the quotes with a non-zero score, highest score first.
// Quotes with equal scores are shuffled with src.
func Search(quotes []Quote, keywords []string, src Source) []Quote {
	buckets := make(map[int][]Quote)
	matched := 0
	for _, q := range quotes {
		s := Score(q, keywords)
		if s == 0 {
			continue
		}
		buckets[s] = append(buckets[s], q)
		matched++
	}
	searchResults.Observe(float64(matched))

	scores := make([]int, 0, len(buckets))
	for s := range buckets {
		scores = append(scores, s)
	}
	slices.Sort(scores)
	slices.Reverse(scores)

	out := make([]Quote, 0, matched)
	for _, s := range scores {
		out = append(out, Shuffle(buckets[s], src)...)
	}
	return out
}
