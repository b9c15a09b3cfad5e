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
	"strings"

	"github.com/NVIDIA/quotes-api/pkg/defaults"
)

// Count is one grouped value and the number of times it occurs.
type Count struct {
	Value string
	Count int
}

type counter struct {
	order  []string
	counts map[string]int
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(v string) {
	if _, ok := c.counts[v]; !ok {
		c.order = append(c.order, v)
	}
	c.counts[v]++
}

func (c *counter) result(keep func(value string, count int) bool) []Count {
	out := make([]Count, 0, len(c.order))
	for _, v := range c.order {
		n := c.counts[v]
		if keep == nil || keep(v, n) {
			out = append(out, Count{Value: v, Count: n})
		}
	}
	return out
}

// CategoryCounts groups quotes by exact category in first-seen order.
// Quotes without a category are not counted.
func CategoryCounts(quotes []Quote) []Count {
	c := newCounter()
	for _, q := range quotes {
		if q.Category != "" {
			c.add(q.Category)
		}
	}
	return c.result(nil)
}

// TagCounts counts trimmed tag occurrences, dropping numeric tags, tags
// shorter than defaults.MinTagLength and tags seen fewer than
// defaults.MinListedCount times.
func TagCounts(quotes []Quote) []Count {
	c := newCounter()
	for _, q := range quotes {
		for _, tag := range q.Tags {
			if t := strings.TrimSpace(tag); t != "" {
				c.add(t)
			}
		}
	}
	return c.result(func(tag string, n int) bool {
		return !isNumeric(tag) && len([]rune(tag)) >= defaults.MinTagLength && n >= defaults.MinListedCount
	})
}

// AuthorCounts counts trimmed authors, dropping blank, "unknown" and "n/a"
// authors and those with fewer than defaults.MinListedCount quotes.
func AuthorCounts(quotes []Quote) []Count {
	c := newCounter()
	for _, q := range quotes {
		a := strings.TrimSpace(q.Author)
		if a == "" {
			continue
		}
		switch Fold(a) {
		case "unknown", "n/a":
			continue
		}
		c.add(a)
	}
	return c.result(func(_ string, n int) bool {
		return n >= defaults.MinListedCount
	})
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Page is one fixed-size window over a listing.
type Page[T any] struct {
	Items      []T
	Page       int
	PageSize   int
	Total      int
	TotalPages int
}

// Paginate returns the 1-based page of items using defaults.PageSize.
// Pages below 1 are treated as 1; pages past the end are empty.
func Paginate[T any](items []T, page int) Page[T] {
	if page < 1 {
		page = 1
	}
	size := defaults.PageSize
	total := len(items)

	p := Page[T]{
		Items:      []T{},
		Page:       page,
		PageSize:   size,
		Total:      total,
		TotalPages: (total + size - 1) / size,
	}

	// checked before multiplying so huge pages cannot overflow
	if page > p.TotalPages {
		return p
	}
	start := (page - 1) * size
	end := min(start+size, total)
	p.Items = items[start:end]
	return p
}

// ByCategory returns the quotes whose category equals category, ignoring case.
func ByCategory(quotes []Quote, category string) []Quote {
	want := Fold(category)
	out := make([]Quote, 0)
	for _, q := range quotes {
		if q.Category != "" && q.foldCategory == want {
			out = append(out, q)
		}
	}
	return out
}

// ByAuthor returns the quotes whose author equals author, ignoring case.
func ByAuthor(quotes []Quote, author string) []Quote {
	want := Fold(author)
	out := make([]Quote, 0)
	for _, q := range quotes {
		if q.Author != "" && q.foldAuthor == want {
			out = append(out, q)
		}
	}
	return out
}

// Facets returns the distinct non-empty categories, authors and tags of
// quotes in first-seen order.
func Facets(quotes []Quote) (categories, authors, tags []string) {
	categories = distinct(quotes, func(q *Quote) string { return q.Category })
	authors = distinct(quotes, func(q *Quote) string { return q.Author })

	seen := make(map[string]struct{})
	tags = []string{}
	for _, q := range quotes {
		for _, t := range q.Tags {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			tags = append(tags, t)
		}
	}
	if categories == nil {
		categories = []string{}
	}
	if authors == nil {
		authors = []string{}
	}
	return categories, authors, tags
}
