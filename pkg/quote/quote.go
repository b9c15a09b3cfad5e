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
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Record keys used by the quotes dataset.
const (
	keyText       = "Quote"
	keyAuthor     = "Author"
	keyCategory   = "Category"
	keyTags       = "Tags"
	keyPopularity = "Popularity"
)

// Quote is a single immutable dataset record.
//
// A Quote decoded from JSON remembers its source document and marshals back
// to it byte for byte, so fields the service does not interpret are kept.
type Quote struct {
	Text       string
	Author     string
	Category   string
	Tags       []string
	Popularity float64

	raw json.RawMessage

	// case-folded copies used by matching and scoring
	foldText     string
	foldAuthor   string
	foldCategory string
	foldTags     []string
}

// New creates a Quote from its fields.
func New(text, author, category string, tags []string, popularity float64) Quote {
	q := Quote{
		Text:       text,
		Author:     author,
		Category:   category,
		Tags:       tags,
		Popularity: popularity,
	}
	q.fold()
	return q
}

func (q *Quote) fold() {
	q.foldText = Fold(q.Text)
	q.foldAuthor = Fold(q.Author)
	q.foldCategory = Fold(q.Category)
	q.foldTags = make([]string, len(q.Tags))
	for i, tag := range q.Tags {
		q.foldTags[i] = Fold(tag)
	}
}

// Fold lower-cases s using Unicode case mapping rules.
// A new Caser is created per call since Casers are not safe for concurrent use.
func Fold(s string) string {
	if s == "" {
		return s
	}
	return cases.Lower(language.Und).String(s)
}

// UnmarshalJSON decodes a dataset record. Missing or mistyped fields decode
// to their zero value; non-string tags are ignored.
func (q *Quote) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("quote record is not an object: %w", err)
	}
	if fields == nil {
		return fmt.Errorf("quote record is null")
	}

	*q = Quote{
		Text:       stringField(fields[keyText]),
		Author:     stringField(fields[keyAuthor]),
		Category:   stringField(fields[keyCategory]),
		Tags:       tagsField(fields[keyTags]),
		Popularity: numberField(fields[keyPopularity]),
		raw:        bytes.Clone(data),
	}
	q.fold()
	return nil
}

// MarshalJSON emits the original record when the Quote was decoded from JSON.
func (q Quote) MarshalJSON() ([]byte, error) {
	if len(q.raw) > 0 {
		return q.raw, nil
	}
	tags := q.Tags
	if tags == nil {
		tags = []string{}
	}
	return json.Marshal(map[string]any{
		keyText:       q.Text,
		keyAuthor:     q.Author,
		keyCategory:   q.Category,
		keyTags:       tags,
		keyPopularity: q.Popularity,
	})
}

func stringField(raw json.RawMessage) string {
	var s string
	if len(raw) == 0 || json.Unmarshal(raw, &s) != nil {
		return ""
	}
	return s
}

func numberField(raw json.RawMessage) float64 {
	var f float64
	if len(raw) == 0 || json.Unmarshal(raw, &f) != nil {
		return 0
	}
	return f
}

func tagsField(raw json.RawMessage) []string {
	var items []json.RawMessage
	if len(raw) == 0 || json.Unmarshal(raw, &items) != nil {
		return nil
	}
	tags := make([]string, 0, len(items))
	for _, item := range items {
		var v any
		if json.Unmarshal(item, &v) != nil {
			continue
		}
		if s, ok := v.(string); ok {
			tags = append(tags, s)
		}
	}
	return tags
}
