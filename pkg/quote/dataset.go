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
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/goccy/go-json"

	"github.com/NVIDIA/quotes-api/pkg/defaults"
	qerrors "github.com/NVIDIA/quotes-api/pkg/errors"
	"github.com/NVIDIA/quotes-api/pkg/serializer"
)

// Dataset is the read-only quote collection shared by every request.
// It is never modified after construction and is safe for concurrent use.
type Dataset struct {
	quotes     []Quote
	categories []string
	authors    []string
}

// NewDataset creates a Dataset over a copy of quotes.
func NewDataset(quotes []Quote) *Dataset {
	d := &Dataset{quotes: slices.Clone(quotes)}
	d.categories = distinct(d.quotes, func(q *Quote) string { return q.Category })
	d.authors = distinct(d.quotes, func(q *Quote) string { return q.Author })
	return d
}

// Parse decodes a JSON array of quote records.
// Elements that are not JSON objects are skipped.
func Parse(data []byte) (*Dataset, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, qerrors.Wrap(qerrors.ErrCodeDataUnavailable, "quotes data must be a JSON array", err)
	}

	quotes := make([]Quote, 0, len(items))
	skipped := 0
	for _, item := range items {
		var q Quote
		if err := q.UnmarshalJSON(item); err != nil {
			skipped++
			continue
		}
		quotes = append(quotes, q)
	}
	if skipped > 0 {
		slog.Warn("skipped malformed quote records", "skipped", skipped, "loaded", len(quotes))
	}

	return NewDataset(quotes), nil
}

// Load reads and parses the dataset from a local path or http(s) URL.
// Without a caller deadline the load is bounded by defaults.DatasetLoadTimeout.
func Load(ctx context.Context, source string) (*Dataset, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaults.DatasetLoadTimeout)
		defer cancel()
	}

	start := time.Now()
	data, err := serializer.ReadSource(ctx, source)
	if err != nil {
		return nil, qerrors.WrapWithContext(qerrors.ErrCodeDataUnavailable,
			"failed to read quotes data", err, map[string]any{"source": source})
	}

	d, err := Parse(data)
	if err != nil {
		return nil, err
	}

	datasetLoadDuration.Observe(time.Since(start).Seconds())
	datasetRecords.Set(float64(d.Len()))
	slog.Info("quotes dataset loaded", "source", source, "quotes", d.Len(),
		"categories", len(d.categories), "authors", len(d.authors))
	return d, nil
}

// LoadOrEmpty loads the dataset and falls back to an empty one on failure,
// so the service keeps running and reports data as unavailable.
func LoadOrEmpty(ctx context.Context, source string) *Dataset {
	d, err := Load(ctx, source)
	if err != nil {
		slog.Error("failed to load quotes dataset", "source", source, "error", err)
		datasetRecords.Set(0)
		return NewDataset(nil)
	}
	return d
}

// Len returns the number of quotes. A nil Dataset is empty.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.quotes)
}

// Quotes returns the records in dataset order. Callers must not modify the result.
func (d *Dataset) Quotes() []Quote {
	if d == nil {
		return nil
	}
	return d.quotes
}

// Categories returns the distinct non-empty categories in first-seen order.
func (d *Dataset) Categories() []string {
	if d == nil {
		return nil
	}
	return d.categories
}

// Authors returns the distinct non-empty authors in first-seen order.
func (d *Dataset) Authors() []string {
	if d == nil {
		return nil
	}
	return d.authors
}

func distinct(quotes []Quote, field func(*Quote) string) []string {
	seen := make(map[string]struct{})
	var out []string
	for i := range quotes {
		v := field(&quotes[i])
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func (d *Dataset) String() string {
	return fmt.Sprintf("Dataset(%d quotes)", d.Len())
}
