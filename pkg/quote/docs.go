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
	_ "embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/NVIDIA/quotes-api/pkg/defaults"
)

//go:embed docs.html.tmpl
var docsTemplateText string

var docsTemplate = template.Must(template.New("docs").Parse(docsTemplateText))

// Endpoint documents one public route.
type Endpoint struct {
	ID      string
	Path    string
	Summary string
	Params  []string
	Example string
	Errors  []string
}

// Endpoints lists the public API in documentation order.
func Endpoints() []Endpoint {
	return []Endpoint{
		{ID: "getQuotes", Path: "/v1/getQuotes/quantity={quantity}",
			Summary: "Random, distinct quotes with the categories, authors and tags they cover.",
			Params:  []string{"quantity: positive integer"},
			Example: "/v1/getQuotes/quantity=3",
			Errors:  []string{"400 invalid quantity", "500 quotes data not available"}},
		{ID: "getQuotesCategory", Path: "/v1/getQuotes/category={category}/quantity={quantity}",
			Summary: "Random quotes from the category closest to the one given (case-insensitive, tolerates typos).",
			Params:  []string{"category: category name", "quantity: positive integer"},
			Example: "/v1/getQuotes/category=loVe/quantity=2",
			Errors:  []string{"400 invalid quantity", "404 no matching category"}},
		{ID: "getQuotesAuthor", Path: "/v1/getQuotes/author={author}/quantity={quantity}",
			Summary: "Random quotes by the author closest to the one given.",
			Params:  []string{"author: author name", "quantity: positive integer"},
			Example: "/v1/getQuotes/author=albeRt/quantity=2",
			Errors:  []string{"400 invalid quantity", "404 no matching author"}},
		{ID: "searchQuotes", Path: "/v1/searchQuotes/{keywords}/maxQuantity={quantity}",
			Summary: "Quotes ranked by how many keywords appear in their text, author, category or tags.",
			Params:  []string{"keywords: comma or space separated", "quantity: positive integer"},
			Example: "/v1/searchQuotes/smile,cry/maxQuantity=5",
			Errors:  []string{"400 no keywords provided", "400 invalid quantity"}},
		{ID: "randomQuote", Path: "/v1/randomQuote",
			Summary: "One random quote, optionally from a category.",
			Params:  []string{"category (query, optional)"},
			Example: "/v1/randomQuote?category=life",
			Errors:  []string{"404 no matching category", "404 no quotes"}},
		{ID: "categories", Path: "/v1/categories",
			Summary: "Every category with its quote count.",
			Params:  []string{"page (query, default 1)"},
			Example: "/v1/categories?page=1"},
		{ID: "tags", Path: "/v1/tags",
			Summary: "Recurring tags with their counts. Numeric, short and one-off tags are left out.",
			Params:  []string{"page (query, default 1)"},
			Example: "/v1/tags?page=1"},
		{ID: "authors", Path: "/v1/authors",
			Summary: "Authors with at least two quotes. Blank, unknown and n/a authors are left out.",
			Params:  []string{"page (query, default 1)"},
			Example: "/v1/authors?page=1"},
		{ID: "popularQuotes", Path: "/v1/popularQuotes",
			Summary: "The most popular quotes, highest popularity first.",
			Params:  []string{"minPopularity (query, default 0)", "quantity (query, default 10)"},
			Example: "/v1/popularQuotes?minPopularity=0.5&quantity=10"},
		{ID: "quoteOfTheDay", Path: "/v1/quoteOfTheDay",
			Summary: "The same quote for everyone on a given UTC day, drawn from the top 10% by popularity.",
			Example: "/v1/quoteOfTheDay",
			Errors:  []string{"404 no eligible quotes"}},
		{ID: "stats", Path: "/v1/stats",
			Summary: "Totals, most popular category, most prolific author and average popularity.",
			Example: "/v1/stats"},
	}
}

type docsPage struct {
	Quotes    int
	PageSize  int
	Endpoints []Endpoint
}

// HandleDocs serves the HTML documentation page.
func (s *Service) HandleDocs(w http.ResponseWriter, _ *http.Request) {
	var buf bytes.Buffer
	err := docsTemplate.Execute(&buf, docsPage{
		Quotes:    s.data.Len(),
		PageSize:  defaults.PageSize,
		Endpoints: Endpoints(),
	})
	if err != nil {
		slog.Error("docs template failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.Warn("response write failed", "error", err)
	}
}
