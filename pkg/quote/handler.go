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
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/NVIDIA/quotes-api/pkg/serializer"
	"github.com/NVIDIA/quotes-api/pkg/server"
)

// Route patterns served by the quote handlers.
const (
	RouteSample        = "/v1/getQuotes/quantity={quantity}"
	RouteByCategory    = "/v1/getQuotes/category={category}/quantity={quantity}"
	RouteByAuthor      = "/v1/getQuotes/author={author}/quantity={quantity}"
	RouteSearch        = "/v1/searchQuotes/{keywords}/maxQuantity={quantity}"
	RouteRandomQuote   = "/v1/randomQuote"
	RouteCategories    = "/v1/categories"
	RouteTags          = "/v1/tags"
	RouteAuthors       = "/v1/authors"
	RoutePopular       = "/v1/popularQuotes"
	RouteQuoteOfTheDay = "/v1/quoteOfTheDay"
	RouteStats         = "/v1/stats"
)

// Routes returns every quote endpoint keyed by route pattern, including the
// documentation page at "/".
func (s *Service) Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"/":                s.HandleDocs,
		RouteSample:        s.HandleSample,
		RouteByCategory:    s.HandleByCategory,
		RouteByAuthor:      s.HandleByAuthor,
		RouteSearch:        s.HandleSearch,
		RouteRandomQuote:   s.HandleRandomQuote,
		RouteCategories:    s.HandleCategories,
		RouteTags:          s.HandleTags,
		RouteAuthors:       s.HandleAuthors,
		RoutePopular:       s.HandlePopular,
		RouteQuoteOfTheDay: s.HandleQuoteOfTheDay,
		RouteStats:         s.HandleStats,
	}
}

// pathParam returns a decoded route parameter.
func pathParam(r *http.Request, name string) string {
	v := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return v
	}
	if decoded, err := url.PathUnescape(v); err == nil {
		return decoded
	}
	return v
}

// ParseQuantity parses a quantity parameter. Anything that is not an
// integer yields 0, which every endpoint treats as invalid.
func ParseQuantity(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}

// ParsePage parses a 1-based page number, defaulting to 1.
func ParsePage(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// ParsePopularity parses a finite popularity floor, defaulting to 0.
func ParsePopularity(raw string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func respond(w http.ResponseWriter, r *http.Request, resp any, err error, fallback string) {
	if err != nil {
		server.WriteErrorFromErr(w, r, err, fallback, nil)
		return
	}
	serializer.RespondJSON(w, http.StatusOK, resp)
}

// HandleSample serves GET /v1/getQuotes/quantity={quantity}.
func (s *Service) HandleSample(w http.ResponseWriter, r *http.Request) {
	resp, err := s.Sample(ParseQuantity(pathParam(r, "quantity")))
	respond(w, r, resp, err, "Internal server error.")
}

// HandleByCategory serves GET /v1/getQuotes/category={category}/quantity={quantity}.
func (s *Service) HandleByCategory(w http.ResponseWriter, r *http.Request) {
	resp, err := s.ByCategory(pathParam(r, "category"), ParseQuantity(pathParam(r, "quantity")))
	respond(w, r, resp, err, "Internal server error.")
}

// HandleByAuthor serves GET /v1/getQuotes/author={author}/quantity={quantity}.
func (s *Service) HandleByAuthor(w http.ResponseWriter, r *http.Request) {
	resp, err := s.ByAuthor(pathParam(r, "author"), ParseQuantity(pathParam(r, "quantity")))
	respond(w, r, resp, err, "Internal server error.")
}

// HandleSearch serves GET /v1/searchQuotes/{keywords}/maxQuantity={quantity}.
func (s *Service) HandleSearch(w http.ResponseWriter, r *http.Request) {
	resp, err := s.Search(pathParam(r, "keywords"), ParseQuantity(pathParam(r, "quantity")))
	respond(w, r, resp, err, "Internal server error.")
}

// HandleRandomQuote serves GET /v1/randomQuote?category=.
func (s *Service) HandleRandomQuote(w http.ResponseWriter, r *http.Request) {
	resp, err := s.RandomQuote(r.URL.Query().Get("category"))
	respond(w, r, resp, err, "Internal server error.")
}

// HandleCategories serves GET /v1/categories?page=N.
func (s *Service) HandleCategories(w http.ResponseWriter, r *http.Request) {
	serializer.RespondJSON(w, http.StatusOK, s.Categories(ParsePage(r.URL.Query().Get("page"))))
}

// HandleTags serves GET /v1/tags?page=N.
func (s *Service) HandleTags(w http.ResponseWriter, r *http.Request) {
	serializer.RespondJSON(w, http.StatusOK, s.Tags(ParsePage(r.URL.Query().Get("page"))))
}

// HandleAuthors serves GET /v1/authors?page=N.
func (s *Service) HandleAuthors(w http.ResponseWriter, r *http.Request) {
	serializer.RespondJSON(w, http.StatusOK, s.Authors(ParsePage(r.URL.Query().Get("page"))))
}

// HandlePopular serves GET /v1/popularQuotes?minPopularity=&quantity=.
func (s *Service) HandlePopular(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	serializer.RespondJSON(w, http.StatusOK,
		s.Popular(ParsePopularity(q.Get("minPopularity")), ParseQuantity(q.Get("quantity"))))
}

// HandleQuoteOfTheDay serves GET /v1/quoteOfTheDay.
func (s *Service) HandleQuoteOfTheDay(w http.ResponseWriter, r *http.Request) {
	resp, err := s.QuoteOfTheDay()
	respond(w, r, resp, err, "Internal server error.")
}

// HandleStats serves GET /v1/stats.
func (s *Service) HandleStats(w http.ResponseWriter, _ *http.Request) {
	serializer.RespondJSON(w, http.StatusOK, s.Stats())
}
