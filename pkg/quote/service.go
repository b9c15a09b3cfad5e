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
	"fmt"
	"net/http"
	"time"

	"github.com/NVIDIA/quotes-api/pkg/defaults"
	qerrors "github.com/NVIDIA/quotes-api/pkg/errors"
)

const timestampLayout = "2006-01-02T15:04:05.000Z"

// Option configures a Service.
type Option func(*Service)

// WithSource sets the randomness used for sampling and tie-breaking.
func WithSource(src Source) Option {
	return func(s *Service) {
		if src != nil {
			s.src = src
		}
	}
}

// WithClock sets the time source used for timestamps and quote of the day.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// Service runs quote queries against a Dataset and shapes their responses.
// Failures are returned as *errors.StructuredError whose context holds the
// response fields that accompany the error.
type Service struct {
	data *Dataset
	src  Source
	now  func() time.Time
}

// NewService creates a Service over data.
func NewService(data *Dataset, opts ...Option) *Service {
	s := &Service{
		data: data,
		src:  DefaultSource,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dataset returns the dataset the service reads from.
func (s *Service) Dataset() *Dataset {
	return s.data
}

func (s *Service) timestamp() string {
	return s.now().UTC().Format(timestampLayout)
}

func ok(message string) Envelope {
	return Envelope{Status: http.StatusOK, Message: message}
}

func emptyQuotes(quantity int, extra map[string]any) map[string]any {
	ctx := map[string]any{
		"requestedQuantity": quantity,
		"actualQuantity":    0,
		"quotes":            []Quote{},
	}
	for k, v := range extra {
		ctx[k] = v
	}
	return ctx
}

func (s *Service) quotes(message string, quantity int, selected []Quote) QuotesResponse {
	return QuotesResponse{
		Envelope:          ok(message),
		RequestedQuantity: quantity,
		ActualQuantity:    len(selected),
		Timestamp:         s.timestamp(),
		Quotes:            selected,
	}
}

// Sample returns quantity distinct random quotes and their facets.
func (s *Service) Sample(quantity int) (*SampleResponse, error) {
	if s.data.Len() == 0 {
		return nil, qerrors.NewWithContext(qerrors.ErrCodeDataUnavailable,
			"Quotes data not available.", emptyQuotes(quantity, nil))
	}
	if quantity < 1 {
		return nil, qerrors.NewWithContext(qerrors.ErrCodeInvalidRequest,
			"Invalid quantity parameter.", emptyQuotes(quantity, nil))
	}

	selected := Sample(s.data.Quotes(), quantity, s.src)
	if len(selected) == 0 {
		return nil, qerrors.NewWithContext(qerrors.ErrCodeNotFound,
			"No quotes found.", emptyQuotes(quantity, nil))
	}

	categories, authors, tags := Facets(selected)
	return &SampleResponse{
		QuotesResponse: s.quotes("Quotes fetched successfully.", quantity, selected),
		Categories:     categories,
		Authors:        authors,
		Tags:           tags,
	}, nil
}

// ByCategory resolves category against the dataset vocabulary and returns
// up to quantity random quotes from the resolved category.
func (s *Service) ByCategory(category string, quantity int) (*CategoryQuotesResponse, error) {
	if quantity < 1 {
		return nil, qerrors.NewWithContext(qerrors.ErrCodeInvalidRequest,
			"Invalid quantity parameter.", emptyQuotes(quantity, map[string]any{"category": category}))
	}

	m, found := resolveField("category", category, s.data.Categories())
	if !found {
		return nil, qerrors.NewWithContext(qerrors.ErrCodeNotFound,
			fmt.Sprintf("No matching category found for '%s'.", category),
			emptyQuotes(quantity, map[string]any{"category": category}))
	}

	selected := Sample(ByCategory(s.data.Quotes(), m.Value), quantity, s.src)
	if len(selected) == 0 {
		return nil, qerrors.NewWithContext(qerrors.ErrCodeNotFound,
			fmt.Sprintf("No quotes found for category '%s'.", m.Value),
			emptyQuotes(quantity, map[string]any{"category": m.Value}))
	}

	return &CategoryQuotesResponse{
		QuotesResponse: s.quotes(fmt.Sprintf("Quotes fetched successfully for category '%s'.", m.Value), quantity, selected),
		Category:       m.Value,
	}, nil
}

// ByAuthor resolves author against the dataset vocabulary and returns up
// to quantity random quotes by the resolved author.
func (s *Service) ByAuthor(author string, quantity int) (*AuthorQuotesResponse, error) {
	if quantity < 1 {
		return nil, qerrors.NewWithContext(qerrors.ErrCodeInvalidRequest,
			"Invalid quantity parameter.", emptyQuotes(quantity, map[string]any{"author": author}))
	}

	m, found := resolveField("author", author, s.data.Authors())
	if !found {
		return nil, qerrors.NewWithContext(qerrors.ErrCodeNotFound,
			fmt.Sprintf("No matching author found for '%s'.", author),
			emptyQuotes(quantity, map[string]any{"author": author}))
	}

	selected := Sample(ByAuthor(s.data.Quotes(), m.Value), quantity, s.src)
	if len(selected) == 0 {
		return nil, qerrors.NewWithContext(qerrors.ErrCodeNotFound,
			fmt.Sprintf("No quotes found for author '%s'.", m.Value),
			emptyQuotes(quantity, map[string]any{"author": m.Value}))
	}

	return &AuthorQuotesResponse{
		QuotesResponse: s.quotes(fmt.Sprintf("Quotes fetched successfully for author '%s'.", m.Value), quantity, selected),
		Author:         m.Value,
	}, nil
}

// Search ranks quotes against the keywords in raw and returns at most
// quantity of them. An empty result is not an error.
func (s *Service) Search(raw string, quantity int) (*SearchResponse, error) {
	keywords := Tokenize(raw)
	if len(keywords) == 0 {
		return nil, qerrors.NewWithContext(qerrors.ErrCodeInvalidRequest,
			"No keywords provided.", emptyQuotes(quantity, map[string]any{"keywords": raw}))
	}
	if quantity < 1 {
		return nil, qerrors.NewWithContext(qerrors.ErrCodeInvalidRequest,
			"Invalid quantity parameter.", emptyQuotes(quantity, map[string]any{"keywords": keywords}))
	}

	ranked := Search(s.data.Quotes(), keywords, s.src)
	if len(ranked) > quantity {
		ranked = ranked[:quantity]
	}

	return &SearchResponse{
		QuotesResponse: s.quotes(fmt.Sprintf("Quotes fetched successfully for keywords '%s'.", raw), quantity, ranked),
		Keywords:       keywords,
	}, nil
}

// RandomQuote returns one random quote, optionally from the category
// closest to category. An empty category means any quote.
func (s *Service) RandomQuote(category string) (*RandomQuoteResponse, error) {
	pool := s.data.Quotes()
	notFound := map[string]any{"quote": nil}

	if category != "" {
		m, found := resolveField("category", category, s.data.Categories())
		if !found {
			return nil, qerrors.NewWithContext(qerrors.ErrCodeNotFound,
				fmt.Sprintf("No matching category found for '%s'.", category), notFound)
		}
		pool = ByCategory(pool, m.Value)
	}

	q, found := Pick(pool, s.src)
	if !found {
		return nil, qerrors.NewWithContext(qerrors.ErrCodeNotFound, "No quotes found.", notFound)
	}

	resp := &RandomQuoteResponse{
		Envelope:  ok("Random quote fetched successfully."),
		Timestamp: s.timestamp(),
		Quote:     q,
	}
	if category != "" {
		resp.Category = &category
	}
	return resp, nil
}

func pagination[T any](p Page[T]) Pagination {
	return Pagination{TotalPages: p.TotalPages, Page: p.Page, PageSize: p.PageSize}
}

// Categories lists every category with its quote count.
func (s *Service) Categories(page int) *CategoriesResponse {
	p := Paginate(CategoryCounts(s.data.Quotes()), page)
	items := make([]CategoryCount, len(p.Items))
	for i, c := range p.Items {
		items[i] = CategoryCount{Category: c.Value, Count: c.Count}
	}
	return &CategoriesResponse{
		Envelope:        ok("Categories fetched successfully."),
		TotalCategories: p.Total,
		Pagination:      pagination(p),
		Categories:      items,
	}
}

// Tags lists the recurring, non-trivial tags with their counts.
func (s *Service) Tags(page int) *TagsResponse {
	p := Paginate(TagCounts(s.data.Quotes()), page)
	items := make([]TagCount, len(p.Items))
	for i, c := range p.Items {
		items[i] = TagCount{Tag: c.Value, Count: c.Count}
	}
	return &TagsResponse{
		Envelope:   ok("Tags fetched successfully."),
		TotalTags:  p.Total,
		Pagination: pagination(p),
		Tags:       items,
	}
}

// Authors lists the known authors with at least two quotes.
func (s *Service) Authors(page int) *AuthorsResponse {
	p := Paginate(AuthorCounts(s.data.Quotes()), page)
	items := make([]AuthorCount, len(p.Items))
	for i, c := range p.Items {
		items[i] = AuthorCount{Author: c.Value, Count: c.Count}
	}
	return &AuthorsResponse{
		Envelope:     ok("Authors fetched successfully."),
		TotalAuthors: p.Total,
		Pagination:   pagination(p),
		Authors:      items,
	}
}

// Popular returns up to quantity quotes with at least minPopularity, most
// popular first. A quantity below 1 uses defaults.PopularQuantity.
func (s *Service) Popular(minPopularity float64, quantity int) *PopularResponse {
	if quantity < 1 {
		quantity = defaults.PopularQuantity
	}
	selected := Popular(s.data.Quotes(), minPopularity, quantity)
	return &PopularResponse{
		Envelope:          ok("Popular quotes fetched successfully."),
		MinPopularity:     minPopularity,
		RequestedQuantity: quantity,
		ActualQuantity:    len(selected),
		Quotes:            selected,
	}
}

// QuoteOfTheDay returns the quote of the day for the current UTC date.
func (s *Service) QuoteOfTheDay() (*DailyResponse, error) {
	return s.QuoteOfTheDayAt(s.now())
}

// QuoteOfTheDayAt returns the quote of the day for the UTC date of t.
func (s *Service) QuoteOfTheDayAt(t time.Time) (*DailyResponse, error) {
	q, found := Daily(s.data.Quotes(), t)
	if !found {
		return nil, qerrors.NewWithContext(qerrors.ErrCodeNotFound,
			"No good quotes available for quote of the day.", map[string]any{"quote": nil})
	}
	return &DailyResponse{
		Envelope: ok("Quote of the day fetched successfully."),
		Date:     DateKey(t),
		Quote:    q,
	}, nil
}

// Stats summarizes the dataset.
func (s *Service) Stats() *StatsResponse {
	st := ComputeStats(s.data.Quotes())
	resp := &StatsResponse{
		Envelope:          ok("Statistics fetched successfully."),
		TotalQuotes:       st.TotalQuotes,
		AveragePopularity: st.AveragePopularity,
	}
	if st.MostPopularCategory != nil {
		resp.MostPopularCategory = &CategoryCount{Category: st.MostPopularCategory.Value, Count: st.MostPopularCategory.Count}
	}
	if st.MostProlificAuthor != nil {
		resp.MostProlificAuthor = &AuthorCount{Author: st.MostProlificAuthor.Value, Count: st.MostProlificAuthor.Count}
	}
	return resp
}
