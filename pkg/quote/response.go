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

// Envelope is the common head of every response body.
type Envelope struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// QuotesResponse carries a list of quotes and the quantities involved.
type QuotesResponse struct {
	Envelope
	RequestedQuantity int     `json:"requestedQuantity"`
	ActualQuantity    int     `json:"actualQuantity"`
	Timestamp         string  `json:"timestamp"`
	Quotes            []Quote `json:"quotes"`
}

// SampleResponse is a random selection together with its facets.
type SampleResponse struct {
	QuotesResponse
	Categories []string `json:"categories"`
	Authors    []string `json:"authors"`
	Tags       []string `json:"tags"`
}

// CategoryQuotesResponse carries quotes for a resolved category.
type CategoryQuotesResponse struct {
	QuotesResponse
	Category string `json:"category"`
}

// AuthorQuotesResponse carries quotes for a resolved author.
type AuthorQuotesResponse struct {
	QuotesResponse
	Author string `json:"author"`
}

// SearchResponse carries ranked search results and the parsed keywords.
type SearchResponse struct {
	QuotesResponse
	Keywords []string `json:"keywords"`
}

// RandomQuoteResponse carries a single random quote.
type RandomQuoteResponse struct {
	Envelope
	Timestamp string  `json:"timestamp"`
	Category  *string `json:"category"`
	Quote     Quote   `json:"quote"`
}

// CategoryCount is a listed category.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// TagCount is a listed tag.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// AuthorCount is a listed author.
type AuthorCount struct {
	Author string `json:"author"`
	Count  int    `json:"count"`
}

// Pagination describes the listing window.
type Pagination struct {
	TotalPages int `json:"totalPages"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
}

// CategoriesResponse carries a page of categories with their quote counts.
type CategoriesResponse struct {
	Envelope
	TotalCategories int `json:"totalCategories"`
	Pagination
	Categories []CategoryCount `json:"categories"`
}

// TagsResponse carries a page of recurring tags with their quote counts.
type TagsResponse struct {
	Envelope
	TotalTags int `json:"totalTags"`
	Pagination
	Tags []TagCount `json:"tags"`
}

// AuthorsResponse carries a page of prolific authors with their quote counts.
type AuthorsResponse struct {
	Envelope
	TotalAuthors int `json:"totalAuthors"`
	Pagination
	Authors []AuthorCount `json:"authors"`
}

// PopularResponse carries quotes ordered by popularity.
type PopularResponse struct {
	Envelope
	MinPopularity     float64 `json:"minPopularity"`
	RequestedQuantity int     `json:"requestedQuantity"`
	ActualQuantity    int     `json:"actualQuantity"`
	Quotes            []Quote `json:"quotes"`
}

// DailyResponse carries the quote of the day.
type DailyResponse struct {
	Envelope
	Date  string `json:"date"`
	Quote Quote  `json:"quote"`
}

// StatsResponse summarizes the dataset.
type StatsResponse struct {
	Envelope
	TotalQuotes         int            `json:"totalQuotes"`
	MostPopularCategory *CategoryCount `json:"mostPopularCategory"`
	MostProlificAuthor  *AuthorCount   `json:"mostProlificAuthor"`
	AveragePopularity   float64        `json:"averagePopularity"`
}
