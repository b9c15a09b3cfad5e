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
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	qerrors "github.com/NVIDIA/quotes-api/pkg/errors"
)

func newTestService(t *testing.T, d *Dataset) *Service {
	t.Helper()
	return NewService(d, WithSource(seeded(11)), WithClock(func() time.Time { return fixedNow }))
}

func requireCode(t *testing.T, err error, code qerrors.ErrorCode) *qerrors.StructuredError {
	t.Helper()
	var se *qerrors.StructuredError
	require.True(t, errors.As(err, &se), "expected structured error, got %v", err)
	assert.Equal(t, code, se.Code)
	return se
}

func TestService_SampleFacets(t *testing.T) {
	resp, err := newTestService(t, fixture(t)).Sample(5)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"love", "life"}, resp.Categories)
	assert.ElementsMatch(t, []string{"Dr. Seuss", "Douglas Horton", "William Shakespeare", "Oscar Wilde"}, resp.Authors)
	assert.Contains(t, resp.Tags, "happiness")
	assert.Equal(t, "2024-06-07T12:00:00.000Z", resp.Timestamp)
}

func TestService_Errors(t *testing.T) {
	svc := newTestService(t, fixture(t))

	_, err := svc.Sample(0)
	se := requireCode(t, err, qerrors.ErrCodeInvalidRequest)
	assert.Equal(t, 0, se.Context["actualQuantity"])

	_, err = svc.ByCategory("love", -1)
	requireCode(t, err, qerrors.ErrCodeInvalidRequest)

	_, err = svc.ByAuthor("zzzzzzzz", 3)
	se = requireCode(t, err, qerrors.ErrCodeNotFound)
	assert.Equal(t, "zzzzzzzz", se.Context["author"])

	_, err = svc.Search("  ", 3)
	se = requireCode(t, err, qerrors.ErrCodeInvalidRequest)
	assert.Equal(t, "No keywords provided.", se.Message)

	_, err = svc.Search("smile", 0)
	requireCode(t, err, qerrors.ErrCodeInvalidRequest)

	_, err = newTestService(t, NewDataset(nil)).Sample(3)
	requireCode(t, err, qerrors.ErrCodeDataUnavailable)

	_, err = newTestService(t, NewDataset(nil)).ByCategory("love", 3)
	requireCode(t, err, qerrors.ErrCodeNotFound)
}

func TestService_SearchTruncates(t *testing.T) {
	resp, err := newTestService(t, fixture(t)).Search("smile,cry", 2)
	require.NoError(t, err)

	assert.Equal(t, 2, resp.RequestedQuantity)
	assert.Equal(t, 2, resp.ActualQuantity)
	assert.Equal(t, []string{"smile", "cry"}, resp.Keywords)
}

func TestService_PopularDefaultsQuantity(t *testing.T) {
	resp := newTestService(t, fixture(t)).Popular(0, 0)
	assert.Equal(t, 10, resp.RequestedQuantity)
	assert.Equal(t, 5, resp.ActualQuantity)
}

func TestService_QuoteOfTheDayAt(t *testing.T) {
	svc := newTestService(t, NewDataset(numbered(20)))

	resp, err := svc.QuoteOfTheDayAt(time.Date(2024, 6, 8, 1, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "2024-06-08", resp.Date)
	assert.Equal(t, "quote 19", resp.Quote.Text)

	today, err := svc.QuoteOfTheDay()
	require.NoError(t, err)
	assert.Equal(t, "2024-06-07", today.Date)
}

func TestService_Listings(t *testing.T) {
	quotes := make([]Quote, 0, 120)
	for i := range 120 {
		quotes = append(quotes, New("q", "", string(rune('A'+i%60))+"-cat", nil, 0))
	}
	svc := newTestService(t, NewDataset(quotes))

	first := svc.Categories(1)
	assert.Equal(t, 60, first.TotalCategories)
	assert.Equal(t, 2, first.TotalPages)
	assert.Len(t, first.Categories, 50)
	assert.Equal(t, CategoryCount{Category: "A-cat", Count: 2}, first.Categories[0])

	second := svc.Categories(2)
	assert.Len(t, second.Categories, 10)

	assert.Empty(t, svc.Tags(1).Tags)
	assert.Empty(t, svc.Authors(1).Authors)
}
