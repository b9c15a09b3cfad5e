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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeStats(t *testing.T) {
	st := ComputeStats(fixture(t).Quotes())

	assert.Equal(t, 5, st.TotalQuotes)
	require.NotNil(t, st.MostPopularCategory)
	assert.Equal(t, Leader{Value: "life", Count: 3}, *st.MostPopularCategory)
	require.NotNil(t, st.MostProlificAuthor)
	assert.Equal(t, Leader{Value: "Oscar Wilde", Count: 2}, *st.MostProlificAuthor)
	assert.InDelta(t, 0.48, st.AveragePopularity, 1e-9)
}

func TestComputeStats_FirstLeaderWinsTies(t *testing.T) {
	quotes := []Quote{
		New("1", "B", "beta", nil, 1),
		New("2", "A", "alpha", nil, 3),
		New("3", "A", "beta", nil, 0),
		New("4", "B", "alpha", nil, 0),
	}
	st := ComputeStats(quotes)

	assert.Equal(t, "beta", st.MostPopularCategory.Value)
	assert.Equal(t, "B", st.MostProlificAuthor.Value)
	assert.InDelta(t, 1.0, st.AveragePopularity, 1e-9)
}

func TestComputeStats_Empty(t *testing.T) {
	st := ComputeStats(nil)

	assert.Zero(t, st.TotalQuotes)
	assert.Nil(t, st.MostPopularCategory)
	assert.Nil(t, st.MostProlificAuthor)
	assert.Zero(t, st.AveragePopularity)
}
