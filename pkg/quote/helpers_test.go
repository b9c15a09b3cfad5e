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
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

// seeded returns a deterministic Source for tests.
func seeded(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed+1))
}

// numbered returns n quotes with distinct text and popularity 1..n.
func numbered(n int) []Quote {
	quotes := make([]Quote, n)
	for i := range quotes {
		quotes[i] = New(fmt.Sprintf("quote %d", i+1), "author", "category", nil, float64(i+1))
	}
	return quotes
}

func texts(quotes []Quote) []string {
	out := make([]string, len(quotes))
	for i, q := range quotes {
		out[i] = q.Text
	}
	return out
}

func fixture(t *testing.T) *Dataset {
	t.Helper()
	d, err := Load(context.Background(), "testdata/quotes.json")
	require.NoError(t, err)
	require.Equal(t, 5, d.Len())
	return d
}
