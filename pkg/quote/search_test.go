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

func TestTokenize(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"smile,cry", []string{"smile", "cry"}},
		{" Smile ,  CRY\tlove ", []string{"smile", "cry", "love"}},
		{"hope", []string{"hope"}},
		{",,  ,", []string{}},
		{"", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.raw))
		})
	}
}

func TestScore(t *testing.T) {
	both := New("Smile often.", "Ann", "life", []string{"cry"}, 0)
	one := New("Smile!", "Ben", "joy", nil, 0)

	assert.Equal(t, 2, Score(both, []string{"smile", "cry"}))
	assert.Equal(t, 1, Score(one, []string{"smile", "cry"}))
	assert.Zero(t, Score(one, []string{"tears"}))
}

func TestScore_TagsCountOnce(t *testing.T) {
	q := New("text", "author", "category", []string{"cry", "crying", "Cry baby"}, 0)
	assert.Equal(t, 1, Score(q, []string{"cry"}))
}

func TestScore_AllFields(t *testing.T) {
	q := New("life is good", "Life Coach", "life", []string{"lifelong"}, 0)
	assert.Equal(t, 4, Score(q, []string{"life"}))
}

func TestScore_Monotone(t *testing.T) {
	q := New("The sun will rise", "Anon", "hope", []string{"morning"}, 0)
	base := Score(q, []string{"sun"})

	assert.Greater(t, Score(q, []string{"sun", "morning"}), base)
	assert.Greater(t, Score(q, []string{"sun", "hope"}), base)
	assert.Equal(t, base, Score(q, []string{"sun", "moon"}))
}

func TestSearch_RanksByScore(t *testing.T) {
	quotes := []Quote{
		New("Smile!", "Ben", "joy", nil, 0),
		New("Nothing here", "Cal", "misc", nil, 0),
		New("Smile often.", "Ann", "life", []string{"cry"}, 0),
	}

	got := Search(quotes, []string{"smile", "cry"}, seeded(1))
	require.Len(t, got, 2)
	assert.Equal(t, "Smile often.", got[0].Text)
	assert.Equal(t, "Smile!", got[1].Text)
}

func TestSearch_ExcludesZeroScores(t *testing.T) {
	d := fixture(t)
	got := Search(d.Quotes(), []string{"rarest"}, seeded(2))
	require.Len(t, got, 1)
	assert.Equal(t, "To live is the rarest thing in the world.", got[0].Text)

	assert.Empty(t, Search(d.Quotes(), []string{"zebra"}, seeded(2)))
}

func TestSearch_TiesKeepAllMembers(t *testing.T) {
	quotes := numbered(20)
	keywords := []string{"quote"}

	for seed := uint64(0); seed < 5; seed++ {
		got := Search(quotes, keywords, seeded(seed))
		assert.ElementsMatch(t, texts(quotes), texts(got))
	}
}

func TestSearch_TiesShuffledWithinBucket(t *testing.T) {
	quotes := append(numbered(30), New("quote top", "quote", "quote", nil, 0))
	got := Search(quotes, []string{"quote"}, seeded(7))

	require.Len(t, got, 31)
	assert.Equal(t, "quote top", got[0].Text)
	assert.NotEqual(t, texts(quotes[:30]), texts(got[1:]), "tied quotes should not keep dataset order")
}
