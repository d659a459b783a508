// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package similarity

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEditDistance(t *testing.T) {
	tests := []struct {
		name  string
		c     EditDistance
		query string
		pool  []string
		want  []string
	}{
		{
			name:  "insertions",
			c:     EditDistance{MaxDistance: 1},
			query: "aa",
			pool:  []string{"a", "abb", "aa"},
			want:  []string{"aa", "a"},
		},
		{
			name:  "deletions",
			c:     EditDistance{MaxDistance: 1},
			query: "aa",
			pool:  []string{"aab", "aac", "aabc", "aa"},
			want:  []string{"aa", "aab", "aac"},
		},
		{
			name:  "substitutions",
			c:     EditDistance{MaxDistance: 1},
			query: "aa",
			pool:  []string{"bb", "ab", "ac", "aa"},
			want:  []string{"aa", "ab", "ac"},
		},
		{
			name:  "ignore case",
			c:     EditDistance{MaxDistance: 0},
			query: "Force",
			pool:  []string{"force", "FORCE", "forge"},
			want:  []string{"force", "FORCE"},
		},
		{
			name:  "case sensitive",
			c:     EditDistance{MaxDistance: 0, CaseSensitive: true},
			query: "Force",
			pool:  []string{"force", "Force"},
			want:  []string{"Force"},
		},
		{
			name:  "nothing close",
			c:     EditDistance{MaxDistance: 2},
			query: "repository",
			pool:  []string{"help", "count"},
			want:  nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.c.Similar(tt.query, tt.pool)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Similar(%q) mismatch (-want +got):\n%s", tt.query, diff)
			}
		})
	}
}

func TestNgrams(t *testing.T) {
	got := ngrams("ab").Slice()
	want := []string{"^", "^a", "ab", "b$", "$", "^ab", "ab$", "b$"}
	w := make(map[string]bool)
	for _, g := range want {
		w[g] = true
	}
	if len(got) != len(w) {
		t.Fatalf("ngrams(ab) = %q, want %d distinct grams", got, len(w))
	}
	for _, g := range got {
		if !w[g] {
			t.Errorf("unexpected gram %q", g)
		}
	}
}

func TestNgram(t *testing.T) {
	c := Ngram{MinSimilarity: 0.3}
	got := c.Similar("categry", []string{"count", "category", "CATEGORIES", "tags"})
	want := []string{"category", "CATEGORIES"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Similar mismatch (-want +got):\n%s", diff)
	}

	if got := c.Similar("xyz", []string{"abc"}); got != nil {
		t.Errorf("Similar(xyz) = %q, want nil", got)
	}
	if got := (Ngram{MinSimilarity: 0.99}).Similar("same", []string{"same"}); len(got) != 1 {
		t.Errorf("identical strings should score 1, got %q", got)
	}
}

func TestFunc(t *testing.T) {
	var c Comparer = Func(func(q string, pool []string) []string { return pool[:1] })
	if got := c.Similar("x", []string{"a", "b"}); !cmp.Equal(got, []string{"a"}) {
		t.Errorf("Similar = %q, want [a]", got)
	}
}
