// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package similarity ranks candidate strings by how close they are to a
// query. It backs the "did you mean" lists of usage errors.
package similarity

import (
	"cmp"
	"slices"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"golang.org/x/text/cases"
	"tailscale.com/util/set"
)

// Comparer selects the members of pool that are similar to query, best
// match first. Candidates that score equally keep their pool order.
type Comparer interface {
	Similar(query string, pool []string) []string
}

// Func adapts a plain function to a Comparer.
type Func func(query string, pool []string) []string

func (f Func) Similar(query string, pool []string) []string { return f(query, pool) }

var folder = cases.Fold()

func fold(s string, caseSensitive bool) string {
	if caseSensitive {
		return s
	}
	return folder.String(s)
}

type scored struct {
	value string
	score float64
}

// EditDistance keeps candidates within MaxDistance unit cost insertions,
// deletions or substitutions of the query, nearest first.
type EditDistance struct {
	MaxDistance   int
	CaseSensitive bool
}

func (c EditDistance) Similar(query string, pool []string) []string {
	q := fold(query, c.CaseSensitive)
	var hits []scored
	for _, v := range pool {
		d := fuzzy.LevenshteinDistance(q, fold(v, c.CaseSensitive))
		if d <= c.MaxDistance {
			hits = append(hits, scored{value: v, score: float64(d)})
		}
	}
	slices.SortStableFunc(hits, func(a, b scored) int { return cmp.Compare(a.score, b.score) })
	return values(hits)
}

// Ngram keeps candidates whose bigram and trigram sets overlap the
// query's by more than MinSimilarity (Jaccard index), best first. Strings
// are padded with ^ and $ so prefixes and suffixes weigh in.
type Ngram struct {
	MinSimilarity float64
	CaseSensitive bool
}

func (c Ngram) Similar(query string, pool []string) []string {
	q := ngrams(fold(query, c.CaseSensitive))
	var hits []scored
	for _, v := range pool {
		s := jaccard(q, ngrams(fold(v, c.CaseSensitive)))
		if s > c.MinSimilarity {
			hits = append(hits, scored{value: v, score: s})
		}
	}
	slices.SortStableFunc(hits, func(a, b scored) int { return cmp.Compare(b.score, a.score) })
	return values(hits)
}

func ngrams(s string) set.Set[string] {
	out := make(set.Set[string])
	addNgrams(out, s, 2)
	addNgrams(out, s, 3)
	return out
}

// addNgrams adds every window of size runes of the padded s to dst,
// including the partial windows that hang over either end.
func addNgrams(dst set.Set[string], s string, size int) {
	r := []rune("^" + s + "$")
	size = min(size, len(r))
	for i := 1 - size; i < len(r); i++ {
		dst.Add(string(r[max(i, 0):min(i+size, len(r))]))
	}
}

func jaccard(a, b set.Set[string]) float64 {
	common := 0
	for g := range a {
		if b.Contains(g) {
			common++
		}
	}
	return float64(common) / float64(a.Len()+b.Len()-common)
}

func values(hits []scored) []string {
	if len(hits) == 0 {
		return nil
	}
	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.value
	}
	return out
}
