// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// flat is a comparable view of a token and its immediate source.
type flat struct {
	Kind   Kind
	Index  int
	Text   string
	Offset int
	Src    string
}

func flatten(toks []*Token) []flat {
	var out []flat
	for _, t := range toks {
		f := flat{Kind: t.Kind, Index: t.Index, Text: t.Text, Offset: t.Offset}
		if t.Source != nil {
			f.Src = t.Source.Text
		}
		out = append(out, f)
	}
	return out
}

func TestPosixTokenize(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []flat
	}{
		{
			name: "value",
			args: []string{"add"},
			want: []flat{{Kind: Value, Text: "add", Src: "add"}},
		},
		{
			name: "long name",
			args: []string{"--force"},
			want: []flat{{Kind: Name, Text: "force", Offset: 2, Src: "--force"}},
		},
		{
			name: "long name equals",
			args: []string{"--count=10"},
			want: []flat{
				{Kind: Name, Text: "count", Offset: 2, Src: "--count=10"},
				{Kind: AttachedValue, Text: "10", Offset: 8, Src: "--count=10"},
			},
		},
		{
			name: "long name colon",
			args: []string{"--tags:a,b"},
			want: []flat{
				{Kind: Name, Text: "tags", Offset: 2, Src: "--tags:a,b"},
				{Kind: AttachedValue, Text: "a,b", Offset: 7, Src: "--tags:a,b"},
			},
		},
		{
			name: "long name whitespace",
			args: []string{"--name  two words"},
			want: []flat{
				{Kind: Name, Text: "name", Offset: 2, Src: "--name  two words"},
				{Kind: AttachedValue, Text: "two words", Offset: 8, Src: "--name  two words"},
			},
		},
		{
			name: "empty attached value dropped",
			args: []string{"--name="},
			want: []flat{{Kind: Name, Text: "name", Offset: 2, Src: "--name="}},
		},
		{
			name: "group",
			args: []string{"-abc=x"},
			want: []flat{
				{Kind: ShortName, Index: 0, Text: "a", Offset: 0, Src: "abc"},
				{Kind: ShortName, Index: 1, Text: "b", Offset: 1, Src: "abc"},
				{Kind: ShortName, Index: 2, Text: "c", Offset: 2, Src: "abc"},
				{Kind: AttachedValue, Text: "x", Offset: 5, Src: "-abc=x"},
			},
		},
		{
			name: "lone dash",
			args: []string{"-"},
			want: []flat{{Kind: Value, Text: "-", Src: "-"}},
		},
		{
			name: "end of options",
			args: []string{"--", "--force", "-f", "--"},
			want: []flat{
				{Kind: Value, Text: "--force", Src: "--force"},
				{Kind: Value, Text: "-f", Src: "-f"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := flatten(Posix.Tokenize(tt.args, nil))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", tt.args, diff)
			}
		})
	}
}

func TestPosixProvenance(t *testing.T) {
	toks := Posix.Tokenize([]string{"add", "-xy"}, nil)
	if len(toks) != 3 {
		t.Fatalf("len(tokens) = %d, want 3", len(toks))
	}
	y := toks[2]
	if y.Source.Kind != NameGroup {
		t.Fatalf("y.Source.Kind = %v, want %v", y.Source.Kind, NameGroup)
	}
	raw := y.Source.Source
	if raw.Kind != RawArg || raw.Index != 1 || raw.Source != nil {
		t.Fatalf("raw = %+v, want RawArg at index 1 with no source", raw)
	}
	if got := y.OriginText(); got != "-xy" {
		t.Errorf("OriginText() = %q, want %q", got, "-xy")
	}
}

func TestTokenizeSubstitution(t *testing.T) {
	orig := Posix.Tokenize([]string{"ls"}, nil)[0]
	toks := Posix.Tokenize([]string{"list", "--count=5"}, orig)
	for _, tok := range toks {
		if got := tok.Origin(); got != orig.Origin() {
			t.Errorf("%v.Origin() = %v, want %v", tok, got, orig.Origin())
		}
		if got := tok.OriginText(); got != "ls" {
			t.Errorf("%v.OriginText() = %q, want %q", tok, got, "ls")
		}
	}
}

func TestDosTokenize(t *testing.T) {
	got := flatten(Dos.Tokenize([]string{"/count:3", "-x", "--", "/f"}, nil))
	want := []flat{
		{Kind: Name, Text: "count", Offset: 1, Src: "/count:3"},
		{Kind: AttachedValue, Text: "3", Offset: 7, Src: "/count:3"},
		{Kind: Value, Text: "-x", Src: "-x"},
		{Kind: Value, Text: "--", Src: "--"},
		{Kind: Name, Text: "f", Offset: 1, Src: "/f"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Tokenize mismatch (-want +got):\n%s", diff)
	}
}

func TestArgFormatters(t *testing.T) {
	tests := []struct {
		f     ArgFormatter
		group bool
		name  string
		want  string
	}{
		{PosixArgs, false, "force", "--force"},
		{PosixArgs, true, "fv", "-fv"},
		{DosArgs, false, "force", "/force"},
		{DosArgs, true, "fv", "/fv"},
		{Posix.Formatter(), false, "x", "--x"},
		{Dos.Formatter(), false, "x", "/x"},
	}
	for _, tt := range tests {
		if got := tt.f(tt.group, tt.name); got != tt.want {
			t.Errorf("format(%v, %q) = %q, want %q", tt.group, tt.name, got, tt.want)
		}
	}
}

func TestKindString(t *testing.T) {
	if got := ShortName.String(); got != "short-name" {
		t.Errorf("ShortName.String() = %q, want %q", got, "short-name")
	}
	if got := Kind(42).String(); got != "Kind(42)" {
		t.Errorf("Kind(42).String() = %q, want %q", got, "Kind(42)")
	}
}
