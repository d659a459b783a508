// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lexer splits command-line arguments into a stream of typed
// tokens. Every token keeps a pointer to the token it was derived from so
// diagnostics can always quote what the user actually typed.
package lexer

import "fmt"

// Kind classifies a Token.
type Kind int

const (
	None Kind = iota
	// RawArg is a whole argument as passed on the command line. It is never
	// part of the reader stream; it only serves as provenance.
	RawArg
	// Name is a long parameter name, without its prefix.
	Name
	// ShortName is a single character of a short name group.
	ShortName
	// NameGroup is the run of short names following a single dash. Like
	// RawArg it only appears as provenance.
	NameGroup
	// Value is a free standing argument.
	Value
	// AttachedValue is a value that shares its argument with a name, as in
	// --name=value.
	AttachedValue
)

var kindNames = [...]string{
	None:          "none",
	RawArg:        "raw-arg",
	Name:          "name",
	ShortName:     "short-name",
	NameGroup:     "name-group",
	Value:         "value",
	AttachedValue: "attached-value",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsName reports whether k is Name or ShortName.
func (k Kind) IsName() bool { return k == Name || k == ShortName }

// IsValue reports whether k is Value or AttachedValue.
func (k Kind) IsValue() bool { return k == Value || k == AttachedValue }

// Token is one lexical unit of the argument stream. Tokens are immutable
// once created.
type Token struct {
	Kind Kind
	// Index is the position of a ShortName within its group, or the
	// position of a RawArg within the lexed argument list.
	Index int
	Text  string
	// Offset is the byte offset of Text within Source.Text.
	Offset int
	// Source is the token this one was derived from. It is nil only for
	// RawArg tokens of the original command line.
	Source *Token
}

// NewToken returns a synthetic token derived from source.
func NewToken(kind Kind, text string, source *Token) *Token {
	return &Token{Kind: kind, Text: text, Source: source}
}

// Origin returns the root of the provenance chain of t.
func (t *Token) Origin() *Token {
	for t.Source != nil {
		t = t.Source
	}
	return t
}

// OriginText returns the text the user originally typed for t.
func (t *Token) OriginText() string {
	return t.Origin().Text
}

func (t *Token) String() string {
	return fmt.Sprintf("%v(%q)", t.Kind, t.Text)
}
