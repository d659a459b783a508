// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package params

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yeetrun/clireader/pkg/lexer"
)

// Comparison selects how predicate text is compared to token text.
type Comparison int

const (
	// DefaultComparison defers to the Reader's configured comparison.
	DefaultComparison Comparison = iota
	CaseSensitive
	IgnoreCase
)

func (c Comparison) resolve(def Comparison) Comparison {
	if c == DefaultComparison {
		c = def
	}
	if c == DefaultComparison {
		c = CaseSensitive
	}
	return c
}

func (c Comparison) equal(a, b string, def Comparison) bool {
	if c.resolve(def) == IgnoreCase {
		return strings.EqualFold(a, b)
	}
	return a == b
}

// NamePredicate matches a parameter by its long name or its single
// character short name.
type NamePredicate struct {
	Name string
	// Short is empty or a single character. It only matches ShortName
	// tokens.
	Short string
	// Hidden names are matched but never suggested.
	Hidden     bool
	Comparison Comparison
}

// Name returns a visible NamePredicate. It panics if short is longer than
// one character.
func Name(name, short string) NamePredicate {
	if utf8.RuneCountInString(short) > 1 {
		panic(fmt.Sprintf("params: short name %q of %q is not a single character", short, name))
	}
	return NamePredicate{Name: name, Short: short}
}

// HiddenName is like Name but the predicate is left out of suggestions.
func HiddenName(name, short string) NamePredicate {
	n := Name(name, short)
	n.Hidden = true
	return n
}

// Match reports whether tok carries the predicate's name, or its short
// name when tok is a ShortName.
func (n NamePredicate) Match(tok *lexer.Token, def Comparison) bool {
	if n.Comparison.equal(tok.Text, n.Name, def) {
		return true
	}
	return tok.Kind == lexer.ShortName && n.Short != "" && n.Comparison.equal(tok.Text, n.Short, def)
}

// AvailableNames returns the names to offer in suggestions.
func (n NamePredicate) AvailableNames() []string {
	if n.Hidden {
		return nil
	}
	return []string{n.Name}
}

// TypeName is the singular and plural display name of a kind of value.
type TypeName struct {
	Name   string
	Plural string
}

// DefaultTypeName is used when no type name is given.
var DefaultTypeName = &TypeName{Name: "value", Plural: "values"}

// NewTypeName returns a TypeName whose plural adds an "s".
func NewTypeName(name string) *TypeName {
	return &TypeName{Name: name, Plural: name + "s"}
}

func (t *TypeName) String() string { return t.Name }

// TypeDescription describes an expected value for diagnostics.
type TypeDescription struct {
	Type *TypeName
	// Values lists the accepted values, if the set is known.
	Values []string
}

// Describe returns a TypeDescription for a value type called name.
func Describe(name string, values ...string) *TypeDescription {
	return &TypeDescription{Type: NewTypeName(name), Values: values}
}

// typeName returns the display name of d, falling back to
// DefaultTypeName.
func (d *TypeDescription) typeName() *TypeName {
	if d == nil || d.Type == nil {
		return DefaultTypeName
	}
	return d.Type
}

func (d *TypeDescription) values() []string {
	if d == nil {
		return nil
	}
	return d.Values
}

// ValuePredicate matches a literal value. A nil *ValuePredicate matches
// any value.
type ValuePredicate struct {
	Value      string
	Hidden     bool
	Comparison Comparison
	Type       *TypeName
}

// Value returns a visible predicate for the literal v.
func Value(v string) *ValuePredicate {
	return &ValuePredicate{Value: v}
}

// HiddenValue returns a predicate for v that is never suggested.
func HiddenValue(v string) *ValuePredicate {
	return &ValuePredicate{Value: v, Hidden: true}
}

// Match reports whether tok carries the predicate's value.
func (v *ValuePredicate) Match(tok *lexer.Token, def Comparison) bool {
	if v == nil {
		return true
	}
	return v.Comparison.equal(tok.Text, v.Value, def)
}

// Description returns the diagnostic description of v.
func (v *ValuePredicate) Description() *TypeDescription {
	if v == nil {
		return nil
	}
	d := &TypeDescription{Type: v.Type}
	if !v.Hidden {
		d.Values = []string{v.Value}
	}
	return d
}
