// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexer

import (
	"regexp"
	"unicode/utf8"
)

// Lexer converts arguments into tokens.
type Lexer interface {
	// Tokenize lexes args. The RawArg tokens it creates use source as
	// their Source; pass nil for the original command line.
	Tokenize(args []string, source *Token) []*Token
	// Formatter returns the function used to print names the way this
	// lexer recognizes them.
	Formatter() ArgFormatter
}

// ArgFormatter renders a parameter name, or a short name group when group
// is set, with the prefix the user would type.
type ArgFormatter func(group bool, name string) string

// PosixArgs formats names as --name and groups as -group.
func PosixArgs(group bool, name string) string {
	if group {
		return "-" + name
	}
	return "--" + name
}

// DosArgs formats both names and groups as /name.
func DosArgs(_ bool, name string) string {
	return "/" + name
}

const endOfOptions = "--"

var (
	posixNameRe  = regexp.MustCompile(`^--(?P<name>[^=:\s]+)(?:(?:[=:]|\s+)(?P<value>.*))?$`)
	posixGroupRe = regexp.MustCompile(`^-(?P<group>[^=:\s]+)(?:(?:[=:]|\s+)(?P<value>.*))?$`)
	dosNameRe    = regexp.MustCompile(`^/(?P<name>[^=:\s]+)(?:(?:[=:]|\s+)(?P<value>.*))?$`)
)

// Posix lexes GNU style arguments: --name, --name=value, --name:value,
// -abc (a group of short names), -abc=value and the "--" end of options
// marker, which is dropped from the stream.
var Posix Lexer = posixLexer{}

// Dos lexes /name, /name=value and /name:value arguments. It has no short
// name groups and no end of options marker.
var Dos Lexer = dosLexer{}

type posixLexer struct{}

func (posixLexer) Formatter() ArgFormatter { return PosixArgs }

func (posixLexer) Tokenize(args []string, source *Token) []*Token {
	var out []*Token
	options := true
	for i, arg := range args {
		if arg == endOfOptions {
			options = false
			continue
		}
		raw := &Token{Kind: RawArg, Index: i, Text: arg, Source: source}
		if options {
			if m := posixNameRe.FindStringSubmatchIndex(arg); m != nil {
				out = appendName(out, posixNameRe, m, raw)
				continue
			}
			if m := posixGroupRe.FindStringSubmatchIndex(arg); m != nil {
				out = appendGroup(out, m, raw)
				continue
			}
		}
		out = append(out, &Token{Kind: Value, Text: arg, Source: raw})
	}
	return out
}

type dosLexer struct{}

func (dosLexer) Formatter() ArgFormatter { return DosArgs }

func (dosLexer) Tokenize(args []string, source *Token) []*Token {
	var out []*Token
	for i, arg := range args {
		raw := &Token{Kind: RawArg, Index: i, Text: arg, Source: source}
		if m := dosNameRe.FindStringSubmatchIndex(arg); m != nil {
			out = appendName(out, dosNameRe, m, raw)
			continue
		}
		out = append(out, &Token{Kind: Value, Text: arg, Source: raw})
	}
	return out
}

// submatch returns the text and offset of the named group in m.
func submatch(re *regexp.Regexp, m []int, name string, s string) (string, int) {
	i := re.SubexpIndex(name)
	start, end := m[2*i], m[2*i+1]
	if start < 0 {
		return "", -1
	}
	return s[start:end], start
}

func appendName(out []*Token, re *regexp.Regexp, m []int, raw *Token) []*Token {
	name, off := submatch(re, m, "name", raw.Text)
	out = append(out, &Token{Kind: Name, Text: name, Offset: off, Source: raw})
	return appendAttached(out, re, m, raw)
}

func appendGroup(out []*Token, m []int, raw *Token) []*Token {
	text, off := submatch(posixGroupRe, m, "group", raw.Text)
	group := &Token{Kind: NameGroup, Text: text, Offset: off, Source: raw}
	for pos, idx := 0, 0; pos < len(text); idx++ {
		_, size := utf8.DecodeRuneInString(text[pos:])
		out = append(out, &Token{
			Kind:   ShortName,
			Index:  idx,
			Text:   text[pos : pos+size],
			Offset: pos,
			Source: group,
		})
		pos += size
	}
	return appendAttached(out, posixGroupRe, m, raw)
}

func appendAttached(out []*Token, re *regexp.Regexp, m []int, raw *Token) []*Token {
	value, off := submatch(re, m, "value", raw.Text)
	if value == "" {
		return out
	}
	return append(out, &Token{Kind: AttachedValue, Text: value, Offset: off, Source: raw})
}
