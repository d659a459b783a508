// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package params

import (
	"strings"

	"github.com/yeetrun/clireader/pkg/lexer"
	"github.com/yeetrun/clireader/pkg/similarity"
	"tailscale.com/util/set"
)

// MessageFormatter renders the message of each usage error.
type MessageFormatter interface {
	MissingValue(prev, next *lexer.Token, desc *TypeDescription) string
	MissingParameter(name string) string
	MissingParameterValue(name string, nameTok, prev, next *lexer.Token, desc *TypeDescription) string
	UnexpectedValue(valueTok *lexer.Token) string
	UnexpectedParameter(nameTok, valueTok *lexer.Token, names []NamePredicate) string
	UnexpectedSwitch(nameTok *lexer.Token, names []NamePredicate) string
	UnexpectedSwitchValue(name string, nameTok, valueTok *lexer.Token) string
	UnexpectedRepeatingParameter(name string, nameTok *lexer.Token) string
	UnexpectedRepeatingSwitch(name string, nameTok *lexer.Token) string
	InvalidValue(valueTok *lexer.Token, desc *TypeDescription, cause error) string
	InvalidParameterValue(name string, nameTok, valueTok *lexer.Token, desc *TypeDescription, cause error) string
}

// Formatter is the default MessageFormatter. The zero value formats POSIX
// names and suggests names within an edit distance of 2.
type Formatter struct {
	Args    lexer.ArgFormatter
	Names   NameFormatter
	Similar similarity.Comparer
	// NameComparison is used to test whether a short name group spells a
	// known long name.
	NameComparison Comparison
}

// NewFormatter returns a Formatter for names printed by args.
func NewFormatter(args lexer.ArgFormatter, nameCmp Comparison) *Formatter {
	return &Formatter{Args: args, NameComparison: nameCmp}
}

var _ MessageFormatter = (*Formatter)(nil)

func (f *Formatter) args() lexer.ArgFormatter {
	if f.Args == nil {
		return lexer.PosixArgs
	}
	return f.Args
}

func (f *Formatter) names() NameFormatter {
	if f.Names == nil {
		return Names{Args: f.args()}
	}
	return f.Names
}

func (f *Formatter) similar() similarity.Comparer {
	if f.Similar == nil {
		return similarity.EditDistance{MaxDistance: 2}
	}
	return f.Similar
}

func (f *Formatter) MissingValue(prev, next *lexer.Token, desc *TypeDescription) string {
	t := desc.typeName()
	var b strings.Builder
	switch {
	case prev != nil:
		b.WriteString(t.Name + " is missing after '" + prev.OriginText() + "'")
	case next != nil:
		b.WriteString(t.Name + " is missing before '" + next.OriginText() + "'")
	default:
		b.WriteString(t.Name + " is missing")
	}
	b.WriteString(valuesList(nil, desc.values(), t))
	return b.String()
}

func (f *Formatter) MissingParameter(name string) string {
	return f.args()(false, name) + " parameter is missing"
}

func (f *Formatter) MissingParameterValue(name string, nameTok, prev, next *lexer.Token, desc *TypeDescription) string {
	t := desc.typeName()
	param := f.names().Parameter(nameTok, name)
	var b strings.Builder
	switch {
	case prev != nil:
		b.WriteString(param + " additional " + t.Name + " is missing after '" + prev.OriginText() + "'")
	case next != nil:
		b.WriteString(param + " " + t.Name + " is missing before '" + next.OriginText() + "'")
	default:
		b.WriteString(param + " " + t.Name + " is missing")
	}
	b.WriteString(valuesList(nil, desc.values(), t))
	return b.String()
}

func (f *Formatter) UnexpectedValue(valueTok *lexer.Token) string {
	return "value '" + valueTok.Text + "' is unexpected"
}

func (f *Formatter) UnexpectedParameter(nameTok, valueTok *lexer.Token, names []NamePredicate) string {
	var b strings.Builder
	b.WriteString("Unexpected " + f.names().Parameter(nameTok, ""))
	if valueTok.Kind != lexer.AttachedValue {
		b.WriteString(" '" + valueTok.Text + "'")
	}
	b.WriteString(f.similarNames(nameTok, names))
	return b.String()
}

func (f *Formatter) UnexpectedSwitch(nameTok *lexer.Token, names []NamePredicate) string {
	var b strings.Builder
	b.WriteString("Unexpected " + f.names().Switch(nameTok, ""))

	// -force instead of --force
	if g := nameTok.Source; nameTok.Kind == lexer.ShortName && g != nil && g.Kind == lexer.NameGroup && g.Text != nameTok.Text {
		long := lexer.NewToken(lexer.Name, g.Text, g.Source)
		for _, n := range names {
			if n.Match(long, f.NameComparison) {
				b.WriteString("\nDid you mean '" + f.args()(false, long.Text) + "'?")
				return b.String()
			}
		}
	}
	b.WriteString(f.similarNames(nameTok, names))
	return b.String()
}

func (f *Formatter) UnexpectedSwitchValue(name string, nameTok, valueTok *lexer.Token) string {
	return "Unexpected " + f.names().Switch(nameTok, name) + " value '" + valueTok.Text + "'"
}

func (f *Formatter) UnexpectedRepeatingParameter(name string, nameTok *lexer.Token) string {
	return "Unexpected repeating " + f.names().Parameter(nameTok, name)
}

func (f *Formatter) UnexpectedRepeatingSwitch(name string, nameTok *lexer.Token) string {
	return "Unexpected repeating " + f.names().Switch(nameTok, name)
}

func (f *Formatter) InvalidValue(valueTok *lexer.Token, desc *TypeDescription, cause error) string {
	t := desc.typeName()
	return f.invalid(t.Name+" '"+valueTok.Text+"' is invalid", valueTok, desc, cause)
}

func (f *Formatter) InvalidParameterValue(name string, nameTok, valueTok *lexer.Token, desc *TypeDescription, cause error) string {
	t := desc.typeName()
	return f.invalid(f.names().Parameter(nameTok, name)+" "+t.Name+" '"+valueTok.Text+"' is invalid", valueTok, desc, cause)
}

func (f *Formatter) invalid(head string, valueTok *lexer.Token, desc *TypeDescription, cause error) string {
	var b strings.Builder
	b.WriteString(head)
	if cause != nil {
		b.WriteString("\n" + cause.Error())
	}
	if avail := desc.values(); len(avail) > 0 {
		b.WriteString(valuesList(f.similar().Similar(valueTok.Text, avail), avail, desc.typeName()))
	}
	return b.String()
}

var parameterType = NewTypeName("parameter")

// similarNames lists the visible names close to nameTok.
func (f *Formatter) similarNames(nameTok *lexer.Token, names []NamePredicate) string {
	var avail []string
	seen := make(set.Set[string])
	for _, n := range names {
		for _, s := range n.AvailableNames() {
			if !seen.Contains(s) {
				seen.Add(s)
				avail = append(avail, s)
			}
		}
	}
	if len(avail) == 0 {
		return ""
	}
	var similar []string
	for _, s := range f.similar().Similar(nameTok.Text, avail) {
		similar = append(similar, f.args()(false, s))
	}
	return valuesList(similar, nil, parameterType)
}

// valuesList renders the similar values, or failing that the available
// values, as an indented list under a blank line.
func valuesList(similar, available []string, t *TypeName) string {
	var head string
	list := similar
	switch {
	case len(similar) > 1:
		head = "The most similar " + t.Plural + " are:"
	case len(similar) == 1:
		head = "The most similar " + t.Name + " is:"
	case len(available) > 1:
		head, list = "Available "+t.Plural+" are:", available
	case len(available) == 1:
		head, list = "Available "+t.Name+" is:", available
	default:
		return ""
	}
	var b strings.Builder
	b.WriteString("\n\n" + head)
	for _, v := range list {
		b.WriteString("\n    " + v)
	}
	return b.String()
}
