// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package params reads command-line parameters in whatever order the
// calling code asks for them.
//
// A Reader holds the lexed arguments as a list of slots that are consumed
// as they are matched. Values are taken from a cursor; parameters are
// searched for anywhere in the list. Matching a parameter opens a scope in
// which values are taken from right after the parameter's name, until
// EndParameter closes it. When the calling code is done, ValidateEmpty
// reports whatever the user typed that nothing asked for.
//
// All errors caused by the arguments match ErrUsage. Calling the Reader
// out of order (opening a second parameter scope, ending a scope that is
// not open) is a bug in the calling code and panics.
package params

import (
	"fmt"
	"slices"

	"github.com/yeetrun/clireader/pkg/lexer"
)

type slot struct {
	tok      *lexer.Token
	consumed bool
}

// paramScope is the state of an open parameter.
type paramScope struct {
	name   string
	tok    *lexer.Token
	index  int // slot of the name
	cursor int // next value slot
	prev   *lexer.Token
	values []*ValuePredicate
}

// Options configures a Reader. The zero value lexes POSIX arguments and
// compares names and values case sensitively.
type Options struct {
	Lexer           lexer.Lexer
	NameComparison  Comparison
	ValueComparison Comparison
	// Formatter renders error messages. It defaults to a Formatter using
	// the lexer's ArgFormatter.
	Formatter MessageFormatter
}

// Reader matches parameters and values against a lexed argument list. It
// is not safe for concurrent use.
type Reader struct {
	lex      lexer.Lexer
	nameCmp  Comparison
	valueCmp Comparison
	msg      MessageFormatter

	slots []slot
	// names holds every name predicate tried so far.
	names []NamePredicate
	// values holds the global value predicates tried since the last
	// global match.
	values []*ValuePredicate
	cursor int
	prev   *lexer.Token
	param  *paramScope
}

// NewReader lexes args and returns a Reader over them.
func NewReader(args []string, opts Options) *Reader {
	r := &Reader{
		lex:      opts.Lexer,
		nameCmp:  opts.NameComparison.resolve(CaseSensitive),
		valueCmp: opts.ValueComparison.resolve(CaseSensitive),
		msg:      opts.Formatter,
	}
	if r.lex == nil {
		r.lex = lexer.Posix
	}
	if r.msg == nil {
		r.msg = NewFormatter(r.lex.Formatter(), r.nameCmp)
	}
	r.slots = r.newSlots(r.lex.Tokenize(args, nil))
	return r
}

func (r *Reader) newSlots(toks []*lexer.Token) []slot {
	out := make([]slot, len(toks))
	for i, t := range toks {
		switch t.Kind {
		case lexer.Name, lexer.ShortName, lexer.Value, lexer.AttachedValue:
		default:
			panic(fmt.Sprintf("params: lexer produced a %v token in the stream", t.Kind))
		}
		out[i] = slot{tok: t}
	}
	return out
}

// Lexer returns the lexer the Reader was created with.
func (r *Reader) Lexer() lexer.Lexer { return r.lex }

// InParameter reports whether a parameter scope is open.
func (r *Reader) InParameter() bool { return r.param != nil }

// leading returns the number of consumed slots at the start of the list.
func (r *Reader) leading() int {
	for i, s := range r.slots {
		if !s.consumed {
			return i
		}
	}
	return len(r.slots)
}

func (r *Reader) valueIndex() int {
	if r.param != nil {
		return r.param.cursor
	}
	return r.cursor
}

// candidate returns the token at the value cursor if it can be taken as a
// value. Attached values are only taken inside a parameter.
func (r *Reader) candidate() (*lexer.Token, bool) {
	i := r.valueIndex()
	if i >= len(r.slots) || r.slots[i].consumed {
		return nil, false
	}
	t := r.slots[i].tok
	if t.Kind == lexer.Value || (t.Kind == lexer.AttachedValue && r.param != nil) {
		return t, true
	}
	return nil, false
}

func (r *Reader) record(v *ValuePredicate) {
	if v == nil {
		return
	}
	if r.param != nil {
		r.param.values = append(r.param.values, v)
	} else {
		r.values = append(r.values, v)
	}
}

// commit consumes the value at the cursor.
func (r *Reader) commit() {
	if p := r.param; p != nil {
		r.slots[p.cursor].consumed = true
		p.prev = r.slots[p.cursor].tok
		p.values = nil
		p.cursor++
		return
	}
	r.slots[r.cursor].consumed = true
	r.prev = r.slots[r.cursor].tok
	r.values = nil
	r.cursor = r.leading()
}

// PeekValue returns the value at the cursor if v matches it, without
// consuming it. A nil v matches any value.
func (r *Reader) PeekValue(v *ValuePredicate) (*lexer.Token, bool) {
	r.record(v)
	t, ok := r.candidate()
	if !ok || !v.Match(t, r.valueCmp) {
		return nil, false
	}
	return t, true
}

// MatchValue is like PeekValue but consumes the value.
func (r *Reader) MatchValue(v *ValuePredicate) (*lexer.Token, bool) {
	t, ok := r.PeekValue(v)
	if ok {
		r.commit()
	}
	return t, ok
}

// RequireValue consumes the value at the cursor. It returns an
// InvalidValueError if v rejects the value and a MissingValueError if
// there is none. desc overrides v's description in the error.
func (r *Reader) RequireValue(v *ValuePredicate, desc *TypeDescription) (*lexer.Token, error) {
	if desc == nil {
		desc = v.Description()
	}
	t, ok := r.candidate()
	if ok {
		if v.Match(t, r.valueCmp) {
			r.commit()
			return t, nil
		}
		return nil, r.invalid(t, desc, nil)
	}
	var next *lexer.Token
	if i := r.valueIndex(); i < len(r.slots) {
		next = r.slots[i].tok
	}
	return nil, r.missing(next, desc)
}

func (r *Reader) invalid(t *lexer.Token, desc *TypeDescription, cause error) error {
	if p := r.param; p != nil {
		return &InvalidParameterValueError{
			InvalidValueError: InvalidValueError{
				UsageError:  UsageError{Message: r.msg.InvalidParameterValue(p.name, p.tok, t, desc, cause), Err: cause},
				ValueToken:  t,
				Description: desc,
			},
			Name:      p.name,
			NameToken: p.tok,
		}
	}
	return &InvalidValueError{
		UsageError:  UsageError{Message: r.msg.InvalidValue(t, desc, cause), Err: cause},
		ValueToken:  t,
		Description: desc,
	}
}

func (r *Reader) missing(next *lexer.Token, desc *TypeDescription) error {
	if p := r.param; p != nil {
		return &MissingParameterValueError{
			MissingValueError: MissingValueError{
				UsageError:  UsageError{Message: r.msg.MissingParameterValue(p.name, p.tok, p.prev, next, desc)},
				Previous:    p.prev,
				Next:        next,
				Description: desc,
			},
			Name:      p.name,
			NameToken: p.tok,
		}
	}
	return &MissingValueError{
		UsageError:  UsageError{Message: r.msg.MissingValue(r.prev, next, desc)},
		Previous:    r.prev,
		Next:        next,
		Description: desc,
	}
}

func (r *Reader) mustBeGlobal(op string) {
	if r.param != nil {
		panic(fmt.Sprintf("params: %s called while parameter %q is open", op, r.param.name))
	}
}

// findName returns the slot of the first unconsumed name matching n.
func (r *Reader) findName(n NamePredicate) int {
	return slices.IndexFunc(r.slots, func(s slot) bool {
		return !s.consumed && s.tok.Kind.IsName() && n.Match(s.tok, r.nameCmp)
	})
}

// PeekParameter returns the first unconsumed name token matching n. It
// panics if a parameter is open.
func (r *Reader) PeekParameter(n NamePredicate) (*lexer.Token, bool) {
	r.mustBeGlobal("PeekParameter")
	r.names = append(r.names, n)
	i := r.findName(n)
	if i < 0 {
		return nil, false
	}
	return r.slots[i].tok, true
}

// MatchParameter consumes the first unconsumed name token matching n and
// opens its scope. Every successful call must be followed by EndParameter.
// It panics if a parameter is already open.
func (r *Reader) MatchParameter(n NamePredicate) (*lexer.Token, bool) {
	r.mustBeGlobal("MatchParameter")
	r.names = append(r.names, n)
	i := r.findName(n)
	if i < 0 {
		return nil, false
	}
	r.slots[i].consumed = true
	r.param = &paramScope{
		name:   n.Name,
		tok:    r.slots[i].tok,
		index:  i,
		cursor: i + 1,
	}
	return r.param.tok, true
}

// RequireParameter is like MatchParameter but returns a
// MissingParameterError when no name matches.
func (r *Reader) RequireParameter(n NamePredicate) (*lexer.Token, error) {
	t, ok := r.MatchParameter(n)
	if !ok {
		return nil, &MissingParameterError{
			UsageError: UsageError{Message: r.msg.MissingParameter(n.Name)},
			Name:       n.Name,
		}
	}
	return t, nil
}

// EndParameter closes the open parameter. It returns an
// UnexpectedSwitchValueError if a value attached to the name was left
// unread; the scope is closed either way. It panics if no parameter is
// open.
func (r *Reader) EndParameter() error {
	p := r.param
	if p == nil {
		panic("params: EndParameter called with no open parameter")
	}
	var err error
	if t, ok := r.candidate(); ok && t.Kind == lexer.AttachedValue {
		err = &UnexpectedSwitchValueError{
			UsageError: UsageError{Message: r.msg.UnexpectedSwitchValue(p.name, p.tok, t)},
			Name:       p.name,
			NameToken:  p.tok,
			ValueToken: t,
		}
	}
	r.closeParameter()
	return err
}

func (r *Reader) closeParameter() {
	r.param = nil
	r.cursor = r.leading()
}

// SubstituteParameter renames the first name matching old to newName. The
// replacement keeps the original token as its source and is left
// unconsumed, so it can be matched by its new name. It panics if a
// parameter is open.
func (r *Reader) SubstituteParameter(old NamePredicate, newName string) bool {
	t, ok := r.MatchParameter(old)
	if !ok {
		return false
	}
	r.slots[r.param.index] = slot{tok: lexer.NewToken(lexer.Name, newName, t)}
	r.closeParameter()
	return true
}

// SubstituteValue replaces the value at the cursor with newValue if old
// matches it.
func (r *Reader) SubstituteValue(old *ValuePredicate, newValue string) bool {
	t, ok := r.PeekValue(old)
	if !ok {
		return false
	}
	r.slots[r.valueIndex()] = slot{tok: lexer.NewToken(lexer.Value, newValue, t)}
	return true
}

// SubstituteValueArgs replaces the value at the cursor with the lexed
// newArgs if old matches it. This is how an alias expands into a whole
// command line.
func (r *Reader) SubstituteValueArgs(old *ValuePredicate, newArgs []string) bool {
	t, ok := r.PeekValue(old)
	if !ok {
		return false
	}
	i := r.valueIndex()
	r.slots = slices.Replace(r.slots, i, i+1, r.newSlots(r.lex.Tokenize(newArgs, t))...)
	return true
}

// ValidateEmpty returns an error describing the first argument that was
// not consumed, or nil if all were. A name followed by a value is reported
// as a parameter, any other name as a switch. It panics if a parameter is
// open.
func (r *Reader) ValidateEmpty() error {
	r.mustBeGlobal("ValidateEmpty")
	i := r.leading()
	if i >= len(r.slots) {
		return nil
	}
	t := r.slots[i].tok
	var next *lexer.Token
	if i+1 < len(r.slots) {
		next = r.slots[i+1].tok
	}
	withValue := next != nil && next.Kind.IsValue()

	if t.Kind.IsValue() {
		return &UnexpectedValueError{
			UsageError: UsageError{Message: r.msg.UnexpectedValue(t)},
			ValueToken: t,
		}
	}
	for _, n := range r.names {
		if !n.Match(t, r.nameCmp) {
			continue
		}
		if withValue {
			return &UnexpectedRepeatingParameterError{
				UsageError: UsageError{Message: r.msg.UnexpectedRepeatingParameter(n.Name, t)},
				Name:       n.Name,
				NameToken:  t,
			}
		}
		return &UnexpectedRepeatingSwitchError{
			UsageError: UsageError{Message: r.msg.UnexpectedRepeatingSwitch(n.Name, t)},
			Name:       n.Name,
			NameToken:  t,
		}
	}
	names := slices.Clone(r.names)
	if withValue {
		return &UnexpectedParameterError{
			UsageError: UsageError{Message: r.msg.UnexpectedParameter(t, next, names)},
			NameToken:  t,
			ValueToken: next,
			Names:      names,
		}
	}
	return &UnexpectedSwitchError{
		UsageError: UsageError{Message: r.msg.UnexpectedSwitch(t, names)},
		NameToken:  t,
		Names:      names,
	}
}

// FailUnmatchedValue returns the error for a value that none of the
// predicates tried since the last match accepted: an invalid value error
// listing every value they offered, or a missing value error if there is
// no value at the cursor. It is meant for commands and other literal
// choices. t names the kind of value and may be nil.
func (r *Reader) FailUnmatchedValue(t *TypeName) error {
	seen := r.values
	if r.param != nil {
		seen = r.param.values
	}
	desc := &TypeDescription{Type: t}
	for _, v := range seen {
		desc.Values = append(desc.Values, v.Description().values()...)
	}
	if tok, ok := r.candidate(); ok {
		return r.invalid(tok, desc, nil)
	}
	return r.missing(nil, desc)
}
