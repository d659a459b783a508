// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package params

import (
	"errors"

	"github.com/yeetrun/clireader/pkg/lexer"
)

// ErrUsage matches every usage error with errors.Is.
var ErrUsage = errors.New("usage error")

// UsageError is the common part of all errors caused by the user's
// arguments. Message is already formatted for display.
type UsageError struct {
	Message string
	// Err is the conversion failure behind an invalid value, if any.
	Err error
}

func (e *UsageError) Error() string        { return e.Message }
func (e *UsageError) Unwrap() error        { return e.Err }
func (e *UsageError) Is(target error) bool { return target == ErrUsage }

// MissingValueError reports that a value was expected but not found.
type MissingValueError struct {
	UsageError
	// Previous is the last value matched in the same scope.
	Previous *lexer.Token
	// Next is the token found where the value was expected.
	Next        *lexer.Token
	Description *TypeDescription
}

// MissingParameterValueError is a MissingValueError inside a parameter.
// errors.As also accepts it as a *MissingValueError.
type MissingParameterValueError struct {
	MissingValueError
	Name      string
	NameToken *lexer.Token
}

func (e *MissingParameterValueError) As(target any) bool {
	if t, ok := target.(**MissingValueError); ok {
		*t = &e.MissingValueError
		return true
	}
	return false
}

// MissingParameterError reports a required parameter that never appeared.
type MissingParameterError struct {
	UsageError
	Name string
}

// UnexpectedValueError reports a value nothing asked for.
type UnexpectedValueError struct {
	UsageError
	ValueToken *lexer.Token
}

// UnexpectedParameterError reports an unknown name followed by a value.
type UnexpectedParameterError struct {
	UsageError
	NameToken  *lexer.Token
	ValueToken *lexer.Token
	// Names holds every name predicate the reader tried.
	Names []NamePredicate
}

// UnexpectedSwitchError reports an unknown name with no value after it.
type UnexpectedSwitchError struct {
	UsageError
	NameToken *lexer.Token
	Names     []NamePredicate
}

// UnexpectedSwitchValueError reports a value attached to a parameter that
// takes none, as in --force=yes.
type UnexpectedSwitchValueError struct {
	UsageError
	Name       string
	NameToken  *lexer.Token
	ValueToken *lexer.Token
}

// UnexpectedRepeatingParameterError reports a known parameter given again
// with a value.
type UnexpectedRepeatingParameterError struct {
	UsageError
	Name      string
	NameToken *lexer.Token
}

// UnexpectedRepeatingSwitchError reports a known parameter given again
// without a value.
type UnexpectedRepeatingSwitchError struct {
	UsageError
	Name      string
	NameToken *lexer.Token
}

// InvalidValueError reports a value that was rejected by a predicate or
// failed to parse. Unwrap returns the parse error.
type InvalidValueError struct {
	UsageError
	ValueToken  *lexer.Token
	Description *TypeDescription
}

// InvalidParameterValueError is an InvalidValueError inside a parameter.
// errors.As also accepts it as an *InvalidValueError.
type InvalidParameterValueError struct {
	InvalidValueError
	Name      string
	NameToken *lexer.Token
}

func (e *InvalidParameterValueError) As(target any) bool {
	if t, ok := target.(**InvalidValueError); ok {
		*t = &e.InvalidValueError
		return true
	}
	return false
}
