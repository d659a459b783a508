// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package params

import (
	"fmt"

	"github.com/yeetrun/clireader/pkg/lexer"
)

// NameFormatter describes a name token in a diagnostic. name is the
// parameter's long name when it is known, or empty.
type NameFormatter interface {
	Parameter(tok *lexer.Token, name string) string
	Switch(tok *lexer.Token, name string) string
}

// Names is the default NameFormatter. Its output looks like:
//
//	--count parameter
//	-c parameter
//	count parameter (-c)
//	count parameter ('c' at '-vc' parameter group)
//	'c' parameter (at '-vc' parameter group)
type Names struct {
	Args lexer.ArgFormatter
}

func (n Names) Parameter(tok *lexer.Token, name string) string {
	return n.format(tok, name, "parameter")
}

func (n Names) Switch(tok *lexer.Token, name string) string {
	return n.format(tok, name, "switch")
}

func (n Names) format(tok *lexer.Token, name, kind string) string {
	args := n.Args
	if args == nil {
		args = lexer.PosixArgs
	}
	if tok.Kind != lexer.ShortName || tok.Source == nil {
		return fmt.Sprintf("%s %s", args(false, tok.Text), kind)
	}
	alone := tok.Text == tok.Source.Text
	group := args(true, tok.Source.Text)
	switch {
	case alone && name == "":
		return fmt.Sprintf("%s %s", group, kind)
	case alone:
		return fmt.Sprintf("%s %s (%s)", name, kind, group)
	case name != "":
		return fmt.Sprintf("%s %s ('%s' at '%s' parameter group)", name, kind, tok.Text, group)
	default:
		return fmt.Sprintf("'%s' %s (at '%s' parameter group)", tok.Text, kind, group)
	}
}
