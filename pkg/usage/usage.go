// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package usage builds aligned help text.
//
// A usage text has header lines (the synopsis) followed by a body made of
// sections. Parameter rows are indented and their descriptions start at a
// fixed column:
//
//	Usage: note [--help] <command>
//
//	Commands:
//	    add                  Add a note
//	    remove               Remove a note
package usage

import "strings"

// Builder accumulates usage text. The zero value is not usable; use New,
// Default, Compact or Dos.
type Builder struct {
	indent string
	column int
	header []string
	body   []string
}

// New returns a Builder that indents parameter rows by indent spaces and
// pads their headers to column characters.
func New(indent, column int) *Builder {
	return &Builder{indent: strings.Repeat(" ", indent), column: column}
}

// Default returns a Builder with a four space indent and descriptions at
// column 21.
func Default() *Builder { return New(4, 21) }

// Compact returns a Builder suited for short option names.
func Compact() *Builder { return New(3, 9) }

// Dos returns a Builder in the layout of DOS command help.
func Dos() *Builder { return New(2, 11) }

// HeaderLine adds a line to the header.
func (b *Builder) HeaderLine(line string) {
	b.header = append(b.header, line)
}

// Section starts a body section titled header, separated from the
// previous one by a blank line.
func (b *Builder) Section(header string) {
	if len(b.body) > 0 {
		b.body = append(b.body, "")
	}
	b.body = append(b.body, header)
}

// Parameter adds an indented row for header. The first line of the
// description goes next to the header, or below it when the header does
// not fit the column. Further lines are aligned with the first.
func (b *Builder) Parameter(header string, lines ...string) {
	if len(lines) == 0 {
		b.body = append(b.body, b.indent+header)
		return
	}
	pad := strings.Repeat(" ", b.column)
	var s strings.Builder
	s.WriteString(b.indent)
	s.WriteString(header)
	if n := len([]rune(header)); n < b.column {
		s.WriteString(pad[:b.column-n])
	}
	if len([]rune(header)) > b.column {
		s.WriteString("\n" + b.indent + pad)
	}
	s.WriteString(" " + lines[0])
	b.body = append(b.body, s.String())
	for _, l := range lines[1:] {
		b.body = append(b.body, b.indent+pad+" "+l)
	}
}

// Line adds a body line as is.
func (b *Builder) Line(line string) {
	b.body = append(b.body, line)
}

// IndentedLine adds a body line at the parameter indent.
func (b *Builder) IndentedLine(line string) {
	b.body = append(b.body, b.indent+line)
}

func (b *Builder) String() string {
	lines := b.header
	if len(b.header) > 0 && len(b.body) > 0 {
		lines = append(append(lines[:len(lines):len(lines)], ""), b.body...)
	} else {
		lines = append(lines[:len(lines):len(lines)], b.body...)
	}
	return strings.Join(lines, "\n")
}
