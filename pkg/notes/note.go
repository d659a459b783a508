// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package notes stores short text notes as files in a directory.
//
// Each note is a file named by its four character hex id. Metadata is kept
// in YAML front matter ahead of the content:
//
//	---
//	time: 2026-10-15T09:30:00Z
//	category: Important
//	tags: [go, cli]
//	---
//	Remember the milk.
package notes

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// TimeLayout is how note times are shown to users.
const TimeLayout = "2006-01-02 15:04"

// Note is a single note.
type Note struct {
	ID       string    `yaml:"id" json:"id"`
	Time     time.Time `yaml:"time,omitempty" json:"time,omitzero"`
	Category string    `yaml:"category,omitempty" json:"category,omitempty"`
	Tags     []string  `yaml:"tags,flow,omitempty" json:"tags,omitempty"`
	Content  string    `yaml:"content" json:"content"`
}

// frontMatter is the part of a Note stored ahead of its content.
type frontMatter struct {
	Time     time.Time `yaml:"time,omitempty"`
	Category string    `yaml:"category,omitempty"`
	Tags     []string  `yaml:"tags,flow,omitempty"`
}

const fence = "---\n"

// Summary returns the first line of the content.
func (n *Note) Summary() string {
	s, _, _ := strings.Cut(strings.TrimSpace(n.Content), "\n")
	return s
}

func (n *Note) encode() ([]byte, error) {
	var b bytes.Buffer
	fm := frontMatter{Time: n.Time, Category: n.Category, Tags: n.Tags}
	if !fm.Time.IsZero() || fm.Category != "" || len(fm.Tags) > 0 {
		meta, err := yaml.Marshal(fm)
		if err != nil {
			return nil, fmt.Errorf("failed to encode note %s: %w", n.ID, err)
		}
		b.WriteString(fence)
		b.Write(meta)
		b.WriteString(fence)
	}
	b.WriteString(n.Content)
	return b.Bytes(), nil
}

func decodeNote(id string, data []byte) (*Note, error) {
	n := &Note{ID: id, Content: string(data)}
	rest, ok := strings.CutPrefix(n.Content, fence)
	if !ok {
		return n, nil
	}
	meta, content, ok := strings.Cut(rest, "\n"+fence)
	if !ok {
		return n, nil
	}
	var fm frontMatter
	if err := yaml.Unmarshal([]byte(meta), &fm); err != nil {
		return nil, fmt.Errorf("failed to parse note %s: %w", id, err)
	}
	n.Time, n.Category, n.Tags, n.Content = fm.Time, fm.Category, fm.Tags, content
	return n, nil
}
