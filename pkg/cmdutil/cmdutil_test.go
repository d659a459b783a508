// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdutil

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{" y \n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"y", true},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		got, err := Confirm(strings.NewReader(tt.in), &out, "Remove note 12ab?")
		if err != nil {
			t.Fatalf("Confirm(%q) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("Confirm(%q) = %v, want %v", tt.in, got, tt.want)
		}
		if out.String() != "Remove note 12ab? [y/N]: " {
			t.Errorf("prompt = %q", out.String())
		}
	}
}

func TestEditorCmd(t *testing.T) {
	cmd, err := EditorCmd(context.Background(), "code --wait", "notes/12ab")
	if err != nil {
		t.Fatal(err)
	}
	got := strings.Join(cmd.Args, " ")
	if got != "code --wait notes/12ab" {
		t.Errorf("Args = %q, want %q", got, "code --wait notes/12ab")
	}
	if _, err := EditorCmd(context.Background(), "  "); err == nil {
		t.Error("EditorCmd with a blank editor succeeded")
	}
}
