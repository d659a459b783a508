// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "abcd")
	if err := WriteFile(dst, []byte("one"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := WriteFile(dst, []byte("two"), 0o600); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "two" {
		t.Errorf("content = %q, want %q", got, "two")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("dir has %d entries, want 1 (temporary files left behind)", len(entries))
	}
}

func TestWriteFileMissingDir(t *testing.T) {
	if err := WriteFile(filepath.Join(t.TempDir(), "missing", "f"), nil, 0o600); err == nil {
		t.Fatal("WriteFile into a missing directory succeeded")
	}
}

func TestSameContent(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "f")
	if same, err := SameContent(dst, []byte("x")); err != nil || same {
		t.Fatalf("SameContent(missing) = %v, %v; want false", same, err)
	}
	if err := WriteFile(dst, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if same, err := SameContent(dst, []byte("x")); err != nil || !same {
		t.Errorf("SameContent(x) = %v, %v; want true", same, err)
	}
	if same, err := SameContent(dst, []byte("y")); err != nil || same {
		t.Errorf("SameContent(y) = %v, %v; want false", same, err)
	}
}
