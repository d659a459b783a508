// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package notes

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	return NewRepository(filepath.Join(t.TempDir(), DefaultDir))
}

func addNote(t *testing.T, r *Repository, id string, when time.Time, content string) *Note {
	t.Helper()
	n := &Note{ID: id, Time: when, Content: content}
	if err := r.Add(n); err != nil {
		t.Fatalf("Add(%s) = %v", id, err)
	}
	return n
}

func TestValidID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"abcd", true},
		{"0f9e", true},
		{"ABCD", false},
		{"abc", false},
		{"abcde", false},
		{"wxyz", false},
		{"../a", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := ValidID(tt.id); got != tt.want {
			t.Errorf("ValidID(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestNewID(t *testing.T) {
	r := newTestRepository(t)
	id, err := r.NewID()
	if err != nil {
		t.Fatal(err)
	}
	if !ValidID(id) {
		t.Errorf("NewID() = %q, not a valid id", id)
	}
}

func TestRepository(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()

	// An empty repository has no notes and no directory.
	if got, err := r.List(ctx, -1); err != nil || len(got) != 0 {
		t.Fatalf("List on empty repository = %v, %v", got, err)
	}

	base := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	a := addNote(t, r, "aaaa", base, "first")
	b := addNote(t, r, "bbbb", base.Add(time.Hour), "second")
	c := addNote(t, r, "cccc", base, "third")

	if err := r.Add(&Note{ID: "aaaa", Content: "again"}); err == nil {
		t.Error("Add of an existing id succeeded")
	}
	if err := r.Add(&Note{ID: "nope", Content: "x"}); err == nil {
		t.Error("Add with an invalid id succeeded")
	}

	got, err := r.Read("bbbb")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(b, got); diff != "" {
		t.Errorf("Read mismatch (-want +got):\n%s", diff)
	}

	all, err := r.List(ctx, -1)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]*Note{b, a, c}, all); diff != "" {
		t.Errorf("List mismatch (-want +got):\n%s", diff)
	}
	two, err := r.List(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(two) != 2 || two[0].ID != "bbbb" || two[1].ID != "aaaa" {
		t.Errorf("List(2) returned %d notes, want bbbb and aaaa", len(two))
	}

	if err := r.Remove("aaaa"); err != nil {
		t.Fatal(err)
	}
	if r.Exists("aaaa") {
		t.Error("note aaaa exists after Remove")
	}
	if _, err := r.Read("aaaa"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Read of removed note = %v, want ErrNotFound", err)
	}
	if err := r.Remove("aaaa"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Remove = %v, want ErrNotFound", err)
	}
}

func TestIDsIgnoresOtherFiles(t *testing.T) {
	r := newTestRepository(t)
	addNote(t, r, "abcd", time.Time{}, "x")
	if err := os.WriteFile(filepath.Join(r.Dir(), ConfigName), []byte("editor = \"vi\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(r.Dir(), "beef"), 0o755); err != nil {
		t.Fatal(err)
	}
	ids, err := r.IDs()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"abcd"}, ids); diff != "" {
		t.Errorf("IDs mismatch (-want +got):\n%s", diff)
	}
}

func TestListCanceled(t *testing.T) {
	r := newTestRepository(t)
	addNote(t, r, "abcd", time.Time{}, "x")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.List(ctx, -1); !errors.Is(err, context.Canceled) {
		t.Errorf("List with canceled context = %v, want context.Canceled", err)
	}
}
