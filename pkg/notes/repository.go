// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package notes

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/google/uuid"
	"github.com/yeetrun/clireader/pkg/fileutil"
	"golang.org/x/sync/errgroup"
)

// ErrNotFound is returned for ids with no note.
var ErrNotFound = errors.New("note not found")

const (
	idLen       = 4
	idAttempts  = 3
	readWorkers = 8
)

// Repository is a directory of notes.
type Repository struct {
	dir string
}

// NewRepository returns the repository in dir. The directory is created
// when the first note is added.
func NewRepository(dir string) *Repository {
	return &Repository{dir: dir}
}

// Dir returns the repository directory.
func (r *Repository) Dir() string { return r.dir }

// Path returns the file of the note id.
func (r *Repository) Path(id string) string {
	return filepath.Join(r.dir, id)
}

// ValidID reports whether id looks like a note id.
func ValidID(id string) bool {
	if len(id) != idLen {
		return false
	}
	for _, c := range id {
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f') {
			return false
		}
	}
	return true
}

// NewID returns an id that no note in the repository uses yet.
func (r *Repository) NewID() (string, error) {
	for range idAttempts {
		u := uuid.New()
		id := u.String()[:idLen]
		if !r.Exists(id) {
			return id, nil
		}
	}
	return "", fmt.Errorf("failed to generate a new note id after %d attempts", idAttempts)
}

// Exists reports whether the note id exists.
func (r *Repository) Exists(id string) bool {
	if !ValidID(id) {
		return false
	}
	_, err := os.Stat(r.Path(id))
	return err == nil
}

// Add stores a new note. It fails if a note with the same id exists.
func (r *Repository) Add(n *Note) error {
	if !ValidID(n.ID) {
		return fmt.Errorf("invalid note id %q", n.ID)
	}
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}
	p := r.Path(n.ID)
	if _, err := os.Stat(p); err == nil {
		return fmt.Errorf("a note already exists at %s", p)
	}
	data, err := n.encode()
	if err != nil {
		return err
	}
	return fileutil.WriteFile(p, data, 0o644)
}

// Read loads the note id.
func (r *Repository) Read(id string) (*Note, error) {
	if !ValidID(id) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	data, err := os.ReadFile(r.Path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, err
	}
	return decodeNote(id, data)
}

// Remove deletes the note id.
func (r *Repository) Remove(id string) error {
	if !r.Exists(id) {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return os.Remove(r.Path(id))
}

// IDs returns the ids of all notes, sorted.
func (r *Repository) IDs() ([]string, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var ids []string
	for _, e := range entries {
		if e.Type().IsRegular() && ValidID(e.Name()) {
			ids = append(ids, e.Name())
		}
	}
	return ids, nil
}

// List loads every note, newest first, and returns at most limit of them.
// A limit below zero means no limit.
func (r *Repository) List(ctx context.Context, limit int) ([]*Note, error) {
	ids, err := r.IDs()
	if err != nil {
		return nil, err
	}
	notes := make([]*Note, len(ids))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(readWorkers)
	for i, id := range ids {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			n, err := r.Read(id)
			if err != nil {
				return err
			}
			notes[i] = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	slices.SortStableFunc(notes, func(a, b *Note) int {
		if c := b.Time.Compare(a.Time); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	if limit >= 0 && len(notes) > limit {
		notes = notes[:limit]
	}
	return notes, nil
}
