// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package notes

import (
	"archive/tar"
	"errors"
	"fmt"
	"io"
	"os"
	"path"

	"github.com/klauspost/compress/zstd"
	"github.com/yeetrun/clireader/pkg/fileutil"
)

// maxNoteSize bounds a single archived note.
const maxNoteSize = 16 << 20

// Export writes every note to w as a zstd compressed tar archive and
// returns the number of notes written.
func (r *Repository) Export(w io.Writer) (int, error) {
	ids, err := r.IDs()
	if err != nil {
		return 0, err
	}
	enc, err := zstd.NewWriter(w)
	if err != nil {
		return 0, fmt.Errorf("failed to create zstd encoder: %w", err)
	}
	tw := tar.NewWriter(enc)
	for _, id := range ids {
		if err := r.exportNote(tw, id); err != nil {
			enc.Close()
			return 0, err
		}
	}
	if err := tw.Close(); err != nil {
		enc.Close()
		return 0, err
	}
	if err := enc.Close(); err != nil {
		return 0, fmt.Errorf("failed to compress archive: %w", err)
	}
	return len(ids), nil
}

func (r *Repository) exportNote(tw *tar.Writer, id string) error {
	f, err := os.Open(r.Path(id))
	if err != nil {
		return err
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return err
	}
	hdr, err := tar.FileInfoHeader(info, "")
	if err != nil {
		return err
	}
	hdr.Name = id
	if err := tw.WriteHeader(hdr); err != nil {
		return err
	}
	_, err = io.Copy(tw, f)
	return err
}

// ImportResult counts the outcome of an Import.
type ImportResult struct {
	Added int
	// Unchanged notes already existed with the same content.
	Unchanged int
	// Conflicts lists ids that exist with different content. They are
	// left untouched.
	Conflicts []string
}

// Import adds the notes of an archive written by Export. Entries that are
// not notes are rejected.
func (r *Repository) Import(rd io.Reader) (*ImportResult, error) {
	dec, err := zstd.NewReader(rd)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
	}
	defer dec.Close()

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create repository: %w", err)
	}
	res := &ImportResult{}
	tr := tar.NewReader(dec)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return res, nil
		}
		if err != nil {
			return res, fmt.Errorf("failed to read archive: %w", err)
		}
		id := path.Clean(hdr.Name)
		if hdr.Typeflag != tar.TypeReg || !ValidID(id) {
			return res, fmt.Errorf("archive entry %q is not a note", hdr.Name)
		}
		data, err := io.ReadAll(io.LimitReader(tr, maxNoteSize+1))
		if err != nil {
			return res, fmt.Errorf("failed to read note %s: %w", id, err)
		}
		if len(data) > maxNoteSize {
			return res, fmt.Errorf("note %s is larger than %d bytes", id, maxNoteSize)
		}
		if _, err := decodeNote(id, data); err != nil {
			return res, err
		}
		if r.Exists(id) {
			same, err := fileutil.SameContent(r.Path(id), data)
			if err != nil {
				return res, err
			}
			if same {
				res.Unchanged++
			} else {
				res.Conflicts = append(res.Conflicts, id)
			}
			continue
		}
		if err := fileutil.WriteFile(r.Path(id), data, 0o644); err != nil {
			return res, err
		}
		res.Added++
	}
}
