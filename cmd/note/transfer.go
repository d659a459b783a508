// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/yeetrun/clireader/pkg/fileutil"
	"github.com/yeetrun/clireader/pkg/notes"
	"github.com/yeetrun/clireader/pkg/params"
	"github.com/yeetrun/clireader/pkg/usage"
)

var (
	outputName  = params.Name("output", "o")
	inputName   = params.Name("input", "i")
	archivePath = params.Describe("archive path")
)

// readPath reads a path given as the parameter n or as the next value.
// "-" stands for the standard streams.
func readPath(r *params.Reader, n params.NamePredicate) (string, error) {
	if _, ok := r.PeekParameter(n); ok {
		return params.ReadParameterValue(r, n, nil)
	}
	t, err := r.RequireValue(nil, archivePath)
	if err != nil {
		return "", err
	}
	return t.Text, nil
}

func exportUsage(*notes.Config) *usage.Builder {
	u := usage.Default()
	u.HeaderLine("Usage: note export [--output] <file>")
	u.Parameter("-o, --output", "Archive to write (tar.zst), - for standard output")
	u.Section("Examples:")
	u.IndentedLine("note export notes.tar.zst")
	u.IndentedLine("note export - | ssh host note import -")
	return u
}

func runExport(ctx context.Context, a *app, r *params.Reader) error {
	path, err := readPath(r, outputName)
	if err != nil {
		return err
	}
	if err := r.ValidateEmpty(); err != nil {
		return err
	}
	if path == "-" {
		_, err := a.repo.Export(a.stdout)
		return err
	}
	var buf bytes.Buffer
	n, err := a.repo.Export(&buf)
	if err != nil {
		return err
	}
	if err := fileutil.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "Exported %d notes to %s\n", n, path)
	return nil
}

func importUsage(*notes.Config) *usage.Builder {
	u := usage.Default()
	u.HeaderLine("Usage: note import [--input] <file>")
	u.Parameter("-i, --input", "Archive to read (tar.zst), - for standard input")
	u.Section("Examples:")
	u.IndentedLine("note import notes.tar.zst")
	return u
}

func runImport(ctx context.Context, a *app, r *params.Reader) error {
	path, err := readPath(r, inputName)
	if err != nil {
		return err
	}
	if err := r.ValidateEmpty(); err != nil {
		return err
	}
	var in io.Reader = a.stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	res, err := a.repo.Import(in)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "Imported %d notes, %d unchanged\n", res.Added, res.Unchanged)
	if len(res.Conflicts) > 0 {
		for _, id := range res.Conflicts {
			a.log.Warn("note differs from the archive, kept local copy", "id", id)
		}
		return fmt.Errorf("%d notes conflict with existing ones: %s", len(res.Conflicts), strings.Join(res.Conflicts, ", "))
	}
	return nil
}
