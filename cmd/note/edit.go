// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/yeetrun/clireader/pkg/cmdutil"
	"github.com/yeetrun/clireader/pkg/notes"
	"github.com/yeetrun/clireader/pkg/params"
	"github.com/yeetrun/clireader/pkg/usage"
)

var (
	contentName  = params.Name("content", "")
	tagsName     = params.Name("tags", "t")
	categoryName = params.Name("category", "g")
	forceName    = params.Name("force", "f")

	categoryType = &params.TypeName{Name: "category", Plural: "categories"}
)

func addUsage(cfg *notes.Config) *usage.Builder {
	category := "Category name"
	if len(cfg.Categories) > 0 {
		category = "One of: " + strings.Join(cfg.Categories, ", ")
	}
	u := usage.Default()
	u.HeaderLine("Usage: note add [--content] <content> [<args>]")
	u.Parameter("--content", "Content")
	u.Parameter("-t, --tags", "A list of comma separated tags")
	u.Parameter("-g, --category", category)
	u.Section("Examples:")
	u.IndentedLine(`note add "note content" -t go,cli -g important`)
	return u
}

func runAdd(ctx context.Context, a *app, r *params.Reader) error {
	// Parameters first, so the content may follow them.
	tags, err := params.ReadOptionalParameterValue(r, tagsName, "", nil)
	if err != nil {
		return err
	}
	category, err := a.readCategory(r)
	if err != nil {
		return err
	}
	content, err := readContent(r)
	if err != nil {
		return err
	}
	if err := r.ValidateEmpty(); err != nil {
		return err
	}

	id, err := a.repo.NewID()
	if err != nil {
		return err
	}
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	n := &notes.Note{
		ID:       id,
		Time:     a.now().Truncate(time.Second),
		Category: category,
		Tags:     splitTags(tags),
		Content:  content,
	}
	fmt.Fprintf(a.stdout, "Adding note %s\n", n.ID)
	return a.repo.Add(n)
}

// readContent reads the content given as --content or as the next value.
func readContent(r *params.Reader) (string, error) {
	if _, ok := r.PeekParameter(contentName); ok {
		return params.ReadParameterValue(r, contentName, nil)
	}
	t, err := r.RequireValue(nil, params.Describe("content"))
	if err != nil {
		return "", err
	}
	return t.Text, nil
}

// readCategory reads --category, matching the configured categories
// without regard to case. It returns the configured spelling.
func (a *app) readCategory(r *params.Reader) (string, error) {
	if _, ok := r.MatchParameter(categoryName); !ok {
		return "", nil
	}
	for _, c := range a.cfg.Categories {
		if _, ok := r.MatchValue(&params.ValuePredicate{Value: c, Comparison: params.IgnoreCase}); ok {
			return c, r.EndParameter()
		}
	}
	return "", r.FailUnmatchedValue(categoryType)
}

func splitTags(s string) []string {
	var tags []string
	for t := range strings.SplitSeq(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func editUsage(*notes.Config) *usage.Builder {
	u := usage.Default()
	u.HeaderLine("Usage: note edit [--id] <id>")
	u.Parameter("--id", "Note id")
	u.Section("Examples:")
	u.IndentedLine("note edit 12ab")
	return u
}

func runEdit(ctx context.Context, a *app, r *params.Reader) error {
	id, err := a.existingID(r)
	if err != nil {
		return err
	}
	path := a.repo.Path(id)
	fmt.Fprintf(a.stdout, "Editing note at %s\n", path)
	cmd, err := cmdutil.EditorCmd(ctx, a.cfg.Editor, path)
	if err != nil {
		return err
	}
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to run editor %q: %w", a.cfg.Editor, err)
	}
	return nil
}

func removeUsage(*notes.Config) *usage.Builder {
	u := usage.Default()
	u.HeaderLine("Usage: note remove [--id] <id> [<args>]")
	u.Parameter("--id", "Note id")
	u.Parameter("-f, --force", "Remove without asking")
	u.Section("Examples:")
	u.IndentedLine("note remove 12ab -f")
	return u
}

func runRemove(ctx context.Context, a *app, r *params.Reader) error {
	force, err := params.ReadSwitch(r, forceName)
	if err != nil {
		return err
	}
	id, err := a.existingID(r)
	if err != nil {
		return err
	}
	path := a.repo.Path(id)
	if !force {
		if !a.interactive {
			fmt.Fprintf(a.stdout, "Would remove note %s at %s\n", id, path)
			return nil
		}
		ok, err := cmdutil.Confirm(a.stdin, a.stdout, fmt.Sprintf("Remove note %s?", id))
		if err != nil || !ok {
			return err
		}
	}
	fmt.Fprintf(a.stdout, "Removing note %s at %s\n", id, path)
	return a.repo.Remove(id)
}
