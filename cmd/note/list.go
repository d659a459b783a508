// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/yeetrun/clireader/pkg/notes"
	"github.com/yeetrun/clireader/pkg/params"
	"github.com/yeetrun/clireader/pkg/usage"
	"gopkg.in/yaml.v3"
)

const defaultCount = 1000

var (
	countName  = params.Name("count", "n")
	formatName = params.Name("format", "")

	countType  = params.Describe("number")
	formatType = params.NewTypeName("format")
)

// listFormats are the --format values. The first is the default.
var listFormats = []string{"table", "json", "yaml"}

func listUsage(*notes.Config) *usage.Builder {
	u := usage.Default()
	u.HeaderLine("Usage: note list [<args>]")
	u.Parameter("-n, --count <number>", "Most recent notes count (default is "+strconv.Itoa(defaultCount)+")")
	u.Parameter("--format <format>", "One of: "+strings.Join(listFormats, ", "))
	u.Section("Examples:")
	u.IndentedLine("note list -n 10")
	u.IndentedLine("note list --format json")
	return u
}

func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, errors.New("count must not be negative")
	}
	return n, nil
}

// readFormat reads --format, one of listFormats.
func readFormat(r *params.Reader) (string, error) {
	if _, ok := r.MatchParameter(formatName); !ok {
		return listFormats[0], nil
	}
	for _, f := range listFormats {
		if params.MatchLiteral(r, f) {
			return f, r.EndParameter()
		}
	}
	return "", r.FailUnmatchedValue(formatType)
}

func runList(ctx context.Context, a *app, r *params.Reader) error {
	count, err := params.ReadOptionalParameter(r, countName, parseCount, defaultCount, countType)
	if err != nil {
		return err
	}
	format, err := readFormat(r)
	if err != nil {
		return err
	}
	if err := r.ValidateEmpty(); err != nil {
		return err
	}

	list, err := a.repo.List(ctx, count)
	if err != nil {
		return err
	}
	a.log.Debug("listed notes", "count", len(list), "format", format)
	switch format {
	case "json":
		if list == nil {
			list = []*notes.Note{}
		}
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(list)
	case "yaml":
		enc := yaml.NewEncoder(a.stdout)
		enc.SetIndent(2)
		if err := enc.Encode(list); err != nil {
			return err
		}
		return enc.Close()
	}
	return printTable(a.stdout, list)
}

func printTable(w io.Writer, list []*notes.Note) error {
	if len(list) == 0 {
		_, err := fmt.Fprintln(w, "Notes repository is empty")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "ID\tTIME\tCATEGORY\tTAGS\tNOTE")
	for _, n := range list {
		when := "??"
		if !n.Time.IsZero() {
			when = n.Time.Local().Format(notes.TimeLayout)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", n.ID, when, n.Category, strings.Join(n.Tags, ","), n.Summary())
	}
	return tw.Flush()
}
