// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"github.com/yeetrun/clireader/pkg/notes"
	"github.com/yeetrun/clireader/pkg/params"
	"github.com/yeetrun/clireader/pkg/usage"
)

// command is a note subcommand.
type command struct {
	name        string
	description string
	usage       func(cfg *notes.Config) *usage.Builder
	run         func(ctx context.Context, a *app, r *params.Reader) error
}

// commands are tried in order.
var commands = []command{
	{name: "add", description: "Add a note", usage: addUsage, run: runAdd},
	{name: "edit", description: "Edit a note", usage: editUsage, run: runEdit},
	{name: "remove", description: "Remove a note", usage: removeUsage, run: runRemove},
	{name: "list", description: "List notes", usage: listUsage, run: runList},
	{name: "export", description: "Write all notes to an archive", usage: exportUsage, run: runExport},
	{name: "import", description: "Add the notes of an archive", usage: importUsage, run: runImport},
}

var (
	helpName       = params.Name("help", "?")
	verboseName    = params.Name("verbose", "v")
	repositoryName = params.Name("repository", "r")
	configName     = params.Name("configuration", "c")
	idName         = params.Name("id", "")
)

var noteID = params.Describe("note id")

// run reads the global parameters and dispatches to a command. noArgs
// shows the main usage.
func (a *app) run(ctx context.Context, r *params.Reader, noArgs bool) (int, error) {
	// -h and --settings are older spellings of --help and --configuration.
	r.SubstituteParameter(params.HiddenName("help", "h"), "help")
	r.SubstituteParameter(params.HiddenName("settings", ""), "configuration")

	help, err := params.ReadSwitch(r, helpName)
	if err != nil {
		return exitUsageFailure, err
	}
	a.help = help || noArgs
	verbose, err := params.ReadSwitch(r, verboseName)
	if err != nil {
		return exitUsageFailure, err
	}
	a.log = newLogger(a.stderr, a.stderrTTY, verbose)

	dir, err := params.ReadOptionalParameterValue(r, repositoryName, notes.DefaultDir, nil)
	if err != nil {
		return exitUsageFailure, err
	}
	cfgPath, err := params.ReadOptionalParameterValue(r, configName, "", nil)
	if err != nil {
		return exitUsageFailure, err
	}
	if cfgPath == "" {
		cfgPath = notes.DefaultConfigPath(dir)
	}
	if a.cfg, err = notes.LoadConfig(cfgPath); err != nil {
		return exitFailure, err
	}
	a.log.Debug("loaded configuration", "path", cfgPath, "aliases", len(a.cfg.Aliases))

	if a.expandAliases(r) {
		// An alias may name its own repository.
		if dir, err = params.ReadOptionalParameterValue(r, repositoryName, dir, nil); err != nil {
			return exitUsageFailure, err
		}
	}
	a.repo = notes.NewRepository(dir)

	// delete was renamed to remove.
	r.SubstituteValue(params.HiddenValue("delete"), "remove")

	for _, c := range commands {
		if !params.MatchLiteral(r, c.name) {
			continue
		}
		if a.help {
			fmt.Fprintln(a.stdout, c.usage(a.cfg))
			return exitUsage, nil
		}
		a.log.Debug("running command", "command", c.name, "repository", dir)
		if err := c.run(ctx, a, r); err != nil {
			return exitFailure, err
		}
		return exitSuccess, nil
	}
	if a.help {
		fmt.Fprintln(a.stdout, mainUsage())
		return exitUsage, nil
	}
	return exitUsageFailure, r.FailUnmatchedValue(params.NewTypeName("command"))
}

// expandAliases replaces a configured alias at the command position with
// the arguments it stands for.
func (a *app) expandAliases(r *params.Reader) bool {
	expanded := false
	for _, alias := range a.cfg.AliasNames() {
		args := a.cfg.Expand(alias)
		if r.SubstituteValueArgs(params.HiddenValue(alias), args) {
			a.log.Debug("expanded alias", "alias", alias, "args", args)
			expanded = true
		}
	}
	return expanded
}

func mainUsage() *usage.Builder {
	u := usage.Default()
	u.HeaderLine("Usage: note [<global args>] <command> [<args>]")
	u.Section("Commands:")
	for _, c := range commands {
		u.Parameter(c.name, c.description)
	}
	u.Section("Global parameters:")
	u.Parameter("-?, --help", "Show help, also for a command")
	u.Parameter("-v, --verbose", "Log debug messages")
	u.Parameter("-r, --repository", "Repository path (default is "+notes.DefaultDir+")")
	u.Parameter("-c, --configuration", "Configuration path (default is "+notes.DefaultConfigPath("<repository>")+")")
	u.Section("Examples:")
	u.IndentedLine(`note add "note content" --tags go`)
	u.IndentedLine("note edit 12ab")
	u.IndentedLine("note list -n 10")
	return u
}

// readID reads a note id given as --id or as the next value.
func readID(r *params.Reader) (string, error) {
	if _, ok := r.PeekParameter(idName); ok {
		return params.ReadParameterValue(r, idName, nil)
	}
	t, err := r.RequireValue(nil, noteID)
	if err != nil {
		return "", err
	}
	return t.Text, nil
}

// existingID reads a note id and checks that the note exists.
func (a *app) existingID(r *params.Reader) (string, error) {
	id, err := readID(r)
	if err != nil {
		return "", err
	}
	if err := r.ValidateEmpty(); err != nil {
		return "", err
	}
	if !a.repo.Exists(id) {
		return "", usageErrorf("Note %q does not exist", id)
	}
	return id, nil
}
