// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Note keeps short text notes in a directory.
//
//	note add "remember the milk" -t home -g important
//	note list -n 10
//	note remove 12ab -f
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/fatih/color"
	"github.com/yeetrun/clireader/pkg/cmdutil"
	"github.com/yeetrun/clireader/pkg/notes"
	"github.com/yeetrun/clireader/pkg/params"
)

// Exit codes.
const (
	exitSuccess      = 0
	exitFailure      = 1
	exitUsage        = 2
	exitUsageFailure = 3
)

// app is the state shared by the commands of one invocation.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	// interactive is set when stdin is a terminal.
	interactive bool
	// stderrTTY selects the text log handler.
	stderrTTY bool
	now       func() time.Time

	log  *slog.Logger
	help bool
	repo *notes.Repository
	cfg  *notes.Config
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	a := &app{
		stdin:       os.Stdin,
		stdout:      os.Stdout,
		stderr:      os.Stderr,
		interactive: cmdutil.IsTerminal(os.Stdin),
		stderrTTY:   cmdutil.IsTerminal(os.Stderr),
		now:         time.Now,
	}
	code := a.main(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}

// main runs the command line args and returns the process exit code.
func (a *app) main(ctx context.Context, args []string) int {
	r := params.NewReader(args, params.Options{})
	code, err := a.run(ctx, r, len(args) == 0)
	if err == nil {
		return code
	}
	printError(a.stderr, err)
	if errors.Is(err, params.ErrUsage) {
		return exitUsageFailure
	}
	return exitFailure
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", color.RedString("Error:"), err)
}

// usageErrorf returns an error reported like a command line mistake.
func usageErrorf(format string, args ...any) error {
	return &params.UsageError{Message: fmt.Sprintf(format, args...)}
}
