/*
Copyright © 2025 Symceil Authors
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/symceil/symceil/pkg/logging"
)

const (
	name           = "symceil"
	versionDefault = "dev"
)

// Process exit codes. Errors outrank violations so that callers can always
// distinguish "the tool couldn't tell you" from "the tool told you it's bad".
const (
	// ExitPassed means every file passed the check.
	ExitPassed = 0
	// ExitErrorCheckingFiles means at least one file could not be analyzed.
	ExitErrorCheckingFiles = 1
	// ExitBadArgs means the invocation itself was invalid.
	ExitBadArgs = 2
	// ExitFilesFailedCheck means at least one file had symbol violations.
	ExitFilesFailedCheck = 3
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// New builds the root command.
func New() *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "Check ELF binaries for symbol versions above a per-namespace ceiling",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Description: `symceil verifies that a compiled binary does not depend on symbol versions
newer than a caller-specified ceiling per versioning namespace. This catches
binaries built against a newer C library that would fail to load on older
systems.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Value: "info",
				Usage: "log level (debug, info, warn, error)",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			checkCmd(),
		},
	}
}

// Execute runs the root command with a signal-aware context.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := New().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(ExitBadArgs)
	}
}
