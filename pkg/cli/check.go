/*
Copyright © 2025 Symceil Authors
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"

	"github.com/symceil/symceil/pkg/checker"
	symerrors "github.com/symceil/symceil/pkg/errors"
	"github.com/symceil/symceil/pkg/requirements"
	"github.com/symceil/symceil/pkg/serializer"
	"github.com/symceil/symceil/pkg/symbols"
)

// formatText is the default human-oriented rendering; everything else is
// delegated to the serializer.
const formatText = "text"

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Check ELF files against per-namespace symbol version ceilings",
		ArgsUsage: "FILE...",
		Description: `Check each ELF file's undefined dynamic symbols against the configured
maximum versions. A file fails when any imported symbol requires a version
strictly above the ceiling for its namespace; namespaces with no configured
ceiling are unconstrained.

# Examples

Check a binary against a glibc ceiling:
  symceil check -m GLIBC_2.17 ./mybinary

Multiple namespaces, C++ demangled display names:
  symceil check -m GLIBC_2.17 -m GLIBCXX_3.4.21 -d cpp ./mybinary

Machine-readable output for CI:
  symceil check -m GLIBC_2.17 --format json -o result.json ./bin/*

# Exit Codes

  0  all files passed
  1  at least one file could not be analyzed
  2  invalid invocation (malformed or duplicate ceilings, bad flags)
  3  at least one file failed the check`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:     "max-version",
				Aliases:  []string{"m"},
				Required: true,
				Usage:    "maximum permitted version per namespace (e.g. GLIBC_2.17); repeatable",
			},
			&cli.StringFlag{
				Name:    "color",
				Aliases: []string{"c"},
				Value:   "auto",
				Usage:   "when to use colors (always, never, auto)",
			},
			&cli.StringFlag{
				Name:    "demangle",
				Aliases: []string{"d"},
				Value:   string(symbols.SchemeNone),
				Usage:   fmt.Sprintf("print demangled symbol names (%s)", strings.Join(symbols.Schemes(), ", ")),
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   formatText,
				Usage:   fmt.Sprintf("output format (%s, %s)", formatText, strings.Join(serializer.SupportedFormats(), ", ")),
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "write results to file instead of stdout (json and yaml formats)",
			},
			&cli.IntFlag{
				Name:  "concurrency",
				Usage: "maximum number of files analyzed in parallel (default: number of CPUs)",
			},
		},
		Action: runCheck,
	}
}

func runCheck(ctx context.Context, cmd *cli.Command) error {
	files := cmd.Args().Slice()
	if len(files) == 0 {
		return cli.Exit("Error: at least one file to analyze is required", ExitBadArgs)
	}

	scheme, ok := symbols.ParseScheme(cmd.String("demangle"))
	if !ok {
		return cli.Exit(fmt.Sprintf("Error: unknown demangle scheme: %q", cmd.String("demangle")), ExitBadArgs)
	}

	if err := configureColors(cmd.String("color")); err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), ExitBadArgs)
	}

	format := cmd.String("format")
	if format != formatText && serializer.Format(format).IsUnknown() {
		return cli.Exit(fmt.Sprintf("Error: unknown output format: %q", format), ExitBadArgs)
	}

	reqs, err := requirements.Parse(cmd.StringSlice("max-version"))
	if err != nil {
		cerr := symerrors.Wrap(symerrors.ErrCodeInvalidConfig, "invalid version ceilings", err)
		return cli.Exit(fmt.Sprintf("Error: %v", cerr), ExitBadArgs)
	}

	slog.Debug("checking files",
		"files", len(files),
		"namespaces", reqs.Namespaces(),
		"format", format)

	c := checker.New(
		checker.WithVersion(version),
		checker.WithConcurrency(int(cmd.Int("concurrency"))),
	)
	result, err := c.CheckFiles(ctx, files, reqs)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), ExitErrorCheckingFiles)
	}

	if format == formatText {
		NewRenderer(os.Stdout, os.Stderr, scheme).Render(result)
	} else {
		ser := serializer.NewFileWriterOrStdout(serializer.Format(format), cmd.String("output"))
		defer func() {
			if err := ser.Close(); err != nil {
				slog.Warn("failed to close serializer", "error", err)
			}
		}()
		if err := ser.Serialize(ctx, result); err != nil {
			return cli.Exit(fmt.Sprintf("Error: failed to serialize results: %v", err), ExitErrorCheckingFiles)
		}
	}

	switch {
	case result.HasErrors():
		return cli.Exit("", ExitErrorCheckingFiles)
	case result.HasFailures():
		return cli.Exit("", ExitFilesFailedCheck)
	default:
		return nil
	}
}

// configureColors applies the color mode to the process-wide color state.
// The presentation layer owns this global; core packages never touch it.
func configureColors(mode string) error {
	switch mode {
	case "always", "yes", "true", "on":
		color.NoColor = false
	case "never", "no", "false", "off":
		color.NoColor = true
	case "auto":
		// Leave the terminal autodetection in place.
	default:
		return fmt.Errorf("unknown color mode: %q", mode)
	}
	return nil
}
