/*
Copyright © 2025 Symceil Authors
SPDX-License-Identifier: Apache-2.0
*/

package checker

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	symerrors "github.com/symceil/symceil/pkg/errors"
	"github.com/symceil/symceil/pkg/extractor"
	"github.com/symceil/symceil/pkg/header"
	"github.com/symceil/symceil/pkg/requirements"
	"github.com/symceil/symceil/pkg/symbols"
)

// Check returns every symbol whose namespace has a configured ceiling and
// whose required version strictly exceeds it. A symbol whose namespace has
// no ceiling is never flagged; absence of a rule means unconstrained, not
// forbidden. Pure function: inputs are not mutated and result order equals
// input order.
func Check(syms []symbols.SymbolVersion, reqs *requirements.VersionRequirements) []symbols.SymbolVersion {
	var violations []symbols.SymbolVersion
	for _, s := range syms {
		ceiling, ok := reqs.Ceiling(s.Version.Namespace)
		if !ok {
			continue
		}
		if s.Version.Version.IsNewer(ceiling.Version) {
			violations = append(violations, s)
		}
	}
	return violations
}

// ExtractFunc produces the symbol versions of one file. It exists so the
// runner can be exercised without real ELF binaries on disk.
type ExtractFunc func(path string) ([]symbols.SymbolVersion, error)

// Checker runs ceiling checks across a set of files. Files are independent,
// so they are processed in parallel up to the configured concurrency; the
// requirements mapping is read-only and shared across workers.
type Checker struct {
	version     string
	concurrency int
	extract     ExtractFunc
}

// Option is a functional option for configuring Checker instances.
type Option func(*Checker)

// WithVersion returns an Option that sets the tool version recorded in
// result metadata.
func WithVersion(version string) Option {
	return func(c *Checker) {
		c.version = version
	}
}

// WithConcurrency returns an Option that caps how many files are analyzed
// at once. Values below one leave the default in place.
func WithConcurrency(n int) Option {
	return func(c *Checker) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// WithExtractor returns an Option that replaces the symbol version source.
func WithExtractor(fn ExtractFunc) Option {
	return func(c *Checker) {
		if fn != nil {
			c.extract = fn
		}
	}
}

// New creates a Checker with the provided options. By default it extracts
// from ELF files on disk with one worker per CPU.
func New(opts ...Option) *Checker {
	c := &Checker{
		concurrency: runtime.NumCPU(),
		extract:     extractor.ExtractFile,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CheckFiles analyzes each path against the requirements and returns
// per-file outcomes in input order plus an aggregate summary. A structural
// error in one file is recorded as that file's outcome and does not stop the
// others; the returned error is non-nil only when the context is canceled.
func (c *Checker) CheckFiles(ctx context.Context, paths []string, reqs *requirements.VersionRequirements) (*CheckResult, error) {
	start := time.Now()

	result := &CheckResult{
		Results: make([]FileResult, len(paths)),
	}
	result.Init(header.KindCheckResult, APIVersion, c.version)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			syms, err := c.extract(path)
			if err != nil {
				slog.Debug("file check errored", "path", path, "error", err)
				result.Results[i] = NewFileResult(path, nil, classifyExtractError(err))
				return nil
			}

			violations := Check(syms, reqs)
			slog.Debug("file checked",
				"path", path,
				"symbols", len(syms),
				"violations", len(violations))
			result.Results[i] = NewFileResult(path, violations, nil)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result.summarize(time.Since(start))

	slog.Debug("check completed",
		"passed", result.Summary.Passed,
		"failed", result.Summary.Failed,
		"errored", result.Summary.Errored,
		"status", result.Summary.Status,
		"duration", result.Summary.Duration)

	return result, nil
}

// classifyExtractError attaches a structured error code to a per-file
// extraction failure so that machine-readable output can distinguish a
// non-ELF input from a malformed one.
func classifyExtractError(err error) error {
	code := symerrors.ErrCodeMalformedBinary
	if errors.Is(err, extractor.ErrUnsupportedFormat) {
		code = symerrors.ErrCodeUnsupportedFormat
	}
	return symerrors.Wrap(code, "analyzing binary", err)
}
