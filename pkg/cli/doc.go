/*
Copyright © 2025 Symceil Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package cli implements the symceil command line interface.
//
// The check command parses version ceilings, runs the checker across the
// given files, and presents per-file outcomes either as colorized text or
// through the serializer as JSON/YAML. Configuration problems (malformed or
// duplicate ceilings, bad flags) are reported before any file is touched and
// exit with a distinct code from per-file analysis errors.
//
// Process-wide presentation state (color overrides) lives here; the core
// packages stay pure functions from requirements and binaries to outcomes.
package cli
