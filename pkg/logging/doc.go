/*
Copyright © 2025 Symceil Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package logging provides structured logging utilities for symceil.
//
// # Overview
//
// This package wraps the standard library slog package with project defaults:
// JSON logging to stderr, module/version context on every record, LOG_LEVEL
// environment configuration, and source location tracking for debug logs.
// Logs go to stderr so that check results on stdout stay machine-parseable.
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("symceil", version)
//
//	    slog.Info("checking files", "count", len(files))
//	    slog.Debug("detailed state", "data", complexObject)
//	}
//
// Setting an explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("symceil", version, "warn")
//
// # Log Levels
//
// Supported log levels (case-insensitive): DEBUG, INFO (default),
// WARN/WARNING, ERROR. The LOG_LEVEL environment variable controls
// verbosity when no explicit level is given:
//
//	LOG_LEVEL=debug symceil check -m GLIBC_2.17 ./mybinary
package logging
