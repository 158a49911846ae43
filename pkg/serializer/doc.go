/*
Copyright © 2025 Symceil Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package serializer provides utilities for serializing check results to
// machine-readable formats.
//
// The package supports two output formats:
//   - JSON: indented, machine-readable structured data
//   - YAML: human-readable configuration-style output
//
// Usage:
//
//	writer := serializer.NewFileWriterOrStdout(serializer.FormatJSON, path)
//	defer writer.Close() // Important: close to release file handles
//	if err := writer.Serialize(ctx, result); err != nil {
//	    log.Fatal(err)
//	}
//
// Human-oriented colorized text output is a presentation concern and lives
// with the CLI, not here.
package serializer
