/*
Copyright © 2025 Symceil Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package errors provides structured error types shared across symceil
// components.
//
// Leaf packages define stdlib sentinel errors for conditions callers branch
// on (errors.Is). StructuredError complements those at the boundary layers
// with an error code classification, a human-readable message, and a cause
// that participates in standard error unwrapping. Wrapped causes render as a
// ": "-joined chain, most specific cause last, which is the display form the
// CLI uses for per-file error outcomes.
package errors
