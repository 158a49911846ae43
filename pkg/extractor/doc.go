/*
Copyright © 2025 Symceil Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package extractor reads the dynamic symbol table and symbol version
// metadata of an ELF binary and produces the namespace/version/origin-file
// triples the checker consumes.
//
// # Failure model
//
// Structural problems are file-level errors: a missing version table, an
// unreadable symbol table, or a non-ELF input abort extraction for that file
// because no partial result can be trusted. An individual version string
// that is not namespace-structured is not an error; that symbol is simply
// excluded from the result set.
//
// Byte-level ELF decoding is delegated to the standard library debug/elf
// package; this package only interprets the decoded records.
package extractor
