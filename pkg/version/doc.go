/*
Copyright © 2025 Symceil Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package version models dotted-decimal version numbers and their namespaced
// composition as used by ELF symbol versioning.
//
// # Overview
//
// A Version is an ordered sequence of non-negative 32-bit integers. Trailing
// zero components are insignificant and stripped at parse time, so "1.2.0"
// equals "1.2" and "0" is the empty sequence. Comparison is lexicographic
// with implicit zero padding of the shorter side, which yields a total order:
//
//	1 < 42
//	1.2.3 < 1.2.4
//	1.2 < 1.2.1
//
// A NamespacedVersion pairs a Version with its versioning namespace, parsed
// from tokens of the form NAMESPACE_version (e.g. "GLIBC_2.17"). The split
// happens at the last underscore and the version part must start with an
// ASCII digit, which disambiguates namespaces that contain underscores
// ("GLIB_C_2.17" -> namespace "GLIB_C", version 2.17). This is a heuristic,
// not an unambiguous grammar; it matches how symbol version tags are written
// in practice.
//
// # Usage
//
//	v, err := version.ParseNamespaced("GLIBC_2.17")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(v.Namespace) // GLIBC
//	fmt.Println(v.Version)   // 2.17
package version
