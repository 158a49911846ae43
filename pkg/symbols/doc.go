/*
Copyright © 2025 Symceil Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package symbols defines the per-symbol record produced by extraction and
// consumed by checking: an undefined dynamic symbol name, the namespaced
// version it requires, and the shared object that defines that version when
// the binary records one.
//
// The package also provides display-only name demangling keyed by a Scheme
// (none, cpp, rust). Demangling substitutes a readable name when rendering
// results and has no effect on extraction or checking.
package symbols
