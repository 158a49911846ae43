/*
Copyright © 2025 Symceil Authors
SPDX-License-Identifier: Apache-2.0
*/

package symbols

import (
	"github.com/ianlancetaylor/demangle"
)

// Scheme selects the name demangling applied for display purposes.
// Demangling never changes which symbols are checked; it only substitutes a
// human-readable name when rendering results.
type Scheme string

const (
	// SchemeNone displays symbol names exactly as found in the binary.
	SchemeNone Scheme = "none"

	// SchemeCPP demangles Itanium C++ ABI mangled names (_Z prefixed).
	SchemeCPP Scheme = "cpp"

	// SchemeRust demangles Rust mangled names (legacy and v0).
	SchemeRust Scheme = "rust"
)

// ParseScheme parses a demangling scheme name.
// Returns the scheme and true if the name is recognized.
func ParseScheme(s string) (Scheme, bool) {
	switch Scheme(s) {
	case SchemeNone, SchemeCPP, SchemeRust:
		return Scheme(s), true
	default:
		return SchemeNone, false
	}
}

// Schemes returns the recognized demangling scheme names.
func Schemes() []string {
	return []string{string(SchemeNone), string(SchemeCPP), string(SchemeRust)}
}

// DisplayName returns the symbol name to show for the given scheme.
// A name that cannot be demangled is returned unchanged; Rust legacy
// mangling is Itanium-shaped, so both non-none schemes go through the same
// demangler, which dispatches on the mangling prefix.
func (s SymbolVersion) DisplayName(scheme Scheme) string {
	if scheme == SchemeNone {
		return s.Name
	}
	return demangle.Filter(s.Name)
}
