/*
Copyright © 2025 Symceil Authors
SPDX-License-Identifier: Apache-2.0
*/

package symbols

import (
	"sort"
	"strings"

	"github.com/symceil/symceil/pkg/version"
)

// SymbolVersion is one undefined (imported) dynamic symbol together with the
// namespaced version it requires. File is the name of the shared object that
// defines the required version when the binary records it; it may differ
// from the namespace (a symbol versioned GLIBC_2.17 is typically defined in
// libc.so.6). Empty File means the binary carried no defining-file record.
// Values are produced fresh per analyzed binary and never mutated.
type SymbolVersion struct {
	Name    string                    `json:"name" yaml:"name"`
	Version version.NamespacedVersion `json:"version" yaml:"version"`
	File    string                    `json:"file,omitempty" yaml:"file,omitempty"`
}

// Compare orders by (name, version, file) for stable, deterministic display.
func (s SymbolVersion) Compare(other SymbolVersion) int {
	if c := strings.Compare(s.Name, other.Name); c != 0 {
		return c
	}
	if c := s.Version.Compare(other.Version); c != 0 {
		return c
	}
	return strings.Compare(s.File, other.File)
}

// Sort sorts symbols in place by (name, version, file).
func Sort(symbols []SymbolVersion) {
	sort.Slice(symbols, func(i, j int) bool {
		return symbols[i].Compare(symbols[j]) < 0
	})
}
