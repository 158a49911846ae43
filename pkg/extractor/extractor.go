/*
Copyright © 2025 Symceil Authors
SPDX-License-Identifier: Apache-2.0
*/

package extractor

import (
	"debug/elf"
	"errors"
	"fmt"
	"strings"

	"github.com/symceil/symceil/pkg/symbols"
	"github.com/symceil/symceil/pkg/version"
)

// Error types for structural extraction failures. These abort extraction for
// the whole file: when the binary's versioning metadata is absent or
// unreadable, no per-symbol result can be trusted.
var (
	ErrNoVersionTable    = errors.New("no symbol version table found")
	ErrUnsupportedFormat = errors.New("unsupported file format")
)

// ObjectFile is the slice of a decoded ELF image the extractor needs: the
// dynamic symbol table with version info attached, and section lookup to
// detect whether the image carries a version table at all. *elf.File
// satisfies it.
type ObjectFile interface {
	DynamicSymbols() ([]elf.Symbol, error)
	SectionByType(typ elf.SectionType) *elf.Section
}

// Extract returns one SymbolVersion per undefined dynamic symbol that
// carries a namespace-structured version requirement.
//
// An image without a .gnu.version table is rejected with ErrNoVersionTable;
// a dynamically linked binary is expected to carry versioning metadata.
// Undefined symbols with no version record are skipped (the format allows
// unversioned imports), and symbols whose version string does not parse as
// NAMESPACE_version are silently dropped: some binaries carry ad hoc version
// tags, and those carry nothing to check. Results are in symbol-table order;
// callers re-sort for display.
func Extract(f ObjectFile) ([]symbols.SymbolVersion, error) {
	if f.SectionByType(elf.SHT_GNU_VERSYM) == nil {
		return nil, ErrNoVersionTable
	}

	syms, err := f.DynamicSymbols()
	if err != nil {
		if errors.Is(err, elf.ErrNoSymbols) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading dynamic symbol table: %w", err)
	}

	out := make([]symbols.SymbolVersion, 0, len(syms))
	for _, sym := range syms {
		if sym.Section != elf.SHN_UNDEF {
			// Defined symbols are exports, not imports.
			continue
		}
		if sym.Version == "" {
			continue
		}
		nv, err := version.ParseNamespaced(sanitize(sym.Version))
		if err != nil {
			continue
		}
		out = append(out, symbols.SymbolVersion{
			Name:    sym.Name,
			Version: nv,
			File:    sanitize(sym.Library),
		})
	}
	return out, nil
}

// ExtractFile opens path as an ELF image and extracts its undefined symbol
// versions. Non-ELF input maps to ErrUnsupportedFormat; read and decode
// failures are returned as-is for the caller to record against the file.
func ExtractFile(path string) ([]symbols.SymbolVersion, error) {
	f, err := elf.Open(path)
	if err != nil {
		var formatErr *elf.FormatError
		if errors.As(err, &formatErr) {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
		}
		return nil, fmt.Errorf("reading file: %w", err)
	}
	defer f.Close()

	return Extract(f)
}

// sanitize replaces invalid UTF-8 in metadata strings. Malformed version or
// file name bytes in an otherwise well-formed binary should not abort the
// whole run, nor leak raw bytes into rendered output.
func sanitize(s string) string {
	return strings.ToValidUTF8(s, "�")
}
