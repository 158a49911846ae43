/*
Copyright © 2025 Symceil Authors
SPDX-License-Identifier: Apache-2.0
*/

package extractor

import (
	"debug/elf"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeObject implements ObjectFile from in-memory records.
type fakeObject struct {
	syms       []elf.Symbol
	symsErr    error
	hasVersym  bool
	versymSect elf.Section
}

func (f *fakeObject) DynamicSymbols() ([]elf.Symbol, error) {
	return f.syms, f.symsErr
}

func (f *fakeObject) SectionByType(typ elf.SectionType) *elf.Section {
	if typ == elf.SHT_GNU_VERSYM && f.hasVersym {
		return &f.versymSect
	}
	return nil
}

func undef(name, ver, lib string) elf.Symbol {
	return elf.Symbol{Name: name, Section: elf.SHN_UNDEF, Version: ver, Library: lib}
}

func TestExtractNoVersionTableIsError(t *testing.T) {
	f := &fakeObject{
		syms: []elf.Symbol{undef("malloc", "GLIBC_2.14", "libc.so.6")},
	}

	_, err := Extract(f)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoVersionTable)
}

func TestExtractCollectsUndefinedVersionedSymbols(t *testing.T) {
	f := &fakeObject{
		hasVersym: true,
		syms: []elf.Symbol{
			undef("malloc", "GLIBC_2.14", "libc.so.6"),
			undef("memcpy", "GLIBC_2.2.5", "libc.so.6"),
			{Name: "my_export", Section: elf.SectionIndex(12), Version: "MYLIB_1.0"},
		},
	}

	got, err := Extract(f)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "malloc", got[0].Name)
	assert.Equal(t, "GLIBC_2.14", got[0].Version.String())
	assert.Equal(t, "libc.so.6", got[0].File)

	assert.Equal(t, "memcpy", got[1].Name)
	assert.Equal(t, "GLIBC_2.2.5", got[1].Version.String())
}

func TestExtractSkipsUnversionedSymbols(t *testing.T) {
	f := &fakeObject{
		hasVersym: true,
		syms: []elf.Symbol{
			undef("environ", "", ""),
			undef("malloc", "GLIBC_2.14", "libc.so.6"),
		},
	}

	got, err := Extract(f)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "malloc", got[0].Name)
}

func TestExtractDropsNonNamespacedVersionTags(t *testing.T) {
	f := &fakeObject{
		hasVersym: true,
		syms: []elf.Symbol{
			undef("priv", "GLIBC_PRIVATE", "libc.so.6"),
			undef("tagged", "VERS.4", "libfoo.so.1"),
			undef("malloc", "GLIBC_2.14", "libc.so.6"),
		},
	}

	got, err := Extract(f)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "malloc", got[0].Name)
}

func TestExtractEmptySymbolTableIsEmptyResult(t *testing.T) {
	f := &fakeObject{hasVersym: true}

	got, err := Extract(f)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestExtractMissingSymbolSectionIsEmptyResult(t *testing.T) {
	f := &fakeObject{hasVersym: true, symsErr: elf.ErrNoSymbols}

	got, err := Extract(f)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestExtractSymbolTableReadFailureIsError(t *testing.T) {
	f := &fakeObject{hasVersym: true, symsErr: errors.New("truncated section")}

	_, err := Extract(f)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "truncated section")
}

func TestExtractSanitizesInvalidUTF8(t *testing.T) {
	f := &fakeObject{
		hasVersym: true,
		syms: []elf.Symbol{
			undef("malloc", "GLIBC_2.14", "libc\xff.so.6"),
		},
	}

	got, err := Extract(f)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "libc�.so.6", got[0].File)
}

func TestExtractFileRejectsNonELF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-an-elf")
	require.NoError(t, os.WriteFile(path, []byte("definitely not an elf image"), 0o644))

	_, err := ExtractFile(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestExtractFileMissingFileIsError(t *testing.T) {
	_, err := ExtractFile("/nonexistent/path/binary")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnsupportedFormat)
}
