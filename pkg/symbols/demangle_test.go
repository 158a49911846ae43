/*
Copyright © 2025 Symceil Authors
SPDX-License-Identifier: Apache-2.0
*/

package symbols

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseScheme(t *testing.T) {
	tests := []struct {
		input  string
		want   Scheme
		wantOK bool
	}{
		{input: "none", want: SchemeNone, wantOK: true},
		{input: "cpp", want: SchemeCPP, wantOK: true},
		{input: "rust", want: SchemeRust, wantOK: true},
		{input: "", want: SchemeNone, wantOK: false},
		{input: "swift", want: SchemeNone, wantOK: false},
	}

	for _, tt := range tests {
		t.Run("scheme "+tt.input, func(t *testing.T) {
			got, ok := ParseScheme(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDisplayNameNoneReturnsRawName(t *testing.T) {
	s := sym("_ZNSt6vectorIiSaIiEE9push_backERKi", "GLIBCXX_3.4", "")
	assert.Equal(t, s.Name, s.DisplayName(SchemeNone))
}

func TestDisplayNameDemanglesCPPName(t *testing.T) {
	s := sym("_ZNSt6vectorIiSaIiEE9push_backERKi", "GLIBCXX_3.4", "")
	got := s.DisplayName(SchemeCPP)
	assert.NotEqual(t, s.Name, got)
	assert.True(t, strings.Contains(got, "push_back"), "demangled name %q should contain push_back", got)
	assert.True(t, strings.Contains(got, "std::vector"), "demangled name %q should contain std::vector", got)
}

func TestDisplayNameLeavesUnmangledNamesAlone(t *testing.T) {
	s := sym("main", "LIB_1", "")
	assert.Equal(t, "main", s.DisplayName(SchemeCPP))
	assert.Equal(t, "main", s.DisplayName(SchemeRust))
}
