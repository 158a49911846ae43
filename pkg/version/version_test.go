/*
Copyright © 2025 Symceil Authors
SPDX-License-Identifier: Apache-2.0
*/

package version

import (
	"errors"
	"testing"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "single component", input: "1", want: "1"},
		{name: "two components", input: "2.17", want: "2.17"},
		{name: "three components", input: "3.4.21", want: "3.4.21"},
		{name: "trailing zero stripped", input: "1.2.0", want: "1.2"},
		{name: "all trailing zeroes stripped", input: "1.0.0", want: "1"},
		{name: "interior zero kept", input: "0.1.0.0", want: "0.1"},
		{name: "single zero is empty", input: "0", want: ""},
		{name: "all zeroes is empty", input: "0.0", want: ""},
		{name: "empty input", input: "", wantErr: ErrEmptyVersion},
		{name: "non numeric", input: "x", wantErr: ErrNonNumeric},
		{name: "negative component", input: "-1", wantErr: ErrNonNumeric},
		{name: "trailing dot", input: "1.", wantErr: ErrNonNumeric},
		{name: "leading dot", input: ".1", wantErr: ErrNonNumeric},
		{name: "doubled dot", input: "1..2", wantErr: ErrNonNumeric},
		{name: "embedded space", input: "1. 2", wantErr: ErrNonNumeric},
		{name: "component over 32 bits", input: "4294967296", wantErr: ErrComponentTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseVersion(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseVersion(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseVersion(%q) unexpected error: %v", tt.input, err)
			}
			if got := v.String(); got != tt.want {
				t.Errorf("ParseVersion(%q).String() = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestVersionCompare(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{name: "single components", a: "1", b: "42", want: -1},
		{name: "patch difference", a: "1.2.3", b: "1.2.4", want: -1},
		{name: "shorter is older", a: "1.2", b: "1.2.1", want: -1},
		{name: "longer is newer", a: "1.2.3", b: "1.2", want: 1},
		{name: "equal", a: "1.42", b: "1.42", want: 0},
		{name: "trailing zero equal", a: "1.2", b: "1.2.0", want: 0},
		{name: "zero equals empty", a: "0", b: "0.0.0", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := MustParseVersion(tt.a)
			b := MustParseVersion(tt.b)
			if got := a.Compare(b); got != tt.want {
				t.Errorf("Compare(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			if got := b.Compare(a); got != -tt.want {
				t.Errorf("Compare(%q, %q) = %d, want %d", tt.b, tt.a, got, -tt.want)
			}
		})
	}
}

func TestVersionEquals(t *testing.T) {
	if !MustParseVersion("1.2").Equals(MustParseVersion("1.2.0")) {
		t.Error("expected 1.2 to equal 1.2.0")
	}
	if MustParseVersion("1.2").Equals(MustParseVersion("1.2.1")) {
		t.Error("expected 1.2 to differ from 1.2.1")
	}
}

func TestVersionIsNewer(t *testing.T) {
	if !MustParseVersion("2.18").IsNewer(MustParseVersion("2.17")) {
		t.Error("expected 2.18 to be newer than 2.17")
	}
	if MustParseVersion("2.17").IsNewer(MustParseVersion("2.17.0")) {
		t.Error("expected 2.17 not to be newer than 2.17.0")
	}
}

func TestMustParseVersionPanicsOnInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected MustParseVersion to panic on invalid input")
		}
	}()
	MustParseVersion("not-a-version")
}
