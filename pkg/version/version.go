/*
Copyright © 2025 Symceil Authors
SPDX-License-Identifier: Apache-2.0
*/

package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Error types for version parsing failures
var (
	ErrEmptyVersion      = errors.New("version string is empty")
	ErrNonNumeric        = errors.New("version component is not numeric")
	ErrComponentTooLarge = errors.New("version component exceeds 32-bit range")
)

// Version represents a dotted-decimal version number as an ordered sequence
// of non-negative integers. Trailing zero components are not significant and
// are stripped at parse time, so "1.2.0" and "1.2" are the same value and
// "0" is the empty sequence. Values are immutable once constructed.
type Version struct {
	parts []uint32
}

// ParseVersion parses a version string into a Version.
// Supported format: one or more non-negative base-10 integers separated by
// periods (e.g. "2", "2.17", "3.4.21"). Empty input, empty components
// (leading/trailing/doubled separators), negative values, and non-numeric
// components are errors. Trailing zero components are stripped after parsing.
func ParseVersion(s string) (Version, error) {
	if s == "" {
		return Version{}, ErrEmptyVersion
	}

	raw := strings.Split(s, ".")
	parts := make([]uint32, 0, len(raw))
	for _, part := range raw {
		if part == "" {
			return Version{}, fmt.Errorf("%w: empty component in %q", ErrNonNumeric, s)
		}
		num, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return Version{}, fmt.Errorf("%w: %q", ErrComponentTooLarge, part)
			}
			return Version{}, fmt.Errorf("%w: %q in %q", ErrNonNumeric, part, s)
		}
		parts = append(parts, uint32(num))
	}

	// Trailing zeroes carry no meaning for ceiling comparisons.
	for len(parts) > 0 && parts[len(parts)-1] == 0 {
		parts = parts[:len(parts)-1]
	}

	return Version{parts: parts}, nil
}

// MustParseVersion parses a version string and panics if parsing fails.
// Only use this for hardcoded strings or in tests. For user input or runtime
// data, always use ParseVersion and handle errors explicitly.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseVersion: %v", err))
	}
	return v
}

// String returns the normalized string representation: the remaining
// components rejoined with periods. The all-zero value renders as "".
func (v Version) String() string {
	strs := make([]string, len(v.parts))
	for i, p := range v.parts {
		strs[i] = strconv.FormatUint(uint64(p), 10)
	}
	return strings.Join(strs, ".")
}

// Compare returns an integer comparing two versions:
// -1 if v < other, 0 if v == other, 1 if v > other.
// Comparison is lexicographic over the normalized component sequences with
// the shorter side treated as zero-padded, which yields a total order.
func (v Version) Compare(other Version) int {
	n := len(v.parts)
	if len(other.parts) > n {
		n = len(other.parts)
	}
	for i := 0; i < n; i++ {
		var a, b uint32
		if i < len(v.parts) {
			a = v.parts[i]
		}
		if i < len(other.parts) {
			b = other.parts[i]
		}
		if a < b {
			return -1
		}
		if a > b {
			return 1
		}
	}
	return 0
}

// Equals returns true if v and other denote the same version value.
func (v Version) Equals(other Version) bool {
	return v.Compare(other) == 0
}

// IsNewer returns true if v is strictly newer than other.
func (v Version) IsNewer(other Version) bool {
	return v.Compare(other) > 0
}
