/*
Copyright © 2025 Symceil Authors
SPDX-License-Identifier: Apache-2.0
*/

package version

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Error types for namespaced version parsing failures
var (
	ErrMissingSeparator = errors.New("namespaced version has no underscore separator")
	ErrEmptyNamespace   = errors.New("namespaced version has an empty namespace")
	ErrInvalidFormat    = errors.New("namespaced version does not end in a digit-initial version")
)

// NamespacedVersion is a version number qualified by its versioning
// namespace, as found in ELF symbol version tags such as "GLIBC_2.17".
// The namespace is everything before the last underscore; the version is
// everything after it and must begin with an ASCII digit. The digit
// requirement is what disambiguates namespaces that themselves contain
// underscores (e.g. "GLIB_C_2.17" splits as namespace "GLIB_C").
type NamespacedVersion struct {
	Namespace string
	Version   Version
}

// ParseNamespaced parses a NAMESPACE_version token.
// The token is split at its last underscore. A token with no underscore,
// an empty namespace, or a version part that does not start with an ASCII
// digit is rejected; the version part is then parsed via ParseVersion and
// any of its errors propagate.
func ParseNamespaced(s string) (NamespacedVersion, error) {
	split := strings.LastIndexByte(s, '_')
	if split < 0 {
		return NamespacedVersion{}, fmt.Errorf("%w: %q", ErrMissingSeparator, s)
	}

	namespace := s[:split]
	if namespace == "" {
		return NamespacedVersion{}, fmt.Errorf("%w: %q", ErrEmptyNamespace, s)
	}

	rest := s[split+1:]
	if len(rest) == 0 || rest[0] < '0' || rest[0] > '9' {
		return NamespacedVersion{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	v, err := ParseVersion(rest)
	if err != nil {
		return NamespacedVersion{}, fmt.Errorf("invalid version in %q: %w", s, err)
	}

	return NamespacedVersion{Namespace: namespace, Version: v}, nil
}

// MustParseNamespaced parses a NAMESPACE_version token and panics on error.
// Intended for hardcoded strings and test data only.
func MustParseNamespaced(s string) NamespacedVersion {
	nv, err := ParseNamespaced(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseNamespaced: %v", err))
	}
	return nv
}

// String returns the token form "NAMESPACE_version".
func (nv NamespacedVersion) String() string {
	return nv.Namespace + "_" + nv.Version.String()
}

// Compare orders by namespace (byte-wise string order) and then by version.
// Cross-namespace ordering exists structurally for stable sorting, but only
// same-namespace comparisons carry meaning for ceiling checks.
func (nv NamespacedVersion) Compare(other NamespacedVersion) int {
	if c := strings.Compare(nv.Namespace, other.Namespace); c != 0 {
		return c
	}
	return nv.Version.Compare(other.Version)
}

// Equals returns true if namespace and version both match.
func (nv NamespacedVersion) Equals(other NamespacedVersion) bool {
	return nv.Compare(other) == 0
}

// MarshalJSON renders the token form, e.g. "GLIBC_2.17".
func (nv NamespacedVersion) MarshalJSON() ([]byte, error) {
	return json.Marshal(nv.String())
}

// MarshalYAML renders the token form, e.g. GLIBC_2.17.
func (nv NamespacedVersion) MarshalYAML() (any, error) {
	return nv.String(), nil
}
