/*
Copyright © 2025 Symceil Authors
SPDX-License-Identifier: Apache-2.0
*/

package requirements

import (
	"errors"
	"fmt"
	"sort"

	"github.com/symceil/symceil/pkg/version"
)

// ErrDuplicateNamespace indicates two ceiling tokens named the same
// namespace. Each namespace may be constrained at most once per invocation.
var ErrDuplicateNamespace = errors.New("duplicate namespace")

// VersionRequirements maps each versioning namespace to the single maximum
// permitted version for that namespace. Built once per invocation and
// read-only afterward, so it is safe to share across concurrent file checks.
type VersionRequirements struct {
	ceilings map[string]version.NamespacedVersion
}

// Parse builds VersionRequirements from raw ceiling tokens such as
// "GLIBC_2.17". A malformed token is a configuration error and aborts the
// whole build, as does a namespace appearing more than once. An empty token
// list is valid and yields a mapping that flags nothing.
func Parse(tokens []string) (*VersionRequirements, error) {
	ceilings := make(map[string]version.NamespacedVersion, len(tokens))
	for _, token := range tokens {
		nv, err := version.ParseNamespaced(token)
		if err != nil {
			return nil, fmt.Errorf("invalid max version %q: %w", token, err)
		}
		if _, exists := ceilings[nv.Namespace]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateNamespace, nv.Namespace)
		}
		ceilings[nv.Namespace] = nv
	}
	return &VersionRequirements{ceilings: ceilings}, nil
}

// Ceiling returns the maximum permitted version for the namespace and
// whether one is configured. A namespace with no configured ceiling is
// unconstrained.
func (r *VersionRequirements) Ceiling(namespace string) (version.NamespacedVersion, bool) {
	nv, ok := r.ceilings[namespace]
	return nv, ok
}

// Len returns the number of configured namespaces.
func (r *VersionRequirements) Len() int {
	return len(r.ceilings)
}

// Namespaces returns the configured namespaces in sorted order.
func (r *VersionRequirements) Namespaces() []string {
	names := make([]string, 0, len(r.ceilings))
	for ns := range r.ceilings {
		names = append(names, ns)
	}
	sort.Strings(names)
	return names
}
