/*
Copyright © 2025 Symceil Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package requirements holds the caller-configured version ceilings: at most
// one maximum permitted namespaced version per versioning namespace.
//
// Ceilings are parsed once per invocation from raw tokens ("GLIBC_2.17",
// "GLIBCXX_3.4.21"). Malformed tokens and duplicate namespaces are
// configuration errors and fail the build immediately, before any binary is
// analyzed. The resulting mapping is read-only and safe for concurrent use.
package requirements
