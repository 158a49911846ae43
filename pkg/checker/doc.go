/*
Copyright © 2025 Symceil Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package checker decides which extracted symbol versions violate the
// configured ceilings and aggregates per-file outcomes into a run result.
//
// # Overview
//
// The core decision is the pure Check function: a symbol violates when its
// namespace has a configured ceiling and its required version strictly
// exceeds that ceiling. Namespaces without a ceiling are unconstrained.
//
// Checker wraps Check with per-file orchestration: extraction, three-way
// classification (pass, fail, error), parallel scheduling across files, and
// summary aggregation. A structural extraction error is recorded as that
// file's outcome and never affects other files. In the aggregate status,
// errors outrank failures, which outrank a universal pass.
//
// # Usage
//
//	reqs, err := requirements.Parse([]string{"GLIBC_2.17"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	c := checker.New()
//	result, err := c.CheckFiles(ctx, []string{"./mybinary"}, reqs)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Summary.Status)
package checker
