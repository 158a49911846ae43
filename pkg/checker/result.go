/*
Copyright © 2025 Symceil Authors
SPDX-License-Identifier: Apache-2.0
*/

package checker

import (
	"time"

	"github.com/symceil/symceil/pkg/header"
	"github.com/symceil/symceil/pkg/symbols"
)

// APIVersion is the schema version for serialized check results.
const APIVersion = "symceil.dev/v1alpha1"

// FileStatus represents the outcome of checking a single file.
type FileStatus string

const (
	// FileStatusPass indicates no symbol exceeded its ceiling.
	FileStatusPass FileStatus = "pass"

	// FileStatusFail indicates one or more symbols exceeded their ceiling.
	FileStatusFail FileStatus = "fail"

	// FileStatusError indicates the file could not be analyzed.
	FileStatusError FileStatus = "error"
)

// RunStatus represents the aggregate outcome across all checked files.
type RunStatus string

const (
	// RunStatusPass indicates every file passed.
	RunStatusPass RunStatus = "pass"

	// RunStatusFail indicates at least one file had violations and none errored.
	RunStatusFail RunStatus = "fail"

	// RunStatusError indicates at least one file could not be analyzed.
	// Errors outrank failures: "could not tell" must stay distinguishable
	// from "told you it's bad".
	RunStatusError RunStatus = "error"
)

// FileResult is the outcome of checking one file.
type FileResult struct {
	// Path is the file that was checked.
	Path string `json:"path" yaml:"path"`

	// Status is the three-way outcome for this file.
	Status FileStatus `json:"status" yaml:"status"`

	// Violations lists the symbols whose required version exceeds the
	// configured ceiling, in extraction order.
	Violations []symbols.SymbolVersion `json:"violations,omitempty" yaml:"violations,omitempty"`

	// Message is the cause chain for error outcomes, most specific cause
	// last, joined for display.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`

	// Err is the structural error for error outcomes.
	Err error `json:"-" yaml:"-"`
}

// NewFileResult classifies a per-file extraction/check outcome.
// A structural error yields an error result; otherwise an empty violation
// list is a pass and a non-empty one a failure.
func NewFileResult(path string, violations []symbols.SymbolVersion, err error) FileResult {
	if err != nil {
		return FileResult{
			Path:    path,
			Status:  FileStatusError,
			Message: err.Error(),
			Err:     err,
		}
	}
	if len(violations) == 0 {
		return FileResult{Path: path, Status: FileStatusPass}
	}
	return FileResult{
		Path:       path,
		Status:     FileStatusFail,
		Violations: violations,
	}
}

// Summary contains aggregate statistics about a check run.
type Summary struct {
	// Passed is the count of files with no violations.
	Passed int `json:"passed" yaml:"passed"`

	// Failed is the count of files with at least one violation.
	Failed int `json:"failed" yaml:"failed"`

	// Errored is the count of files that could not be analyzed.
	Errored int `json:"errored" yaml:"errored"`

	// Total is the number of files checked.
	Total int `json:"total" yaml:"total"`

	// Status is the aggregate run status.
	Status RunStatus `json:"status" yaml:"status"`

	// Duration is how long the run took.
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// CheckResult is the complete outcome of checking a set of files.
// Results appear in the same order as the input paths regardless of how the
// files were scheduled.
type CheckResult struct {
	header.Header `json:",inline" yaml:",inline"`

	// Summary contains aggregate counts and the overall status.
	Summary Summary `json:"summary" yaml:"summary"`

	// Results contains per-file outcomes in input order.
	Results []FileResult `json:"results" yaml:"results"`
}

// HasErrors returns true if any file could not be analyzed.
func (r *CheckResult) HasErrors() bool {
	return r.Summary.Errored > 0
}

// HasFailures returns true if any file had violations.
func (r *CheckResult) HasFailures() bool {
	return r.Summary.Failed > 0
}

// summarize fills the Summary from the per-file results.
func (r *CheckResult) summarize(duration time.Duration) {
	for _, fr := range r.Results {
		switch fr.Status {
		case FileStatusPass:
			r.Summary.Passed++
		case FileStatusFail:
			r.Summary.Failed++
		case FileStatusError:
			r.Summary.Errored++
		}
	}
	r.Summary.Total = len(r.Results)
	r.Summary.Duration = duration

	switch {
	case r.Summary.Errored > 0:
		r.Summary.Status = RunStatusError
	case r.Summary.Failed > 0:
		r.Summary.Status = RunStatusFail
	default:
		r.Summary.Status = RunStatusPass
	}
}
