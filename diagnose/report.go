// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package diagnose

import (
	"strings"
	"unicode"
)

// Outcome is the overall classification of a diagnosis.
type Outcome string

const (
	// OutcomeFound means at least one exact match is executable.
	OutcomeFound Outcome = "found"

	// OutcomeFoundNotExecutable means exact matches exist but none of them
	// would actually run.
	OutcomeFoundNotExecutable Outcome = "found-but-not-executable"

	// OutcomeNotFound means no exact match exists anywhere on the PATH.
	OutcomeNotFound Outcome = "not-found"
)

// Report is the complete result of one diagnosis. It is immutable after
// construction and owned exclusively by the caller; the engine keeps no
// reference to it.
type Report struct {
	// Program is the name that was searched for, verbatim.
	Program string `json:"program" yaml:"program"`

	// PathEnv is the PATH value that was scanned, verbatim.
	PathEnv string `json:"pathEnv" yaml:"pathEnv"`

	// Shell names the shell that invoked the process, when identifiable.
	// Informational only.
	Shell string `json:"shell,omitempty" yaml:"shell,omitempty"`

	// Outcome is the overall classification.
	Outcome Outcome `json:"outcome" yaml:"outcome"`

	// Entries lists every PATH segment in scan order, none omitted.
	Entries []PathEntry `json:"pathEntries" yaml:"pathEntries"`

	// Candidates lists every exact-name match in first-found order.
	Candidates []Candidate `json:"candidates" yaml:"candidates"`

	// Suggestions lists close spellings, populated only when Candidates is
	// empty.
	Suggestions []Suggestion `json:"suggestions,omitempty" yaml:"suggestions,omitempty"`

	// SkippedNames counts filenames excluded from fuzzy comparison because
	// they are not valid UTF-8.
	SkippedNames int `json:"skippedNames,omitempty" yaml:"skippedNames,omitempty"`

	// OffPath lists executables with the exact program name found in
	// well-known install directories that are not on the PATH. Populated
	// only when Candidates is empty.
	OffPath []string `json:"offPath,omitempty" yaml:"offPath,omitempty"`

	// InstallHint carries install instructions for recognized tools.
	// Populated only when the program was not found anywhere.
	InstallHint string `json:"installHint,omitempty" yaml:"installHint,omitempty"`
}

// Winner returns the candidate that would actually run: the first executable
// one in scan order. Nil when nothing would run.
func (r *Report) Winner() *Candidate {
	for i := range r.Candidates {
		if r.Candidates[i].Status == FileExecutable {
			return &r.Candidates[i]
		}
	}
	return nil
}

// ProgramIsBlank reports whether the searched name was empty.
func (r *Report) ProgramIsBlank() bool {
	return r.Program == ""
}

// ProgramHasWhitespace reports whether the searched name contains whitespace,
// which usually means an argument string was passed where a bare program name
// was expected.
func (r *Report) ProgramHasWhitespace() bool {
	return strings.ContainsFunc(r.Program, unicode.IsSpace)
}

// PathIsEmpty reports whether the scan had zero PATH entries to search.
func (r *Report) PathIsEmpty() bool {
	return len(r.Entries) == 0
}

// computeOutcome derives the overall classification from the exact matches.
func computeOutcome(candidates []Candidate) Outcome {
	if len(candidates) == 0 {
		return OutcomeNotFound
	}
	for _, c := range candidates {
		if c.Status == FileExecutable {
			return OutcomeFound
		}
	}
	return OutcomeFoundNotExecutable
}
