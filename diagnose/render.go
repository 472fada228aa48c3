// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package diagnose

import (
	"fmt"

	"github.com/jongio/whichprob/cliout"
)

// RenderText prints a human-readable rendering of the report via cliout.
// The report itself carries no formatting; callers wanting structured output
// should emit it through cliout.PrintStructured instead.
func RenderText(r *Report) {
	renderSummary(r)
	renderCandidates(r)
	renderSuggestions(r)
	renderOffPath(r)
	renderEntries(r)
}

func renderSummary(r *Report) {
	winner := r.Winner()
	switch {
	case winner != nil:
		cliout.Success("Program %q found at %q", r.Program, winner.Path)
	case len(r.Candidates) > 0:
		cliout.Warning("Program %q found at %q but is not executable", r.Program, r.Candidates[0].Path)
	default:
		cliout.Error("Program %q not found", r.Program)
	}

	if r.ProgramIsBlank() {
		cliout.Warning("Program name is blank")
	} else if r.ProgramHasWhitespace() {
		cliout.Warning("Program name contains whitespace")
	}

	if r.Shell != "" {
		cliout.Plain("%s", cliout.Muted("Invoked from shell: %s", r.Shell))
	}
}

func renderCandidates(r *Report) {
	if len(r.Candidates) == 0 {
		return
	}

	winner := r.Winner()
	width := 0
	for _, c := range r.Candidates {
		if len(c.Status.Marker()) > width {
			width = len(c.Status.Marker())
		}
	}

	cliout.Newline()
	if len(r.Candidates) > 1 {
		cliout.Warning("Multiple entries with the same name found on the PATH:")
	} else {
		cliout.Info("Matching entries on the PATH:")
	}
	for _, c := range r.Candidates {
		line := fmt.Sprintf("[%-*s] %q", width, c.Status.Marker(), c.Path)
		if winner != nil && c.Path == winner.Path {
			cliout.Arrow("%s", line)
		} else {
			cliout.Bullet("%s", line)
		}
	}
	if len(r.Candidates) > 1 && winner != nil {
		cliout.Item("The first [%s] entry, top to bottom, is the one that runs.", FileExecutable.Marker())
	}
	renderStatusLegend(candidateStatuses(r.Candidates), width)
}

// candidateStatuses returns the distinct statuses in first-seen order.
func candidateStatuses(candidates []Candidate) []FileStatus {
	var statuses []FileStatus
	seen := make(map[FileStatus]bool)
	for _, c := range candidates {
		if !seen[c.Status] {
			seen[c.Status] = true
			statuses = append(statuses, c.Status)
		}
	}
	return statuses
}

func renderStatusLegend(statuses []FileStatus, width int) {
	for _, s := range statuses {
		cliout.Item("%s", cliout.Muted("[%-*s] %s", width, s.Marker(), s.Details()))
	}
}

func renderSuggestions(r *Report) {
	if len(r.Suggestions) == 0 && r.SkippedNames == 0 {
		return
	}

	cliout.Newline()
	if len(r.Suggestions) > 0 {
		cliout.Info("These names on the PATH have the closest spelling to %q:", r.Program)
		for _, s := range r.Suggestions {
			cliout.Bullet("%q", s.Name)
		}
	}
	if r.SkippedNames > 0 {
		cliout.Info("%d filename(s) skipped during spelling comparison: not valid UTF-8", r.SkippedNames)
	}
}

func renderOffPath(r *Report) {
	if len(r.OffPath) == 0 && r.InstallHint == "" {
		return
	}

	cliout.Newline()
	if len(r.OffPath) > 0 {
		cliout.Info("Program %q is installed, but its directory is not on the PATH:", r.Program)
		for _, path := range r.OffPath {
			cliout.Bullet("%q", path)
		}
	} else {
		cliout.Info("Program %q does not appear to be installed.", r.Program)
		cliout.Item("%s", r.InstallHint)
	}
}

func renderEntries(r *Report) {
	cliout.Newline()
	if r.PathIsEmpty() {
		cliout.Warning("The PATH is empty or unset")
		return
	}

	winner := r.Winner()
	width := 0
	for _, e := range r.Entries {
		if len(e.Status.Marker()) > width {
			width = len(e.Status.Marker())
		}
	}

	cliout.Info("These directories on the PATH were searched (top to bottom):")
	for _, e := range r.Entries {
		label := fmt.Sprintf("%q", e.Raw)
		if e.Raw == "" {
			label = `"" (current directory)`
		} else if e.Relative {
			label = fmt.Sprintf("%q (resolved to %q)", e.Raw, e.Absolute)
		}
		line := fmt.Sprintf("[%-*s] %s", width, e.Status.Marker(), label)
		if winner != nil && winner.EntryIndex == e.Index {
			cliout.Arrow("%s", line)
		} else {
			cliout.Bullet("%s", line)
		}
	}
	renderEntryLegend(r.Entries, width)
}

func renderEntryLegend(entries []PathEntry, width int) {
	var statuses []EntryStatus
	seen := make(map[EntryStatus]bool)
	for _, e := range entries {
		if !seen[e.Status] {
			seen[e.Status] = true
			statuses = append(statuses, e.Status)
		}
	}
	for _, s := range statuses {
		cliout.Item("%s", cliout.Muted("[%-*s] %s", width, s.Marker(), s.Details()))
	}
}
