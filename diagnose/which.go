// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package diagnose

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jongio/whichprob/logutil"
	"github.com/jongio/whichprob/pathutil"
	"github.com/jongio/whichprob/shellutil"
)

// DefaultGuessLimit is how many spelling suggestions a diagnosis offers when
// the program was not found.
const DefaultGuessLimit = 3

var logger = logutil.NewLogger("diagnose")

// Which describes one executable lookup to diagnose. Fields may be adjusted
// freely after New; a Which is treated as immutable once Diagnose begins.
type Which struct {
	// Program is the name being searched for, e.g. "bundle" for a failed
	// `bundle install`. Blank or whitespace-containing names are valid,
	// diagnosable inputs.
	Program string

	// PathEnv is the PATH value to scan. Empty means the same as unset.
	PathEnv string

	// Cwd is the working directory used to resolve relative PATH entries.
	// Empty means the process working directory.
	Cwd string

	// GuessLimit is how many spelling suggestions to offer when the program
	// is not found. Zero disables suggestions.
	GuessLimit int
}

// New creates a Which for program using the process environment: the PATH
// variable, the process working directory, and the default guess limit.
func New(program string) *Which {
	return &Which{
		Program:    program,
		PathEnv:    os.Getenv("PATH"),
		GuessLimit: DefaultGuessLimit,
	}
}

// Diagnose walks the PATH list in order and assembles a Report.
//
// Every user-causable anomaly ends up as data in the report. The error
// return is reserved for hard failures: the working directory cannot be
// resolved, or a filesystem metadata call fails in a way the report cannot
// describe. On error the report is nil, never partially populated.
func (w *Which) Diagnose() (*Report, error) {
	cwd := w.Cwd
	if cwd == "" {
		resolved, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolving working directory: %w", err)
		}
		cwd = resolved
	}

	logger.Debug("starting diagnosis", "program", w.Program, "guessLimit", w.GuessLimit)

	entries := parsePathList(w.PathEnv, cwd)
	probeEntries(entries)

	candidates, err := w.findCandidates(entries)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Program:    w.Program,
		PathEnv:    w.PathEnv,
		Shell:      shellutil.CurrentShell(),
		Outcome:    computeOutcome(candidates),
		Entries:    entries,
		Candidates: candidates,
	}

	if len(candidates) == 0 {
		report.Suggestions, report.SkippedNames = collectSuggestions(w.Program, entries, w.GuessLimit)

		onPath := make([]string, 0, len(entries))
		for _, e := range entries {
			onPath = append(onPath, e.Absolute)
		}
		report.OffPath = pathutil.SearchOffPath(w.Program, onPath)
		if len(report.OffPath) == 0 {
			report.InstallHint = pathutil.InstallHint(w.Program)
		}
	}

	logger.Debug("diagnosis complete",
		"outcome", string(report.Outcome),
		"candidates", len(report.Candidates),
		"suggestions", len(report.Suggestions))

	return report, nil
}

// findCandidates checks each usable PATH entry for a file named exactly like
// the program, in scan order. Entries that are missing, not directories, or
// empty contribute nothing.
func (w *Which) findCandidates(entries []PathEntry) ([]Candidate, error) {
	if w.Program == "" {
		// Joining a blank name would point at the directory itself.
		return nil, nil
	}

	var candidates []Candidate
	for _, entry := range entries {
		if entry.Status != EntryValid {
			continue
		}
		path := filepath.Join(entry.Absolute, w.Program)
		status, exists, err := classifyFile(path)
		if err != nil {
			return nil, err
		}
		if !exists {
			continue
		}
		candidates = append(candidates, Candidate{
			Path:       path,
			EntryIndex: entry.Index,
			Status:     status,
		})
	}
	return candidates, nil
}
