// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package diagnose

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/jongio/whichprob/fileutil"
)

// EntryStatus classifies one segment of the PATH list.
type EntryStatus string

const (
	// EntryValid is a directory that exists and contains at least one entry.
	EntryValid EntryStatus = "valid"

	// EntryEmptyDir is a directory that exists but contains nothing, so it
	// can never yield a match.
	EntryEmptyDir EntryStatus = "empty-dir"

	// EntryMissing does not exist on disk, or could not be inspected.
	EntryMissing EntryStatus = "missing"

	// EntryNotDir exists but is a file or other non-directory.
	EntryNotDir EntryStatus = "not-a-directory"
)

// Marker returns the short status tag rendered next to a PATH entry.
func (s EntryStatus) Marker() string {
	switch s {
	case EntryValid:
		return "OK"
	case EntryEmptyDir:
		return "EMPTY"
	case EntryMissing:
		return "MISSING"
	case EntryNotDir:
		return "NOT DIR"
	}
	return "UNKNOWN"
}

// Details returns the one-line explanation for this status.
func (s EntryStatus) Details() string {
	switch s {
	case EntryValid:
		return "PATH entry is a valid, non-empty directory"
	case EntryEmptyDir:
		return "PATH entry directory exists, but it is empty"
	case EntryMissing:
		return "PATH entry does not exist on disk, no such directory"
	case EntryNotDir:
		return "PATH entry exists, but is a file. Must be a directory"
	}
	return "PATH entry is in an unknown state"
}

// PathEntry is one segment of the parsed PATH value, in scan order.
// Entries are created during parsing and never mutated afterward.
type PathEntry struct {
	// Raw is the original segment text, preserved exactly. An empty string
	// means "current directory" on platforms with that convention.
	Raw string `json:"raw" yaml:"raw"`

	// Index is the 0-based position in PATH search order.
	Index int `json:"index" yaml:"index"`

	// Absolute is the resolved directory path. Relative segments (including
	// the empty one) are joined against the working directory.
	Absolute string `json:"absolute" yaml:"absolute"`

	// Relative records whether Raw was a relative segment.
	Relative bool `json:"relative" yaml:"relative"`

	// Status is filled in by the directory probe.
	Status EntryStatus `json:"status" yaml:"status"`
}

// parsePathList splits a PATH-like value into ordered entries. Every segment
// is preserved, including duplicates and empty strings; an empty pathEnv
// yields zero entries. Status is left for probeEntries.
func parsePathList(pathEnv, cwd string) []PathEntry {
	if pathEnv == "" {
		return nil
	}

	segments := strings.Split(pathEnv, string(os.PathListSeparator))
	entries := make([]PathEntry, 0, len(segments))
	for i, raw := range segments {
		relative := !filepath.IsAbs(raw)
		absolute := raw
		if relative {
			// Unix shell semantics: an empty PATH element means the current
			// directory, and Join(cwd, "") collapses to cwd.
			absolute = filepath.Join(cwd, raw)
		}
		entries = append(entries, PathEntry{
			Raw:      raw,
			Index:    i,
			Absolute: absolute,
			Relative: relative,
		})
	}
	return entries
}

// probeEntries performs one metadata query per entry and fills in Status.
// A query that fails for any reason other than "does not exist" still
// resolves to EntryMissing: a single unreadable directory must never abort
// the scan, it just becomes unusable for the search.
func probeEntries(entries []PathEntry) {
	for i := range entries {
		entries[i].Status = probeDir(entries[i].Absolute)
		logger.Debug("probed path entry",
			"index", entries[i].Index,
			"dir", entries[i].Absolute,
			"status", string(entries[i].Status))
	}
}

func probeDir(dir string) EntryStatus {
	info, err := os.Stat(dir)
	if err != nil {
		return EntryMissing
	}
	if !info.IsDir() {
		return EntryNotDir
	}
	if !fileutil.DirHasEntries(dir) {
		return EntryEmptyDir
	}
	return EntryValid
}
