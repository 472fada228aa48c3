// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package diagnose

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/jongio/whichprob/fileutil"
)

// FileStatus classifies a file whose name exactly matches the program name.
type FileStatus string

const (
	// FileExecutable passed the OS execute-permission check.
	FileExecutable FileStatus = "executable"

	// FileNotExecutable exists but the OS denies executing it.
	FileNotExecutable FileStatus = "not-executable"

	// FileBrokenSymlink is a symbolic link whose target cannot be resolved.
	FileBrokenSymlink FileStatus = "broken-symlink"

	// FileIsDir matches the program name but is a directory.
	FileIsDir FileStatus = "directory"
)

// Marker returns the short status tag rendered next to a candidate.
func (s FileStatus) Marker() string {
	switch s {
	case FileExecutable:
		return "OK"
	case FileNotExecutable:
		return "NOT EXE"
	case FileBrokenSymlink:
		return "BAD SYM"
	case FileIsDir:
		return "IS DIR"
	}
	return "UNKNOWN"
}

// Details returns the one-line explanation for this status.
func (s FileStatus) Details() string {
	switch s {
	case FileExecutable:
		return "File found matching program name with executable permissions. Valid executable"
	case FileNotExecutable:
		return "File found matching program name, but the OS denies executing it"
	case FileBrokenSymlink:
		return "File found matching program name, but is a broken symlink"
	case FileIsDir:
		return "Entry found matching program name, but is a directory. Executables must be a file"
	}
	return "File is in an unknown state"
}

// Candidate is a file found inside a valid PATH entry whose name matches the
// program name exactly. The first candidate in scan order is the one a shell
// would run.
type Candidate struct {
	// Path is the absolute path of the matching file.
	Path string `json:"path" yaml:"path"`

	// EntryIndex is the Index of the owning PathEntry, for display order.
	EntryIndex int `json:"entryIndex" yaml:"entryIndex"`

	// Status is the effective-executability classification.
	Status FileStatus `json:"status" yaml:"status"`
}

// classifyFile determines the status of a possible match at path.
// The broken-symlink check runs first: a dangling link is reported as such
// even when its own mode bits look executable, because what matters is that
// an exec would fail to resolve it. It reports exists=false when there is
// nothing at path or the owning directory denies searching it; a single
// inaccessible directory degrades, it never aborts the scan. Any other
// metadata failure is an internal error that aborts the diagnosis.
func classifyFile(path string) (status FileStatus, exists bool, err error) {
	info, err := os.Lstat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("inspecting %s: %w", path, err)
	}

	if info.Mode()&os.ModeSymlink != 0 {
		target, statErr := os.Stat(path)
		if statErr != nil {
			// Unresolvable for any reason: missing target, link loop,
			// unreadable ancestor of the target.
			return FileBrokenSymlink, true, nil
		}
		if target.IsDir() {
			return FileIsDir, true, nil
		}
	} else if info.IsDir() {
		return FileIsDir, true, nil
	}

	if fileutil.CanExecute(path) {
		return FileExecutable, true, nil
	}
	return FileNotExecutable, true, nil
}
